package phone

import "strings"

// Reason is why a line was rejected. ReasonNone marks a valid number.
type Reason int

const (
	ReasonNone Reason = iota
	InvalidLength
	InvalidAreaCode
	InvalidExchangeCode
	ExchangeCodeRepeatedOne
	UnrecognizedFormat
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "valid"
	case InvalidLength:
		return "has invalid length"
	case InvalidAreaCode:
		return "has invalid Area Code digit(s)"
	case InvalidExchangeCode:
		return "has invalid Exchange Code digit(s)"
	case ExchangeCodeRepeatedOne:
		return "Exchange Code has '1' in both 2nd & 3rd digits"
	case UnrecognizedFormat:
		return "has invalid format/digit(s)"
	default:
		return "unknown reason"
	}
}

// Result is the outcome for one non-comment line.
// Digits is set only when Reason is ReasonNone.
type Result struct {
	Text     string
	Digits   string
	TollFree bool
	Reason   Reason
}

func (r Result) Valid() bool { return r.Reason == ReasonNone }

// Classify turns one raw line into a Result. ok is false for blank and comment lines.
func Classify(line string) (res Result, ok bool) {
	if IsSkippable(line) {
		return Result{}, false
	}
	c, matched := Recognize(line)
	if !matched {
		return Result{Text: strings.TrimSpace(line), Reason: UnrecognizedFormat}, true
	}
	if reason := Validate(c.Digits); reason != ReasonNone {
		return Result{Text: c.Text, Reason: reason}, true
	}
	return Result{Text: c.Text, Digits: c.Digits, TollFree: IsTollFree(c.Text)}, true
}
