package phone

import (
	"regexp"
	"strings"
)

// Layout identifies which punctuation layout a candidate was written in.
type Layout int

const (
	LayoutNone Layout = iota
	LayoutParenthesized
	LayoutDashed
	LayoutDotted
	LayoutSpaced
	LayoutCompact
)

func (l Layout) String() string {
	switch l {
	case LayoutParenthesized:
		return "(DDD) DDD-DDDD"
	case LayoutDashed:
		return "DDD-DDD-DDDD"
	case LayoutDotted:
		return "DDD.DDD.DDDD"
	case LayoutSpaced:
		return "DDD DDD DDDD"
	case LayoutCompact:
		return "DDDDDDDDDD"
	default:
		return "unrecognized"
	}
}

type recognizer struct {
	layout  Layout
	pattern *regexp.Regexp
}

// Evaluated in order, first match wins.
var recognizers = [...]recognizer{
	{LayoutParenthesized, regexp.MustCompile(`^\(\d{3}\) \d{3}-\d{4}$`)},
	{LayoutDashed, regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)},
	{LayoutDotted, regexp.MustCompile(`^\d{3}\.\d{3}\.\d{4}$`)},
	{LayoutSpaced, regexp.MustCompile(`^\d{3} \d{3} \d{4}$`)},
	{LayoutCompact, regexp.MustCompile(`^\d{10}$`)},
}

// Matched against the text as written, independent of the recognizers above.
var tollFreeRE = regexp.MustCompile(`^\s*(?:\(?8(?:00|33|44|55|66|77|88)\)?[-.\s]?\d{3}[-.\s]?\d{4})\s*$`)

// Candidate is a trimmed line that matched one of the accepted layouts.
type Candidate struct {
	Text   string
	Layout Layout
	Digits string
}

// Recognize trims line and tests it against the accepted layouts.
func Recognize(line string) (Candidate, bool) {
	text := strings.TrimSpace(line)
	for _, r := range recognizers {
		if r.pattern.MatchString(text) {
			return Candidate{Text: text, Layout: r.layout, Digits: Normalize(text)}, true
		}
	}
	return Candidate{}, false
}

// Normalize strips every character that is not an ASCII digit.
func Normalize(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

type rule struct {
	fails  func(digits string) bool
	reason Reason
}

// The length rule runs first so the positional rules can index freely.
var numberingPlan = [...]rule{
	{func(d string) bool { return len(d) != 10 }, InvalidLength},
	{func(d string) bool { return !inRange(d[0], '2', '9') || !inRange(d[1], '0', '8') || !inRange(d[2], '0', '9') }, InvalidAreaCode},
	{func(d string) bool { return !inRange(d[3], '2', '9') || !inRange(d[4], '0', '9') || !inRange(d[5], '0', '9') }, InvalidExchangeCode},
	{func(d string) bool { return d[4] == '1' && d[5] == '1' }, ExchangeCodeRepeatedOne},
}

func inRange(c, lo, hi byte) bool { return c >= lo && c <= hi }

// Validate applies the numbering-plan rules to a digit string and returns the
// first violated rule, or ReasonNone.
func Validate(digits string) Reason {
	for _, r := range numberingPlan {
		if r.fails(digits) {
			return r.reason
		}
	}
	return ReasonNone
}

// IsTollFree reports whether text, as written, carries a toll-free area code.
func IsTollFree(text string) bool {
	return tollFreeRE.MatchString(text)
}

// International returns the +1 form of a 10-digit number.
func International(digits string) string {
	return "+1" + digits
}

// Mask replaces every character of text with an asterisk.
func Mask(text string) string {
	return strings.Repeat("*", len(text))
}
