package phone

import (
	"fmt"
	"io"
)

// Lines is the part of *Source that Check consumes.
type Lines interface {
	Next() bool
	Text() string
	Err() error
}

// Report holds the classified lines of one file, each list in input order.
type Report struct {
	Valid   []Result
	Invalid []Result
}

// Check classifies every line of src. It reads src to the end before returning,
// so a read error yields no report at all.
func Check(src Lines) (Report, error) {
	var rep Report
	for src.Next() {
		res, ok := Classify(src.Text())
		if !ok {
			continue
		}
		if res.Valid() {
			rep.Valid = append(rep.Valid, res)
		} else {
			rep.Invalid = append(rep.Invalid, res)
		}
	}
	if err := src.Err(); err != nil {
		return Report{}, fmt.Errorf("failed to read phone list: %w", err)
	}
	return rep, nil
}

// Painter colours report fragments.
type Painter interface {
	Cyan(s string) string
	Blue(s string) string
}

// Render writes the valid report to out and the invalid entries to diag.
func Render(out, diag io.Writer, rep Report, p Painter) {
	fmt.Fprintln(out, "The output for valid phone numbers is:")
	for _, r := range rep.Valid {
		if r.TollFree {
			fmt.Fprintf(out, "%s %s\n", r.Text, p.Cyan("is a toll-free phone number"))
		} else {
			fmt.Fprintln(out, r.Text)
		}
		fmt.Fprintf(out, "%s international format: %s\n", Mask(r.Text), International(r.Digits))
	}

	fmt.Fprintln(out, "\n\nThe output for invalid phone numbers is:")
	for _, r := range rep.Invalid {
		line := fmt.Sprintf("[ERROR] Phone number %s %s", r.Text, r.Reason)
		if r.Reason == ExchangeCodeRepeatedOne {
			line = p.Blue(line)
		}
		fmt.Fprintln(diag, line)
	}
}
