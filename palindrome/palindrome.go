package palindrome

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Checker reports whether a normalized string reads the same in both directions.
type Checker struct {
	Name  string
	Check func(s string) bool
}

// Checkers run in this order for every input.
var Checkers = []Checker{
	{Name: "loop", Check: IsPalLoop},
	{Name: "recursion", Check: IsPalRecursive},
}

var folder = cases.Fold()

// Normalize keeps letters and digits and case-folds them.
func Normalize(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	return folder.String(sb.String())
}

func IsPalLoop(s string) bool {
	rs := []rune(s)
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		if rs[i] != rs[j] {
			return false
		}
	}
	return true
}

func IsPalRecursive(s string) bool {
	rs := []rune(s)
	var helper func(start, end int) bool
	helper = func(start, end int) bool {
		if start >= end {
			return true
		}
		if rs[start] != rs[end] {
			return false
		}
		return helper(start+1, end-1)
	}
	return helper(0, len(rs)-1)
}

// Verdict is the outcome of one checker on one piece of input.
type Verdict struct {
	Text       string
	Checker    string
	Palindrome bool
}

// Analyze checks the whole phrase and then each whitespace-separated word with
// every checker. Words without letters or digits are skipped.
func Analyze(input string) []Verdict {
	var out []Verdict
	add := func(text string) {
		norm := Normalize(text)
		if norm == "" {
			return
		}
		for _, c := range Checkers {
			out = append(out, Verdict{Text: text, Checker: c.Name, Palindrome: c.Check(norm)})
		}
	}

	phrase := strings.TrimSpace(input)
	add(phrase)
	words := strings.Fields(phrase)
	if len(words) > 1 {
		for _, w := range words {
			add(w)
		}
	}
	return out
}

// Run drives the interactive checker until E or end of input.
func Run(in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "This is a palindrome checker program.")
	fmt.Fprintln(out, "A palindrome is a word, phrase, or number that reads the same forward and backward.")
	fmt.Fprintln(out, `Strings "Kayak", "race car","161" are all palindromes.`)

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for {
		fmt.Fprintln(out, "\nEnter a string to check, or E to exit:")
		if !sc.Scan() {
			break
		}
		input := strings.TrimSpace(sc.Text())
		if strings.EqualFold(input, "E") {
			break
		}

		verdicts := Analyze(input)
		if len(verdicts) == 0 {
			fmt.Fprintf(out, "Your input \"%s\" has no letters or digits to check.\n", input)
			continue
		}
		for _, v := range verdicts {
			if v.Palindrome {
				fmt.Fprintf(out, "\"%s\" is a palindrome (%s)\n", v.Text, v.Checker)
			} else {
				fmt.Fprintf(out, "\"%s\" is not a palindrome (%s)\n", v.Text, v.Checker)
			}
		}
		fmt.Fprintln(out, "=====")
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	fmt.Fprintln(out, "Exiting the program.")
	return nil
}
