package palindrome

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Race Car!", "racecar"},
		{"A man, a plan, a canal: Panama", "amanaplanacanalpanama"},
		{"161", "161"},
		{"ÉtÉ", "été"},
		{"?!", ""},
	}
	for _, tc := range tests {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCheckersAgree(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"a", true},
		{"kayak", true},
		{"racecar", true},
		{"abba", true},
		{"abca", false},
		{"ab", false},
		{"été", true},
		{"éta", false},
	}
	for _, tc := range tests {
		for _, c := range Checkers {
			if got := c.Check(tc.in); got != tc.want {
				t.Errorf("%s(%q) = %v, want %v", c.Name, tc.in, got, tc.want)
			}
		}
	}
}

func TestAnalyze(t *testing.T) {
	got := Analyze("  race car ")
	want := []Verdict{
		{Text: "race car", Checker: "loop", Palindrome: true},
		{Text: "race car", Checker: "recursion", Palindrome: true},
		{Text: "race", Checker: "loop", Palindrome: false},
		{Text: "race", Checker: "recursion", Palindrome: false},
		{Text: "car", Checker: "loop", Palindrome: false},
		{Text: "car", Checker: "recursion", Palindrome: false},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Analyze() mismatch (-want +got):\n%s", diff)
	}

	if got := Analyze("Kayak"); len(got) != len(Checkers) {
		t.Errorf("Analyze(single word) = %d verdicts, want %d", len(got), len(Checkers))
	}
	if got := Analyze("!!! ..."); len(got) != 0 {
		t.Errorf("Analyze(punctuation) = %+v, want none", got)
	}
}

func TestRun(t *testing.T) {
	in := strings.NewReader("Kayak\n???\ne\nnever read\n")
	var out bytes.Buffer
	if err := Run(in, &out); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	s := out.String()
	for _, want := range []string{
		`"Kayak" is a palindrome (loop)`,
		`"Kayak" is a palindrome (recursion)`,
		`Your input "???" has no letters or digits to check.`,
		"Exiting the program.",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("Run() output missing %q:\n%s", want, s)
		}
	}
	if strings.Contains(s, "never read") {
		t.Errorf("Run() kept reading after E:\n%s", s)
	}
}

func TestRun_EOFExits(t *testing.T) {
	var out bytes.Buffer
	if err := Run(strings.NewReader("abba"), &out); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if !strings.HasSuffix(out.String(), "Exiting the program.\n") {
		t.Errorf("Run() output does not end with the exit line:\n%s", out.String())
	}
}

func TestRun_LongInputLine(t *testing.T) {
	long := strings.Repeat("a", 70000)
	var out bytes.Buffer
	if err := Run(strings.NewReader(long+"\nE\n"), &out); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "is a palindrome (recursion)") {
		t.Errorf("Run() did not check the long input")
	}
}
