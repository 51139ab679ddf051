package phone

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestOpen_PathErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		path    string
		wantErr error
		wantMsg string
	}{
		{
			name:    "Missing",
			path:    filepath.Join(dir, "nope.txt"),
			wantErr: ErrNotFound,
			wantMsg: `Invalid path, "` + filepath.Join(dir, "nope.txt") + `" not found.`,
		},
		{
			name:    "Directory",
			path:    dir,
			wantErr: ErrNotAFile,
			wantMsg: `Invalid file, "` + dir + `" is not a file.`,
		},
		{
			name:    "ZeroBytes",
			path:    writeFile(t, "empty.txt", ""),
			wantErr: ErrEmpty,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src, err := Open(tc.path)
			if src != nil {
				src.Close()
				t.Fatalf("Open(%q) returned a source, want error", tc.path)
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Open(%q) error = %v, want %v", tc.path, err, tc.wantErr)
			}
			var pe *PathError
			if !errors.As(err, &pe) || pe.Path != tc.path {
				t.Errorf("Open(%q) error %v is not a *PathError for the path", tc.path, err)
			}
			if tc.wantMsg != "" && err.Error() != tc.wantMsg {
				t.Errorf("Open(%q) message = %q, want %q", tc.path, err.Error(), tc.wantMsg)
			}
		})
	}
}

func TestSource_YieldsEveryLineOnce(t *testing.T) {
	path := writeFile(t, "list.txt", "first\n\n# note\nlast")
	src, err := Open(path)
	if err != nil {
		t.Fatalf("Open() unexpected error: %v", err)
	}
	defer src.Close()

	var got []string
	for src.Next() {
		got = append(got, src.Text())
	}
	if err := src.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	want := []string{"first", "", "# note", "last"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
	if src.Next() {
		t.Errorf("Next() after exhaustion = true, want false")
	}
}

func TestIsSkippable(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"", true},
		{" \t ", true},
		{"#", true},
		{"  # indented", true},
		{"212-555-0199 # trailing", false},
		{"x", false},
	}
	for _, tc := range tests {
		if got := IsSkippable(tc.line); got != tc.want {
			t.Errorf("IsSkippable(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}

func TestCheck_LongLinesAreClassified(t *testing.T) {
	long := strings.Repeat("x", 70000)
	tests := []struct {
		name        string
		content     string
		wantValid   int
		wantInvalid []Result
	}{
		{
			name:        "BetweenValidNumbers",
			content:     "212-555-0199\n" + long + "\n212-555-0100\n",
			wantValid:   2,
			wantInvalid: []Result{{Text: long, Reason: UnrecognizedFormat}},
		},
		{
			name:        "FirstLine",
			content:     strings.Repeat("9", 70000) + "\n",
			wantInvalid: []Result{{Text: strings.Repeat("9", 70000), Reason: UnrecognizedFormat}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src, err := Open(writeFile(t, "list.txt", tc.content))
			if err != nil {
				t.Fatalf("Open() unexpected error: %v", err)
			}
			defer src.Close()

			rep, err := Check(src)
			if err != nil {
				t.Fatalf("Check() unexpected error: %v", err)
			}
			if len(rep.Valid) != tc.wantValid {
				t.Errorf("valid = %d, want %d", len(rep.Valid), tc.wantValid)
			}
			if diff := cmp.Diff(tc.wantInvalid, rep.Invalid); diff != "" {
				t.Errorf("invalid mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPathError_PrintsPathVerbatim(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrNotFound, "Invalid path, \"C:\\x\ty\" not found."},
		{ErrNotAFile, "Invalid file, \"C:\\x\ty\" is not a file."},
		{ErrEmpty, "File \"C:\\x\ty\" is empty."},
	}
	for _, tc := range tests {
		pe := &PathError{Path: "C:\\x\ty", Err: tc.err}
		if got := pe.Error(); got != tc.want {
			t.Errorf("Error() = %q, want %q", got, tc.want)
		}
	}
}
