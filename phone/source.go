package phone

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strings"
)

var (
	ErrNotFound = errors.New("path not found")
	ErrNotAFile = errors.New("path is not a file")
	ErrEmpty    = errors.New("file is empty")
)

// PathError reports why a phone list could not be opened.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	switch {
	case errors.Is(e.Err, ErrNotFound):
		return fmt.Sprintf("Invalid path, \"%s\" not found.", e.Path)
	case errors.Is(e.Err, ErrNotAFile):
		return fmt.Sprintf("Invalid file, \"%s\" is not a file.", e.Path)
	case errors.Is(e.Err, ErrEmpty):
		return fmt.Sprintf("File \"%s\" is empty.", e.Path)
	default:
		return e.Err.Error()
	}
}

func (e *PathError) Unwrap() error { return e.Err }

// Source is a single-pass sequence over the lines of an opened file.
type Source struct {
	f       *os.File
	scanner *bufio.Scanner
	pending bool
}

// Open checks path and returns a Source positioned at the first line.
func Open(path string) (*Source, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &PathError{Path: path, Err: ErrNotFound}
	}
	if err != nil {
		return nil, &PathError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &PathError{Path: path, Err: ErrNotAFile}
	}
	if info.Size() == 0 {
		return nil, &PathError{Path: path, Err: ErrEmpty}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &PathError{Path: path, Err: err}
	}
	sc := bufio.NewScanner(f)
	// Lines of any length are classified, not rejected by the scanner.
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	s := &Source{f: f, scanner: sc}
	// Read ahead once so an unreadable file is reported here rather than mid-report.
	if !s.scanner.Scan() {
		err := s.scanner.Err()
		f.Close()
		if err != nil {
			return nil, &PathError{Path: path, Err: fmt.Errorf("failed to read: %w", err)}
		}
		return nil, &PathError{Path: path, Err: ErrEmpty}
	}
	s.pending = true
	return s, nil
}

// Next advances to the next line.
func (s *Source) Next() bool {
	if s.pending {
		s.pending = false
		return true
	}
	return s.scanner.Scan()
}

// Text returns the current line without its terminator.
func (s *Source) Text() string { return s.scanner.Text() }

// Err returns the first read error, if any.
func (s *Source) Err() error { return s.scanner.Err() }

// Close releases the underlying file.
func (s *Source) Close() error { return s.f.Close() }

// IsSkippable reports whether line is blank or a # comment.
func IsSkippable(line string) bool {
	t := strings.TrimSpace(line)
	return t == "" || strings.HasPrefix(t, "#")
}
