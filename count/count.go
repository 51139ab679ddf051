// Package count reports line, word and character totals for files and directory trees.
package count

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Options selects which totals are reported. The zero value selects none;
// use All or Options.OrAll for the "no flag given" case.
type Options struct {
	Chars bool
	Words bool
	Lines bool
}

var All = Options{Chars: true, Words: true, Lines: true}

// OrAll returns All when o selects nothing.
func (o Options) OrAll() Options {
	if !o.Chars && !o.Words && !o.Lines {
		return All
	}
	return o
}

// Totals are the counts for one file.
type Totals struct {
	Chars int
	Words int
	Lines int
}

// Throttle paces file opens.
type Throttle interface {
	Wait(ctx context.Context) error
}

// InvalidPathError is returned when the root is neither a file nor a directory.
type InvalidPathError struct {
	Path string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("Invalid path \"%s\"", e.Path)
}

// Counter walks paths and writes one report line per file to Out.
type Counter struct {
	Out      io.Writer
	Opts     Options
	Throttle Throttle
}

// Run reports on path, which may be a file or a directory.
func (c *Counter) Run(ctx context.Context, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &InvalidPathError{Path: path}
	}
	switch {
	case info.Mode().IsRegular():
		return c.file(ctx, path, info)
	case info.IsDir():
		return c.dir(ctx, path)
	default:
		return &InvalidPathError{Path: path}
	}
}

func (c *Counter) dir(ctx context.Context, path string) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("failed to read directory \"%s\": %w", path, err)
	}

	empty, hasSubdirs := true, false
	for _, e := range entries {
		sub := filepath.Join(path, e.Name())
		// Follow symlinks the way Stat does for the root.
		info, err := os.Stat(sub)
		if err != nil {
			continue
		}
		switch {
		case info.Mode().IsRegular():
			if empty {
				fmt.Fprintf(c.Out, "\nDirectory name: \"%s\"\n", path)
				empty = false
			}
			if err := c.file(ctx, sub, info); err != nil {
				return err
			}
		case info.IsDir():
			hasSubdirs = true
			if err := c.dir(ctx, sub); err != nil {
				return err
			}
		}
	}

	if empty && !hasSubdirs {
		fmt.Fprintf(c.Out, "\nDirectory \"%s\" is empty\n", path)
	}
	return nil
}

// file reports one file. Only a cancelled throttle is returned as an error;
// read failures are reported inline and the walk continues.
func (c *Counter) file(ctx context.Context, path string, info os.FileInfo) error {
	name := filepath.Base(path)
	if info.Size() == 0 {
		fmt.Fprintf(c.Out, "File \"%s\" is empty\n", name)
		return nil
	}

	if c.Throttle != nil {
		if err := c.Throttle.Wait(ctx); err != nil {
			return err
		}
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(c.Out, "File name:\"%s\", error: %v\n", name, err)
		return nil
	}
	defer f.Close()

	t, err := Count(f)
	if err != nil {
		fmt.Fprintf(c.Out, "File name:\"%s\", error: %v\n", name, err)
		return nil
	}
	fmt.Fprintln(c.Out, Format(name, t, c.Opts))
	return nil
}

// Count tallies r line by line. Characters exclude line terminators.
func Count(r io.Reader) (Totals, error) {
	var t Totals
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			t.Lines++
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			t.Chars += utf8.RuneCountInString(line)
			t.Words += len(strings.Fields(line))
		}
		if err == io.EOF {
			return t, nil
		}
		if err != nil {
			return Totals{}, err
		}
	}
}

// Format renders the report line for one file.
func Format(name string, t Totals, o Options) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "File name:\"%s\"", name)
	if o.Chars {
		fmt.Fprintf(&sb, ", char count:%d", t.Chars)
	}
	if o.Words {
		fmt.Fprintf(&sb, ", word count:%d", t.Words)
	}
	if o.Lines {
		fmt.Fprintf(&sb, ", line count:%d", t.Lines)
	}
	sb.WriteString(",")
	return sb.String()
}
