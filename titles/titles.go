// Package titles counts how many movie titles contain each search term.
package titles

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MovieTitles is the fixed catalogue searched by Search.
var MovieTitles = []string{
	"Love Actually", "STAR WARS", "From Russia With love", "Dr. Strangelove",
	"Bourne Ultimatum", "The fault in our stars", "Bourne supremacy", "A star is born",
	"Starsky and Hutch", "Star Trek", "Lover's Paradise", "A Christmas Star",
	"Chitty Chitty Bang Bang", "Ernest Saves Christmas", "A CHRISTMAS CAROL",
	"The Muppet Christmas Carol", "White Christmas", "Fahrenheit 451",
}

const (
	smileyFace   = "\U0001F642"
	sadFace      = "\U0001F61E"
	thinkingFace = "\U0001F914"
)

// Match is a search term and the number of titles containing it as a whole word.
type Match struct {
	Term  string
	Count int
}

// Searcher matches terms against a title list.
type Searcher struct {
	titles [][]string
	lower  cases.Caser
}

// NewSearcher lower-cases and splits titles once.
func NewSearcher(titles []string) *Searcher {
	s := &Searcher{lower: cases.Lower(language.Und)}
	for _, t := range titles {
		s.titles = append(s.titles, strings.Fields(s.lower.String(t)))
	}
	return s
}

// Search returns the terms of input found in at least one title, sorted by term.
// Terms are case-insensitive and counted once per title.
func (s *Searcher) Search(input string) []Match {
	terms := map[string]struct{}{}
	for _, w := range strings.Fields(input) {
		terms[s.lower.String(w)] = struct{}{}
	}

	var out []Match
	for term := range terms {
		n := 0
		for _, words := range s.titles {
			for _, w := range words {
				if w == term {
					n++
					break
				}
			}
		}
		if n > 0 {
			out = append(out, Match{Term: term, Count: n})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Term < out[j].Term })
	return out
}

// Painter colours the match bars.
type Painter interface {
	Red(s string) string
}

// Run drives the interactive search until E or end of input.
func Run(in io.Reader, out io.Writer, p Painter) error {
	s := NewSearcher(MovieTitles)
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for {
		fmt.Fprintln(out, "\nEnter your search words(s) separated with one or more spaces/tabs, or E (to exit), and hit the Enter key:")
		if !sc.Scan() {
			break
		}
		input := strings.TrimRight(sc.Text(), "\r\n")
		trimmed := strings.TrimSpace(input)
		if strings.EqualFold(trimmed, "E") {
			break
		}
		if trimmed == "" {
			fmt.Fprintf(out, "Your input \"%s\" had no words to search for.%s\n", input, thinkingFace)
			continue
		}

		matches := s.Search(trimmed)
		if len(matches) == 0 {
			fmt.Fprintf(out, "\nSorry, none of the words in your input \"%s\" were found in the movie titles.%s\n", input, sadFace)
			continue
		}
		fmt.Fprintln(out)
		for _, m := range matches {
			fmt.Fprintf(out, "%-10s %s\n", m.Term, p.Red(strings.Repeat("*", m.Count)))
		}
		fmt.Fprintln(out, smileyFace)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	fmt.Fprintln(out, "\nExiting the program.")
	return nil
}
