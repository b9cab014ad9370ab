// Command mygrep is a line-oriented pattern-matching tool built on
// package retomat: it answers "does this pattern occur somewhere in
// this line" the way grep -E does, by wrapping every pattern in an
// implicit ".*(...).*" before handing it to the engine, since retomat's
// own Accept is whole-string acceptance, not a substring search.
// The engine's alphabet is the 62 alphanumeric characters, so a line
// containing any other byte (a space, punctuation) never matches a
// non-literal pattern; literal-only patterns are found by substring
// search and are not affected.
//
// Grounded on EnnnOK-matcher/cmd/main.go for the overall shape (flag
// parsing, then lex/compile/match), generalized from "one pattern,
// one fixed argument" to grep's fuller interface (-i, repeatable -e,
// -f, multiple files, stdin). Multi-pattern runs pool every
// literal-only pattern into one github.com/coregx/ahocorasick
// automaton, the same "bypass the regex engine for large literal
// alternations" idea coregx's meta package applies above 32 patterns
// (meta/compile.go) — here applied whenever there is at least one
// literal, since mygrep has no regex engine of its own to fall
// back to for literals.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/coregx/ahocorasick"

	"github.com/kalinin-dev/retomat"
	"github.com/kalinin-dev/retomat/internal/cpuinfo"
	"github.com/kalinin-dev/retomat/internal/infix"
	"github.com/kalinin-dev/retomat/literal"
)

// stringList collects repeated -e flag occurrences, the same
// flag.Value pattern net/http-adjacent CLIs use for repeatable flags.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }
func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("mygrep", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var patternFlags stringList
	fs.Var(&patternFlags, "e", "pattern to match (repeatable)")
	patternFile := fs.String("f", "", "read patterns from FILE, one per line")
	ignoreCase := fs.Bool("i", false, "ignore case")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: mygrep [-i] [-e PATTERN]... [-f FILE] [PATTERN] [FILE]...")
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	rest := fs.Args()
	var patterns []string
	patterns = append(patterns, patternFlags...)

	if *patternFile != "" {
		fromFile, err := readPatternFile(*patternFile)
		if err != nil {
			fmt.Fprintf(stderr, "mygrep: %v\n", err)
			return 2
		}
		patterns = append(patterns, fromFile...)
	}

	if len(patterns) == 0 {
		if len(rest) == 0 {
			fs.Usage()
			return 2
		}
		patterns = append(patterns, rest[0])
		rest = rest[1:]
	}

	searcher, err := newSearcher(patterns, *ignoreCase)
	if err != nil {
		fmt.Fprintf(stderr, "mygrep: %v\n", err)
		return 2
	}

	files := rest
	printFilenames := len(files) > 1

	matched := false
	hadError := false

	if len(files) == 0 {
		ok, err := scan(os.Stdin, "", false, searcher, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "mygrep: %v\n", err)
			hadError = true
		}
		matched = matched || ok
	} else {
		for _, name := range files {
			f, err := os.Open(name)
			if err != nil {
				fmt.Fprintf(stderr, "mygrep: %v\n", err)
				hadError = true
				continue
			}
			ok, err := scan(f, name, printFilenames, searcher, stdout)
			f.Close()
			if err != nil {
				fmt.Fprintf(stderr, "mygrep: %s: %v\n", name, err)
				hadError = true
			}
			matched = matched || ok
		}
	}

	switch {
	case hadError:
		return 2
	case matched:
		return 0
	default:
		return 1
	}
}

func readPatternFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// searcher decides whether a single line matches any of the compiled
// patterns. Literal-only patterns are pooled into one Aho-Corasick
// automaton; everything else falls back to a retomat.Matcher per
// pattern.
type searcher struct {
	ignoreCase bool
	automaton  *ahocorasick.Automaton
	matchers   []*retomat.Matcher
	// readAhead sizes the bufio.Reader that feeds the line scanner: on
	// CPUs with a fast vectorized comparison path (internal/cpuinfo),
	// larger reads amortize more syscall overhead per line batch.
	readAhead int
}

func newSearcher(patterns []string, ignoreCase bool) (*searcher, error) {
	s := &searcher{ignoreCase: ignoreCase, readAhead: 64 * 1024}
	if cpuinfo.HasFastPath() {
		s.readAhead = 256 * 1024
	}

	var literals [][]byte
	for _, p := range patterns {
		norm := p
		if ignoreCase {
			norm = strings.ToLower(norm)
		}

		postfix, err := infix.ToPostfix(norm)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
		root, err := retomat.AST(postfix)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}

		if word, ok := literal.ExtractLiteral(root); ok {
			literals = append(literals, word)
			continue
		}

		occurrence := ".*(" + norm + ").*"
		occurrencePostfix, err := infix.ToPostfix(occurrence)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
		m, err := retomat.Compile(occurrencePostfix)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
		s.matchers = append(s.matchers, m)
	}

	if len(literals) > 0 {
		builder := ahocorasick.NewBuilder()
		for _, word := range literals {
			builder.AddPattern(word)
		}
		auto, err := builder.Build()
		if err != nil {
			return nil, fmt.Errorf("building literal automaton: %w", err)
		}
		s.automaton = auto
	}

	return s, nil
}

func (s *searcher) matches(line string) (bool, error) {
	haystack := line
	if s.ignoreCase {
		haystack = strings.ToLower(haystack)
	}

	if s.automaton != nil && s.automaton.IsMatch([]byte(haystack)) {
		return true, nil
	}
	for _, m := range s.matchers {
		ok, err := m.Accept(haystack)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func scan(r io.Reader, filename string, printFilenames bool, s *searcher, out io.Writer) (bool, error) {
	br := bufio.NewReaderSize(r, s.readAhead)
	sc := bufio.NewScanner(br)

	matched := false
	for sc.Scan() {
		line := sc.Text()
		ok, err := s.matches(line)
		if err != nil {
			return matched, err
		}
		if ok {
			matched = true
			if printFilenames {
				fmt.Fprintf(out, "%s:%s\n", filename, line)
			} else {
				fmt.Fprintln(out, line)
			}
		}
	}
	return matched, sc.Err()
}
