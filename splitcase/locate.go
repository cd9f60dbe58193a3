// Package splitcase splits a Go function built around `switch e { case N: ... }`
// into standalone functions, one per case.
//
// It works on raw text. Functions and switches are found with regular
// expressions and closed by counting braces, so braces inside strings or
// comments are counted like any other.
package splitcase

import (
	"errors"
	"fmt"
	"iter"
	"regexp"
)

// SwitchVar is the only switch variable recognized.
const SwitchVar = "e"

var (
	ErrNoFunction    = errors.New("no function header")
	ErrUnbalanced    = errors.New("unbalanced braces")
	ErrNoSwitch      = errors.New("no switch on " + SwitchVar)
	ErrEmptyCase     = errors.New("empty case body")
	ErrNothingParsed = errors.New("could not parse any functions")
)

var funcHeader *regexp.Regexp
var funcName *regexp.Regexp
var switchHeader *regexp.Regexp
var caseLabel *regexp.Regexp

func init() {
	// ..... "func update(e Event) bool {"
	s := `func\s+\w+`   // keyword and name
	s += `\s*\([^)]*\)` // parameter list
	s += `\s*[^{]*{`    // optional results, then the opening brace
	funcHeader = regexp.MustCompile(s)

	funcName = regexp.MustCompile(`func\s+(\w+)\s*\(`)
	switchHeader = regexp.MustCompile(`switch\s+` + SwitchVar + `\s*{`)
	caseLabel = regexp.MustCompile(`case\s+(\d+):`)
}

// Span is a half-open byte range [Start, End).
type Span struct {
	Start, End int
}

func (s Span) Of(text string) string {
	return text[s.Start:s.End]
}

func (s Span) Len() int {
	return s.End - s.Start
}

type FunctionSpan struct {
	Name string
	Span Span // "func" through the closing brace
	Body Span // strictly between the outer braces
}

// MatchBrace returns the index of the brace closing the one at text[open].
// Every '{' counts one level deeper and every '}' one level shallower; the
// match is where the count returns to zero. It reports false if it never does.
func MatchBrace(text string, open int) (int, bool) {
	depth := 0
	for i := open; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return -1, false
}

// Functions yields every function definition in src, left to right.
// A header whose braces never balance is yielded with an error wrapping
// ErrUnbalanced and an empty span; the remaining headers are still tried.
// Ranging over the result again starts from the beginning.
func Functions(src string) iter.Seq2[FunctionSpan, error] {
	return func(yield func(FunctionSpan, error) bool) {
		for _, m := range funcHeader.FindAllStringIndex(src, -1) {
			fs := FunctionSpan{Name: nameOf(src[m[0]:m[1]])}
			open := m[1] - 1
			end, ok := MatchBrace(src, open)
			if !ok {
				err := fmt.Errorf("function %s at offset %d: %w", fs.Name, m[0], ErrUnbalanced)
				if !yield(fs, err) {
					return
				}
				continue
			}
			fs.Span = Span{m[0], end + 1}
			fs.Body = Span{open + 1, end}
			if !yield(fs, nil) {
				return
			}
		}
	}
}

func nameOf(text string) string {
	m := funcName.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}
