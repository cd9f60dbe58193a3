package splitcase

import (
	"fmt"
	"strings"
)

// SwitchSpan is the body of a switch, strictly between its braces.
type SwitchSpan struct {
	Span
}

// FindSwitch locates the first `switch e {` in fn and its closing brace.
// Offsets are relative to fn.
func FindSwitch(fn string) (SwitchSpan, error) {
	m := switchHeader.FindStringIndex(fn)
	if m == nil {
		return SwitchSpan{}, ErrNoSwitch
	}
	open := m[1] - 1
	end, ok := MatchBrace(fn, open)
	if !ok {
		return SwitchSpan{}, fmt.Errorf("switch at offset %d: %w", m[0], ErrUnbalanced)
	}
	return SwitchSpan{Span{open + 1, end}}, nil
}

type CaseEntry struct {
	Label             string   // decimal digits as written
	Lines             []string // trimmed, never blank
	HasExplicitReturn bool     // last line starts with "return"
}

// Cases cuts a switch body at every `case N:` marker. A case runs up to the
// next marker, the last one to the end of the body. Cases with nothing
// but blank lines are dropped.
func Cases(body string) []CaseEntry {
	cases, _ := segment(body)
	return cases
}

// segment is Cases that also reports the labels it dropped.
func segment(body string) (cases []CaseEntry, empty []string) {
	marks := caseLabel.FindAllStringSubmatchIndex(body, -1)
	for i, m := range marks {
		end := len(body)
		if i+1 < len(marks) {
			end = marks[i+1][0]
		}
		label := body[m[2]:m[3]]
		lines := bodyLines(body[m[1]:end])
		if len(lines) == 0 {
			empty = append(empty, label)
			continue
		}
		cases = append(cases, CaseEntry{
			Label:             label,
			Lines:             lines,
			HasExplicitReturn: strings.HasPrefix(lines[len(lines)-1], "return"),
		})
	}
	return cases, empty
}

func bodyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
