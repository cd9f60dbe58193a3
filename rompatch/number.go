package rompatch

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseNumber accepts $hex, 0x hex, %binary, 0b binary, 0-prefixed octal
// and decimal.
func ParseNumber(s string, bits int) (uint64, error) {
	var num uint64
	var err error

	switch {
	case strings.HasPrefix(s, "$"):
		num, err = strconv.ParseUint(s[1:], 16, bits)
	case strings.HasPrefix(s, "0x"):
		num, err = strconv.ParseUint(s[2:], 16, bits)
	case strings.HasPrefix(s, "0X"):
		num, err = strconv.ParseUint(s[2:], 16, bits)
	case strings.HasPrefix(s, "%"):
		num, err = strconv.ParseUint(s[1:], 2, bits)
	case strings.HasPrefix(s, "0b"):
		num, err = strconv.ParseUint(s[2:], 2, bits)
	case strings.HasPrefix(s, "0B"):
		num, err = strconv.ParseUint(s[2:], 2, bits)

	case strings.HasPrefix(s, "0"):
		num, err = strconv.ParseUint(s, 8, bits)

	default:
		num, err = strconv.ParseUint(s, 10, bits)
	}

	if err != nil {
		return 0, fmt.Errorf("bad numeric parse %q: %w", s, err)
	}
	return num, nil
}

// ParseEdits reads one edit per line: an offset followed by one or more
// byte values, separated by spaces or commas. '#' starts a comment.
//
//	# skip vram zeroing
//	$04  0 0 0 0 0 0 0 0
//	0x38b, 1
func ParseEdits(r io.Reader) ([]Edit, error) {
	var edits []Edit
	sc := bufio.NewScanner(r)
	for lineno := 1; sc.Scan(); lineno++ {
		line := sc.Text()
		var note string
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line, note = line[:i], strings.TrimSpace(line[i+1:])
		}
		w := strings.Fields(strings.ReplaceAll(line, ",", " "))
		if len(w) == 0 {
			continue
		}
		if len(w) < 2 {
			return nil, fmt.Errorf("line %d: want an offset and at least one value, got %q", lineno, sc.Text())
		}

		off, err := ParseNumber(w[0], 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: offset: %w", lineno, err)
		}
		e := Edit{Offset: int(off), Note: note}
		for _, s := range w[1:] {
			v, err := ParseNumber(s, 8)
			if err != nil {
				return nil, fmt.Errorf("line %d: value: %w", lineno, err)
			}
			e.Data = append(e.Data, byte(v))
		}
		edits = append(edits, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return edits, nil
}
