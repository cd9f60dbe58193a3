package splitcase

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
)

const (
	PastePrompt   = "Paste your Go function (press Enter twice when done):"
	MsgCopied     = "Converted functions copied to clipboard!"
	MsgNothing    = "Could not parse any functions"
	blankLinesEnd = 2
)

var ErrNoClipboard = errors.New("no clipboard utility available")

// Prompter reads one line of input. *liner.State is one.
type Prompter interface {
	Prompt(prompt string) (string, error)
}

// ReadPasted collects lines until two empty lines in a row, or end of
// input. Empty lines are never kept.
func ReadPasted(p Prompter, prompt string) (string, error) {
	var lines []string
	empty := 0
	for empty < blankLinesEnd {
		line, err := p.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		if line == "" {
			empty++
			continue
		}
		empty = 0
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

// Deliverer hands the converted text to wherever it should end up.
type Deliverer interface {
	Deliver(text string) error
}

// Clipboard delivers to the system clipboard.
type Clipboard struct{}

func (Clipboard) Deliver(text string) error {
	if clipboard.Unsupported {
		return ErrNoClipboard
	}
	return clipboard.WriteAll(text)
}

func (Clipboard) Done() string {
	return MsgCopied
}

// FileDeliverer writes to Path, or to Stdout when Path is "-".
type FileDeliverer struct {
	Path   string
	Stdout io.Writer
}

func (f FileDeliverer) Deliver(text string) error {
	if f.Path == "-" {
		_, err := io.WriteString(f.Stdout, text)
		return err
	}
	return os.WriteFile(f.Path, []byte(text), 0o666)
}

func (f FileDeliverer) Done() string {
	if f.Path == "-" {
		return "Converted functions written to stdout"
	}
	return fmt.Sprintf("Converted functions written to %s", f.Path)
}

// Run is the whole interactive session: prompt, read, convert, deliver.
// Nothing is delivered when nothing converts; that is reported on out and
// is not an error. It returns what was delivered.
func Run(p Prompter, d Deliverer, x *Extractor, out io.Writer) ([]SynthesizedFunction, error) {
	fmt.Fprintln(out, PastePrompt)
	src, err := ReadPasted(p, "")
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	funcs := x.Extract(src)
	if len(funcs) == 0 {
		fmt.Fprintln(out, MsgNothing)
		return nil, nil
	}
	if err := d.Deliver(x.Render(funcs)); err != nil {
		return nil, fmt.Errorf("delivering output: %w", err)
	}
	fmt.Fprintln(out, doneMessage(d))
	return funcs, nil
}

func doneMessage(d Deliverer) string {
	if dd, ok := d.(interface{ Done() string }); ok {
		return dd.Done()
	}
	return MsgCopied
}
