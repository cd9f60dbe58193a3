package splitcase

import (
	"fmt"
	"strings"
)

const (
	DefaultReceiver = "gb *Gameboy"
	DefaultReturn   = "return false"
)

type SynthesizedFunction struct {
	Name   string
	Body   []string
	Return string
}

// Synthesize turns one case of funcName into a function named funcName_label.
// A trailing return line of the case is kept as the function's return;
// otherwise DefaultReturn is used.
func Synthesize(funcName string, c CaseEntry) SynthesizedFunction {
	sf := SynthesizedFunction{
		Name:   funcName + "_" + c.Label,
		Body:   c.Lines,
		Return: DefaultReturn,
	}
	if c.HasExplicitReturn && len(c.Lines) > 0 {
		last := len(c.Lines) - 1
		sf.Body = c.Lines[:last]
		sf.Return = c.Lines[last]
	}
	return sf
}

// Render prints sf as Go source taking the single parameter receiver and
// returning bool. The result ends in a newline.
func (sf SynthesizedFunction) Render(receiver string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "func %s(%s) bool {\n", sf.Name, receiver)
	for _, line := range sf.Body {
		fmt.Fprintf(&b, "\t%s\n", line)
	}
	fmt.Fprintf(&b, "\t%s\n", sf.Return)
	b.WriteString("}\n")
	return b.String()
}
