package splitcase

import (
	"bytes"
	"fmt"
	"io"

	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday"
)

// Markdown lists every synthesized function under its own heading.
func Markdown(funcs []SynthesizedFunction, receiver string) []byte {
	var bb bytes.Buffer
	fmt.Fprintf(&bb, "# Converted functions\n\n")
	fmt.Fprintf(&bb, "%d functions, in source order.\n\n", len(funcs))
	for _, sf := range funcs {
		fmt.Fprintf(&bb, "## %s\n\n", sf.Name)
		fmt.Fprintf(&bb, "```go\n%s```\n\n", sf.Render(receiver))
	}
	return bb.Bytes()
}

// WriteReport writes an HTML preview of funcs.
func WriteReport(w io.Writer, funcs []SynthesizedFunction, receiver string) error {
	t1 := blackfriday.MarkdownCommon(Markdown(funcs, receiver))
	t2 := bluemonday.UGCPolicy().SanitizeBytes(t1)
	_, err := fmt.Fprintf(w, "%s%s%s", reportHead, t2, reportTail)
	return err
}

const reportHead = `<html>
  <head>
    <meta http-equiv="Content-Type" content="text/html; charset=UTF-8">
    <title>splitfunc</title>
    <style>
      body {
        font-family: "Trebuchet Ms", Verdana, sans-serif;
      }
      pre {
        width: 95%;
        padding: 0.6em;
        background-color: #f0f0f0;
      }
    </style>
  </head>
  <body>
`

const reportTail = `
  </body>
</html>
`
