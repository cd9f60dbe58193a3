// Command splitfunc reads a pasted Go function built around `switch e`
// and copies one function per case to the clipboard.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jonathangjertsen/gbscripts/gbutil"
	"github.com/jonathangjertsen/gbscripts/splitcase"
	"github.com/peterh/liner"
	. "github.com/strickyak/gomar/gu"
)

var RECEIVER = flag.String("receiver", splitcase.DefaultReceiver, "parameter list of the generated functions")
var OUT = flag.String("out", "", "write to this file instead of the clipboard (- for stdout)")
var REPORT = flag.String("report", "", "also write an HTML preview to this file")

func main() {
	flag.Parse()
	logger := gbutil.Setup(os.Stderr)

	x := splitcase.NewExtractor(logger)
	x.Receiver = *RECEIVER

	var d splitcase.Deliverer = splitcase.Clipboard{}
	console := os.Stdout
	if *OUT != "" {
		d = splitcase.FileDeliverer{Path: *OUT, Stdout: os.Stdout}
		if *OUT == "-" {
			console = os.Stderr
		}
	}

	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)
	funcs, err := splitcase.Run(ln, d, x, console)
	ln.Close()
	if err != nil {
		log.Fatalf("splitfunc: %v", err)
	}

	if *REPORT != "" && len(funcs) > 0 {
		w := Value(os.Create(*REPORT))
		defer w.Close()
		if err := splitcase.WriteReport(w, funcs, x.Receiver); err != nil {
			log.Fatalf("writing report %q: %v", *REPORT, err)
		}
		fmt.Fprintf(console, "Report written to %s\n", *REPORT)
	}
}
