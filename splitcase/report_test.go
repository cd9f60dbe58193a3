package splitcase

import (
	"bytes"
	"strings"
	"testing"
)

func TestMarkdown(t *testing.T) {
	funcs := NewExtractor(nil).Extract(handleSrc)
	md := string(Markdown(funcs, DefaultReceiver))
	for _, want := range []string{"## handle_1\n", "## handle_3\n", "```go\nfunc handle_2(gb *Gameboy) bool {\n", "3 functions"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown lacks %q:\n%s", want, md)
		}
	}
}

func TestWriteReport(t *testing.T) {
	src := "func show(e Event) bool {\n\tswitch e {\n\tcase 1:\n\t\tprint(\"<script>alert(1)</script>\")\n\t}\n}"
	funcs := NewExtractor(nil).Extract(src)
	if len(funcs) != 1 {
		t.Fatalf("got %d functions", len(funcs))
	}

	var bb bytes.Buffer
	if err := WriteReport(&bb, funcs, DefaultReceiver); err != nil {
		t.Fatal(err)
	}
	html := bb.String()
	if !strings.HasPrefix(html, "<html>") || !strings.HasSuffix(html, "</html>\n") {
		t.Errorf("report is not a page:\n%s", html)
	}
	for _, want := range []string{"<h2", "show_1", "<pre>", "&lt;script&gt;"} {
		if !strings.Contains(html, want) {
			t.Errorf("report lacks %q:\n%s", want, html)
		}
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("report contains a live script tag:\n%s", html)
	}
}
