package splitcase

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

const handleSrc = `func handle(e Event) bool {
	switch e {
	case 1:
		a()
		b()
	case 2:

		return c()
	case 3:
		if x {
			y()
		}
		return true
	}
	return false
}`

const handleOut = "func handle_1(gb *Gameboy) bool {\n\ta()\n\tb()\n\treturn false\n}\n" +
	"\n" +
	"func handle_2(gb *Gameboy) bool {\n\treturn c()\n}\n" +
	"\n" +
	"func handle_3(gb *Gameboy) bool {\n\tif x {\n\ty()\n\t}\n\treturn true\n}\n"

func TestSynthesize(t *testing.T) {
	tests := []struct {
		c    CaseEntry
		want string
	}{
		{
			CaseEntry{Label: "4", Lines: []string{"gb.CPU.Step()"}},
			"func op_4(gb *Gameboy) bool {\n\tgb.CPU.Step()\n\treturn false\n}\n",
		},
		{
			CaseEntry{Label: "5", Lines: []string{"x()", "return x2()"}, HasExplicitReturn: true},
			"func op_5(gb *Gameboy) bool {\n\tx()\n\treturn x2()\n}\n",
		},
		{
			CaseEntry{Label: "6", Lines: []string{"return true"}, HasExplicitReturn: true},
			"func op_6(gb *Gameboy) bool {\n\treturn true\n}\n",
		},
	}
	for _, tt := range tests {
		got := Synthesize("op", tt.c).Render(DefaultReceiver)
		if got != tt.want {
			t.Errorf("case %s:\n got %q\nwant %q", tt.c.Label, got, tt.want)
		}
	}
}

func TestRenderReceiver(t *testing.T) {
	sf := SynthesizedFunction{Name: "f_1", Return: DefaultReturn}
	want := "func f_1(cpu *CPU) bool {\n\treturn false\n}\n"
	if got := sf.Render("cpu *CPU"); got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestConvert(t *testing.T) {
	x := NewExtractor(nil)
	got, err := x.Convert(handleSrc)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if got != handleOut {
		t.Errorf("Convert:\n got %q\nwant %q", got, handleOut)
	}
	again, _ := x.Convert(handleSrc)
	if again != got {
		t.Errorf("second run differs")
	}
}

func TestConvertSpecExample(t *testing.T) {
	src := "func update(e Event) bool {\n switch e {\n case 1:\n doThing()\n return true\n case 2:\n }\n}"
	got, err := NewExtractor(nil).Convert(src)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	want := "func update_1(gb *Gameboy) bool {\n\tdoThing()\n\treturn true\n}\n"
	if got != want {
		t.Errorf("Convert = %q, want %q", got, want)
	}
}

func TestExtractCountsCases(t *testing.T) {
	for n := 1; n <= 5; n++ {
		var bb strings.Builder
		bb.WriteString("func step(e Event) bool {\n\tswitch e {\n")
		for i := 0; i < n; i++ {
			bb.WriteString("\tcase " + string(rune('0'+i)) + ":\n\t\twork()\n")
		}
		bb.WriteString("\t}\n\treturn false\n}\n")

		funcs := NewExtractor(nil).Extract(bb.String())
		if len(funcs) != n {
			t.Fatalf("n=%d: got %d functions", n, len(funcs))
		}
		for i, sf := range funcs {
			if want := "step_" + string(rune('0'+i)); sf.Name != want {
				t.Errorf("n=%d: function %d is %s, want %s", n, i, sf.Name, want)
			}
		}
	}
}

func TestExtractSeveralFunctions(t *testing.T) {
	src := handleSrc + "\n\n" +
		"func helper(a int) int {\n\treturn a\n}\n\n" +
		"func broken(e Event) bool {\n\tswitch e {\n\tcase 9:\n\t\tx()\n}\n\n" +
		"func other(e Event) bool {\n\tswitch e {\n\tcase 7:\n\t\tz()\n\t}\n\treturn false\n}\n"

	var names []string
	for _, sf := range NewExtractor(nil).Extract(src) {
		names = append(names, sf.Name)
	}
	// broken never balances, other is still found on its own.
	want := "handle_1 handle_2 handle_3 other_7"
	if got := strings.Join(names, " "); got != want {
		t.Errorf("names = %q, want %q", got, want)
	}
}

func TestExtractSkipsIndependently(t *testing.T) {
	src := "func helper(a int) int {\n\treturn a\n}\n\n" +
		"func empty(e Event) bool {\n\tswitch e {\n\tcase 1:\n\t}\n\treturn false\n}\n\n" +
		"func other(e Event) bool {\n\tswitch e {\n\tcase 7:\n\t\tz()\n\t}\n\treturn false\n}\n"
	got, err := NewExtractor(nil).Convert(src)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	want := "func other_7(gb *Gameboy) bool {\n\tz()\n\treturn false\n}\n"
	if got != want {
		t.Errorf("Convert = %q, want %q", got, want)
	}
}

func TestConvertNothing(t *testing.T) {
	inputs := []string{
		"",
		"hello world",
		"func f() {\n\treturn\n}",
		"func f(e Event) bool {\n\tswitch e {\n\tcase 1:\n\n\tcase 2:\n\t}\n}",
		"func f(e Event) bool {\n\tswitch e {\n\tcase 1:\n\t\tx()\n",
	}
	for _, src := range inputs {
		got, err := NewExtractor(nil).Convert(src)
		if !errors.Is(err, ErrNothingParsed) || got != "" {
			t.Errorf("Convert(%q) = %q, %v; want ErrNothingParsed", src, got, err)
		}
	}
}

func TestExtractLogsSkips(t *testing.T) {
	var bb bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&bb, &slog.HandlerOptions{Level: slog.LevelDebug}))
	x := NewExtractor(logger)
	x.Extract("func f() {\n\treturn\n}\nfunc g(e E) bool {\n\tswitch e {\n\tcase 3:\n\t}\n}\n")

	out := bb.String()
	for _, want := range []string{"skipping function", "name=f", "no switch on e", "skipping case", "label=3", "empty case body"} {
		if !strings.Contains(out, want) {
			t.Errorf("log does not mention %q:\n%s", want, out)
		}
	}
}

func TestExtractorReceiver(t *testing.T) {
	x := &Extractor{Receiver: "s *State"}
	got, err := x.Convert("func run(e int) bool { switch e { case 2: go() } }")
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	want := "func run_2(s *State) bool {\n\tgo()\n\treturn false\n}\n"
	if got != want {
		t.Errorf("Convert = %q, want %q", got, want)
	}
}
