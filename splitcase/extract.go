package splitcase

import (
	"io"
	"log/slog"
	"strings"
)

// Extractor runs the whole pipeline over pasted text.
type Extractor struct {
	Receiver string       // parameter list of every synthesized function
	Logger   *slog.Logger // skipped functions and cases, at debug level
}

func NewExtractor(logger *slog.Logger) *Extractor {
	return &Extractor{
		Receiver: DefaultReceiver,
		Logger:   logger,
	}
}

func (x *Extractor) logger() *slog.Logger {
	if x.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return x.Logger
}

func (x *Extractor) receiver() string {
	if x.Receiver == "" {
		return DefaultReceiver
	}
	return x.Receiver
}

// Extract returns the synthesized functions of every function in src,
// in the order their cases appear. Functions without a usable switch
// contribute nothing.
func (x *Extractor) Extract(src string) []SynthesizedFunction {
	log := x.logger()
	var out []SynthesizedFunction
	found := 0
	for fs, err := range Functions(src) {
		found++
		if err != nil {
			log.Debug("skipping function", "name", fs.Name, "err", err)
			continue
		}
		funcs, err := x.split(fs.Span.Of(src))
		if err != nil {
			log.Debug("skipping function", "name", fs.Name, "err", err)
			continue
		}
		out = append(out, funcs...)
	}
	if found == 0 {
		log.Debug("nothing to split", "err", ErrNoFunction)
	}
	return out
}

func (x *Extractor) split(fn string) ([]SynthesizedFunction, error) {
	name := nameOf(fn)
	if name == "" {
		return nil, ErrNoFunction
	}
	sw, err := FindSwitch(fn)
	if err != nil {
		return nil, err
	}
	cases, empty := segment(sw.Of(fn))
	for _, label := range empty {
		x.logger().Debug("skipping case", "function", name, "label", label, "err", ErrEmptyCase)
	}
	if len(cases) == 0 {
		return nil, ErrEmptyCase
	}
	funcs := make([]SynthesizedFunction, 0, len(cases))
	for _, c := range cases {
		funcs = append(funcs, Synthesize(name, c))
	}
	return funcs, nil
}

// Render joins the renderings of funcs, one blank line apart.
func (x *Extractor) Render(funcs []SynthesizedFunction) string {
	parts := make([]string, len(funcs))
	for i, sf := range funcs {
		parts[i] = sf.Render(x.receiver())
	}
	return strings.Join(parts, "\n")
}

// Convert is Extract followed by Render. It fails with ErrNothingParsed
// when no function could be synthesized.
func (x *Extractor) Convert(src string) (string, error) {
	funcs := x.Extract(src)
	if len(funcs) == 0 {
		return "", ErrNothingParsed
	}
	return x.Render(funcs), nil
}
