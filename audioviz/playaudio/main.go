// Command playaudio plays a raw unsigned 8-bit audio dump on the default
// output device.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/gordonklaus/portaudio"
	"github.com/jonathangjertsen/gbscripts/audioviz"
	"github.com/jonathangjertsen/gbscripts/gbutil"
)

var IN = flag.String("in", "audio.bin", "raw dump to play")
var RATE = flag.Int("rate", 44100, "sample rate")

const framesPerBuffer = 512

func main() {
	flag.Parse()
	logger := gbutil.Setup(os.Stderr)

	samples, err := audioviz.Load(*IN)
	if err != nil {
		log.Fatalf("playaudio: %v", err)
	}
	logger.Info("playing", "in", *IN, "samples", len(samples), "rate", *RATE)
	if err := Play(samples, *RATE); err != nil {
		log.Fatalf("playaudio: %v", err)
	}
}

// Play blocks until every sample has been written to the stream.
func Play(samples []byte, rate int) error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}
	defer portaudio.Terminate()

	out := make([]float32, framesPerBuffer)
	stream, err := portaudio.OpenDefaultStream(0, 1, float64(rate), len(out), &out)
	if err != nil {
		return err
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return err
	}
	for len(samples) > 0 {
		for i := range out {
			out[i] = 0
			if i < len(samples) {
				out[i] = audioviz.Centered(samples[i])
			}
		}
		samples = samples[min(len(out), len(samples)):]
		if err := stream.Write(); err != nil {
			return err
		}
	}
	return stream.Stop()
}
