// Command plotaudio plots a raw unsigned 8-bit audio dump as a PNG
// waveform, reading it from a file or capturing it from a serial port.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/jonathangjertsen/gbscripts/audioviz"
	"github.com/jonathangjertsen/gbscripts/gbutil"
	. "github.com/strickyak/gomar/gu"
)

var IN = flag.String("in", "audio.bin", "raw dump to plot")
var TTY = flag.String("tty", "", "capture from this serial device instead of -in")
var BAUD = flag.Uint("baud", 115200, "serial device baud rate")
var N = flag.Int("n", 44100, "samples to capture from -tty")
var PNG = flag.String("png", "audio.png", "waveform image to write")
var WAV = flag.String("wav", "", "also write the samples as a WAV file")
var RATE = flag.Int("rate", 44100, "sample rate for -wav")
var WIDTH = flag.Int("width", audioviz.DefaultPlotOptions.Width, "image width")
var HEIGHT = flag.Int("height", audioviz.DefaultPlotOptions.Height, "image height")

func main() {
	flag.Parse()
	logger := gbutil.Setup(os.Stderr)

	var samples []byte
	var err error
	source := *IN
	if *TTY != "" {
		source = *TTY
		port, err := audioviz.OpenSerial(*TTY, *BAUD)
		if err != nil {
			log.Fatalf("plotaudio: %v", err)
		}
		samples, err = audioviz.Capture(port, *N)
		port.Close()
		if err != nil {
			log.Fatalf("plotaudio: %v", err)
		}
	} else {
		samples, err = audioviz.Load(*IN)
		if err != nil {
			log.Fatalf("plotaudio: %v", err)
		}
	}
	logger.Info("loaded", "source", source, "samples", len(samples))

	img := audioviz.Plot(samples, audioviz.PlotOptions{Width: *WIDTH, Height: *HEIGHT, Title: source})
	w := Value(os.Create(*PNG))
	Check(audioviz.WritePNG(w, img))
	Check(w.Close())
	logger.Info("wrote plot", "png", *PNG)

	if *WAV != "" {
		f := Value(os.Create(*WAV))
		Check(audioviz.WriteWAV(f, samples, *RATE))
		Check(f.Close())
		logger.Info("wrote wav", "wav", *WAV, "rate", *RATE)
	}
}
