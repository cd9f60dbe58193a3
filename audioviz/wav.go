package audioviz

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteWAV writes samples as 8-bit mono PCM.
func WriteWAV(w io.WriteSeeker, samples []byte, rate int) error {
	if len(samples) == 0 {
		return ErrEmpty
	}
	data := make([]int, len(samples))
	for i, b := range samples {
		data[i] = int(b)
	}
	enc := wav.NewEncoder(w, rate, 8, 1, 1)
	buf := &audio.IntBuffer{
		Data:           data,
		Format:         &audio.Format{SampleRate: rate, NumChannels: 1},
		SourceBitDepth: 8,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wav write: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav close: %w", err)
	}
	return nil
}
