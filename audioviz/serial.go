package audioviz

import (
	"fmt"
	"io"

	"github.com/jacobsa/go-serial/serial"
)

// OpenSerial opens the port a capture board streams samples on, 8N1.
func OpenSerial(tty string, baud uint) (io.ReadWriteCloser, error) {
	options := serial.OpenOptions{
		PortName:        tty,
		BaudRate:        baud,
		DataBits:        8,
		StopBits:        1,
		MinimumReadSize: 1,
	}
	port, err := serial.Open(options)
	if err != nil {
		return nil, fmt.Errorf("serial.Open %s: %w", tty, err)
	}
	return port, nil
}
