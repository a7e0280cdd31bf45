package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/term"
	"github.com/xyproto/env/v2"
)

const defaultBaud = 115200

// defaultDevice returns the serial device of the PS/2 adapter
func defaultDevice() string {
	// Explicitly configured device
	if dev := env.Str("PS2_DEVICE"); dev != "" {
		return dev
	}

	// USB serial adapters, then CDC ACM boards
	for _, dev := range []string{"/dev/ttyUSB0", "/dev/ttyACM0"} {
		if _, err := os.Stat(dev); err == nil {
			return dev
		}
	}

	return "/dev/ttyUSB0"
}

// devicePath returns the path given with --device, or the default one
func devicePath(flag string) string {
	if flag != "" {
		return flag
	}
	return defaultDevice()
}

type port interface {
	io.Reader
	Restore() error
	Close() error
}

// device is a serial port in raw mode
type device struct {
	t port
}

// openDevice opens the serial port at the given speed, in raw mode
func openDevice(path string, baud int) (*device, error) {
	t, err := term.Open(path, term.Speed(baud), term.RawMode)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &device{t}, nil
}

func (d *device) Read(p []byte) (int, error) {
	return d.t.Read(p)
}

// Close restores the port settings and closes it
func (d *device) Close() error {
	restoreErr := d.t.Restore()
	if err := d.t.Close(); err != nil {
		return err
	}
	if restoreErr != nil {
		return fmt.Errorf("restoring port settings: %w", restoreErr)
	}
	return nil
}
