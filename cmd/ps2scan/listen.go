package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"github.com/xyproto/env/v2"

	ps2 "github.com/Voxeon/voxeon-os-ps2-scancodes"
)

func listenCommand() *cli.Command {
	return &cli.Command{
		Name:  "listen",
		Usage: "decode scan codes from a PS/2 to serial adapter",
		Flags: []cli.Flag{
			modeFlag(),
			&cli.StringFlag{
				Name:    "device",
				Aliases: []string{"d"},
				Usage:   "serial device (default $PS2_DEVICE, /dev/ttyUSB0 or /dev/ttyACM0)",
			},
			&cli.IntFlag{
				Name:  "baud",
				Usage: "serial speed",
				Value: env.Int("PS2_BAUD", defaultBaud),
			},
			&cli.DurationFlag{
				Name:  "stall",
				Usage: "reset the decoder when a sequence is unfinished for this long, 0 to never reset",
				Value: 250 * time.Millisecond,
			},
		},
		Action: func(c *cli.Context) error {
			mode, err := ps2.ParseReaderMode(c.String("mode"))
			if err != nil {
				return err
			}

			path := devicePath(c.String("device"))
			dev, err := openDevice(path, c.Int("baud"))
			if err != nil {
				return err
			}
			defer dev.Close()

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.WithFields(log.Fields{
				"device": path,
				"baud":   c.Int("baud"),
				"mode":   mode,
			}).Info("listening")

			return listen(ctx, dev, newDecoder(mode, stdoutPrinter(c)), c.Duration("stall"))
		},
	}
}

// listen decodes everything read from r until it fails, reaches EOF or ctx
// is done. Reading happens on its own goroutine, d is only used here.
func listen(ctx context.Context, r io.Reader, d *decoder, stall time.Duration) error {
	data := make(chan []byte, 64)
	readErr := make(chan error, 1)
	go readLoop(ctx, r, data, readErr)

	stallTimer := time.NewTimer(stall)
	stallTimer.Stop()
	defer stallTimer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case err := <-readErr:
			// Chunks read before the error are still queued
			drain(d, data)
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading scan codes: %w", err)

		case chunk := <-data:
			for _, b := range chunk {
				d.feed(b)
			}
			if stall > 0 && d.pending() > 0 {
				stallTimer.Reset(stall)
			} else {
				stallTimer.Stop()
			}

		case <-stallTimer.C:
			if n := d.pending(); n > 0 {
				log.WithField("pending", n).Warn("escape sequence stalled, resetting decoder")
				d.reset()
			}
		}
	}
}

func drain(d *decoder, data <-chan []byte) {
	for {
		select {
		case chunk := <-data:
			for _, b := range chunk {
				d.feed(b)
			}
		default:
			return
		}
	}
}

// readLoop continuously reads raw bytes from r
func readLoop(ctx context.Context, r io.Reader, data chan<- []byte, readErr chan<- error) {
	buf := make([]byte, 256)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			select {
			case data <- chunk:
			case <-ctx.Done():
				return
			}
		}
		if err != nil {
			readErr <- err
			return
		}
	}
}
