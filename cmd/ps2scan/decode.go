package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	ps2 "github.com/Voxeon/voxeon-os-ps2-scancodes"
)

func decodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "decode scan codes given as hex arguments or on stdin",
		ArgsUsage: "[HEX...]",
		Flags: []cli.Flag{
			modeFlag(),
			&cli.BoolFlag{
				Name:  "raw",
				Usage: "read binary scan codes from stdin instead of hex text",
			},
		},
		Action: func(c *cli.Context) error {
			mode, err := ps2.ParseReaderMode(c.String("mode"))
			if err != nil {
				return err
			}

			var codes []byte
			switch {
			case c.Args().Present():
				codes, err = parseHex(c.Args().Slice())
			case c.Bool("raw"):
				codes, err = io.ReadAll(os.Stdin)
			default:
				codes, err = readHex(os.Stdin)
			}
			if err != nil {
				return fmt.Errorf("reading scan codes: %w", err)
			}

			d := newDecoder(mode, stdoutPrinter(c))
			decodeAll(d, codes)
			return nil
		},
	}
}

func decodeAll(d *decoder, codes []byte) {
	for _, b := range codes {
		d.feed(b)
	}
	if n := d.pending(); n > 0 {
		log.WithField("pending", n).Warn("input ended inside an escape sequence")
	}
	log.WithFields(log.Fields{
		"bytes":  len(codes),
		"events": d.events,
		"errors": d.errs,
	}).Debug("done")
}
