package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"github.com/xyproto/env/v2"
	"golang.org/x/term"
)

func main() {
	app := &cli.App{
		Name:  "ps2scan",
		Usage: "decode PS/2 scan code set 1 bytes into key events",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "log every raw byte",
				Value: env.Bool("PS2_DEBUG"),
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output",
				Value: env.Has("NO_COLOR"),
			},
		},
		Before: func(c *cli.Context) error {
			log.SetOutput(os.Stderr)
			log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
			if c.Bool("debug") {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			decodeCommand(),
			listenCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Error("ps2scan failed")
		os.Exit(1)
	}
}

// stdoutPrinter returns a printer for stdout, colored when stdout is a
// terminal and colors have not been turned off.
func stdoutPrinter(c *cli.Context) *printer {
	color := !c.Bool("no-color") && term.IsTerminal(int(os.Stdout.Fd()))
	return newPrinter(os.Stdout, color)
}

func modeFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "mode",
		Aliases: []string{"m"},
		Usage:   "scan code set: set1, set2 or set3",
		Value:   env.Str("PS2_MODE", "set1"),
	}
}
