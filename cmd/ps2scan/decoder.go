package main

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	ps2 "github.com/Voxeon/voxeon-os-ps2-scancodes"
)

// decoder feeds scan codes to a keyboard and prints what comes out.
type decoder struct {
	kb     *ps2.Keyboard[ps2.USStandardLayout]
	out    *printer
	pos    int // bytes consumed so far
	events int
	errs   int
}

func newDecoder(mode ps2.ReaderMode, out *printer) *decoder {
	return &decoder{
		kb:  ps2.NewKeyboard(mode, ps2.USStandardLayout{}),
		out: out,
	}
}

func (d *decoder) feed(b byte) {
	fields := log.Fields{
		"byte": fmt.Sprintf("0x%02x", b),
		"pos":  d.pos,
	}
	d.pos++
	log.WithFields(fields).Debug("scan code")

	k, ok, err := d.kb.ProcessByte(b)
	if err != nil {
		d.errs++
		var de *ps2.DecodeError
		if errors.As(err, &de) && len(de.Expected()) > 0 {
			fields["expected"] = fmt.Sprintf("% x", de.Expected())
		}
		log.WithFields(fields).Warn(err.Error())
		return
	}
	if !ok {
		return
	}

	d.events++
	mods := d.kb.Modifiers()
	ch, hasChar := d.kb.Layout().KeyIntoChar(mods, k)
	d.out.event(k, ch, hasChar, mods)
}

// pending returns the number of bytes of an unfinished sequence.
func (d *decoder) pending() int {
	return d.kb.Pending()
}

// reset drops an unfinished sequence, keeping the scan code set.
func (d *decoder) reset() {
	d.kb.SwitchScanMode(d.kb.Mode())
}
