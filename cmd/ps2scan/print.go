package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mgutz/ansi"

	ps2 "github.com/Voxeon/voxeon-os-ps2-scancodes"
)

type printer struct {
	w     io.Writer
	color bool
}

func newPrinter(w io.Writer, color bool) *printer {
	return &printer{w: w, color: color}
}

func (p *printer) paint(s, style string) string {
	if !p.color {
		return s
	}
	return ansi.Color(s, style)
}

// event prints one decoded key, the character it produced and the
// modifiers that are active afterwards.
func (p *printer) event(k ps2.Key, ch rune, hasChar bool, mods ps2.KeyModifierState) {
	name := k.ScanType().String()
	if k.Keypad() {
		name = "keypad " + name
	}

	state := fmt.Sprintf("%-8s", k.State())
	if k.IsPressed() {
		state = p.paint(state, "green+b")
	} else {
		state = p.paint(state, "red")
	}

	char := "-"
	if hasChar {
		char = strconv.QuoteRune(ch)
	}

	line := fmt.Sprintf("%-26s %s %-6s", name, state, p.paint(char, "yellow"))
	if names := modifierNames(mods); len(names) > 0 {
		line += " " + p.paint("["+strings.Join(names, " ")+"]", "cyan")
	}
	fmt.Fprintln(p.w, strings.TrimRight(line, " "))
}

// modifierNames lists the active modifiers in a fixed order.
func modifierNames(m ps2.KeyModifierState) []string {
	var names []string
	for _, mod := range []struct {
		on   bool
		name string
	}{
		{m.LeftShift, "LeftShift"},
		{m.RightShift, "RightShift"},
		{m.LeftCtrl, "LeftCtrl"},
		{m.RightCtrl, "RightCtrl"},
		{m.LeftAlt, "LeftAlt"},
		{m.RightAlt, "RightAlt"},
		{m.LeftGUI, "LeftGUI"},
		{m.RightGUI, "RightGUI"},
		{m.CapsLock, "CapsLock"},
		{m.NumLock, "NumLock"},
		{m.ScrollLock, "ScrollLock"},
	} {
		if mod.on {
			names = append(names, mod.name)
		}
	}
	return names
}
