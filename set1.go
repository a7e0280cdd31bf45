package ps2

// A code is one entry of a scan code table. The zero value is an unmapped
// code.
type code struct {
	scanType ScanType
	keypad   bool
	mapped   bool
}

func key(s ScanType) code {
	return code{scanType: s, mapped: true}
}

func keypad(s ScanType) code {
	return code{scanType: s, keypad: true, mapped: true}
}

// pressed returns the press form of the table entry.
func (c code) pressed() (Key, bool) {
	if !c.mapped {
		return Key{}, false
	}
	return Key{scanType: c.scanType, state: Pressed, keypad: c.keypad}, true
}

// released returns the break form of the table entry.
func (c code) released() (Key, bool) {
	k, ok := c.pressed()
	if !ok {
		return Key{}, false
	}
	return k.Inverted(), true
}

// Set 1 single byte make codes. The break code of each is the make code
// with the high bit set.
var set1Codes = [...]code{
	0x01: key(Escape),
	0x02: key(Num1),
	0x03: key(Num2),
	0x04: key(Num3),
	0x05: key(Num4),
	0x06: key(Num5),
	0x07: key(Num6),
	0x08: key(Num7),
	0x09: key(Num8),
	0x0a: key(Num9),
	0x0b: key(Num0),
	0x0c: key(SymbolMinus),
	0x0d: key(SymbolEquals),
	0x0e: key(Backspace),
	0x0f: key(Tab),

	0x10: key(CharQ),
	0x11: key(CharW),
	0x12: key(CharE),
	0x13: key(CharR),
	0x14: key(CharT),
	0x15: key(CharY),
	0x16: key(CharU),
	0x17: key(CharI),
	0x18: key(CharO),
	0x19: key(CharP),
	0x1a: key(SymbolOpenSquareBracket),
	0x1b: key(SymbolCloseSquareBracket),
	0x1c: key(Enter),
	0x1d: key(LeftCtrl),

	0x1e: key(CharA),
	0x1f: key(CharS),
	0x20: key(CharD),
	0x21: key(CharF),
	0x22: key(CharG),
	0x23: key(CharH),
	0x24: key(CharJ),
	0x25: key(CharK),
	0x26: key(CharL),
	0x27: key(SymbolSemicolon),
	0x28: key(SymbolSingleQuote),
	0x29: key(SymbolBacktick),
	0x2a: key(LeftShift),
	0x2b: key(SymbolBackslash),

	0x2c: key(CharZ),
	0x2d: key(CharX),
	0x2e: key(CharC),
	0x2f: key(CharV),
	0x30: key(CharB),
	0x31: key(CharN),
	0x32: key(CharM),
	0x33: key(SymbolComma),
	0x34: key(SymbolPeriod),
	0x35: key(SymbolForwardSlash),
	0x36: key(RightShift),
	0x37: keypad(SymbolAsterisk),
	0x38: key(LeftAlt),
	0x39: key(Space),
	0x3a: key(CapsLock),

	0x3b: key(F1),
	0x3c: key(F2),
	0x3d: key(F3),
	0x3e: key(F4),
	0x3f: key(F5),
	0x40: key(F6),
	0x41: key(F7),
	0x42: key(F8),
	0x43: key(F9),
	0x44: key(F10),

	0x45: key(NumLock),
	0x46: key(ScrollLock),

	0x47: keypad(Num7),
	0x48: keypad(Num8),
	0x49: keypad(Num9),
	0x4a: keypad(SymbolMinus),
	0x4b: keypad(Num4),
	0x4c: keypad(Num5),
	0x4d: keypad(Num6),
	0x4e: keypad(SymbolPlus),
	0x4f: keypad(Num1),
	0x50: keypad(Num2),
	0x51: keypad(Num3),
	0x52: keypad(Num0),
	0x53: keypad(SymbolPeriod),

	// 0x54 to 0x56 are unused
	0x57: key(F11),
	0x58: key(F12),
}

// Set 1 codes that follow a 0xe0 prefix.
var set1MediaCodes = [...]code{
	0x10: key(PreviousTrack),
	0x19: key(NextTrack),
	0x1c: keypad(Enter),
	0x1d: key(RightCtrl),
	0x20: key(Mute),
	0x21: key(Calculator),
	0x22: key(Play),
	0x24: key(Stop),
	0x2e: key(VolumeDown),
	0x30: key(VolumeUp),
	0x32: key(WWWHome),
	0x35: keypad(SymbolForwardSlash),
	0x38: key(RightAlt),
	0x47: key(Home),
	0x48: key(CursorUp),
	0x49: key(PageUp),
	0x4b: key(CursorLeft),
	0x4d: key(CursorRight),
	0x4f: key(End),
	0x50: key(CursorDown),
	0x51: key(PageDown),
	0x52: key(Insert),
	0x53: key(Delete),
	0x5b: key(LeftGUI),
	0x5c: key(RightGUI),
	0x5d: key(Apps),
	0x5e: key(ACPIPower),
	0x5f: key(ACPISleep),
	0x63: key(ACPIWake),
	0x65: key(WWWSearch),
	0x66: key(WWWFavorites),
	0x67: key(WWWRefresh),
	0x68: key(WWWStop),
	0x69: key(WWWForward),
	0x6a: key(WWWBack),
	0x6b: key(MyComputer),
	0x6c: key(Email),
	0x6d: key(MediaSelect),
}

// lookupSet1 maps a single byte scan code. Unmapped codes return false.
func lookupSet1(c byte) (Key, bool) {
	switch {
	case int(c) < len(set1Codes):
		return set1Codes[c].pressed()
	case c >= 0x81 && c <= 0xd3:
		return set1Codes[c-0x80].released()
	case c == 0xd7:
		return NewKey(F11, Released), true
	case c == 0xd8:
		return NewKey(F12, Released), true
	}
	return Key{}, false
}

// lookupSet1Media maps the byte that follows a 0xe0 prefix.
func lookupSet1Media(c byte) (Key, bool) {
	switch {
	case int(c) < len(set1MediaCodes):
		return set1MediaCodes[c].pressed()
	case c >= 0x90 && c <= 0xed:
		return set1MediaCodes[c-0x80].released()
	}
	return Key{}, false
}
