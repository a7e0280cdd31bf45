package ps2

// Keyboard feeds bytes to a Reader, keeps track of the modifier keys and
// maps decoded keys to characters with a Layout.
//
// A Keyboard is not safe for concurrent use; the caller feeds it from a
// single interrupt handler or polling loop.
type Keyboard[L Layout] struct {
	reader    Reader
	modifiers KeyModifierState
	layout    L
}

// NewKeyboard returns a Keyboard reading the given scan code set.
func NewKeyboard[L Layout](mode ReaderMode, layout L) *Keyboard[L] {
	return &Keyboard[L]{
		reader: Reader{mode: mode},
		layout: layout,
	}
}

// Modifiers returns a copy of the current modifier state.
func (kb *Keyboard[L]) Modifiers() KeyModifierState {
	return kb.modifiers
}

// Layout returns the layout characters are resolved with.
func (kb *Keyboard[L]) Layout() L {
	return kb.layout
}

// Mode returns the scan code set of the underlying Reader.
func (kb *Keyboard[L]) Mode() ReaderMode {
	return kb.reader.Mode()
}

// SwitchScanMode changes the scan code set and drops any partial sequence.
// Switching to the current mode is the way to recover from a sequence the
// controller never finished.
func (kb *Keyboard[L]) SwitchScanMode(mode ReaderMode) {
	kb.reader.SwitchScanMode(mode)
}

// Pending returns the number of bytes of the partial sequence seen so far.
func (kb *Keyboard[L]) Pending() int {
	return kb.reader.Pending()
}

// ResolveChar consumes one byte and returns the character it produces, if
// any. Decode errors are reported as no character; use ProcessByte to see
// them.
func (kb *Keyboard[L]) ResolveChar(b byte) (rune, bool) {
	k, ok := kb.RawInputByte(b)
	if !ok {
		return 0, false
	}
	return kb.layout.KeyIntoChar(kb.modifiers, k)
}

// RawInputByte is ProcessByte without the error.
func (kb *Keyboard[L]) RawInputByte(b byte) (Key, bool) {
	k, ok, err := kb.ProcessByte(b)
	if err != nil {
		return Key{}, false
	}
	return k, ok
}

// ProcessByte consumes one byte, updating the modifier state when it
// completes a key.
func (kb *Keyboard[L]) ProcessByte(b byte) (Key, bool, error) {
	k, ok, err := kb.reader.InputScanCode(b)
	if err != nil || !ok {
		return k, ok, err
	}
	kb.applyModifiers(k)
	return k, true, nil
}

func (kb *Keyboard[L]) applyModifiers(k Key) {
	m := &kb.modifiers
	down := k.IsPressed()

	switch k.ScanType() {
	case LeftShift:
		m.LeftShift = down
	case RightShift:
		m.RightShift = down
	case LeftCtrl:
		m.LeftCtrl = down
	case RightCtrl:
		m.RightCtrl = down
	case LeftAlt:
		m.LeftAlt = down
	case RightAlt:
		m.RightAlt = down
	case LeftGUI:
		m.LeftGUI = down
	case RightGUI:
		m.RightGUI = down

	// Locks toggle on press only, a release leaves them alone.
	case CapsLock:
		if down {
			m.CapsLock = !m.CapsLock
		}
	case NumLock:
		if down {
			m.NumLock = !m.NumLock
		}
	case ScrollLock:
		if down {
			m.ScrollLock = !m.ScrollLock
		}
	}
}
