package ps2

// KeyModifierState is a snapshot of the modifier and lock keys.
type KeyModifierState struct {
	LeftShift  bool
	LeftAlt    bool
	LeftCtrl   bool
	LeftGUI    bool
	RightShift bool
	RightAlt   bool
	RightCtrl  bool
	RightGUI   bool
	CapsLock   bool
	NumLock    bool
	ScrollLock bool
}

func (m KeyModifierState) ShiftDown() bool {
	return m.LeftShift || m.RightShift
}

func (m KeyModifierState) CtrlDown() bool {
	return m.LeftCtrl || m.RightCtrl
}

func (m KeyModifierState) AltDown() bool {
	return m.LeftAlt || m.RightAlt
}

func (m KeyModifierState) GUIDown() bool {
	return m.LeftGUI || m.RightGUI
}

// A Layout turns a key into a character. It only maps keys, tracking the
// modifiers is the job of the Keyboard.
type Layout interface {
	KeyIntoChar(modifiers KeyModifierState, key Key) (rune, bool)
}
