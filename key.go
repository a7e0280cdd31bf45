package ps2

// ScanType is the symbolic identity of a physical key.
//
// The order of the constants is significant: the category predicates below
// test contiguous ranges, so new identifiers must be added inside the group
// they belong to or after Pause.
type ScanType uint8

const (
	// Numbers
	Num0 ScanType = iota
	Num1
	Num2
	Num3
	Num4
	Num5
	Num6
	Num7
	Num8
	Num9

	// Letters
	CharA
	CharB
	CharC
	CharD
	CharE
	CharF
	CharG
	CharH
	CharI
	CharJ
	CharK
	CharL
	CharM
	CharN
	CharO
	CharP
	CharQ
	CharR
	CharS
	CharT
	CharU
	CharV
	CharW
	CharX
	CharY
	CharZ

	// Symbols
	SymbolPlus
	SymbolMinus
	SymbolEquals
	SymbolOpenSquareBracket
	SymbolCloseSquareBracket
	SymbolSemicolon
	SymbolSingleQuote
	SymbolBacktick
	SymbolBackslash
	SymbolComma
	SymbolPeriod
	SymbolForwardSlash
	SymbolAsterisk

	// Control keys
	Escape
	Backspace
	Tab
	Enter
	LeftCtrl
	RightCtrl
	LeftShift
	RightShift
	LeftAlt
	RightAlt
	LeftGUI
	RightGUI
	Space

	// Function keys
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12

	// Locks
	NumLock
	ScrollLock
	CapsLock

	Home

	// Paging
	PageUp
	PageDown

	// Arrow keys
	CursorUp
	CursorLeft
	CursorRight
	CursorDown

	Insert
	Delete
	End

	// ACPI keys
	ACPIPower
	ACPISleep
	ACPIWake

	// Multimedia keys
	PreviousTrack
	NextTrack
	Mute
	Calculator
	Stop
	Play
	WWWHome
	VolumeUp
	VolumeDown
	Apps
	WWWSearch
	WWWFavorites
	WWWRefresh
	WWWStop
	WWWForward
	WWWBack
	MyComputer
	Email
	MediaSelect
	PrintScreen
	Pause

	// Unknown is reserved for keys that have no identity of their own.
	Unknown ScanType = 0xff
)

// IsNum returns true for the digit keys, on the main block or the keypad.
func (s ScanType) IsNum() bool {
	return s >= Num0 && s <= Num9
}

// IsLetter returns true for CharA through CharZ.
func (s ScanType) IsLetter() bool {
	return s >= CharA && s <= CharZ
}

// IsSymbol returns true for the punctuation and operator keys.
func (s ScanType) IsSymbol() bool {
	return s >= SymbolPlus && s <= SymbolAsterisk
}

// IsFunctionKey returns true for F1 through F12.
func (s ScanType) IsFunctionKey() bool {
	return s >= F1 && s <= F12
}

// IsLock returns true for the three toggling lock keys.
func (s ScanType) IsLock() bool {
	return s >= NumLock && s <= CapsLock
}

// IsModifier returns true for the left and right ctrl, shift, alt and GUI keys.
func (s ScanType) IsModifier() bool {
	return s >= LeftCtrl && s <= RightGUI
}

// KeyState tells whether a key went down or came back up.
type KeyState uint8

const (
	Pressed KeyState = iota
	Released
)

func (s KeyState) String() string {
	if s == Pressed {
		return "Pressed"
	}
	return "Released"
}

// Key is a single decoded key transition. Keys coming from the numeric
// keypad carry the keypad flag so a layout can tell them apart from the
// main-block keys with the same ScanType.
type Key struct {
	scanType ScanType
	state    KeyState
	keypad   bool
}

// NewKey returns a main-block key.
func NewKey(scanType ScanType, state KeyState) Key {
	return Key{scanType: scanType, state: state}
}

// NewKeypadKey returns a key that lives on the numeric keypad.
func NewKeypadKey(scanType ScanType, state KeyState) Key {
	return Key{scanType: scanType, state: state, keypad: true}
}

func (k Key) ScanType() ScanType {
	return k.scanType
}

func (k Key) State() KeyState {
	return k.state
}

func (k Key) Keypad() bool {
	return k.keypad
}

func (k Key) IsPressed() bool {
	return k.state == Pressed
}

// Inverted returns the same key with the opposite state.
func (k Key) Inverted() Key {
	if k.state == Pressed {
		k.state = Released
	} else {
		k.state = Pressed
	}
	return k
}

// String returns a short description such as "CharA Pressed" or
// "keypad Num7 Released".
func (k Key) String() string {
	if k.keypad {
		return "keypad " + k.scanType.String() + " " + k.state.String()
	}
	return k.scanType.String() + " " + k.state.String()
}
