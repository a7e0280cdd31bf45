package ps2

import "strconv"

var scanTypeNames = [...]string{
	Num0: "Num0", Num1: "Num1", Num2: "Num2", Num3: "Num3", Num4: "Num4",
	Num5: "Num5", Num6: "Num6", Num7: "Num7", Num8: "Num8", Num9: "Num9",

	CharA: "CharA", CharB: "CharB", CharC: "CharC", CharD: "CharD",
	CharE: "CharE", CharF: "CharF", CharG: "CharG", CharH: "CharH",
	CharI: "CharI", CharJ: "CharJ", CharK: "CharK", CharL: "CharL",
	CharM: "CharM", CharN: "CharN", CharO: "CharO", CharP: "CharP",
	CharQ: "CharQ", CharR: "CharR", CharS: "CharS", CharT: "CharT",
	CharU: "CharU", CharV: "CharV", CharW: "CharW", CharX: "CharX",
	CharY: "CharY", CharZ: "CharZ",

	SymbolPlus:               "SymbolPlus",
	SymbolMinus:              "SymbolMinus",
	SymbolEquals:             "SymbolEquals",
	SymbolOpenSquareBracket:  "SymbolOpenSquareBracket",
	SymbolCloseSquareBracket: "SymbolCloseSquareBracket",
	SymbolSemicolon:          "SymbolSemicolon",
	SymbolSingleQuote:        "SymbolSingleQuote",
	SymbolBacktick:           "SymbolBacktick",
	SymbolBackslash:          "SymbolBackslash",
	SymbolComma:              "SymbolComma",
	SymbolPeriod:             "SymbolPeriod",
	SymbolForwardSlash:       "SymbolForwardSlash",
	SymbolAsterisk:           "SymbolAsterisk",

	Escape:     "Escape",
	Backspace:  "Backspace",
	Tab:        "Tab",
	Enter:      "Enter",
	LeftCtrl:   "LeftCtrl",
	RightCtrl:  "RightCtrl",
	LeftShift:  "LeftShift",
	RightShift: "RightShift",
	LeftAlt:    "LeftAlt",
	RightAlt:   "RightAlt",
	LeftGUI:    "LeftGUI",
	RightGUI:   "RightGUI",
	Space:      "Space",

	F1: "F1", F2: "F2", F3: "F3", F4: "F4", F5: "F5", F6: "F6",
	F7: "F7", F8: "F8", F9: "F9", F10: "F10", F11: "F11", F12: "F12",

	NumLock:    "NumLock",
	ScrollLock: "ScrollLock",
	CapsLock:   "CapsLock",

	Home:        "Home",
	PageUp:      "PageUp",
	PageDown:    "PageDown",
	CursorUp:    "CursorUp",
	CursorLeft:  "CursorLeft",
	CursorRight: "CursorRight",
	CursorDown:  "CursorDown",
	Insert:      "Insert",
	Delete:      "Delete",
	End:         "End",

	ACPIPower: "ACPIPower",
	ACPISleep: "ACPISleep",
	ACPIWake:  "ACPIWake",

	PreviousTrack: "PreviousTrack",
	NextTrack:     "NextTrack",
	Mute:          "Mute",
	Calculator:    "Calculator",
	Stop:          "Stop",
	Play:          "Play",
	WWWHome:       "WWWHome",
	VolumeUp:      "VolumeUp",
	VolumeDown:    "VolumeDown",
	Apps:          "Apps",
	WWWSearch:     "WWWSearch",
	WWWFavorites:  "WWWFavorites",
	WWWRefresh:    "WWWRefresh",
	WWWStop:       "WWWStop",
	WWWForward:    "WWWForward",
	WWWBack:       "WWWBack",
	MyComputer:    "MyComputer",
	Email:         "Email",
	MediaSelect:   "MediaSelect",
	PrintScreen:   "PrintScreen",
	Pause:         "Pause",
}

func (s ScanType) String() string {
	if s == Unknown {
		return "Unknown"
	}
	if int(s) < len(scanTypeNames) {
		return scanTypeNames[s]
	}
	return "ScanType(" + strconv.Itoa(int(s)) + ")"
}
