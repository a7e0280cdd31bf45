package ps2

import "unicode"

// USStandardLayout is the US QWERTY layout.
type USStandardLayout struct{}

// Characters without shift, indexed by ScanType. Zero means no character.
var usPlain = [...]rune{
	Num0: '0', Num1: '1', Num2: '2', Num3: '3', Num4: '4',
	Num5: '5', Num6: '6', Num7: '7', Num8: '8', Num9: '9',

	CharA: 'a', CharB: 'b', CharC: 'c', CharD: 'd', CharE: 'e', CharF: 'f',
	CharG: 'g', CharH: 'h', CharI: 'i', CharJ: 'j', CharK: 'k', CharL: 'l',
	CharM: 'm', CharN: 'n', CharO: 'o', CharP: 'p', CharQ: 'q', CharR: 'r',
	CharS: 's', CharT: 't', CharU: 'u', CharV: 'v', CharW: 'w', CharX: 'x',
	CharY: 'y', CharZ: 'z',

	SymbolPlus:               '+',
	SymbolMinus:              '-',
	SymbolEquals:             '=',
	SymbolOpenSquareBracket:  '[',
	SymbolCloseSquareBracket: ']',
	SymbolSemicolon:          ';',
	SymbolSingleQuote:        '\'',
	SymbolBacktick:           '`',
	SymbolBackslash:          '\\',
	SymbolComma:              ',',
	SymbolPeriod:             '.',
	SymbolForwardSlash:       '/',
	SymbolAsterisk:           '*',

	Tab:   '\t',
	Space: ' ',
}

// Characters with shift held, for main-block keys.
var usShifted = [...]rune{
	Num0: ')', Num1: '!', Num2: '@', Num3: '#', Num4: '$',
	Num5: '%', Num6: '^', Num7: '&', Num8: '*', Num9: '(',

	CharA: 'A', CharB: 'B', CharC: 'C', CharD: 'D', CharE: 'E', CharF: 'F',
	CharG: 'G', CharH: 'H', CharI: 'I', CharJ: 'J', CharK: 'K', CharL: 'L',
	CharM: 'M', CharN: 'N', CharO: 'O', CharP: 'P', CharQ: 'Q', CharR: 'R',
	CharS: 'S', CharT: 'T', CharU: 'U', CharV: 'V', CharW: 'W', CharX: 'X',
	CharY: 'Y', CharZ: 'Z',

	SymbolPlus:               '+', // keypad only
	SymbolMinus:              '_',
	SymbolEquals:             '+',
	SymbolOpenSquareBracket:  '{',
	SymbolCloseSquareBracket: '}',
	SymbolSemicolon:          ':',
	SymbolSingleQuote:        '"',
	SymbolBacktick:           '~',
	SymbolBackslash:          '|',
	SymbolComma:              '<',
	SymbolPeriod:             '>',
	SymbolForwardSlash:       '?',
	SymbolAsterisk:           '*', // keypad only

	Tab:   '\t',
	Space: ' ',
}

// KeyIntoChar implements Layout. The key state is not looked at, a release
// maps to the same character as the press.
func (USStandardLayout) KeyIntoChar(modifiers KeyModifierState, key Key) (rune, bool) {
	var ch rune
	s := key.ScanType()
	switch {
	case int(s) >= len(usPlain):
		return 0, false
	case !modifiers.ShiftDown():
		ch = usPlain[s]
	case key.Keypad() && s.IsNum():
		// Shifted keypad digits are navigation keys
		return 0, false
	default:
		ch = usShifted[s]
	}
	if ch == 0 {
		return 0, false
	}

	if modifiers.CapsLock && unicode.IsLetter(ch) {
		if unicode.IsUpper(ch) {
			ch = unicode.ToLower(ch)
		} else {
			ch = unicode.ToUpper(ch)
		}
	}
	return ch, true
}
