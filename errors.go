package ps2

// DecodeError is returned by the Reader when a byte cannot extend the
// escape sequence it is in the middle of. The Reader is always back in its
// idle state when one of these is returned.
//
// Only the sentinel values below are ever returned, so they can be compared
// with == or errors.Is.
type DecodeError struct {
	Reason   string
	expected []byte
}

func (e *DecodeError) Error() string {
	return e.Reason
}

// Expected returns a copy of the bytes that would have been accepted, nil
// when there are none.
func (e *DecodeError) Expected() []byte {
	if len(e.expected) == 0 {
		return nil
	}
	return append([]byte(nil), e.expected...)
}

// Decode errors
var (
	// ErrBufferFull guards the sequence length bound. A correct Reader
	// never returns it.
	ErrBufferFull = &DecodeError{Reason: "scan code buffer full"}

	ErrExpected1D          = &DecodeError{Reason: "invalid follow-up code for 0xe1, expected 0x1d", expected: []byte{0x1d}}
	ErrExpectedE0          = &DecodeError{Reason: "invalid scan code, expected 0xe0", expected: []byte{0xe0}}
	ErrExpected45          = &DecodeError{Reason: "invalid scan code, expected 0x45", expected: []byte{0x45}}
	ErrExpectedPrintScreen = &DecodeError{Reason: "invalid scan code, expected 0x37 or 0xaa", expected: []byte{0x37, 0xaa}}
	ErrExpectedE1          = &DecodeError{Reason: "invalid scan code, expected 0xe1", expected: []byte{0xe1}}
	ErrExpected9D          = &DecodeError{Reason: "invalid scan code, expected 0x9d", expected: []byte{0x9d}}
	ErrExpectedC5          = &DecodeError{Reason: "invalid scan code, expected 0xc5", expected: []byte{0xc5}}
)
