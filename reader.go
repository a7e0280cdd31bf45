package ps2

import (
	"fmt"
	"strings"
)

// ReaderMode selects the scan code set a Reader decodes.
type ReaderMode uint8

const (
	Set1 ReaderMode = iota
	Set2
	Set3
)

func (m ReaderMode) String() string {
	switch m {
	case Set1:
		return "set1"
	case Set2:
		return "set2"
	case Set3:
		return "set3"
	}
	return fmt.Sprintf("ReaderMode(%d)", uint8(m))
}

// ParseReaderMode accepts "set1", "set2", "set3" or just the digit.
func ParseReaderMode(s string) (ReaderMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "set1", "1", "":
		return Set1, nil
	case "set2", "2":
		return Set2, nil
	case "set3", "3":
		return Set3, nil
	}
	return Set1, fmt.Errorf("invalid scan code set: %q", s)
}

// MaxSequenceLen is the length of the longest set 1 sequence (Pause).
const MaxSequenceLen = 6

// seqState is the position inside an escape sequence. Each state is named
// after the bytes consumed so far.
type seqState uint8

const (
	stateIdle seqState = iota
	stateE0
	stateE02A
	stateE02AE0
	stateE0B7
	stateE0B7E0
	stateE1
	stateE11D
	stateE11D45
	stateE11D45E1
	stateE11D45E19D
)

var pendingLen = [...]uint8{
	stateIdle:       0,
	stateE0:         1,
	stateE02A:       2,
	stateE02AE0:     3,
	stateE0B7:       2,
	stateE0B7E0:     3,
	stateE1:         1,
	stateE11D:       2,
	stateE11D45:     3,
	stateE11D45E1:   4,
	stateE11D45E19D: 5,
}

// Special bytes sent by the controller outside of key sequences, see
// https://wiki.osdev.org/Keyboard. Apart from 0xaa, which reads as the
// LeftShift break code, they are unmapped and ignored by the idle state:
//
//	0x00, 0xff  key detection error or internal buffer overrun
//	0xaa        self test passed
//	0xee        echo response
//	0xfa        command acknowledged
//	0xfc, 0xfd  self test failed
//	0xfe        resend request

// Reader turns a stream of scan code bytes into Keys. It holds no more than
// the position inside the current escape sequence.
//
// The zero value is a set 1 Reader. A Reader is not safe for concurrent use.
type Reader struct {
	mode  ReaderMode
	state seqState
}

// NewReader returns a Reader in the given mode.
func NewReader(mode ReaderMode) *Reader {
	return &Reader{mode: mode}
}

// Mode returns the active scan code set.
func (r *Reader) Mode() ReaderMode {
	return r.mode
}

// SwitchScanMode changes the scan code set. Any partial sequence is dropped.
func (r *Reader) SwitchScanMode(mode ReaderMode) {
	r.Reset()
	r.mode = mode
}

// Reset drops any partial sequence.
func (r *Reader) Reset() {
	r.state = stateIdle
}

// Pending returns the number of bytes of the partial sequence seen so far.
func (r *Reader) Pending() int {
	if int(r.state) < len(pendingLen) {
		return int(pendingLen[r.state])
	}
	return 0
}

// InputScanCode consumes one byte. It returns the decoded key and true when
// the byte completes a sequence, false while a sequence is still incomplete
// or the byte is not mapped, and an error when the byte is not a legal
// continuation of the current sequence. After an error the Reader is idle.
func (r *Reader) InputScanCode(c byte) (Key, bool, error) {
	// TODO: sets 2 and 3 need their own tables, they share set 1 for now.
	return r.inputSet1(c)
}

func (r *Reader) inputSet1(c byte) (Key, bool, error) {
	switch r.state {
	case stateIdle:
		switch {
		case c <= 0xd8:
			k, ok := lookupSet1(c)
			return k, ok, nil
		case c == 0xe0:
			r.state = stateE0
		case c == 0xe1:
			r.state = stateE1
		}
		return Key{}, false, nil

	case stateE0:
		switch c {
		case 0x2a:
			r.state = stateE02A
			return Key{}, false, nil
		case 0xb7:
			r.state = stateE0B7
			return Key{}, false, nil
		}
		r.state = stateIdle
		k, ok := lookupSet1Media(c)
		return k, ok, nil

	case stateE02A, stateE0B7:
		if c != 0xe0 {
			return r.fail(ErrExpectedE0)
		}
		if r.state == stateE02A {
			r.state = stateE02AE0
		} else {
			r.state = stateE0B7E0
		}
		return Key{}, false, nil

	case stateE02AE0, stateE0B7E0:
		r.state = stateIdle
		switch c {
		case 0x37:
			return NewKey(PrintScreen, Pressed), true, nil
		case 0xaa:
			return NewKey(PrintScreen, Released), true, nil
		}
		return Key{}, false, ErrExpectedPrintScreen

	case stateE1:
		return r.expect(c, 0x1d, stateE11D, ErrExpected1D)
	case stateE11D:
		return r.expect(c, 0x45, stateE11D45, ErrExpected45)
	case stateE11D45:
		return r.expect(c, 0xe1, stateE11D45E1, ErrExpectedE1)
	case stateE11D45E1:
		return r.expect(c, 0x9d, stateE11D45E19D, ErrExpected9D)

	case stateE11D45E19D:
		if c != 0xc5 {
			return r.fail(ErrExpectedC5)
		}
		// Pause has no break sequence, the make sequence is all there is.
		r.state = stateIdle
		return NewKey(Pause, Pressed), true, nil
	}

	return r.fail(ErrBufferFull)
}

// expect advances to next if c is want, otherwise it fails with err.
func (r *Reader) expect(c, want byte, next seqState, err *DecodeError) (Key, bool, error) {
	if c != want {
		return r.fail(err)
	}
	r.state = next
	return Key{}, false, nil
}

func (r *Reader) fail(err *DecodeError) (Key, bool, error) {
	r.state = stateIdle
	return Key{}, false, err
}
