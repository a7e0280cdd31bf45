package ps2

import (
	"errors"
	"testing"
)

// step is one byte fed to a Reader and what it should produce.
type step struct {
	in  byte
	key Key
	ok  bool
	err error
}

func none(in byte) step {
	return step{in: in}
}

func emit(in byte, k Key) step {
	return step{in: in, key: k, ok: true}
}

func fails(in byte, err error) step {
	return step{in: in, err: err}
}

func runSteps(t *testing.T, name string, r *Reader, steps []step) {
	t.Helper()
	for i, s := range steps {
		k, ok, err := r.InputScanCode(s.in)
		if err != s.err {
			t.Errorf("%s: step %d (0x%02x) expected error %v, got %v", name, i, s.in, s.err, err)
		}
		if ok != s.ok {
			t.Errorf("%s: step %d (0x%02x) expected ok %v, got %v", name, i, s.in, s.ok, ok)
		}
		if ok && k != s.key {
			t.Errorf("%s: step %d (0x%02x) expected %v, got %v", name, i, s.in, s.key, k)
		}
	}
}

func TestSingleByteCodes(t *testing.T) {
	cases := []struct {
		in  byte
		key Key
		ok  bool
	}{
		{0x22, NewKey(CharG, Pressed), true},
		{0x57, NewKey(F11, Pressed), true},
		{0x57 + 0x80, NewKey(F11, Released), true},
		{0xd8, NewKey(F12, Released), true},
		{0xa0, NewKey(CharD, Released), true},
		{0x1b, NewKey(SymbolCloseSquareBracket, Pressed), true},
		{0x37, NewKeypadKey(SymbolAsterisk, Pressed), true},
		{0x47, NewKeypadKey(Num7, Pressed), true},
		{0xd3, NewKeypadKey(SymbolPeriod, Released), true},
		{0x00, Key{}, false},
		{0x55, Key{}, false},
		{0xd5, Key{}, false},
		{0xde, Key{}, false},
		{0xfa, Key{}, false},
		{0xff, Key{}, false},
	}

	for i, c := range cases {
		r := NewReader(Set1)
		k, ok, err := r.InputScanCode(c.in)
		if err != nil {
			t.Errorf("Case %d expected no error, got %v", i, err)
		}
		if ok != c.ok {
			t.Errorf("Case %d expected ok %v, got %v", i, c.ok, ok)
		}
		if k != c.key {
			t.Errorf("Case %d expected %v, got %v", i, c.key, k)
		}
		if r.Pending() != 0 {
			t.Errorf("Case %d expected nothing pending, got %d", i, r.Pending())
		}
	}
}

func TestPrefixBytesWait(t *testing.T) {
	for _, in := range []byte{0xe0, 0xe1} {
		r := NewReader(Set1)
		_, ok, err := r.InputScanCode(in)
		if ok || err != nil {
			t.Errorf("0x%02x expected to wait, got ok %v err %v", in, ok, err)
		}
		if r.Pending() != 1 {
			t.Errorf("0x%02x expected 1 pending byte, got %d", in, r.Pending())
		}
	}
}

func TestReleaseMirrorsPress(t *testing.T) {
	for c := byte(0x01); c <= 0x58; c++ {
		r := NewReader(Set1)
		press, pok, _ := r.InputScanCode(c)
		release, rok, _ := r.InputScanCode(c + 0x80)
		if pok != rok {
			t.Errorf("0x%02x and 0x%02x disagree on being mapped", c, c+0x80)
			continue
		}
		if !pok {
			continue
		}
		if press.State() != Pressed || release.State() != Released {
			t.Errorf("0x%02x expected press then release, got %v and %v", c, press, release)
		}
		if press.ScanType() != release.ScanType() || press.Keypad() != release.Keypad() {
			t.Errorf("0x%02x expected %v released, got %v", c, press, release)
		}
	}
}

func TestMediaReleaseMirrorsPress(t *testing.T) {
	for c := byte(0x10); c <= 0x6d; c++ {
		if c == 0x2a || c == 0x37 {
			// 0xe0 0x2a and 0xe0 0xb7 start the print screen sequences
			continue
		}
		r := NewReader(Set1)
		r.InputScanCode(0xe0)
		press, pok, perr := r.InputScanCode(c)
		r.InputScanCode(0xe0)
		release, rok, rerr := r.InputScanCode(c + 0x80)
		if perr != nil || rerr != nil {
			t.Errorf("0xe0 0x%02x unexpected errors %v, %v", c, perr, rerr)
		}
		if pok != rok {
			t.Errorf("0xe0 0x%02x and 0xe0 0x%02x disagree on being mapped", c, c+0x80)
			continue
		}
		if pok && press.Inverted() != release {
			t.Errorf("0xe0 0x%02x expected %v released, got %v", c, press, release)
		}
	}
}

func TestMediaCodes(t *testing.T) {
	cases := []struct {
		in  byte
		key Key
	}{
		{0xe8, NewKey(WWWStop, Released)},
		{0x68, NewKey(WWWStop, Pressed)},
		{0x49, NewKey(PageUp, Pressed)},
		{0xc9, NewKey(PageUp, Released)},
		{0x47, NewKey(Home, Pressed)},
		{0x1d, NewKey(RightCtrl, Pressed)},
		{0x5b, NewKey(LeftGUI, Pressed)},
		{0x1c, NewKeypadKey(Enter, Pressed)},
		{0xb5, NewKeypadKey(SymbolForwardSlash, Released)},
		{0x5e, NewKey(ACPIPower, Pressed)},
	}

	for i, c := range cases {
		r := NewReader(Set1)
		runSteps(t, "media", r, []step{none(0xe0), emit(c.in, c.key)})
		if r.Pending() != 0 {
			t.Errorf("Case %d expected nothing pending, got %d", i, r.Pending())
		}
	}
}

func TestDoubleE0(t *testing.T) {
	r := NewReader(Set1)
	runSteps(t, "double e0", r, []step{
		none(0xe0),
		none(0xe0),
		emit(0x22, NewKey(CharG, Pressed)),
	})

	// Inside a chain a second 0xe0 is rejected
	cases := []struct {
		name string
		seq  []step
	}{
		{"print screen press", []step{none(0xe0), none(0x2a), none(0xe0), fails(0xe0, ErrExpectedPrintScreen)}},
		{"print screen release", []step{none(0xe0), none(0xb7), none(0xe0), fails(0xe0, ErrExpectedPrintScreen)}},
		{"pause start", []step{none(0xe1), fails(0xe0, ErrExpected1D)}},
		{"pause middle", []step{none(0xe1), none(0x1d), none(0x45), fails(0xe0, ErrExpectedE1)}},
	}
	for _, c := range cases {
		steps := append(c.seq, emit(0x22, NewKey(CharG, Pressed)))
		runSteps(t, "double e0 in "+c.name, NewReader(Set1), steps)
	}
}

func TestPrintScreen(t *testing.T) {
	r := NewReader(Set1)
	runSteps(t, "print screen pressed", r, []step{
		none(0xe0), none(0x2a), none(0xe0),
		emit(0x37, NewKey(PrintScreen, Pressed)),
	})
	runSteps(t, "print screen released", r, []step{
		none(0xe0), none(0xb7), none(0xe0),
		emit(0xaa, NewKey(PrintScreen, Released)),
	})
}

func TestPause(t *testing.T) {
	r := NewReader(Set1)
	seq := []byte{0xe1, 0x1d, 0x45, 0xe1, 0x9d}
	for i, b := range seq {
		_, ok, err := r.InputScanCode(b)
		if ok || err != nil {
			t.Fatalf("step %d (0x%02x) expected to wait, got ok %v err %v", i, b, ok, err)
		}
		if r.Pending() != i+1 {
			t.Errorf("step %d expected %d pending bytes, got %d", i, i+1, r.Pending())
		}
	}
	if r.Pending() >= MaxSequenceLen {
		t.Errorf("pending bytes %d reached the sequence bound", r.Pending())
	}
	runSteps(t, "pause", r, []step{emit(0xc5, NewKey(Pause, Pressed))})
	if r.Pending() != 0 {
		t.Errorf("expected nothing pending after pause, got %d", r.Pending())
	}
}

func TestCombinations(t *testing.T) {
	r := NewReader(Set1)
	runSteps(t, "pause then print screen", r, []step{
		none(0xe1), none(0x1d), none(0x45), none(0xe1), none(0x9d),
		emit(0xc5, NewKey(Pause, Pressed)),
		none(0xe0), none(0xb7), none(0xe0),
		emit(0xaa, NewKey(PrintScreen, Released)),
	})

	r = NewReader(Set1)
	runSteps(t, "test", r, []step{
		emit(0x14, NewKey(CharT, Pressed)),
		emit(0x94, NewKey(CharT, Released)),
		emit(0x12, NewKey(CharE, Pressed)),
		emit(0x92, NewKey(CharE, Released)),
		emit(0x1f, NewKey(CharS, Pressed)),
		emit(0x9f, NewKey(CharS, Released)),
		emit(0x14, NewKey(CharT, Pressed)),
		emit(0x94, NewKey(CharT, Released)),
	})
}

func TestInvalidSequencesRecover(t *testing.T) {
	cases := []struct {
		name string
		seq  []byte
		err  *DecodeError
	}{
		{"e1 without 1d", []byte{0xe1, 0x00}, ErrExpected1D},
		{"print screen without e0", []byte{0xe0, 0x2a, 0x37}, ErrExpectedE0},
		{"print screen release without e0", []byte{0xe0, 0xb7, 0x22}, ErrExpectedE0},
		{"print screen bad final", []byte{0xe0, 0x2a, 0xe0, 0x38}, ErrExpectedPrintScreen},
		{"pause without 45", []byte{0xe1, 0x1d, 0x46}, ErrExpected45},
		{"pause without second e1", []byte{0xe1, 0x1d, 0x45, 0xe0}, ErrExpectedE1},
		{"pause without 9d", []byte{0xe1, 0x1d, 0x45, 0xe1, 0x1d}, ErrExpected9D},
		{"pause without c5", []byte{0xe1, 0x1d, 0x45, 0xe1, 0x9d, 0x45}, ErrExpectedC5},
	}

	for _, c := range cases {
		r := NewReader(Set1)
		steps := make([]step, 0, len(c.seq)+1)
		for _, b := range c.seq[:len(c.seq)-1] {
			steps = append(steps, none(b))
		}
		steps = append(steps, fails(c.seq[len(c.seq)-1], c.err))
		steps = append(steps, emit(0x22, NewKey(CharG, Pressed)))
		runSteps(t, c.name, r, steps)
	}
}

func TestDecodeErrorDetails(t *testing.T) {
	r := NewReader(Set1)
	r.InputScanCode(0xe0)
	r.InputScanCode(0x2a)
	r.InputScanCode(0xe0)
	_, _, err := r.InputScanCode(0x00)

	if !errors.Is(err, ErrExpectedPrintScreen) {
		t.Fatalf("expected ErrExpectedPrintScreen, got %v", err)
	}
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected a *DecodeError, got %T", err)
	}
	if got := de.Expected(); len(got) != 2 || got[0] != 0x37 || got[1] != 0xaa {
		t.Errorf("expected 0x37 and 0xaa as continuations, got % x", got)
	}
	if de.Error() == "" {
		t.Errorf("expected a description")
	}
}

func TestDecodeErrorExpectedIsCopy(t *testing.T) {
	got := ErrExpectedE0.Expected()
	got[0] = 0
	if again := ErrExpectedE0.Expected(); len(again) != 1 || again[0] != 0xe0 {
		t.Errorf("changing the returned bytes changed the error: % x", again)
	}
	if ErrBufferFull.Expected() != nil {
		t.Errorf("expected no continuations for ErrBufferFull")
	}
}

func TestSwitchScanModeDropsSequence(t *testing.T) {
	r := NewReader(Set1)
	r.InputScanCode(0xe1)
	r.InputScanCode(0x1d)
	r.SwitchScanMode(Set2)

	if r.Mode() != Set2 {
		t.Errorf("expected %v, got %v", Set2, r.Mode())
	}
	if r.Pending() != 0 {
		t.Errorf("expected nothing pending, got %d", r.Pending())
	}
	// 0x45 would continue the pause sequence, now it is NumLock.
	runSteps(t, "after switch", r, []step{emit(0x45, NewKey(NumLock, Pressed))})
}

func TestReset(t *testing.T) {
	r := NewReader(Set3)
	r.InputScanCode(0xe0)
	r.InputScanCode(0x2a)
	r.Reset()

	if r.Mode() != Set3 {
		t.Errorf("expected reset to keep %v, got %v", Set3, r.Mode())
	}
	runSteps(t, "after reset", r, []step{emit(0x37, NewKeypadKey(SymbolAsterisk, Pressed))})
}

func TestAllModesUseSet1(t *testing.T) {
	for _, mode := range []ReaderMode{Set1, Set2, Set3} {
		r := NewReader(mode)
		runSteps(t, mode.String(), r, []step{
			emit(0x1e, NewKey(CharA, Pressed)),
			none(0xe0), emit(0x48, NewKey(CursorUp, Pressed)),
			none(0xe1), none(0x1d), none(0x45), none(0xe1), none(0x9d),
			emit(0xc5, NewKey(Pause, Pressed)),
		})
	}
}

func TestZeroReader(t *testing.T) {
	var r Reader
	if r.Mode() != Set1 {
		t.Errorf("expected zero Reader in %v, got %v", Set1, r.Mode())
	}
	runSteps(t, "zero reader", &r, []step{emit(0x01, NewKey(Escape, Pressed))})
}

func TestParseReaderMode(t *testing.T) {
	cases := []struct {
		in   string
		mode ReaderMode
		ok   bool
	}{
		{"set1", Set1, true},
		{"SET2", Set2, true},
		{" 3 ", Set3, true},
		{"", Set1, true},
		{"set4", Set1, false},
		{"usb", Set1, false},
	}

	for i, c := range cases {
		mode, err := ParseReaderMode(c.in)
		if (err == nil) != c.ok {
			t.Errorf("Case %d expected ok %v, got error %v", i, c.ok, err)
		}
		if mode != c.mode {
			t.Errorf("Case %d expected %v, got %v", i, c.mode, mode)
		}
	}
}
