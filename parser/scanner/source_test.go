package scanner

import (
	"testing"
)

func TestCheckpointRewind(t *testing.T) {
	s := NewSource("abcdef")
	cp := s.Checkpoint()

	s.NextByte()
	s.NextByte()
	if s.Offset() != 2 {
		t.Fatalf("offset = %d; want 2", s.Offset())
	}

	s.Rewind(cp)
	if s.Offset() != 0 {
		t.Fatalf("offset after rewind = %d; want 0", s.Offset())
	}
	if b, _ := s.PeekByte(); b != 'a' {
		t.Fatalf("peek after rewind = %c; want a", b)
	}
}

func TestTakeWhileMN(t *testing.T) {
	s := NewSource("abc123")

	// Fewer than min matches: nothing is consumed.
	if _, ok := s.TakeWhileMN(4, 4, IsDecimalDigit); ok {
		t.Fatal("TakeWhileMN matched digits at letter position")
	}
	if s.Offset() != 0 {
		t.Fatalf("failed TakeWhileMN consumed input; offset = %d", s.Offset())
	}

	got, ok := s.TakeWhileMN(1, 8, func(b byte) bool { return 'a' <= b && b <= 'z' })
	if !ok || got != "abc" {
		t.Fatalf("TakeWhileMN = %q, %v; want abc, true", got, ok)
	}

	// Max caps the run even when more bytes match.
	got, ok = s.TakeWhileMN(1, 2, IsDecimalDigit)
	if !ok || got != "12" {
		t.Fatalf("TakeWhileMN = %q, %v; want 12, true", got, ok)
	}
	if s.Rest() != "3" {
		t.Fatalf("rest = %q; want 3", s.Rest())
	}
}

func TestAdvanceIfMatchFold(t *testing.T) {
	s := NewSource("BiNaRy'x'")
	if !s.AdvanceIfMatchFold("binary'") {
		t.Fatal("AdvanceIfMatchFold failed on mixed case tag")
	}
	if s.Rest() != "x'" {
		t.Fatalf("rest = %q; want x'", s.Rest())
	}

	s = NewSource("bin")
	if s.AdvanceIfMatchFold("binary'") {
		t.Fatal("AdvanceIfMatchFold matched past end of input")
	}
	if s.Offset() != 0 {
		t.Fatal("failed AdvanceIfMatchFold consumed input")
	}
}
