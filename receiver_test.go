package fountain

import (
	"errors"
	"testing"

	"github.com/ppopth/fountain/coeff"
	"github.com/ppopth/fountain/symbol"
)

// TestReceiverHelloCarousel is the canonical zero-loss scenario: five
// one-byte symbols spelling HELLO, sent by the plain carousel with zero
// overhead, decode after exactly five packets.
func TestReceiverHelloCarousel(t *testing.T) {
	source := []symbol.Symbol{{'H'}, {'E'}, {'L'}, {'L'}, {'O'}}
	gen, err := coeff.NewCarousel(5, nil)
	if err != nil {
		t.Fatalf("NewCarousel failed: %v", err)
	}
	sender, err := NewSender(source, gen)
	if err != nil {
		t.Fatalf("NewSender failed: %v", err)
	}
	receiver, err := NewReceiver(5)
	if err != nil {
		t.Fatalf("NewReceiver failed: %v", err)
	}

	for i := 0; i < 4; i++ {
		pkt, err := sender.GenerateNext()
		if err != nil {
			t.Fatalf("GenerateNext failed: %v", err)
		}
		if _, err := receiver.Solve(pkt.Mask, pkt.Payload); !errors.Is(err, ErrNotDecoded) {
			t.Fatalf("packet %d: expected ErrNotDecoded, got %v", i, err)
		}
	}

	pkt, err := sender.GenerateNext()
	if err != nil {
		t.Fatalf("GenerateNext failed: %v", err)
	}
	decoded, err := receiver.Solve(pkt.Mask, pkt.Payload)
	if err != nil {
		t.Fatalf("decode after 5 packets failed: %v", err)
	}
	for i, want := range "HELLO" {
		if decoded[i][0] != byte(want) {
			t.Errorf("symbol %d = %q, want %q", i, decoded[i][0], byte(want))
		}
	}
}

// TestReceiverDuplicateMaskLastWins documents the duplicate policy: a
// second equation with an already-seen mask overwrites the stored payload
// and is not counted as a new equation. Decoding stays correct exactly when
// the retained, later payload is the one consistent with the true source.
func TestReceiverDuplicateMaskLastWins(t *testing.T) {
	receiver, err := NewReceiver(2)
	if err != nil {
		t.Fatalf("NewReceiver failed: %v", err)
	}

	e0 := symbol.Mask{true, false}
	e1 := symbol.Mask{false, true}

	// A corrupted payload for e0 arrives first.
	if _, err := receiver.Solve(e0, symbol.Symbol{0xbad & 0xff}); !errors.Is(err, ErrNotDecoded) {
		t.Fatalf("expected ErrNotDecoded, got %v", err)
	}
	if receiver.Equations() != 1 {
		t.Fatalf("Equations() = %d, want 1", receiver.Equations())
	}

	// The consistent payload for the same mask overwrites it.
	if _, err := receiver.Solve(e0, symbol.Symbol{0x11}); !errors.Is(err, ErrNotDecoded) {
		t.Fatalf("expected ErrNotDecoded after duplicate, got %v", err)
	}
	if receiver.Equations() != 1 {
		t.Fatalf("duplicate counted as new: Equations() = %d", receiver.Equations())
	}

	decoded, err := receiver.Solve(e1, symbol.Symbol{0x22})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded[0][0] != 0x11 || decoded[1][0] != 0x22 {
		t.Errorf("decoded = %v, want [0x11 0x22]", decoded)
	}
}

func TestReceiverOverheadDelaysAttempt(t *testing.T) {
	receiver, err := NewReceiver(2, WithOverhead(1))
	if err != nil {
		t.Fatalf("NewReceiver failed: %v", err)
	}
	if _, err := receiver.Solve(symbol.Mask{true, false}, symbol.Symbol{1}); !errors.Is(err, ErrNotDecoded) {
		t.Fatalf("expected ErrNotDecoded, got %v", err)
	}
	if _, err := receiver.Solve(symbol.Mask{false, true}, symbol.Symbol{2}); !errors.Is(err, ErrNotDecoded) {
		t.Fatalf("expected ErrNotDecoded before overhead met, got %v", err)
	}
	decoded, err := receiver.Solve(symbol.Mask{true, true}, symbol.Symbol{3})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded[0][0] != 1 || decoded[1][0] != 2 {
		t.Errorf("decoded = %v", decoded)
	}
}

func TestReceiverUnsolvableAsksForMore(t *testing.T) {
	receiver, err := NewReceiver(3)
	if err != nil {
		t.Fatalf("NewReceiver failed: %v", err)
	}
	// Source symbols 1, 2, 4. The first three masks sum to zero, so the
	// threshold is crossed with a singular system; the receiver must keep
	// asking for more instead of failing.
	packets := []struct {
		mask    symbol.Mask
		payload symbol.Symbol
	}{
		{symbol.Mask{true, true, false}, symbol.Symbol{3}},
		{symbol.Mask{true, false, true}, symbol.Symbol{5}},
		{symbol.Mask{false, true, true}, symbol.Symbol{6}},
	}
	for i, pkt := range packets {
		if _, err := receiver.Solve(pkt.mask, pkt.payload); !errors.Is(err, ErrNotDecoded) {
			t.Fatalf("packet %d: expected ErrNotDecoded, got %v", i, err)
		}
	}
	// An independent equation arrives; the system now solves.
	decoded, err := receiver.Solve(symbol.Mask{true, false, false}, symbol.Symbol{1})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded[0][0] != 1 || decoded[1][0] != 2 || decoded[2][0] != 4 {
		t.Errorf("decoded = %v, want [1 2 4]", decoded)
	}
}

func TestReceiverReturnsCachedDecode(t *testing.T) {
	receiver, err := NewReceiver(1)
	if err != nil {
		t.Fatalf("NewReceiver failed: %v", err)
	}
	first, err := receiver.Solve(symbol.Mask{true}, symbol.Symbol{0x7f})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	again, err := receiver.Solve(symbol.Mask{true}, symbol.Symbol{0x00})
	if err != nil {
		t.Fatalf("cached decode failed: %v", err)
	}
	if !again[0].Equal(first[0]) {
		t.Errorf("cached decode differs: %v vs %v", again, first)
	}
}

func TestReceiverValidation(t *testing.T) {
	if _, err := NewReceiver(0); err == nil {
		t.Errorf("expected error for k = 0")
	}
	if _, err := NewReceiver(2, WithOverhead(-1)); err == nil {
		t.Errorf("expected error for negative overhead")
	}

	receiver, err := NewReceiver(2)
	if err != nil {
		t.Fatalf("NewReceiver failed: %v", err)
	}
	if _, err := receiver.Solve(symbol.Mask{true}, symbol.Symbol{1}); !errors.Is(err, symbol.ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch for short mask, got %v", err)
	}
	if _, err := receiver.Solve(symbol.Mask{true, false}, symbol.Symbol{1}); !errors.Is(err, ErrNotDecoded) {
		t.Fatalf("expected ErrNotDecoded, got %v", err)
	}
	if _, err := receiver.Solve(symbol.Mask{false, true}, symbol.Symbol{1, 2}); !errors.Is(err, symbol.ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch for payload length change, got %v", err)
	}
}
