package fountain_test

import (
	"errors"
	"math/rand"
	"testing"

	fountain "github.com/ppopth/fountain"
	"github.com/ppopth/fountain/coeff"
	"github.com/ppopth/fountain/rng"
	"github.com/ppopth/fountain/symbol"
)

func makeSource(k, length int, seed int64) []symbol.Symbol {
	rnd := rand.New(rand.NewSource(seed))
	source := make([]symbol.Symbol, k)
	for i := range source {
		source[i] = make(symbol.Symbol, length)
		rnd.Read(source[i])
	}
	return source
}

func symbolsEqual(a, b []symbol.Symbol) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// decodeLossless pumps packets from the sender straight into the receiver
// and returns the decoded symbols along with how many packets it took.
func decodeLossless(t *testing.T, sender *fountain.Sender, receiver *fountain.Receiver, limit int) ([]symbol.Symbol, int) {
	t.Helper()
	for sent := 1; sent <= limit; sent++ {
		pkt, err := sender.GenerateNext()
		if err != nil {
			t.Fatalf("GenerateNext failed after %d packets: %v", sent-1, err)
		}
		decoded, err := receiver.Solve(pkt.Mask, pkt.Payload)
		if err == nil {
			return decoded, sent
		}
		if !errors.Is(err, fountain.ErrNotDecoded) {
			t.Fatalf("Solve failed after %d packets: %v", sent, err)
		}
	}
	t.Fatalf("no decode within %d packets", limit)
	return nil, 0
}

func TestEndToEndAllGenerators(t *testing.T) {
	supported := func(k int) bool {
		_, err := coeff.NewSophisticatedCarousel(k, nil)
		return err == nil
	}
	for k := 2; k <= 40; k++ {
		source := makeSource(k, 16, int64(k))
		generators := map[string]func() (coeff.Generator, error){
			"carousel": func() (coeff.Generator, error) {
				return coeff.NewCarousel(k, nil)
			},
			"random-subset": func() (coeff.Generator, error) {
				return coeff.NewRandomSubset(k, rng.NewLocked(int64(k)), nil)
			},
			"luby": func() (coeff.Generator, error) {
				return coeff.NewLubyTransform(k, 2.0, 0.05, rng.NewLocked(int64(k)), nil)
			},
			"special-luby": func() (coeff.Generator, error) {
				return coeff.NewSpecialLubyTransform(k, 2.0, rng.NewLocked(int64(k)), nil)
			},
			"sophisticated": func() (coeff.Generator, error) {
				return coeff.NewSophisticatedCarousel(k, nil)
			},
		}
		for name, build := range generators {
			if name == "sophisticated" && !supported(k) {
				continue
			}
			gen, err := build()
			if err != nil {
				t.Fatalf("k=%d %s: generator construction failed: %v", k, name, err)
			}
			sender, err := fountain.NewSender(source, gen)
			if err != nil {
				t.Fatalf("k=%d %s: NewSender failed: %v", k, name, err)
			}
			receiver, err := fountain.NewReceiver(k)
			if err != nil {
				t.Fatalf("k=%d %s: NewReceiver failed: %v", k, name, err)
			}
			decoded, sent := decodeLossless(t, sender, receiver, k*10+1000)
			if !symbolsEqual(decoded, source) {
				t.Errorf("k=%d %s: decoded symbols differ from source", k, name)
			}
			// Both carousels emit k independent equations in a row, so a
			// lossless channel decodes with no overhead at all.
			if (name == "carousel" || name == "sophisticated") && sent != k {
				t.Errorf("k=%d %s: decoded after %d packets, want exactly %d", k, name, sent, k)
			}
		}
	}
}

func TestEndToEndLossyChannel(t *testing.T) {
	const (
		k       = 4
		length  = 32
		erasure = 0.3
	)
	source := makeSource(k, length, 7)
	gen, err := coeff.NewLubyTransform(k, 2.0, 1e-6, rng.NewLocked(7), nil)
	if err != nil {
		t.Fatalf("NewLubyTransform failed: %v", err)
	}
	sender, err := fountain.NewSender(source, gen)
	if err != nil {
		t.Fatalf("NewSender failed: %v", err)
	}
	receiver, err := fountain.NewReceiver(k)
	if err != nil {
		t.Fatalf("NewReceiver failed: %v", err)
	}
	channel := rand.New(rand.NewSource(7))
	limit := k*10 + 1000
	for sent := 1; sent <= limit; sent++ {
		pkt, err := sender.GenerateNext()
		if err != nil {
			t.Fatalf("GenerateNext failed: %v", err)
		}
		if channel.Float64() < erasure {
			continue
		}
		decoded, err := receiver.Solve(pkt.Mask, pkt.Payload)
		if err == nil {
			if !symbolsEqual(decoded, source) {
				t.Fatalf("decoded symbols differ from source")
			}
			return
		}
		if !errors.Is(err, fountain.ErrNotDecoded) {
			t.Fatalf("Solve failed: %v", err)
		}
	}
	t.Fatalf("no decode within %d packets", limit)
}
