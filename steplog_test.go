package fountain

import (
	"testing"
)

func TestStepLogRoundTrip(t *testing.T) {
	steps := []Step{
		{Op: StepSwap, A: 0, B: 3},
		{Op: StepXorInto, A: 1, B: 2},
		{Op: StepXorInto, A: 0, B: 4},
		{Op: StepSwap, A: 2, B: 1},
	}
	data, err := EncodeStepLog(steps)
	if err != nil {
		t.Fatalf("EncodeStepLog failed: %v", err)
	}
	got, err := DecodeStepLog(data)
	if err != nil {
		t.Fatalf("DecodeStepLog failed: %v", err)
	}
	if len(got) != len(steps) {
		t.Fatalf("decoded %d steps, want %d", len(got), len(steps))
	}
	for i := range steps {
		if got[i] != steps[i] {
			t.Errorf("step %d: got %+v, want %+v", i, got[i], steps[i])
		}
	}
}

func TestStepLogFromSolver(t *testing.T) {
	matrix := [][]bool{
		{false, true, false},
		{true, true, false},
		{true, false, true},
	}
	solver, err := NewSolver(matrix)
	if err != nil {
		t.Fatalf("NewSolver failed: %v", err)
	}
	steps := solver.Steps()
	if len(steps) == 0 {
		t.Fatalf("solver recorded no steps for a non-trivial matrix")
	}

	data, err := EncodeStepLog(steps)
	if err != nil {
		t.Fatalf("EncodeStepLog failed: %v", err)
	}
	got, err := DecodeStepLog(data)
	if err != nil {
		t.Fatalf("DecodeStepLog failed: %v", err)
	}
	for i := range steps {
		if got[i] != steps[i] {
			t.Errorf("step %d differs after round trip", i)
		}
	}
}

func TestDecodeStepLogRejectsUnknownOp(t *testing.T) {
	if _, err := DecodeStepLog([]byte(`[{"op":"rotate","a":0,"b":1}]`)); err == nil {
		t.Errorf("expected error for unknown op")
	}
}

func TestStepOpString(t *testing.T) {
	if StepSwap.String() != "swap" || StepXorInto.String() != "xor" {
		t.Errorf("unexpected step op names: %q, %q", StepSwap, StepXorInto)
	}
}
