package fountain

import (
	"fmt"

	"github.com/francoispqt/gojay"
)

// StepLog is the JSON-serializable form of a recorded elimination program.
// The log is an explicit, inspectable sequence of tagged operations, so it
// can be exported for diagnostics and replayed elsewhere.
type StepLog []Step

// MarshalJSONObject encodes one step as {"op": ..., "a": ..., "b": ...}.
func (s *Step) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("op", s.Op.String())
	enc.IntKey("a", s.A)
	enc.IntKey("b", s.B)
}

// IsNil implements gojay.MarshalerJSONObject.
func (s *Step) IsNil() bool {
	return s == nil
}

// UnmarshalJSONObject decodes one step field.
func (s *Step) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	switch key {
	case "op":
		var name string
		if err := dec.String(&name); err != nil {
			return err
		}
		op, err := parseStepOp(name)
		if err != nil {
			return err
		}
		s.Op = op
	case "a":
		return dec.Int(&s.A)
	case "b":
		return dec.Int(&s.B)
	}
	return nil
}

// NKeys implements gojay.UnmarshalerJSONObject.
func (s *Step) NKeys() int {
	return 3
}

// MarshalJSONArray implements gojay.MarshalerJSONArray.
func (l StepLog) MarshalJSONArray(enc *gojay.Encoder) {
	for i := range l {
		enc.Object(&l[i])
	}
}

// IsNil implements gojay.MarshalerJSONArray.
func (l StepLog) IsNil() bool {
	return l == nil
}

// UnmarshalJSONArray implements gojay.UnmarshalerJSONArray.
func (l *StepLog) UnmarshalJSONArray(dec *gojay.Decoder) error {
	var s Step
	if err := dec.Object(&s); err != nil {
		return err
	}
	*l = append(*l, s)
	return nil
}

// EncodeStepLog serializes a step program to JSON.
func EncodeStepLog(steps []Step) ([]byte, error) {
	return gojay.MarshalJSONArray(StepLog(steps))
}

// DecodeStepLog parses a JSON step program.
func DecodeStepLog(data []byte) ([]Step, error) {
	var l StepLog
	if err := gojay.UnmarshalJSONArray(data, &l); err != nil {
		return nil, err
	}
	return l, nil
}

func parseStepOp(name string) (StepOp, error) {
	switch name {
	case "swap":
		return StepSwap, nil
	case "xor":
		return StepXorInto, nil
	default:
		return 0, fmt.Errorf("unknown step op %q", name)
	}
}
