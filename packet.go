package fountain

import "github.com/ppopth/fountain/symbol"

// Packet is one equation of the linear system: Mask selects the source
// symbols whose XOR equals Payload. No physical wire layout is prescribed;
// transports serialize the pair however they see fit.
type Packet struct {
	Mask    symbol.Mask
	Payload symbol.Symbol
}
