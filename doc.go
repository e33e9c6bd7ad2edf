// Package fountain implements a rateless forward-error-correction engine.
// A Sender turns a fixed message of k equal-length symbols into an unbounded
// stream of encoding packets, each packet an XOR combination of the source
// symbols selected by a coefficient generator. A Receiver collects packets
// from an erasure channel and, once enough independent equations have
// arrived, recovers the original message by Gaussian elimination over GF(2)
// with symbol-valued right-hand sides.
//
// The coefficient generators live in the coeff subpackage, the symbol
// algebra in symbol, the GF(2) polynomial arithmetic in field, and the
// Robust Soliton degree distribution in soliton.
package fountain
