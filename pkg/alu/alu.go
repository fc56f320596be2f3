// Package alu implements the 4-bit arithmetic-logic unit. Operands are
// masked to their low nibble before use.
package alu

// Result is a 4-bit value plus the flags it produced.
type Result struct {
	Value    uint8
	Zero     bool
	Carry    bool // carry out, or no-borrow for Sub, or the shifted-out bit
	Negative bool // bit 3 of Value
	Overflow bool // two's complement overflow
}

func mask4(v uint8) uint8 { return v & 0x0F }

func sign4(v uint8) bool { return v&0x08 != 0 }

func result(v uint8) Result {
	v = mask4(v)
	return Result{Value: v, Zero: v == 0, Negative: sign4(v)}
}

func Add(a, b uint8) Result {
	a, b = mask4(a), mask4(b)
	sum := a + b
	r := result(sum)
	r.Carry = sum&0x10 != 0
	r.Overflow = sign4(a) == sign4(b) && sign4(a) != r.Negative
	return r
}

// Sub computes a - b. Carry is set when no borrow occurred.
func Sub(a, b uint8) Result {
	a, b = mask4(a), mask4(b)
	r := result(a - b)
	r.Carry = a >= b
	r.Overflow = sign4(a) != sign4(b) && sign4(a) != r.Negative
	return r
}

func And(a, b uint8) Result { return result(a & b) }
func Or(a, b uint8) Result  { return result(a | b) }
func Xor(a, b uint8) Result { return result(a ^ b) }
func Not(a uint8) Result    { return result(^a) }

// Shl shifts left by one; Carry holds the bit shifted out of bit 3.
func Shl(a uint8) Result {
	a = mask4(a)
	r := result(a << 1)
	r.Carry = sign4(a)
	return r
}

// Shr shifts right by one; Carry holds the bit shifted out of bit 0.
func Shr(a uint8) Result {
	a = mask4(a)
	r := result(a >> 1)
	r.Carry = a&0x01 != 0
	return r
}
