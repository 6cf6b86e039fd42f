// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dial Contributors

package object

import (
	"math/bits"
	"strings"
)

// Int128 is a two's-complement signed 128-bit integer: hi holds the sign
// and the upper 64 bits, lo the lower 64 bits. Go has no native int128 and
// math/big.Int is arbitrary-precision (it does not wrap); this hand-rolled
// type is the one place the interpreter reaches for its own arithmetic
// instead of a library, because none in reach offers a fixed-width 128-bit
// wraparound integer.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Int128FromInt64 widens a native int64 to Int128.
func Int128FromInt64(n int64) Int128 {
	hi := int64(0)
	if n < 0 {
		hi = -1
	}
	return Int128{Hi: hi, Lo: uint64(n)}
}

// IsNegative reports whether the value is strictly negative.
func (a Int128) IsNegative() bool {
	return a.Hi < 0
}

// Add returns a+b with silent two's-complement wraparound on overflow,
// the defined behavior for the + builtin.
func (a Int128) Add(b Int128) Int128 {
	lo, carry := bits.Add64(a.Lo, b.Lo, 0)
	hi, _ := bits.Add64(uint64(a.Hi), uint64(b.Hi), carry)
	return Int128{Hi: int64(hi), Lo: lo}
}

// Neg returns the two's-complement negation of a.
func (a Int128) Neg() Int128 {
	return Int128{}.Sub(a)
}

// Sub returns a-b with the same wraparound rule as Add.
func (a Int128) Sub(b Int128) Int128 {
	return a.Add(b.twosComplementNeg())
}

func (a Int128) twosComplementNeg() Int128 {
	lo, carry := bits.Add64(^a.Lo, 1, 0)
	hi, _ := bits.Add64(^uint64(a.Hi), 0, carry)
	return Int128{Hi: int64(hi), Lo: lo}
}

// Equal reports whether a and b denote the same 128-bit value.
func (a Int128) Equal(b Int128) bool {
	return a.Hi == b.Hi && a.Lo == b.Lo
}

// String renders a in decimal, with a leading '-' if negative, matching the
// canonical external representation required of Number.
func (a Int128) String() string {
	if a.Hi == 0 && a.Lo == 0 {
		return "0"
	}

	neg := a.IsNegative()
	mag := a
	if neg {
		mag = a.twosComplementNeg()
	}

	var digits []byte
	for mag.Hi != 0 || mag.Lo != 0 {
		var rem uint64
		mag, rem = mag.divmod10()
		digits = append(digits, byte('0'+rem))
	}

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	for i := len(digits) - 1; i >= 0; i-- {
		sb.WriteByte(digits[i])
	}
	return sb.String()
}

// divmod10 divides the non-negative magnitude a by 10, returning the
// quotient and remainder.
func (a Int128) divmod10() (Int128, uint64) {
	const base = 10
	hiQ, hiR := bits.Div64(0, uint64(a.Hi), base)
	loQ, loR := bits.Div64(hiR, a.Lo, base)
	return Int128{Hi: int64(hiQ), Lo: loQ}, loR
}

// ParseInt128 parses an optionally '-'-prefixed run of decimal digits into
// an Int128, matching the reader's "parses as a signed 128-bit integer"
// atom-classification rule. It reports ok=false (not an error) for any
// string that isn't a valid integer literal, since the reader falls back
// to classifying the atom as a Symbol in that case.
func ParseInt128(s string) (Int128, bool) {
	if s == "" {
		return Int128{}, false
	}

	neg := false
	digits := s
	if s[0] == '-' || s[0] == '+' {
		neg = s[0] == '-'
		digits = s[1:]
	}
	if digits == "" {
		return Int128{}, false
	}

	acc := Int128{}
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return Int128{}, false
		}
		acc = acc.mul10().Add(Int128FromInt64(int64(c - '0')))
	}
	if neg {
		acc = acc.twosComplementNeg()
	}
	return acc, true
}

func (a Int128) mul10() Int128 {
	hi, lo := bits.Mul64(a.Lo, 10)
	hi += uint64(a.Hi) * 10
	return Int128{Hi: int64(hi), Lo: lo}
}
