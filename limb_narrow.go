//go:build muhash_narrow

package muhash3072

import "math/bits"

// narrow is the 32-bit limb fallback, selected by building with
// -tags muhash_narrow. It exists for platforms without an efficient
// 128-bit intermediate; it must produce byte-identical 384-byte digests
// to the wide (64-bit limb) layout for the same input sequence.

type word = uint32

const (
	wordBits  = 32
	wordBytes = wordBits / 8
	numLimbs  = 3072 / wordBits
	maxWord   = word(1<<wordBits - 1)
)

func mul(c0, c1 *word, a, b word) {
	*c1, *c0 = bits.Mul32(a, b)
}

func muladd3(c0, c1, c2 *word, a, b word) {
	hi, lo := bits.Mul32(a, b)
	var carry word
	*c0, carry = bits.Add32(*c0, lo, 0)
	*c1, carry = bits.Add32(*c1, hi, carry)
	*c2 += carry
}

func muldbladd3(c0, c1, c2 *word, a, b word) {
	hi, lo := bits.Mul32(a, b)
	var carry word
	*c0, carry = bits.Add32(*c0, lo, 0)
	*c1, carry = bits.Add32(*c1, hi, carry)
	*c2 += carry
	*c0, carry = bits.Add32(*c0, lo, 0)
	*c1, carry = bits.Add32(*c1, hi, carry)
	*c2 += carry
}

func mulnadd3(c0, c1, c2 *word, d0, d1, d2, n word) {
	hi, lo := bits.Mul32(d0, n)
	var carry word
	*c0, carry = bits.Add32(*c0, lo, 0)
	hi += carry

	hi2, lo2 := bits.Mul32(d1, n)
	*c1, carry = bits.Add32(lo2, *c1, 0)
	hi2 += carry
	*c1, carry = bits.Add32(*c1, hi, 0)
	hi2 += carry

	*c2 = hi2 + d2*n
}

func muln2(c0, c1 *word, n word) {
	hi, lo := bits.Mul32(*c0, n)
	_, lo2 := bits.Mul32(*c1, n)
	*c0 = lo
	*c1 = hi + lo2
}

func add2(c0, c1 *word, a word) {
	var carry word
	*c0, carry = bits.Add32(*c0, a, 0)
	*c1 += carry
}

func extract2(c0, c1, n *word) {
	*n = *c0
	*c0 = *c1
	*c1 = 0
}

func extract3(c0, c1, c2, n *word) {
	*n = *c0
	*c0 = *c1
	*c1 = *c2
	*c2 = 0
}
