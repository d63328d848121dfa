// Package muhash3072 implements MuHash3072, an incremental, commutative
// multiset hash built from modular multiplication in the group of units
// modulo the 3072-bit safe prime P = 2^3072 - 1103717.
//
// A MuHash3072 accumulator starts at the group identity and is updated by
// multiplying in a per-element group element (insertion) or dividing one
// out (deletion), in any order; two accumulators fed the same multiset of
// elements in different orders finalize to the same digest. This makes it
// suitable for summarizing large, mutating sets — canonically, a
// cryptocurrency node's unspent-transaction-output set — without
// re-hashing the whole set on every change.
//
// The arithmetic core (num3072.go, modp.go) is a schoolbook bignum
// implementation specialized for P's near-Mersenne shape: every reduction
// is a multiply-by-1103717-and-fold instead of a general long division.
// Limb width (64-bit vs. 32-bit) is chosen at compile time; see
// limb_wide.go and limb_narrow.go.
package muhash3072
