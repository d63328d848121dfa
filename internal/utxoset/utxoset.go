// Package utxoset demonstrates the consumer contract muhash3072 is built
// for: summarizing a large, mutating set of unspent transaction outputs
// as a single running digest instead of re-hashing the whole set on
// every block.
//
// It is a simplified stand-in for node/coinstats.cpp's ApplyStats: each
// entry is serialized (fixed-width outpoint and height/coinbase fields,
// a varint-length-prefixed script) and hashed with a truncated SHA-512,
// exactly as TruncatedSHA512Writer does upstream. Both of those steps
// are the "variable-integer serialisation" and "truncated-SHA-512"
// helpers muhash3072's own spec explicitly treats as external
// collaborators, so they live here rather than in the core package, and
// they use the standard library rather than a third-party dependency
// because nothing in this module's domain-stack has a claim on them.
package utxoset

import (
	"crypto/sha512"
	"encoding/binary"

	"github.com/chaindigest/muhash3072"
)

// Entry is a simplified unspent-transaction-output record: enough
// fields to make each entry's seed unique and order-independent, without
// pulling in a full transaction/script model.
type Entry struct {
	TxID         [32]byte
	Vout         uint32
	Height       uint32
	Coinbase     bool
	Amount       uint64
	ScriptPubKey []byte
}

// SeedFor serializes e the way ApplyStats does (outpoint, then
// height*2+coinbase, then the output) and reduces it to a 32-byte seed
// via a SHA-512 truncated to its first 32 bytes.
func SeedFor(e Entry) [32]byte {
	buf := make([]byte, 0, 32+4+4+8+binary.MaxVarintLen64+len(e.ScriptPubKey))
	buf = append(buf, e.TxID[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, e.Vout)

	heightAndFlag := e.Height*2 + boolToUint32(e.Coinbase)
	buf = binary.LittleEndian.AppendUint32(buf, heightAndFlag)

	buf = binary.LittleEndian.AppendUint64(buf, e.Amount)
	buf = binary.AppendUvarint(buf, uint64(len(e.ScriptPubKey)))
	buf = append(buf, e.ScriptPubKey...)

	full := sha512.Sum512(buf)
	var seed [32]byte
	copy(seed[:], full[:32])
	return seed
}

func boolToUint32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// Set is a running MuHash3072 digest over a collection of Entry values.
type Set struct {
	acc *muhash3072.MuHash3072
}

// NewSet returns the digest of the empty UTXO set.
func NewSet() *Set {
	return &Set{acc: muhash3072.NewMuHash()}
}

// Apply inserts e (a newly created output) into the set.
func (s *Set) Apply(e Entry) {
	s.acc.MulAssign(muhash3072.NewMuHashFromSeed(SeedFor(e)))
}

// Remove deletes e (a spent output) from the set.
func (s *Set) Remove(e Entry) {
	s.acc.DivAssign(muhash3072.NewMuHashFromSeed(SeedFor(e)))
}

// Combine folds other's accumulated inserts/removes into s, for
// combining sets built independently over disjoint shards of the chain.
func (s *Set) Combine(other *Set) {
	s.acc.Combine(other.acc)
}

// Digest returns the current fingerprint of the set.
func (s *Set) Digest() muhash3072.Hash {
	return s.acc.Finalize()
}
