package muhash3072

import (
	"encoding/hex"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20"
)

const (
	// HashSize is the length in bytes of Hash, the short digest returned
	// by Finalize.
	HashSize = 32

	elementBitSize  = 3072
	elementByteSize = elementBitSize / 8

	// SerializedMuHashSize is the length in bytes of SerializedMuHash,
	// the raw (non-finalized-hash) accumulator snapshot.
	SerializedMuHashSize = elementByteSize
)

// Hash is a fixed-size digest, as returned by MuHash3072.Finalize.
type Hash [HashSize]byte

// String returns the hexadecimal encoding of hash.
func (hash Hash) String() string {
	return hex.EncodeToString(hash[:])
}

// IsEqual reports whether hash and target hold the same bytes. A nil
// target is never equal.
func (hash *Hash) IsEqual(target *Hash) bool {
	if target == nil {
		return false
	}
	return *hash == *target
}

// SetBytes sets hash from data, which must be exactly HashSize bytes.
func (hash *Hash) SetBytes(data []byte) error {
	if len(data) != HashSize {
		return errWrongSize("hash", len(data), HashSize)
	}
	copy(hash[:], data)
	return nil
}

// SerializedMuHash is the storage representation of a MuHash3072
// accumulator: its num3072 value, canonicalized and encoded as
// SerializedMuHashSize little-endian bytes.
type SerializedMuHash [SerializedMuHashSize]byte

// String returns the hexadecimal encoding of serialized.
func (serialized SerializedMuHash) String() string {
	return hex.EncodeToString(serialized[:])
}

// MuHash3072 is a running multiset digest: the group of units modulo the
// 3072-bit safe prime P = 2^3072 - 1103717, with insertion as
// multiplication and deletion as division. The zero value is not usable;
// construct one with NewMuHash or NewMuHashFromSeed.
type MuHash3072 struct {
	value num3072
}

// NewMuHash returns the identity element: the digest of the empty
// multiset. Multiplying any element by it, or finalizing it directly,
// recovers that element / the empty-set digest respectively.
func NewMuHash() *MuHash3072 {
	return &MuHash3072{value: oneNum3072()}
}

// NewMuHashFromSeed expands the 32-byte seed through a ChaCha20
// keystream (default nonce, i.e. the all-zero 96-bit nonce, initial
// block counter 0) into SerializedMuHashSize bytes, and loads them
// little-endian as a group element. The result is not reduced modulo P
// on construction; values in the overflow window [P, 2^3072) are handled
// at Finalize/Serialize time instead.
func NewMuHashFromSeed(seed [32]byte) *MuHash3072 {
	stream, err := chacha20.NewUnauthenticatedCipher(seed[:], make([]byte, chacha20.NonceSize))
	if err != nil {
		// seed and nonce are both fixed-size and always valid; this
		// would indicate a broken chacha20 implementation.
		panic(errors.Wrap(err, "muhash3072: chacha20 keystream setup"))
	}
	var elementBytes [elementByteSize]byte
	stream.XORKeyStream(elementBytes[:], elementBytes[:])

	var m MuHash3072
	m.value.setBytesLE(elementBytes[:])
	return &m
}

// Reset restores mu to the identity element, as if newly constructed by
// NewMuHash.
func (mu *MuHash3072) Reset() {
	mu.value.setToOne()
}

// Clone returns an independent copy of mu.
func (mu MuHash3072) Clone() *MuHash3072 {
	return &mu
}

// Add hashes data (BLAKE2b-256, then expanded through ChaCha20 exactly as
// NewMuHashFromSeed does) into a group element and multiplies it into mu.
// Supports arbitrary-length data.
func (mu *MuHash3072) Add(data []byte) {
	mu.MulAssign(elementFromData(data))
}

// Remove is the inverse of Add: it hashes data the same way and divides
// the resulting element out of mu.
func (mu *MuHash3072) Remove(data []byte) {
	mu.DivAssign(elementFromData(data))
}

func elementFromData(data []byte) *MuHash3072 {
	seed := blake2b.Sum256(data)
	return NewMuHashFromSeed(seed)
}

// MulAssign multiplies other's value into mu: the group law, and the
// digest of the union of the two multisets mu and other each represent.
// other is read, never retained or mutated.
func (mu *MuHash3072) MulAssign(other *MuHash3072) {
	mu.value.multiply(&other.value)
}

// DivAssign divides other's value out of mu: the group law's inverse,
// and the digest of the multiset difference mu minus other. It inverts a
// copy of other's value and multiplies that in; other itself is never
// mutated. Dividing by an element whose value is the zero residue is not
// rejected — it mirrors the source's total, branch-free inversion, which
// returns 0^(P-2) = 0, and yields a degenerate (non-invertible) result
// rather than an error.
func (mu *MuHash3072) DivAssign(other *MuHash3072) {
	var inv num3072
	inverse(&inv, &other.value)
	mu.value.multiply(&inv)
}

// Combine multiplies other into mu, equivalent to inserting every element
// other has ever had inserted into it (and dividing out every element it
// has had removed). This is the mechanism for combining independently
// updated accumulators — e.g. accumulators updated concurrently by
// different workers over disjoint shards of a multiset.
func (mu *MuHash3072) Combine(other *MuHash3072) {
	mu.MulAssign(other)
}

// Subtract divides other out of mu; the inverse of Combine.
func (mu *MuHash3072) Subtract(other *MuHash3072) {
	mu.DivAssign(other)
}

// canonical returns mu's value reduced into [0, P), without mutating mu.
func (mu *MuHash3072) canonical() num3072 {
	v := mu.value
	if v.isOverflow() {
		v.fullReduce()
	}
	return v
}

// Serialize returns mu's canonicalized value as raw little-endian bytes.
// Unlike Finalize, this is not hashed again; it is the "right way to
// serialize a multiset for storage" — DeserializeMuHash reconstructs an
// equivalent accumulator from the result. Serialize does not mutate mu.
func (mu *MuHash3072) Serialize() SerializedMuHash {
	var out SerializedMuHash
	mu.canonical().putBytesLE(out[:])
	return out
}

// DeserializeMuHash parses data (SerializedMuHashSize bytes, as produced
// by Serialize) back into a MuHash3072. It rejects data that does not
// encode a canonical residue modulo P.
func DeserializeMuHash(data []byte) (*MuHash3072, error) {
	if len(data) != SerializedMuHashSize {
		return nil, errWrongSize("serialized muhash", len(data), SerializedMuHashSize)
	}
	var m MuHash3072
	m.value.setBytesLE(data)
	if m.value.isOverflow() {
		return nil, ErrOverflow
	}
	return &m, nil
}

// Finalize returns the BLAKE2b-256 digest of mu's serialized value: a
// fixed-length fingerprint of the multiset mu represents, independent of
// the order elements were added or removed in. Finalize does not mutate
// or consume mu; it may be called any number of times, and interleaved
// freely with further Add/Remove/MulAssign/DivAssign calls.
func (mu *MuHash3072) Finalize() Hash {
	serialized := mu.Serialize()
	return blake2b.Sum256(serialized[:])
}

// String returns the hexadecimal encoding of mu's serialized value.
func (mu MuHash3072) String() string {
	s := mu.Serialize()
	return s.String()
}
