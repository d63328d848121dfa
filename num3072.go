package muhash3072

import "encoding/binary"

// num3072 is a fixed-width, non-negative integer in [0, 2^3072), stored
// as numLimbs little-endian limbs (index 0 is least significant). It is
// the sole storage representation for values that may transiently sit
// in [0, 2*P) between reduction passes; the ModP layer (modp.go) is
// responsible for restoring canonical form.
type num3072 [numLimbs]word

// oneNum3072 returns the multiplicative identity, 1.
func oneNum3072() num3072 {
	var n num3072
	n[0] = 1
	return n
}

func (n *num3072) setToOne() {
	n[0] = 1
	for i := 1; i < numLimbs; i++ {
		n[i] = 0
	}
}

func (n num3072) isZero() bool {
	for _, limb := range n {
		if limb != 0 {
			return false
		}
	}
	return true
}

// setBytesLE loads a little-endian byte sequence of exactly
// elementByteSize bytes as a num3072. The value is not reduced modulo P.
func (n *num3072) setBytesLE(data []byte) {
	for i := range n {
		switch wordBits {
		case 64:
			n[i] = word(binary.LittleEndian.Uint64(data[i*wordBytes:]))
		case 32:
			n[i] = word(binary.LittleEndian.Uint32(data[i*wordBytes:]))
		default:
			panic("muhash3072: unsupported limb width")
		}
	}
}

// putBytesLE serializes n as elementByteSize little-endian bytes.
func (n num3072) putBytesLE(out []byte) {
	for i := range n {
		switch wordBits {
		case 64:
			binary.LittleEndian.PutUint64(out[i*wordBytes:], uint64(n[i]))
		case 32:
			binary.LittleEndian.PutUint32(out[i*wordBytes:], uint32(n[i]))
		default:
			panic("muhash3072: unsupported limb width")
		}
	}
}
