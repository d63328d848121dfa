package muhash3072

import "github.com/pkg/errors"

// ErrOverflow is returned by DeserializeMuHash when the encoded value is
// not a canonical representative modulo P (i.e. it lies in [P, 2^3072)).
var ErrOverflow = errors.New("muhash3072: serialized value is not a canonical residue mod P")

// errWrongSize reports a byte slice of the wrong length. The seed and the
// digest are fixed-size array types, so their sizes are enforced at compile
// time; only the slice-taking entry points, Hash.SetBytes and
// DeserializeMuHash, can receive a wrong length, and they return this
// error rather than panicking so that callers decoding untrusted-length
// input don't need a recover().
func errWrongSize(what string, got, want int) error {
	return errors.Errorf("muhash3072: invalid %s length: got %d bytes, want %d", what, got, want)
}
