package muhash3072

import (
	"math/big"
	"math/rand"
	"testing"
)

// primeBig is P = 2^3072 - primeDiff, computed independently of the
// package's own reduction code so tests cross-check against it rather
// than against themselves.
var primeBig = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), elementBitSize), big.NewInt(primeDiff))

func (n num3072) toBig() *big.Int {
	v := new(big.Int)
	for i := numLimbs - 1; i >= 0; i-- {
		v.Lsh(v, wordBits)
		v.Or(v, new(big.Int).SetUint64(uint64(n[i])))
	}
	return v
}

func num3072FromBig(v *big.Int) num3072 {
	var n num3072
	mod := new(big.Int).Mod(v, new(big.Int).Lsh(big.NewInt(1), elementBitSize))
	beBytes := mod.Bytes() // big-endian, shorter than elementByteSize in general
	var buf [elementByteSize]byte
	for i, b := range beBytes {
		buf[len(beBytes)-1-i] = b
	}
	n.setBytesLE(buf[:])
	return n
}

func randomNum3072(r *rand.Rand) num3072 {
	var n num3072
	for i := range n {
		n[i] = word(r.Uint64())
	}
	return n
}

func TestIsOverflowBoundary(t *testing.T) {
	// P - 1 is canonical: not an overflow.
	pMinus1 := num3072FromBig(new(big.Int).Sub(primeBig, big.NewInt(1)))
	if pMinus1.isOverflow() {
		t.Fatalf("P-1 must not be flagged as overflow")
	}

	// P itself is the smallest overflowing value.
	p := num3072FromBig(primeBig)
	if !p.isOverflow() {
		t.Fatalf("P must be flagged as overflow")
	}
	p.fullReduce()
	if !p.isZero() {
		t.Fatalf("FullReduce(P) should be 0, got %x", p)
	}

	// P + k for small k also overflows and reduces to k.
	for _, k := range []int64{1, 2, 41} {
		v := num3072FromBig(new(big.Int).Add(primeBig, big.NewInt(k)))
		if !v.isOverflow() {
			t.Fatalf("P+%d must be flagged as overflow", k)
		}
		v.fullReduce()
		want := num3072FromBig(big.NewInt(k))
		if v != want {
			t.Fatalf("FullReduce(P+%d) = %x, want %x", k, v, want)
		}
	}

	// 2^3072 - 1 (all-ones) also overflows.
	allOnes := num3072{}
	for i := range allOnes {
		allOnes[i] = maxWord
	}
	if !allOnes.isOverflow() {
		t.Fatalf("2^3072-1 must be flagged as overflow")
	}
}

func TestMultiplyMatchesBig(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		a := randomNum3072(r)
		b := randomNum3072(r)
		wantBig := new(big.Int).Mod(new(big.Int).Mul(a.toBig(), b.toBig()), primeBig)

		got := a
		got.multiply(&b)
		gotBig := got.toBig()
		if gotBig.Cmp(wantBig) != 0 {
			t.Fatalf("multiply mismatch on iteration %d:\n got  %x\n want %x", i, gotBig, wantBig)
		}
	}
}

func TestSquareMatchesBig(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		a := randomNum3072(r)
		wantBig := new(big.Int).Mod(new(big.Int).Mul(a.toBig(), a.toBig()), primeBig)

		got := a
		got.square()
		gotBig := got.toBig()
		if gotBig.Cmp(wantBig) != 0 {
			t.Fatalf("square mismatch on iteration %d:\n got  %x\n want %x", i, gotBig, wantBig)
		}
	}
}

func TestInverseMatchesBig(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for i := 0; i < 20; i++ {
		a := randomNum3072(r)
		a.fullReduceIfOverflowing()
		if a.isZero() {
			continue
		}
		wantBig := new(big.Int).ModInverse(a.toBig(), primeBig)

		var inv num3072
		inverse(&inv, &a)
		if inv.toBig().Cmp(wantBig) != 0 {
			t.Fatalf("inverse mismatch on iteration %d:\n got  %x\n want %x", i, inv.toBig(), wantBig)
		}
	}
}

func (n *num3072) fullReduceIfOverflowing() {
	if n.isOverflow() {
		n.fullReduce()
	}
}

func TestInverseIsInvolutive(t *testing.T) {
	r := rand.New(rand.NewSource(0))
	for i := 0; i < 5; i++ {
		a := randomNum3072(r)
		a.fullReduceIfOverflowing()
		if a.isZero() {
			continue
		}
		var inv, again num3072
		inverse(&inv, &a)
		inverse(&again, &inv)
		if again != a {
			t.Fatalf("double inverse mismatch: %x != %x", again, a)
		}
	}
}

func TestMulMaxIsOne(t *testing.T) {
	// (P-1)^2 mod P == 1, since P-1 == -1 mod P.
	max := num3072FromBig(new(big.Int).Sub(primeBig, big.NewInt(1)))
	square := max
	square.multiply(&max)
	if square != oneNum3072() {
		t.Fatalf("(P-1)*(P-1) mod P should equal 1, got %x", square)
	}
}

const mulDivLoops = 150

func TestMultiplyDivideRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	var list [mulDivLoops]num3072
	start := oneNum3072()
	for i := 0; i < mulDivLoops; i++ {
		list[i] = randomNum3072(r)
		start.multiply(&list[i])
	}
	if start == oneNum3072() {
		t.Fatalf("accumulator should not be 1 after %d random multiplies", mulDivLoops)
	}
	for i := 0; i < mulDivLoops; i++ {
		var inv num3072
		inverse(&inv, &list[i])
		start.multiply(&inv)
	}
	if start != oneNum3072() {
		t.Fatalf("accumulator should return to 1 after dividing out every multiplied element, got %x", start)
	}
}
