package num

import (
	"github.com/pkg/errors"
)

// MillerRabin runs a single Miller-Rabin round on n with the given base. It
// returns false if base proves n composite, true if n is a strong probable
// prime to that base.
//
// n == 2 is prime and every other even n, as well as 0 and 1, is composite.
// A base that is a multiple of n proves nothing and yields true. Odd n must
// fit in 511 bits; wider values return ErrModulusTooWide.
func MillerRabin(n, base U512) (probablyPrime bool, err error) {
	if n.d[0]&1 == 0 {
		return n.Equal(Two512), nil
	}
	if n.LessOrEqualTo(One512) {
		return false, nil
	}
	if err := checkModulus(n); err != nil {
		return false, errors.WithMessage(err, "num: miller-rabin")
	}

	base = reduce512(base, n)
	if base.IsZero() {
		return true, nil
	}

	// n - 1 == 2^s * d, d odd
	n1 := n.Dec()
	s := n1.TrailingZeros()
	d := n1.Rsh(s)

	x := powmod512(base, d, n)
	if x.Equal(One512) || x.Equal(n1) {
		return true, nil
	}

	for i := uint(1); i < s; i++ {
		x = mulmod512(x, x, n)
		if x.Equal(n1) {
			return true, nil
		}
		if x.Equal(One512) {
			// a nontrivial square root of 1
			return false, nil
		}
	}
	return false, nil
}

// ProbablyPrime runs the given number of Miller-Rabin rounds on n, drawing
// each base from [2, n-2] with source. The chance of a
// composite passing is at most 4^-rounds.
//
// rounds must be at least 1 and source must not be nil, otherwise
// ErrNoRounds or ErrNilRandSource is returned.
func ProbablyPrime(n U512, rounds int, source RandSource) (bool, error) {
	if rounds < 1 {
		return false, errors.WithMessagef(ErrNoRounds, "num: probably-prime rounds %d", rounds)
	}
	if source == nil {
		return false, ErrNilRandSource
	}
	if n.LessThan(Two512) {
		return false, nil
	}
	if n.LessOrEqualTo(U512From64(3)) {
		return true, nil
	}
	if n.d[0]&1 == 0 {
		return false, nil
	}
	if err := checkModulus(n); err != nil {
		return false, errors.WithMessage(err, "num: probably-prime")
	}

	span := n.Sub(U512From64(3))
	for i := 0; i < rounds; i++ {
		_, off := quorem512bin(RandU512(source), span)
		base := off.Add(Two512)

		ok, err := MillerRabin(n, base)
		if err != nil {
			return false, err
		} else if !ok {
			return false, nil
		}
	}
	return true, nil
}
