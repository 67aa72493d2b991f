package num

// AddMod returns (u + n) mod m, where the sum is first taken modulo 1<<512.
// The result only matches mathematical modular addition when u and n are
// both already reduced below m; that is not checked.
func (u U512) AddMod(n, m U512) (U512, error) {
	if m.IsZero() {
		return U512{}, ErrDivisionByZero
	}
	_, r := quorem512bin(u.Add(n), m)
	return r, nil
}

// MulMod returns (u * n) mod m without forming the 1024-bit product. m must
// be nonzero and fit in 511 bits, otherwise ErrDivisionByZero or
// ErrModulusTooWide is returned.
func (u U512) MulMod(n, m U512) (U512, error) {
	if err := checkModulus(m); err != nil {
		return U512{}, err
	}
	return mulmod512(u, n, m), nil
}

// PowMod returns (u ** exp) mod m using square-and-multiply, at most 512
// squarings. A zero exponent yields 1 mod m. m has the same restrictions as
// for MulMod.
func (u U512) PowMod(exp, m U512) (U512, error) {
	if err := checkModulus(m); err != nil {
		return U512{}, err
	}
	return powmod512(u, exp, m), nil
}

// reduce512 returns u mod m for nonzero m, skipping the division when u is
// already reduced.
func reduce512(u, m U512) U512 {
	if u.d.cmp(&m.d) < 0 {
		return u
	}
	_, r := quorem512bin(u, m)
	return r
}

// reduceOnce brings v < 2m back below m.
func reduceOnce(v, m U512) U512 {
	if v.d.cmp(&m.d) >= 0 {
		v = v.Sub(m)
	}
	if v.d.cmp(&m.d) >= 0 {
		panic(invariantf("mulmod", "residue %s not below modulus %s", v, m))
	}
	return v
}

// mulmod512 is double-and-reduce over the bits of n, least significant
// first. Both the accumulator and the running base stay below m, so with
// m < 1<<511 neither the sum nor the doubling can carry out of bit 511.
func mulmod512(u, n, m U512) (acc U512) {
	base := reduce512(u, m)
	for i, bl := uint(0), n.BitLen(); i < bl; i++ {
		if n.d.bit(i) == 1 {
			acc = reduceOnce(acc.Add(base), m)
		}
		base = reduceOnce(base.Lsh(1), m)
	}
	return acc
}

func powmod512(u, exp, m U512) U512 {
	acc := reduce512(One512, m)
	base := reduce512(u, m)
	for i, bl := uint(0), exp.BitLen(); i < bl; i++ {
		if exp.d.bit(i) == 1 {
			acc = mulmod512(acc, base, m)
		}
		if i+1 < bl {
			base = mulmod512(base, base, m)
		}
	}
	return acc
}
