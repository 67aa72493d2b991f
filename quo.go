package num

// Quo returns the quotient u/by. It returns ErrDivisionByZero if by is zero.
func (u U512) Quo(by U512) (q U512, err error) {
	q, _, err = u.QuoRem(by)
	return q, err
}

// Rem returns the remainder u%by. It returns ErrDivisionByZero if by is zero.
func (u U512) Rem(by U512) (r U512, err error) {
	_, r, err = u.QuoRem(by)
	return r, err
}

// QuoRem returns the quotient q and remainder r such that u == q*by + r and
// r < by. It returns ErrDivisionByZero if by is zero.
//
// Division is binary restoring long division: one iteration per significant
// bit of u, so at most 512 iterations regardless of the operands.
func (u U512) QuoRem(by U512) (q, r U512, err error) {
	if by.IsZero() {
		return q, r, ErrDivisionByZero
	}
	q, r = quorem512bin(u, by)
	return q, r, nil
}

// quorem512bin requires a nonzero divisor.
func quorem512bin(u, by U512) (q, r U512) {
	for i := u.BitLen(); i > 0; i-- {
		j := i - 1

		// The bit shifted out of the top digit is part of the remainder;
		// when it is set the true remainder is >= 1<<512 > by.
		top := r.d.shl1()
		r.d[0] |= uint32(u.d.bit(j))

		if top != 0 || r.d.cmp(&by.d) >= 0 {
			r = r.Sub(by)
			q.d.setBit(j, 1)
		}
	}

	if r.d.cmp(&by.d) >= 0 {
		panic(invariantf("quorem", "remainder %s not below divisor %s", r, by))
	}
	return q, r
}
