package num

// Mul returns u*n truncated to the low 512 bits.
func (u U512) Mul(n U512) (out U512) {
	for i := 0; i < digitCount; i++ {
		if u.d[i] == 0 {
			continue
		}
		var carry uint64
		for j := 0; i+j < digitCount; j++ {
			// (2^32-1)^2 + 2*(2^32-1) == 2^64-1, so this never overflows.
			t := uint64(u.d[i])*uint64(n.d[j]) + uint64(out.d[i+j]) + carry
			out.d[i+j] = uint32(t)
			carry = t >> digitBits
		}
	}
	return out
}

// Pow returns u**exp truncated to the low 512 bits. Pow(0) is 1, including
// for a zero base.
func (u U512) Pow(exp U512) U512 {
	acc, base := One512, u
	for i, n := uint(0), exp.BitLen(); i < n; i++ {
		if exp.d.bit(i) == 1 {
			acc = acc.Mul(base)
		}
		base = base.Mul(base)
	}
	return acc
}
