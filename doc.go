/*
Package num provides a fixed-width unsigned 512-bit integer (U512) with
exact division and modular arithmetic, plus the Miller-Rabin and textbook
RSA routines built on it.

U512 is a value type; all operations return new values. Arithmetic wraps
modulo 1<<512.

Simple example:

	b := U512From64(4)
	e := U512From64(13)
	m := U512From64(497)
	r, err := b.PowMod(e, m)
	if err != nil {
		panic(err)
	}
	fmt.Println(r)
	// Output: 445

U512 can be created from a variety of sources:

	U512From64(v uint64) U512
	U512From32(v uint32) U512
	U512FromDigits(d [16]uint32) U512
	U512FromString(s string) (out U512, accurate bool, err error)
	U512FromBigInt(v *big.Int) (out U512, accurate bool)
	RandU512(source RandSource) U512

Division and the modular operations return errors instead of panicking:
ErrDivisionByZero for a zero divisor or modulus, and ErrModulusTooWide when
MulMod, PowMod or anything built on them is given a modulus of 512
significant bits. Use errors.Is to match them.

U512 supports fmt.Formatter and fmt.Stringer. Hex() gives the fixed
128-character big-endian rendering.
*/
package num
