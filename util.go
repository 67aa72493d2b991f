package num

type RandSource interface {
	Uint64() uint64
}

// XorShift32 is Marsaglia's 13/17/5 xorshift generator. It is fast and
// reproducible from a seed, which makes it useful for drawing test operands
// and Miller-Rabin bases. It is not cryptographically secure.
//
// An XorShift32 is not safe for concurrent use; give each goroutine its own.
type XorShift32 struct {
	state uint32
}

// NewXorShift32 seeds a generator. Zero is a fixed point of xorshift, so a
// zero seed is replaced with 1.
func NewXorShift32(seed uint32) *XorShift32 {
	if seed == 0 {
		seed = 1
	}
	return &XorShift32{state: seed}
}

func (x *XorShift32) Uint32() uint32 {
	v := x.state
	v ^= v << 13
	v ^= v >> 17
	v ^= v << 5
	x.state = v
	return v
}

// Uint64 joins two consecutive outputs, the first in the high half.
func (x *XorShift32) Uint64() uint64 {
	hi := x.Uint32()
	return uint64(hi)<<32 | uint64(x.Uint32())
}
