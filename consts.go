package num

import (
	"math/big"
)

const (
	maxUint64 = 1<<64 - 1

	intSize = 32 << (^uint(0) >> 63)
)

var (
	Zero512 U512
	One512  = U512{d: digits{1}}
	Two512  = U512{d: digits{2}}

	// MaxU512 has every bit set; adding it to a value subtracts one.
	MaxU512 = U512{d: digits{
		0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF,
		0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF,
	}}

	// maxModulus is the largest modulus MulMod and PowMod accept, (1<<511) - 1.
	maxModulus = MaxU512.Rsh(1)

	big0 = new(big.Int).SetInt64(0)
	big1 = new(big.Int).SetInt64(1)

	// wrapBigU512 is 1 << 512, used to simulate over/underflow:
	wrapBigU512 = new(big.Int).Lsh(big1, u512Bits)

	maxBigU512 = new(big.Int).Sub(wrapBigU512, big1)
)
