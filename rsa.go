package num

import (
	"github.com/pkg/errors"
)

// RSAPublicKey is a textbook RSA public key. N must fit in 511 bits, for
// example the product of two primes of at most 255 bits each.
type RSAPublicKey struct {
	N U512
	E U512
}

type RSAPrivateKey struct {
	RSAPublicKey
	D U512
}

// RSAEncrypt computes msg^E mod N. There is no padding; msg must already be
// an integer below N.
func RSAEncrypt(pub *RSAPublicKey, msg U512) (U512, error) {
	return rsaApply("encrypt", msg, pub.E, pub.N)
}

// RSADecrypt computes c^D mod N.
func RSADecrypt(priv *RSAPrivateKey, c U512) (U512, error) {
	return rsaApply("decrypt", c, priv.D, priv.N)
}

func rsaApply(op string, in, exp, n U512) (U512, error) {
	if err := checkModulus(n); err != nil {
		return U512{}, errors.WithMessagef(err, "num: rsa %s", op)
	}
	if in.GreaterOrEqualTo(n) {
		return U512{}, errors.WithMessagef(ErrMessageOutOfRange, "num: rsa %s", op)
	}
	return powmod512(in, exp, n), nil
}
