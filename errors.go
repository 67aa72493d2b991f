package num

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrDivisionByZero is returned when a divisor or modulus is zero.
	ErrDivisionByZero = errors.New("num: u512 division by zero")

	// ErrModulusTooWide is returned by MulMod and everything built on it when
	// the modulus does not fit in 511 bits. Doubling a residue of a wider
	// modulus would carry out of the 512-bit field.
	ErrModulusTooWide = errors.New("num: u512 modulus wider than 511 bits")

	// ErrMessageOutOfRange is returned by the RSA functions when the input is
	// not less than the key's modulus.
	ErrMessageOutOfRange = errors.New("num: rsa message not less than modulus")

	// ErrNoRounds is returned by ProbablyPrime when asked for fewer than one
	// round; zero rounds would report every odd number as prime.
	ErrNoRounds = errors.New("num: miller-rabin needs at least one round")

	// ErrNilRandSource is returned by ProbablyPrime when it has no source to
	// draw bases from.
	ErrNilRandSource = errors.New("num: nil rand source")
)

// InvariantError is the panic value used when the arithmetic reaches a state
// that only a bug in this package could produce. It is never returned as an
// error.
type InvariantError struct {
	Op  string
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("num: u512 %s: invariant violated: %s", e.Op, e.Msg)
}

func invariantf(op string, format string, args ...interface{}) *InvariantError {
	return &InvariantError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// checkModulus enforces the MulMod precondition: 0 < m < 1<<511.
func checkModulus(m U512) error {
	if m.IsZero() {
		return ErrDivisionByZero
	}
	if m.GreaterThan(maxModulus) {
		return ErrModulusTooWide
	}
	return nil
}
