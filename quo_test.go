package num

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/shabbyrobe/golib/assert"
)

func TestU512QuoRem(t *testing.T) {
	for idx, tc := range []struct {
		u, by, q, r U512
	}{
		{u: u64(5), by: u64(2), q: u64(2), r: u64(1)},
		{u: u64(1), by: u64(2), q: u64(0), r: u64(1)},
		{u: u64(10), by: u64(3), q: u64(3), r: u64(1)},
		{u: u64(0), by: u64(7), q: u64(0), r: u64(0)},
		{u: MaxU512, by: u64(1), q: MaxU512, r: u64(0)},
		{u: MaxU512, by: MaxU512, q: u64(1), r: u64(0)},
		{u: u512s("0x123456789012345678901234"), by: u512s("0x222222229012345678901234"), q: u64(0), r: u512s("0x123456789012345678901234")},

		// Divisors with bit 511 set: the remainder register overflows its top
		// digit while it is being shifted.
		{u: MaxU512, by: u64(1).Lsh(511), q: u64(1), r: MaxU512.Rsh(1)},
		{u: MaxU512, by: u64(1).Lsh(511).Inc(), q: u64(1), r: MaxU512.Rsh(1).Dec()},
		{u: MaxU512.Dec(), by: MaxU512, q: u64(0), r: MaxU512.Dec()},
	} {
		t.Run(fmt.Sprintf("%d/%s÷%s=%s,%s", idx, tc.u, tc.by, tc.q, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)
			q, r, err := tc.u.QuoRem(tc.by)
			tt.MustOK(err)
			tt.MustEqual(tc.q.String(), q.String())
			tt.MustEqual(tc.r.String(), r.String())

			uBig := tc.u.AsBigInt()
			byBig := tc.by.AsBigInt()

			qBig, rBig := new(big.Int).QuoRem(uBig, byBig, new(big.Int))
			tt.MustEqual(qBig.String(), q.String())
			tt.MustEqual(rBig.String(), r.String())

			qo, err := tc.u.Quo(tc.by)
			tt.MustOK(err)
			tt.MustEqual(q, qo)

			ro, err := tc.u.Rem(tc.by)
			tt.MustOK(err)
			tt.MustEqual(r, ro)
		})
	}
}

func TestU512QuoRemByZero(t *testing.T) {
	tt := assert.WrapTB(t)

	_, _, err := u64(5).QuoRem(Zero512)
	tt.MustAssert(errors.Is(err, ErrDivisionByZero))

	_, err = u64(5).Quo(Zero512)
	tt.MustAssert(errors.Is(err, ErrDivisionByZero))

	_, err = MaxU512.Rem(Zero512)
	tt.MustAssert(errors.Is(err, ErrDivisionByZero))
}

func TestU512QuoRemIdentity(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 2000; i++ {
		a, b := randU512(), randU512()
		if b.IsZero() {
			continue
		}
		q, r, err := a.QuoRem(b)
		tt.MustOK(err)
		tt.MustAssert(r.LessThan(b), "%s %% %s = %s", a, b, r)
		tt.MustEqual(a, q.Mul(b).Add(r), "%s / %s", a, b)
	}
}

func TestU512RemIdempotent(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 2000; i++ {
		a, m := randU512(), randU512()
		if m.IsZero() {
			continue
		}
		r1, err := a.Rem(m)
		tt.MustOK(err)
		tt.MustAssert(r1.LessThan(m))

		r2, err := r1.Rem(m)
		tt.MustOK(err)
		tt.MustEqual(r1, r2)
	}
}

func TestInvariantPanic(t *testing.T) {
	tt := assert.WrapTB(t)

	defer func() {
		rec := recover()
		ierr, ok := rec.(*InvariantError)
		tt.MustAssert(ok, "expected *InvariantError, found %#v", rec)
		tt.MustEqual("mulmod", ierr.Op)
	}()

	// reduceOnce requires v < 2m; 10 >= 2*3 can only come from a bug.
	reduceOnce(u64(10), u64(3))
}

var benchQuoCases = []struct {
	dividend U512
	divisor  U512
}{
	{MaxU512, u64(1)},
	{MaxU512, u64(3)},
	{MaxU512, MaxU512.Rsh(256)},
	{u64(maxUint64), u64(12345)},
}

func BenchmarkU512QuoRem(b *testing.B) {
	for _, bc := range benchQuoCases {
		b.Run(fmt.Sprintf("%d/%d", bc.dividend.BitLen(), bc.divisor.BitLen()), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchU512Result, _, _ = bc.dividend.QuoRem(bc.divisor)
			}
		})
	}
}
