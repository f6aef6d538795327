package cryptography

import (
	"fmt"
	"math/big"

	"github.com/thaikhuong62000/RSA/internal/domain/cryptoalg"
)

// ModInverse returns d with e*d = 1 (mod phi) and 0 <= d < phi, using the
// iterative extended Euclidean algorithm over the remainder sequence of (phi, e).
// It fails with ErrNoInverseExists when gcd(e, phi) != 1.
func ModInverse(e, phi *big.Int) (*big.Int, error) {
	if e == nil || phi == nil || e.Sign() <= 0 || phi.Sign() <= 0 {
		return nil, fmt.Errorf("modinverse requires positive operands: %w", cryptoalg.ErrNoInverseExists)
	}

	oldR, r := new(big.Int).Set(phi), new(big.Int).Mod(e, phi)
	oldT, t := new(big.Int), big.NewInt(1)
	q, tmp := new(big.Int), new(big.Int)

	// invariant: oldT*e = oldR and t*e = r (mod phi)
	for r.Sign() != 0 {
		q.Quo(oldR, r)

		tmp.Mul(q, r)
		tmp.Sub(oldR, tmp)
		oldR.Set(r)
		r.Set(tmp)

		tmp.Mul(q, t)
		tmp.Sub(oldT, tmp)
		oldT.Set(t)
		t.Set(tmp)
	}

	if oldR.Cmp(bigOne) != 0 {
		return nil, fmt.Errorf("gcd(%s, %s) = %s: %w", e, phi, oldR, cryptoalg.ErrNoInverseExists)
	}
	if oldT.Sign() < 0 {
		oldT.Add(oldT, phi)
	}
	return oldT.Mod(oldT, phi), nil
}

// GCD returns the greatest common divisor of two non-negative integers.
func GCD(a, b *big.Int) *big.Int {
	x, y := new(big.Int).Abs(a), new(big.Int).Abs(b)
	for y.Sign() != 0 {
		x.Mod(x, y)
		x, y = y, x
	}
	return x
}

// ChoosePublicExponent returns the first odd e >= 3 coprime to phi.
// phi must be positive and even, as every two-prime totient is.
func ChoosePublicExponent(phi *big.Int) *big.Int {
	e := big.NewInt(3)
	for GCD(e, phi).Cmp(bigOne) != 0 {
		e.Add(e, bigTwo)
	}
	return e
}
