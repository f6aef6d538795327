package cryptography

import (
	"fmt"
	"math/big"

	"github.com/thaikhuong62000/RSA/internal/domain/cryptoalg"
)

var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
)

// ModExp computes base^exponent mod modulus with binary square-and-multiply,
// scanning the exponent from its least significant bit.
// It requires modulus > 0 and exponent >= 0; base may be any integer.
func ModExp(base, exponent, modulus *big.Int) (*big.Int, error) {
	if base == nil || exponent == nil || modulus == nil || modulus.Sign() <= 0 || exponent.Sign() < 0 {
		return nil, fmt.Errorf("modexp: %w", cryptoalg.ErrInvalidModulus)
	}
	if modulus.Cmp(bigOne) == 0 {
		return new(big.Int), nil
	}
	// x^0 is 1 even when x is a multiple of the modulus
	if exponent.Sign() == 0 {
		return big.NewInt(1), nil
	}

	power := new(big.Int).Mod(base, modulus)
	if power.Sign() == 0 {
		return new(big.Int), nil
	}

	result := big.NewInt(1)
	e := new(big.Int).Set(exponent)
	for e.Sign() > 0 {
		if e.Bit(0) == 1 {
			result.Mul(result, power)
			result.Mod(result, modulus)
		}
		e.Rsh(e, 1)
		power.Mul(power, power)
		power.Mod(power, modulus)
	}
	return result, nil
}
