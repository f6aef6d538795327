package testutil

import (
	"math/big"

	"github.com/thaikhuong62000/RSA/internal/domain/cryptoalg"
)

// Textbook keypair: p=61, q=53, e=17 gives n=3233, phi=3120, d=2753.
const (
	TextbookP   = 61
	TextbookQ   = 53
	TextbookE   = 17
	TextbookN   = 3233
	TextbookPhi = 3120
	TextbookD   = 2753
)

// TextbookKeypair returns the 61/53/17 keypair without running key generation.
func TextbookKeypair() *cryptoalg.Keypair {
	return &cryptoalg.Keypair{
		P:   big.NewInt(TextbookP),
		Q:   big.NewInt(TextbookQ),
		N:   big.NewInt(TextbookN),
		Phi: big.NewInt(TextbookPhi),
		E:   big.NewInt(TextbookE),
		D:   big.NewInt(TextbookD),
	}
}

// Ints converts int64 values to blocks.
func Ints(values ...int64) []cryptoalg.Block {
	out := make([]cryptoalg.Block, 0, len(values))
	for _, v := range values {
		out = append(out, big.NewInt(v))
	}
	return out
}
