package cryptography

import (
	"fmt"
	"math/big"

	"github.com/thaikhuong62000/RSA/internal/domain/cryptoalg"
)

// Engine applies the RSA primitive with the key half it was built from.
// Public engines hold (e, n), private engines (d, n); NewEngine holds both.
type Engine struct {
	e *big.Int
	d *big.Int
	n *big.Int
}

// NewPublicEngine creates an engine that can encrypt and verify.
func NewPublicEngine(publicKey *cryptoalg.PublicKey) (*Engine, error) {
	if err := publicKey.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		e: new(big.Int).Set(publicKey.E),
		n: new(big.Int).Set(publicKey.N),
	}, nil
}

// NewPrivateEngine creates an engine that can decrypt and sign.
func NewPrivateEngine(privateKey *cryptoalg.PrivateKey) (*Engine, error) {
	if err := privateKey.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		d: new(big.Int).Set(privateKey.D),
		n: new(big.Int).Set(privateKey.N),
	}, nil
}

// NewEngine creates an engine holding the full keypair.
func NewEngine(keypair *cryptoalg.Keypair) (*Engine, error) {
	if err := keypair.Validate(); err != nil {
		return nil, fmt.Errorf("invalid keypair: %w", err)
	}
	return &Engine{
		e: new(big.Int).Set(keypair.E),
		d: new(big.Int).Set(keypair.D),
		n: new(big.Int).Set(keypair.N),
	}, nil
}

// Modulus returns a copy of n.
func (en *Engine) Modulus() *big.Int {
	return new(big.Int).Set(en.n)
}

// Encrypt computes block^e mod n. The block must satisfy 0 <= block < n.
func (en *Engine) Encrypt(block cryptoalg.Block) (cryptoalg.Block, error) {
	return en.apply(block, en.e, "public exponent")
}

// Decrypt computes block^d mod n.
func (en *Engine) Decrypt(block cryptoalg.Block) (cryptoalg.Block, error) {
	return en.apply(block, en.d, "private exponent")
}

// Sign is the same computation as Decrypt.
func (en *Engine) Sign(block cryptoalg.Block) (cryptoalg.Block, error) {
	return en.Decrypt(block)
}

// Verify is the same computation as Encrypt. The caller compares the result
// with the original message block.
func (en *Engine) Verify(block cryptoalg.Block) (cryptoalg.Block, error) {
	return en.Encrypt(block)
}

// EncryptAll encrypts every block, preserving order.
func (en *Engine) EncryptAll(blocks []cryptoalg.Block) ([]cryptoalg.Block, error) {
	return applyAll(blocks, en.Encrypt)
}

// DecryptAll decrypts every block, preserving order.
func (en *Engine) DecryptAll(blocks []cryptoalg.Block) ([]cryptoalg.Block, error) {
	return applyAll(blocks, en.Decrypt)
}

// SignAll signs every block, preserving order.
func (en *Engine) SignAll(blocks []cryptoalg.Block) ([]cryptoalg.Block, error) {
	return applyAll(blocks, en.Sign)
}

// VerifyAll verifies every block, preserving order.
func (en *Engine) VerifyAll(blocks []cryptoalg.Block) ([]cryptoalg.Block, error) {
	return applyAll(blocks, en.Verify)
}

func (en *Engine) apply(block cryptoalg.Block, exponent *big.Int, name string) (cryptoalg.Block, error) {
	if exponent == nil {
		return nil, fmt.Errorf("%s not loaded: %w", name, cryptoalg.ErrMissingKeyMaterial)
	}
	if err := cryptoalg.CheckBlock(block, en.n); err != nil {
		return nil, err
	}
	return ModExp(block, exponent, en.n)
}

// applyAll returns either every result or the first error, never a partial sequence.
func applyAll(blocks []cryptoalg.Block, op func(cryptoalg.Block) (cryptoalg.Block, error)) ([]cryptoalg.Block, error) {
	out := make([]cryptoalg.Block, 0, len(blocks))
	for i, b := range blocks {
		r, err := op(b)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		out = append(out, r)
	}
	return out, nil
}
