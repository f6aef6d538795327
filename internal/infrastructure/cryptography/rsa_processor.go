package cryptography

import (
	"fmt"
	"math/big"
	"time"

	"github.com/thaikhuong62000/RSA/internal/domain/cryptoalg"
	"github.com/thaikhuong62000/RSA/internal/infrastructure/fileio"
	"github.com/thaikhuong62000/RSA/internal/pkg/config"
	"github.com/thaikhuong62000/RSA/internal/pkg/logger"
)

// rsaProcessor struct that implements the RSAProcessor interface
type rsaProcessor struct {
	generator *KeyGenerator
	logger    logger.Logger
}

// NewRSAProcessor creates and returns a new instance of rsaProcessor.
// A nil settings value means DefaultRSASettings.
func NewRSAProcessor(settings *config.RSASettings, logger logger.Logger) (cryptoalg.RSAProcessor, error) {
	if settings == nil {
		settings = config.DefaultRSASettings()
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid RSA settings: %w", err)
	}

	tester, err := NewPrimalityTester(settings.MillerRabinRounds, DefaultSmallPrimes, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create primality tester: %w", err)
	}

	generator, err := NewKeyGenerator(tester, nil, settings.MaxAttempts, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create key generator: %w", err)
	}

	return NewRSAProcessorWithGenerator(generator, logger), nil
}

// NewRSAProcessorWithGenerator creates a processor around an existing key generator.
func NewRSAProcessorWithGenerator(generator *KeyGenerator, logger logger.Logger) cryptoalg.RSAProcessor {
	return &rsaProcessor{
		generator: generator,
		logger:    logger,
	}
}

// GenerateKeys generates a keypair whose primes each have bitLength bits.
func (r *rsaProcessor) GenerateKeys(bitLength int) (*cryptoalg.Keypair, error) {
	start := time.Now()
	keypair, err := r.generator.Generate(bitLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate RSA keys: %w", err)
	}

	r.logger.Info("Generated RSA key pair with ", keypair.N.BitLen(), "-bit modulus in ", time.Since(start).Milliseconds(), "ms")
	return keypair, nil
}

// EncryptBlocks splits message into blocks below n and encrypts each with (e, n).
func (r *rsaProcessor) EncryptBlocks(message []byte, publicKey *cryptoalg.PublicKey) ([]cryptoalg.Block, error) {
	engine, err := NewPublicEngine(publicKey)
	if err != nil {
		return nil, fmt.Errorf("public key cannot be used: %w", err)
	}

	blocks, err := ToBlocks(message, publicKey.N)
	if err != nil {
		return nil, fmt.Errorf("failed to encode message: %w", err)
	}

	cipher, err := engine.EncryptAll(blocks)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}

	r.logger.Info("RSA encryption succeeded with ", len(cipher), " blocks")
	return cipher, nil
}

// DecryptBlocks decrypts every block with (d, n) and concatenates the decoded bytes.
func (r *rsaProcessor) DecryptBlocks(cipher []cryptoalg.Block, privateKey *cryptoalg.PrivateKey) ([]byte, error) {
	engine, err := NewPrivateEngine(privateKey)
	if err != nil {
		return nil, fmt.Errorf("private key cannot be used: %w", err)
	}

	plain, err := engine.DecryptAll(cipher)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt data: %w", err)
	}

	message, err := FromBlocks(plain)
	if err != nil {
		return nil, fmt.Errorf("failed to decode message: %w", err)
	}

	r.logger.Info("RSA decryption succeeded with ", len(cipher), " blocks")
	return message, nil
}

// SignBlocks splits message into blocks below n and signs each with (d, n).
func (r *rsaProcessor) SignBlocks(message []byte, privateKey *cryptoalg.PrivateKey) ([]cryptoalg.Block, error) {
	engine, err := NewPrivateEngine(privateKey)
	if err != nil {
		return nil, fmt.Errorf("private key cannot be used: %w", err)
	}

	blocks, err := ToBlocks(message, privateKey.N)
	if err != nil {
		return nil, fmt.Errorf("failed to encode message: %w", err)
	}

	signature, err := engine.SignAll(blocks)
	if err != nil {
		return nil, fmt.Errorf("failed to sign data: %w", err)
	}

	r.logger.Info("RSA signing succeeded with ", len(signature), " blocks")
	return signature, nil
}

// VerifyBlocks applies (e, n) to every signature block.
func (r *rsaProcessor) VerifyBlocks(signature []cryptoalg.Block, publicKey *cryptoalg.PublicKey) ([]cryptoalg.Block, error) {
	engine, err := NewPublicEngine(publicKey)
	if err != nil {
		return nil, fmt.Errorf("public key cannot be used: %w", err)
	}

	verified, err := engine.VerifyAll(signature)
	if err != nil {
		return nil, fmt.Errorf("failed to verify signature: %w", err)
	}
	return verified, nil
}

// EncryptText encrypts each segment of text and concatenates the ciphertext blocks.
func (r *rsaProcessor) EncryptText(text string, publicKey *cryptoalg.PublicKey) ([]cryptoalg.Block, error) {
	engine, err := NewPublicEngine(publicKey)
	if err != nil {
		return nil, fmt.Errorf("public key cannot be used: %w", err)
	}

	blocks, err := textBlocks(text, publicKey.N)
	if err != nil {
		return nil, err
	}

	cipher, err := engine.EncryptAll(blocks)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt text: %w", err)
	}

	r.logger.Info("RSA text encryption succeeded with ", len(cipher), " blocks")
	return cipher, nil
}

// SignText signs each segment of text and concatenates the signature blocks.
func (r *rsaProcessor) SignText(text string, privateKey *cryptoalg.PrivateKey) ([]cryptoalg.Block, error) {
	engine, err := NewPrivateEngine(privateKey)
	if err != nil {
		return nil, fmt.Errorf("private key cannot be used: %w", err)
	}

	blocks, err := textBlocks(text, privateKey.N)
	if err != nil {
		return nil, err
	}

	signature, err := engine.SignAll(blocks)
	if err != nil {
		return nil, fmt.Errorf("failed to sign text: %w", err)
	}

	r.logger.Info("RSA text signing succeeded with ", len(signature), " blocks")
	return signature, nil
}

// VerifyText reports whether signature verifies to exactly the blocks of text.
func (r *rsaProcessor) VerifyText(text string, signature []cryptoalg.Block, publicKey *cryptoalg.PublicKey) (bool, error) {
	verified, err := r.VerifyBlocks(signature, publicKey)
	if err != nil {
		return false, err
	}

	expected, err := textBlocks(text, publicKey.N)
	if err != nil {
		return false, err
	}

	if !equalBlocks(expected, verified) {
		r.logger.Warn("RSA signature does not match the message")
		return false, nil
	}

	r.logger.Info("RSA signature verified successfully")
	return true, nil
}

// SavePrivateKeyToFile writes d and n, one decimal integer per line.
func (r *rsaProcessor) SavePrivateKeyToFile(privateKey *cryptoalg.PrivateKey, filename string) error {
	if err := privateKey.Validate(); err != nil {
		return fmt.Errorf("refusing to save private key: %w", err)
	}
	if err := fileio.WriteIntegers(filename, []*big.Int{privateKey.D, privateKey.N}); err != nil {
		return fmt.Errorf("failed to save private key: %w", err)
	}

	r.logger.Info("Saved RSA private key ", filename)
	return nil
}

// SavePublicKeyToFile writes e and n, one decimal integer per line.
func (r *rsaProcessor) SavePublicKeyToFile(publicKey *cryptoalg.PublicKey, filename string) error {
	if err := publicKey.Validate(); err != nil {
		return fmt.Errorf("refusing to save public key: %w", err)
	}
	if err := fileio.WriteIntegers(filename, []*big.Int{publicKey.E, publicKey.N}); err != nil {
		return fmt.Errorf("failed to save public key: %w", err)
	}

	r.logger.Info("Saved RSA public key ", filename)
	return nil
}

// ReadPrivateKey reads d and n written by SavePrivateKeyToFile.
func (r *rsaProcessor) ReadPrivateKey(privateKeyPath string) (*cryptoalg.PrivateKey, error) {
	values, err := readKeyPair(privateKeyPath)
	if err != nil {
		return nil, err
	}

	privateKey := &cryptoalg.PrivateKey{D: values[0], N: values[1]}
	if err := privateKey.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", privateKeyPath, err)
	}
	return privateKey, nil
}

// ReadPublicKey reads e and n written by SavePublicKeyToFile.
func (r *rsaProcessor) ReadPublicKey(publicKeyPath string) (*cryptoalg.PublicKey, error) {
	values, err := readKeyPair(publicKeyPath)
	if err != nil {
		return nil, err
	}

	publicKey := &cryptoalg.PublicKey{E: values[0], N: values[1]}
	if err := publicKey.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", publicKeyPath, err)
	}
	return publicKey, nil
}

// Helper functions
func readKeyPair(path string) ([]*big.Int, error) {
	values, err := fileio.ReadIntegers(path)
	if err != nil {
		return nil, err
	}
	if len(values) != 2 {
		return nil, fmt.Errorf("%s: expected exponent and modulus, found %d values: %w",
			path, len(values), cryptoalg.ErrMalformedPersistedValue)
	}
	return values, nil
}

func textBlocks(text string, modulus *big.Int) ([]cryptoalg.Block, error) {
	var blocks []cryptoalg.Block
	for i, segment := range SplitSegments(text) {
		segmentBlocks, err := ToBlocks([]byte(segment), modulus)
		if err != nil {
			return nil, fmt.Errorf("failed to encode segment %d: %w", i, err)
		}
		blocks = append(blocks, segmentBlocks...)
	}
	return blocks, nil
}

func equalBlocks(a, b []cryptoalg.Block) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Cmp(b[i]) != 0 {
			return false
		}
	}
	return true
}
