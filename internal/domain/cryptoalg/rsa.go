package cryptoalg

// RSAProcessor handles textbook RSA operations over integer blocks.
// RSA here supports both encryption/decryption AND signatures, without padding or hashing.
type RSAProcessor interface {
	// GenerateKeys generates a keypair whose primes p and q each have bitLength bits.
	GenerateKeys(bitLength int) (*Keypair, error)

	// EncryptBlocks splits message into blocks below n and encrypts each with (e, n).
	EncryptBlocks(message []byte, publicKey *PublicKey) ([]Block, error)

	// DecryptBlocks decrypts each block with (d, n) and concatenates the decoded bytes.
	DecryptBlocks(cipher []Block, privateKey *PrivateKey) ([]byte, error)

	// SignBlocks splits message into blocks below n and signs each with (d, n).
	SignBlocks(message []byte, privateKey *PrivateKey) ([]Block, error)

	// VerifyBlocks applies (e, n) to each signature block.
	// The caller compares the result against the expected message blocks.
	VerifyBlocks(signature []Block, publicKey *PublicKey) ([]Block, error)

	// EncryptText encrypts line-oriented text, keeping blank lines as encoding boundaries.
	EncryptText(text string, publicKey *PublicKey) ([]Block, error)

	// SignText signs line-oriented text the same way EncryptText segments it.
	SignText(text string, privateKey *PrivateKey) ([]Block, error)

	// VerifyText reports whether signature verifies to exactly the blocks of text.
	VerifyText(text string, signature []Block, publicKey *PublicKey) (bool, error)

	// SavePrivateKeyToFile writes d and n, one decimal integer per line.
	SavePrivateKeyToFile(privateKey *PrivateKey, filename string) error

	// SavePublicKeyToFile writes e and n, one decimal integer per line.
	SavePublicKeyToFile(publicKey *PublicKey, filename string) error

	// ReadPrivateKey reads a private key written by SavePrivateKeyToFile.
	ReadPrivateKey(privateKeyPath string) (*PrivateKey, error)

	// ReadPublicKey reads a public key written by SavePublicKeyToFile.
	ReadPublicKey(publicKeyPath string) (*PublicKey, error)
}
