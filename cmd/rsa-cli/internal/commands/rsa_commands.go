package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/thaikhuong62000/RSA/internal/domain/cryptoalg"
	"github.com/thaikhuong62000/RSA/internal/infrastructure/cryptography"
	"github.com/thaikhuong62000/RSA/internal/infrastructure/fileio"
	"github.com/thaikhuong62000/RSA/internal/pkg/config"
	"github.com/thaikhuong62000/RSA/internal/pkg/logger"
)

// RSACommandHandler encapsulates logic for handling RSA operations via CLI.
type RSACommandHandler struct {
	rsaProcessor cryptoalg.RSAProcessor
	logger       logger.Logger
}

// NewRSACommandHandler initializes a new RSACommandHandler with logging and an RSA processor.
func NewRSACommandHandler() (*RSACommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(config.DefaultRSASettings(), loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	return NewRSACommandHandlerWith(rsaProcessor, loggerInstance), nil
}

// NewRSACommandHandlerWith creates a handler around an existing processor and logger.
func NewRSACommandHandlerWith(rsaProcessor cryptoalg.RSAProcessor, logger logger.Logger) *RSACommandHandler {
	return &RSACommandHandler{
		rsaProcessor: rsaProcessor,
		logger:       logger,
	}
}

// GenerateKeysCmd generates an RSA keypair and persists both halves in the key directory
func (commandHandler *RSACommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) error {
	start := time.Now()

	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		return commandHandler.fail("invalid key-size flag: %w", err)
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return commandHandler.fail("invalid key-dir flag: %w", err)
	}
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return commandHandler.fail("invalid name flag: %w", err)
	}
	name = orDefault(name, uuid.NewString())

	if err := os.MkdirAll(filepath.Clean(keyDir), 0700); err != nil {
		return commandHandler.fail("failed to create key directory: %w", err)
	}

	keypair, err := commandHandler.rsaProcessor.GenerateKeys(keySize)
	if err != nil {
		return commandHandler.fail("%w", err)
	}

	publicKeyFilePath := filepath.Join(keyDir, name+PublicKeyExtension)
	if err := commandHandler.rsaProcessor.SavePublicKeyToFile(keypair.PublicKey(), publicKeyFilePath); err != nil {
		return commandHandler.fail("%w", err)
	}

	privateKeyFilePath := filepath.Join(keyDir, name+PrivateKeyExtension)
	if err := commandHandler.rsaProcessor.SavePrivateKeyToFile(keypair.PrivateKey(), privateKeyFilePath); err != nil {
		return commandHandler.fail("%w", err)
	}

	commandHandler.logger.Info("Generated keypair ", name, " in ", time.Since(start).Milliseconds(), "ms")
	return nil
}

// EncryptCmd encrypts a text file line by line and writes the cipher blocks
func (commandHandler *RSACommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	start := time.Now()

	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return commandHandler.fail("invalid input-file flag: %w", err)
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return commandHandler.fail("invalid output-file flag: %w", err)
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		return commandHandler.fail("invalid public-key flag: %w", err)
	}
	outputFile = orDefault(outputFile, inputFile+CipherExtension)

	publicKey, err := commandHandler.rsaProcessor.ReadPublicKey(publicKeyPath)
	if err != nil {
		return commandHandler.fail("%w", err)
	}

	plainText, err := fileio.ReadText(inputFile)
	if err != nil {
		return commandHandler.fail("%w", err)
	}

	cipher, err := commandHandler.rsaProcessor.EncryptText(plainText, publicKey)
	if err != nil {
		return commandHandler.fail("%w", err)
	}

	if err := fileio.WriteIntegers(outputFile, cipher); err != nil {
		return commandHandler.fail("%w", err)
	}

	commandHandler.logger.Info("Encrypted data path ", outputFile, " in ", time.Since(start).Milliseconds(), "ms")
	return nil
}

// DecryptCmd decrypts the cipher blocks written for an input file
func (commandHandler *RSACommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	start := time.Now()

	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return commandHandler.fail("invalid input-file flag: %w", err)
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return commandHandler.fail("invalid output-file flag: %w", err)
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		return commandHandler.fail("invalid private-key flag: %w", err)
	}
	outputFile = orDefault(outputFile, inputFile+DecryptedExtension)

	privateKey, err := commandHandler.rsaProcessor.ReadPrivateKey(privateKeyPath)
	if err != nil {
		return commandHandler.fail("%w", err)
	}

	cipher, err := fileio.ReadIntegers(inputFile + CipherExtension)
	if err != nil {
		return commandHandler.fail("%w", err)
	}

	plainText, err := commandHandler.rsaProcessor.DecryptBlocks(cipher, privateKey)
	if err != nil {
		return commandHandler.fail("%w", err)
	}

	if err := fileio.WriteText(outputFile, string(plainText)); err != nil {
		return commandHandler.fail("%w", err)
	}

	commandHandler.logger.Info("Decrypted data path ", outputFile, " in ", time.Since(start).Milliseconds(), "ms")
	return nil
}

// SignCmd signs a text file line by line and writes the signature blocks
func (commandHandler *RSACommandHandler) SignCmd(cmd *cobra.Command, _ []string) error {
	start := time.Now()

	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return commandHandler.fail("invalid input-file flag: %w", err)
	}
	signatureFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return commandHandler.fail("invalid output-file flag: %w", err)
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		return commandHandler.fail("invalid private-key flag: %w", err)
	}
	signatureFile = orDefault(signatureFile, inputFile+SignatureExtension)

	privateKey, err := commandHandler.rsaProcessor.ReadPrivateKey(privateKeyPath)
	if err != nil {
		return commandHandler.fail("%w", err)
	}

	text, err := fileio.ReadText(inputFile)
	if err != nil {
		return commandHandler.fail("%w", err)
	}

	signature, err := commandHandler.rsaProcessor.SignText(text, privateKey)
	if err != nil {
		return commandHandler.fail("%w", err)
	}

	if err := fileio.WriteIntegers(signatureFile, signature); err != nil {
		return commandHandler.fail("%w", err)
	}

	commandHandler.logger.Info("Signature saved at ", signatureFile, " in ", time.Since(start).Milliseconds(), "ms")
	return nil
}

// VerifyCmd recovers the signed text, writes it out and checks it against the input file
func (commandHandler *RSACommandHandler) VerifyCmd(cmd *cobra.Command, _ []string) error {
	start := time.Now()

	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return commandHandler.fail("invalid input-file flag: %w", err)
	}
	signatureFile, err := cmd.Flags().GetString("signature-file")
	if err != nil {
		return commandHandler.fail("invalid signature-file flag: %w", err)
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return commandHandler.fail("invalid output-file flag: %w", err)
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		return commandHandler.fail("invalid public-key flag: %w", err)
	}
	signatureFile = orDefault(signatureFile, inputFile+SignatureExtension)
	outputFile = orDefault(outputFile, inputFile+VerifiedExtension)

	publicKey, err := commandHandler.rsaProcessor.ReadPublicKey(publicKeyPath)
	if err != nil {
		return commandHandler.fail("%w", err)
	}

	text, err := fileio.ReadText(inputFile)
	if err != nil {
		return commandHandler.fail("%w", err)
	}

	signature, err := fileio.ReadIntegers(signatureFile)
	if err != nil {
		return commandHandler.fail("%w", err)
	}

	recovered, err := commandHandler.rsaProcessor.VerifyBlocks(signature, publicKey)
	if err != nil {
		return commandHandler.fail("%w", err)
	}
	recoveredText, err := cryptography.FromBlocks(recovered)
	if err != nil {
		return commandHandler.fail("%w", err)
	}
	if err := fileio.WriteText(outputFile, string(recoveredText)); err != nil {
		return commandHandler.fail("%w", err)
	}

	valid, err := commandHandler.rsaProcessor.VerifyText(text, signature, publicKey)
	if err != nil {
		return commandHandler.fail("%w", err)
	}

	elapsed := time.Since(start).Milliseconds()
	if !valid {
		return commandHandler.fail("signature of %s is invalid (%dms)", inputFile, elapsed)
	}

	commandHandler.logger.Info("Signature is valid, recovered text at ", outputFile, " in ", elapsed, "ms")
	return nil
}

// fail logs and returns the formatted error so that the command exits non-zero
func (commandHandler *RSACommandHandler) fail(format string, args ...interface{}) error {
	err := fmt.Errorf(format, args...)
	commandHandler.logger.Error(err.Error())
	return err
}

// InitRSACommands registers RSA-related commands
func InitRSACommands(rootCmd *cobra.Command) error {
	handler, err := NewRSACommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create RSA command handler %w", err)
	}

	RegisterRSACommands(rootCmd, handler)
	return nil
}

// RegisterRSACommands adds the generate-key, encrypt, decrypt, sign and verify commands to rootCmd
func RegisterRSACommands(rootCmd *cobra.Command, handler *RSACommandHandler) {
	var generateKeysCmd = &cobra.Command{
		Use:   "generate-key",
		Short: "Generate an RSA keypair",
		RunE:  handler.GenerateKeysCmd,
	}
	generateKeysCmd.Flags().IntP("key-size", "", config.DefaultKeyBits, "Bit length of each prime")
	generateKeysCmd.Flags().StringP("key-dir", "", ".", "Directory to store the key files")
	generateKeysCmd.Flags().StringP("name", "", "", "Key file name without extension (default a random UUID)")
	rootCmd.AddCommand(generateKeysCmd)

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a text file using RSA",
		RunE:  handler.EncryptCmd,
	}
	encryptCmd.Flags().StringP("input-file", "", "", "Path to the text file which needs to be encrypted")
	encryptCmd.Flags().StringP("output-file", "", "", "Path to the cipher output file (default <input-file>.enc)")
	encryptCmd.Flags().StringP("public-key", "", "", "Path to the RSA public key (.pub)")
	_ = encryptCmd.MarkFlagRequired("input-file")
	_ = encryptCmd.MarkFlagRequired("public-key")
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt <input-file>.enc using RSA",
		RunE:  handler.DecryptCmd,
	}
	decryptCmd.Flags().StringP("input-file", "", "", "Path to the original file; <input-file>.enc is decrypted")
	decryptCmd.Flags().StringP("output-file", "", "", "Path to the decrypted output file (default <input-file>.dec)")
	decryptCmd.Flags().StringP("private-key", "", "", "Path to the RSA private key (.pri)")
	_ = decryptCmd.MarkFlagRequired("input-file")
	_ = decryptCmd.MarkFlagRequired("private-key")
	rootCmd.AddCommand(decryptCmd)

	var signCmd = &cobra.Command{
		Use:   "sign",
		Short: "Sign a text file using RSA",
		RunE:  handler.SignCmd,
	}
	signCmd.Flags().StringP("input-file", "", "", "Path to the text file which needs to be signed")
	signCmd.Flags().StringP("output-file", "", "", "Path to the signature output file (default <input-file>.sig)")
	signCmd.Flags().StringP("private-key", "", "", "Path to the RSA private key (.pri)")
	_ = signCmd.MarkFlagRequired("input-file")
	_ = signCmd.MarkFlagRequired("private-key")
	rootCmd.AddCommand(signCmd)

	var verifyCmd = &cobra.Command{
		Use:   "verify",
		Short: "Verify the signature of a text file using RSA",
		RunE:  handler.VerifyCmd,
	}
	verifyCmd.Flags().StringP("input-file", "", "", "Path to the text file whose signature is checked")
	verifyCmd.Flags().StringP("signature-file", "", "", "Path to the signature file (default <input-file>.sig)")
	verifyCmd.Flags().StringP("output-file", "", "", "Path to the recovered text (default <input-file>.veri)")
	verifyCmd.Flags().StringP("public-key", "", "", "Path to the RSA public key (.pub)")
	_ = verifyCmd.MarkFlagRequired("input-file")
	_ = verifyCmd.MarkFlagRequired("public-key")
	rootCmd.AddCommand(verifyCmd)
}
