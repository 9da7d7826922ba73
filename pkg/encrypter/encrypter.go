package encrypter

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

func newAEAD(key []byte) (cipher.AEAD, error) {
	switch len(key) {
	case AESKeyLen128, AESKeyLen192, AESKeyLen256:
	default:
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKeyLength, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("encrypter: new cipher: %w", err)
	}
	return cipher.NewGCM(block)
}

func (e *implEncrypter) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, e.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("encrypter: nonce: %w", err)
	}
	sealed := e.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (e *implEncrypter) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("encrypter: decode base64: %w", err)
	}
	n := e.aead.NonceSize()
	if len(raw) < n+e.aead.Overhead() {
		return "", ErrCiphertextTooShort
	}
	plaintext, err := e.aead.Open(nil, raw[:n], raw[n:], nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}
	return string(plaintext), nil
}

func (e *implEncrypter) Hash(secret string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(secret), e.cost)
	if err != nil {
		return "", fmt.Errorf("encrypter: hash: %w", err)
	}
	return string(h), nil
}

func (e *implEncrypter) CompareHash(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
