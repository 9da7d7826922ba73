package encrypter

// Encrypter seals secrets at rest and hashes them for lookups.
// Implementations are safe for concurrent use.
type Encrypter interface {
	// Encrypt seals plaintext with AES-GCM and returns it base64 encoded.
	Encrypt(plaintext string) (string, error)
	// Decrypt reverses Encrypt.
	Decrypt(ciphertext string) (string, error)
	// Hash returns a bcrypt hash of secret.
	Hash(secret string) (string, error)
	// CompareHash reports whether secret matches a hash produced by Hash.
	CompareHash(secret, hash string) bool
}

// New creates an Encrypter for key, which must be 16, 24 or 32 bytes.
func New(key string) (Encrypter, error) {
	aead, err := newAEAD([]byte(key))
	if err != nil {
		return nil, err
	}
	return &implEncrypter{aead: aead, cost: DefaultHashCost}, nil
}
