package encrypter

import "crypto/cipher"

type implEncrypter struct {
	aead cipher.AEAD
	cost int
}
