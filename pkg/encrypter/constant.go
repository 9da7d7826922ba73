package encrypter

import "golang.org/x/crypto/bcrypt"

const (
	AESKeyLen128 = 16
	AESKeyLen192 = 24
	AESKeyLen256 = 32

	// DefaultHashCost is the bcrypt cost used by Hash.
	DefaultHashCost = bcrypt.DefaultCost
)
