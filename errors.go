package hxtable

import "errors"

// Sentinel errors for table requests.
var (
	ErrRowNotFound      = errors.New("hxtable: row not found")
	ErrDecryptFailed    = errors.New("hxtable: row reference decryption failed")
	ErrSignatureInvalid = errors.New("hxtable: row reference signature invalid")
	ErrInvalidFormat    = errors.New("hxtable: invalid row reference format")
)

// IsNotFound checks if err is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRowNotFound)
}

// IsDecryptionError checks if err is a decryption or signature error.
func IsDecryptionError(err error) bool {
	return errors.Is(err, ErrDecryptFailed) || errors.Is(err, ErrSignatureInvalid)
}
