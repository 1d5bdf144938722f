package hxtable

import (
	"errors"
	"fmt"

	"github.com/pthm/hxtable/lib/encoding"
)

// Encoder is an alias for encoding.Encoder for convenience.
type Encoder = encoding.Encoder

// NewEncoder creates a new encoder with the given key.
func NewEncoder(key []byte) (*Encoder, error) {
	return encoding.NewEncoder(key)
}

// rowRef is the payload a rendered row posts back to identify itself.
type rowRef struct {
	ID string
}

func (r rowRef) EncodeMap() map[string]any {
	return map[string]any{"id": r.ID}
}

func (r *rowRef) DecodeMap(m map[string]any) error {
	id, ok := m["id"].(string)
	if !ok || id == "" {
		return fmt.Errorf("%w: missing row id", encoding.ErrInvalidFormat)
	}
	r.ID = id
	return nil
}

// wrapEncodingError maps encoding package errors onto hxtable sentinels.
func wrapEncodingError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, encoding.ErrInvalidFormat) {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if errors.Is(err, encoding.ErrSignatureInvalid) {
		return ErrSignatureInvalid
	}
	if errors.Is(err, encoding.ErrDecryptFailed) {
		return ErrDecryptFailed
	}
	return err
}
