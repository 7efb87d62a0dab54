package ports

import (
	"context"
	"errors"
)

// MaxSignatureSize is the largest accepted signature image, in bytes.
const MaxSignatureSize = 5 << 20

var (
	// ErrSignatureNotImage is returned for uploads whose content is not an image.
	ErrSignatureNotImage = errors.New("signature must be an image")
	// ErrSignatureTooLarge is returned for uploads above the size limit.
	ErrSignatureTooLarge = errors.New("signature exceeds the size limit")
)

// SignatureStore keeps the signature images captured on delivery.
type SignatureStore interface {
	// Save stores content and returns the reference recorded on the order.
	// originalName only contributes its extension.
	Save(ctx context.Context, content []byte, originalName string) (string, error)
}
