// Package signatures stores the signature images captured on delivery, either on the
// local filesystem or in an S3-compatible bucket.
package signatures

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"entregas/internal/core/ports"
)

// MaxSize is the largest accepted signature image.
const MaxSize = ports.MaxSignatureSize

// inspect checks size and sniffs the content type. The extension comes from the
// uploaded name when it has one, otherwise from the detected type.
func inspect(content []byte, originalName string) (ext, contentType string, err error) {
	if len(content) > MaxSize {
		return "", "", ports.ErrSignatureTooLarge
	}

	mt := mimetype.Detect(content)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", "", ports.ErrSignatureNotImage
	}

	ext = strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = mt.Extension()
	}
	return ext, mt.String(), nil
}
