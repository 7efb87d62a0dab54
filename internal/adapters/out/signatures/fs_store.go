package signatures

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/facebookgo/clock"

	"entregas/internal/core/ports"
)

// FileStore writes signatures under one directory as firma-<unix-nanos>-<random><ext>.
// The returned reference is the file name.
type FileStore struct {
	dir   string
	clock clock.Clock
}

var _ ports.SignatureStore = (*FileStore)(nil)

func NewFileStore(dir string, clk clock.Clock) *FileStore {
	if clk == nil {
		clk = clock.New()
	}
	return &FileStore{dir: dir, clock: clk}
}

func (s *FileStore) Save(ctx context.Context, content []byte, originalName string) (string, error) {
	ext, _, err := inspect(content, originalName)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create signature dir: %w", err)
	}

	name := fmt.Sprintf("firma-%d-%d%s", s.clock.Now().UnixNano(), rand.Int64N(1_000_000_000), ext)
	if err := os.WriteFile(filepath.Join(s.dir, name), content, 0o644); err != nil {
		return "", fmt.Errorf("write signature: %w", err)
	}

	return name, nil
}
