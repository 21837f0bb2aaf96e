package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/simplesocial/socialnet/pkg/socialnet"
)

// Library is a filesystem implementation of the socialnet.ImageLibrary
// interface. References are paths relative to the library root; the bytes
// are returned as an opaque asset, never decoded.
type Library struct {
	root string
}

// New creates a filesystem image library rooted at the given directory
func New(root string) (*Library, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("image library root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("image library root is not a directory: %s", root)
	}

	return &Library{root: root}, nil
}

// Resolve reads the referenced file from the library root
func (l *Library) Resolve(ctx context.Context, ref string) (*socialnet.ImageAsset, error) {
	cleaned := filepath.Clean(ref)
	if strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return nil, fmt.Errorf("image reference escapes library root: %s", ref)
	}

	data, err := os.ReadFile(filepath.Join(l.root, cleaned))
	if err != nil {
		return nil, fmt.Errorf("resolve image asset %s: %w", ref, err)
	}

	return &socialnet.ImageAsset{Ref: ref, Data: data}, nil
}
