package fs

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Hasher computes content hashes of files and directory trees.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// HashTree computes a single hash over the relative paths and contents of every file
// below root. The result depends only on the tree, never on its location or walk order.
// Files are hashed concurrently.
func (h *Hasher) HashTree(ctx context.Context, root string, ignores []string) (string, error) {
	var paths []string
	for rel, err := range h.walker.WalkFiles(root, ignores) {
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to walk directory"), "path", root)
		}
		paths = append(paths, rel)
	}
	slices.Sort(paths)

	sums := make([]uint64, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, rel := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sum, err := h.ComputeFileHash(filepath.Join(root, filepath.FromSlash(rel)))
			if err != nil {
				return err
			}
			sums[i] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	hasher := xxhash.New()
	for i, rel := range paths {
		_, _ = hasher.WriteString(rel)
		_, _ = hasher.Write([]byte{0})
		if err := binary.Write(hasher, binary.LittleEndian, sums[i]); err != nil {
			return "", zerr.Wrap(err, "failed to write hash to digest")
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}
