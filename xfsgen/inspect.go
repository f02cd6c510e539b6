package xfsgen

import (
	"fmt"
	"io"
	"os"

	"github.com/opencontainers/go-digest"
)

// ImageInfo describes an image on disk: its decoded superblock, the
// physical length of the backing file, and the canonical digest of the
// full file content.
type ImageInfo struct {
	Superblock   Superblock
	PhysicalSize int64
	Digest       digest.Digest
}

// LogicalSize returns the capacity the image's header claims, in bytes.
func (info *ImageInfo) LogicalSize() int64 {
	return info.Superblock.LogicalSize()
}

// Inspect decodes the superblock of the image at path and digests its
// content. The same format checks as Inflate apply: a missing signature
// or truncated header is a format error.
func Inspect(path string) (*ImageInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	header := make([]byte, SuperblockSize)
	n, err := io.ReadFull(f, header)
	if err == io.ErrUnexpectedEOF || err == io.EOF {
		return nil, NewShortHeaderError(n)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read superblock: %w", err)
	}

	sb, err := DecodeSuperblock(header)
	if err != nil {
		return nil, err
	}

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat image: %w", err)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind image: %w", err)
	}
	dgst, err := digest.FromReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to digest image: %w", err)
	}

	return &ImageInfo{
		Superblock:   sb,
		PhysicalSize: stat.Size(),
		Digest:       dgst,
	}, nil
}
