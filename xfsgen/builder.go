package xfsgen

import (
	"fmt"
	"os"

	"github.com/fsforge/xfsgen/xfsgen/logger"
)

// CreateImage writes a brand-new image file at path whose physical length
// equals logicalSize bytes. The file starts with a synthetic superblock,
// carries the DefaultSeeds payloads at their fixed offsets, and is
// otherwise zero.
//
// The image is grown to its final length with Truncate rather than by
// writing zeros, so the untouched middle stays unallocated on filesystems
// that support holes; holes read back as zero either way. Output is
// deterministic: identical parameters always yield a byte-identical file.
func CreateImage(path string, logicalSize int64, progress ProgressCallback) error {
	sb := NewSuperblock(logicalSize)
	logger.Info("Creating image %s: %d bytes, %d blocks of %d",
		path, logicalSize, sb.DataBlocks, sb.BlockSize)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer f.Close()

	if progress != nil {
		progress(0, logicalSize)
	}

	if _, err := f.Write(sb.Encode()); err != nil {
		return fmt.Errorf("failed to write superblock: %w", err)
	}
	written := int64(SuperblockSize)
	if progress != nil {
		progress(written, logicalSize)
	}

	for _, seed := range DefaultSeeds {
		logger.Debug("Seeding %s at offset %d (%d bytes)", seed.Label, seed.Offset, len(seed.Payload))
		if _, err := f.WriteAt(seed.Payload, seed.Offset); err != nil {
			return fmt.Errorf("failed to write seed %s: %w", seed.Label, err)
		}
		written += int64(len(seed.Payload))
		if progress != nil {
			progress(written, logicalSize)
		}
	}

	if err := f.Truncate(logicalSize); err != nil {
		return fmt.Errorf("failed to extend image to %d bytes: %w", logicalSize, err)
	}
	if progress != nil {
		progress(logicalSize, logicalSize)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close image file: %w", err)
	}

	logger.Info("Created %s (%d MB)", path, logicalSize/(1024*1024))
	return nil
}
