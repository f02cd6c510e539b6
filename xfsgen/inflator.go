package xfsgen

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/fsforge/xfsgen/xfsgen/logger"
)

// MinPhysicalSize is the smallest physical footprint an inflated image is
// padded to, so the output looks plausible even when its header claims a
// far larger logical capacity.
const MinPhysicalSize = 100 * 1024 * 1024

// InflateStats describes a completed inflate operation.
type InflateStats struct {
	BlockSize      uint32
	OriginalBlocks uint64
	NewBlocks      uint64
	OriginalBytes  int64
	PhysicalBytes  int64
}

// Inflate reads the image at inputPath, rewrites its superblock so the
// filesystem reports roughly targetLogicalSize bytes of capacity, and
// writes the result to outputPath.
//
// The input must carry a valid superblock; on a bad or truncated header
// the operation fails before outputPath is touched, so no partial output
// is ever left behind. The output's physical size is
// max(input size, MinPhysicalSize) regardless of the logical size the
// rewritten header claims.
func Inflate(inputPath, outputPath string, targetLogicalSize int64, progress ProgressCallback) (*InflateStats, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read input image: %w", err)
	}

	sb, err := DecodeSuperblock(data)
	if err != nil {
		return nil, err
	}

	logger.Info("Input %s: %d bytes physical, %d blocks of %d (%d bytes logical)",
		inputPath, len(data), sb.DataBlocks, sb.BlockSize, sb.LogicalSize())

	newBlocks := uint64(targetLogicalSize) / uint64(sb.BlockSize)

	agCount := uint64(sb.AGCount)
	newAGBlocks := newBlocks
	if agCount > 0 {
		newAGBlocks = newBlocks / agCount
	}

	stats := &InflateStats{
		BlockSize:      sb.BlockSize,
		OriginalBlocks: sb.DataBlocks,
		NewBlocks:      newBlocks,
		OriginalBytes:  int64(len(data)),
	}

	sb.DataBlocks = newBlocks
	sb.AGBlocks = uint32(newAGBlocks)
	sb.EncodeTo(data)

	if int64(len(data)) < MinPhysicalSize {
		logger.Debug("Padding output from %d to %d bytes", len(data), int64(MinPhysicalSize))
		data = append(data, make([]byte, MinPhysicalSize-int64(len(data)))...)
	}
	stats.PhysicalBytes = int64(len(data))

	out, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create output image: %w", err)
	}
	defer out.Close()

	var w io.Writer = out
	if progress != nil {
		w = &progressWriter{writer: out, total: stats.PhysicalBytes, callback: progress}
	}
	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to write output image: %w", err)
	}
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("failed to close output image: %w", err)
	}

	logger.Info("Inflated %s: %d blocks -> %d blocks (%d GB logical, %d MB physical)",
		outputPath, stats.OriginalBlocks, stats.NewBlocks,
		int64(newBlocks)*int64(sb.BlockSize)/(1024*1024*1024),
		stats.PhysicalBytes/(1024*1024))

	return stats, nil
}
