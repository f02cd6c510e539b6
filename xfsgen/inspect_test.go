package xfsgen

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInspect(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "inspect-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, "image.img")
	size := int64(50 * 1024 * 1024)
	if err := CreateImage(path, size, nil); err != nil {
		t.Fatalf("CreateImage() error = %v", err)
	}

	info, err := Inspect(path)
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}

	if info.PhysicalSize != size {
		t.Errorf("PhysicalSize = %d, want %d", info.PhysicalSize, size)
	}
	if info.LogicalSize() != size {
		t.Errorf("LogicalSize() = %d, want %d", info.LogicalSize(), size)
	}
	if info.Superblock.Magic != Magic {
		t.Errorf("Magic = 0x%08X, want 0x%08X", info.Superblock.Magic, Magic)
	}
	if info.Digest != digestFile(t, path) {
		t.Errorf("Digest = %s, want the file's canonical digest", info.Digest)
	}
}

func TestInspect_InflatedImage(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "inspect-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	input := filepath.Join(tempDir, "input.img")
	if err := CreateImage(input, 50*1024*1024, nil); err != nil {
		t.Fatalf("CreateImage() error = %v", err)
	}

	output := filepath.Join(tempDir, "big.img")
	target := int64(150) * 1024 * 1024 * 1024
	if _, err := Inflate(input, output, target, nil); err != nil {
		t.Fatalf("Inflate() error = %v", err)
	}

	info, err := Inspect(output)
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}

	// Logical size dwarfs physical size after inflation.
	if info.LogicalSize() != target {
		t.Errorf("LogicalSize() = %d, want %d", info.LogicalSize(), target)
	}
	if info.PhysicalSize != MinPhysicalSize {
		t.Errorf("PhysicalSize = %d, want %d", info.PhysicalSize, int64(MinPhysicalSize))
	}
}

func TestInspect_Rejects(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "inspect-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	short := filepath.Join(tempDir, "short.img")
	if err := os.WriteFile(short, []byte("XFSB"), 0644); err != nil {
		t.Fatalf("Failed to write short image: %v", err)
	}

	if _, err := Inspect(short); GetErrorCode(err) != "SHORT_HEADER" {
		t.Errorf("Inspect(short) error = %v, want SHORT_HEADER", err)
	}

	if _, err := Inspect(filepath.Join(tempDir, "missing.img")); err == nil {
		t.Error("Inspect(missing) error = nil, want I/O error")
	}
}
