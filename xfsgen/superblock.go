package xfsgen

import (
	"encoding/binary"
)

const (
	// Magic is the XFS superblock signature ("XFSB"), stored big-endian
	// at offset 0 like every other superblock field. XFS is a big-endian
	// on-disk format; the recovery tools consuming these images decode it
	// that way.
	Magic uint32 = 0x58465342

	// SuperblockSize is the length of the header region. Fields never
	// extend past it; the remainder is zero padding.
	SuperblockSize = 4096

	// DefaultBlockSize is the allocation unit used for all generated images.
	DefaultBlockSize = 4096

	// DefaultAGCount is the number of allocation groups written by the builder.
	DefaultAGCount = 4

	// DefaultInodeSize is the inode record size written by the builder.
	DefaultInodeSize = 256
)

// Field offsets within the superblock.
const (
	offMagic      = 0  // u32
	offBlockSize  = 4  // u32
	offDataBlocks = 8  // u64
	offAGBlocks   = 84 // u32
	offAGCount    = 88 // u32
	offInodeSize  = 94 // u16
)

// Superblock is the subset of the XFS superblock that the downstream
// recovery tool inspects. All other bytes in the header region are zero.
type Superblock struct {
	Magic      uint32
	BlockSize  uint32
	DataBlocks uint64
	AGBlocks   uint32
	AGCount    uint32
	InodeSize  uint16
}

// NewSuperblock returns a superblock describing a filesystem of
// logicalSize bytes using the default geometry.
func NewSuperblock(logicalSize int64) Superblock {
	dataBlocks := uint64(logicalSize) / DefaultBlockSize
	return Superblock{
		Magic:      Magic,
		BlockSize:  DefaultBlockSize,
		DataBlocks: dataBlocks,
		AGBlocks:   uint32(dataBlocks / DefaultAGCount),
		AGCount:    DefaultAGCount,
		InodeSize:  DefaultInodeSize,
	}
}

// LogicalSize returns the capacity the superblock claims, in bytes.
func (sb Superblock) LogicalSize() int64 {
	return int64(sb.DataBlocks) * int64(sb.BlockSize)
}

// Encode renders the superblock into a fresh zero-padded header region
// of exactly SuperblockSize bytes.
func (sb Superblock) Encode() []byte {
	buf := make([]byte, SuperblockSize)
	sb.EncodeTo(buf)
	return buf
}

// EncodeTo writes the superblock fields into buf at their fixed offsets.
// buf must be at least SuperblockSize bytes; bytes outside the fields are
// left untouched.
func (sb Superblock) EncodeTo(buf []byte) {
	binary.BigEndian.PutUint32(buf[offMagic:], sb.Magic)
	binary.BigEndian.PutUint32(buf[offBlockSize:], sb.BlockSize)
	binary.BigEndian.PutUint64(buf[offDataBlocks:], sb.DataBlocks)
	binary.BigEndian.PutUint32(buf[offAGBlocks:], sb.AGBlocks)
	binary.BigEndian.PutUint32(buf[offAGCount:], sb.AGCount)
	binary.BigEndian.PutUint16(buf[offInodeSize:], sb.InodeSize)
}

// DecodeSuperblock parses the header region at the start of data.
//
// Inputs shorter than SuperblockSize are rejected outright rather than
// decoded with fallback defaults, so every accepted image has the full
// header region the builder writes. A superblock whose magic does not
// match or whose block size is zero is likewise rejected; both checks
// happen before any caller mutates anything.
func DecodeSuperblock(data []byte) (Superblock, error) {
	if len(data) < SuperblockSize {
		return Superblock{}, NewShortHeaderError(len(data))
	}

	sb := Superblock{
		Magic:      binary.BigEndian.Uint32(data[offMagic:]),
		BlockSize:  binary.BigEndian.Uint32(data[offBlockSize:]),
		DataBlocks: binary.BigEndian.Uint64(data[offDataBlocks:]),
		AGBlocks:   binary.BigEndian.Uint32(data[offAGBlocks:]),
		AGCount:    binary.BigEndian.Uint32(data[offAGCount:]),
		InodeSize:  binary.BigEndian.Uint16(data[offInodeSize:]),
	}

	if sb.Magic != Magic {
		return Superblock{}, NewBadMagicError(sb.Magic)
	}
	if sb.BlockSize == 0 {
		return Superblock{}, NewBadGeometryError("block size is zero")
	}

	return sb, nil
}
