package xfsgen

// SeedBlock is a payload placed at a fixed offset beyond the header
// region, simulating a recoverable file remnant for the downstream
// scanner to find.
type SeedBlock struct {
	Label   string
	Offset  int64
	Payload []byte
}

// DefaultSeeds is the fixed table of recoverable content written into
// every built image. Offsets sit on block boundaries past the
// superblock and never overlap each other.
var DefaultSeeds = []SeedBlock{
	{
		Label:   "text-document",
		Offset:  8192,
		Payload: []byte("This is a test document for XFS recovery.\nIt contains multiple lines.\nCreated by the xfsgen fixture builder.\n"),
	},
	{
		Label:   "json-data",
		Offset:  12288,
		Payload: []byte(`{"users": [{"id": 1, "name": "John Doe"}, {"id": 2, "name": "Jane Smith"}], "config": {"theme": "dark"}}`),
	},
	{
		Label:   "ini-config",
		Offset:  16384,
		Payload: []byte("[Settings]\nversion=1.0\ndebug=true\nmax_files=1000\n\n[Database]\nhost=localhost\nport=5432\n"),
	},
	{
		Label:   "png-signature",
		Offset:  20480,
		Payload: []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x10\x00\x00\x00\x10"),
	},
	{
		Label:   "jpeg-signature",
		Offset:  24576,
		Payload: []byte("\xff\xd8\xff\xe0\x00\x10JFIF"),
	},
}

// End returns the offset one past the last payload byte.
func (s SeedBlock) End() int64 {
	return s.Offset + int64(len(s.Payload))
}
