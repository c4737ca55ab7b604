package section

// Section sizes and framing constants of the BCSV container.
const (
	HeaderSize     = 16 // fixed header size in bytes
	FieldEntrySize = 12 // fixed field descriptor size in bytes

	// FileAlignment is the byte multiple output files are padded to.
	FileAlignment = 32
	// DefaultPadByte fills the alignment tail. The engine tools pad
	// with '@' (0x40).
	DefaultPadByte = 0x40
	// RecordAlignment is the byte multiple record strides round up to.
	RecordAlignment = 4
)

// Byte offsets of the header fields.
const (
	entryCountOffset = 0x00
	fieldCountOffset = 0x04
	dataOffsetOffset = 0x08
	entrySizeOffset  = 0x0C
)

// Byte offsets inside a field descriptor.
const (
	fieldHashOffset   = 0x00
	fieldMaskOffset   = 0x04
	fieldOffsetOffset = 0x08
	fieldShiftOffset  = 0x0A
	fieldTypeOffset   = 0x0B
)
