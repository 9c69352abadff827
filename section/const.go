package section

const (
	// Bit masks of the Options field
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000D // Mask for reserved bits (bits 0, 2, 3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicMappingV1Opt is the version 1 magic number for label mapping blobs.
	MagicMappingV1Opt = 0xEC10
)

const (
	HeaderSize    = 32        // fixed header size in bytes
	PayloadOffset = HeaderSize // byte offset where the payload starts

	// MaxEntryCount bounds the number of entries of a single mapping.
	MaxEntryCount = 1<<31 - 1
)
