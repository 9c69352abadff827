// Package section defines the fixed-size header of a persisted label mapping.
//
// A mapping blob is laid out as:
//
//	┌──────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed)                     │
//	│  - Flag (4 bytes): magic, endianness, codec  │
//	│  - EntryCount (4 bytes)                      │
//	│  - LabelSpan (4 bytes): max label + 1        │
//	│  - PayloadSize (4 bytes): stored size        │
//	│  - RawSize (4 bytes): size before codec      │
//	│  - Checksum (8 bytes): xxHash64 of raw data  │
//	│  - Reserved (4 bytes)                        │
//	├──────────────────────────────────────────────┤
//	│ Payload (PayloadSize bytes)                  │
//	│  - record list, compressed with the codec    │
//	└──────────────────────────────────────────────┘
//
// The first two bytes (the Options field) are always little-endian so a
// reader can discover the byte order of the remaining fields.
package section
