// Package codec converts a label mapping to and from its persisted binary
// form.
//
// A blob is a section.Header followed by the record list of package encoding,
// optionally compressed. Records are written in ascending label order, so two
// equal mappings always serialize to the same bytes with the same options.
//
// Basic usage:
//
//	c, err := codec.New(codec.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//
//	data, err := c.Marshal(m)
//	...
//	restored, err := c.Unmarshal(data)
//
// Unmarshal reads the byte order and compression from the header, so any
// Codec can decode any blob. Every decoding error wraps errs.ErrCorruptData.
package codec
