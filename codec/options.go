package codec

import (
	"fmt"

	"github.com/arloliu/lencoder/format"
	"github.com/arloliu/lencoder/internal/options"
)

// Option configures a Codec.
type Option = options.Option[*Codec]

// WithCompression sets the payload compression used by Marshal.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(c *Codec) error {
		if !compression.IsValid() {
			return fmt.Errorf("invalid payload compression: %v", compression)
		}
		c.compression = compression

		return nil
	})
}

// WithLittleEndian writes fixed-width fields little-endian. This is the default.
func WithLittleEndian() Option {
	return options.NoError(func(c *Codec) {
		c.bigEndian = false
	})
}

// WithBigEndian writes fixed-width fields big-endian.
func WithBigEndian() Option {
	return options.NoError(func(c *Codec) {
		c.bigEndian = true
	})
}
