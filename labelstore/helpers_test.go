package labelstore

import (
	"github.com/arloliu/lencoder/codec"
	"github.com/arloliu/lencoder/format"
)

func codecZstd() codec.Option {
	return codec.WithCompression(format.CompressionZstd)
}
