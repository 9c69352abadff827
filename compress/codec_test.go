package compress

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/arloliu/lencoder/format"
	"github.com/stretchr/testify/require"
)

func vocabularyPayload(n int) []byte {
	var buf bytes.Buffer
	for i := range n {
		fmt.Fprintf(&buf, "category-%04d|", i%500)
	}

	return buf.Bytes()
}

func TestGetCodec(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err, ct.String())
		require.NotNil(t, codec)
	}

	_, err := GetCodec(format.CompressionType(0x9))
	require.Error(t, err)
}

func TestCodecs_RoundTrip(t *testing.T) {
	payloads := map[string][]byte{
		"small":      []byte("abc"),
		"vocabulary": vocabularyPayload(5000),
		"binary":     bytes.Repeat([]byte{0x00, 0xFF, 0x10}, 1000),
	}

	for _, ct := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		for name, data := range payloads {
			t.Run(ct.String()+"/"+name, func(t *testing.T) {
				compressed, err := codec.Compress(data)
				require.NoError(t, err)

				decompressed, err := codec.Decompress(compressed)
				require.NoError(t, err)
				require.Equal(t, data, decompressed)
			})
		}
	}
}

func TestCodecs_CompressRepetitiveData(t *testing.T) {
	data := vocabularyPayload(20000)
	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(data)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(data)/2, ct.String())
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, codec := range []Codec{NewS2Compressor(), NewLZ4Compressor(), NewZstdCompressor()} {
		out, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Empty(t, out)
	}

	out, err := NewLZ4Compressor().Compress(nil)
	require.NoError(t, err)
	require.Nil(t, out)
}

func TestCodecs_CorruptInput(t *testing.T) {
	garbage := []byte{0xde, 0xad, 0xbe, 0xef, 0x01, 0x02, 0x03}
	for _, codec := range []Codec{NewZstdCompressor(), NewS2Compressor()} {
		_, err := codec.Decompress(garbage)
		require.Error(t, err)
	}
}

func BenchmarkCodecs_Compress(b *testing.B) {
	data := vocabularyPayload(10000)
	for _, ct := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	} {
		codec, _ := GetCodec(ct)
		b.Run(ct.String(), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			for b.Loop() {
				_, _ = codec.Compress(data)
			}
		})
	}
}
