package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCompression(t *testing.T) {
	tests := []struct {
		name    string
		want    CompressionType
		wantErr bool
	}{
		{"", CompressionNone, false},
		{"none", CompressionNone, false},
		{"ZSTD", CompressionZstd, false},
		{"s2", CompressionS2, false},
		{"lz4", CompressionLZ4, false},
		{"gzip", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCompression(tt.name)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.True(t, got.IsValid())
		})
	}
}

func TestParseKind(t *testing.T) {
	for name, want := range map[string]KindType{
		"string": KindString,
		"int":    KindInt,
		"Float":  KindFloat,
		"bool":   KindBool,
	} {
		got, err := ParseKind(name)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := ParseKind("decimal")
	require.Error(t, err)
	require.False(t, KindType(0).IsValid())
	require.Equal(t, "Unknown", KindType(9).String())
}
