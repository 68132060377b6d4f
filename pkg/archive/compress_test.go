package archive

import (
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressionRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("070701 knarr knarr knarr "), 64)

	decompress := map[Compression]func(r io.Reader) (io.Reader, error){
		CompressionNone: func(r io.Reader) (io.Reader, error) {
			return r, nil
		},
		CompressionGzip: func(r io.Reader) (io.Reader, error) {
			return gzip.NewReader(r)
		},
		CompressionZstd: func(r io.Reader) (io.Reader, error) {
			return zstd.NewReader(r)
		},
		CompressionLZ4: func(r io.Reader) (io.Reader, error) {
			return lz4.NewReader(r), nil
		},
	}

	for c, open := range decompress {
		t.Run(c.String(), func(t *testing.T) {
			var buf bytes.Buffer
			w, err := c.Wrap(&buf)
			require.NoError(t, err)

			_, err = w.Write(payload)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			r, err := open(&buf)
			require.NoError(t, err)
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, payload, got)
		})
	}
}

func TestParseCompression(t *testing.T) {
	for name, want := range map[string]Compression{
		"none": CompressionNone,
		"":     CompressionNone,
		"gzip": CompressionGzip,
		"zstd": CompressionZstd,
		"lz4":  CompressionLZ4,
	} {
		got, err := ParseCompression(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseCompression("xz")
	assert.Error(t, err)
}
