package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filebase/internal/adapters/codec"
	"filebase/internal/core/ports"
)

type payload struct {
	Title string `json:"title" yaml:"title"`
	Count int    `json:"count" yaml:"count"`
}

func TestCodecsRoundTrip(t *testing.T) {
	t.Parallel()

	codecs := map[string]ports.Codec{
		"gob":  codec.Gob{},
		"json": codec.JSON{},
		"yaml": codec.YAML{},
	}

	for name, c := range codecs {
		name, c := name, c
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			in := payload{Title: "SOME BOGUS DATA", Count: 3}

			raw, err := c.Encode(in)
			require.NoError(t, err)

			var out payload
			require.NoError(t, c.Decode(raw, &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestGobDecodeRejectsGarbage(t *testing.T) {
	t.Parallel()

	var out string
	assert.Error(t, codec.Gob{}.Decode([]byte("definitely not gob"), &out))
}

func TestForName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    ports.Codec
		wantErr bool
	}{
		{name: "", want: codec.Gob{}},
		{name: "gob", want: codec.Gob{}},
		{name: "JSON", want: codec.JSON{}},
		{name: "yaml", want: codec.YAML{}},
		{name: "pickle", wantErr: true},
	}

	for _, c := range tests {
		c := c
		t.Run("name "+c.name, func(t *testing.T) {
			t.Parallel()

			got, err := codec.ForName(c.name)
			if c.wantErr {
				assert.EqualError(t, err, `unknown codec "pickle"`)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}
