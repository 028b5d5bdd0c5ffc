package formatter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON_KeepsIntegerDigits(t *testing.T) {
	v, err := DecodeJSON([]byte(`{"id": 1000000, "big": 12345678901234567, "n": 123456789, "f": 0.5}`))
	require.NoError(t, err)

	assert.Equal(t, `{"big": 12345678901234567, "f": 0.5, "id": 1000000, "n": 123456789}`, Autoformat(v))
}

func TestDecodeJSON_Scalars(t *testing.T) {
	v, err := DecodeJSON([]byte(" 42 "))
	require.NoError(t, err)
	assert.Equal(t, json.Number("42"), v)

	v, err = DecodeJSON([]byte(`[1, "a", null, true]`))
	require.NoError(t, err)
	assert.Equal(t, `[1, "a", <nil>, true]`, Autoformat(v))
}

func TestDecodeJSON_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"garbage", "not json"},
		{"unterminated", `{"a": 1`},
		{"trailing", `{"a": 1} {"b": 2}`},
		{"trailing garbage", `1 x`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeJSON([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}
