package formatter

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// DecodeJSON parses a single JSON document into maps, slices and scalars.
// Numbers are kept as json.Number so that integers print with every
// digit instead of going through float64.
func DecodeJSON(data []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("json: trailing data after top-level value")
	}
	return v, nil
}
