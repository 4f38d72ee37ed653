package intent

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// ErrUnparseable is matched by every error Recover returns.
var ErrUnparseable = errors.New("response could not be interpreted as JSON")

var errTrailingData = errors.New("unexpected data after JSON value")

// ParseError carries the reply that could not be read as JSON.
type ParseError struct {
	Content string
	Err     error
}

func (e *ParseError) Error() string {
	return "Antwort konnte nicht als JSON geparst werden: " + e.Content
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrUnparseable, e.Err}
}

// Recover turns a raw model reply into a JSON value. A reply that is valid
// JSON on its own is returned as parsed, whatever its kind. Otherwise the
// span from the first '{' to the last '}' is parsed. Braces inside string
// values and replies holding several objects get no special treatment. No
// schema check happens here.
func Recover(raw string) (any, error) {
	v, err := decodeValue(raw)
	if err == nil {
		return v, nil
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start != -1 && end > start {
		v, spanErr := decodeValue(raw[start : end+1])
		if spanErr == nil {
			return v, nil
		}
		err = spanErr
	}

	return nil, &ParseError{Content: raw, Err: err}
}

// decodeValue strictly parses s as exactly one JSON value. Numbers stay
// json.Number so they print back as the model wrote them.
func decodeValue(s string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errTrailingData
	}
	return v, nil
}
