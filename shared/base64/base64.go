package base64

import (
	b64 "encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidDataURI = errors.New("invalid data URI")

// GetContentType extracts the mimetype from a "data:<type>;base64,<payload>"
// string. Returns "" when the input is not a data URI.
func GetContentType(file string) string {
	start := len("data:")
	end := strings.Index(file, ";base64,")

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

// Decode returns the raw payload bytes of a base64 data URI.
func Decode(file string) ([]byte, error) {
	marker := ";base64,"

	idx := strings.Index(file, marker)
	if idx == -1 || !strings.HasPrefix(file, "data:") {
		return nil, ErrInvalidDataURI
	}

	payload, err := b64.StdEncoding.DecodeString(file[idx+len(marker):])
	if err != nil {
		return nil, ErrInvalidDataURI
	}

	return payload, nil
}
