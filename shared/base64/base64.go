package base64

import (
	enc "encoding/base64"
	"fmt"
	"strings"
)

const payloadMarker = ";base64,"

func GetContentType(file string) string {
	start := len("data:")
	end := strings.Index(file, payloadMarker)

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

// GetData decodes the payload of a base64 data URI.
func GetData(file string) ([]byte, error) {
	marker := strings.Index(file, payloadMarker)
	if marker == -1 {
		return nil, fmt.Errorf("missing base64 payload marker")
	}

	data, err := enc.StdEncoding.DecodeString(file[marker+len(payloadMarker):])
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 payload: %w", err)
	}

	return data, nil
}
