package token

import (
	"fmt"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"
)

const separator = "."

var (
	segmentEncoder = &jwt.Token{}
	segmentDecoder = jwt.NewParser(jwt.WithStrictDecoding())
)

// EncodeSegment renders bytes as unpadded base64url.
func EncodeSegment(b []byte) string {
	return segmentEncoder.EncodeSegment(b)
}

// DecodeSegment is the inverse of EncodeSegment. Strict decoding rejects
// non-canonical trailing bits so every segment has exactly one byte form.
func DecodeSegment(seg string) ([]byte, error) {
	for i := 0; i < len(seg); i++ {
		if !isSegmentByte(seg[i]) {
			return nil, fmt.Errorf("%w: invalid character %q at offset %d", ErrMalformedSegment, seg[i], i)
		}
	}
	b, err := segmentDecoder.DecodeSegment(seg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSegment, err)
	}
	return b, nil
}

// Assemble joins already-encoded segments as header.payload.signature.
func Assemble(header, payload, signature string) string {
	return header + separator + payload + separator + signature
}

// Split breaks a token into its three encoded segments.
func Split(raw string) (header, payload, signature string, err error) {
	parts := strings.Split(raw, separator)
	if len(parts) != 3 {
		return "", "", "", fmt.Errorf("%w: expected 3 segments, got %d", ErrMalformedToken, len(parts))
	}
	return parts[0], parts[1], parts[2], nil
}

func signingInput(header, payload string) string {
	return header + separator + payload
}

func isSegmentByte(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_':
		return true
	}
	return false
}
