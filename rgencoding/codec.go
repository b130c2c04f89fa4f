package rgencoding

import (
	"bytes"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
)

// Codec decodes/encodes a whole buffer under one specific character
// encoding, trapping malformed input rather than silently substituting
// replacement characters.
type Codec interface {
	Name() string
	Decode(b []byte) (string, error)
	Encode(s string) ([]byte, error)
}

// utf8Codec is the identity codec, trapping invalid UTF-8 rather than
// passing it through (Go strings may otherwise hold arbitrary bytes).
type utf8Codec struct{}

func (utf8Codec) Name() string { return "UTF-8" }

func (utf8Codec) Decode(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", errors.New("invalid UTF-8")
	}
	return string(b), nil
}

func (utf8Codec) Encode(s string) ([]byte, error) {
	return []byte(s), nil
}

// xtextCodec adapts a golang.org/x/text/encoding.Encoding to Codec.
type xtextCodec struct {
	name string
	enc  encoding.Encoding
}

func (c xtextCodec) Name() string { return c.name }

func (c xtextCodec) Decode(b []byte) (string, error) {
	out, err := c.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", errors.Wrapf(err, "decode %s", c.name)
	}
	// x/text decoders substitute U+FFFD for malformed input instead of
	// failing; a U+FFFD that does not encode back to the original bytes
	// marks such a substitution.
	if bytes.ContainsRune(out, utf8.RuneError) {
		back, err := c.enc.NewEncoder().Bytes(out)
		if err != nil || !bytes.Equal(back, b) {
			return "", errors.Errorf("decode %s: malformed input", c.name)
		}
	}
	return string(out), nil
}

func (c xtextCodec) Encode(s string) ([]byte, error) {
	out, err := c.enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s", c.name)
	}
	return out, nil
}
