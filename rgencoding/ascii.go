package rgencoding

import "github.com/pkg/errors"

// strictASCIICodec maps the detected label "ascii" to plain 7-bit ASCII,
// not the Windows-1252 superset some systems treat "ascii" as a synonym
// for.
type strictASCIICodec struct{}

func (strictASCIICodec) Name() string { return "ASCII" }

func (strictASCIICodec) Decode(b []byte) (string, error) {
	for _, c := range b {
		if c >= 0x80 {
			return "", errors.Errorf("byte 0x%02x is not valid ASCII", c)
		}
	}
	return string(b), nil
}

func (strictASCIICodec) Encode(s string) ([]byte, error) {
	for _, r := range s {
		if r >= 0x80 {
			return nil, errors.Errorf("rune %q is not valid ASCII", r)
		}
	}
	return []byte(s), nil
}
