package rgencoding

import (
	"strings"

	"github.com/gogs/chardet"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/htmlindex"
)

// confidenceFloor is the chardet confidence (0-100) that a statistically
// detected charset must exceed to be trusted over the UTF-8 fallback.
const confidenceFloor = 80

// Outcome is the result of resolving a file's encoding: the BOM found (if
// any) and the Codec to use for the remainder of the content after the BOM
// is stripped.
type Outcome struct {
	BOM   BOM
	Codec Codec
}

// Detect resolves the encoding of a file given its leading bytes and a
// declared label, following BOM precedence, then the declared label, then
// statistical detection above confidenceFloor, falling back to UTF-8.
func Detect(data []byte, declared Declared) Outcome {
	if bom := DetectBOM(data); bom != BOMNone {
		return Outcome{BOM: bom, Codec: codecForBOM(bom)}
	}

	switch declared.Kind {
	case DeclaredSome:
		if c, err := codecForLabel(declared.Label); err == nil {
			return Outcome{Codec: c}
		}
		return Outcome{Codec: utf8Codec{}}
	case DeclaredNoneExplicit:
		return Outcome{Codec: utf8Codec{}}
	}

	if c, ok := detectStatistical(data); ok {
		return Outcome{Codec: c}
	}

	return Outcome{Codec: utf8Codec{}}
}

func codecForBOM(bom BOM) Codec {
	switch bom {
	case BOMUtf16BE:
		c, _ := codecForLabel("utf-16be")
		return c
	case BOMUtf16LE:
		c, _ := codecForLabel("utf-16le")
		return c
	default:
		return utf8Codec{}
	}
}

// detectStatistical runs chardet over data and maps its best guess to a
// Codec, provided the confidence clears confidenceFloor.
func detectStatistical(data []byte) (Codec, bool) {
	result, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil || result.Confidence <= confidenceFloor {
		return nil, false
	}

	if strings.EqualFold(result.Charset, "ascii") {
		return strictASCIICodec{}, true
	}

	c, err := codecForLabel(result.Charset)
	if err != nil {
		return nil, false
	}
	return c, true
}

// codecForLabel resolves a WHATWG/IANA-style encoding label to a Codec,
// covering the UTF-8/UTF-16, Windows/ISO single-byte, and CJK encoding
// families via golang.org/x/text's html index.
func codecForLabel(label string) (Codec, error) {
	norm := strings.ToLower(strings.TrimSpace(label))
	if norm == "" {
		return nil, errors.New("empty encoding label")
	}
	if norm == "ascii" || norm == "us-ascii" {
		return strictASCIICodec{}, nil
	}
	if norm == "utf-8" || norm == "utf8" {
		return utf8Codec{}, nil
	}

	enc, err := htmlindex.Get(norm)
	if err != nil {
		return nil, errors.Wrapf(err, "unrecognised encoding label %q", label)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		name = norm
	}
	return xtextCodec{name: name, enc: enc}, nil
}
