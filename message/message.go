// Package message defines the tagged JSON event model produced by the
// external search tool and decodes it from a newline-delimited JSON stream.
package message

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// Kind identifies which variant of Message is populated.
type Kind string

const (
	KindBegin   Kind = "begin"
	KindEnd     Kind = "end"
	KindMatch   Kind = "match"
	KindContext Kind = "context"
	KindSummary Kind = "summary"
)

// ArbitraryData is either valid-Unicode inline text or base64-encoded raw
// bytes. Both variants represent the same logical byte sequence; text is
// the byte-identical interpretation of that sequence under its declared
// encoding.
type ArbitraryData struct {
	text   string
	bytes  []byte
	isText bool
}

// NewText constructs an ArbitraryData holding inline text.
func NewText(s string) ArbitraryData {
	return ArbitraryData{text: s, isText: true}
}

// NewBytes constructs an ArbitraryData holding raw bytes.
func NewBytes(b []byte) ArbitraryData {
	return ArbitraryData{bytes: b, isText: false}
}

// Bytes decodes this value to its underlying byte sequence.
func (a ArbitraryData) Bytes() []byte {
	if a.isText {
		return []byte(a.text)
	}
	return a.bytes
}

// LossyUTF8 decodes this value to a Unicode string, substituting U+FFFD for
// any invalid UTF-8 byte sequences found in the base64 variant.
func (a ArbitraryData) LossyUTF8() string {
	if a.isText {
		return a.text
	}
	return strings.ToValidUTF8(string(a.bytes), "�")
}

// ToPlatformPath converts this value to a path usable with the local
// filesystem APIs. On Unix, paths may legally contain non-UTF8 bytes, so
// the raw bytes are used directly; on platforms where paths must be valid
// Unicode, LossyUTF8 is used instead.
func (a ArbitraryData) ToPlatformPath() string {
	if a.isText {
		return a.text
	}
	return platformPathFromBytes(a.bytes)
}

func (a ArbitraryData) MarshalJSON() ([]byte, error) {
	if a.isText {
		return json.Marshal(struct {
			Text string `json:"text"`
		}{a.text})
	}
	return json.Marshal(struct {
		Bytes string `json:"bytes"`
	}{base64.StdEncoding.EncodeToString(a.bytes)})
}

func (a *ArbitraryData) UnmarshalJSON(data []byte) error {
	var wire struct {
		Text  *string `json:"text"`
		Bytes *string `json:"bytes"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return errors.Wrap(err, "unmarshal ArbitraryData")
	}
	if wire.Text != nil {
		*a = NewText(*wire.Text)
		return nil
	}
	if wire.Bytes != nil {
		b, err := base64.StdEncoding.DecodeString(*wire.Bytes)
		if err != nil {
			return errors.Wrap(err, "decode base64 ArbitraryData")
		}
		*a = NewBytes(b)
		return nil
	}
	return errors.New("ArbitraryData: neither text nor bytes present")
}

// Duration mirrors the searcher's elapsed-time payload.
type Duration struct {
	HumanStr string `json:"human"`
	Nanos    uint64 `json:"nanos"`
	Secs     uint64 `json:"secs"`
}

// Stats mirrors the searcher's end-of-run statistics payload.
type Stats struct {
	Elapsed           Duration `json:"elapsed"`
	Searches          uint64   `json:"searches"`
	SearchesWithMatch uint64   `json:"searches_with_match"`
	BytesSearched     uint64   `json:"bytes_searched"`
	BytesPrinted      uint64   `json:"bytes_printed"`
	MatchedLines      uint64   `json:"matched_lines"`
	Matches           uint64   `json:"matches"`
}

// SubMatch is a single match span within a line, with a byte range relative
// to that line's bytes.
type SubMatch struct {
	Match ArbitraryData `json:"match"`
	Start uint64        `json:"start"`
	End   uint64        `json:"end"`
}

// BeginData is the payload of a Begin message.
type BeginData struct {
	Path ArbitraryData `json:"path"`
}

// EndData is the payload of an End message.
type EndData struct {
	Path          ArbitraryData `json:"path"`
	BinaryOffset  *uint64       `json:"binary_offset"`
	Stats         Stats         `json:"stats"`
}

// LineData is the payload shared by Match and Context messages.
type LineData struct {
	Path           ArbitraryData `json:"path"`
	Lines          ArbitraryData `json:"lines"`
	LineNumber     *uint64       `json:"line_number"`
	AbsoluteOffset uint64        `json:"absolute_offset"`
	Submatches     []SubMatch    `json:"submatches"`
}

// SummaryData is the payload of a Summary message.
type SummaryData struct {
	ElapsedTotal Duration `json:"elapsed_total"`
	Stats        Stats    `json:"stats"`
}

// Message is a sum type over the five searcher event kinds.
type Message struct {
	Kind    Kind
	Begin   *BeginData
	End     *EndData
	Match   *LineData
	Context *LineData
	Summary *SummaryData
}

// Path returns the path associated with this message, if any.
func (m Message) Path() (ArbitraryData, bool) {
	switch m.Kind {
	case KindBegin:
		return m.Begin.Path, true
	case KindEnd:
		return m.End.Path, true
	case KindMatch:
		return m.Match.Path, true
	case KindContext:
		return m.Context.Path, true
	default:
		return ArbitraryData{}, false
	}
}

func (m Message) MarshalJSON() ([]byte, error) {
	var data interface{}
	switch m.Kind {
	case KindBegin:
		data = m.Begin
	case KindEnd:
		data = m.End
	case KindMatch:
		data = m.Match
	case KindContext:
		data = m.Context
	case KindSummary:
		data = m.Summary
	}
	return json.Marshal(struct {
		Type string      `json:"type"`
		Data interface{} `json:"data"`
	}{string(m.Kind), data})
}

func (m *Message) UnmarshalJSON(raw []byte) error {
	var envelope struct {
		Type string          `json:"type"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return errors.Wrap(err, "unmarshal message envelope")
	}

	m.Kind = Kind(envelope.Type)
	switch m.Kind {
	case KindBegin:
		m.Begin = &BeginData{}
		return errors.Wrap(json.Unmarshal(envelope.Data, m.Begin), "unmarshal begin")
	case KindEnd:
		m.End = &EndData{}
		return errors.Wrap(json.Unmarshal(envelope.Data, m.End), "unmarshal end")
	case KindMatch:
		m.Match = &LineData{}
		return errors.Wrap(json.Unmarshal(envelope.Data, m.Match), "unmarshal match")
	case KindContext:
		m.Context = &LineData{}
		return errors.Wrap(json.Unmarshal(envelope.Data, m.Context), "unmarshal context")
	case KindSummary:
		m.Summary = &SummaryData{}
		return errors.Wrap(json.Unmarshal(envelope.Data, m.Summary), "unmarshal summary")
	default:
		return errors.Errorf("unknown message type %q", envelope.Type)
	}
}
