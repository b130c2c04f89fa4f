package message

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArbitraryDataTextRoundTrip(t *testing.T) {
	a := NewText("hello")
	raw, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"hello"}`, string(raw))

	var got ArbitraryData
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "hello", got.LossyUTF8())
	assert.Equal(t, []byte("hello"), got.Bytes())
}

func TestArbitraryDataBytesRoundTrip(t *testing.T) {
	a := NewBytes([]byte{0xFF, 0xFE, 'h', 'i'})
	raw, err := json.Marshal(a)
	require.NoError(t, err)

	var got ArbitraryData
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, []byte{0xFF, 0xFE, 'h', 'i'}, got.Bytes())
	assert.Contains(t, got.LossyUTF8(), "�")
}

func TestArbitraryDataUnmarshalRejectsNeitherField(t *testing.T) {
	var a ArbitraryData
	err := json.Unmarshal([]byte(`{}`), &a)
	assert.Error(t, err)
}

func TestMessageMarshalUnmarshalRoundTripMatch(t *testing.T) {
	msg := Message{
		Kind: KindMatch,
		Match: &LineData{
			Path:       NewText("a.txt"),
			Lines:      NewText("foo bar\n"),
			Submatches: []SubMatch{{Match: NewText("foo"), Start: 0, End: 3}},
		},
	}
	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	var got Message
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, KindMatch, got.Kind)
	require.NotNil(t, got.Match)
	assert.Equal(t, "a.txt", got.Match.Path.LossyUTF8())
	assert.Len(t, got.Match.Submatches, 1)
}

func TestMessagePathAcrossKinds(t *testing.T) {
	begin := Message{Kind: KindBegin, Begin: &BeginData{Path: NewText("a.txt")}}
	p, ok := begin.Path()
	assert.True(t, ok)
	assert.Equal(t, "a.txt", p.LossyUTF8())

	summary := Message{Kind: KindSummary, Summary: &SummaryData{}}
	_, ok = summary.Path()
	assert.False(t, ok)
}

func TestMessageUnmarshalUnknownKind(t *testing.T) {
	var msg Message
	err := msg.UnmarshalJSON([]byte(`{"type":"bogus","data":{}}`))
	assert.Error(t, err)
}

func TestMessageUnmarshalMalformedEnvelope(t *testing.T) {
	var msg Message
	err := msg.UnmarshalJSON([]byte(`not json`))
	assert.Error(t, err)
}
