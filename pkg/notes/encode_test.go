package notes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeNoEntries(t *testing.T) {
	stored := Encode(ParsedNotes{Preamble: "plain text  \n\n"})

	assert.Equal(t, "plain text", stored)
}

func TestEncodeEmptyValue(t *testing.T) {
	assert.Equal(t, "", Encode(ParsedNotes{}))
}

func TestEncodeSingleEntry(t *testing.T) {
	stored := Encode(ParsedNotes{
		Entries: []Entry{
			{Time: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), Text: "Call"},
		},
	})

	assert.Equal(t, `{"2024-01-01T10:00:00.000Z":"Call"}`, stored)
}

func TestEncodePreambleFoldsIntoFirstEntry(t *testing.T) {
	p := ParsedNotes{
		Preamble: "Intro",
		Entries: []Entry{
			{Time: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), Text: "A"},
			{Time: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC), Text: "B"},
		},
	}

	decoded := Decode(Encode(p))

	assert.Equal(t, "", decoded.Preamble)
	require.Len(t, decoded.Entries, 2)
	assert.Equal(t, "Intro\nA", decoded.Entries[0].Text)
	assert.Equal(t, "B", decoded.Entries[1].Text)
}

func TestEncodePreambleFoldKeepsNewlineWithEmptyFirstText(t *testing.T) {
	// this shape arises from decoding plain text and appending an entry:
	// the joining newline must survive even though the entry text is empty
	// 这种形状来自解码纯文本后追加条目：
	// 即使条目文本为空，连接用的换行也必须保留
	p := ParsedNotes{
		Preamble: "Intro",
		Entries: []Entry{
			{Time: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), Text: ""},
		},
	}

	decoded := Decode(Encode(p))

	assert.Equal(t, "", decoded.Preamble)
	require.Len(t, decoded.Entries, 1)
	assert.Equal(t, "Intro\n", decoded.Entries[0].Text)
}

func TestEncodeCollisionResolution(t *testing.T) {
	shared := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	p := ParsedNotes{
		Entries: []Entry{
			{Time: shared, Text: "first"},
			{Time: shared, Text: "second"},
		},
	}

	stored := Encode(p)

	// the earlier entry keeps its true key, the later one absorbs the
	// millisecond shift
	// 靠前条目保留真实键，靠后条目吸收毫秒偏移
	assert.Contains(t, stored, `"2024-01-01T10:00:00.000Z":"first"`)
	assert.Contains(t, stored, `"2024-01-01T10:00:00.001Z":"second"`)

	decoded := Decode(stored)
	require.Len(t, decoded.Entries, 2)
	assert.Equal(t, "first", decoded.Entries[0].Text)
	assert.Equal(t, "second", decoded.Entries[1].Text)
	assert.Equal(t, shared, decoded.Entries[0].Time)
	assert.Equal(t, shared.Add(time.Millisecond), decoded.Entries[1].Time)
}

func TestEncodeTripleCollision(t *testing.T) {
	shared := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	p := ParsedNotes{
		Entries: []Entry{
			{Time: shared, Text: "a"},
			{Time: shared, Text: "b"},
			{Time: shared, Text: "c"},
		},
	}

	decoded := Decode(Encode(p))

	require.Len(t, decoded.Entries, 3)
	assert.Equal(t, shared, decoded.Entries[0].Time)
	assert.Equal(t, shared.Add(time.Millisecond), decoded.Entries[1].Time)
	assert.Equal(t, shared.Add(2*time.Millisecond), decoded.Entries[2].Time)
}

func TestEncodeNonMonotonicOrderPreserved(t *testing.T) {
	later := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	earlier := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	p := ParsedNotes{
		Entries: []Entry{
			{Time: later, Text: "logged first"},
			{Time: earlier, Text: "logged second"},
		},
	}

	decoded := Decode(Encode(p))

	require.Len(t, decoded.Entries, 2)
	assert.Equal(t, "logged first", decoded.Entries[0].Text)
	assert.Equal(t, "logged second", decoded.Entries[1].Text)
	assert.Equal(t, later, decoded.Entries[0].Time)
	assert.Equal(t, earlier, decoded.Entries[1].Time)
}

func TestEncodeEmptyPreambleDegenerateRoundTrip(t *testing.T) {
	// encoding a preamble-only value and decoding it reproduces the
	// preamble through the line fallback
	// 仅含前导文本的值编码后再解码，经行回退还原前导文本
	p := ParsedNotes{Preamble: "just notes, no entries"}

	decoded := Decode(Encode(p))

	assert.Equal(t, "just notes, no entries", decoded.Preamble)
	assert.Empty(t, decoded.Entries)
}
