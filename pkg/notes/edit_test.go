package notes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleNotes() ParsedNotes {
	return ParsedNotes{
		Entries: []Entry{
			{Time: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), Text: "first"},
			{Time: time.Date(2024, 1, 2, 11, 30, 0, 0, time.UTC), Text: "second"},
		},
	}
}

func TestAppend(t *testing.T) {
	p := sampleNotes()
	now := time.Date(2024, 3, 4, 15, 20, 45, 123456789, time.UTC)

	next, focus := p.Append(now)

	assert.Equal(t, 2, focus)
	require.Len(t, next.Entries, 3)
	assert.Equal(t, "", next.Entries[2].Text)
	// the new entry's instant is truncated to the minute
	// 新条目的时刻截断到分钟
	assert.Equal(t, time.Date(2024, 3, 4, 15, 20, 0, 0, time.UTC), next.Entries[2].Time)

	// the input value is untouched
	// 输入值不被修改
	assert.Len(t, p.Entries, 2)
}

func TestAppendToEmpty(t *testing.T) {
	next, focus := ParsedNotes{}.Append(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))

	assert.Equal(t, 0, focus)
	require.Len(t, next.Entries, 1)
}

func TestSetText(t *testing.T) {
	p := sampleNotes()

	next, err := p.SetText(1, "rewritten")

	require.NoError(t, err)
	assert.Equal(t, "rewritten", next.Entries[1].Text)
	assert.Equal(t, "second", p.Entries[1].Text)
}

func TestSetTextIndexOutOfRange(t *testing.T) {
	p := sampleNotes()

	_, err := p.SetText(5, "x")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = p.SetText(-1, "x")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestRetime(t *testing.T) {
	p := sampleNotes()
	replacement := time.Date(2025, 7, 8, 14, 45, 0, 0, time.UTC)

	next, err := p.Retime(0, replacement)

	require.NoError(t, err)
	assert.Equal(t, replacement, next.Entries[0].Time)
	assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), p.Entries[0].Time)
}

func TestDeleteMergesIntoPreviousEntry(t *testing.T) {
	p := sampleNotes()

	next, err := p.Delete(1)

	require.NoError(t, err)
	require.Len(t, next.Entries, 1)
	assert.Equal(t, "first\nsecond", next.Entries[0].Text)
	assert.Equal(t, "", next.Preamble)
}

func TestDeleteFirstMergesIntoPreamble(t *testing.T) {
	p := sampleNotes()
	p.Preamble = "intro"

	next, err := p.Delete(0)

	require.NoError(t, err)
	require.Len(t, next.Entries, 1)
	assert.Equal(t, "intro\nfirst", next.Preamble)
	assert.Equal(t, "second", next.Entries[0].Text)
}

func TestDeleteOnlyEntry(t *testing.T) {
	p := ParsedNotes{
		Entries: []Entry{
			{Time: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), Text: "X"},
		},
	}

	next, err := p.Delete(0)

	require.NoError(t, err)
	assert.Equal(t, "X", next.Preamble)
	assert.Empty(t, next.Entries)

	// encoding the result degenerates to the plain string
	// 结果编码后退化为纯字符串
	assert.Equal(t, "X", Encode(next))
}

func TestDeleteIndexOutOfRange(t *testing.T) {
	_, err := sampleNotes().Delete(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}
