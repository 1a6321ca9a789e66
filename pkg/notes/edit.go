package notes

import (
	"time"

	"github.com/pkg/errors"
)

// ErrIndexOutOfRange is returned when an edit names a missing entry
// ErrIndexOutOfRange 在编辑操作指向不存在的条目时返回
var ErrIndexOutOfRange = errors.New("entry index out of range")

// Edit operations are pure list-level transforms: each returns a new
// ParsedNotes value and leaves the receiver untouched. The caller
// validates replacement timestamps before they reach this layer.
// 编辑操作是纯的列表级变换：每个操作返回新的 ParsedNotes，
// 不修改接收者。替换时间戳由调用方在进入本层之前校验。

// Append adds a new entry with the given instant (truncated to the
// minute) and empty text at the end. The second return value is the
// index that should receive input focus next.
// Append 在末尾添加一个以给定时刻（截断到分钟）和空文本构成的新条目，
// 第二个返回值是接下来应获得输入焦点的条目下标。
func (p ParsedNotes) Append(now time.Time) (ParsedNotes, int) {
	entries := cloneEntries(p.Entries)
	entries = append(entries, Entry{Time: now.UTC().Truncate(time.Minute), Text: ""})
	return ParsedNotes{Preamble: p.Preamble, Entries: entries}, len(entries) - 1
}

// SetText replaces the text of the entry at index i.
func (p ParsedNotes) SetText(i int, text string) (ParsedNotes, error) {
	if i < 0 || i >= len(p.Entries) {
		return p, ErrIndexOutOfRange
	}
	entries := cloneEntries(p.Entries)
	entries[i].Text = text
	return ParsedNotes{Preamble: p.Preamble, Entries: entries}, nil
}

// Retime replaces the timestamp of the entry at index i with a
// caller-supplied, already validated instant.
// Retime 用调用方提供且已校验的时刻替换下标 i 条目的时间戳。
func (p ParsedNotes) Retime(i int, t time.Time) (ParsedNotes, error) {
	if i < 0 || i >= len(p.Entries) {
		return p, ErrIndexOutOfRange
	}
	entries := cloneEntries(p.Entries)
	entries[i].Time = t.UTC()
	return ParsedNotes{Preamble: p.Preamble, Entries: entries}, nil
}

// Delete removes the entry at index i. Its text is not discarded: it is
// newline-joined onto the previous entry's text when one exists,
// otherwise onto the trailing end of the preamble.
// Delete 删除下标 i 的条目。其文本不会被丢弃：
// 若存在前一条目则以换行并入其文本，否则并入前导文本的末尾。
func (p ParsedNotes) Delete(i int) (ParsedNotes, error) {
	if i < 0 || i >= len(p.Entries) {
		return p, ErrIndexOutOfRange
	}
	removed := p.Entries[i]
	entries := cloneEntries(p.Entries)
	entries = append(entries[:i], entries[i+1:]...)

	preamble := p.Preamble
	if i > 0 {
		entries[i-1].Text = joinText(entries[i-1].Text, removed.Text)
	} else {
		preamble = joinText(preamble, removed.Text)
	}
	return ParsedNotes{Preamble: preamble, Entries: entries}, nil
}
