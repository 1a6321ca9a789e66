// Package notes converts between a single stored notes string and a
// structured sequence of timestamped note entries. Decoding accepts both
// the canonical structured encoding and the legacy bracketed line log;
// encoding always emits the canonical form.
// Package notes 在单个存储的笔记字符串与结构化的时间戳条目序列之间转换。
// 解码同时接受规范结构化编码与旧版方括号行日志，编码始终输出规范格式。
package notes

import (
	"time"
)

// Entry is one timestamped note with its free text.
// Text may contain embedded newlines.
type Entry struct {
	// Time 条目时间（无时区挂钟时间，固定到 UTC）
	Time time.Time `json:"time"`
	// Text 条目文本
	Text string `json:"text"`
}

// ParsedNotes is the structured value decoded from a stored string.
// Entry order is insertion/display order and is preserved across
// decode/encode cycles; timestamps are never re-sorted.
type ParsedNotes struct {
	// Preamble 无时间戳的前导文本，不属于任何条目
	Preamble string `json:"preamble"`
	// Entries 有序条目序列
	Entries []Entry `json:"entries"`
}

// joinText joins two text blocks with a newline, skipping empty sides
// joinText 用换行连接两段文本，空的一侧被跳过
func joinText(a string, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	return a + "\n" + b
}

// cloneEntries copies the entry slice so transforms never alias their input
func cloneEntries(entries []Entry) []Entry {
	if entries == nil {
		return nil
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}
