package notes

import (
	"strings"
	"time"

	"github.com/bytedance/sonic/ast"
)

// keyLayout is the canonical absolute-timestamp key format, the naive
// wall clock rendered as a UTC instant with millisecond precision
// keyLayout 是规范的绝对时间戳键格式，
// 无时区挂钟时间按 UTC 时刻以毫秒精度渲染
const keyLayout = "2006-01-02T15:04:05.000Z07:00"

// Encode serializes a ParsedNotes value to the canonical stored string.
// With no entries it degenerates to the trimmed preamble text. Otherwise
// the preamble folds into the first entry's text and every entry becomes
// one key/value pair, serialized in entry order.
//
// Keys are unique: an entry whose computed key is already taken has its
// effective instant advanced by one millisecond until the key is free.
// Earlier entries always keep their true key; later colliding entries
// absorb the shift. Entries are never reordered.
// Encode 将 ParsedNotes 序列化为规范存储字符串。
// 无条目时退化为去除尾部空白的前导文本；否则前导文本并入首个条目，
// 每个条目按顺序生成一个键值对。
// 键保证唯一：键已被占用的条目其生效时刻每次前移一毫秒直到键空闲。
// 靠前的条目总是保留真实键，靠后的冲突条目吸收偏移，条目不会被重排。
func Encode(p ParsedNotes) string {
	if len(p.Entries) == 0 {
		return strings.TrimRight(p.Preamble, " \t\r\n")
	}

	used := make(map[string]bool, len(p.Entries))
	root := ast.NewObject(nil)

	for i, entry := range p.Entries {
		text := entry.Text
		if i == 0 && p.Preamble != "" {
			// the preamble never survives as its own key; the joining
			// newline is kept even when the first entry's text is empty
			// 前导文本不会作为独立的键存在；
			// 即使首个条目文本为空，连接用的换行也保留
			text = p.Preamble + "\n" + text
		}

		t := entry.Time.UTC()
		key := t.Format(keyLayout)
		for used[key] {
			t = t.Add(time.Millisecond)
			key = t.Format(keyLayout)
		}
		used[key] = true

		// Set appends unseen keys, so document order follows entry order
		// Set 对未出现过的键追加写入，文档顺序即条目顺序
		root.Set(key, ast.NewString(text))
	}

	out, _ := root.MarshalJSON()
	return string(out)
}
