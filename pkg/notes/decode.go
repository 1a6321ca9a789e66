package notes

import (
	"regexp"
	"strings"
	"time"

	"github.com/haierkeys/note-timeline-codec/pkg/convert"
	"github.com/haierkeys/note-timeline-codec/pkg/timex"

	"github.com/bytedance/sonic"
	"github.com/bytedance/sonic/ast"
)

// maxEpochMillis is 9999-12-31T23:59:59.999Z, the upper bound for keys
// given as millisecond epoch offsets
// maxEpochMillis 即 9999-12-31T23:59:59.999Z，
// 毫秒纪元偏移形式键的上界
const maxEpochMillis = 253402300799999

// bracketLineRegex matches legacy "[<inner>]<rest>" entry lines
// Group 1: bracket inner text, Group 2: rest of line
// bracketLineRegex 匹配旧版 "[<inner>]<rest>" 条目行
var bracketLineRegex = regexp.MustCompile(`^\[([^\]]+)\]\s*(.*)$`)

// Decode turns a stored string into a ParsedNotes value. It is total:
// malformed structured data, malformed timestamps and empty input all
// degrade to a value with fewer or zero entries, never to an error.
// The canonical structured encoding is attempted first; anything that
// does not survive it is re-read as a legacy bracketed line log.
// Decode 将存储字符串转换为 ParsedNotes。该函数是全函数：
// 结构化数据损坏、时间戳损坏或输入为空都只会得到条目更少的值，
// 绝不报错。先尝试规范结构化编码，失败后按旧版方括号行日志重读。
func Decode(raw string) ParsedNotes {
	if trimmed := strings.TrimSpace(raw); trimmed != "" {
		if entries, ok := decodeStructured(trimmed); ok {
			return ParsedNotes{Preamble: "", Entries: entries}
		}
	}
	return decodeLines(raw)
}

// decodeStructured attempts the canonical key to value encoding.
// Object members are visited in document order so that entry order
// survives a decode/encode cycle without relying on map iteration.
// decodeStructured 尝试规范的键值编码，按文档顺序遍历对象成员，
// 使条目顺序在解码/编码循环中保留，而不依赖 map 的遍历顺序。
func decodeStructured(trimmed string) ([]Entry, bool) {
	if !sonic.Valid([]byte(trimmed)) {
		return nil, false
	}
	root, err := sonic.GetFromString(trimmed)
	if err != nil || root.Type() != ast.V_OBJECT {
		return nil, false
	}

	var entries []Entry
	err = root.ForEach(func(path ast.Sequence, node *ast.Node) bool {
		if path.Key == nil {
			return true
		}
		ts, ok := parseKeyInstant(*path.Key)
		if !ok {
			// key carries no derivable instant, pair is dropped
			// 键无法推导出时刻，整个键值对被丢弃
			return true
		}
		value, verr := node.InterfaceUseNumber()
		if verr != nil {
			return true
		}
		entries = append(entries, Entry{Time: ts, Text: convert.ValueToString(value)})
		return true
	})
	if err != nil || len(entries) == 0 {
		// zero surviving pairs means the structured attempt failed as a
		// whole, even for syntactically valid input
		// 没有任何键值对存活时整个结构化尝试视为失败，
		// 即使输入本身语法合法
		return nil, false
	}
	return entries, true
}

// parseKeyInstant derives an instant from a mapping key, trying in order:
// absolute timestamp string, display format, base-10 millisecond epoch
// parseKeyInstant 从映射键推导时刻，依次尝试：
// 绝对时间戳字符串、展示格式、十进制毫秒纪元偏移
func parseKeyInstant(key string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, key); err == nil {
		return t.UTC(), true
	}
	if t, ok := timex.ParseDisplay(key); ok {
		return t, true
	}
	if ms, err := convert.StrTo(key).Int64(); err == nil {
		if ms >= 0 && ms <= maxEpochMillis {
			return time.UnixMilli(ms).UTC(), true
		}
	}
	return time.Time{}, false
}

// decodeLines is the line-oriented legacy fallback. Lines of the shape
// "[H:MM am/pm - Mon D, YYYY] text" open entries; everything before the
// first such line is preamble, everything after it continues the entry.
// decodeLines 是面向行的旧版回退。形如
// "[H:MM am/pm - Mon D, YYYY] text" 的行开启新条目；
// 首个此类行之前的内容为前导文本，之后的行续接当前条目。
func decodeLines(raw string) ParsedNotes {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	lines := strings.Split(raw, "\n")

	var preambleLines []string
	var entries []Entry
	var current *Entry

	for _, line := range lines {
		if m := bracketLineRegex.FindStringSubmatch(line); m != nil {
			if ts, ok := timex.ParseDisplay(m[1]); ok {
				if current != nil {
					entries = append(entries, *current)
				}
				current = &Entry{Time: ts, Text: m[2]}
				continue
			}
			// bracket matched but the inner text is no timestamp,
			// fall through and treat the line as ordinary text
			// 括号匹配但内部不是时间戳，按普通文本处理
		}
		if current == nil {
			preambleLines = append(preambleLines, line)
			continue
		}
		current.Text = current.Text + "\n" + line
	}
	if current != nil {
		entries = append(entries, *current)
	}

	preamble := strings.TrimRight(strings.Join(preambleLines, "\n"), " \t\r\n")
	return ParsedNotes{Preamble: preamble, Entries: entries}
}
