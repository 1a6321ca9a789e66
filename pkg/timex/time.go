// Package timex provides display-format timestamp parsing and formatting
// Package timex 提供展示格式时间戳的解析与格式化
package timex

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Display timestamps are timezone-naive wall-clock values.
// They are pinned to UTC so that instant arithmetic and key formatting
// never pick up a host timezone offset.
// 展示时间戳是无时区的挂钟时间，统一固定到 UTC，
// 避免时刻运算和键格式化受主机时区影响。

// displayRegex matches "H:MM<am|pm> - Mon D, YYYY"
// Group 1: hour, Group 2: minute, Group 3: meridiem,
// Group 4: month token (3+ letters), Group 5: day, Group 6: year
// displayRegex 匹配 "H:MM<am|pm> - Mon D, YYYY" 格式
var displayRegex = regexp.MustCompile(`(?i)^\s*(\d{1,2}):(\d{2})\s*(am|pm)\s*-\s*([a-z]{3,})\s+(\d{1,2}),\s*(\d{4})\s*$`)

// monthsByPrefix resolves the lowercase 3-letter prefix of a month token
// monthsByPrefix 通过月份标记的小写三字母前缀解析月份
var monthsByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// monthNames full lowercase English month names, used to reject tokens
// that share a valid prefix but are not a prefix of the month themselves
// monthNames 小写英文月份全名，用于拒绝仅前三字母合法的无效标记
var monthNames = map[time.Month]string{
	time.January: "january", time.February: "february", time.March: "march",
	time.April: "april", time.May: "may", time.June: "june",
	time.July: "july", time.August: "august", time.September: "september",
	time.October: "october", time.November: "november", time.December: "december",
}

// ParseDisplay parses a human-readable timestamp of the form
// "H:MM<am|pm> - Mon D, YYYY" into a minute-resolution instant.
// The second return value reports whether the input matched; no error
// is ever produced for unparsable input.
// ParseDisplay 将 "H:MM<am|pm> - Mon D, YYYY" 形式的可读时间戳
// 解析为分钟精度的时刻。第二个返回值表示是否匹配成功，
// 无法解析的输入不会产生 error。
func ParseDisplay(text string) (time.Time, bool) {
	m := displayRegex.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[5])
	year, _ := strconv.Atoi(m[6])

	if minute > 59 || hour < 1 || hour > 12 || day < 1 || day > 31 || year < 1970 || year > 9999 {
		return time.Time{}, false
	}

	month, ok := resolveMonth(m[4])
	if !ok {
		return time.Time{}, false
	}

	// 12-hour to 24-hour: 12am -> 0, 12pm -> 12
	// 12 小时制转 24 小时制：12am -> 0，12pm -> 12
	hour = hour % 12
	if strings.EqualFold(m[3], "pm") {
		hour += 12
	}

	t := time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
	// time.Date normalizes overflowing days (e.g. Feb 30) instead of
	// reporting them; treat a normalized date as no match
	// time.Date 会把溢出的日期（如 2 月 30 日）归一化而不是报错，
	// 归一化过的日期按不匹配处理
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return time.Time{}, false
	}

	return t, true
}

// resolveMonth resolves a month token to a month via its lowercase
// 3-letter prefix; the whole token must remain a prefix of the month name
// resolveMonth 通过小写三字母前缀解析月份标记，
// 整个标记必须仍是月份全名的前缀
func resolveMonth(token string) (time.Month, bool) {
	lower := strings.ToLower(token)
	if len(lower) < 3 {
		return 0, false
	}
	month, ok := monthsByPrefix[lower[:3]]
	if !ok {
		return 0, false
	}
	if !strings.HasPrefix(monthNames[month], lower) {
		return 0, false
	}
	return month, true
}

// FormatDisplay renders an instant as "9:05pm - Jan 5, 2024":
// 12-hour clock without a leading zero, 2-digit minute, lowercase
// meridiem, 3-letter month. Only ParseDisplay(FormatDisplay(t)) == t is
// guaranteed, not byte-identity with every accepted input variant.
// FormatDisplay 将时刻渲染为 "9:05pm - Jan 5, 2024" 的形式。
// 仅保证 ParseDisplay(FormatDisplay(t)) == t，
// 不保证与所有可接受的输入变体逐字节一致。
func FormatDisplay(t time.Time) string {
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	meridiem := "am"
	if t.Hour() >= 12 {
		meridiem = "pm"
	}
	month := t.Month().String()[:3]

	var b strings.Builder
	b.WriteString(strconv.Itoa(hour))
	b.WriteString(":")
	if t.Minute() < 10 {
		b.WriteString("0")
	}
	b.WriteString(strconv.Itoa(t.Minute()))
	b.WriteString(meridiem)
	b.WriteString(" - ")
	b.WriteString(month)
	b.WriteString(" ")
	b.WriteString(strconv.Itoa(t.Day()))
	b.WriteString(", ")
	b.WriteString(strconv.Itoa(t.Year()))
	return b.String()
}
