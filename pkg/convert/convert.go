package convert

import (
	"encoding/json"
	"strconv"

	"github.com/bytedance/sonic"
)

type StrTo string

func (s StrTo) String() string {
	return string(s)
}

func (s StrTo) Int() (int, error) {
	v, err := strconv.Atoi(s.String())
	return v, err
}

func (s StrTo) MustInt() int {
	v, _ := s.Int()
	return v
}

func (s StrTo) Int64() (int64, error) {
	v, err := strconv.ParseInt(s.String(), 10, 64)
	return v, err
}

func (s StrTo) MustInt64() int64 {
	v, _ := s.Int64()
	return v
}

// ValueToString coerces a dynamically typed value from structured parsing
// to text: nil becomes the empty string, strings pass through, numbers keep
// their literal form, everything else is re-marshaled to JSON text
// ValueToString 将结构化解析得到的动态类型值统一转换为文本：
// nil 转为空字符串，字符串原样返回，数字保留字面形式，
// 其余类型重新序列化为 JSON 文本
func ValueToString(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case json.Number:
		return value.String()
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(value, 10)
	case bool:
		return strconv.FormatBool(value)
	default:
		str, err := sonic.MarshalString(value)
		if err != nil {
			return ""
		}
		return str
	}
}
