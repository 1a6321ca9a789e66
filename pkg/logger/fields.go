package logger

// 统一的日志字段命名常量
// 用于确保整个项目中日志字段命名的一致性，便于日志查询和分析
const (
	// FieldFile 笔记文件路径字段
	FieldFile = "file"

	// FieldFormat 输出格式字段
	FieldFormat = "format"

	// FieldEntries 条目数量字段
	FieldEntries = "entries"

	// FieldIndex 条目下标字段
	FieldIndex = "index"

	// FieldFocus 焦点下标字段
	FieldFocus = "focus"

	// FieldTimestamp 展示格式时间戳字段
	FieldTimestamp = "timestamp"

	// FieldSize 存储字符串长度字段
	FieldSize = "size"

	// FieldError 错误信息字段
	FieldError = "error"
)
