package diff

import "github.com/sergi/go-diff/diffmatchpatch"

// HasChanges reports whether the two stored strings differ
// HasChanges 判断两个存储字符串是否存在差异
func HasChanges(original, updated string) bool {
	return original != updated
}

// Render renders the difference between an original stored string and
// its re-encoded form as colored terminal text
// Render 将原始存储字符串与重新编码结果之间的差异渲染为彩色终端文本
func Render(original, updated string) string {
	dmp := diffmatchpatch.New()

	// 计算 updated 相对于 original 的 diff
	diffs := dmp.DiffMain(original, updated, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	return dmp.DiffPrettyText(diffs)
}
