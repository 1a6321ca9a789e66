package global

import (
	"github.com/haierkeys/note-timeline-codec/pkg/fileurl"
)

var (
	// 程序执行目录
	ROOT string
	Name string = "Note Timeline Codec"
)

func init() {

	filename := fileurl.GetExePath()
	ROOT = filename + "/"

}
