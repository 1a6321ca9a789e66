package cmd

import (
	"fmt"
	"strings"

	"github.com/haierkeys/note-timeline-codec/global"
	"github.com/haierkeys/note-timeline-codec/pkg/logger"
	"github.com/haierkeys/note-timeline-codec/pkg/notes"
	"github.com/haierkeys/note-timeline-codec/pkg/timex"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type decodeFlags struct {
	file   string // Stored notes file, stdin when empty // 存储笔记文件，为空时读取标准输入
	format string // Output format // 输出格式
}

func init() {
	decodeEnv := new(decodeFlags)

	var decodeCommand = &cobra.Command{
		Use:   "decode [-f file] [--format json|text]",
		Short: "Decode a stored notes string into timestamped entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			if decodeEnv.format == "" {
				decodeEnv.format = cfg.Output.Format
			}

			raw, err := readStored(decodeEnv.file)
			if err != nil {
				return err
			}

			parsed := notes.Decode(raw)
			if global.Log().Core().Enabled(zap.DebugLevel) {
				global.Dump(parsed)
			}
			global.Log().Info("stored notes decoded",
				zap.String(logger.FieldFile, decodeEnv.file),
				zap.Int(logger.FieldSize, len(raw)),
				zap.Int(logger.FieldEntries, len(parsed.Entries)))

			out, err := renderParsed(parsed, decodeEnv.format)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}

	decodeCommand.Flags().StringVarP(&decodeEnv.file, "file", "f", "", "stored notes file, stdin when omitted // 存储笔记文件，缺省时读取标准输入")
	decodeCommand.Flags().StringVar(&decodeEnv.format, "format", "", "output format: json or text // 输出格式")

	rootCmd.AddCommand(decodeCommand)
}

// renderParsed renders a decoded value either as indented JSON or as
// readable "[<display timestamp>] text" lines
// renderParsed 将解码结果渲染为缩进 JSON 或可读的
// "[<展示时间戳>] 文本" 行
func renderParsed(parsed notes.ParsedNotes, format string) (string, error) {
	if format == "json" {
		out, err := sonic.MarshalIndent(parsed, "", "  ")
		if err != nil {
			return "", err
		}
		return string(out), nil
	}

	var lines []string
	if parsed.Preamble != "" {
		lines = append(lines, parsed.Preamble)
	}
	for _, entry := range parsed.Entries {
		lines = append(lines, "["+timex.FormatDisplay(entry.Time)+"] "+entry.Text)
	}
	return strings.Join(lines, "\n"), nil
}
