package cmd

import (
	"fmt"
	"time"

	"github.com/haierkeys/note-timeline-codec/global"
	"github.com/haierkeys/note-timeline-codec/pkg/logger"
	"github.com/haierkeys/note-timeline-codec/pkg/notes"
	"github.com/haierkeys/note-timeline-codec/pkg/timex"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type entryFlags struct {
	file  string // Stored notes file // 存储笔记文件
	index int    // Entry index // 条目下标
	text  string // Replacement text // 替换文本
	at    string // Display-format timestamp // 展示格式时间戳
}

func init() {
	entryEnv := new(entryFlags)

	var entryCommand = &cobra.Command{
		Use:   "entry",
		Short: "Edit timestamped entries of a stored notes file",
	}
	entryCommand.PersistentFlags().StringVarP(&entryEnv.file, "file", "f", "", "stored notes file // 存储笔记文件")
	entryCommand.MarkPersistentFlagRequired("file")

	var appendCommand = &cobra.Command{
		Use:   "append [--at \"H:MMpm - Mon D, YYYY\"]",
		Short: "Append a new empty entry and report the focus index",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStoredNotes(entryEnv.file, func(parsed notes.ParsedNotes) (notes.ParsedNotes, error) {
				at := time.Now()
				if entryEnv.at != "" {
					t, ok := timex.ParseDisplay(entryEnv.at)
					if !ok {
						return parsed, errors.Errorf("unparsable timestamp %q", entryEnv.at)
					}
					at = t
				}
				next, focus := parsed.Append(at)
				global.Log().Info("entry appended", zap.Int(logger.FieldFocus, focus))
				fmt.Printf("appended entry, focus index %d\n", focus)
				return next, nil
			})
		},
	}
	appendCommand.Flags().StringVar(&entryEnv.at, "at", "", "entry timestamp, current minute when omitted // 条目时间戳，缺省为当前分钟")

	var setTextCommand = &cobra.Command{
		Use:   "set-text -i index --text text",
		Short: "Replace the text of an entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStoredNotes(entryEnv.file, func(parsed notes.ParsedNotes) (notes.ParsedNotes, error) {
				next, err := parsed.SetText(entryEnv.index, entryEnv.text)
				if err != nil {
					return parsed, err
				}
				global.Log().Info("entry text replaced", zap.Int(logger.FieldIndex, entryEnv.index))
				return next, nil
			})
		},
	}
	setTextCommand.Flags().IntVarP(&entryEnv.index, "index", "i", 0, "entry index // 条目下标")
	setTextCommand.Flags().StringVar(&entryEnv.text, "text", "", "replacement text // 替换文本")
	setTextCommand.MarkFlagRequired("index")
	setTextCommand.MarkFlagRequired("text")

	var retimeCommand = &cobra.Command{
		Use:   "retime -i index --at \"H:MMpm - Mon D, YYYY\"",
		Short: "Replace the timestamp of an entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStoredNotes(entryEnv.file, func(parsed notes.ParsedNotes) (notes.ParsedNotes, error) {
				// malformed timestamps are rejected here, before the
				// edit layer is ever reached
				// 格式错误的时间戳在此拒绝，不会进入编辑层
				t, ok := timex.ParseDisplay(entryEnv.at)
				if !ok {
					return parsed, errors.Errorf("unparsable timestamp %q", entryEnv.at)
				}
				next, err := parsed.Retime(entryEnv.index, t)
				if err != nil {
					return parsed, err
				}
				global.Log().Info("entry retimed",
					zap.Int(logger.FieldIndex, entryEnv.index),
					zap.String(logger.FieldTimestamp, entryEnv.at))
				return next, nil
			})
		},
	}
	retimeCommand.Flags().IntVarP(&entryEnv.index, "index", "i", 0, "entry index // 条目下标")
	retimeCommand.Flags().StringVar(&entryEnv.at, "at", "", "replacement timestamp // 替换时间戳")
	retimeCommand.MarkFlagRequired("index")
	retimeCommand.MarkFlagRequired("at")

	var deleteCommand = &cobra.Command{
		Use:   "delete -i index",
		Short: "Delete an entry, folding its text into its neighbor",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStoredNotes(entryEnv.file, func(parsed notes.ParsedNotes) (notes.ParsedNotes, error) {
				next, err := parsed.Delete(entryEnv.index)
				if err != nil {
					return parsed, err
				}
				global.Log().Info("entry deleted", zap.Int(logger.FieldIndex, entryEnv.index))
				return next, nil
			})
		},
	}
	deleteCommand.Flags().IntVarP(&entryEnv.index, "index", "i", 0, "entry index // 条目下标")
	deleteCommand.MarkFlagRequired("index")

	entryCommand.AddCommand(appendCommand, setTextCommand, retimeCommand, deleteCommand)
	rootCmd.AddCommand(entryCommand)
}

// withStoredNotes decodes the stored file, applies one edit transform and
// re-encodes the result back to the file
// withStoredNotes 解码存储文件，应用一次编辑变换，
// 并将结果重新编码写回文件
func withStoredNotes(file string, transform func(notes.ParsedNotes) (notes.ParsedNotes, error)) error {
	if _, err := setup(); err != nil {
		return err
	}

	raw, err := readStored(file)
	if err != nil {
		return err
	}

	next, err := transform(notes.Decode(raw))
	if err != nil {
		return err
	}

	return writeStored(file, notes.Encode(next))
}
