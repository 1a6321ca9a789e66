package cmd

import (
	"fmt"

	"github.com/haierkeys/note-timeline-codec/global"
	"github.com/haierkeys/note-timeline-codec/pkg/diff"
	"github.com/haierkeys/note-timeline-codec/pkg/logger"
	"github.com/haierkeys/note-timeline-codec/pkg/notes"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type normalizeFlags struct {
	file      string // Stored notes file // 存储笔记文件
	showDiff  bool   // Print migration diff // 打印迁移差异
	writeBack bool   // Rewrite the file in place // 原地改写文件
}

func init() {
	normalizeEnv := new(normalizeFlags)

	var normalizeCommand = &cobra.Command{
		Use:   "normalize [-f file] [--diff] [--write]",
		Short: "Re-encode a stored notes string into the canonical format",
		Long: "Decodes a stored notes string (canonical or legacy bracketed lines) and re-encodes it " +
			"into the canonical structured format. This is the one-way legacy migration: the legacy " +
			"line format is accepted on input only and never emitted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := setup(); err != nil {
				return err
			}
			if normalizeEnv.writeBack && normalizeEnv.file == "" {
				return errors.New("--write requires --file")
			}

			raw, err := readStored(normalizeEnv.file)
			if err != nil {
				return err
			}

			encoded := notes.Encode(notes.Decode(raw))
			global.Log().Info("stored notes normalized",
				zap.String(logger.FieldFile, normalizeEnv.file),
				zap.Int(logger.FieldSize, len(encoded)))

			if normalizeEnv.showDiff {
				if diff.HasChanges(raw, encoded) {
					fmt.Println(diff.Render(raw, encoded))
				} else {
					fmt.Println("already canonical")
				}
			}

			if normalizeEnv.writeBack {
				return writeStored(normalizeEnv.file, encoded)
			}
			if !normalizeEnv.showDiff {
				fmt.Println(encoded)
			}
			return nil
		},
	}

	normalizeCommand.Flags().StringVarP(&normalizeEnv.file, "file", "f", "", "stored notes file, stdin when omitted // 存储笔记文件，缺省时读取标准输入")
	normalizeCommand.Flags().BoolVar(&normalizeEnv.showDiff, "diff", false, "print the migration diff // 打印迁移差异")
	normalizeCommand.Flags().BoolVar(&normalizeEnv.writeBack, "write", false, "rewrite the file in place // 原地改写文件")

	rootCmd.AddCommand(normalizeCommand)
}
