package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zooyer/golib/xos"

	"github.com/zooyer/dxf/utils"
)

const csvHeader = "序号,类型,图层,颜色,句柄,最小X,最小Y,最大X,最大Y\n"

var csvCmd = &cobra.Command{
	Use:   "csv [file]",
	Short: "Write one CSV row per model space entity",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename, done, err := inputFile(args)
		if err != nil {
			return err
		}
		defer done()

		doc, err := openDocument(filename)
		if err != nil {
			return err
		}

		target := cfg.CSV.Path
		if target == "" {
			target = withExt(filename, ".csv")
		}
		if err = os.WriteFile(target, []byte(csvHeader), 0644); err != nil {
			return err
		}

		for i, e := range doc.Entities {
			box := utils.GetEntityBBoxWCS(doc, e)
			line := fmt.Sprintf("%d,%s,%s,#%06X,%s,%.3f,%.3f,%.3f,%.3f\n",
				i+1, e.Type(), e.Layer(), int(utils.ResolveColor(doc, e)), e.Common().Handle,
				box.Min.X, box.Min.Y, box.Max.X, box.Max.Y,
			)
			if box.IsEmpty() {
				line = fmt.Sprintf("%d,%s,%s,#%06X,%s,,,,\n",
					i+1, e.Type(), e.Layer(), int(utils.ResolveColor(doc, e)), e.Common().Handle)
			}
			if err = xos.AppendFile(target, []byte(line), 0644); err != nil {
				return err
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), "写入文件:", target)
		return nil
	},
}
