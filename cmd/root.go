package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"
	"github.com/zooyer/golib/xos"

	"github.com/zooyer/dxf"
	"github.com/zooyer/dxf/config"
)

var (
	configPath string
	codePage   string
	logLevel   string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "dxf",
	Short: "Inspect DXF drawings",
	Long: `dxf reads a DXF drawing (header, layers, line types, blocks and entities)
and prints summaries, bounding boxes, CSV listings or a sqlite export.
When no file is given a file picker is shown.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
		if logLevel != "" {
			cfg.Log.Level = logLevel
		}
		if codePage != "" {
			cfg.Input.CodePage = codePage
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultFile, "config file")
	rootCmd.PersistentFlags().StringVar(&codePage, "code-page", "", "code page of non UTF-8 files, e.g. ANSI_936")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(bboxCmd)
	rootCmd.AddCommand(csvCmd)
	rootCmd.AddCommand(exportCmd)
}

// inputFile 取命令行参数；没有参数时弹出文件选择框（双击运行的场景），
// 此时退出前暂停，方便查看输出。
func inputFile(args []string) (string, func(), error) {
	if len(args) > 0 {
		return args[0], func() {}, nil
	}

	filename, err := zenity.SelectFile(
		zenity.Title("选择 DXF 文件"),
		zenity.FileFilters{
			{Name: "DXF files", Patterns: []string{"*.dxf", "*.DXF"}},
		},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", nil, errors.New("no input file")
	}
	if err != nil {
		return "", nil, err
	}
	return filename, xos.PauseExit, nil
}

// openDocument 按配置解析文件
func openDocument(filename string) (*dxf.Document, error) {
	doc, err := dxf.Open(filename,
		dxf.WithLogger(cfg.Logger(os.Stderr)),
		dxf.WithCodePage(cfg.Input.CodePage),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return doc, nil
}

func withExt(filename, ext string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + ext
}
