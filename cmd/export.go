package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zooyer/dxf/store"
)

var exportDB string

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export layers, line types, blocks and entities to sqlite",
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

		dsn := exportDB
		if dsn == "" {
			dsn = withExt(filename, ".sqlite")
		}
		s, err := store.NewStore(dsn)
		if err != nil {
			return err
		}
		defer s.Close()

		id, err := s.SaveDocument(cmd.Context(), filepath.Base(filename), doc)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "导出 %s → %s (document %d)\n", filename, dsn, id)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportDB, "db", "", "sqlite database (default: <file>.sqlite)")
}
