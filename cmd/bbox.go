package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zooyer/dxf"
	"github.com/zooyer/dxf/core"
	"github.com/zooyer/dxf/entities"
	"github.com/zooyer/dxf/utils"
)

var (
	bboxLayer string
	bboxMerge bool
)

var bboxCmd = &cobra.Command{
	Use:   "bbox [file]",
	Short: "Print bounding boxes of the drawing or of one layer",
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

		out := cmd.OutOrStdout()
		if bboxLayer == "" {
			box, ok := utils.DocumentBBox(doc)
			if !ok {
				return fmt.Errorf("%s: drawing is empty", filename)
			}
			fmt.Fprintln(out, rectang(box))
			return nil
		}

		var boxes []core.BBox
		for _, e := range doc.Entities {
			if e.Layer() == bboxLayer {
				boxes = append(boxes, utils.GetEntityBBoxWCS(doc, e))
			}
		}
		if bboxMerge {
			// 合并散线为矩形
			boxes = utils.MergeBoxes(boxes, cfg.BBox.Gap)
		}

		// 从上到下、从左到右
		sort.Slice(boxes, func(i, j int) bool {
			if boxes[i].Max.Y != boxes[j].Max.Y {
				return boxes[i].Max.Y > boxes[j].Max.Y
			}
			return boxes[i].Min.X < boxes[j].Min.X
		})
		for i, box := range boxes {
			fmt.Fprintf(out, "[%s.%02d] %.1f x %.1f | %s", bboxLayer, i+1, box.Width(), box.Height(), rectang(box))
			if texts := labels(doc, box); len(texts) > 0 {
				fmt.Fprintf(out, " | %s", strings.Join(texts, " "))
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	bboxCmd.Flags().StringVarP(&bboxLayer, "layer", "l", "", "only entities on this layer")
	bboxCmd.Flags().BoolVarP(&bboxMerge, "merge", "m", false, "merge touching boxes (gap from config)")
}

// labels 插入点落在 box 内的单行、多行文字
func labels(doc *dxf.Document, box core.BBox) []string {
	var texts []string
	for _, e := range doc.Entities {
		switch t := e.(type) {
		case *entities.Text:
			if utils.InBox(box, t.StartPoint) {
				texts = append(texts, strings.TrimSpace(t.Text))
			}
		case *entities.MText:
			if utils.InBox(box, t.Position) {
				texts = append(texts, strings.TrimSpace(t.Text))
			}
		}
	}
	return texts
}

func rectang(box core.BBox) string {
	return fmt.Sprintf("RECTANG %.2f,%.2f %.2f,%.2f", box.Min.X, box.Min.Y, box.Max.X, box.Max.Y)
}
