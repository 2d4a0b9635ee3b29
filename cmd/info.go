package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/zooyer/dxf"
	"github.com/zooyer/dxf/entities"
	"github.com/zooyer/dxf/utils"
)

var formatFlag string

type layerInfo struct {
	Name     string `json:"name" yaml:"name"`
	Color    string `json:"color" yaml:"color"`
	Hidden   bool   `json:"hidden" yaml:"hidden"`
	LineType string `json:"line_type,omitempty" yaml:"line_type,omitempty"`
}

type summary struct {
	File      string         `json:"file" yaml:"file"`
	Size      string         `json:"size" yaml:"size"`
	Version   string         `json:"version,omitempty" yaml:"version,omitempty"`
	Entities  map[string]int `json:"entities" yaml:"entities"`
	Layers    []layerInfo    `json:"layers" yaml:"layers"`
	LineTypes []string       `json:"line_types" yaml:"line_types"`
	Blocks    []string       `json:"blocks" yaml:"blocks"`
	Extents   []float64      `json:"extents,omitempty" yaml:"extents,omitempty"`
	Closed    int            `json:"closed_polylines" yaml:"closed_polylines"`
}

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Print a summary of a DXF drawing",
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

		var size int64
		if st, err := os.Stat(filename); err == nil {
			size = st.Size()
		}

		format := cfg.Output.Format
		if formatFlag != "" {
			format = formatFlag
		}
		return writeSummary(cmd.OutOrStdout(), summarize(filename, size, doc, cfg.BBox.Epsilon), format)
	},
}

func init() {
	infoCmd.Flags().StringVarP(&formatFlag, "format", "f", "", "output format: text, json or yaml")
}

func summarize(filename string, size int64, doc *dxf.Document, epsilon float64) summary {
	s := summary{
		File:      filename,
		Size:      humanize.Bytes(uint64(size)),
		Entities:  make(map[string]int),
		Layers:    []layerInfo{},
		LineTypes: []string{},
		Blocks:    []string{},
	}
	s.Version, _ = doc.Header.String("$ACADVER")

	for _, e := range doc.Entities {
		s.Entities[string(e.Type())]++
		if isClosed(e, epsilon) {
			s.Closed++
		}
	}

	if doc.Tables != nil {
		for _, l := range doc.Tables.Layers {
			s.Layers = append(s.Layers, layerInfo{
				Name:     l.Name,
				Color:    fmt.Sprintf("#%06X", int(l.Color)),
				Hidden:   l.Hidden,
				LineType: l.LineType,
			})
		}
		for name := range doc.Tables.LineTypes {
			s.LineTypes = append(s.LineTypes, name)
		}
	}
	sort.Slice(s.Layers, func(i, j int) bool { return s.Layers[i].Name < s.Layers[j].Name })
	sort.Strings(s.LineTypes)

	for name := range doc.Blocks {
		s.Blocks = append(s.Blocks, name)
	}
	sort.Strings(s.Blocks)

	if box, ok := utils.DocumentBBox(doc); ok {
		s.Extents = []float64{box.Min.X, box.Min.Y, box.Max.X, box.Max.Y}
	}
	return s
}

func writeSummary(w io.Writer, s summary, format string) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case "yaml":
		out, err := yaml.Marshal(s)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	case "text", "":
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	fmt.Fprintf(w, "文件: %s (%s)\n", s.File, s.Size)
	if s.Version != "" {
		fmt.Fprintf(w, "版本: %s\n", s.Version)
	}
	if len(s.Extents) == 4 {
		fmt.Fprintf(w, "范围: RECTANG %.2f,%.2f %.2f,%.2f\n", s.Extents[0], s.Extents[1], s.Extents[2], s.Extents[3])
	}

	types := make([]string, 0, len(s.Entities))
	for t := range s.Entities {
		types = append(types, t)
	}
	sort.Strings(types)
	fmt.Fprintln(w, "实体:")
	for _, t := range types {
		fmt.Fprintf(w, "    %-12s %d\n", t, s.Entities[t])
	}

	fmt.Fprintf(w, "闭合多段线: %d\n", s.Closed)
	fmt.Fprintf(w, "图层: %d\n", len(s.Layers))
	for _, l := range s.Layers {
		hidden := ""
		if l.Hidden {
			hidden = " (隐藏)"
		}
		fmt.Fprintf(w, "    %s %s%s\n", l.Name, l.Color, hidden)
	}
	fmt.Fprintf(w, "线型: %s\n", strings.Join(s.LineTypes, ", "))
	fmt.Fprintf(w, "块: %d\n", len(s.Blocks))
	return nil
}

// isClosed 带闭合标志，或首尾顶点重合的多段线
func isClosed(e entities.Entity, epsilon float64) bool {
	switch p := e.(type) {
	case *entities.LWPolyline:
		return p.Closed || utils.IsClosedLoop(p.Vertices, epsilon)
	case *entities.Polyline:
		return p.Closed || utils.IsClosedLoop(p.Vertices, epsilon)
	}
	return false
}
