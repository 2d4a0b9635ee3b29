package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/zooyer/dxf"
	"github.com/zooyer/dxf/core"
	"github.com/zooyer/dxf/utils"
)

func minimal(t *testing.T) *dxf.Document {
	t.Helper()
	doc, err := dxf.Open("../testdata/minimal.dxf")
	require.NoError(t, err)
	return doc
}

func TestSummarize(t *testing.T) {
	s := summarize("minimal.dxf", 2048, minimal(t), 1e-6)

	assert.Equal(t, "2.0 kB", s.Size)
	assert.Equal(t, "AC1015", s.Version)
	assert.Equal(t, map[string]int{"LINE": 1}, s.Entities)
	assert.Equal(t, []string{"CONTINUOUS"}, s.LineTypes)
	require.Len(t, s.Layers, 1)
	assert.Equal(t, layerInfo{Name: "0", Color: "#FFFFFF", LineType: "CONTINUOUS"}, s.Layers[0])
	assert.Equal(t, []float64{0, 0, 10, 0}, s.Extents)
	assert.Zero(t, s.Closed)
}

func TestWriteSummary(t *testing.T) {
	s := summarize("minimal.dxf", 10, minimal(t), 1e-6)

	var buf bytes.Buffer
	require.NoError(t, writeSummary(&buf, s, "json"))
	var j summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &j))
	assert.Equal(t, s, j)

	buf.Reset()
	require.NoError(t, writeSummary(&buf, s, "YAML"))
	var y summary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &y))
	assert.Equal(t, s.Entities, y.Entities)
	assert.Equal(t, s.Version, y.Version)

	buf.Reset()
	require.NoError(t, writeSummary(&buf, s, "text"))
	assert.Contains(t, buf.String(), "LINE")
	assert.Contains(t, buf.String(), "RECTANG 0.00,0.00 10.00,0.00")

	assert.Error(t, writeSummary(&buf, s, "xml"))
}

func TestIsClosed(t *testing.T) {
	doc, err := dxf.Parse("0\nSECTION\n2\nENTITIES\n" +
		"0\nLWPOLYLINE\n90\n3\n70\n0\n10\n0\n20\n0\n10\n5\n20\n5\n10\n0.0000001\n20\n0\n" +
		"0\nLWPOLYLINE\n90\n2\n70\n1\n10\n0\n20\n0\n10\n5\n20\n5\n" +
		"0\nLWPOLYLINE\n90\n2\n70\n0\n10\n0\n20\n0\n10\n5\n20\n5\n" +
		"0\nENDSEC\n0\nEOF\n")
	require.NoError(t, err)
	require.Len(t, doc.Entities, 3)

	assert.True(t, isClosed(doc.Entities[0], 1e-6))
	assert.True(t, isClosed(doc.Entities[1], 1e-6))
	assert.False(t, isClosed(doc.Entities[2], 1e-6))
}

func TestRectang(t *testing.T) {
	box, ok := utils.DocumentBBox(minimal(t))
	require.True(t, ok)
	assert.Equal(t, "RECTANG 0.00,0.00 10.00,0.00", rectang(box))
	assert.Equal(t, "minimal.csv", withExt("minimal.dxf", ".csv"))
}

func TestLabels(t *testing.T) {
	doc, err := dxf.Parse("0\nSECTION\n2\nENTITIES\n" +
		"0\nTEXT\n10\n1\n20\n1\n40\n2.5\n1\nW1\n" +
		"0\nMTEXT\n10\n50\n20\n50\n40\n2.5\n1\nW2\n" +
		"0\nENDSEC\n0\nEOF\n")
	require.NoError(t, err)

	box := core.BBox{Max: core.Point{X: 10, Y: 10}}
	assert.Equal(t, []string{"W1"}, labels(doc, box))
	assert.Empty(t, labels(doc, core.BBox{Min: core.Point{X: 100, Y: 100}, Max: core.Point{X: 110, Y: 110}}))
}
