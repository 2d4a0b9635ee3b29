package dxf

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"

	"github.com/zooyer/dxf/core"
	"github.com/zooyer/dxf/entities"
)

// dxf 把组码/值依次拼成文本
func dxf(groups ...string) string {
	return strings.Join(groups, "\n") + "\n"
}

func section(name string, body ...string) []string {
	out := []string{"0", "SECTION", "2", name}
	out = append(out, body...)
	return append(out, "0", "ENDSEC")
}

func join(parts ...[]string) string {
	var all []string
	for _, p := range parts {
		all = append(all, p...)
	}
	all = append(all, "0", "EOF")
	return dxf(all...)
}

func capture() (*bytes.Buffer, Option) {
	var buf bytes.Buffer
	return &buf, WithLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))
}

func TestOpen_Minimal(t *testing.T) {
	doc, err := Open("testdata/minimal.dxf")
	require.NoError(t, err)

	version, ok := doc.Header.String("$ACADVER")
	require.True(t, ok)
	assert.Equal(t, "AC1015", version)
	assert.Equal(t, "AC1015", doc.Header["$ACADVER"])

	units, ok := doc.Header.Int("$INSUNITS")
	require.True(t, ok)
	assert.Equal(t, 4, units)

	ext, ok := doc.Header.Extents()
	require.True(t, ok)
	assert.Equal(t, core.Point{X: 10}, ext.Max)

	require.NotNil(t, doc.Tables)
	layer, ok := doc.Layer("0")
	require.True(t, ok)
	assert.Equal(t, core.ACI(7), layer.Color)
	assert.False(t, layer.Hidden)
	assert.Equal(t, "CONTINUOUS", layer.LineType)

	ltype, ok := doc.LineType("CONTINUOUS")
	require.True(t, ok)
	assert.Equal(t, "Solid line", ltype.Description)
	assert.Nil(t, ltype.Pattern)

	require.Len(t, doc.Entities, 1)
	line, ok := doc.Entities[0].(*entities.Line)
	require.True(t, ok)
	assert.Equal(t, entities.TypeLine, line.Type())
	assert.Equal(t, "0", line.Layer())
	if diff := cmp.Diff([]core.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}, line.Vertices); diff != "" {
		t.Errorf("vertices mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_TooShort(t *testing.T) {
	_, err := Parse("")
	assert.ErrorIs(t, err, ErrTooShort)

	_, err = Parse("0")
	assert.ErrorIs(t, err, ErrTooShort)
}

func TestParse_UnexpectedEOF(t *testing.T) {
	_, err := Parse(dxf("0", "SECTION", "2", "ENTITIES", "0", "LINE", "10", "1"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrUnexpectedEOF))
}

func TestParse_TypeMismatch(t *testing.T) {
	_, err := Parse(join(section("ENTITIES", "0", "LINE", "290", "maybe")))
	var mismatch *core.TypeMismatchError
	assert.ErrorAs(t, err, &mismatch)
}

func TestParse_HeaderFlushOnEndsec(t *testing.T) {
	doc, err := Parse(join(section("HEADER",
		"9", "$ACADVER", "1", "AC1027",
		"9", "$INSBASE", "10", "1", "20", "2", "30", "3",
		"9", "$LIMMAX", "10", "420", "20", "297",
		"9", "$LTSCALE", "40", "2.5",
	)))
	require.NoError(t, err)

	want := Header{
		"$ACADVER": "AC1027",
		"$INSBASE": core.Point{X: 1, Y: 2, Z: 3},
		"$LIMMAX":  core.Point{X: 420, Y: 297},
		"$LTSCALE": 2.5,
	}
	if diff := cmp.Diff(want, doc.Header); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, doc.Tables, "没有 TABLES 段")
	_, ok := doc.Layer("0")
	assert.False(t, ok)
}

func TestParse_LayerHiddenColor(t *testing.T) {
	doc, err := Parse(join(section("TABLES",
		"0", "TABLE", "2", "LAYER", "70", "2",
		"0", "LAYER", "2", "OFF", "62", "-3",
		"0", "LAYER", "2", "ON", "62", "3", "70", "1",
		"0", "LAYER", "2", "TRUE", "62", "1", "420", "65280",
		"0", "ENDTAB",
	)))
	require.NoError(t, err)

	off, ok := doc.Layer("OFF")
	require.True(t, ok)
	assert.True(t, off.Hidden)
	assert.Equal(t, core.ACI(3), off.Color)
	assert.Equal(t, 3, off.ColorIndex)

	on, ok := doc.Layer("ON")
	require.True(t, ok)
	assert.False(t, on.Hidden)
	assert.True(t, on.Frozen)
	assert.Equal(t, core.ACI(3), on.Color)

	tc, _ := doc.Layer("TRUE")
	assert.Equal(t, core.Color(0x00FF00), tc.Color)
}

func TestParse_LayerTrueColorBeforeIndex(t *testing.T) {
	doc, err := Parse(join(section("TABLES",
		"0", "TABLE", "2", "LAYER",
		"0", "LAYER", "2", "GREEN", "420", "65280", "62", "1",
		"0", "ENDTAB",
	)))
	require.NoError(t, err)

	layer, ok := doc.Layer("GREEN")
	require.True(t, ok)
	assert.Equal(t, core.Color(0x00FF00), layer.Color, "真彩色优先于索引色")
	assert.Equal(t, 1, layer.ColorIndex)
	assert.False(t, layer.Hidden)
}

func TestParse_LineTypePatternMismatch(t *testing.T) {
	logs, opt := capture()
	doc, err := Parse(join(section("TABLES",
		"0", "TABLE", "2", "LTYPE",
		"0", "LTYPE", "2", "DASHDOT", "3", "__ . __", "73", "4", "40", "2.0",
		"49", "1.0", "74", "0", "49", "-0.5", "74", "0", "49", "0.0", "74", "0",
		"0", "LTYPE", "2", "DASHED", "73", "2", "40", "0.75", "49", "0.5", "49", "-0.25",
		"0", "ENDTAB",
	)), opt)
	require.NoError(t, err)

	dashdot, ok := doc.LineType("DASHDOT")
	require.True(t, ok)
	assert.Equal(t, []float64{1.0, -0.5, 0.0}, dashdot.Pattern)
	assert.Equal(t, 4, dashdot.Elements)
	assert.Equal(t, 2.0, dashdot.PatternLength)
	assert.Contains(t, logs.String(), "lengths do not match on LTYPE pattern")
	assert.Equal(t, 1, strings.Count(logs.String(), "lengths do not match"))

	dashed, _ := doc.LineType("DASHED")
	assert.Equal(t, []float64{0.5, -0.25}, dashed.Pattern)
}

func TestParse_DimStyles(t *testing.T) {
	doc, err := Parse(join(section("TABLES",
		"0", "TABLE", "2", "DIMSTYLE",
		"0", "DIMSTYLE", "2", "iso-25", "40", "100", "44", "1.25", "271", "2",
		"0", "DIMSTYLE", "2", "STANDARD",
		"0", "ENDTAB",
		"0", "TABLE", "2", "VPORT", "0", "VPORT", "2", "*ACTIVE", "0", "ENDTAB",
	)))
	require.NoError(t, err)

	style, ok := doc.DimStyle("ISO-25")
	require.True(t, ok)
	assert.Equal(t, &DimStyle{Name: "ISO-25", Precision: 2, ExLimit: 1.25, Scale: 100}, style)

	std, ok := doc.DimStyle("standard")
	require.True(t, ok)
	assert.Equal(t, 1.0, std.Scale)
}

func TestParse_UnsupportedEntitySkipped(t *testing.T) {
	logs, opt := capture()
	doc, err := Parse(join(section("ENTITIES",
		"0", "LINE", "10", "0", "20", "0", "11", "1", "21", "1",
		"0", "HATCH", "2", "SOLID", "10", "0", "20", "0", "91", "1",
		"0", "LINE", "10", "2", "20", "2", "11", "3", "21", "3",
	)), opt)
	require.NoError(t, err)

	require.Len(t, doc.Entities, 2)
	for _, e := range doc.Entities {
		assert.Equal(t, entities.TypeLine, e.Type())
	}
	assert.Contains(t, logs.String(), "unhandled entity")
	assert.Contains(t, logs.String(), "HATCH")
}

func TestParse_UnknownSectionSkipped(t *testing.T) {
	logs, opt := capture()
	doc, err := Parse(join(
		section("CLASSES", "0", "CLASS", "1", "ACDBDICTIONARYWDFLT", "2", "AcDbDictionaryWithDefault"),
		section("OBJECTS", "0", "DICTIONARY", "5", "C"),
		section("ENTITIES", "0", "POINT", "10", "1", "20", "1"),
	), opt)
	require.NoError(t, err)
	require.Len(t, doc.Entities, 1)
	assert.Contains(t, logs.String(), "skipping section")
	assert.Contains(t, logs.String(), "CLASSES")
}

func TestParse_SectionNameCase(t *testing.T) {
	logs, opt := capture()
	doc, err := Parse(join(
		section("header", "9", "$ACADVER", "1", "AC1015"),
		section("Entities", "0", "POINT", "10", "1", "20", "1"),
	), opt)
	require.NoError(t, err)
	require.Len(t, doc.Entities, 1)
	version, _ := doc.Header.String("$ACADVER")
	assert.Equal(t, "AC1015", version)
	assert.NotContains(t, logs.String(), "skipping section")
}

func TestParse_SectionWithoutName(t *testing.T) {
	logs, opt := capture()
	doc, err := Parse(dxf(
		"0", "SECTION", "9", "oops",
		"0", "SECTION", "2", "ENTITIES",
		"0", "CIRCLE", "10", "0", "20", "0", "40", "5",
		"0", "ENDSEC",
		"0", "EOF",
	), opt)
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "unexpected code after SECTION")
	require.Len(t, doc.Entities, 1)
	assert.Equal(t, 5.0, doc.Entities[0].(*entities.Circle).Radius)
}

func TestParse_SectionFollowedByEOF(t *testing.T) {
	doc, err := Parse(dxf("0", "SECTION", "0", "EOF"))
	require.NoError(t, err)
	assert.Empty(t, doc.Entities)
}

func TestParse_EOFInsideSection(t *testing.T) {
	doc, err := Parse(dxf("0", "SECTION", "2", "ENTITIES", "0", "POINT", "10", "1", "20", "2", "0", "EOF"))
	require.NoError(t, err)
	require.Len(t, doc.Entities, 1)
}

func TestParse_StopsAtEOF(t *testing.T) {
	doc, err := Parse(dxf(
		"0", "EOF",
		"0", "SECTION", "2", "ENTITIES", "0", "POINT", "0", "ENDSEC",
	))
	require.NoError(t, err)
	assert.Empty(t, doc.Entities)
}

func TestParse_Blocks(t *testing.T) {
	logs, opt := capture()
	doc, err := Parse(join(
		section("BLOCKS",
			"0", "BLOCK", "5", "20", "8", "0", "2", "DOOR", "70", "0", "10", "1", "20", "2", "30", "0", "3", "DOOR",
			"0", "LINE", "10", "0", "20", "0", "11", "0", "21", "1",
			"0", "ARC", "10", "0", "20", "0", "40", "1", "50", "0", "51", "90",
			"0", "ENDBLK", "5", "21", "8", "0",
			"0", "BLOCK", "2", "EMPTY",
			"0", "ENDBLK",
			"0", "BLOCK", "5", "99",
			"0", "ENDBLK",
		),
		section("ENTITIES",
			"0", "INSERT", "2", "door", "10", "5", "20", "5",
			"0", "DIMENSION", "70", "0", "42", "1",
		),
	), opt)
	require.NoError(t, err)

	block, ok := doc.Block("DOOR")
	require.True(t, ok)
	assert.Equal(t, "20", block.Handle)
	assert.Equal(t, core.Point{X: 1, Y: 2}, block.Position)
	require.Len(t, block.Entities, 2)
	assert.Equal(t, entities.TypeArc, block.Entities[1].Type())

	empty, ok := doc.Block("EMPTY")
	require.True(t, ok)
	assert.Empty(t, empty.Entities)
	assert.Len(t, doc.Blocks, 2)
	assert.Contains(t, logs.String(), "block is missing a name")

	ins := doc.Entities[0].(*entities.Insert)
	_, ok = doc.Block(ins.BlockName)
	assert.True(t, ok, "块名查找不区分大小写")

	_, ok = doc.Block("MISSING")
	assert.False(t, ok)
	assert.Contains(t, logs.String(), "dimension is missing a block reference")
}

func TestParse_StrayGroupsInEntities(t *testing.T) {
	doc, err := Parse(join(section("ENTITIES",
		"999", "comment",
		"0", "POINT", "10", "1", "20", "2",
	)))
	require.NoError(t, err)
	require.Len(t, doc.Entities, 1)
}

func TestParse_LineEndings(t *testing.T) {
	text := strings.ReplaceAll(join(section("ENTITIES", "0", "POINT", "10", "1", "20", "2")), "\n", "\r\n")
	doc, err := Parse("\ufeff" + text)
	require.NoError(t, err)
	require.Len(t, doc.Entities, 1)
	assert.Equal(t, core.Point{X: 1, Y: 2}, doc.Entities[0].(*entities.Point).Position)
}

func TestLoad_CodePage(t *testing.T) {
	text := join(
		section("HEADER", "9", "$DWGCODEPAGE", "3", "ANSI_936"),
		section("ENTITIES", "0", "TEXT", "10", "0", "20", "0", "1", "门窗"),
	)
	encoded, err := simplifiedchinese.GBK.NewEncoder().String(text)
	require.NoError(t, err)

	doc, err := Load(strings.NewReader(encoded))
	require.NoError(t, err)
	require.Len(t, doc.Entities, 1)
	assert.Equal(t, "门窗", doc.Entities[0].(*entities.Text).Text)

	doc, err = Load(strings.NewReader(encoded), WithCodePage("ansi_936"))
	require.NoError(t, err)
	assert.Equal(t, "门窗", doc.Entities[0].(*entities.Text).Text)

	_, err = Load(strings.NewReader(encoded), WithCodePage("KLINGON"))
	assert.Error(t, err)
}

func TestLoad_Latin1Fallback(t *testing.T) {
	raw := []byte(join(section("ENTITIES", "0", "TEXT", "1", "caf\xe9")))
	doc, err := Load(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "café", doc.Entities[0].(*entities.Text).Text)
}

func TestSniffCodePage(t *testing.T) {
	assert.Equal(t, "ANSI_1252", sniffCodePage([]byte("  9\n$DWGCODEPAGE\n  3\nANSI_1252\n  9\n")))
	assert.Equal(t, "", sniffCodePage([]byte("0\nEOF\n")))
}
