package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	cases := map[int]Kind{
		-1:   KindString,
		0:    KindString,
		1:    KindString,
		6:    KindString,
		8:    KindString,
		9:    KindString,
		10:   KindFloat,
		40:   KindFloat,
		59:   KindFloat,
		62:   KindInt,
		70:   KindInt,
		90:   KindInt,
		100:  KindString,
		110:  KindFloat,
		149:  KindFloat,
		150:  KindUnknown,
		160:  KindInt,
		180:  KindUnknown,
		210:  KindFloat,
		240:  KindUnknown,
		270:  KindInt,
		290:  KindBool,
		299:  KindBool,
		300:  KindString,
		330:  KindString,
		370:  KindInt,
		390:  KindString,
		400:  KindInt,
		410:  KindString,
		420:  KindInt,
		430:  KindString,
		440:  KindInt,
		460:  KindFloat,
		470:  KindString,
		481:  KindString,
		482:  KindUnknown,
		999:  KindString,
		1000: KindString,
		1010: KindFloat,
		1060: KindInt,
		1071: KindInt,
		1072: KindUnknown,
	}
	for code, kind := range cases {
		assert.Equal(t, kind, KindOf(code), "code %d", code)
	}
}

func TestParseGroupValue_Types(t *testing.T) {
	cases := []struct {
		code int
		raw  string
		want any
	}{
		{0, "LINE", "LINE"},
		{1, " hello", " hello"},
		{6, "DASHED", "DASHED"},
		{8, "0", "0"},
		{40, "2.5", 2.5},
		{40, "  -1e3 ", -1000.0},
		{62, "  7", 7},
		{62, "-3", -3},
		{70, "1.0", 1},
		{90, "4", 4},
		{210, "1", 1.0},
		{290, "0", false},
		{290, "1", true},
		{150, "whatever", "whatever"},
	}
	for _, c := range cases {
		got, err := ParseGroupValue(c.code, c.raw)
		require.NoError(t, err, "code %d", c.code)
		assert.Equal(t, c.want, got, "code %d", c.code)
	}
}

func TestParseGroupValue_Bool(t *testing.T) {
	_, err := ParseGroupValue(291, "true")
	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Contains(t, err.Error(), "291")
}

func TestParseGroupValue_MalformedNumber(t *testing.T) {
	v, err := ParseGroupValue(10, "x")
	assert.True(t, errors.Is(err, ErrMalformedNumber))
	assert.Equal(t, 0.0, v)

	v, err = ParseGroupValue(70, "")
	assert.True(t, errors.Is(err, ErrMalformedNumber))
	assert.Equal(t, 0, v)
}

func TestTag_Accessors(t *testing.T) {
	assert.Equal(t, 3.0, Tag{Code: 62, Value: 3}.AsFloat())
	assert.Equal(t, 2, Tag{Code: 40, Value: 2.9}.AsInt())
	assert.True(t, Tag{Code: 290, Value: true}.AsBool())
	assert.Equal(t, "1.5", Tag{Code: 40, Value: 1.5}.AsString())
	assert.True(t, Tag{Code: 0, Value: " endsec "}.Is(0, "ENDSEC"))
	assert.False(t, Tag{Code: 2, Value: "ENDSEC"}.Is(0, "ENDSEC"))
	assert.Equal(t, "0:LINE", Tag{Code: 0, Value: "LINE"}.String())
}
