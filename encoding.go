package dxf

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// R2007 之前的文件按 $DWGCODEPAGE 指定的代码页保存文本
var codePages = map[string]encoding.Encoding{
	"ANSI_874":  charmap.Windows874,
	"ANSI_932":  japanese.ShiftJIS,
	"ANSI_936":  simplifiedchinese.GBK,
	"ANSI_949":  korean.EUCKR,
	"ANSI_950":  traditionalchinese.Big5,
	"ANSI_1250": charmap.Windows1250,
	"ANSI_1251": charmap.Windows1251,
	"ANSI_1252": charmap.Windows1252,
	"ANSI_1253": charmap.Windows1253,
	"ANSI_1254": charmap.Windows1254,
	"ANSI_1255": charmap.Windows1255,
	"ANSI_1256": charmap.Windows1256,
	"ANSI_1257": charmap.Windows1257,
	"ANSI_1258": charmap.Windows1258,
	"DOS437":    charmap.CodePage437,
	"DOS850":    charmap.CodePage850,
	"DOS866":    charmap.CodePage866,
	"ISO8859-1": charmap.ISO8859_1,
}

// decode 有效的 UTF-8 直接返回；否则按指定或文件声明的代码页解码。
// 文件声明了未知代码页时按 Windows-1252 处理。
func decode(data []byte, codePage string) (string, error) {
	enc, ok := codePages[strings.ToUpper(codePage)]
	if codePage != "" && !ok {
		return "", fmt.Errorf("dxf: unsupported code page %q", codePage)
	}

	if codePage == "" {
		if utf8.Valid(data) {
			return string(data), nil
		}
		codePage = sniffCodePage(data)
		if enc, ok = codePages[strings.ToUpper(codePage)]; !ok {
			codePage, enc = "ANSI_1252", charmap.Windows1252
		}
	}

	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("dxf: decoding %s: %w", codePage, err)
	}
	return string(out), nil
}

// sniffCodePage 在原始字节中查找 $DWGCODEPAGE 的值（其后第二行）
func sniffCodePage(data []byte) string {
	i := bytes.Index(data, []byte("$DWGCODEPAGE"))
	if i < 0 {
		return ""
	}
	rest := data[i:]
	for skip := 0; skip < 2; skip++ {
		nl := bytes.IndexByte(rest, '\n')
		if nl < 0 {
			return ""
		}
		rest = rest[nl+1:]
	}
	if nl := bytes.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	}
	return strings.TrimSpace(string(rest))
}
