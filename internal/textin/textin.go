// Package textin reads piped standard input and normalizes its encoding.
//
// Shell pipelines on Windows consoles often deliver GB18030, UTF-16 or
// Windows-1252 bytes rather than UTF-8. Decode picks the first match of:
//  1. UTF-8 BOM (stripped)
//  2. UTF-16 LE/BE BOM
//  3. UTF-16 without BOM, guessed from NUL bytes on odd or even positions
//  4. valid UTF-8
//  5. bytes that decode as GB18030 without replacement characters
//  6. Windows-1252
package textin

import (
	"bytes"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"

	clawerrors "github.com/openclaw-cn/claw/internal/errors"
)

// Encoding names reported by Detect.
const (
	UTF8        = "utf-8"
	UTF8BOM     = "utf-8-bom"
	UTF16LE     = "utf-16le"
	UTF16BE     = "utf-16be"
	GB18030     = "gb18030"
	Windows1252 = "windows-1252"
)

// nulPercent is the share of NUL bytes on one parity that marks UTF-16.
const nulPercent = 30

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// NoStdinMessage is shown when "-" is given but nothing is piped.
const NoStdinMessage = `No stdin input. Use: echo "content" | claw forum ...`

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// ReadPiped reads all of r and decodes it. isTTY must report whether r is
// an interactive terminal; reading from one is refused.
func ReadPiped(r io.Reader, isTTY bool) (string, error) {
	if isTTY {
		return "", clawerrors.New(clawerrors.CodeInputNoStdin, NoStdinMessage)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", clawerrors.Wrap(clawerrors.CodeIOReadError, "reading stdin", err)
	}
	text, _, err := Decode(data)
	return text, err
}

// Detect returns the encoding name Decode would use for data.
func Detect(data []byte) string {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return UTF8BOM
	case bytes.HasPrefix(data, bomUTF16LE):
		return UTF16LE
	case bytes.HasPrefix(data, bomUTF16BE):
		return UTF16BE
	}

	// ASCII in UTF-16 is also valid UTF-8, so the NUL check comes first.
	if enc := guessUTF16(data); enc != "" {
		return enc
	}
	if utf8.Valid(data) {
		return UTF8
	}
	if decodesCleanly(simplifiedchinese.GB18030, data) {
		return GB18030
	}
	return Windows1252
}

// Decode converts data to UTF-8, trims surrounding whitespace and reports
// the encoding it used.
func Decode(data []byte) (string, string, error) {
	name := Detect(data)

	var (
		text string
		err  error
	)
	switch name {
	case UTF8:
		text = string(data)
	case UTF8BOM:
		text = string(data[len(bomUTF8):])
	case UTF16LE:
		text, err = decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), bytes.TrimPrefix(data, bomUTF16LE))
	case UTF16BE:
		text, err = decodeWith(unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), bytes.TrimPrefix(data, bomUTF16BE))
	case GB18030:
		text, err = decodeWith(simplifiedchinese.GB18030, data)
	default:
		text, err = decodeWith(charmap.Windows1252, data)
	}
	if err != nil {
		return "", name, clawerrors.Wrapf(clawerrors.CodeInputInvalid, err, "decoding stdin as %s", name)
	}
	return strings.TrimSpace(text), name, nil
}

func decodeWith(enc encoding.Encoding, data []byte) (string, error) {
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// decodesCleanly reports whether data decodes without replacement runes.
func decodesCleanly(enc encoding.Encoding, data []byte) bool {
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return false
	}
	return !bytes.ContainsRune(out, utf8.RuneError)
}

// nulHeavy reports whether n of pairs is at least nulPercent, without
// rounding the cutoff down.
func nulHeavy(n, pairs int) bool {
	return n*100 >= pairs*nulPercent
}

// guessUTF16 looks for the NUL pattern of mostly-ASCII UTF-16 text:
// LE puts the zero byte second, BE first.
func guessUTF16(data []byte) string {
	pairs := len(data) / 2
	if pairs == 0 {
		return ""
	}
	var even, odd int
	for i := 0; i+1 < len(data); i += 2 {
		if data[i] == 0 {
			even++
		}
		if data[i+1] == 0 {
			odd++
		}
	}
	switch {
	case nulHeavy(odd, pairs) && odd > even:
		return UTF16LE
	case nulHeavy(even, pairs) && even > odd:
		return UTF16BE
	}
	return ""
}
