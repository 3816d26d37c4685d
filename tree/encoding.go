package tree

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"

	"github.com/jmgilman/go/testdirs/errors"
)

// Encoding names understood by Scan besides the WHATWG labels accepted by
// golang.org/x/text/encoding/htmlindex (for example "latin1",
// "windows-1252", "utf-16le", "shift_jis").
const (
	// EncodingUTF8 reads files as UTF-8 text. It is the default.
	EncodingUTF8 = "utf-8"
	// EncodingBinary reads files as raw Bytes.
	EncodingBinary = "binary"
	// EncodingBase64 reads files as Text holding their standard base64
	// encoding.
	EncodingBase64 = "base64"
	// EncodingHex reads files as Text holding their lowercase hex encoding.
	EncodingHex = "hex"
)

// EncodingFunc picks the encoding used to read the file at path.
type EncodingFunc func(path string) string

// encodingAliases maps Node-style names htmlindex does not know.
var encodingAliases = map[string]string{
	"utf8":    EncodingUTF8,
	"utf16le": "utf-16le",
	"ucs2":    "utf-16le",
	"ucs-2":   "utf-16le",
	"buffer":  EncodingBinary,
}

// decode turns file data into Content according to the named encoding.
func decode(name string, data []byte) (Content, error) {
	label := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := encodingAliases[label]; ok {
		label = alias
	}

	switch label {
	case "", EncodingUTF8:
		// Invalid sequences are kept as-is so the file round-trips.
		if !utf8.Valid(data) {
			return Bytes(data), nil
		}
		return Text(data), nil
	case EncodingBinary:
		return Bytes(data), nil
	case EncodingBase64:
		return Text(base64.StdEncoding.EncodeToString(data)), nil
	case EncodingHex:
		return Text(hex.EncodeToString(data)), nil
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, errors.Wrapf(err, errors.CodeInvalidInput, "unknown encoding %q", name)
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.CodeInvalidInput, "failed to decode file as %s", name)
	}
	return Text(out), nil
}
