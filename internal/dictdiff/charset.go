package dictdiff

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Oracle charset ids this module knows how to decode. Unmapped ids fall
// back to UTF-8 passthrough rather than failing the coercion outright —
// an unrecognized charset is far more likely to be a charset this module
// hasn't been taught yet than a genuinely corrupt column.
const (
	CharsetUS7ASCII    uint64 = 1
	CharsetWE8ISO8859P1 uint64 = 31
	CharsetZHS16GBK    uint64 = 852
	CharsetAL32UTF8    uint64 = 873
)

var charsetEncodings = map[uint64]encoding.Encoding{
	CharsetWE8ISO8859P1: charmap.ISO8859_1,
}

// decodeCharset decodes raw after-image bytes under the given Oracle
// charset id, the way pkg/utils/collation.go elsewhere in this lineage
// reaches into golang.org/x/text for locale-aware string handling — this
// module needs decode, not collation, so it uses one package deeper in
// the same golang.org/x/text module (encoding/charmap) instead.
func decodeCharset(charsetID uint64, raw []byte) (string, error) {
	switch charsetID {
	case CharsetUS7ASCII, CharsetAL32UTF8, 0:
		return string(raw), nil
	}
	enc, ok := charsetEncodings[charsetID]
	if !ok {
		return string(raw), nil
	}
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("charset %d decode: %w", charsetID, err)
	}
	return string(out), nil
}
