package extract

import (
	"fmt"
	"unicode/utf8"
)

func decodeText(data []byte) (string, error) {
	for offset := 0; offset < len(data); {
		r, size := utf8.DecodeRune(data[offset:])
		if r == utf8.RuneError && size <= 1 {
			return "", fmt.Errorf("decode utf-8: invalid byte 0x%02x at position %d", data[offset], offset)
		}
		offset += size
	}
	return string(data), nil
}
