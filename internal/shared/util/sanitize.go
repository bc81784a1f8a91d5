package util

import "strings"

// BaseFileName strips any client supplied directory part, for either separator style,
// and surrounding whitespace.
func BaseFileName(name string) string {
	s := strings.TrimSpace(name)
	if i := strings.LastIndexAny(s, `/\`); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(s)
}
