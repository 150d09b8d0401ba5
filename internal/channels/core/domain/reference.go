package domain

import "strings"

const (
	linkPrefix = "https://t.me/"
	hostPrefix = "t.me/"
)

// NormalizeChannel converts "@name", "name", "t.me/name" or
// "https://t.me/name" to "@name". The handle itself is not validated;
// a bad one fails later at resolution.
func NormalizeChannel(ref string) string {
	switch {
	case strings.HasPrefix(ref, linkPrefix):
		return "@" + strings.TrimPrefix(ref, linkPrefix)
	case strings.HasPrefix(ref, hostPrefix):
		return "@" + strings.TrimPrefix(ref, hostPrefix)
	case strings.HasPrefix(ref, "@"):
		return ref
	default:
		return "@" + ref
	}
}
