package utils

// MaskName hides all but the last few characters of a public display name.
func MaskName(name string) string {
	r := []rune(name)
	if len(r) <= 4 {
		return "****"
	}
	return "****" + string(r[len(r)-4:])
}
