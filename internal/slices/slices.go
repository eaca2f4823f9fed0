package slices

// ContainsString checks wether the given string is in the specified slice
func ContainsString(strings []string, s string) bool {
	for _, e := range strings {
		if e == s {
			return true
		}
	}
	return false
}

// EqualStrings reports whether both slices hold the same strings in the same
// order. A nil slice equals an empty one.
func EqualStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
