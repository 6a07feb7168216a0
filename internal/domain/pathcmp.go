package domain

// SamePath reports whether p1 and p2 denote the same path, treating '/' and
// '\' as interchangeable. No other normalization is applied, so both paths
// must already be in a comparable form (both absolute or both relative).
func SamePath(p1, p2 string) bool {
	r1, r2 := []rune(p1), []rune(p2)
	if len(r1) != len(r2) {
		return false
	}

	for i := range r1 {
		if isSeparator(r1[i]) && isSeparator(r2[i]) {
			continue
		}

		if r1[i] != r2[i] {
			return false
		}
	}

	return true
}

func isSeparator(r rune) bool {
	return r == '/' || r == '\\'
}
