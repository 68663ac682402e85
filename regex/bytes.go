package regex

// MatchBytes reports whether the pattern matches b: at the start of b, or
// anywhere in b when compiled with Unanchored.
//
// Example:
//
//	re := regex.MustCompile(`\d+`, regex.Unanchored)
//	if re.MatchBytes([]byte("hello 123")) {
//	    println("contains digits")
//	}
func (r *Regex) MatchBytes(b []byte) bool {
	return r.MatchString(string(b))
}

// FindBytes returns a slice holding the text of the leftmost match in b,
// or nil if none.
func (r *Regex) FindBytes(b []byte) []byte {
	s := r.FindString(string(b))
	if s == "" && !r.MatchBytes(b) {
		return nil
	}
	return []byte(s)
}

// FindAllBytes returns all successive, non-overlapping matches in b. If
// n >= 0, at most n matches are returned.
func (r *Regex) FindAllBytes(b []byte, n int) [][]byte {
	strs := r.FindAllString(string(b), n)
	if strs == nil {
		return nil
	}
	out := make([][]byte, len(strs))
	for i, s := range strs {
		out[i] = []byte(s)
	}
	return out
}

// ReplaceAll is ReplaceAllString over byte slices.
func (r *Regex) ReplaceAll(b []byte, template []byte) []byte {
	return []byte(r.ReplaceAllString(string(b), string(template)))
}

// Split is SplitString over byte slices.
func (r *Regex) Split(b []byte) [][]byte {
	strs := r.SplitString(string(b))
	out := make([][]byte, len(strs))
	for i, s := range strs {
		out[i] = []byte(s)
	}
	return out
}
