package regex

// Exec runs r against subject and returns whether it matched along with
// the full capture vector: vector[2*i]/vector[2*i+1] give the start/length
// of group i (group 0 is the whole match); an unmatched group is [-1,-1].
// This is the "exec(handle, subject) -> bool + vector" entry point named
// in spec.md §6.
func (r *Regex) Exec(subject string) (bool, []int) {
	cps := []rune(subject)
	m := r.execAt(cps, 0)
	if m == nil {
		return false, nil
	}
	vec := append([]int(nil), m...)
	for i := 0; i < len(vec); i += 2 {
		if vec[i] < 0 {
			vec[i+1] = -1
		}
	}
	return true, vec
}

// Match compiles pattern with opt, then reports whether subject matches
// and returns its capture vector in one call ("match(subject, pattern,
// opts) -> bool + vector", spec.md §6). Compile errors report as no match.
func Match(subject, pattern string, opt Option) (bool, []int) {
	re, err := Compile(pattern, opt)
	if err != nil {
		return false, nil
	}
	return re.Exec(subject)
}

// Replace is the one-shot form of (*Regex).ReplaceAllString: compile
// pattern, then expand template against every match in subject.
func Replace(subject, pattern, template string, opt Option) (string, error) {
	re, err := Compile(pattern, opt)
	if err != nil {
		return "", err
	}
	return re.ReplaceAllString(subject, template), nil
}

// Filter is Replace with the template-token indicator fixed to '$'
// (spec.md §4.9).
func Filter(subject, pattern, template string, opt Option) (string, error) {
	return Replace(subject, pattern, template, opt)
}

// Split is the one-shot form of (*Regex).SplitString.
func Split(subject, pattern string, opt Option) ([]string, error) {
	re, err := Compile(pattern, opt)
	if err != nil {
		return nil, err
	}
	return re.SplitString(subject), nil
}
