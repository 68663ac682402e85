package regex

// FreeInfo is the allocation accounting returned when a pattern is
// released, per spec.md §6's "free(handle) → info returning allocation
// statistics". It reports the size of the compiled pattern: its
// instruction count, capture-group count and named-group count.
type FreeInfo struct {
	// Instructions is the number of bytecode instructions the pattern
	// compiled to.
	Instructions int

	// Groups is the number of capture groups, including group 0.
	Groups int

	// NamedGroups is the number of groups with an explicit name.
	NamedGroups int
}

// Free releases r's compiled state and returns allocation statistics
// for it. After Free, r must not be used again.
//
// Example:
//
//	re := regex.MustCompile(`\d+`, 0)
//	defer re.Free()
func (r *Regex) Free() FreeInfo {
	info := FreeInfo{
		Instructions: len(r.prog.Insts),
		Groups:       r.prog.NumGroups + 1,
		NamedGroups:  len(r.prog.Names),
	}
	r.ast = nil
	r.prog = nil
	r.prefilter = nil
	return info
}
