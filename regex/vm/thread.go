// Package vm implements the regex bytecode interpreter (C8): an explicit
// thread stack running cooperative pseudo-parallel backtracking over the
// instructions regex/compiler produces, per spec.md §4.8. Thread field
// names (ip, sp, opt, die, frames, captures/vec, progress, lookaround
// stack, exception stack) are pinned from struct thread in
// original_source/include/ktre.h.
package vm

import "github.com/krokodileglue/glyphre/regex/ast"

// lookFrame is one saved position on a thread's lookaround stack,
// restored when a positive lookaround's WIN instruction is reached (so
// the continuing execution doesn't retain the lookaround body's own
// subject-pointer movement).
type lookFrame struct {
	sp      int
	reverse bool
}

// thread is one backtracking thread's full state. Clones copy every
// field (a plain full copy of each slice and map; there is no
// small-vector or copy-on-write sharing between threads).
type thread struct {
	ip, sp int
	opt    ast.Options
	reverse bool
	die    bool

	frames   []int
	captures []int // captures[2i]/captures[2i+1]: raw sp at group i's SAVE-open/-close
	progress map[int]int
	excStack []int // TRY/CATCH: stack-index markers
	lookStk  []lookFrame
}

func newThread(numGroups int, opt ast.Options) thread {
	captures := make([]int, 2*(numGroups+1))
	for i := range captures {
		// -1 marks "group never entered", distinct from a group that
		// legitimately matched zero-width at subject offset 0 (whose
		// SAVE instructions record sp == 0 on both sides).
		captures[i] = -1
	}
	return thread{
		opt:      opt,
		captures: captures,
		progress: make(map[int]int),
	}
}

func (t thread) clone() thread {
	c := t
	c.frames = append([]int(nil), t.frames...)
	c.captures = append([]int(nil), t.captures...)
	c.excStack = append([]int(nil), t.excStack...)
	c.lookStk = append([]lookFrame(nil), t.lookStk...)
	c.progress = make(map[int]int, len(t.progress))
	for k, v := range t.progress {
		c.progress[k] = v
	}
	return c
}
