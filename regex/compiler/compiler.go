package compiler

import (
	"github.com/krokodileglue/glyphre/internal/conv"
	"github.com/krokodileglue/glyphre/regex/ast"
)

type compiler struct {
	prog *ast.Program
	out  []Inst

	called        map[int]bool
	groupAddrOf   map[int]int
	recursionUsed bool
	recursionAddr int
	progCounter   int

	reverse bool // lookbehind compiles its children in reverse order
}

// Compile lowers prog to bytecode (spec.md §4.7).
func Compile(prog *ast.Program) *Program {
	c := &compiler{prog: prog, called: map[int]bool{}, groupAddrOf: map[int]int{}}
	c.scanCalls(prog.Root)

	if prog.Options&ast.Unanchored != 0 {
		c.emit(Inst{Op: OpBranch, A: 3, B: 1})
		c.emit(Inst{Op: OpMultiAny})
		c.emit(Inst{Op: OpBranch, A: 3, B: 1})
	}

	c.emit(Inst{Op: OpSave, A: 0})
	c.compileNode(prog.Root)
	c.emit(Inst{Op: OpSave, A: 1})
	c.emit(Inst{Op: OpMatch})

	if c.recursionUsed {
		c.recursionAddr = len(c.out)
		c.emit(Inst{Op: OpSave, A: 0})
		c.compileNode(prog.Root)
		c.emit(Inst{Op: OpSave, A: 1})
		c.emit(Inst{Op: OpRet})
	}

	groupAddr := make([]int, len(prog.Groups))
	for i := range prog.Groups {
		if i == 0 {
			continue
		}
		groupAddr[i] = c.groupAddrOf[i]
	}

	for i := range c.out {
		if c.out[i].Op == OpCall {
			if c.out[i].B == recursionMarker {
				c.out[i].A = c.recursionAddr
			} else {
				c.out[i].A = c.groupAddrOf[c.out[i].A]
			}
		}
	}

	names := map[string]int{}
	for i, g := range prog.Groups {
		if i == 0 || g == nil {
			continue
		}
		if g.Name != "" {
			names[g.Name] = i
		}
	}

	// Every jump/call target and group slot must narrow into the operand
	// widths the bytecode format commits to (spec.md §4.7's two-operand
	// instruction shape); MAX_GROUPS=100 keeps this far from tripping in
	// practice, but the narrowing is load-bearing if that cap ever moves.
	conv.IntToInt32(len(c.out))
	conv.IntToUint16(prog.NumGroups())

	return &Program{Insts: c.out, NumGroups: prog.NumGroups(), GroupAddr: groupAddr, Names: names}
}

const recursionMarker = -1

func (c *compiler) emit(i Inst) int {
	c.out = append(c.out, i)
	return len(c.out) - 1
}

func (c *compiler) pc() int { return len(c.out) }

// scanCalls marks every group referenced by a subroutine call so its
// natural occurrence compiles as a callable, RET-terminated body rather
// than plain inline code (spec.md §4.7).
func (c *compiler) scanCalls(n *ast.Node) {
	if n == nil {
		return
	}
	if n.Kind == ast.KSubroutine {
		if n.GroupNum == 0 {
			c.recursionUsed = true
		} else {
			c.called[n.GroupNum] = true
		}
	}
	if n.Child != nil {
		c.scanCalls(n.Child)
	}
	for _, ch := range n.Children {
		c.scanCalls(ch)
	}
}
