package compiler

import "github.com/krokodileglue/glyphre/regex/ast"

func (c *compiler) nextProgID() int {
	c.progCounter++
	return c.progCounter
}

// compileNode lowers one AST node, appending instructions to c.out.
func (c *compiler) compileNode(n *ast.Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case ast.KLiteral:
		c.emit(Inst{Op: OpChar, Char: n.Literal, Offset: n.Offset})
	case ast.KAny:
		c.emit(Inst{Op: OpAny, Offset: n.Offset})
	case ast.KMultiAny:
		c.emit(Inst{Op: OpMultiAny, Offset: n.Offset})
	case ast.KNotNewline:
		c.emit(Inst{Op: OpNotNewline, Offset: n.Offset})
	case ast.KBOL:
		c.emit(Inst{Op: OpBOL})
	case ast.KEOL:
		c.emit(Inst{Op: OpEOL})
	case ast.KBOS:
		c.emit(Inst{Op: OpBOS})
	case ast.KEOS:
		c.emit(Inst{Op: OpEOS})
	case ast.KWordBoundary:
		c.emit(Inst{Op: OpWB})
	case ast.KNotWordBoundary:
		c.emit(Inst{Op: OpNWB})
	case ast.KDigit:
		c.emit(Inst{Op: OpDigit})
	case ast.KNotDigit:
		c.emit(Inst{Op: OpNotDigit})
	case ast.KWord:
		c.emit(Inst{Op: OpWord})
	case ast.KNotWord:
		c.emit(Inst{Op: OpNotWord})
	case ast.KSpace:
		c.emit(Inst{Op: OpSpace})
	case ast.KNotSpace:
		c.emit(Inst{Op: OpNotSpace})
	case ast.KHSpace:
		c.emit(Inst{Op: OpHSpace})
	case ast.KNotHSpace:
		c.emit(Inst{Op: OpNotHSpace})
	case ast.KSetStart:
		c.emit(Inst{Op: OpSetStart})
	case ast.KClass:
		ranges := make([]Range, len(n.Ranges))
		for i, r := range n.Ranges {
			ranges[i] = Range{r.Lo, r.Hi}
		}
		op := OpClass
		if n.Negate {
			op = OpNotClass
		}
		c.emit(Inst{Op: op, Ranges: ranges, Offset: n.Offset})
	case ast.KSequence:
		c.compileSequence(n.Children)
	case ast.KAlt:
		c.compileAlt(n.Children)
	case ast.KStar:
		c.compileStar(n)
	case ast.KPlus:
		c.compilePlus(n)
	case ast.KQuest:
		c.compileQuest(n)
	case ast.KCounted:
		c.compileCounted(n)
	case ast.KGroup:
		c.compileGroup(n)
	case ast.KAtomic:
		c.compileAtomic(n)
	case ast.KLookahead:
		c.compileLookahead(n)
	case ast.KLookbehind:
		c.compileLookbehind(n)
	case ast.KBackref:
		c.emit(Inst{Op: OpBackref, A: n.GroupNum})
	case ast.KNamedBackref:
		c.emit(Inst{Op: OpBackref, A: n.GroupNum})
	case ast.KSubroutine:
		if n.GroupNum == 0 {
			c.emit(Inst{Op: OpCall, B: recursionMarker})
		} else {
			c.emit(Inst{Op: OpCall, A: n.GroupNum})
		}
	case ast.KBranchReset:
		c.compileAlt(n.Children)
	case ast.KSetOption:
		if n.Child != nil {
			c.compileNode(n.Child)
		}
	}
}

// compileSequence compiles children in order, or in reverse order when
// c.reverse is set (lookbehind bodies — spec.md §4.7).
func (c *compiler) compileSequence(children []*ast.Node) {
	if !c.reverse {
		for _, ch := range children {
			c.compileNode(ch)
		}
		return
	}
	for i := len(children) - 1; i >= 0; i-- {
		c.compileNode(children[i])
	}
}

// compileAlt lowers a1|a2|...|an as a right-leaning chain of
// BRANCH/JMP pairs: try a1, else a2, ... else an.
func (c *compiler) compileAlt(alts []*ast.Node) {
	var jmps []int
	for i, alt := range alts {
		last := i == len(alts)-1
		var branchPC int
		if !last {
			branchPC = c.emit(Inst{Op: OpBranch})
		}
		c.compileNode(alt)
		if !last {
			jmps = append(jmps, c.emit(Inst{Op: OpJmp}))
			c.out[branchPC].A = branchPC + 1
			c.out[branchPC].B = c.pc()
		}
	}
	end := c.pc()
	for _, j := range jmps {
		c.out[j].A = end
	}
}

// compileStar lowers '*': BRANCH(PROG)(end); PROG; body; BRANCH(PROG)(end)
// per spec.md §4.7's literal description — PROG guards zero-width loops.
func (c *compiler) compileStar(n *ast.Node) {
	id := c.nextProgID()
	branch1 := c.emit(Inst{Op: OpBranch})
	progPC := c.emit(Inst{Op: OpProg, A: id})
	c.compileNode(n.Child)
	branch2 := c.emit(Inst{Op: OpBranch})
	end := c.pc()
	c.out[branch1].A = progPC
	c.out[branch1].B = end
	c.out[branch2].A = progPC
	c.out[branch2].B = end
}

// compilePlus lowers '+'. Over an already-quantified child, it wraps the
// repetition in TRY/CATCH so the outer '+' can backtrack past the inner
// repetition (spec.md §4.7).
func (c *compiler) compilePlus(n *ast.Node) {
	needsAtomicWrap := n.Child.Kind == ast.KStar || n.Child.Kind == ast.KPlus || n.Child.Kind == ast.KQuest || n.Child.Kind == ast.KCounted
	id := c.nextProgID()

	if needsAtomicWrap {
		c.emit(Inst{Op: OpTry})
	}
	bodyStart := c.emit(Inst{Op: OpProg, A: id})
	c.compileNode(n.Child)
	if needsAtomicWrap {
		c.emit(Inst{Op: OpCatch})
	}
	branch := c.emit(Inst{Op: OpBranch, A: bodyStart})
	c.out[branch].B = c.pc()
}

// compileQuest lowers '?': BRANCH skip continue; body; label.
func (c *compiler) compileQuest(n *ast.Node) {
	branch := c.emit(Inst{Op: OpBranch})
	c.out[branch].A = c.pc() + 1
	c.compileNode(n.Child)
	c.out[branch].B = c.pc()
}

// compileCounted lowers '{m,n}': m unrolled copies of the body, followed
// by n-m optional BRANCH/body pairs (or, if n is unbounded, a trailing
// star), per spec.md §4.7's Open Question #2 decision.
func (c *compiler) compileCounted(n *ast.Node) {
	for i := 0; i < n.Min; i++ {
		c.compileNode(n.Child)
	}
	if n.Max < 0 {
		c.compileStar(&ast.Node{Kind: ast.KStar, Child: n.Child})
		return
	}
	var branches []int
	for i := n.Min; i < n.Max; i++ {
		b := c.emit(Inst{Op: OpBranch})
		c.out[b].A = c.pc()
		c.compileNode(n.Child)
		branches = append(branches, b)
	}
	end := c.pc()
	for _, b := range branches {
		c.out[b].B = end
	}
}

// compileGroup lowers a capturing or non-capturing group. A group marked
// called (referenced by a subroutine call elsewhere) compiles as a
// standalone RET-terminated body, reached at its natural position via
// CALL and jumped over so normal flow doesn't fall into it twice (spec.md
// §4.7's "jumped-over prologue").
func (c *compiler) compileGroup(n *ast.Node) {
	if n.GroupNum == 0 {
		c.compileNode(n.Child)
		return
	}
	// The recursion pass recompiles the whole tree a second time to
	// produce a RET-terminated copy (see Compile); group addresses from
	// that second pass must not clobber the first, real, pass's.
	_, alreadyAddressed := c.groupAddrOf[n.GroupNum]

	if c.called[n.GroupNum] {
		jmp := c.emit(Inst{Op: OpJmp})
		bodyAddr := c.pc()
		if !alreadyAddressed {
			c.groupAddrOf[n.GroupNum] = bodyAddr
		}
		c.emit(Inst{Op: OpSave, A: n.GroupNum * 2})
		c.compileNode(n.Child)
		c.emit(Inst{Op: OpSave, A: n.GroupNum*2 + 1})
		c.emit(Inst{Op: OpRet})
		c.out[jmp].A = c.pc()
		c.emit(Inst{Op: OpCall, A: n.GroupNum})
		return
	}
	if !alreadyAddressed {
		c.groupAddrOf[n.GroupNum] = c.pc()
	}
	c.emit(Inst{Op: OpSave, A: n.GroupNum * 2})
	c.compileNode(n.Child)
	c.emit(Inst{Op: OpSave, A: n.GroupNum*2 + 1})
}

func (c *compiler) compileAtomic(n *ast.Node) {
	c.emit(Inst{Op: OpTry})
	c.compileNode(n.Child)
	c.emit(Inst{Op: OpCatch})
}

// compileLookahead lowers (?=...)/(?!...). PLA saves the position and runs
// the body inline; PLA_WIN restores it. NLA forks a probe thread into the
// body while the current thread continues after NLA_FAIL; a probe that
// reaches NLA_FAIL discards itself and that continuation (spec.md §4.8).
func (c *compiler) compileLookahead(n *ast.Node) {
	if !n.Negate {
		pla := c.emit(Inst{Op: OpPLA})
		c.compileNode(n.Child)
		c.emit(Inst{Op: OpPLAWin})
		c.out[pla].A = pla + 1
		return
	}
	nla := c.emit(Inst{Op: OpNLA})
	c.compileNode(n.Child)
	c.emit(Inst{Op: OpNLAFail})
	c.out[nla].A = nla + 1
	c.out[nla].B = c.pc()
}

// compileLookbehind lowers (?<=...)/(?<!...), compiling the body in
// reverse with the reverse flag set so every SEQUENCE's children emit in
// reverse order (spec.md §4.7).
func (c *compiler) compileLookbehind(n *ast.Node) {
	saved := c.reverse
	c.reverse = true
	if !n.Negate {
		plb := c.emit(Inst{Op: OpPLB})
		c.compileNode(n.Child)
		c.emit(Inst{Op: OpPLBWin})
		c.out[plb].A = plb + 1
		c.reverse = saved
		return
	}
	nlb := c.emit(Inst{Op: OpNLB})
	c.compileNode(n.Child)
	c.emit(Inst{Op: OpNLBFail})
	c.out[nlb].A = nlb + 1
	c.out[nlb].B = c.pc()
	c.reverse = saved
}
