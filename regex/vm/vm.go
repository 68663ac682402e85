package vm

import (
	"github.com/krokodileglue/glyphre/regex/ast"
	"github.com/krokodileglue/glyphre/regex/compiler"
)

// Limits, per spec.md §6.
const (
	MaxThread    = 200
	MaxCallDepth = 100
	MemCap       = 100_000_000
)

// ErrKind names a runtime (exec-time) failure, per spec.md §7b.
type ErrKind int

const (
	ErrNone ErrKind = iota
	ErrStackOverflow
	ErrCallOverflow
	ErrOutOfMemory
)

// Match is one match's capture vector: Match[2*i] / Match[2*i+1] are the
// start/length (in code points) of group i; group 0 is the whole match.
// A group that did not participate has start == -1.
type Match []int

// Result is the outcome of running the VM to completion.
type Result struct {
	Matches []Match
	Err     ErrKind
}

// Exec runs prog against subject starting at startAt (a code-point
// index), per spec.md §4.8. If opt has Global set, it continues
// searching for further non-overlapping matches after the first.
func Exec(prog *compiler.Program, opt ast.Options, subject []rune, startAt int) Result {
	stack := make([]thread, 0, 16)
	init := newThread(prog.NumGroups, opt)
	init.sp = startAt
	stack = append(stack, init)

	var matches []Match
	memEstimate := 0
	totalForks := 0

	lastMatchEnd := -1

	for len(stack) > 0 {
		cur := &stack[len(stack)-1]

		if cur.die {
			stack = stack[:len(stack)-1]
			continue
		}

		if cur.ip < 0 || cur.ip >= len(prog.Insts) {
			stack = stack[:len(stack)-1]
			continue
		}
		inst := prog.Insts[cur.ip]

		switch inst.Op {
		case compiler.OpMatch:
			m := extractMatch(cur.captures)
			if m[1] == 0 && m[0] == lastMatchEnd {
				// zero-width match exactly at the previous match's end:
				// reject, per spec.md §4.8's GLOBAL semantics.
				stack = stack[:len(stack)-1]
				continue
			}
			matches = append(matches, m)
			if opt&ast.Global == 0 {
				return Result{Matches: matches}
			}
			lastMatchEnd = m[0] + m[1]
			next := newThread(prog.NumGroups, opt)
			next.sp = lastMatchEnd
			if m[1] == 0 {
				next.sp++
			}
			// The match is final: pending backtrack alternatives are
			// dropped so no overlapping match can follow it.
			if next.sp > len(subject) {
				stack = stack[:0]
				continue
			}
			stack = append(stack[:0], next)
			continue

		case compiler.OpChar:
			if !matchByte(cur, subject, inst) {
				stack = stack[:len(stack)-1]
				continue
			}
			step(cur)

		case compiler.OpClass, compiler.OpNotClass:
			if !matchClass(cur, subject, inst) {
				stack = stack[:len(stack)-1]
				continue
			}
			step(cur)

		case compiler.OpAny:
			c, ok := peekRune(cur, subject)
			if !ok || c == 0 || (c == '\n' && opt&ast.Multiline == 0) {
				stack = stack[:len(stack)-1]
				continue
			}
			step(cur)

		case compiler.OpMultiAny:
			c, ok := peekRune(cur, subject)
			if !ok || c == 0 {
				stack = stack[:len(stack)-1]
				continue
			}
			step(cur)

		case compiler.OpNotNewline:
			c, ok := peekRune(cur, subject)
			if !ok || c == '\n' {
				stack = stack[:len(stack)-1]
				continue
			}
			step(cur)

		case compiler.OpDigit, compiler.OpNotDigit:
			if !matchPredicate(cur, subject, isDigit, inst.Op == compiler.OpNotDigit) {
				stack = stack[:len(stack)-1]
				continue
			}
			step(cur)

		case compiler.OpWord, compiler.OpNotWord:
			if !matchPredicate(cur, subject, isWord, inst.Op == compiler.OpNotWord) {
				stack = stack[:len(stack)-1]
				continue
			}
			step(cur)

		case compiler.OpSpace, compiler.OpNotSpace:
			if !matchPredicate(cur, subject, isSpace, inst.Op == compiler.OpNotSpace) {
				stack = stack[:len(stack)-1]
				continue
			}
			step(cur)

		case compiler.OpHSpace, compiler.OpNotHSpace:
			if !matchPredicate(cur, subject, isHSpace, inst.Op == compiler.OpNotHSpace) {
				stack = stack[:len(stack)-1]
				continue
			}
			step(cur)

		case compiler.OpBOL:
			if !(cur.sp == 0 || (cur.sp > 0 && subject[cur.sp-1] == '\n')) {
				stack = stack[:len(stack)-1]
				continue
			}
			cur.ip++

		case compiler.OpEOL:
			if !(cur.sp == len(subject) || subject[cur.sp] == '\n') {
				stack = stack[:len(stack)-1]
				continue
			}
			cur.ip++

		case compiler.OpBOS:
			if cur.sp != 0 {
				stack = stack[:len(stack)-1]
				continue
			}
			cur.ip++

		case compiler.OpEOS:
			if cur.sp != len(subject) {
				stack = stack[:len(stack)-1]
				continue
			}
			cur.ip++

		case compiler.OpWB, compiler.OpNWB:
			before := cur.sp > 0 && isWord(subject[cur.sp-1])
			after := cur.sp < len(subject) && isWord(subject[cur.sp])
			isBoundary := before != after
			if inst.Op == compiler.OpNWB {
				isBoundary = !isBoundary
			}
			if !isBoundary {
				stack = stack[:len(stack)-1]
				continue
			}
			cur.ip++

		case compiler.OpBranch:
			totalForks++
			if len(stack) >= MaxThread || totalForks > 100_000 {
				return Result{Err: ErrStackOverflow}
			}
			clone := cur.clone()
			clone.ip = inst.A
			cur.ip = inst.B
			stack = append(stack, clone)
			continue

		case compiler.OpJmp:
			cur.ip = inst.A

		case compiler.OpSave:
			cur.captures[inst.A] = cur.sp
			cur.ip++

		case compiler.OpBackref:
			if !matchBackref(cur, subject, inst.A) {
				stack = stack[:len(stack)-1]
				continue
			}

		case compiler.OpCall:
			if len(cur.frames) >= MaxCallDepth {
				return Result{Err: ErrCallOverflow}
			}
			cur.frames = append(cur.frames, cur.ip+1)
			cur.ip = inst.A

		case compiler.OpRet:
			if len(cur.frames) == 0 {
				stack = stack[:len(stack)-1]
				continue
			}
			cur.ip = cur.frames[len(cur.frames)-1]
			cur.frames = cur.frames[:len(cur.frames)-1]

		case compiler.OpSetOpt:
			cur.opt = ast.Options(inst.A)
			cur.ip++

		case compiler.OpSetStart:
			cur.captures[0] = cur.sp
			cur.ip++

		case compiler.OpProg:
			if last, ok := cur.progress[inst.A]; ok && last == cur.sp {
				stack = stack[:len(stack)-1]
				continue
			}
			cur.progress[inst.A] = cur.sp
			cur.ip++

		case compiler.OpTry:
			cur.excStack = append(cur.excStack, len(stack)-1)
			cur.ip++

		case compiler.OpCatch:
			if len(cur.excStack) == 0 {
				cur.ip++
				break
			}
			tp := cur.excStack[len(cur.excStack)-1]
			cur.excStack = cur.excStack[:len(cur.excStack)-1]
			keep := *cur
			keep.ip++
			stack = append(stack[:tp], keep)
			continue

		case compiler.OpPLA, compiler.OpPLB:
			reverse := inst.Op == compiler.OpPLB
			cur.lookStk = append(cur.lookStk, lookFrame{sp: cur.sp, reverse: cur.reverse})
			cur.reverse = reverse
			cur.ip++

		case compiler.OpPLAWin, compiler.OpPLBWin:
			if len(cur.lookStk) == 0 {
				cur.ip++
				break
			}
			f := cur.lookStk[len(cur.lookStk)-1]
			cur.lookStk = cur.lookStk[:len(cur.lookStk)-1]
			cur.sp = f.sp
			cur.reverse = f.reverse
			cur.ip++

		case compiler.OpNLA, compiler.OpNLB:
			totalForks++
			if len(stack) >= MaxThread {
				return Result{Err: ErrStackOverflow}
			}
			// tp marks cur's own position: the optimistic continuation
			// that assumes the forbidden body won't match. It is parked
			// below the probe thread, exactly like OpTry/OpCatch parks
			// an atomic group's pre-state. If the probe succeeds (the
			// body DID match), OpNLAFail must discard both the probe and
			// this continuation, not just the probe, or the assertion's
			// failure silently turns into a success.
			tp := len(stack) - 1
			clone := cur.clone()
			clone.ip = inst.A
			clone.excStack = append(clone.excStack, tp)
			if inst.Op == compiler.OpNLB {
				clone.reverse = true
			}
			cur.ip = inst.B
			stack = append(stack, clone)
			continue

		case compiler.OpNLAFail, compiler.OpNLBFail:
			if len(cur.excStack) == 0 {
				stack = stack[:len(stack)-1]
				continue
			}
			tp := cur.excStack[len(cur.excStack)-1]
			stack = stack[:tp]
			continue

		default:
			stack = stack[:len(stack)-1]
			continue
		}

		memEstimate++
		if memEstimate*64 > MemCap {
			return Result{Err: ErrOutOfMemory}
		}
	}

	return Result{Matches: matches}
}

func step(t *thread) {
	if t.reverse {
		t.sp--
	} else {
		t.sp++
	}
	t.ip++
}

func peekRune(t *thread, subject []rune) (rune, bool) {
	idx := t.sp
	if t.reverse {
		idx = t.sp - 1
	}
	if idx < 0 || idx >= len(subject) {
		return 0, false
	}
	return subject[idx], true
}

func matchByte(t *thread, subject []rune, inst compiler.Inst) bool {
	c, ok := peekRune(t, subject)
	if !ok {
		return false
	}
	if t.opt&ast.Insensitive != 0 {
		return toLower(c) == toLower(inst.Char)
	}
	return c == inst.Char
}

func matchClass(t *thread, subject []rune, inst compiler.Inst) bool {
	c, ok := peekRune(t, subject)
	if !ok {
		return false
	}
	in := inRanges(c, inst.Ranges)
	if t.opt&ast.Insensitive != 0 && !in {
		in = inRanges(toLower(c), inst.Ranges) || inRanges(foldUpper(c), inst.Ranges)
	}
	if inst.Op == compiler.OpNotClass {
		return !in
	}
	return in
}

func foldUpper(c rune) rune {
	if c >= 'a' && c <= 'z' {
		return c - 32
	}
	return c
}

func matchPredicate(t *thread, subject []rune, pred func(rune) bool, negate bool) bool {
	c, ok := peekRune(t, subject)
	if !ok {
		return false
	}
	r := pred(c)
	if negate {
		r = !r
	}
	return r
}

func matchBackref(t *thread, subject []rune, group int) bool {
	start, end := t.captures[2*group], t.captures[2*group+1]
	if start < 0 || end < start {
		return false
	}
	n := end - start
	for i := 0; i < n; i++ {
		c, ok := peekRune(t, subject)
		if !ok {
			return false
		}
		want := subject[start+i]
		if t.opt&ast.Insensitive != 0 {
			if toLower(c) != toLower(want) {
				return false
			}
		} else if c != want {
			return false
		}
		if t.reverse {
			t.sp--
		} else {
			t.sp++
		}
	}
	t.ip++
	return true
}

func extractMatch(captures []int) Match {
	m := make(Match, len(captures))
	for i := 0; i < len(captures); i += 2 {
		start, end := captures[i], captures[i+1]
		if start < 0 || end < 0 {
			m[i], m[i+1] = -1, 0
			continue
		}
		m[i] = start
		m[i+1] = end - start
	}
	return m
}
