package stmt

import (
	"fmt"
	"strings"
)

func (s *Statement) String() string {
	return fmt.Sprintf("s%d(%v)", s.Id, s.Kind)
}

// String renders the tree as indented pseudo source, one exprent or
// explicit jump per line.
func (g *Graph) String() string {
	lines := make([]string, 0, g.Len()*2)
	lines = g.dump(lines, g.Root, 0)
	return strings.Join(lines, "\n")
}

func (g *Graph) dump(lines []string, id ID, depth int) []string {
	s := g.Stmt(id)
	pad := strings.Repeat("  ", depth)
	line := func(format string, args ...interface{}) {
		lines = append(lines, pad+fmt.Sprintf(format, args...))
	}
	switch s.Kind {
	case Root:
		line("method %v {", g.Name)
		for _, kid := range s.Stats {
			lines = g.dump(lines, kid, depth+1)
		}
		line("}")
	case Basic:
		line("// s%d", s.Id)
		for _, e := range s.Exprents {
			line("%v;", e)
		}
		lines = g.dumpJumps(lines, s, pad)
	case Switch:
		if s.Phantom {
			line("switch s%d (expression) {", s.Id)
		} else {
			line("switch s%d {", s.Id)
		}
		if s.First != NoID {
			lines = g.dump(lines, s.First, depth+1)
		}
		for i, arm := range s.Cases {
			line("case %d:", i)
			lines = g.dump(lines, arm, depth+1)
		}
		line("}")
		lines = g.dumpJumps(lines, s, pad)
	default:
		line("%v s%d {", s.Kind, s.Id)
		for _, e := range s.Exprents {
			line("  %v;", e)
		}
		for _, kid := range s.Stats {
			lines = g.dump(lines, kid, depth+1)
		}
		line("}")
		lines = g.dumpJumps(lines, s, pad)
	}
	return lines
}

func (g *Graph) dumpJumps(lines []string, s *Statement, pad string) []string {
	for _, e := range g.Successors(s.Id, Break|Continue) {
		word := "break"
		if e.Type == Continue {
			word = "continue"
		}
		if e.Dst == g.Exit {
			continue
		}
		lines = append(lines, fmt.Sprintf("%v%v s%d; // closure s%d", pad, word, e.Dst, e.Closure))
	}
	return lines
}
