package stmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Dot renders the graph in the format read back by LoadDot.
func (g *Graph) Dot() string {
	nodes := make([]string, 0, g.Len())
	edges := make([]string, 0, len(g.edges))
	g.Walk(g.Root, func(s *Statement) {
		nodes = append(nodes, g.dotNode(s))
		for _, e := range g.Successors(s.Id, AllEdges) {
			edges = append(edges, dotEdge(e))
		}
	})
	exit := g.Stmt(g.Exit)
	nodes = append(nodes, g.dotNode(exit))
	return fmt.Sprintf(`digraph %v {
%v
%v
}`, strconv.Quote(g.Name), strings.Join(nodes, "\n"), strings.Join(edges, "\n"))
}

func WriteDot(w io.Writer, graphs ...*Graph) error {
	for _, g := range graphs {
		if _, err := fmt.Fprintln(w, g.Dot()); err != nil {
			return err
		}
	}
	return nil
}

func (g *Graph) dotNode(s *Statement) string {
	attrs := []string{"kind=" + strconv.Quote(s.Kind.String())}
	if s.Parent != NoID {
		p := g.Stmt(s.Parent)
		attrs = append(attrs, fmt.Sprintf("parent=s%d", p.Id))
		if hasID(p.Cases, s.Id) {
			attrs = append(attrs, `role="case"`)
		} else if p.First == s.Id && (p.Kind == Switch || p.Kind == If) {
			attrs = append(attrs, `role="head"`)
		}
	}
	if s.Exprents != nil {
		attrs = append(attrs, "exprs="+strconv.Quote(FormatExprents(s.Exprents)))
	}
	if s.Phantom {
		attrs = append(attrs, `phantom="true"`)
	}
	return fmt.Sprintf("s%d [%v];", s.Id, strings.Join(attrs, ", "))
}

func dotEdge(e *Edge) string {
	attrs := []string{"type=" + strconv.Quote(e.Type.String())}
	if e.Closure != NoID {
		attrs = append(attrs, fmt.Sprintf("closure=s%d", e.Closure))
	}
	return fmt.Sprintf("s%d -> s%d [%v];", e.Src, e.Dst, strings.Join(attrs, ", "))
}
