package switchexpr

import (
	"github.com/jpenilla/vineflower/stmt"
)

// Rewrite turns the switch found by Detect into a switch expression: the
// switch is marked phantom, every assignment of the result slot inside its
// arms becomes a yield and the block after the switch starts with
//
//	$$i.0 = switch(sw)
//
// It returns false, leaving the tree alone, when the switch has no regular
// successor to hold that assignment.
func Rewrite(g *stmt.Graph, d *Detection) bool {
	sw := g.Stmt(d.Switch)
	sucs := g.Successors(sw.Id, stmt.Regular)
	if len(sucs) == 0 {
		return false
	}

	suc := g.Stmt(sucs[0].Dst)
	if suc.Kind != stmt.Basic {
		suc = insertSuccessor(g, sw, suc)
	}

	sw.Phantom = true

	for _, arm := range sw.Cases {
		yieldAssignments(g, arm, d.Var)
	}

	ref := &stmt.Var{
		Index:   d.Ref.Index,
		VarType: d.Ref.VarType,
		Stack:   true,
	}
	value := &stmt.Assignment{
		Left:  ref,
		Right: &stmt.SwitchExpr{Switch: sw.Id, VarType: d.Ref.Type()},
	}

	exprents := make([]stmt.Exprent, 0, len(suc.Exprents)+1)
	exprents = append(exprents, takeStackAssignments(g, sw.First)...)
	exprents = append(exprents, value)
	exprents = append(exprents, suc.Exprents...)
	suc.Exprents = exprents
	return true
}

// insertSuccessor puts a fresh basic block between sw and its successor
// old. sw and the block are wrapped in a sequence that takes sw's place;
// edges from the arms that went to old go to the block instead.
func insertSuccessor(g *stmt.Graph, sw *stmt.Statement, old *stmt.Statement) *stmt.Statement {
	block := g.NewBasic()
	seq := g.NewStatement(stmt.Sequence)
	g.ReplaceWith(sw.Id, seq.Id)
	g.AddChild(seq.Id, sw.Id)
	g.AddChild(seq.Id, block.Id)

	for _, arm := range sw.Cases {
		g.Walk(arm, func(s *stmt.Statement) {
			for _, e := range g.Successors(s.Id, stmt.AllEdges) {
				if e.Dst != old.Id {
					continue
				}
				// a return reaches the dummy exit too; only breaks that
				// end the switch belong to the new block
				if old.Id == g.Exit && (e.Closure == stmt.NoID || !g.Contains(sw.Id, e.Closure)) {
					continue
				}
				g.Redirect(e.Id, block.Id)
			}
		})
	}

	g.AddEdge(stmt.Regular, sw.Id, block.Id, seq.Id)
	g.AddEdge(stmt.Regular, block.Id, old.Id, seq.Id)
	return block
}

// yieldAssignments replaces, at any depth below arm, each assignment to
// the result slot by a yield of the assigned value.
func yieldAssignments(g *stmt.Graph, arm stmt.ID, v stmt.VarVersion) {
	g.Walk(arm, func(s *stmt.Statement) {
		for _, e := range s.Exprents {
			assign, ref, ok := stmt.AssignedVar(e)
			if !ok || ref.Index != v.Index {
				continue
			}
			g.ReplaceExprent(s.Id, assign, &stmt.Yield{
				Value:   assign.Right,
				VarType: assign.Type(),
			})
		}
	})
}

// takeStackAssignments removes the stack temporary assignments left in the
// switch head by nested switch expressions and returns them in order.
func takeStackAssignments(g *stmt.Graph, head stmt.ID) []stmt.Exprent {
	h := g.Stmt(head)
	if h == nil || len(h.Exprents) == 0 {
		return nil
	}
	moved := make([]stmt.Exprent, 0, len(h.Exprents))
	kept := h.Exprents[:0]
	for _, e := range h.Exprents {
		if _, ref, ok := stmt.AssignedVar(e); ok && ref.Stack {
			moved = append(moved, e)
		} else {
			kept = append(kept, e)
		}
	}
	h.Exprents = kept
	return moved
}
