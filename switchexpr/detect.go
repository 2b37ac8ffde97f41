package switchexpr

import (
	"fmt"
)

import (
	"github.com/jpenilla/vineflower/analysis"
	"github.com/jpenilla/vineflower/stmt"
)

// Reason says why a switch was or was not turned into an expression.
type Reason uint8

const (
	Rewritten Reason = iota
	// ReasonPhantom: the switch already is a switch expression.
	ReasonPhantom
	// ReasonContinue: an arm continues a loop outside the switch.
	ReasonContinue
	// ReasonNoBreak: an arm with exprents falls through.
	ReasonNoBreak
	// ReasonBreakEscapes: an arm breaks out of something other than the switch.
	ReasonBreakEscapes
	// ReasonAmbiguous: two arms assign different variables.
	ReasonAmbiguous
	// ReasonExit: an arm ends in return or throw.
	ReasonExit
	// ReasonNoCandidate: no arm ends in an assignment to a variable.
	ReasonNoCandidate
	// ReasonNoSuccessor: nothing follows the switch to receive its value.
	ReasonNoSuccessor
)

var reasonNames = [...]string{
	Rewritten:          "rewritten",
	ReasonPhantom:      "phantom",
	ReasonContinue:     "continue",
	ReasonNoBreak:      "no-break",
	ReasonBreakEscapes: "break-escapes",
	ReasonAmbiguous:    "ambiguous",
	ReasonExit:         "exit",
	ReasonNoCandidate:  "no-candidate",
	ReasonNoSuccessor:  "no-successor",
}

func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return fmt.Sprintf("Reason(%d)", uint8(r))
}

// Detection is the variable a switch computes. Ref and Assign are the
// left side and the assignment of the first arm that assigns it.
type Detection struct {
	Switch stmt.ID
	Var    stmt.VarVersion
	Ref    *stmt.Var
	Assign *stmt.Assignment
}

// Detect decides whether the switch sw is really a switch expression: every
// arm that does something must end by assigning the same variable and
// breaking out of sw and no arm may continue an outer loop or exit the
// method. It returns nil and the reason when sw is left alone.
func Detect(g *stmt.Graph, sw stmt.ID) (*Detection, Reason) {
	s := g.Stmt(sw)
	if s.Phantom {
		return nil, ReasonPhantom
	}
	var found *Detection
	for _, arm := range s.Cases {
		if analysis.LeavesByContinue(g, arm) {
			return nil, ReasonContinue
		}

		exprents := g.Stmt(arm).Exprents
		if len(exprents) == 0 {
			continue
		}
		last := exprents[len(exprents)-1]

		// fallthrough arms are not handled
		breaks := g.Successors(arm, stmt.Break)
		if len(breaks) == 0 {
			return nil, ReasonNoBreak
		}

		if assign, ref, ok := stmt.AssignedVar(last); ok {
			if breaks[0].Closure != sw {
				return nil, ReasonBreakEscapes
			}
			if found == nil {
				found = &Detection{
					Switch: sw,
					Var:    ref.VarVersion(),
					Ref:    ref,
					Assign: assign,
				}
			} else if found.Var != ref.VarVersion() {
				return nil, ReasonAmbiguous
			}
		} else if _, ok := last.(*stmt.Exit); ok {
			return nil, ReasonExit
		}
	}
	if found == nil {
		return nil, ReasonNoCandidate
	}
	return found, Rewritten
}
