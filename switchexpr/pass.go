package switchexpr

import (
	"fmt"
	"sort"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/jpenilla/vineflower/config"
	"github.com/jpenilla/vineflower/stmt"
)

// Report counts the outcome for every switch a pass looked at.
type Report struct {
	Methods  int
	Switches map[Reason]int
}

func NewReport() *Report {
	return &Report{Switches: make(map[Reason]int)}
}

func (r *Report) Rewritten() int {
	return r.Switches[Rewritten]
}

func (r *Report) Merge(o *Report) {
	r.Methods += o.Methods
	for reason, n := range o.Switches {
		r.Switches[reason] += n
	}
}

func (r *Report) String() string {
	reasons := make([]Reason, 0, len(r.Switches))
	for reason := range r.Switches {
		reasons = append(reasons, reason)
	}
	sort.Slice(reasons, func(i, j int) bool { return reasons[i] < reasons[j] })
	parts := make([]string, 0, len(reasons))
	for _, reason := range reasons {
		parts = append(parts, fmt.Sprintf("%v=%d", reason, r.Switches[reason]))
	}
	return fmt.Sprintf("methods=%d %v", r.Methods, strings.Join(parts, " "))
}

// Pass finds the switch statements of a method that compute a value and
// rewrites them into switch expressions.
type Pass struct {
	opts   *config.Options
	report *Report
}

func NewPass(opts *config.Options) *Pass {
	return &Pass{
		opts:   opts,
		report: NewReport(),
	}
}

func (p *Pass) Report() *Report {
	return p.report
}

// Run processes every switch of g, innermost first, and condenses the
// sequences the rewrites left behind. It does nothing unless the class
// version and the preferences allow switch expressions. A tree failing
// validation is refused with an error and left untouched.
func (p *Pass) Run(g *stmt.Graph) (bool, error) {
	if !p.opts.SwitchExpressionsEnabled() {
		return false, nil
	}
	if err := g.Validate(); err != nil {
		return false, err
	}
	p.report.Methods++
	changed := p.process(g, g.Root)
	if changed {
		g.CondenseSequences()
		if p.opts.Debug() {
			errors.Logf("DEBUG", "%v: %v", g.Name, p.report)
		}
	}
	return changed, nil
}

func (p *Pass) process(g *stmt.Graph, id stmt.ID) bool {
	changed := false
	for _, kid := range append([]stmt.ID(nil), g.Stmt(id).Stats...) {
		if p.process(g, kid) {
			changed = true
		}
	}
	if g.Stmt(id).Kind == stmt.Switch {
		if p.processSwitch(g, id) {
			changed = true
		}
	}
	return changed
}

func (p *Pass) processSwitch(g *stmt.Graph, sw stmt.ID) bool {
	d, reason := Detect(g, sw)
	if d != nil && !Rewrite(g, d) {
		d, reason = nil, ReasonNoSuccessor
	}
	p.report.Switches[reason]++
	if p.opts.Debug() {
		if d != nil {
			errors.Logf("DEBUG", "%v: s%d is a switch expression of $%v", g.Name, sw, d.Var)
		} else {
			errors.Logf("DEBUG", "%v: s%d stays a statement (%v)", g.Name, sw, reason)
		}
	}
	return d != nil
}
