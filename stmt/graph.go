package stmt

import (
	"fmt"
)

import (
	"github.com/timtadh/data-structures/errors"
)

// ID addresses a statement inside its Graph.
type ID int

const NoID ID = -1

type Kind uint8

const (
	Root Kind = iota
	Basic
	Sequence
	Switch
	If
	Do
	General
	DummyExit
)

var kindNames = map[Kind]string{
	Root:      "root",
	Basic:     "basic",
	Sequence:  "sequence",
	Switch:    "switch",
	If:        "if",
	Do:        "do",
	General:   "general",
	DummyExit: "exit",
}

func (k Kind) String() string {
	if name, has := kindNames[k]; has {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, errors.Errorf("unknown statement kind %q", s)
}

// Statement is one node of the structured statement tree.
//
// Stats holds the children in order. First is the head child: the body of
// a root, the first element of a sequence, the selector block of a switch,
// the condition block of an if. For a switch, Cases lists the arms in arm
// order (every arm is also in Stats). Exprents is nil for statements that
// carry no exprent list of their own.
type Statement struct {
	Id       ID
	Kind     Kind
	Parent   ID
	Stats    []ID
	First    ID
	Cases    []ID
	Exprents []Exprent
	// Phantom is set on a switch once it has become the body of a switch
	// expression.
	Phantom bool
	succs   []EdgeID
	preds   []EdgeID
}

// Graph is the statement tree of one method together with its control
// flow edges. Statements and edges live in arenas and are never moved, so
// IDs stay valid for the life of the graph.
type Graph struct {
	Name  string
	Root  ID
	Exit  ID
	stmts []*Statement
	edges []*Edge
}

func NewGraph(name string) *Graph {
	g := &Graph{
		Name:  name,
		stmts: make([]*Statement, 0, 16),
		edges: make([]*Edge, 0, 16),
	}
	g.Root = g.NewStatement(Root).Id
	g.Exit = g.NewStatement(DummyExit).Id
	return g
}

func (g *Graph) NewStatement(kind Kind) *Statement {
	s := &Statement{
		Id:     ID(len(g.stmts)),
		Kind:   kind,
		Parent: NoID,
		First:  NoID,
	}
	if kind == Basic {
		s.Exprents = make([]Exprent, 0, 2)
	}
	g.stmts = append(g.stmts, s)
	return s
}

func (g *Graph) NewBasic(exprents ...Exprent) *Statement {
	s := g.NewStatement(Basic)
	s.Exprents = append(s.Exprents, exprents...)
	return s
}

func (g *Graph) NewSequence(stats ...ID) *Statement {
	s := g.NewStatement(Sequence)
	for _, kid := range stats {
		g.AddChild(s.Id, kid)
	}
	return s
}

// Stmt returns nil for an unknown id.
func (g *Graph) Stmt(id ID) *Statement {
	if id < 0 || int(id) >= len(g.stmts) {
		return nil
	}
	return g.stmts[id]
}

func (g *Graph) Len() int {
	return len(g.stmts)
}

// AddChild appends child to parent. The first child added becomes the
// head unless one was set with AddHead.
func (g *Graph) AddChild(parent, child ID) {
	p := g.Stmt(parent)
	p.Stats = append(p.Stats, child)
	if p.First == NoID {
		p.First = child
	}
	g.Stmt(child).Parent = parent
}

// AddHead makes child the head of parent and moves it to the front of
// parent's children.
func (g *Graph) AddHead(parent, child ID) {
	p := g.Stmt(parent)
	stats := make([]ID, 0, len(p.Stats)+1)
	stats = append(stats, child)
	for _, kid := range p.Stats {
		if kid != child {
			stats = append(stats, kid)
		}
	}
	p.Stats = stats
	p.First = child
	g.Stmt(child).Parent = parent
}

// AddCase appends an arm to a switch.
func (g *Graph) AddCase(sw, arm ID) {
	g.AddChild(sw, arm)
	s := g.Stmt(sw)
	s.Cases = append(s.Cases, arm)
}

// Contains reports whether inner is outer or lies inside it.
func (g *Graph) Contains(outer, inner ID) bool {
	for cur := inner; cur != NoID; cur = g.Stmt(cur).Parent {
		if cur == outer {
			return true
		}
	}
	return false
}

// ReplaceWith puts repl where old sits in old's parent and moves every
// edge entering or leaving old itself over to repl. Edges of old's
// descendants are untouched.
func (g *Graph) ReplaceWith(old, repl ID) {
	o := g.Stmt(old)
	parent := o.Parent
	if parent != NoID {
		g.replaceChild(parent, old, repl)
	}
	r := g.Stmt(repl)
	r.Parent = parent
	o.Parent = NoID
	for _, e := range g.Predecessors(old, AllEdges) {
		g.Redirect(e.Id, repl)
	}
	for _, e := range g.Successors(old, AllEdges) {
		g.SetSource(e.Id, repl)
	}
}

func (g *Graph) replaceChild(parent, old, repl ID) {
	p := g.Stmt(parent)
	for i, kid := range p.Stats {
		if kid == old {
			p.Stats[i] = repl
		}
	}
	for i, arm := range p.Cases {
		if arm == old {
			p.Cases[i] = repl
		}
	}
	if p.First == old {
		p.First = repl
	}
}

// ReplaceExprent swaps old for repl in the exprent list of id.
func (g *Graph) ReplaceExprent(id ID, old, repl Exprent) bool {
	s := g.Stmt(id)
	for i, e := range s.Exprents {
		if e == old {
			s.Exprents[i] = repl
			return true
		}
	}
	return false
}

// Walk calls visit on id and every statement below it, parents first.
func (g *Graph) Walk(id ID, visit func(*Statement)) {
	s := g.Stmt(id)
	visit(s)
	for _, kid := range s.Stats {
		g.Walk(kid, visit)
	}
}

// Validate checks the structural invariants the rewriting passes rely on.
// A failure means the tree builder produced a corrupt tree.
func (g *Graph) Validate() error {
	if g.Stmt(g.Root) == nil || g.Stmt(g.Root).Kind != Root {
		return errors.Errorf("graph %v: missing root statement", g.Name)
	}
	var err error
	g.Walk(g.Root, func(s *Statement) {
		if err != nil {
			return
		}
		for _, kid := range s.Stats {
			if k := g.Stmt(kid); k == nil || k.Parent != s.Id {
				err = errors.Errorf("graph %v: s%d lists child s%d which does not name it as parent", g.Name, s.Id, kid)
				return
			}
		}
		if len(s.Stats) > 0 && !hasID(s.Stats, s.First) {
			err = errors.Errorf("graph %v: head s%d of s%d is not one of its children", g.Name, s.First, s.Id)
			return
		}
		if s.Kind == Switch {
			if s.First == NoID {
				err = errors.Errorf("graph %v: switch s%d has no head", g.Name, s.Id)
			} else if len(s.Cases) == 0 {
				err = errors.Errorf("graph %v: switch s%d has no case arms", g.Name, s.Id)
			}
			for _, arm := range s.Cases {
				if !hasID(s.Stats, arm) {
					err = errors.Errorf("graph %v: arm s%d of switch s%d is not a child", g.Name, arm, s.Id)
				}
			}
		}
	})
	if err != nil {
		return err
	}
	for _, e := range g.Edges() {
		if g.Stmt(e.Src) == nil || g.Stmt(e.Dst) == nil {
			return errors.Errorf("graph %v: edge %d has a dangling endpoint", g.Name, e.Id)
		}
		if e.Closure != NoID && !g.Contains(e.Closure, e.Src) {
			return errors.Errorf("graph %v: closure of %v is not an ancestor of its source", g.Name, e)
		}
	}
	return nil
}

func hasID(ids []ID, id ID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}
