package stmt

import (
	"io"
	"io/ioutil"
	"strconv"
)

import (
	"github.com/timtadh/combos"
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/dot"
)

// LoadDot reads every digraph in input as the statement graph of one
// method. Node attributes: kind, parent, role (head|case), exprs, phantom.
// Edge attributes: type, closure.
func LoadDot(input io.Reader) ([]*Graph, error) {
	text, err := ioutil.ReadAll(input)
	if err != nil {
		return nil, err
	}
	dp := &dotParse{}
	err = dot.StreamParse(text, dp)
	if err != nil {
		return nil, err
	}
	return dp.graphs, nil
}

type dotVertex struct {
	name  string
	attrs map[string]string
}

type dotArc struct {
	src, targ string
	attrs     map[string]string
}

type dotParse struct {
	graphs   []*Graph
	name     string
	subgraph int
	vertices []dotVertex
	arcs     []dotArc
}

func (p *dotParse) Enter(name string, n *combos.Node) error {
	if name == "SubGraph" {
		p.subgraph++
		return nil
	}
	p.name = ""
	if len(n.Children) > 1 {
		if id, ok := n.Get(1).Value.(string); ok {
			p.name = unquote(id)
		}
	}
	p.vertices = p.vertices[:0]
	p.arcs = p.arcs[:0]
	return nil
}

func (p *dotParse) Stmt(n *combos.Node) error {
	if p.subgraph > 0 {
		return nil
	}
	switch n.Label {
	case "Node":
		p.vertices = append(p.vertices, dotVertex{
			name:  unquote(n.Get(0).Value.(string)),
			attrs: attrs(n.Get(1)),
		})
	case "Edge":
		p.arcs = append(p.arcs, dotArc{
			src:   unquote(n.Get(0).Value.(string)),
			targ:  unquote(n.Get(1).Value.(string)),
			attrs: attrs(n.Get(2)),
		})
	}
	return nil
}

func (p *dotParse) Exit(name string) error {
	if name == "SubGraph" {
		p.subgraph--
		return nil
	}
	g, err := p.build()
	if err != nil {
		return err
	}
	p.graphs = append(p.graphs, g)
	return nil
}

func attrs(n *combos.Node) map[string]string {
	m := make(map[string]string)
	for _, attr := range n.Children {
		name := attr.Get(0).Value.(string)
		value := attr.Get(1).Value.(string)
		m[unquote(name)] = unquote(value)
	}
	return m
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' {
		if u, err := strconv.Unquote(s); err == nil {
			return u
		}
	}
	return s
}

func (p *dotParse) build() (*Graph, error) {
	g := NewGraph(p.name)
	ids := make(map[string]ID, len(p.vertices))
	for _, v := range p.vertices {
		if _, has := ids[v.name]; has {
			return nil, errors.Errorf("graph %v: statement %v declared twice", p.name, v.name)
		}
		kind, err := ParseKind(v.attrs["kind"])
		if err != nil {
			return nil, errors.Errorf("graph %v: statement %v: %v", p.name, v.name, err)
		}
		switch kind {
		case Root:
			ids[v.name] = g.Root
		case DummyExit:
			ids[v.name] = g.Exit
		default:
			ids[v.name] = g.NewStatement(kind).Id
		}
	}
	resolve := func(name string) (ID, bool) {
		id, has := ids[name]
		return id, has
	}
	for _, v := range p.vertices {
		id := ids[v.name]
		if parent, has := v.attrs["parent"]; has {
			pid, known := ids[parent]
			if !known {
				return nil, errors.Errorf("graph %v: %v names unknown parent %v", p.name, v.name, parent)
			}
			switch v.attrs["role"] {
			case "head":
				g.AddHead(pid, id)
			case "case":
				g.AddCase(pid, id)
			default:
				g.AddChild(pid, id)
			}
		}
		if text, has := v.attrs["exprs"]; has {
			exprents, err := ParseExprents(text, resolve)
			if err != nil {
				return nil, errors.Errorf("graph %v: exprents of %v: %v", p.name, v.name, err)
			}
			g.Stmt(id).Exprents = exprents
		}
		g.Stmt(id).Phantom = v.attrs["phantom"] == "true"
	}
	for _, a := range p.arcs {
		src, has := ids[a.src]
		if !has {
			return nil, errors.Errorf("graph %v: unknown src id %v", p.name, a.src)
		}
		targ, has := ids[a.targ]
		if !has {
			return nil, errors.Errorf("graph %v: unknown targ id %v", p.name, a.targ)
		}
		t := Regular
		if name, has := a.attrs["type"]; has {
			var err error
			if t, err = ParseEdgeType(name); err != nil {
				return nil, errors.Errorf("graph %v: edge %v -> %v: %v", p.name, a.src, a.targ, err)
			}
		}
		closure := NoID
		if name, has := a.attrs["closure"]; has {
			if closure, has = ids[name]; !has {
				return nil, errors.Errorf("graph %v: edge %v -> %v names unknown closure %v", p.name, a.src, a.targ, name)
			}
		}
		g.AddEdge(t, src, targ, closure)
	}
	return g, nil
}
