package stmt

import (
	"strconv"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

// Resolver maps a statement name used inside exprent text (`s12`) to the
// statement it denotes.
type Resolver func(name string) (ID, bool)

// ParseExprents reads the `;` separated exprent syntax produced by
// FormatExprents:
//
//	$i.v[:T]      variable          $$i.v[:T]   stack variable
//	#lit[:T]      constant          L = R       assignment
//	return [x]    return            throw x     throw
//	yield x       yield             switch(sN)[:T] switch expression
//
// Anything else is kept as an opaque expression.
func ParseExprents(text string, resolve Resolver) ([]Exprent, error) {
	exprents := make([]Exprent, 0, 4)
	for _, part := range strings.Split(text, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		e, err := ParseExprent(part, resolve)
		if err != nil {
			return nil, err
		}
		exprents = append(exprents, e)
	}
	return exprents, nil
}

func ParseExprent(s string, resolve Resolver) (Exprent, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "return":
		return &Exit{Kind: ExitReturn}, nil
	case strings.HasPrefix(s, "return "):
		v, err := parseOperand(s[len("return "):], resolve)
		if err != nil {
			return nil, err
		}
		return &Exit{Kind: ExitReturn, Value: v}, nil
	case strings.HasPrefix(s, "throw "):
		v, err := parseOperand(s[len("throw "):], resolve)
		if err != nil {
			return nil, err
		}
		return &Exit{Kind: ExitThrow, Value: v}, nil
	case strings.HasPrefix(s, "yield "):
		v, err := parseOperand(s[len("yield "):], resolve)
		if err != nil {
			return nil, err
		}
		return &Yield{Value: v, VarType: v.Type()}, nil
	}
	if left, right, ok := strings.Cut(s, " = "); ok {
		l, err := parseOperand(left, resolve)
		if err != nil {
			return nil, err
		}
		r, err := parseOperand(right, resolve)
		if err != nil {
			return nil, err
		}
		return &Assignment{Left: l, Right: r}, nil
	}
	return parseOperand(s, resolve)
}

func splitType(s string) (string, VarType) {
	i := strings.LastIndex(s, ":")
	if i < 0 || i == len(s)-1 || strings.ContainsAny(s[i+1:], " ()") {
		return s, TypeUnknown
	}
	return s[:i], VarType(s[i+1:])
}

func parseOperand(s string, resolve Resolver) (Exprent, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return nil, errors.Errorf("empty operand")
	case strings.HasPrefix(s, "$$"):
		return parseVar(s[2:], true)
	case strings.HasPrefix(s, "$"):
		return parseVar(s[1:], false)
	case strings.HasPrefix(s, "#"):
		value, t := splitType(s[1:])
		return &Const{Value: value, VarType: t}, nil
	case strings.HasPrefix(s, "switch("):
		body, t := splitType(s)
		name, ok := strings.CutSuffix(strings.TrimPrefix(body, "switch("), ")")
		if !ok {
			return nil, errors.Errorf("malformed switch expression %q", s)
		}
		if resolve == nil {
			return nil, errors.Errorf("switch expression %q outside of a graph", s)
		}
		id, has := resolve(name)
		if !has {
			return nil, errors.Errorf("switch expression names unknown statement %q", name)
		}
		return &SwitchExpr{Switch: id, VarType: t}, nil
	}
	return &Opaque{Text: s}, nil
}

func parseVar(s string, stack bool) (*Var, error) {
	body, t := splitType(s)
	index, version, ok := strings.Cut(body, ".")
	if !ok {
		version = "0"
	}
	i, err := strconv.Atoi(index)
	if err != nil {
		return nil, errors.Errorf("bad variable index in %q: %v", s, err)
	}
	v, err := strconv.Atoi(version)
	if err != nil {
		return nil, errors.Errorf("bad variable version in %q: %v", s, err)
	}
	return &Var{Index: i, Version: v, VarType: t, Stack: stack}, nil
}
