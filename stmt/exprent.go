package stmt

import (
	"fmt"
	"strings"
)

// VarType names the value type of an exprent. Primitive types use their
// source spelling, reference types their qualified class name.
type VarType string

const (
	TypeUnknown VarType = ""
	TypeBoolean VarType = "boolean"
	TypeByte    VarType = "byte"
	TypeChar    VarType = "char"
	TypeShort   VarType = "short"
	TypeInt     VarType = "int"
	TypeLong    VarType = "long"
	TypeFloat   VarType = "float"
	TypeDouble  VarType = "double"
	TypeObject  VarType = "java.lang.Object"
	TypeString  VarType = "java.lang.String"
)

func (t VarType) IsPrimitive() bool {
	switch t {
	case TypeBoolean, TypeByte, TypeChar, TypeShort, TypeInt, TypeLong, TypeFloat, TypeDouble:
		return true
	}
	return false
}

func (t VarType) IsReference() bool {
	return t != TypeUnknown && !t.IsPrimitive()
}

// VarVersion identifies one definition of a local variable slot. Two
// variables are the same result variable iff their VarVersions are equal.
type VarVersion struct {
	Index   int
	Version int
}

func (v VarVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Index, v.Version)
}

// Exprent is an expression attached to a statement. The set of
// implementations is closed: Assignment, Var, Const, Exit, Yield,
// SwitchExpr and Opaque.
type Exprent interface {
	Type() VarType
	String() string
	exprent()
}

type Assignment struct {
	Left     Exprent
	Right    Exprent
	Declared VarType
}

type Var struct {
	Index   int
	Version int
	VarType VarType
	// Stack marks a stack temporary: it is inlined into its use rather
	// than declared.
	Stack bool
}

type Const struct {
	Value   string
	VarType VarType
}

type ExitKind uint8

const (
	ExitReturn ExitKind = iota
	ExitThrow
)

type Exit struct {
	Kind  ExitKind
	Value Exprent
}

// Yield is the value produced by one arm of a switch expression.
type Yield struct {
	Value   Exprent
	VarType VarType
}

// SwitchExpr evaluates the (phantom) switch statement Switch as a value.
type SwitchExpr struct {
	Switch  ID
	VarType VarType
}

// Opaque stands for every expression kind the switch pass does not look
// into (calls, field access, arithmetic, ...).
type Opaque struct {
	Text    string
	VarType VarType
}

func (*Assignment) exprent() {}
func (*Var) exprent()        {}
func (*Const) exprent()      {}
func (*Exit) exprent()       {}
func (*Yield) exprent()      {}
func (*SwitchExpr) exprent() {}
func (*Opaque) exprent()     {}

func (a *Assignment) Type() VarType {
	if a.Declared != TypeUnknown {
		return a.Declared
	}
	return a.Left.Type()
}

func (v *Var) Type() VarType        { return v.VarType }
func (c *Const) Type() VarType      { return c.VarType }
func (y *Yield) Type() VarType      { return y.VarType }
func (s *SwitchExpr) Type() VarType { return s.VarType }
func (o *Opaque) Type() VarType     { return o.VarType }

func (e *Exit) Type() VarType {
	if e.Value == nil {
		return TypeUnknown
	}
	return e.Value.Type()
}

func (v *Var) VarVersion() VarVersion {
	return VarVersion{Index: v.Index, Version: v.Version}
}

// AssignedVar returns the variable on the left of e when e is an
// assignment to a local variable.
func AssignedVar(e Exprent) (*Assignment, *Var, bool) {
	a, ok := e.(*Assignment)
	if !ok {
		return nil, nil, false
	}
	v, ok := a.Left.(*Var)
	if !ok {
		return nil, nil, false
	}
	return a, v, true
}

func typeSuffix(t VarType) string {
	if t == TypeUnknown {
		return ""
	}
	return ":" + string(t)
}

func (a *Assignment) String() string {
	return fmt.Sprintf("%v = %v", a.Left, a.Right)
}

func (v *Var) String() string {
	sigil := "$"
	if v.Stack {
		sigil = "$$"
	}
	return fmt.Sprintf("%v%d.%d%v", sigil, v.Index, v.Version, typeSuffix(v.VarType))
}

func (c *Const) String() string {
	return "#" + c.Value + typeSuffix(c.VarType)
}

func (e *Exit) String() string {
	word := "return"
	if e.Kind == ExitThrow {
		word = "throw"
	}
	if e.Value == nil {
		return word
	}
	return fmt.Sprintf("%v %v", word, e.Value)
}

func (y *Yield) String() string {
	return fmt.Sprintf("yield %v", y.Value)
}

func (s *SwitchExpr) String() string {
	return fmt.Sprintf("switch(s%d)%v", s.Switch, typeSuffix(s.VarType))
}

func (o *Opaque) String() string {
	return o.Text
}

// FormatExprents renders a list in the syntax accepted by ParseExprents.
func FormatExprents(exprents []Exprent) string {
	parts := make([]string, 0, len(exprents))
	for _, e := range exprents {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, "; ")
}
