package stmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseExprents(t *testing.T) {
	resolve := func(name string) (ID, bool) {
		return 4, name == "s4"
	}
	text := "$1.0:int = #1:int; $$2.0:java.lang.String = switch(s4):java.lang.String; yield $3:int; foo(bar); throw $5.1; return"
	exprents, err := ParseExprents(text, resolve)
	if !assert.NoError(t, err) || !assert.Len(t, exprents, 6) {
		return
	}

	a, v, ok := AssignedVar(exprents[0])
	assert.True(t, ok)
	assert.Equal(t, VarVersion{Index: 1, Version: 0}, v.VarVersion())
	assert.Equal(t, TypeInt, a.Type())
	assert.False(t, v.Stack)

	_, v, ok = AssignedVar(exprents[1])
	assert.True(t, ok)
	assert.True(t, v.Stack)
	assert.True(t, v.Type().IsReference())
	assert.Equal(t, &SwitchExpr{Switch: 4, VarType: TypeString}, exprents[1].(*Assignment).Right)

	y := exprents[2].(*Yield)
	assert.Equal(t, TypeInt, y.Type())
	assert.Equal(t, &Var{Index: 3, VarType: TypeInt}, y.Value)

	assert.Equal(t, &Opaque{Text: "foo(bar)"}, exprents[3])
	assert.Equal(t, &Exit{Kind: ExitThrow, Value: &Var{Index: 5, Version: 1}}, exprents[4])
	assert.Equal(t, &Exit{Kind: ExitReturn}, exprents[5])

	assert.Equal(t,
		"$1.0:int = #1:int; $$2.0:java.lang.String = switch(s4):java.lang.String; yield $3.0:int; foo(bar); throw $5.1; return",
		FormatExprents(exprents))
}

func TestParseExprentErrors(t *testing.T) {
	none := func(string) (ID, bool) { return NoID, false }
	for _, text := range []string{
		"$x.0 = #1",
		"$1.y",
		"$$1.0 = switch(s9)",
		"yield switch(s2",
	} {
		_, err := ParseExprents(text, none)
		assert.Error(t, err, "%q", text)
	}
	_, err := ParseExprent("switch(s1)", nil)
	assert.Error(t, err)
}

func TestVarTypes(t *testing.T) {
	assert.True(t, TypeLong.IsPrimitive())
	assert.False(t, TypeLong.IsReference())
	assert.True(t, TypeObject.IsReference())
	assert.False(t, TypeUnknown.IsPrimitive())
	assert.False(t, TypeUnknown.IsReference())
}
