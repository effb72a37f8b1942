/*
 * Copyright 2024 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclaration_Identity(t *testing.T) {
	a := Declare("x")
	b := Declare("x")
	require.NotSame(t, a, b)
	require.Less(t, a.Id, b.Id)
	require.Equal(t, "x", a.String())
}

func TestSymbolSet_Operations(t *testing.T) {
	x, y, z := Declare("x"), Declare("y"), Declare("z")
	a := NewSymbolSet(x, y)
	b := NewSymbolSet(y, z)

	u := a.Union(b)
	require.Equal(t, 3, u.Len())
	require.True(t, u.Has(x) && u.Has(y) && u.Has(z))
	require.Equal(t, 2, a.Len(), "union must not modify its operands")

	d := a.Difference(b)
	require.True(t, d.Equal(NewSymbolSet(x)))
	require.Equal(t, 2, a.Len(), "difference must not modify its operands")

	require.True(t, a.Equal(NewSymbolSet(y, x)))
	require.False(t, a.Equal(b))
	require.False(t, a.Equal(NewSymbolSet(x)))
}

func TestSymbolSet_InPlace(t *testing.T) {
	x, y := Declare("x"), Declare("y")
	rs := NewSymbolSet()
	require.True(t, rs.Add(x))
	require.False(t, rs.Add(x))
	rs.Update(NewSymbolSet(y))
	require.True(t, rs.Equal(NewSymbolSet(x, y)))
	rs.Subtract(NewSymbolSet(x))
	require.True(t, rs.Equal(NewSymbolSet(y)))
	require.True(t, rs.Remove(y))
	require.False(t, rs.Remove(y))
	require.Zero(t, rs.Len())
}

func TestSymbolSet_Nil(t *testing.T) {
	var rs SymbolSet
	x := Declare("x")
	require.False(t, rs.Has(x))
	require.True(t, rs.Equal(NewSymbolSet()))
	require.True(t, rs.Union(NewSymbolSet(x)).Equal(NewSymbolSet(x)))
	require.Zero(t, rs.Difference(NewSymbolSet(x)).Len())
	require.NotNil(t, rs.Clone())
}

func TestSymbolSet_String(t *testing.T) {
	b := Declare("b")
	a := Declare("a")
	require.Equal(t, "{}", NewSymbolSet().String())
	require.Equal(t, "{b, a}", NewSymbolSet(a, b).String())
	require.Equal(t, []*Declaration{b, a}, NewSymbolSet(a, b).Slice())
}

func TestIR_String(t *testing.T) {
	x, y, f := Declare("x"), Declare("y"), Declare("f")
	call := &Call{Fn: Ref(f), Args: []Expr{Ref(x), &Const{V: 2}}}
	assert.Equal(t, "f(x, 2)", call.String())
	assert.Equal(t, "y = (x + f(x, 2))", (&Assign{Target: Ref(y), Value: &Binary{Op: "+", X: Ref(x), Y: call}}).String())
	assert.Equal(t, "-x", (&Unary{Op: "-", X: Ref(x)}).String())
	assert.Equal(t, "f(x, 2)", (&Eval{X: call}).String())
	assert.Equal(t, "return", (&Return{}).String())
	assert.Equal(t, "return x, y", (&Return{Results: []Expr{Ref(x), Ref(y)}}).String())
	assert.Equal(t, "<nil> = <nil>", (&Assign{}).String())
}

func TestIR_StringTypedNil(t *testing.T) {
	for _, n := range []Node{(*Name)(nil), (*Const)(nil), (*Call)(nil), (*Unary)(nil), (*Binary)(nil), (*Assign)(nil), (*Eval)(nil), (*Return)(nil)} {
		assert.Equal(t, "<nil>", n.String())
	}
	assert.Equal(t, "f(<nil>)", (&Call{Fn: &Name{Ident: "f"}, Args: []Expr{(*Name)(nil)}}).String())
	assert.Equal(t, "<nil> = <nil>", (&Assign{Target: (*Name)(nil), Value: (*Binary)(nil)}).String())
	assert.Equal(t, `MalformedError("<nil>"): nil statement`, EMalformed((*Eval)(nil), "nil statement").Error())
}

func TestErrors(t *testing.T) {
	s := &Assign{Target: &Name{Ident: "y"}, Value: &Name{Ident: "x"}}
	assert.Equal(t, `UnresolvedError(x): unresolved reference in statement "y = x"`, EUnresolved(s.Value.(*Name), s).Error())
	assert.Equal(t, `MalformedError("<nil>"): nil statement`, EMalformed(nil, "nil statement").Error())
}
