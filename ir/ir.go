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

// Package ir is the statement-level IR carried by CFG nodes.
//
// Expressions and statements are closed sum types: only the types declared in
// this package implement Expr and Stmt, so every consumer can match them
// exhaustively with a type switch.
package ir

import (
	"fmt"
	"strings"
	"sync/atomic"
)

var (
	declId uint64
)

// Declaration is the identity of a source-level variable. Two references to
// the same variable must point to the same Declaration.
type Declaration struct {
	Id   uint64
	Name string
}

// Declare creates a new, unique Declaration.
func Declare(name string) *Declaration {
	return &Declaration{
		Id:   atomic.AddUint64(&declId, 1),
		Name: name,
	}
}

func (self *Declaration) String() string {
	return self.Name
}

type Node interface {
	fmt.Stringer
	irnode()
}

type Expr interface {
	Node
	irexpr()
}

type Stmt interface {
	Node
	irstmt()
}

func (*Name) irnode() {}
func (*Const) irnode() {}
func (*Call) irnode() {}
func (*Unary) irnode() {}
func (*Binary) irnode() {}
func (*Assign) irnode() {}
func (*Eval) irnode() {}
func (*Return) irnode() {}

func (*Name) irexpr() {}
func (*Const) irexpr() {}
func (*Call) irexpr() {}
func (*Unary) irexpr() {}
func (*Binary) irexpr() {}

func (*Assign) irstmt() {}
func (*Eval) irstmt() {}
func (*Return) irstmt() {}

// Name is a reference to a variable. Decl is nil until the reference is
// resolved.
type Name struct {
	Ident string
	Decl  *Declaration
}

// Ref returns a resolved reference to d.
func Ref(d *Declaration) *Name {
	return &Name{
		Ident: d.Name,
		Decl:  d,
	}
}

func (self *Name) String() string {
	if self == nil {
		return "<nil>"
	}
	return self.Ident
}

type Const struct {
	V int64
}

func (self *Const) String() string {
	if self == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%d", self.V)
}

type Call struct {
	Fn   Expr
	Args []Expr
}

func (self *Call) String() string {
	if self == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s(%s)", exprrepr(self.Fn), exprlistrepr(self.Args))
}

type Unary struct {
	Op string
	X  Expr
}

func (self *Unary) String() string {
	if self == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s%s", self.Op, exprrepr(self.X))
}

type Binary struct {
	Op string
	X  Expr
	Y  Expr
}

func (self *Binary) String() string {
	if self == nil {
		return "<nil>"
	}
	return fmt.Sprintf("(%s %s %s)", exprrepr(self.X), self.Op, exprrepr(self.Y))
}

// Assign writes the value of an expression to a variable.
type Assign struct {
	Target *Name
	Value  Expr
}

func (self *Assign) String() string {
	if self == nil {
		return "<nil>"
	}
	if self.Target == nil {
		return fmt.Sprintf("<nil> = %s", exprrepr(self.Value))
	} else {
		return fmt.Sprintf("%s = %s", self.Target, exprrepr(self.Value))
	}
}

// Eval evaluates an expression for its side effects, usually a call.
type Eval struct {
	X Expr
}

func (self *Eval) String() string {
	if self == nil {
		return "<nil>"
	}
	return exprrepr(self.X)
}

type Return struct {
	Results []Expr
}

func (self *Return) String() string {
	if self == nil {
		return "<nil>"
	}
	if len(self.Results) == 0 {
		return "return"
	} else {
		return "return " + exprlistrepr(self.Results)
	}
}

func exprrepr(e Expr) string {
	if e == nil {
		return "<nil>"
	} else {
		return e.String()
	}
}

func exprlistrepr(v []Expr) string {
	nb := len(v)
	rs := make([]string, 0, nb)

	/* convert every expression */
	for _, e := range v {
		rs = append(rs, exprrepr(e))
	}

	/* join them together */
	return strings.Join(rs, ", ")
}
