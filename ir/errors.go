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
	"fmt"
)

// UnresolvedError occures when a variable reference or an assignment target
// has no Declaration attached.
type UnresolvedError struct {
	Ident string
	Stmt  string
}

func (self UnresolvedError) Error() string {
	return fmt.Sprintf("UnresolvedError(%s): unresolved reference in statement %q", self.Ident, self.Stmt)
}

// MalformedError occures when a statement contains a missing sub-tree.
type MalformedError struct {
	Stmt   string
	Reason string
}

func (self MalformedError) Error() string {
	return fmt.Sprintf("MalformedError(%q): %s", self.Stmt, self.Reason)
}

func EUnresolved(name *Name, stmt Stmt) UnresolvedError {
	return UnresolvedError{
		Ident: name.Ident,
		Stmt:  stmtrepr(stmt),
	}
}

func EMalformed(stmt Stmt, reason string) MalformedError {
	return MalformedError{
		Stmt:   stmtrepr(stmt),
		Reason: reason,
	}
}

func stmtrepr(s Stmt) string {
	if s == nil {
		return "<nil>"
	} else {
		return s.String()
	}
}
