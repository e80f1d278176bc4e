/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package tree

import (
	"io"
	"strconv"
	"strings"
)

// DefaultIndent is the number of spaces added per depth level.
const DefaultIndent = 4

// InOrder walks the subtree rooted at start visiting the left subtree, the
// node and then the right subtree. Depth is relative to start, which has
// depth 0.
func InOrder(t *Tree, start Position, fn func(depth, value int)) {
	inOrder(t, start, 0, fn)
}

func inOrder(t *Tree, p Position, depth int, fn func(depth, value int)) {
	if left, ok := t.Left(p); ok {
		inOrder(t, left, depth+1, fn)
	}
	fn(depth, t.Value(p))
	if right, ok := t.Right(p); ok {
		inOrder(t, right, depth+1, fn)
	}
}

type printVisitor struct {
	tokens []string
	indent int
}

func newPrintVisitor(indent int) *printVisitor {
	if indent < 0 {
		indent = 0
	}
	return &printVisitor{tokens: make([]string, 0), indent: indent}
}

func (v *printVisitor) visit(depth, value int) {
	v.tokens = append(v.tokens, strings.Repeat(" ", depth*v.indent)+strconv.Itoa(value))
}

func (v printVisitor) Result() string {
	if len(v.tokens) == 0 {
		return ""
	}
	return strings.Join(v.tokens, "\n") + "\n"
}

// Sprint renders the subtree rooted at start, one value per line indented
// by depth*indent spaces.
func Sprint(t *Tree, start Position, indent int) string {
	v := newPrintVisitor(indent)
	InOrder(t, start, v.visit)
	return v.Result()
}

// Fprint writes the rendering of Sprint to w.
func Fprint(w io.Writer, t *Tree, start Position, indent int) error {
	_, err := io.WriteString(w, Sprint(t, start, indent))
	return err
}
