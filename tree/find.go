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

// Find returns the first node holding value in a pre-order scan: the node
// itself, then its whole left subtree, then its right subtree. With
// duplicate values the left-most match along that order wins, which is not
// necessarily the shallowest one.
func Find(t *Tree, value int) (Position, bool) {
	root, ok := t.Root()
	if !ok {
		return Position{}, false
	}
	return find(t, root, value)
}

func find(t *Tree, p Position, value int) (Position, bool) {
	if t.Value(p) == value {
		return p, true
	}
	if left, ok := t.Left(p); ok {
		if found, ok := find(t, left, value); ok {
			return found, true
		}
	}
	if right, ok := t.Right(p); ok {
		return find(t, right, value)
	}
	return Position{}, false
}
