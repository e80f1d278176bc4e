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

// Package session implements the interactive prompt loop that builds a
// binary tree from user answers and prints it once the user is done.
package session

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/bbva/bintree/log"
	"github.com/bbva/bintree/tree"
)

var (
	// ErrMalformedInput is reported when an answer is not an integer. The
	// session re-prompts instead of failing.
	ErrMalformedInput = errors.New("malformed input")

	// ErrParentNotFound is reported when no node holds the requested
	// parent value. No node is added.
	ErrParentNotFound = errors.New("parent node not found")

	// ErrNoRoot is returned by Run when the input ends before a root value
	// was read.
	ErrNoRoot = errors.New("no root value")
)

const (
	promptRoot     = "Enter root value: "
	promptDecision = "\nAdd a child to some node? 1=Yes 2=No\nChoice: "
	promptParent   = "Enter parent node value: "
	promptChild    = "Enter new node value: "
	promptSide     = "Will it be a left child? (1=Yes, 0=No): "

	msgRootSet        = "Root set to %d.\n"
	msgAdded          = "Node %d added.\n"
	msgParentNotFound = "Parent node not found!\n"
	msgMalformed      = "Invalid number, try again.\n"
	msgHeader         = "\nBinary Tree built:\n"

	answerYes = 1
)

// Config holds the session options.
type Config struct {
	// Indent is the number of spaces per depth level in the final dump.
	Indent int
}

func DefaultConfig() *Config {
	return &Config{
		Indent: tree.DefaultIndent,
	}
}

// Session drives a single interactive run over an input and an output.
type Session struct {
	conf *Config
	in   *bufio.Scanner
	out  io.Writer
	log  log.Logger

	tree   *tree.Tree
	state  State
	parent tree.Position
	child  int

	// first write error, reported by Run
	err error
}

// New returns a session reading answers from in and writing prompts and
// the final dump to out. A nil conf uses DefaultConfig.
func New(in io.Reader, out io.Writer, conf *Config) *Session {
	if conf == nil {
		conf = DefaultConfig()
	}
	return &Session{
		conf:  conf,
		in:    bufio.NewScanner(in),
		out:   out,
		log:   log.L().Named("session"),
		tree:  tree.New(),
		state: AwaitRoot,
	}
}

// Tree returns the tree built so far.
func (s *Session) Tree() *tree.Tree {
	return s.tree
}

// State returns the current state of the prompt loop.
func (s *Session) State() State {
	return s.state
}

// Run prompts until the user declines to add more children or the input
// ends, then prints the tree in order.
func (s *Session) Run() error {
	for s.state != Done {
		if err := s.step(); err != nil {
			return err
		}
		if s.err != nil {
			return errors.Wrap(s.err, "writing session output")
		}
	}

	s.write(msgHeader)
	if root, ok := s.tree.Root(); ok {
		s.write(tree.Sprint(s.tree, root, s.conf.Indent))
	}
	if s.err != nil {
		return errors.Wrap(s.err, "writing session output")
	}
	return nil
}

func (s *Session) step() error {
	switch s.state {

	case AwaitRoot:
		value, err := s.readInt(promptRoot)
		if err == io.EOF {
			return errors.Wrap(ErrNoRoot, "input ended")
		}
		if err != nil {
			return err
		}
		if _, err := s.tree.AddRoot(value); err != nil {
			return err
		}
		s.log.Infof("Root set to %d", value)
		s.printf(msgRootSet, value)
		s.transition(AwaitChildDecision)

	case AwaitChildDecision:
		choice, err := s.readInt(promptDecision)
		if err != nil {
			return s.endOfInput(err)
		}
		if choice == answerYes {
			s.transition(AwaitParentValue)
		} else {
			s.transition(Done)
		}

	case AwaitParentValue:
		value, err := s.readInt(promptParent)
		if err != nil {
			return s.endOfInput(err)
		}
		parent, ok := tree.Find(s.tree, value)
		if !ok {
			s.log.Warnf("%v", errors.Wrapf(ErrParentNotFound, "value %d", value))
			s.write(msgParentNotFound)
			s.transition(AwaitChildDecision)
			return nil
		}
		s.parent = parent
		s.transition(AwaitChildValue)

	case AwaitChildValue:
		value, err := s.readInt(promptChild)
		if err != nil {
			return s.endOfInput(err)
		}
		s.child = value
		s.transition(AwaitSide)

	case AwaitSide:
		answer, err := s.readInt(promptSide)
		if err != nil {
			return s.endOfInput(err)
		}
		isLeft := answer == answerYes
		if _, err := s.tree.AddChild(s.parent, s.child, isLeft); err != nil {
			return err
		}
		s.log.Infof("Node %d added as %s child of %d", s.child, side(isLeft), s.tree.Value(s.parent))
		s.printf(msgAdded, s.child)
		s.transition(AwaitChildDecision)

	default:
		return errors.AssertionFailedf("unexpected session state %v", s.state)
	}
	return nil
}

// endOfInput treats an exhausted input after the root as a "No" answer.
func (s *Session) endOfInput(err error) error {
	if err != io.EOF {
		return err
	}
	s.log.Debugf("Input ended while in %v", s.state)
	s.transition(Done)
	return nil
}

func (s *Session) transition(next State) {
	s.log.Debugf("%v -> %v", s.state, next)
	s.state = next
}

// readInt prompts until a line holding an integer is read. Blank lines are
// skipped without prompting again. It returns io.EOF when the input ends.
func (s *Session) readInt(prompt string) (int, error) {
	s.write(prompt)
	for s.in.Scan() {
		line := strings.TrimSpace(s.in.Text())
		s.log.Tracef("Read %q", line)
		if line == "" {
			continue
		}
		value, err := strconv.Atoi(line)
		if err != nil {
			s.log.Warnf("%v", errors.Wrapf(ErrMalformedInput, "%q", line))
			s.write(msgMalformed)
			s.write(prompt)
			continue
		}
		return value, nil
	}
	if err := s.in.Err(); err != nil {
		return 0, errors.Wrap(err, "reading session input")
	}
	return 0, io.EOF
}

func (s *Session) printf(format string, args ...interface{}) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.out, format, args...)
}

func (s *Session) write(msg string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.out, msg)
}

func side(isLeft bool) string {
	if isLeft {
		return "left"
	}
	return "right"
}
