// Package testutil holds shared helpers for pick's tests: a scripted
// Terminal fake, an ANSI stripper for asserting on styled output, and
// fixture writers.
package testutil

import (
	"io"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grovetools/pick/menu"
)

// ScriptTerminal is a menu.Terminal driven by a pre-recorded input script.
// Rendered views, prompts and clear calls are captured for assertions;
// ReadLine returns io.EOF once the script is exhausted.
type ScriptTerminal struct {
	Inputs  []string
	Views   []menu.View
	Prompts []string
	Clears  int

	next int
}

// NewScriptTerminal creates a terminal that replays the given inputs.
func NewScriptTerminal(inputs ...string) *ScriptTerminal {
	return &ScriptTerminal{Inputs: inputs}
}

// Render records the view.
func (s *ScriptTerminal) Render(v menu.View) error {
	s.Views = append(s.Views, v)
	return nil
}

// ReadLine records the prompt and replays the next scripted input.
func (s *ScriptTerminal) ReadLine(prompt string) (string, error) {
	s.Prompts = append(s.Prompts, prompt)
	if s.next >= len(s.Inputs) {
		return "", io.EOF
	}
	input := s.Inputs[s.next]
	s.next++
	return input, nil
}

// Clear counts clear calls.
func (s *ScriptTerminal) Clear() error {
	s.Clears++
	return nil
}

// LastView returns the most recently rendered view and fails the test if
// nothing was rendered.
func (s *ScriptTerminal) LastView(t *testing.T) menu.View {
	t.Helper()
	require.NotEmpty(t, s.Views, "no views were rendered")
	return s.Views[len(s.Views)-1]
}

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

// StripANSI removes ANSI escape sequences so tests can assert on the plain
// text a styled renderer produced.
func StripANSI(s string) string {
	return ansiRegexp.ReplaceAllString(s, "")
}

// WriteFixture writes a file fixture into dir and returns its path.
func WriteFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}
