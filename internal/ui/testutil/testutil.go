// Package testutil provides common testing utilities for UI components.
package testutil

import (
	"regexp"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/ritzel/internal/ui/action"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes ANSI escape codes from a string for easier testing.
// This allows comparing rendered output without style interference.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// ContainsLine checks if any line in the output contains the given substring.
func ContainsLine(output, substr string) bool {
	return FindLine(output, substr) != ""
}

// FindLine returns the first line containing the given substring, or empty string.
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(output, "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// SplitLines splits output into lines, removing trailing empty lines.
func SplitLines(output string) []string {
	lines := strings.Split(output, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// KeyRunes builds the key message a terminal sends when s is typed.
func KeyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// ExecuteCmd runs a command and returns the resulting message.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// Messages runs a command, expanding batches, and returns every message
// produced. Commands that block (ticks, cursor blinks) must not be passed.
func Messages(cmd tea.Cmd) []tea.Msg {
	msg := ExecuteCmd(cmd)
	if msg == nil {
		return nil
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, Messages(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

// Actions runs a command and returns the actions of every action.Msg it
// produced.
func Actions(cmd tea.Cmd) []action.Action {
	var actions []action.Action
	for _, msg := range Messages(cmd) {
		if am, ok := msg.(action.Msg); ok {
			actions = append(actions, am.Action)
		}
	}
	return actions
}
