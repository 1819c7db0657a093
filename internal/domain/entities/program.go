package entities

import "strings"

// Program is an external command the dispatcher hands control to.
type Program struct {
	Command string
	Args    []string
	Dir     string
}

// String renders the program as it would be typed in a shell.
func (p Program) String() string {
	return strings.Join(append([]string{p.Command}, p.Args...), " ")
}

// ProgramResult is what the dispatcher learns about a finished child.
type ProgramResult struct {
	ExitCode int
	Err      error
}

// Succeeded reports whether the child started and exited with status 0.
func (r ProgramResult) Succeeded() bool {
	return r.Err == nil && r.ExitCode == 0
}
