package domain

import "strings"

// Command is an external process invocation.
type Command struct {
	// Name is the executable, resolved against PATH.
	Name string
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env holds variables layered on top of the allow-listed system environment.
	Env map[string]string
}

// String renders the command line for logs and error metadata.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}
