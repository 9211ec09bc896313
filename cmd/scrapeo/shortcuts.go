package main

import "fmt"

// Run executes the shortcuts command.
func (c *ShortcutsCmd) Run(deps *Dependencies) error {
	shortcuts := deps.Queries.Shortcuts()

	width := 0
	for _, s := range shortcuts {
		width = max(width, len(s.Name))
	}

	for _, s := range shortcuts {
		line := fmt.Sprintf("%-*s  %s", width, s.Name, s.Query())
		if s.ExtractAttr != "" {
			line += "  (extracts " + s.ExtractAttr + ")"
		}
		fmt.Fprintln(deps.Stdout, line)
	}
	return nil
}
