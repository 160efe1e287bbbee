// ABOUTME: Fuzzy "did you mean" suggestions for mistyped subcommands
// ABOUTME: Matches against the known command list, best hit wins

package main

import (
	"fmt"

	"github.com/sahilm/fuzzy"
)

func suggest(sub string) string {
	matches := fuzzy.Find(sub, commands)
	if len(matches) > 0 {
		return fmt.Sprintf("venvup: unknown command %q (did you mean %q?)", sub, matches[0].Str)
	}
	return fmt.Sprintf("venvup: unknown command %q (run \"venvup help\" for usage)", sub)
}
