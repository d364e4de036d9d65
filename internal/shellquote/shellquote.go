// Package shellquote renders argument vectors back into copy-pasteable
// shell commands, for echoing aliases and exec invocations.
package shellquote

import "strings"

// Quote wraps s in single quotes, escaping any internal single quotes.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// QuoteIfNeeded quotes strings that a shell would otherwise split or
// interpret.
func QuoteIfNeeded(s string) string {
	if s == "" {
		return "''"
	}
	if strings.ContainsAny(s, " \t#[]()|!\"'$*?;&<>`\\") {
		return Quote(s)
	}
	return s
}

// Join renders an argument vector as a single shell command line.
func Join(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = QuoteIfNeeded(arg)
	}
	return strings.Join(quoted, " ")
}
