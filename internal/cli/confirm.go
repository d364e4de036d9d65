package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/aidanlsb/heron/internal/ui"
)

// shouldPromptForConfirm reports whether an interactive y/N prompt makes
// sense: both ends of the terminal present and not in JSON mode.
func shouldPromptForConfirm() bool {
	if isJSONOutput() {
		return false
	}
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

// promptForConfirm asks the user to confirm a destructive step. Anything
// but an explicit yes declines.
func promptForConfirm(message string) bool {
	if !shouldPromptForConfirm() {
		return false
	}
	fmt.Printf("%s %s ", message, ui.Hint("[y/N]"))
	answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	switch strings.TrimSpace(strings.ToLower(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
