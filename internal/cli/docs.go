package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	builtindocs "github.com/aidanlsb/heron/docs"
	"github.com/aidanlsb/heron/internal/ui"
)

var docsRaw bool

var docsCmd = &cobra.Command{
	Use:   "docs [topic]",
	Short: "Read the bundled documentation",
	Long: `Read the long-form documentation bundled with the hrn binary.

Without a topic, the available topics are listed. On a terminal, topics
render as styled Markdown; use --raw for the plain source.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDocs,
}

func init() {
	docsCmd.Flags().BoolVar(&docsRaw, "raw", false, "Print the raw Markdown source")
	rootCmd.AddCommand(docsCmd)
}

func runDocs(cmd *cobra.Command, args []string) error {
	topics, err := docsTopics()
	if err != nil {
		return handleError(ErrInternal, err, "")
	}

	if len(args) == 0 {
		if isJSONOutput() {
			outputSuccess(topics, &Meta{Count: len(topics)})
			return nil
		}
		fmt.Println(ui.Header("topics"))
		for _, topic := range topics {
			fmt.Printf("  %s\n", topic)
		}
		fmt.Println(ui.Hint("hrn docs <topic> to read one"))
		return nil
	}

	topic := strings.TrimSuffix(args[0], ".md")
	content, err := builtindocs.FS.ReadFile(topic + ".md")
	if err != nil {
		return handleErrorMsg(ErrInvalidInput,
			fmt.Sprintf("unknown topic: %s (available: %s)", topic, strings.Join(topics, ", ")), "")
	}

	if isJSONOutput() {
		outputSuccess(map[string]string{"topic": topic, "content": string(content)}, nil)
		return nil
	}
	if docsRaw || !stdoutIsTerminal() {
		fmt.Print(string(content))
		return nil
	}
	fmt.Print(ui.RenderMarkdown(string(content), ui.TermWidth()))
	return nil
}

func docsTopics() ([]string, error) {
	entries, err := builtindocs.FS.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		topics = append(topics, strings.TrimSuffix(entry.Name(), ".md"))
	}
	sort.Strings(topics)
	return topics, nil
}
