package main

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed docs/*.md
var topicsFS embed.FS

var topicsCmd = &cobra.Command{
	Use:   "topics [name]",
	Short: "Read documentation topics",
	Long:  `List available documentation topics, or render one in the terminal.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return listTopics()
		}
		return showTopic(args[0])
	},
}

func listTopics() error {
	entries, err := topicsFS.ReadDir("docs")
	if err != nil {
		return err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".md"))
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func showTopic(name string) error {
	content, err := topicsFS.ReadFile("docs/" + name + ".md")
	if err != nil {
		return fmt.Errorf("unknown topic %q, run 'arca topics' for the list", name)
	}
	fmt.Print(renderMarkdown(string(content)))
	return nil
}

// renderMarkdown converts markdown to terminal output, falling back to
// the raw text when glamour cannot render.
func renderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
