package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/arca/pkg/paths"
	"github.com/arthur-debert/arca/pkg/style"
	"github.com/arthur-debert/arca/pkg/types"
)

var archiveCmd = &cobra.Command{
	Use:   "archive <path>...",
	Short: "Move files into the archive folder",
	Long: `Move one or more vault files into the archive folder. The file's full
path is nested under the archive root, so the original folder structure
is preserved and can be restored later with unarchive.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(true)
		if err != nil {
			return err
		}

		count, results := a.orchestrator.ArchiveAll(cmd.Context(), itemsFromArgs(args))
		printResults(args, results)
		fmt.Printf("%d of %d archived\n", count, len(args))
		return nil
	},
}

var unarchiveCmd = &cobra.Command{
	Use:   "unarchive <path>...",
	Short: "Move archived files back to their original location",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(true)
		if err != nil {
			return err
		}

		count, results := a.orchestrator.UnarchiveAll(cmd.Context(), itemsFromArgs(args))
		printResults(args, results)
		fmt.Printf("%d of %d unarchived\n", count, len(args))
		return nil
	},
}

func itemsFromArgs(args []string) []types.Item {
	items := make([]types.Item, 0, len(args))
	for _, arg := range args {
		p := paths.Normalize(arg)
		items = append(items, types.Item{Path: p, Name: paths.Base(p)})
	}
	return items
}

func printResults(args []string, results []types.ArchiveResult) {
	for i, res := range results {
		if res.Success {
			fmt.Printf("%s %s\n", style.Success("ok"), res.Message)
		} else {
			fmt.Printf("%s %s: %s\n", style.Error("failed"), style.Path(args[i]), res.Message)
		}
	}
}
