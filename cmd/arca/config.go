package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/arca/pkg/errors"
)

var rootFolderCmd = &cobra.Command{
	Use:   "root [folder]",
	Short: "Show or set the archive folder",
	Long: `Without an argument, print the configured archive folder. With one,
validate and persist it: the folder may not start with a dot or
contain a colon, and an invalid value leaves the previous one in
place.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(false)
		if err != nil {
			return err
		}

		if len(args) == 0 {
			fmt.Println(a.store.Snapshot().ArchiveFolder)
			return nil
		}

		if err := a.store.SetArchiveFolder(args[0]); err != nil {
			return err
		}
		fmt.Printf("archive folder set to %s\n", a.store.Snapshot().ArchiveFolder)
		return nil
	},
}

var frequencyCmd = &cobra.Command{
	Use:   "frequency [minutes]",
	Short: "Show or set the auto-archive frequency in minutes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(false)
		if err != nil {
			return err
		}

		if len(args) == 0 {
			fmt.Printf("%d\n", a.store.Snapshot().AutoArchiveFrequency)
			return nil
		}

		minutes, err := strconv.Atoi(args[0])
		if err != nil {
			return errors.Wrapf(err, errors.ErrInvalidInput, "frequency must be a number of minutes, got %q", args[0])
		}
		if err := a.store.SetFrequency(minutes); err != nil {
			return err
		}
		fmt.Printf("auto-archive frequency set to %d minutes\n", minutes)
		return nil
	},
}
