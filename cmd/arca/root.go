package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/arca/internal/version"
	"github.com/arthur-debert/arca/pkg/archive"
	"github.com/arthur-debert/arca/pkg/logging"
	"github.com/arthur-debert/arca/pkg/settings"
	"github.com/arthur-debert/arca/pkg/types"
	"github.com/arthur-debert/arca/pkg/vaultfs"
)

var (
	verbosity    int
	vaultDir     string
	settingsPath string
	force        bool

	rootCmd = &cobra.Command{
		Use:   "arca",
		Short: "A file archiver for note vaults",
		Long: `arca moves files into and out of a designated archive folder inside
your note vault, preserving their folder structure, and can archive
files automatically based on age and name-pattern rules.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&vaultDir, "vault", ".", "Path to the vault root directory")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "Settings file (default is the XDG config location)")
	rootCmd.PersistentFlags().BoolVar(&force, "force", false, "Replace conflicting destination items without prompting")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(unarchiveCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(rootFolderCmd)
	rootCmd.AddCommand(frequencyCmd)
	rootCmd.AddCommand(topicsCmd)
}

// app bundles everything a command needs to run archive operations.
type app struct {
	store        *settings.Store
	vault        *vaultfs.VaultFS
	orchestrator *archive.Orchestrator
}

// newApp loads settings and wires the orchestrator with the CLI's
// prompter and notifier. interactive selects the pterm confirmation
// prompt; non-interactive commands keep conflicting files in place.
func newApp(interactive bool) (*app, error) {
	path := settingsPath
	if path == "" {
		path = settings.DefaultPath()
	}

	store := settings.NewStore(path)
	if err := store.Load(); err != nil {
		return nil, err
	}

	vault := vaultfs.NewOS(vaultDir)

	var prompter types.Prompter
	switch {
	case force:
		prompter = types.StaticPrompter{Decision: types.DecisionReplace}
	case interactive:
		prompter = ptermPrompter{}
	default:
		prompter = types.StaticPrompter{Decision: types.DecisionCancel}
	}

	return &app{
		store:        store,
		vault:        vault,
		orchestrator: archive.New(vault, prompter, terminalNotifier{}, store),
	}, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("arca version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}
