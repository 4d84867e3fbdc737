package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/gallery/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "gallery: %v\n", err)
		return 1
	}
	return 0
}

// newRootCmd builds the gallery command tree. Without a subcommand it runs
// the TUI.
func newRootCmd() *cobra.Command {
	opts := &app.Options{}

	root := &cobra.Command{
		Use:   "gallery",
		Short: "Browse an art catalog in the terminal",
		Long: `gallery shows an artwork catalog as a searchable grid.

Filter by title, artist or tag, open artworks in a viewer, and keep
favorites that persist between runs.

Run without arguments to start the interactive browser.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), *opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/gallery/config.toml)")
	flags.StringVar(&opts.CatalogPath, "catalog", "", "catalog file, .json or .yaml (default embedded catalog)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default ~/.config/gallery/prefs.toml)")
	flags.StringVar(&opts.StorageBackend, "storage", "", "storage backend: file, sqlite or memory")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newListCmd(opts))
	root.AddCommand(newArtistsCmd(opts))
	root.AddCommand(newFavCmd(opts))
	return root
}
