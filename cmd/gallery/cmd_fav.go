package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/gallery/internal/app"
	"github.com/five82/gallery/internal/catalog"
	"github.com/five82/gallery/internal/ui"
)

func newFavCmd(opts *app.Options) *cobra.Command {
	fav := &cobra.Command{
		Use:   "fav",
		Short: "Inspect and change favorites",
	}

	fav.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print favorites in the order they were added",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := app.Open(*opts)
			if err != nil {
				return err
			}
			defer func() { _ = env.Close() }()

			out := cmd.OutOrStdout()
			ids := env.Favorites.IDs()
			if len(ids) == 0 {
				_, err := fmt.Fprintln(out, "No favorites yet.")
				return err
			}

			var known []catalog.Artwork
			var unknown []string
			for _, id := range ids {
				if art, ok := env.Catalog.ByID(id); ok {
					known = append(known, art)
				} else {
					unknown = append(unknown, id)
				}
			}
			if err := ui.WriteListing(out, known, env.Favorites.Has); err != nil {
				return err
			}
			for _, id := range unknown {
				if _, err := fmt.Fprintf(out, "♥  %s  (not in catalog)\n", id); err != nil {
					return err
				}
			}
			return nil
		},
	})

	fav.AddCommand(&cobra.Command{
		Use:   "toggle <id>",
		Short: "Add or remove an artwork from favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := app.Open(*opts)
			if err != nil {
				return err
			}
			defer func() { _ = env.Close() }()

			art, ok := env.Catalog.ByID(args[0])
			if !ok {
				return fmt.Errorf("unknown artwork %q", args[0])
			}
			if err := env.Favorites.Toggle(art.ID); err != nil {
				return err
			}

			state := "removed from favorites"
			if env.Favorites.Has(art.ID) {
				state = "added to favorites"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", art.Title, state)
			return err
		},
	})

	return fav
}
