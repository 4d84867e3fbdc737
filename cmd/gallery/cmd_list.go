package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/gallery/internal/app"
	"github.com/five82/gallery/internal/catalog"
	"github.com/five82/gallery/internal/ui"
)

func newListCmd(opts *app.Options) *cobra.Command {
	var (
		query         string
		artist        string
		onlyFavorites bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print artworks matching a query and artist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := app.Open(*opts)
			if err != nil {
				return err
			}
			defer func() { _ = env.Close() }()

			items := catalog.Filter(env.Catalog, catalog.Criteria{Query: query, Artist: artist})
			if onlyFavorites {
				kept := items[:0:0]
				for _, art := range items {
					if env.Favorites.Has(art.ID) {
						kept = append(kept, art)
					}
				}
				items = kept
			}

			out := cmd.OutOrStdout()
			if len(items) == 0 {
				_, err := fmt.Fprintln(out, "No artworks found.")
				return err
			}
			if err := ui.WriteListing(out, items, env.Favorites.Has); err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "\n%d artworks found\n", len(items))
			return err
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "match title, artist or tag (case-insensitive)")
	cmd.Flags().StringVarP(&artist, "artist", "a", catalog.AllArtists, "exact artist name, or \"all\"")
	cmd.Flags().BoolVar(&onlyFavorites, "favorites", false, "only favorites")
	return cmd
}

func newArtistsCmd(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "artists",
		Short: "Print the distinct artist names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := app.Open(*opts)
			if err != nil {
				return err
			}
			defer func() { _ = env.Close() }()

			for _, name := range catalog.Artists(env.Catalog) {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
