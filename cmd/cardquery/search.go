package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tenlands/cardbinder/card"
	"github.com/tenlands/cardbinder/querylang"
	"github.com/tenlands/cardbinder/search"
)

func searchCmd() *cobra.Command {
	var indexPath, chunksRaw, format, colors, sortField string
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Run a query against a local corpus fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := buildWorker(cmd.Context(), indexPath, splitChunks(chunksRaw))
			if err != nil {
				return err
			}

			var identity card.ColorSet
			if colors != "" {
				identity = card.ColorSet{}
				for _, r := range colors {
					identity[card.Color(r)] = struct{}{}
				}
			}

			res := w.PaginatedUnifiedSearch(search.UnifiedRequest{
				Query:        args[0],
				Restrictions: search.Restrictions{Format: format, ColorIdentity: identity},
				SortField:    querylang.ParseSortField(sortField),
				Offset:       offset,
				Limit:        limit,
			})
			if res.Err != nil {
				return res.Err
			}

			fmt.Println(search.DescribePage(res.TotalCount, offset, limit))
			for _, c := range res.Cards {
				fmt.Printf("%s  %s  %s\n", c.Name, c.ManaCost, c.TypeLine)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&indexPath, "index", "", "path to the corpus index fixture")
	cmd.Flags().StringVar(&chunksRaw, "chunks", "", "comma-separated paths to corpus chunk fixtures")
	cmd.Flags().StringVar(&format, "format", "", "restrict results to a legal/restricted format")
	cmd.Flags().StringVar(&colors, "colors", "", "restrict results to a color identity, e.g. UR")
	cmd.Flags().StringVar(&sortField, "sort", "name", "sort field: name|cmc|released|rarity|color")
	cmd.Flags().IntVar(&limit, "limit", 20, "page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "page offset")

	return cmd
}
