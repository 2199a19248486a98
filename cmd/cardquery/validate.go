package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tenlands/cardbinder/card"
	"github.com/tenlands/cardbinder/deck"
)

func validateCmd() *cobra.Command {
	var indexPath, chunksRaw, deckPath, preset string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a decklist file against a format preset",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := buildWorker(cmd.Context(), indexPath, splitChunks(chunksRaw))
			if err != nil {
				return err
			}
			corpus, err := w.Corpus()
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(deckPath)
			if err != nil {
				return fmt.Errorf("reading decklist %s: %w", deckPath, err)
			}

			byName := byNameIndex(corpus.CanonicalCards())
			d, err := parseDecklist(string(raw), byName)
			if err != nil {
				return err
			}
			if preset != "" {
				d.Format = preset
			}

			cardByOracle := func(oracleID uuid.UUID) *card.Card {
				return corpus.CardByPrintingID(corpus.CanonicalPrinting(oracleID))
			}

			res, err := deck.Validate(d, corpus.CardByPrintingID, cardByOracle, corpus.PrintingsByOracleID, deck.Options{Preset: preset})
			if err != nil {
				return err
			}

			if res.Valid {
				fmt.Println("deck is valid")
			} else {
				fmt.Println("deck is INVALID")
			}
			for _, v := range res.Violations {
				fmt.Printf("[%s] %s: %s\n", v.Severity, v.RuleID, v.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&indexPath, "index", "", "path to the corpus index fixture")
	cmd.Flags().StringVar(&chunksRaw, "chunks", "", "comma-separated paths to corpus chunk fixtures")
	cmd.Flags().StringVar(&deckPath, "deck", "", "path to an Arena-style decklist file")
	cmd.Flags().StringVar(&preset, "preset", "", "format preset, e.g. commander")

	return cmd
}
