package main

import (
	"fmt"

	"flashcards/internal/repository/jsonfile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Copy flashcards from a JSON file into the configured storage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := jsonfile.NewRepo(args[0]).Load()
			if err != nil && len(entries) == 0 {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}
			if err != nil {
				a.logger.Warn("Importing readable part of file", zap.String("file", args[0]), zap.Error(err))
			}

			added := a.cards.Import(entries)
			a.logger.Info("Import finished",
				zap.String("file", args[0]),
				zap.Int("read", len(entries)),
				zap.Int("added", added),
			)

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d flashcards\n", added, len(entries))
			return nil
		},
	}
}
