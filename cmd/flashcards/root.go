package main

import (
	"flashcards/internal/controller"
	"flashcards/internal/desktop"
	"flashcards/internal/terminal"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
)

const appID = "io.github.flashcards"

func newRootCmd(a *app) *cobra.Command {
	var o overrides

	root := &cobra.Command{
		Use:          "flashcards",
		Short:        "Vocabulary flashcards: add words, look them up, quiz yourself",
		Long:         "Without a subcommand the desktop window opens.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(o)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			desktop.NewWindow(fyneapp.NewWithID(appID), a.cards, a.logger).ShowAndRun()
			return nil
		},
	}

	root.PersistentFlags().StringVar(&o.filePath, "file", "", "flashcards JSON file (overrides FLASHCARDS_FILE)")
	root.PersistentFlags().StringVar(&o.driver, "driver", "", "storage driver: json, sqlite3 or postgres (overrides STORAGE_DRIVER)")

	root.AddCommand(
		newBotCmd(a),
		newImportCmd(a),
		newActionCmd(a, "add", "Add a flashcard", (*controller.Controller).AddFlashcard),
		newActionCmd(a, "list", "Show all flashcards", (*controller.Controller).ViewAll),
		newActionCmd(a, "search", "Look up a word's translation", (*controller.Controller).SearchWord),
		newActionCmd(a, "quiz", "Take a quiz on random flashcards", (*controller.Controller).TakeQuiz),
	)

	return root
}

// newActionCmd runs one controller action in the terminal
func newActionCmd(a *app, use, short string, action func(*controller.Controller)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := terminal.NewView(cmd.InOrStdin(), cmd.OutOrStdout())
			action(controller.New(a.cards, view, a.logger))
			return nil
		},
	}
}
