// Package desktop is the fyne front end: one window with the four actions.
package desktop

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"flashcards/internal/controller"
	"flashcards/internal/domain"
	"flashcards/internal/service"
)

const (
	windowTitle = "Vocabulary Flashcard App"
	promptWidth = 420
)

// Window is the main application window and the controller's view
type Window struct {
	window fyne.Window
	logger *zap.Logger

	headline *widget.Label
	entries  *widget.Label

	addButton     *widget.Button
	viewAllButton *widget.Button
	searchButton  *widget.Button
	quizButton    *widget.Button

	controller *controller.Controller
}

// NewWindow builds the main window for app
func NewWindow(app fyne.App, cards *service.FlashcardService, logger *zap.Logger) *Window {
	w := &Window{
		window: app.NewWindow(windowTitle),
		logger: logger,
	}
	w.controller = controller.New(cards, w, logger)

	w.headline = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	w.entries = widget.NewLabel("")
	w.entries.Wrapping = fyne.TextWrapWord

	w.addButton = widget.NewButtonWithIcon("Add Flashcard", theme.ContentAddIcon(), w.controller.AddFlashcard)
	w.viewAllButton = widget.NewButtonWithIcon("View All Flashcards", theme.ListIcon(), w.controller.ViewAll)
	w.searchButton = widget.NewButtonWithIcon("Search Word", theme.SearchIcon(), w.controller.SearchWord)
	w.quizButton = widget.NewButtonWithIcon("Take Quiz", theme.QuestionIcon(), w.controller.TakeQuiz)

	buttons := container.NewBorder(nil, w.quizButton, w.addButton, w.searchButton, w.viewAllButton)

	w.window.SetContent(container.NewPadded(
		container.NewBorder(w.headline, buttons, nil, nil, container.NewVScroll(w.entries)),
	))
	w.window.Resize(fyne.NewSize(600, 400))

	return w
}

// ShowAndRun shows the window and runs the fyne event loop
func (w *Window) ShowAndRun() {
	w.logger.Info("Desktop window opened")
	w.window.ShowAndRun()
}

func (w *Window) Prompt(message string, done func(input string, ok bool)) {
	entry := widget.NewEntry()

	form := dialog.NewForm("", "OK", "Cancel",
		[]*widget.FormItem{widget.NewFormItem(message, entry)},
		func(ok bool) {
			done(entry.Text, ok)
		},
		w.window,
	)
	entry.OnSubmitted = func(string) { form.Submit() }

	form.Resize(fyne.NewSize(promptWidth, form.MinSize().Height))
	form.Show()
	w.window.Canvas().Focus(entry)
}

func (w *Window) Inform(title, message string, done func()) {
	d := dialog.NewInformation(title, message, w.window)
	d.SetOnClosed(done)
	d.Show()
}

func (w *Window) Warn(title, message string, done func()) {
	content := container.NewHBox(widget.NewIcon(theme.WarningIcon()), widget.NewLabel(message))
	d := dialog.NewCustom(title, "OK", content, w.window)
	d.SetOnClosed(done)
	d.Show()
}

func (w *Window) ShowEntries(text string) {
	w.entries.SetText(text)
}

func (w *Window) ShowLastAdded(entry domain.Entry) {
	w.headline.SetText(entry.Word + "\t" + entry.Translation)
}
