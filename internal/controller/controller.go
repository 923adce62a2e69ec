package controller

import (
	"errors"
	"fmt"

	"flashcards/internal/domain"
	"flashcards/internal/service"

	"go.uber.org/zap"
)

// Controller runs the add, list, search and quiz actions against a view
type Controller struct {
	cards  *service.FlashcardService
	view   View
	logger *zap.Logger
}

// New creates a controller bound to one view
func New(cards *service.FlashcardService, view View, logger *zap.Logger) *Controller {
	return &Controller{
		cards:  cards,
		view:   view,
		logger: logger,
	}
}

// AddFlashcard asks for a word and its translation and stores them
func (c *Controller) AddFlashcard() {
	c.view.Prompt(promptNewWord, func(word string, ok bool) {
		if !ok {
			c.warn(titleInvalidInput, msgInvalidPair)
			return
		}

		c.view.Prompt(promptTranslation, func(translation string, ok bool) {
			if !ok {
				c.warn(titleInvalidInput, msgInvalidPair)
				return
			}
			c.add(word, translation)
		})
	})
}

func (c *Controller) add(word, translation string) {
	err := c.cards.Add(word, translation)
	switch {
	case err == nil:
		entry, _ := domain.NewEntry(word, translation)
		c.view.ShowLastAdded(entry)
		c.view.Inform(titleAdd, msgAdded, noop)
	case errors.Is(err, domain.ErrDuplicateWord):
		c.warn(titleDuplicate, msgDuplicate)
	default:
		c.warn(titleInvalidInput, msgInvalidPair)
	}
}

// ViewAll renders every flashcard
func (c *Controller) ViewAll() {
	c.view.ShowEntries(service.FormatEntries(c.cards.List()))
}

// SearchWord asks for a word and shows its translation
func (c *Controller) SearchWord() {
	c.view.Prompt(promptSearch, func(word string, ok bool) {
		if !ok {
			c.warn(titleInvalidInput, msgInvalidSearch)
			return
		}

		translation, err := c.cards.Search(word)
		switch {
		case err == nil:
			c.view.Inform(titleFound, "Translation: "+translation, noop)
		case errors.Is(err, domain.ErrWordNotFound):
			c.warn(titleNotFound, msgNotFound)
		default:
			c.warn(titleInvalidInput, msgInvalidSearch)
		}
	})
}

// TakeQuiz asks for a quiz length and then each sampled word in turn
func (c *Controller) TakeQuiz() {
	quiz := service.NewQuizSession(c.cards)

	c.view.Prompt(promptQuizCount, func(input string, ok bool) {
		if !ok {
			return
		}

		if err := quiz.Begin(input); err != nil {
			c.warn(titleInvalidInput, quizCountMessage(err))
			return
		}

		c.logger.Debug("Quiz started", zap.Int("words", quiz.Score().Total))
		c.ask(quiz)
	})
}

func (c *Controller) ask(quiz *service.QuizSession) {
	entry, ok := quiz.Current()
	if !ok {
		score := quiz.Score()
		c.logger.Debug("Quiz completed", zap.String("score", score.String()))
		c.view.Inform(titleQuizResult, "Quiz completed!\nCorrect Answers: "+score.String(), noop)
		return
	}

	c.view.Prompt("Translate the word: "+entry.Word, func(answer string, ok bool) {
		if !ok {
			quiz.Skip()
			c.ask(quiz)
			return
		}

		correct, expected := quiz.Answer(answer)
		if correct {
			c.ask(quiz)
			return
		}

		c.view.Warn(titleIncorrect, "Incorrect!\nCorrect Translation: "+expected, func() {
			c.ask(quiz)
		})
	})
}

func quizCountMessage(err error) string {
	var rangeErr *domain.RangeError
	if !errors.As(err, &rangeErr) {
		return msgInvalidNumber
	}
	if rangeErr.Max == 0 {
		return service.EmptyListMessage
	}
	return fmt.Sprintf("Invalid number of words. Please enter a number between 1 and %d", rangeErr.Max)
}

func (c *Controller) warn(title, message string) {
	c.view.Warn(title, message, noop)
}

func noop() {}
