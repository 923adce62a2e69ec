package controller

// Prompts
const (
	promptNewWord     = "Enter the new word:"
	promptTranslation = "Enter the translation:"
	promptSearch      = "Enter the word to search:"
	promptQuizCount   = "Enter the number of words for the quiz:"
)

// Dialog titles
const (
	titleAdd          = "Add"
	titleDuplicate    = "Duplicate Word"
	titleInvalidInput = "Invalid Input"
	titleFound        = "Word Found"
	titleNotFound     = "Word Not Found"
	titleIncorrect    = "Incorrect Answer"
	titleQuizResult   = "Quiz Result"
)

// Messages
const (
	msgAdded         = "Flashcard added successfully!"
	msgDuplicate     = "The word already exists. Please enter a new word."
	msgInvalidPair   = "Invalid input. Please enter both word and translation."
	msgInvalidSearch = "Invalid input. Please enter a word to search."
	msgNotFound      = "Word not found."
	msgInvalidNumber = "Invalid input. Please enter a valid number."
)
