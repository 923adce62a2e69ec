package sqlstore

import (
	"database/sql"
	"fmt"

	"flashcards/internal/domain"
)

// Repo implements repository.FlashcardRepository on a SQL database.
// Queries use $n placeholders, understood by both lib/pq and go-sqlite3.
type Repo struct {
	db *sql.DB
}

// NewRepo creates a new flashcard repository
func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// Load returns all flashcards in insertion order
func (r *Repo) Load() ([]domain.Entry, error) {
	query := `
		SELECT word, translation
		FROM flashcards
		ORDER BY position
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(&e.Word, &e.Translation); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Save replaces the stored flashcards with entries in one transaction
func (r *Repo) Save(entries []domain.Entry) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM flashcards`); err != nil {
		return fmt.Errorf("failed to clear flashcards: %w", err)
	}

	query := `
		INSERT INTO flashcards (position, word, translation)
		VALUES ($1, $2, $3)
	`
	for i, e := range entries {
		if _, err := tx.Exec(query, i, e.Word, e.Translation); err != nil {
			return fmt.Errorf("failed to insert flashcard %q: %w", e.Word, err)
		}
	}

	return tx.Commit()
}
