package service

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"testing"

	"flashcards/internal/domain"
	"flashcards/internal/repository/jsonfile"
	"flashcards/internal/testutil"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestService returns a store over a mock repository that accepts every save
func newTestService(t *testing.T, entries ...domain.Entry) (*FlashcardService, *testutil.MockFlashcardRepository) {
	t.Helper()

	mockRepo := new(testutil.MockFlashcardRepository)
	if len(entries) == 0 {
		mockRepo.On("Load").Return(nil, fs.ErrNotExist)
	} else {
		mockRepo.On("Load").Return(entries, nil)
	}
	mockRepo.On("Save", mock.Anything).Return(nil).Maybe()

	service := NewFlashcardService(mockRepo, testutil.NewTestLogger())
	service.Load()
	return service, mockRepo
}

func TestFlashcardService_Load(t *testing.T) {
	entries := []domain.Entry{
		testutil.NewTestEntry("dog", "chien"),
		testutil.NewTestEntry("cat", "chat"),
	}

	tests := []struct {
		name          string
		mockEntries   []domain.Entry
		mockError     error
		expectedCount int
	}{
		{
			name:          "entries loaded",
			mockEntries:   entries,
			expectedCount: 2,
		},
		{
			name:          "missing file is first run",
			mockError:     fmt.Errorf("open flashcards.json: %w", fs.ErrNotExist),
			expectedCount: 0,
		},
		{
			name:          "parse failure leaves store empty",
			mockError:     fmt.Errorf("failed to parse"),
			expectedCount: 0,
		},
		{
			name:          "partial data with error is kept",
			mockEntries:   entries[:1],
			mockError:     &jsonfile.MismatchError{Words: 2, Translations: 1},
			expectedCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockFlashcardRepository)
			if tt.mockEntries == nil {
				mockRepo.On("Load").Return(nil, tt.mockError)
			} else {
				mockRepo.On("Load").Return(tt.mockEntries, tt.mockError)
			}

			service := NewFlashcardService(mockRepo, testutil.NewTestLogger())
			service.Load()

			assert.Equal(t, tt.expectedCount, service.Count())
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestFlashcardService_Add(t *testing.T) {
	tests := []struct {
		name          string
		word          string
		translation   string
		expectedEntry domain.Entry
		expectedError error
	}{
		{
			name:          "valid pair",
			word:          "hello",
			translation:   "bonjour",
			expectedEntry: testutil.NewTestEntry("hello", "bonjour"),
		},
		{
			name:          "inputs are trimmed",
			word:          "  hello ",
			translation:   " bonjour\t",
			expectedEntry: testutil.NewTestEntry("hello", "bonjour"),
		},
		{
			name:          "empty word",
			word:          "",
			translation:   "bonjour",
			expectedError: domain.ErrInvalidInput,
		},
		{
			name:          "whitespace-only word",
			word:          "   ",
			translation:   "bonjour",
			expectedError: domain.ErrInvalidInput,
		},
		{
			name:          "empty translation",
			word:          "hello",
			translation:   "",
			expectedError: domain.ErrInvalidInput,
		},
		{
			name:          "both empty",
			word:          " ",
			translation:   "\n",
			expectedError: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockFlashcardRepository)

			// Only expect persistence if inputs are valid
			if tt.expectedError == nil {
				mockRepo.On("Save", []domain.Entry{tt.expectedEntry}).Return(nil)
			}

			service := NewFlashcardService(mockRepo, testutil.NewTestLogger())

			err := service.Add(tt.word, tt.translation)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, service.List())
				mockRepo.AssertNotCalled(t, "Save", mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, []domain.Entry{tt.expectedEntry}, service.List())
				mockRepo.AssertExpectations(t)
			}
		})
	}
}

func TestFlashcardService_Add_Duplicate(t *testing.T) {
	service, mockRepo := newTestService(t)

	require.NoError(t, service.Add("cat", "chat"))

	err := service.Add("cat", "gato")
	assert.ErrorIs(t, err, domain.ErrDuplicateWord)
	assert.Equal(t, 1, service.Count())

	// after trimming it is still the same word
	err = service.Add(" cat ", "gato")
	assert.ErrorIs(t, err, domain.ErrDuplicateWord)
	assert.Equal(t, 1, service.Count())

	mockRepo.AssertNumberOfCalls(t, "Save", 1)
}

func TestFlashcardService_Add_DuplicateCheckIsCaseSensitive(t *testing.T) {
	service, _ := newTestService(t)

	require.NoError(t, service.Add("Cat", "chat"))
	require.NoError(t, service.Add("cat", "gato"))

	assert.Equal(t, 2, service.Count())

	// search returns the first match
	translation, err := service.Search("CAT")
	assert.NoError(t, err)
	assert.Equal(t, "chat", translation)
}

func TestFlashcardService_Add_PersistFailureKeepsEntry(t *testing.T) {
	mockRepo := new(testutil.MockFlashcardRepository)
	mockRepo.On("Save", mock.Anything).Return(fmt.Errorf("disk full")).Once()
	mockRepo.On("Save", mock.Anything).Return(nil).Once()

	service := NewFlashcardService(mockRepo, testutil.NewTestLogger())

	assert.NoError(t, service.Add("dog", "chien"))
	assert.Equal(t, 1, service.Count())

	// next add retries with everything
	assert.NoError(t, service.Add("cat", "chat"))
	mockRepo.AssertCalled(t, "Save", []domain.Entry{
		testutil.NewTestEntry("dog", "chien"),
		testutil.NewTestEntry("cat", "chat"),
	})
	mockRepo.AssertExpectations(t)
}

func TestFlashcardService_Search(t *testing.T) {
	service, _ := newTestService(t,
		testutil.NewTestEntry("dog", "chien"),
		testutil.NewTestEntry("cat", "chat"),
		testutil.NewTestEntry("Hello", "Bonjour"),
	)

	tests := []struct {
		name          string
		query         string
		expected      string
		expectedError error
	}{
		{name: "exact", query: "cat", expected: "chat"},
		{name: "upper case", query: "CAT", expected: "chat"},
		{name: "lower case of capitalised word", query: "hello", expected: "Bonjour"},
		{name: "all caps", query: "HELLO", expected: "Bonjour"},
		{name: "same case", query: "Hello", expected: "Bonjour"},
		{name: "surrounding whitespace", query: "  dog  ", expected: "chien"},
		{name: "missing word", query: "bird", expectedError: domain.ErrWordNotFound},
		{name: "empty query", query: "   ", expectedError: domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			translation, err := service.Search(tt.query)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, translation)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, translation)
			}
		})
	}
}

func TestFlashcardService_List(t *testing.T) {
	service, _ := newTestService(t)
	assert.Empty(t, service.List())

	require.NoError(t, service.Add("dog", "chien"))
	require.NoError(t, service.Add("cat", "chat"))
	require.NoError(t, service.Add("bird", "oiseau"))

	list := service.List()
	assert.Equal(t, []string{"dog", "cat", "bird"}, lo.Map(list, func(e domain.Entry, _ int) string { return e.Word }))

	// callers get a copy
	list[0].Word = "changed"
	assert.Equal(t, "dog", service.List()[0].Word)
}

func TestFlashcardService_Sample(t *testing.T) {
	entries := []domain.Entry{
		testutil.NewTestEntry("dog", "chien"),
		testutil.NewTestEntry("cat", "chat"),
		testutil.NewTestEntry("bird", "oiseau"),
		testutil.NewTestEntry("fish", "poisson"),
	}
	service, _ := newTestService(t, entries...)

	for _, n := range []int{-1, 0, 5} {
		t.Run(fmt.Sprintf("invalid n=%d", n), func(t *testing.T) {
			sample, err := service.Sample(n)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)

			var rangeErr *domain.RangeError
			assert.ErrorAs(t, err, &rangeErr)
			assert.Equal(t, 4, rangeErr.Max)
			assert.Nil(t, sample)
		})
	}

	for n := 1; n <= len(entries); n++ {
		t.Run(fmt.Sprintf("valid n=%d", n), func(t *testing.T) {
			sample, err := service.Sample(n)
			require.NoError(t, err)
			assert.Len(t, sample, n)
			assert.Len(t, lo.Uniq(sample), n)
			assert.Subset(t, entries, sample)
		})
	}

	// sampling never reorders the store
	assert.Equal(t, entries, service.List())
}

func TestFlashcardService_Sample_EmptyStore(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Sample(1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFlashcardService_PersistRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flashcards.json")
	logger := testutil.NewTestLogger()

	first := NewFlashcardService(jsonfile.NewRepo(path), logger)
	first.Load()
	require.NoError(t, first.Add("dog", "chien"))
	require.NoError(t, first.Add("cat", "chat"))
	require.NoError(t, first.Add("über", "over"))

	second := NewFlashcardService(jsonfile.NewRepo(path), logger)
	second.Load()

	assert.Equal(t, first.List(), second.List())
}

func TestFormatEntries(t *testing.T) {
	tests := []struct {
		name     string
		entries  []domain.Entry
		expected string
	}{
		{
			name:     "empty store shows placeholder",
			entries:  nil,
			expected: "No flashcards available. Add flashcards first.",
		},
		{
			name: "entries as word and translation lines",
			entries: []domain.Entry{
				testutil.NewTestEntry("dog", "chien"),
				testutil.NewTestEntry("cat", "chat"),
			},
			expected: "Word: dog\nTranslation: chien\n\nWord: cat\nTranslation: chat\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatEntries(tt.entries))
		})
	}
}

func TestFlashcardService_Import(t *testing.T) {
	mockRepo := new(testutil.MockFlashcardRepository)
	mockRepo.On("Save", []domain.Entry{
		testutil.NewTestEntry("cat", "chat"),
		testutil.NewTestEntry("dog", "chien"),
		testutil.NewTestEntry("Cat", "gato"),
	}).Return(nil).Once()

	service := NewFlashcardService(mockRepo, testutil.NewTestLogger())
	service.entries = []domain.Entry{testutil.NewTestEntry("cat", "chat")}

	added := service.Import([]domain.Entry{
		testutil.NewTestEntry(" dog ", "chien"),
		testutil.NewTestEntry("cat", "minou"),
		testutil.NewTestEntry("", "nothing"),
		testutil.NewTestEntry("dog", "again"),
		testutil.NewTestEntry("Cat", "gato"),
	})

	assert.Equal(t, 2, added)
	assert.Equal(t, 3, service.Count())
	mockRepo.AssertExpectations(t)
}

func TestFlashcardService_Import_NothingNew(t *testing.T) {
	service, mockRepo := newTestService(t, testutil.NewTestEntry("cat", "chat"))

	added := service.Import([]domain.Entry{testutil.NewTestEntry("cat", "chat")})

	assert.Equal(t, 0, added)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything)
}
