package services

import (
	"class-notes/export"
	"class-notes/models"
	"class-notes/validator"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ==================== MOCKS ====================

// MockRepository is a mock implementation of NoteRepository interface
type MockRepository struct {
	mock.Mock
}

// Ensure MockRepository implements NoteRepository interface
var _ NoteRepository = (*MockRepository)(nil)

func (m *MockRepository) AddNote(className string, fields map[string]string) (int64, error) {
	args := m.Called(className, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) ListNotesByClass(className string) ([]models.Note, error) {
	args := m.Called(className)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Note), args.Error(1)
}

func (m *MockRepository) GetNote(id int64) (*models.Note, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Note), args.Error(1)
}

func (m *MockRepository) UpdateNote(id int64, className string, fields map[string]string) error {
	args := m.Called(id, className, fields)
	return args.Error(0)
}

func (m *MockRepository) DeleteNote(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockRepository) CountNotesByClass() (map[string]int, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

// MockExporter is a mock implementation of DocumentExporter interface
type MockExporter struct {
	mock.Mock
}

var _ DocumentExporter = (*MockExporter)(nil)

func (m *MockExporter) Export(className string, notes []models.Note, format export.Format) (*export.Result, error) {
	args := m.Called(className, notes, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*export.Result), args.Error(1)
}

var testClasses = []string{"Class UKG", "Class 1", "Class 3"}

func newTestService(repo *MockRepository, exporter *MockExporter) *NoteService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewNoteService(repo, exporter, validator.New(), models.TitledSchema, testClasses, logger)
}

// ==================== TESTS ====================

func TestNoteService_Classes(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("CountNotesByClass").Return(map[string]int{"Class 3": 2, "Class 99": 4}, nil)

	service := newTestService(mockRepo, nil)

	classes, err := service.Classes()
	require.NoError(t, err)
	assert.Equal(t, []models.ClassSummary{
		{Name: "Class UKG", Count: 0},
		{Name: "Class 1", Count: 0},
		{Name: "Class 3", Count: 2},
	}, classes)

	mockRepo.AssertExpectations(t)
}

func TestNoteService_Add(t *testing.T) {
	tests := []struct {
		name          string
		className     string
		fields        map[string]string
		mockSetup     func(*MockRepository)
		expectedID    int64
		expectedError error
		validation    bool
	}{
		{
			name:      "Success - stores the note",
			className: "Class 3",
			fields:    map[string]string{"title": "Algebra", "content": "Quadratics"},
			mockSetup: func(repo *MockRepository) {
				repo.On("AddNote", "Class 3", map[string]string{"title": "Algebra", "content": "Quadratics"}).Return(int64(12), nil)
			},
			expectedID: 12,
		},
		{
			name:          "Error - class not on the roster",
			className:     "Class 42",
			fields:        map[string]string{"title": "Algebra", "content": "Quadratics"},
			expectedError: ErrUnknownClass,
		},
		{
			name:       "Error - empty content",
			className:  "Class 3",
			fields:     map[string]string{"title": "Algebra", "content": ""},
			validation: true,
		},
		{
			name:      "Error - repository fails",
			className: "Class 1",
			fields:    map[string]string{"title": "a", "content": "b"},
			mockSetup: func(repo *MockRepository) {
				repo.On("AddNote", "Class 1", mock.Anything).Return(int64(0), errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			if tt.mockSetup != nil {
				tt.mockSetup(mockRepo)
			}

			service := newTestService(mockRepo, nil)
			note, err := service.Add(tt.className, tt.fields)

			switch {
			case tt.validation:
				assert.Nil(t, note)
				var verrs validator.ValidationErrors
				assert.ErrorAs(t, err, &verrs)
			case tt.expectedError != nil:
				assert.Nil(t, note)
				require.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.expectedID, note.ID)
				assert.Equal(t, tt.className, note.ClassName)
				assert.Equal(t, tt.fields, note.Fields)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestNoteService_Get(t *testing.T) {
	t.Run("Success - note exists", func(t *testing.T) {
		mockRepo := new(MockRepository)
		expected := &models.Note{ID: 5, ClassName: "Class 1", Fields: map[string]string{"title": "t"}}
		mockRepo.On("GetNote", int64(5)).Return(expected, nil)

		note, err := newTestService(mockRepo, nil).Get(5)
		require.NoError(t, err)
		assert.Equal(t, expected, note)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - note absent", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("GetNote", int64(6)).Return(nil, nil)

		note, err := newTestService(mockRepo, nil).Get(6)
		assert.Nil(t, note)
		assert.ErrorIs(t, err, ErrNoteNotFound)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - invalid id", func(t *testing.T) {
		_, err := newTestService(new(MockRepository), nil).Get(0)
		assert.ErrorIs(t, err, ErrInvalidNoteID)
	})
}

func TestNoteService_Update(t *testing.T) {
	fields := map[string]string{"title": "New", "content": "Body"}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("UpdateNote", int64(3), "", fields).Return(nil)

		err := newTestService(mockRepo, nil).Update(3, "", fields)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - unknown target class", func(t *testing.T) {
		mockRepo := new(MockRepository)

		err := newTestService(mockRepo, nil).Update(3, "Class 42", fields)
		assert.ErrorIs(t, err, ErrUnknownClass)
		mockRepo.AssertNotCalled(t, "UpdateNote", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error - missing title", func(t *testing.T) {
		mockRepo := new(MockRepository)

		err := newTestService(mockRepo, nil).Update(3, "", map[string]string{"content": "Body"})
		var verrs validator.ValidationErrors
		assert.ErrorAs(t, err, &verrs)
		mockRepo.AssertNotCalled(t, "UpdateNote", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestNoteService_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("DeleteNote", int64(9)).Return(nil)

		assert.NoError(t, newTestService(mockRepo, nil).Delete(9))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - repository fails", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("DeleteNote", int64(9)).Return(errors.New("database error"))

		err := newTestService(mockRepo, nil).Delete(9)
		assert.EqualError(t, err, "database error")
	})
}

func TestNoteService_Export(t *testing.T) {
	notes := []models.Note{{ID: 1, ClassName: "Class 3", Fields: map[string]string{"title": "Algebra", "content": "Quadratics"}}}

	t.Run("Default format comes from the schema", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockExporter := new(MockExporter)
		mockRepo.On("ListNotesByClass", "Class 3").Return(notes, nil)
		mockExporter.On("Export", "Class 3", notes, export.FormatPDF).
			Return(&export.Result{Path: "Class 3_notes.pdf", Format: export.FormatPDF, FallbackFont: true}, nil)

		result, err := newTestService(mockRepo, mockExporter).Export("Class 3", "")
		require.NoError(t, err)
		assert.Equal(t, "Class 3_notes.pdf", result.Path)
		assert.True(t, result.FallbackFont)

		mockRepo.AssertExpectations(t)
		mockExporter.AssertExpectations(t)
	})

	t.Run("Explicit format", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockExporter := new(MockExporter)
		mockRepo.On("ListNotesByClass", "Class 3").Return(notes, nil)
		mockExporter.On("Export", "Class 3", notes, export.FormatDOCX).
			Return(&export.Result{Path: "Class 3_notes.docx", Format: export.FormatDOCX}, nil)

		result, err := newTestService(mockRepo, mockExporter).Export("Class 3", "docx")
		require.NoError(t, err)
		assert.Equal(t, export.FormatDOCX, result.Format)
	})

	t.Run("Error - unsupported format", func(t *testing.T) {
		mockRepo := new(MockRepository)

		_, err := newTestService(mockRepo, new(MockExporter)).Export("Class 3", "odt")
		assert.ErrorIs(t, err, export.ErrUnsupportedFormat)
		mockRepo.AssertNotCalled(t, "ListNotesByClass", mock.Anything)
	})

	t.Run("Error - storage failure propagates", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("ListNotesByClass", "Class 3").Return(nil, errors.New("disk I/O error"))

		_, err := newTestService(mockRepo, new(MockExporter)).Export("Class 3", "pdf")
		assert.EqualError(t, err, "disk I/O error")
	})
}
