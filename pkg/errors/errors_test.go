package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Detail(t *testing.T) {
	cause := stderrors.New("no objects found")

	assert.Equal(t, "File must be a PDF.", NewValidationError("File must be a PDF.").Error())
	assert.Equal(t, "PDF processing error: no objects found", NewExtractionError(cause).Error())
	assert.Equal(t, "OpenAI API error: no objects found", NewCompletionError(cause).Error())
}

func TestAppError_StatusCodes(t *testing.T) {
	cause := stderrors.New("boom")

	assert.Equal(t, http.StatusBadRequest, GetStatusCode(NewValidationError("bad")))
	assert.Equal(t, http.StatusInternalServerError, GetStatusCode(NewExtractionError(cause)))
	assert.Equal(t, http.StatusInternalServerError, GetStatusCode(NewCompletionError(cause)))
	assert.Equal(t, http.StatusInternalServerError, GetStatusCode(cause))
}

func TestAppError_WrappedClassification(t *testing.T) {
	cause := stderrors.New("dial tcp: timeout")
	wrapped := fmt.Errorf("analyze: %w", NewCompletionError(cause))

	appErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrorTypeCompletion, appErr.Type)
	assert.True(t, IsType(wrapped, ErrorTypeCompletion))
	assert.False(t, IsType(wrapped, ErrorTypeExtraction))
	assert.ErrorIs(t, wrapped, cause)
}
