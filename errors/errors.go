package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")
	ErrEmptyWords  = fmt.Errorf("no words have been found")

	// Clustering run failures. A run hitting any of them returns no partial result.
	ErrEmbeddingFailure     = fmt.Errorf("embedding failure")
	ErrPreprocessingFailure = fmt.Errorf("preprocessing failure")
	ErrCalculationFailure   = fmt.Errorf("calculation failure")

	ErrModelLoad        = fmt.Errorf("embedding model could not be loaded")
	ErrInvalidRoomID    = fmt.Errorf("invalid room id")
	ErrInvalidQuestion  = fmt.Errorf("invalid question")
	ErrNoQuestions      = fmt.Errorf("no questions found")
	ErrStoreUnavailable = fmt.Errorf("store unavailable")
	ErrUnauthorized     = fmt.Errorf("unauthorized")
	ErrTooManyRequests  = fmt.Errorf("too many requests")
)

// ReportErrorCode is the user-facing description of a failure.
type ReportErrorCode struct {
	Code    string
	Status  int
	Message string
}

var (
	CodeTooManyRequests  = ReportErrorCode{"Q001", http.StatusTooManyRequests, "Too many requests, please retry later."}
	CodeInvalidRoomID    = ReportErrorCode{"Q002", http.StatusBadRequest, "Invalid room id."}
	CodeStoreUnavailable = ReportErrorCode{"Q003", http.StatusServiceUnavailable, "The data store could not be reached."}
	CodeInvalidQuestion  = ReportErrorCode{"Q011", http.StatusBadRequest, "Invalid question payload."}
	CodeNoQuestions      = ReportErrorCode{"Q005", http.StatusNotFound, "No question data."}
	CodeModelLoad        = ReportErrorCode{"Q006", http.StatusInternalServerError, "The embedding model could not be loaded."}
	CodeEmbedding        = ReportErrorCode{"Q007", http.StatusInternalServerError, "Question embedding failed."}
	CodeCalculation      = ReportErrorCode{"Q008", http.StatusInternalServerError, "Similarity calculation failed."}
	CodePreprocessing    = ReportErrorCode{"Q009", http.StatusInternalServerError, "Question preprocessing failed."}
	CodeUnauthorized     = ReportErrorCode{"Q010", http.StatusUnauthorized, "Unauthorized."}
	CodeUnknown          = ReportErrorCode{"Q999", http.StatusInternalServerError, "Unknown error."}
)

var codes = []struct {
	err  error
	code ReportErrorCode
}{
	{ErrTooManyRequests, CodeTooManyRequests},
	{ErrInvalidRoomID, CodeInvalidRoomID},
	{ErrStoreUnavailable, CodeStoreUnavailable},
	{ErrInvalidQuestion, CodeInvalidQuestion},
	{ErrNoQuestions, CodeNoQuestions},
	{ErrModelLoad, CodeModelLoad},
	{ErrEmbeddingFailure, CodeEmbedding},
	{ErrCalculationFailure, CodeCalculation},
	{ErrPreprocessingFailure, CodePreprocessing},
	{ErrUnauthorized, CodeUnauthorized},
}

// CodeFor resolves the first known sentinel wrapped by err.
func CodeFor(err error) ReportErrorCode {
	for _, c := range codes {
		if stderrors.Is(err, c.err) {
			return c.code
		}
	}
	return CodeUnknown
}
