package server

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/ai4life/career-advisor-go/pkg/errors"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// RespondServiceError maps typed application errors onto HTTP status
// codes; anything unclassified becomes a 500.
func RespondServiceError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	if stderrors.As(err, &validationErr) {
		RespondError(c, validationErr.StatusCode, validationErr.Code, err)
		return
	}

	var databaseErr *apperrors.DatabaseError
	if stderrors.As(err, &databaseErr) {
		RespondError(c, databaseErr.StatusCode, databaseErr.Code, err)
		return
	}

	var serviceErr *apperrors.ServiceError
	if stderrors.As(err, &serviceErr) {
		RespondError(c, serviceErr.StatusCode, serviceErr.Code, err)
		return
	}

	RespondError(c, http.StatusInternalServerError, apperrors.CodeAppError, err)
}
