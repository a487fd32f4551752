package helper

import (
	"errors"
	"math"
	"net/http"

	"inkpress/models"

	"github.com/gin-gonic/gin"
)

const (
	textError = `error`
	textOk    = `ok`
)

// response is the envelope every endpoint answers with.
type response struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func send(c *gin.Context, httpCode int, status, message string, data interface{}) {
	if data == nil {
		data = gin.H{}
	}
	c.JSON(httpCode, response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// SendSuccess ...
// Send success response to consumers.
func SendSuccess(c *gin.Context, message string, data interface{}) {
	send(c, http.StatusOK, textOk, message, data)
}

// SendCreated ...
// Send created response to consumers.
func SendCreated(c *gin.Context, message string, data interface{}) {
	send(c, http.StatusCreated, textOk, message, data)
}

// SendBadRequest ...
// Send bad request response to consumers.
func SendBadRequest(c *gin.Context, message string) {
	send(c, http.StatusBadRequest, textError, message, nil)
}

// SendUnauthorized ...
// Send unauthorized response to consumers.
func SendUnauthorized(c *gin.Context, message string) {
	send(c, http.StatusUnauthorized, textError, message, nil)
}

// SendForbidden ...
// Send forbidden response to consumers.
func SendForbidden(c *gin.Context, message string) {
	send(c, http.StatusForbidden, textError, message, nil)
}

// SendNotFound ...
// Send not found response to consumers.
func SendNotFound(c *gin.Context, message string) {
	send(c, http.StatusNotFound, textError, message, nil)
}

// SendDomainError maps a workflow or validation error kind onto the HTTP
// status the presentation contract expects.
func SendDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrEmptyTitle),
		errors.Is(err, models.ErrEmptyContent),
		errors.Is(err, models.ErrContentTooShort):
		send(c, http.StatusBadRequest, textError, err.Error(), nil)
	case errors.Is(err, models.ErrUnauthorized):
		send(c, http.StatusForbidden, textError, err.Error(), nil)
	case errors.Is(err, models.ErrNotFound):
		send(c, http.StatusNotFound, textError, err.Error(), nil)
	case errors.Is(err, models.ErrAlreadyDecided):
		send(c, http.StatusConflict, textError, err.Error(), nil)
	case errors.Is(err, models.ErrStoreUnavailable):
		send(c, http.StatusServiceUnavailable, textError, models.ErrStoreUnavailable.Error(), nil)
	default:
		send(c, http.StatusInternalServerError, textError, err.Error(), nil)
	}
}

// GeneratePaging builds the pagination block for list responses.
func GeneratePaging(page, limit int, totalRecord int64) gin.H {
	totalPages := int(math.Ceil(float64(totalRecord) / float64(limit)))

	return gin.H{
		"total_records": totalRecord,
		"per_page":      limit,
		"current_page":  page,
		"total_pages":   totalPages,
	}
}
