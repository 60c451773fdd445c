package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the single JSON body shape of the API. Success bodies carry
// data (plus paging echoes for list responses), failure bodies carry a
// message or a field violation map, never both.
type Envelope struct {
	Status     int                 `json:"status"`
	Data       any                 `json:"data,omitempty"`
	Message    string              `json:"message,omitempty"`
	PageNumber int                 `json:"pageNumber,omitempty"`
	PageSize   int                 `json:"pageSize,omitempty"`
	Errors     map[string][]string `json:"errors,omitempty"`
}

func Success(c *gin.Context, status int, data any, message string) {
	c.JSON(status, Envelope{
		Status:  status,
		Data:    data,
		Message: message,
	})
}

// Page writes a list response echoing the effective paging parameters.
func Page(c *gin.Context, data any, pageNumber, pageSize int) {
	c.JSON(http.StatusOK, Envelope{
		Status:     http.StatusOK,
		Data:       data,
		PageNumber: pageNumber,
		PageSize:   pageSize,
	})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{
		Status:  status,
		Message: message,
	})
}

// ValidationError writes the 400 body with violations grouped per field.
func ValidationError(c *gin.Context, violations map[string][]string) {
	c.JSON(http.StatusBadRequest, Envelope{
		Status: http.StatusBadRequest,
		Errors: violations,
	})
}
