package response

import (
	"github.com/gin-gonic/gin"

	"github.com/dukaops/enterprise-api/pkg/apperror"
)

// OK sends a plain 200 response with the given payload.
func OK(c *gin.Context, data interface{}) {
	c.JSON(200, data)
}

// Success sends a 200 {success:true} acknowledgement.
func Success(c *gin.Context) {
	c.JSON(200, gin.H{"success": true})
}

// Error maps an error onto its HTTP status and a message body.
func Error(c *gin.Context, err error) {
	appErr := apperror.GetAppError(err)
	c.JSON(appErr.Code, gin.H{
		"success": false,
		"message": appErr.Message,
	})
}

// ErrorWithCode sends an error response with a specific status code
func ErrorWithCode(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
	})
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	ErrorWithCode(c, 401, message)
}

// Forbidden sends a 403 response
func Forbidden(c *gin.Context, message string) {
	ErrorWithCode(c, 403, message)
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	ErrorWithCode(c, 400, message)
}
