package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Result is the uniform envelope every operation answers with. The UI
// shell only ever branches on success and shows message verbatim.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Result{Success: true, Data: data})
}

func OKMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Result{Success: true, Message: message})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Result{Success: true, Data: data})
}

func List[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, Result{Success: true, Data: data})
}
