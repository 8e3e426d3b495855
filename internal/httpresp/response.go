package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Page is one slice of a paginated listing.
type Page[T any] struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Data  []T   `json:"data"`
}

func Paged[T any](c *gin.Context, page, limit int, total int64, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, Page[T]{
		Page:  page,
		Limit: limit,
		Total: total,
		Data:  data,
	})
}
