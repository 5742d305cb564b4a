package httpresp

import "github.com/gin-gonic/gin"

type Envelope struct {
	Data any `json:"data"`
}

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, Envelope{Data: data})
}

func Created(c *gin.Context, data any) {
	c.JSON(201, Envelope{Data: data})
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}
