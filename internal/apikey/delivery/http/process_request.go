package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func (h *handler) processListRequest(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidQuery
	}
	return req, nil
}

func (h *handler) processDeleteRequest(c *gin.Context) (deleteReq, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return deleteReq{}, errInvalidID
	}
	return deleteReq{ID: id}, nil
}
