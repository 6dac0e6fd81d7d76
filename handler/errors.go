package handler

import (
	"LoveNote/pkg/response"
	"LoveNote/service"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// bizError 把 service 错误映射为 HTTP 业务错误，其他错误原样返回由 Wrap 记录
func bizError(err error) error {
	var e *service.Error
	if !errors.As(err, &e) {
		return err
	}
	switch e.Kind {
	case service.KindInvalidInput:
		return response.NewError(http.StatusBadRequest, e.Msg)
	case service.KindUnauthorized:
		return response.NewError(http.StatusUnauthorized, e.Msg)
	case service.KindForbidden:
		return response.NewError(http.StatusForbidden, e.Msg)
	case service.KindNotFound:
		return response.NewError(http.StatusNotFound, e.Msg)
	case service.KindConflict:
		return response.NewError(http.StatusConflict, e.Msg)
	}
	return err
}

func paramID(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, response.NewError(http.StatusNotFound, "内容不存在")
	}
	return id, nil
}
