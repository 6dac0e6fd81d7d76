package handler

import (
	"LoveNote/config"
	"LoveNote/middleware"
	"LoveNote/pkg/context"
	"LoveNote/pkg/response"
	"LoveNote/service"
	"LoveNote/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Journal struct {
	Config         *config.Config
	JournalService service.IJournalService
}

func (j *Journal) RegisterRouter(r gin.IRouter) {
	g := r.Group("/journal", middleware.Auth([]byte(j.Config.Jwt.Secret)))
	g.GET("", context.Wrap(j.List))
	g.POST("", context.Wrap(j.Create))
	g.GET("/by-date", context.Wrap(j.ByDate))
	g.GET("/:id", context.Wrap(j.Detail))
	g.PUT("/:id", context.Wrap(j.Update))
	g.PATCH("/:id", context.Wrap(j.Update))
	g.DELETE("/:id", context.Wrap(j.Delete))
}

func (j *Journal) List(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	items, err := j.JournalService.List(c.Request.Context(), uid)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, items)
	return nil
}

// ByDate ?date=YYYY-MM-DD
func (j *Journal) ByDate(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	var req types.JournalByDateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "请求参数错误")
	}
	items, err := j.JournalService.ByDate(c.Request.Context(), uid, req.Date)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, items)
	return nil
}

func (j *Journal) Create(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	var req types.JournalCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "请求参数错误")
	}
	item, err := j.JournalService.Create(c.Request.Context(), uid, &req)
	if err != nil {
		return bizError(err)
	}
	response.Created(c, item)
	return nil
}

func (j *Journal) Detail(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	item, err := j.JournalService.Detail(c.Request.Context(), uid, id)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, item)
	return nil
}

func (j *Journal) Update(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req types.JournalUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "请求参数错误")
	}

	res, err := j.JournalService.Update(c.Request.Context(), uid, id, &req)
	if err != nil {
		return bizError(err)
	}
	if res.Action.Pending() {
		response.Success(c, editPending(res.Action))
		return nil
	}
	response.Success(c, res.Entry)
	return nil
}

func (j *Journal) Delete(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	action, err := j.JournalService.Delete(c.Request.Context(), uid, id)
	if err != nil {
		return bizError(err)
	}
	if action.Pending() {
		response.Success(c, deletionPending(action))
		return nil
	}
	response.Success(c, types.MessageResponse{Message: "Journal entry deleted successfully"})
	return nil
}
