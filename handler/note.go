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

type Note struct {
	Config      *config.Config
	NoteService service.INoteService
	LikeService service.ILikeService
}

func (n *Note) RegisterRouter(r gin.IRouter) {
	g := r.Group("/notes", middleware.Auth([]byte(n.Config.Jwt.Secret)))
	g.GET("", context.Wrap(n.List))
	g.POST("", context.Wrap(n.Create))
	g.GET("/:id", context.Wrap(n.Detail))
	g.PUT("/:id", context.Wrap(n.Update))
	g.PATCH("/:id", context.Wrap(n.Update))
	g.DELETE("/:id", context.Wrap(n.Delete))
	g.POST("/:id/like", context.Wrap(n.ToggleLike))
}

func (n *Note) List(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	var req types.NoteListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "请求参数错误")
	}
	items, err := n.NoteService.List(c.Request.Context(), uid, &req)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, items)
	return nil
}

func (n *Note) Create(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	var req types.NoteCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "请求参数错误")
	}
	item, err := n.NoteService.Create(c.Request.Context(), uid, &req)
	if err != nil {
		return bizError(err)
	}
	response.Created(c, item)
	return nil
}

func (n *Note) Detail(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	item, err := n.NoteService.Detail(c.Request.Context(), uid, id)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, item)
	return nil
}

func (n *Note) Update(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req types.NoteUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "请求参数错误")
	}

	res, err := n.NoteService.Update(c.Request.Context(), uid, id, &req)
	if err != nil {
		return bizError(err)
	}
	if res.Action.Pending() {
		response.Success(c, editPending(res.Action))
		return nil
	}
	response.Success(c, res.Note)
	return nil
}

func (n *Note) Delete(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	action, err := n.NoteService.Delete(c.Request.Context(), uid, id)
	if err != nil {
		return bizError(err)
	}
	if action.Pending() {
		response.Success(c, deletionPending(action))
		return nil
	}
	response.Success(c, types.MessageResponse{Message: "Note deleted successfully"})
	return nil
}

// ToggleLike 点赞/取消点赞
func (n *Note) ToggleLike(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	liked, err := n.LikeService.ToggleLike(c.Request.Context(), uid, id)
	if err != nil {
		return bizError(err)
	}
	msg := "Note unliked"
	if liked {
		msg = "Note liked"
	}
	response.Success(c, types.LikeToggleResponse{Message: msg, IsLiked: liked})
	return nil
}

func editPending(action service.EditAction) types.PendingResponse {
	msg := "Edit request sent. Waiting for partner approval."
	if action == service.EditAlreadyRequested {
		msg = "You have already requested to edit. Waiting for partner approval."
	}
	return types.PendingResponse{Message: msg, EditRequested: true}
}

func deletionPending(action service.DeleteAction) types.PendingResponse {
	msg := "Deletion request sent. Waiting for partner approval."
	if action == service.DeleteAlreadyRequested {
		msg = "You have already requested deletion. Waiting for partner approval."
	}
	return types.PendingResponse{Message: msg, DeletionRequested: true}
}
