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

type Push struct {
	Config      *config.Config
	PushService service.IPushService
}

func (p *Push) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(p.Config.Jwt.Secret))
	g := r.Group("/push")
	g.GET("/public-key", context.Wrap(p.PublicKey))
	g.POST("/subscribe", authorize, context.Wrap(p.Subscribe))
	g.DELETE("/subscribe/:id", authorize, context.Wrap(p.Unsubscribe))
}

func (p *Push) PublicKey(c *gin.Context) error {
	key, ok := p.PushService.PublicKey()
	if !ok {
		return response.NewError(http.StatusServiceUnavailable, "VAPID public key not configured")
	}
	response.Success(c, types.PublicKeyResponse{PublicKey: key})
	return nil
}

func (p *Push) Subscribe(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	var req types.PushSubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "请求参数错误")
	}

	sub, created, err := p.PushService.Subscribe(c.Request.Context(), uid, &req)
	if err != nil {
		return bizError(err)
	}
	if created {
		response.Created(c, types.PushSubscribeResponse{ID: sub.ID, Message: "Subscription saved"})
		return nil
	}
	response.Success(c, types.PushSubscribeResponse{ID: sub.ID, Message: "Subscription updated"})
	return nil
}

func (p *Push) Unsubscribe(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := p.PushService.Unsubscribe(c.Request.Context(), uid, id); err != nil {
		return bizError(err)
	}
	response.Success(c, types.MessageResponse{Message: "Subscription removed"})
	return nil
}
