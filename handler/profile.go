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

type Profile struct {
	Config         *config.Config
	ProfileService service.IProfileService
	PartnerService service.IPartnerService
}

func (p *Profile) RegisterRouter(r gin.IRouter) {
	g := r.Group("/profile", middleware.Auth([]byte(p.Config.Jwt.Secret)))
	g.GET("", context.Wrap(p.Get))
	g.PUT("", context.Wrap(p.Update))
	g.PATCH("", context.Wrap(p.Update))
	g.GET("/partner", context.Wrap(p.Partner))
}

func (p *Profile) Get(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	resp, err := p.ProfileService.Get(c.Request.Context(), uid)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}

func (p *Profile) Update(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	var req types.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "请求参数错误")
	}
	resp, err := p.ProfileService.Update(c.Request.Context(), uid, &req)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}

// Partner 配对对象的资料
func (p *Profile) Partner(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	resp, err := p.PartnerService.PartnerProfile(c.Request.Context(), uid)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}
