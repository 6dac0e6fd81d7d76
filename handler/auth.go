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

type Auth struct {
	Config         *config.Config
	UserService    service.IUserService
	PartnerService service.IPartnerService
}

func (u *Auth) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(u.Config.Jwt.Secret))
	g := r.Group("/auth")
	g.POST("/register", context.Wrap(u.Register))
	g.POST("/login", context.Wrap(u.Login))
	g.GET("/me", authorize, context.Wrap(u.Me))
	g.POST("/connect-partner", authorize, context.Wrap(u.ConnectPartner))
	g.POST("/disconnect-partner", authorize, context.Wrap(u.DisconnectPartner))
}

func (u *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "username、email、password、password2 不能为空")
	}
	resp, err := u.UserService.Register(c.Request.Context(), &req)
	if err != nil {
		return bizError(err)
	}
	response.Created(c, resp)
	return nil
}

func (u *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "username、password 不能为空")
	}
	resp, err := u.UserService.Login(c.Request.Context(), &req)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}

func (u *Auth) Me(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	info, err := u.UserService.Me(c.Request.Context(), uid)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, info)
	return nil
}

// ConnectPartner 输入对方的配对码完成配对
func (u *Auth) ConnectPartner(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	var req types.ConnectPartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "请求参数错误")
	}

	partner, err := u.PartnerService.ConnectPartner(c.Request.Context(), uid, req.PartnerCode)
	if err != nil {
		return bizError(err)
	}
	info, err := u.UserService.UserInfo(c.Request.Context(), partner)
	if err != nil {
		return err
	}
	response.Success(c, types.ConnectPartnerResponse{
		Message: "Successfully connected with partner",
		Partner: info,
	})
	return nil
}

func (u *Auth) DisconnectPartner(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	if err := u.PartnerService.DisconnectPartner(c.Request.Context(), uid); err != nil {
		return bizError(err)
	}
	response.Success(c, types.MessageResponse{Message: "Successfully disconnected from partner"})
	return nil
}
