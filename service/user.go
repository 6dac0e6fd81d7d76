package service

import (
	"LoveNote/config"
	"LoveNote/dao"
	"LoveNote/models"
	"LoveNote/pkg/jwt"
	"LoveNote/pkg/log"
	"LoveNote/pkg/utils"
	"LoveNote/types"
	"context"
	"errors"
	"net/mail"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

const minPasswordLength = 8

type IUserService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.AuthResponse, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.AuthResponse, error)
	// Me 当前用户及其配对对象
	Me(ctx context.Context, userID uint64) (*types.UserInfo, error)
	// UserInfo 任意用户的展示信息
	UserInfo(ctx context.Context, user *models.Users) (*types.UserInfo, error)
}

type UserService struct {
	Config   *config.Config
	UsersDAO *dao.Users
}

func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	if username == "" || email == "" {
		return nil, InvalidInput("用户名和邮箱不能为空")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, InvalidInput("邮箱格式错误")
	}
	if req.Password != req.Password2 {
		return nil, InvalidInput("两次输入的密码不一致")
	}
	if len(req.Password) < minPasswordLength {
		return nil, InvalidInput("密码至少8位")
	}
	if s.UsersDAO.IsUsernameExist(ctx, username) {
		return nil, ErrUsernameTaken
	}
	if s.UsersDAO.IsEmailExist(ctx, email) {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.Users{Username: username, Email: email, Password: string(hash)}
	err = s.UsersDAO.Transaction(ctx, func(tx *gorm.DB) error {
		users := s.UsersDAO.WithDB(tx)
		if err := users.Create(ctx, user); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrUsernameTaken
			}
			return err
		}
		code, err := utils.GenPartnerCode(s.Config.App.HashSalt, user.ID)
		if err != nil {
			return err
		}
		user.PartnerCode = &code
		return users.SetPartnerCode(ctx, user.ID, code)
	})
	if err != nil {
		return nil, err
	}

	log.L.Info("user registered", zap.Uint64("user_id", user.ID))
	return s.authResponse(ctx, user)
}

func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.AuthResponse, error) {
	user, err := s.UsersDAO.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.authResponse(ctx, user)
}

func (s *UserService) Me(ctx context.Context, userID uint64) (*types.UserInfo, error) {
	user, err := s.UsersDAO.FindById(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.UserInfo(ctx, user)
}

func (s *UserService) UserInfo(ctx context.Context, user *models.Users) (*types.UserInfo, error) {
	info := &types.UserInfo{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
	if user.PartnerCode != nil {
		info.PartnerCode = *user.PartnerCode
	}
	if user.HasPartner() {
		partner, err := s.UsersDAO.FindById(ctx, user.Partner())
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if partner != nil {
			info.Partner = &types.PartnerInfo{ID: partner.ID, Username: partner.Username, Email: partner.Email}
		}
	}
	return info, nil
}

func (s *UserService) authResponse(ctx context.Context, user *models.Users) (*types.AuthResponse, error) {
	secret := []byte(s.Config.Jwt.Secret)
	access, err := jwt.GenerateToken(secret, user.ID, user.Username, jwt.TypeAccess, s.Config.Jwt.AccessTTL())
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.GenerateToken(secret, user.ID, user.Username, jwt.TypeRefresh, s.Config.Jwt.RefreshTTL())
	if err != nil {
		return nil, err
	}
	info, err := s.UserInfo(ctx, user)
	if err != nil {
		return nil, err
	}
	return &types.AuthResponse{User: info, Access: access, Refresh: refresh}, nil
}
