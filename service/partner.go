package service

import (
	"LoveNote/dao"
	"LoveNote/models"
	"LoveNote/pkg/log"
	"LoveNote/pkg/utils"
	"LoveNote/types"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IPartnerService = (*PartnerService)(nil)

type IPartnerService interface {
	// ConnectPartner 用配对码与对方互相绑定
	ConnectPartner(ctx context.Context, requesterID uint64, code string) (*models.Users, error)
	// DisconnectPartner 解除配对，内容和偏好不受影响
	DisconnectPartner(ctx context.Context, userID uint64) error
	// PartnerProfile 配对对象的个人资料
	PartnerProfile(ctx context.Context, userID uint64) (*types.PersonalFields, error)
}

type PartnerService struct {
	UsersDAO   *dao.Users
	ProfileDAO *dao.ProfileDAO
}

func (s *PartnerService) ConnectPartner(ctx context.Context, requesterID uint64, code string) (*models.Users, error) {
	code = utils.NormalizeCode(code)
	if code == "" {
		return nil, ErrEmptyCode
	}

	target, err := s.UsersDAO.FindByPartnerCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCode
		}
		return nil, err
	}
	if target.ID == requesterID {
		return nil, ErrSelfLink
	}

	var partner *models.Users
	err = s.UsersDAO.Transaction(ctx, func(tx *gorm.DB) error {
		users := s.UsersDAO.WithDB(tx)

		locked, err := users.LockPair(ctx, requesterID, target.ID)
		if err != nil {
			return notFound(err)
		}
		if locked[requesterID].HasPartner() || locked[target.ID].HasPartner() {
			return ErrAlreadyPaired
		}

		for _, pair := range [][2]uint64{{requesterID, target.ID}, {target.ID, requesterID}} {
			n, err := users.LinkPartner(ctx, pair[0], pair[1])
			if err != nil {
				return err
			}
			if n != 1 {
				return ErrAlreadyPaired
			}
		}

		partner = locked[target.ID]
		pid := requesterID
		partner.PartnerID = &pid
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.L.Info("partner connected", zap.Uint64("user_id", requesterID), zap.Uint64("partner_id", partner.ID))
	return partner, nil
}

func (s *PartnerService) DisconnectPartner(ctx context.Context, userID uint64) error {
	return s.UsersDAO.Transaction(ctx, func(tx *gorm.DB) error {
		users := s.UsersDAO.WithDB(tx)

		var user models.Users
		if err := tx.Scopes(dao.ForUpdate).First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		partnerID := user.Partner()
		if partnerID == 0 {
			return ErrNoPartner
		}

		if _, err := users.UnlinkPartner(ctx, userID, 0); err != nil {
			return err
		}
		// 对方若已指向别人则不动
		if _, err := users.UnlinkPartner(ctx, partnerID, userID); err != nil {
			return err
		}
		log.L.Info("partner disconnected", zap.Uint64("user_id", userID), zap.Uint64("partner_id", partnerID))
		return nil
	})
}

func (s *PartnerService) PartnerProfile(ctx context.Context, userID uint64) (*types.PersonalFields, error) {
	user, err := s.UsersDAO.FindById(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !user.HasPartner() {
		return nil, ErrPartnerAbsent
	}
	profile, err := s.ProfileDAO.GetOrCreate(ctx, user.Partner())
	if err != nil {
		return nil, fmt.Errorf("load partner profile: %w", err)
	}
	fields := personalFields(profile)
	return &fields, nil
}
