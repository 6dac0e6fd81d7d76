package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(VisibilityService), "*"),
	wire.Bind(new(IVisibilityService), new(*VisibilityService)),

	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(PartnerService), "*"),
	wire.Bind(new(IPartnerService), new(*PartnerService)),

	wire.Struct(new(ProfileService), "*"),
	wire.Bind(new(IProfileService), new(*ProfileService)),

	wire.Struct(new(PushService), "*"),
	wire.Bind(new(IPushService), new(*PushService)),

	wire.Struct(new(NotifyService), "*"),
	wire.Bind(new(INotifyService), new(*NotifyService)),

	wire.Struct(new(NoteService), "*"),
	wire.Bind(new(INoteService), new(*NoteService)),

	wire.Struct(new(JournalService), "*"),
	wire.Bind(new(IJournalService), new(*JournalService)),

	wire.Struct(new(LikeService), "*"),
	wire.Bind(new(ILikeService), new(*LikeService)),

	wire.Struct(new(ReminderService), "*"),
	wire.Bind(new(IReminderService), new(*ReminderService)),
)
