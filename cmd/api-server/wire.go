//go:build wireinject
// +build wireinject

package main

import (
	"LoveNote/config"
	"LoveNote/dao"
	"LoveNote/dao/cache"
	"LoveNote/handler"
	"LoveNote/pkg/client"
	"LoveNote/pkg/database"
	"LoveNote/pkg/push"
	"LoveNote/pkg/server"
	"LoveNote/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, error) {
	wire.Build(
		client.NewRedisClient,
		config.ProvidePushConfig,
		config.ProvideReminderConfig,
		push.NewWebPush,
		wire.Bind(new(push.Sender), new(*push.WebPush)),
		server.NewGinEngine,
		cache.ProviderSet,
		wire.Bind(new(service.ReminderLocker), new(*cache.ReminderLock)),
		handler.ProviderSet,

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil, nil
}
