package handler

import "github.com/google/wire"

var ProviderSet = wire.NewSet(
	wire.Struct(new(Auth), "*"),
	wire.Struct(new(Profile), "*"),
	wire.Struct(new(Push), "*"),
	wire.Struct(new(Note), "*"),
	wire.Struct(new(Journal), "*"),
)
