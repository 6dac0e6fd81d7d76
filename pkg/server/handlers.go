package server

import (
	"LoveNote/handler"
)

type Handlers struct {
	Auth    *handler.Auth
	Profile *handler.Profile
	Push    *handler.Push
	Note    *handler.Note
	Journal *handler.Journal
}
