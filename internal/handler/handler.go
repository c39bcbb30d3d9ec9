package handlers

import (
	"log/slog"

	"github.com/go-playground/validator/v10"

	"glassblog/internal/blog"
	"glassblog/internal/config"
	"glassblog/internal/session"
)

type Handlers struct {
	Sessions session.Service
	Blog     blog.ContentStore
	Cfg      *config.Config
	Log      *slog.Logger
	Validate *validator.Validate
}

func NewHandlers(sessions session.Service, store blog.ContentStore, cfg *config.Config, log *slog.Logger) *Handlers {
	return &Handlers{
		Sessions: sessions,
		Blog:     store,
		Cfg:      cfg,
		Log:      log,
		Validate: validator.New(),
	}
}
