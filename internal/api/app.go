package api

import (
	"github.com/yourname/fitcoach/internal"
	"github.com/yourname/fitcoach/internal/service"
)

type App interface {
	Logger() internal.Logger
	Chat() *service.ChatService
}
