package service

import (
	"github.com/avlasov/go-notes-keeper/internal/config"
	"github.com/avlasov/go-notes-keeper/internal/logger"
	"github.com/avlasov/go-notes-keeper/internal/store"
	"github.com/avlasov/go-notes-keeper/internal/utils"
)

type Services struct {
	AuthService  AuthService
	NotesService NotesService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, cfg, logger),
		NotesService: NewNotesService(storages.NoteRepository, utils.UUIDGenerator{}, logger),
	}
}
