package service

import (
	"github.com/avlasov/go-notes-keeper/internal/adapter"
	"github.com/avlasov/go-notes-keeper/internal/store"
)

type ClientServices struct {
	AuthService  ClientAuthService
	NotesService ClientNotesService
	Autosave     *AutosaveScheduler
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter) *ClientServices {
	authSvc := NewClientAuthService(localStore, serverAdapter)
	notesSvc := NewClientNotesService(serverAdapter)

	return &ClientServices{
		AuthService:  authSvc,
		NotesService: notesSvc,
		Autosave:     NewAutosaveScheduler(notesSvc, 0),
	}
}
