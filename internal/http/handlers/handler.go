package handlers

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"wordle_backend/internal/service"
	"wordle_backend/internal/words"
)

type Handler struct {
	DB          *pgxpool.Pool // nil when running on in-memory storage
	GameService *service.GameService
	Words       *words.Catalog
}

func NewHandler(db *pgxpool.Pool, games *service.GameService, catalog *words.Catalog) *Handler {
	return &Handler{
		DB:          db,
		GameService: games,
		Words:       catalog,
	}
}

// getIdentity extracts the authenticated user from the Gin context.
// The parameter mirrors gin's Context.Get(key any) signature.
func getIdentity(c interface{ Get(any) (any, bool) }) (service.Identity, bool) {
	uidVal, ok := c.Get("user_id")
	if !ok {
		return service.Identity{}, false
	}
	uid, ok := uidVal.(uuid.UUID)
	if !ok {
		return service.Identity{}, false
	}

	ident := service.Identity{UserID: uid}
	if nameVal, ok := c.Get("username"); ok {
		if name, ok := nameVal.(string); ok {
			ident.Username = name
		}
	}
	return ident, true
}
