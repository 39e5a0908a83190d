package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/sails-app/sails-api/libs/go/db"
)

// UserStore resolves the account behind a verified session.
// db.Querier satisfies it.
type UserStore interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (db.User, error)
}
