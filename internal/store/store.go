// Package store defines the persistence contracts for accounts and the
// log/plan records they own. Every method takes the owning user's id
// explicitly; nothing here reads caller identity from ambient state.
package store

import (
	"context"
	"errors"

	"github.com/calebfernandez/levelup/internal/models"
)

var (
	ErrDuplicateEmail = errors.New("email address already in use")
	ErrNotFound       = errors.New("record not found")
)

type UserStore interface {
	// CreateUser inserts the user and fills in its generated id. Returns
	// ErrDuplicateEmail when the email is already registered.
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	// UpdateDetails merges only the fields set in req; nil fields keep
	// their stored values.
	UpdateDetails(ctx context.Context, id int, req models.UpdateDetailsRequest) error
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
	// UpdateSessionToken records the active session token on login and
	// clears it (nil) on logout. Request auth itself is stateless JWT; the
	// stored token is a session audit trail, not an auth check.
	UpdateSessionToken(ctx context.Context, id int, token *string) error
	// DeleteUser removes the user; owned logs and plans go with it via
	// the schema's ON DELETE CASCADE.
	DeleteUser(ctx context.Context, id int) error
}

type LogStore interface {
	CreateLog(ctx context.Context, log *models.Log) error
	// ListLogsByUser returns the user's logs in insertion order.
	ListLogsByUser(ctx context.Context, userID int) ([]models.Log, error)
}

type PlanStore interface {
	CreatePlan(ctx context.Context, plan *models.Plan) error
	// ListPlansByUser returns the user's plans newest first.
	ListPlansByUser(ctx context.Context, userID int) ([]models.Plan, error)
}
