package service

import (
	"context"

	"github.com/mymindapp/user-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository is the narrow store contract the services depend on.
// The mongo implementation lives in internal/repository/mongo.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetTranscriptions(ctx context.Context, id string) ([]domain.Transcription, bool, error)
	UpdateFields(ctx context.Context, id string, fields bson.M) (int64, error)
	PushTranscription(ctx context.Context, id string, t domain.Transcription) (int64, error)
	PullTranscription(ctx context.Context, id, transcriptionID string) (int64, error)
	ClearTranscriptions(ctx context.Context, id string) (int64, error)
	TogglePrivacy(ctx context.Context, id string) (*domain.User, error)
	Delete(ctx context.Context, id string) (int64, error)
}
