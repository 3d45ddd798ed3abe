package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mymindapp/user-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const usersCollection = "users"

// UserRepository is the record store gateway: every access to the per-user
// document goes through here. Transcriptions are embedded in the user
// document, so there is no second collection.
type UserRepository struct {
	coll *mongo.Collection
}

// NewUserRepository creates a new user repository.
func NewUserRepository(client *Client) *UserRepository {
	return &UserRepository{coll: client.Database().Collection(usersCollection)}
}

// EnsureIndexes creates the unique email index. Safe to call on every start.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create email index: %w", err)
	}
	return nil
}

// Insert stores a new user document. A duplicate id or email maps to
// domain.ErrEmailTaken.
func (r *UserRepository) Insert(ctx context.Context, user *domain.User) error {
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by subject identifier. Returns nil without error
// when no document matches.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by email. Returns nil without error on miss.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// GetTranscriptions reads only the embedded transcription array. The boolean
// reports whether the user document exists.
func (r *UserRepository) GetTranscriptions(ctx context.Context, id string) ([]domain.Transcription, bool, error) {
	var doc struct {
		Transcriptions []domain.Transcription `bson:"transcriptions"`
	}
	opts := options.FindOne().SetProjection(bson.M{domain.TranscriptionsField: 1})
	err := r.coll.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get transcriptions: %w", err)
	}
	return doc.Transcriptions, true, nil
}

// UpdateFields applies a partial $set update and returns the modified count.
func (r *UserRepository) UpdateFields(ctx context.Context, id string, fields bson.M) (int64, error) {
	set := bson.M{"updated_at": time.Now()}
	for k, v := range fields {
		set[k] = v
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return 0, domain.ErrEmailTaken
		}
		return 0, fmt.Errorf("failed to update user: %w", err)
	}
	return res.ModifiedCount, nil
}

// PushTranscription appends a transcription to the embedded array.
func (r *UserRepository) PushTranscription(ctx context.Context, id string, t domain.Transcription) (int64, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$push": bson.M{domain.TranscriptionsField: t},
			"$set":  bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to push transcription: %w", err)
	}
	return res.ModifiedCount, nil
}

// PullTranscription removes the transcription with the given id.
func (r *UserRepository) PullTranscription(ctx context.Context, id, transcriptionID string) (int64, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$pull": bson.M{domain.TranscriptionsField: bson.M{"_id": transcriptionID}},
			"$set":  bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to pull transcription: %w", err)
	}
	return res.ModifiedCount, nil
}

// ClearTranscriptions replaces the embedded array with an empty one.
func (r *UserRepository) ClearTranscriptions(ctx context.Context, id string) (int64, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			domain.TranscriptionsField: []domain.Transcription{},
			"updated_at":               time.Now(),
		}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to clear transcriptions: %w", err)
	}
	return res.ModifiedCount, nil
}

// TogglePrivacy flips the anonymized-usage flag in a single atomic update
// (aggregation pipeline with $not on the stored value) and returns the
// resulting document. Concurrent toggles cannot lose updates this way.
func (r *UserRepository) TogglePrivacy(ctx context.Context, id string) (*domain.User, error) {
	pipeline := bson.A{
		bson.M{"$set": bson.M{
			"privacy.allow_anonymized_usage": bson.M{"$not": "$privacy.allow_anonymized_usage"},
			"updated_at":                     "$$NOW",
		}},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user domain.User
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, pipeline, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to toggle privacy: %w", err)
	}
	return &user, nil
}

// Delete removes the user document. Embedded transcriptions go with it.
func (r *UserRepository) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("failed to delete user: %w", err)
	}
	return res.DeletedCount, nil
}
