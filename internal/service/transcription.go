package service

import (
	"context"
	"fmt"

	"github.com/mymindapp/user-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TranscriptionService handles the embedded transcription list: reads,
// filtered reads, insertion and removal. Records are immutable once added.
type TranscriptionService struct {
	userRepo UserRepository
}

// NewTranscriptionService creates a new transcription service
func NewTranscriptionService(userRepo UserRepository) *TranscriptionService {
	return &TranscriptionService{userRepo: userRepo}
}

// List returns every transcription of the user in insertion order.
func (s *TranscriptionService) List(ctx context.Context, userID string) ([]domain.Transcription, error) {
	return s.Filter(ctx, userID, domain.TranscriptionFilter{})
}

// Filter returns the transcriptions satisfying the conjunctive filter,
// preserving insertion order.
func (s *TranscriptionService) Filter(ctx context.Context, userID string, f domain.TranscriptionFilter) ([]domain.Transcription, error) {
	list, found, err := s.userRepo.GetTranscriptions(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	return domain.FilterTranscriptions(list, f), nil
}

// GetByID returns a single transcription by its identifier.
func (s *TranscriptionService) GetByID(ctx context.Context, userID, transcriptionID string) (*domain.Transcription, error) {
	list, found, err := s.userRepo.GetTranscriptions(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	for i := range list {
		if list[i].ID == transcriptionID {
			return &list[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// Add validates and appends a new transcription. The record identifier is
// generated here, never taken from the caller.
func (s *TranscriptionService) Add(ctx context.Context, userID string, input domain.TranscriptionCreate) (*domain.Transcription, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	t := domain.Transcription{
		ID:                     primitive.NewObjectID().Hex(),
		Date:                   input.Date,
		Time:                   input.Time,
		Text:                   input.Text,
		Emotion:                input.Emotion,
		EmotionProbabilities:   input.EmotionProbabilities,
		Sentiment:              input.Sentiment,
		SentimentProbabilities: input.SentimentProbabilities,
		Topic:                  input.Topic,
	}

	modified, err := s.userRepo.PushTranscription(ctx, userID, t)
	if err != nil {
		return nil, fmt.Errorf("failed to add transcription: %w", err)
	}
	if modified == 0 {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

// Delete removes a single transcription by id.
func (s *TranscriptionService) Delete(ctx context.Context, userID, transcriptionID string) error {
	_, found, err := s.userRepo.GetTranscriptions(ctx, userID)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}

	modified, err := s.userRepo.PullTranscription(ctx, userID, transcriptionID)
	if err != nil {
		return err
	}
	if modified == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteAll clears the transcription list. Clearing an already-empty list is
// a success, so the operation is idempotent.
func (s *TranscriptionService) DeleteAll(ctx context.Context, userID string) error {
	list, found, err := s.userRepo.GetTranscriptions(ctx, userID)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	if len(list) == 0 {
		return nil
	}

	if _, err := s.userRepo.ClearTranscriptions(ctx, userID); err != nil {
		return err
	}
	return nil
}
