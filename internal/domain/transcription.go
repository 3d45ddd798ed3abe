package domain

import (
	"fmt"
	"time"
)

// TranscriptionsField is the canonical name of the embedded array in the user
// document. Every read and write site must go through this constant.
const TranscriptionsField = "transcriptions"

// Transcription is a single analyzed speech record embedded in its owner's
// document. The ID is assigned by the service at insertion time; records are
// never updated, only added and removed.
type Transcription struct {
	ID                     string             `bson:"_id" json:"id"`
	Date                   string             `bson:"date" json:"date"`
	Time                   string             `bson:"time" json:"time"`
	Text                   string             `bson:"text" json:"text"`
	Emotion                string             `bson:"emotion" json:"emotion"`
	EmotionProbabilities   map[string]float64 `bson:"emotion_probabilities" json:"emotion_probabilities"`
	Sentiment              string             `bson:"sentiment" json:"sentiment"`
	SentimentProbabilities map[string]float64 `bson:"sentiment_probabilities" json:"sentiment_probabilities"`
	Topic                  string             `bson:"topic,omitempty" json:"topic,omitempty"`
}

// TranscriptionCreate represents the payload for adding a transcription.
// The record identifier is never supplied by the caller.
type TranscriptionCreate struct {
	Date                   string             `json:"date" validate:"required"`
	Time                   string             `json:"time" validate:"required"`
	Text                   string             `json:"text" validate:"required"`
	Emotion                string             `json:"emotion" validate:"required"`
	EmotionProbabilities   map[string]float64 `json:"emotion_probabilities" validate:"required"`
	Sentiment              string             `json:"sentiment" validate:"required"`
	SentimentProbabilities map[string]float64 `json:"sentiment_probabilities" validate:"required"`
	Topic                  string             `json:"topic"`
}

// Validate applies the semantic checks the struct tags cannot express.
func (c TranscriptionCreate) Validate() error {
	if _, err := time.Parse("2006-01-02", c.Date); err != nil {
		return fmt.Errorf("%w: invalid date %q, expected ISO calendar date", ErrValidation, c.Date)
	}
	return nil
}
