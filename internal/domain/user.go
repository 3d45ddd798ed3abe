package domain

import (
	"time"
)

// User is the single persisted document: one per account, transcriptions
// embedded. The ID is an opaque subject identifier assigned at registration
// and never changed afterwards.
type User struct {
	ID             string          `bson:"_id" json:"id"`
	Name           string          `bson:"name" json:"name"`
	Email          string          `bson:"email" json:"email"`
	PasswordHash   string          `bson:"password" json:"-"`
	ProfilePic     string          `bson:"profile_pic,omitempty" json:"profile_pic,omitempty"`
	Notifications  bool            `bson:"notifications" json:"notifications"`
	Privacy        Privacy         `bson:"privacy" json:"privacy"`
	DataTreatment  DataTreatment   `bson:"data_treatment" json:"data_treatment"`
	Transcriptions []Transcription `bson:"transcriptions" json:"transcriptions"`
	CreatedAt      time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `bson:"updated_at" json:"updated_at"`
}

// Privacy holds the user's privacy preferences.
type Privacy struct {
	AllowAnonymizedUsage bool `bson:"allow_anonymized_usage" json:"allow_anonymized_usage"`
}

// DataTreatment records the user's acceptance of the data treatment terms at
// registration time, including the origin IP of the accepting request.
type DataTreatment struct {
	Accepted   bool      `bson:"accepted" json:"accepted"`
	AcceptedAt time.Time `bson:"accepted_at" json:"accepted_at"`
	AcceptedIP string    `bson:"accepted_ip" json:"accepted_ip"`
	Privacy    Privacy   `bson:"privacy" json:"privacy"`
}

// UserCreate represents user registration data.
type UserCreate struct {
	Name                 string `json:"name" validate:"required,max=255"`
	Email                string `json:"email" validate:"required,email,max=255"`
	Password             string `json:"password" validate:"required,min=8,max=72"`
	Notifications        bool   `json:"notifications"`
	AllowAnonymizedUsage bool   `json:"allow_anonymized_usage"`
	AcceptDataTreatment  bool   `json:"accept_data_treatment"`
}

// UserLogin represents login credentials.
type UserLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenPair represents an issued access/refresh token pair.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}
