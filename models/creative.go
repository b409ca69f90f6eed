package models

import "time"

// Creative account approval states. A creative registers as pending and
// only becomes browsable and bookable once an admin approves them.
const (
	CreativeStatusPending   = "pending"
	CreativeStatusApproved  = "approved"
	CreativeStatusRejected  = "rejected"
	CreativeStatusSuspended = "suspended"
)

// Creative is a creative professional offering services on the platform.
type Creative struct {
	ID           string   `bson:"id" json:"id"`
	Email        string   `bson:"email" json:"email"`
	PasswordHash string   `bson:"passwordHash" json:"-"`
	DisplayName  string   `bson:"displayName" json:"displayName"`
	Bio          string   `bson:"bio,omitempty" json:"bio,omitempty"`
	Category     string   `bson:"category" json:"category"` // e.g. "photography", "graphic-design"
	Region       string   `bson:"region" json:"region"`     // e.g. "Dar es Salaam", "Arusha"
	HourlyRate   float64  `bson:"hourlyRate,omitempty" json:"hourlyRate,omitempty"`
	Portfolio    []string `bson:"portfolio,omitempty" json:"portfolio,omitempty"` // image URLs
	Status       string   `bson:"status" json:"status"`
	StatusReason string   `bson:"statusReason,omitempty" json:"statusReason,omitempty"`

	RatingAverage float64 `bson:"ratingAverage" json:"ratingAverage"`
	RatingCount   int     `bson:"ratingCount" json:"ratingCount"`

	TokenHash string    `bson:"tokenHash,omitempty" json:"-"`
	FCMToken  string    `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// PublicView strips fields that must not leak to unauthenticated
// browsing (credentials, tokens, contact details).
func (c *Creative) PublicView() CreativePublic {
	return CreativePublic{
		ID:            c.ID,
		DisplayName:   c.DisplayName,
		Bio:           c.Bio,
		Category:      c.Category,
		Region:        c.Region,
		HourlyRate:    c.HourlyRate,
		Portfolio:     c.Portfolio,
		RatingAverage: c.RatingAverage,
		RatingCount:   c.RatingCount,
	}
}

// CreativePublic is the browsable projection of a creative profile.
type CreativePublic struct {
	ID            string   `json:"id"`
	DisplayName   string   `json:"displayName"`
	Bio           string   `json:"bio,omitempty"`
	Category      string   `json:"category"`
	Region        string   `json:"region"`
	HourlyRate    float64  `json:"hourlyRate,omitempty"`
	Portfolio     []string `json:"portfolio,omitempty"`
	RatingAverage float64  `json:"ratingAverage"`
	RatingCount   int      `json:"ratingCount"`
}

// CreativeRegistrationRequest is the payload for POST /api/creatives/register.
type CreativeRegistrationRequest struct {
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=8"`
	DisplayName string  `json:"displayName" binding:"required"`
	Bio         string  `json:"bio"`
	Category    string  `json:"category" binding:"required"`
	Region      string  `json:"region" binding:"required"`
	HourlyRate  float64 `json:"hourlyRate"`
}

// CreativeSearchQuery captures the browse/search filters.
type CreativeSearchQuery struct {
	Category string `form:"category"`
	Region   string `form:"region"`
	Text     string `form:"q"`
	Limit    int    `form:"limit"`
}
