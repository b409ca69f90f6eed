package creativeRepo

import "brandconnect/models"

// CreativeRepository defines persistence operations for creative
// profiles.
type CreativeRepository interface {
	GetByID(id string) (*models.Creative, error)
	GetByEmail(email string) (*models.Creative, error)
	GetByTokenHash(tokenHash string) (*models.Creative, error)
	Create(creative *models.Creative) error
	Update(creative *models.Creative) error
	Delete(id string) error

	// Search returns approved creatives matching the browse filters.
	Search(query models.CreativeSearchQuery) ([]models.Creative, error)
	// ListByStatus returns creatives in a given approval state, for the
	// admin review queue.
	ListByStatus(status string) ([]models.Creative, error)
	// AddRating folds a new review score into the running average.
	AddRating(id string, score float64) error
}
