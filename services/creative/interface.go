package creative

import "brandconnect/models"

// CreativeService defines account and profile operations for creative
// professionals, including the admin approval workflow.
type CreativeService interface {
	Register(req models.CreativeRegistrationRequest) (*models.Creative, error)
	Authenticate(email, password string) (*models.AuthResponse, error)
	SignOut(creativeID, sessionID string) error
	RevokeToken(creativeID string) error

	GetByID(id string) (*models.Creative, error)
	UpdateProfile(creative *models.Creative) error
	UpdateFCMToken(creativeID, token string) error
	AddPortfolioImage(creativeID, url string) error
	Delete(id string) error

	// Browse returns approved creatives only.
	Browse(query models.CreativeSearchQuery) ([]models.CreativePublic, error)

	// Approval workflow, admin only.
	ListPending() ([]models.Creative, error)
	ListByStatus(status string) ([]models.Creative, error)
	SetStatus(creativeID, status, reason string) error
}
