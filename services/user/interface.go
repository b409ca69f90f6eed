package user

import "brandconnect/models"

// UserService defines account operations for clients.
type UserService interface {
	Register(req models.UserRegistrationRequest) (*models.User, error)
	Authenticate(email, password string) (*models.AuthResponse, error)
	SignOut(userID, sessionID string) error
	RevokeToken(userID string) error

	GetUserByID(id string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateProfile(user *models.User) error
	UpdateFCMToken(userID, token string) error
	DeleteUser(id string) error
	GetAll() ([]models.User, error)
}
