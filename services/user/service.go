package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	userRepo "brandconnect/database/repository/user"
	"brandconnect/models"
	"brandconnect/services/session"
	"brandconnect/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Sessions *session.Tracker
	TokenTTL time.Duration
}

func (s *DefaultUserService) tokenTTL() time.Duration {
	if s.TokenTTL <= 0 {
		return time.Hour
	}
	return s.TokenTTL
}

func (s *DefaultUserService) Register(req models.UserRegistrationRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.Repo.GetByEmail(email); err == nil {
		return nil, utils.Invalid("email", "an account with this email already exists")
	} else if !errors.Is(err, utils.ErrNotFound) {
		return nil, utils.Transport("user.Register", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	usr := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Phone:        req.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(usr); err != nil {
		return nil, utils.Transport("user.Register", err)
	}
	return usr, nil
}

func (s *DefaultUserService) Authenticate(email, password string) (*models.AuthResponse, error) {
	usr, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.Invalid("email", "invalid email or password")
		}
		return nil, utils.Transport("user.Authenticate", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, utils.Invalid("password", "invalid email or password")
	}

	role := models.RoleClient
	if usr.IsAdmin {
		role = models.RoleAdmin
	}
	record, err := s.Sessions.Start(usr.ID, role, s.tokenTTL())
	if err != nil {
		return nil, err
	}
	token, err := utils.GenerateToken(usr.ID, role, record.ID, s.tokenTTL())
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	usr.TokenHash = utils.HashToken(token)
	usr.UpdatedAt = time.Now()
	if err := s.Repo.Update(usr); err != nil {
		return nil, utils.Transport("user.Authenticate", err)
	}

	return &models.AuthResponse{
		Token:     token,
		SessionID: record.ID,
		ExpiresAt: record.ExpiresAt,
		AccountID: usr.ID,
		Role:      role,
	}, nil
}

func (s *DefaultUserService) SignOut(userID, sessionID string) error {
	if err := s.RevokeToken(userID); err != nil {
		return err
	}
	return s.Sessions.End(sessionID)
}

// RevokeToken clears the stored token hash so the current JWT can no
// longer authenticate. Also invoked on forced expiry.
func (s *DefaultUserService) RevokeToken(userID string) error {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.ErrNotFound
		}
		return utils.Transport("user.RevokeToken", err)
	}
	usr.TokenHash = ""
	usr.UpdatedAt = time.Now()
	if err := s.Repo.Update(usr); err != nil {
		return utils.Transport("user.RevokeToken", err)
	}
	return nil
}

func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	return s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
}

func (s *DefaultUserService) UpdateProfile(user *models.User) error {
	user.UpdatedAt = time.Now()
	if err := s.Repo.Update(user); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.ErrNotFound
		}
		return utils.Transport("user.UpdateProfile", err)
	}
	return nil
}

func (s *DefaultUserService) UpdateFCMToken(userID, token string) error {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return err
	}
	usr.FCMToken = token
	return s.UpdateProfile(usr)
}

func (s *DefaultUserService) DeleteUser(id string) error {
	return s.Repo.Delete(id)
}

func (s *DefaultUserService) GetAll() ([]models.User, error) {
	return s.Repo.GetAll()
}
