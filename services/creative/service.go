package creative

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	creativeRepo "brandconnect/database/repository/creative"
	"brandconnect/models"
	"brandconnect/services/notification"
	"brandconnect/services/session"
	"brandconnect/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DefaultCreativeService is the production implementation.
type DefaultCreativeService struct {
	Repo     creativeRepo.CreativeRepository
	Sessions *session.Tracker
	Notifier notification.NotificationService
	TokenTTL time.Duration
}

func (s *DefaultCreativeService) tokenTTL() time.Duration {
	if s.TokenTTL <= 0 {
		return time.Hour
	}
	return s.TokenTTL
}

// Register creates a pending creative account. It stays hidden from
// browsing until an admin approves it.
func (s *DefaultCreativeService) Register(req models.CreativeRegistrationRequest) (*models.Creative, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.Repo.GetByEmail(email); err == nil {
		return nil, utils.Invalid("email", "an account with this email already exists")
	} else if !errors.Is(err, utils.ErrNotFound) {
		return nil, utils.Transport("creative.Register", err)
	}
	if req.HourlyRate < 0 {
		return nil, utils.Invalid("hourlyRate", "must not be negative")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	c := &models.Creative{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  req.DisplayName,
		Bio:          req.Bio,
		Category:     strings.ToLower(strings.TrimSpace(req.Category)),
		Region:       req.Region,
		HourlyRate:   req.HourlyRate,
		Status:       models.CreativeStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(c); err != nil {
		return nil, utils.Transport("creative.Register", err)
	}
	return c, nil
}

func (s *DefaultCreativeService) Authenticate(email, password string) (*models.AuthResponse, error) {
	c, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.Invalid("email", "invalid email or password")
		}
		return nil, utils.Transport("creative.Authenticate", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)); err != nil {
		return nil, utils.Invalid("password", "invalid email or password")
	}
	if c.Status == models.CreativeStatusSuspended {
		return nil, utils.Invalid("email", "this account is suspended")
	}

	record, err := s.Sessions.Start(c.ID, models.RoleCreative, s.tokenTTL())
	if err != nil {
		return nil, err
	}
	token, err := utils.GenerateToken(c.ID, models.RoleCreative, record.ID, s.tokenTTL())
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	c.TokenHash = utils.HashToken(token)
	c.UpdatedAt = time.Now()
	if err := s.Repo.Update(c); err != nil {
		return nil, utils.Transport("creative.Authenticate", err)
	}

	return &models.AuthResponse{
		Token:     token,
		SessionID: record.ID,
		ExpiresAt: record.ExpiresAt,
		AccountID: c.ID,
		Role:      models.RoleCreative,
	}, nil
}

func (s *DefaultCreativeService) SignOut(creativeID, sessionID string) error {
	if err := s.RevokeToken(creativeID); err != nil {
		return err
	}
	return s.Sessions.End(sessionID)
}

func (s *DefaultCreativeService) RevokeToken(creativeID string) error {
	c, err := s.Repo.GetByID(creativeID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.ErrNotFound
		}
		return utils.Transport("creative.RevokeToken", err)
	}
	c.TokenHash = ""
	c.UpdatedAt = time.Now()
	if err := s.Repo.Update(c); err != nil {
		return utils.Transport("creative.RevokeToken", err)
	}
	return nil
}

func (s *DefaultCreativeService) GetByID(id string) (*models.Creative, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultCreativeService) UpdateProfile(creative *models.Creative) error {
	creative.UpdatedAt = time.Now()
	if err := s.Repo.Update(creative); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.ErrNotFound
		}
		return utils.Transport("creative.UpdateProfile", err)
	}
	return nil
}

func (s *DefaultCreativeService) UpdateFCMToken(creativeID, token string) error {
	c, err := s.Repo.GetByID(creativeID)
	if err != nil {
		return err
	}
	c.FCMToken = token
	return s.UpdateProfile(c)
}

func (s *DefaultCreativeService) AddPortfolioImage(creativeID, url string) error {
	c, err := s.Repo.GetByID(creativeID)
	if err != nil {
		return err
	}
	c.Portfolio = append(c.Portfolio, url)
	return s.UpdateProfile(c)
}

func (s *DefaultCreativeService) Delete(id string) error {
	return s.Repo.Delete(id)
}

func (s *DefaultCreativeService) Browse(query models.CreativeSearchQuery) ([]models.CreativePublic, error) {
	creatives, err := s.Repo.Search(query)
	if err != nil {
		return nil, utils.Transport("creative.Browse", err)
	}
	results := make([]models.CreativePublic, 0, len(creatives))
	for i := range creatives {
		results = append(results, creatives[i].PublicView())
	}
	return results, nil
}

func (s *DefaultCreativeService) ListPending() ([]models.Creative, error) {
	return s.ListByStatus(models.CreativeStatusPending)
}

func (s *DefaultCreativeService) ListByStatus(status string) ([]models.Creative, error) {
	switch status {
	case models.CreativeStatusPending, models.CreativeStatusApproved,
		models.CreativeStatusRejected, models.CreativeStatusSuspended:
	default:
		return nil, utils.Invalid("status", fmt.Sprintf("%q is not a valid approval state", status))
	}
	creatives, err := s.Repo.ListByStatus(status)
	if err != nil {
		return nil, utils.Transport("creative.ListByStatus", err)
	}
	return creatives, nil
}

// SetStatus moves a creative through the approval workflow and tells
// them about the decision.
func (s *DefaultCreativeService) SetStatus(creativeID, status, reason string) error {
	switch status {
	case models.CreativeStatusApproved, models.CreativeStatusRejected, models.CreativeStatusSuspended:
	default:
		return utils.Invalid("status", fmt.Sprintf("%q is not a valid approval state", status))
	}

	c, err := s.Repo.GetByID(creativeID)
	if err != nil {
		return err
	}
	c.Status = status
	c.StatusReason = reason
	if err := s.UpdateProfile(c); err != nil {
		return err
	}

	if s.Notifier != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		title := "Profile " + status
		body := "Your Brand Connect profile is now " + status + "."
		if reason != "" {
			body += " " + reason
		}
		if err := s.Notifier.PushToCreative(ctx, creativeID, title, body,
			map[string]string{"event": "status_change", "status": status}); err != nil {
			utils.GetLogger().Debug("status notice not delivered",
				zap.String("creativeId", creativeID), zap.Error(err))
		}
	}
	return nil
}
