package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-gaming-platform/internal/logger"
	"github.com/sbilibin2017/gw-gaming-platform/internal/models"
	"github.com/sbilibin2017/gw-gaming-platform/internal/pipeline"
)

// UPI update outcomes
const (
	UPICreated   = "UPI ID created successfully for admin."
	UPIUpdated   = "UPI ID updated successfully."
	UPIUnchanged = "No changes made (UPI already same)."
)

// AdminProfileStore reads and writes admin payout profiles.
type AdminProfileStore interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.AdminProfileDB, error)
	GetLatest(ctx context.Context) (*models.AdminProfileDB, error)
	Save(ctx context.Context, profile *models.AdminProfileDB) error
}

// UserLister returns users matching a filter.
type UserLister interface {
	Find(ctx context.Context, m pipeline.Match) ([]models.UserDB, error)
}

// AdminService manages the admin UPI id and the user listing.
type AdminService struct {
	profiles AdminProfileStore
	users    UserLister
}

// NewAdminService creates a new AdminService.
func NewAdminService(profiles AdminProfileStore, users UserLister) *AdminService {
	return &AdminService{profiles: profiles, users: users}
}

// UpdateUPI sets the UPI id of an admin and returns the outcome message.
func (s *AdminService) UpdateUPI(ctx context.Context, adminID uuid.UUID, upi string) (string, error) {
	upi = strings.TrimSpace(upi)
	if upi == "" {
		return "", invalidArgument("UPI ID is required")
	}

	current, err := s.profiles.GetByUserID(ctx, adminID)
	if err != nil {
		logger.Log.Errorw("failed to get admin profile", "userID", adminID, "error", err)
		return "", storeError("Error updating UPI ID", err)
	}

	msg := UPIUpdated
	switch {
	case current == nil:
		msg = UPICreated
	case current.UPIID == upi:
		return UPIUnchanged, nil
	}

	profile := &models.AdminProfileDB{UserID: adminID, UPIID: upi, UpdatedAt: time.Now().UTC()}
	if err := s.profiles.Save(ctx, profile); err != nil {
		logger.Log.Errorw("failed to save admin profile", "userID", adminID, "error", err)
		return "", storeError("Error updating UPI ID", err)
	}

	logger.Log.Infow("admin upi saved", "userID", adminID, "created", current == nil)
	return msg, nil
}

// GetUPI returns the most recently updated admin UPI id.
func (s *AdminService) GetUPI(ctx context.Context) (*models.AdminProfileDB, error) {
	profile, err := s.profiles.GetLatest(ctx)
	if err != nil {
		logger.Log.Errorw("failed to get admin upi", "error", err)
		return nil, storeError("Error fetching UPI ID", err)
	}
	if profile == nil {
		return nil, notFound("UPI ID not found")
	}
	return profile, nil
}

// ListUsers returns every user, oldest first.
func (s *AdminService) ListUsers(ctx context.Context) ([]models.UserDB, error) {
	users, err := s.users.Find(ctx, pipeline.Match{})
	if err != nil {
		logger.Log.Errorw("failed to list users", "error", err)
		return nil, storeError("Error fetching users", err)
	}
	if users == nil {
		users = []models.UserDB{}
	}
	return users, nil
}
