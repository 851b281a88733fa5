package services

import (
	"context"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-gaming-platform/internal/logger"
	"github.com/sbilibin2017/gw-gaming-platform/internal/models"
	"github.com/shopspring/decimal"
)

// RechargePackStore persists recharge packs.
type RechargePackStore interface {
	Get(ctx context.Context, packID string) (*models.RechargePackDB, error)
	List(ctx context.Context, activeOnly bool) ([]models.RechargePackDB, error)
	Save(ctx context.Context, pack *models.RechargePackDB) error
	Update(ctx context.Context, packID string, upd models.RechargePackUpdate) (bool, error)
	Deactivate(ctx context.Context, packID string) (bool, error)
	Delete(ctx context.Context, packID string) (bool, error)
}

var hundred = decimal.NewFromInt(100)

// RechargePackService manages the spin pack catalogue.
type RechargePackService struct {
	store RechargePackStore
}

// NewRechargePackService creates a new RechargePackService.
func NewRechargePackService(store RechargePackStore) *RechargePackService {
	return &RechargePackService{store: store}
}

func validatePack(req models.CreateRechargePackRequest) error {
	switch {
	case strings.TrimSpace(req.PackID) == "":
		return invalidArgument("pack_id is required")
	case strings.TrimSpace(req.Name) == "":
		return invalidArgument("name is required")
	case !req.Price.IsPositive():
		return invalidArgument("price must be greater than 0")
	case req.Spins <= 0:
		return invalidArgument("spins must be greater than 0")
	case req.DiscountPercentage.IsNegative() || req.DiscountPercentage.GreaterThan(hundred):
		return invalidArgument("discount_percentage must be between 0 and 100")
	}
	return nil
}

// Create adds an active pack. Pack ids are unique.
func (s *RechargePackService) Create(ctx context.Context, req models.CreateRechargePackRequest) (*models.RechargePackDB, error) {
	if err := validatePack(req); err != nil {
		return nil, err
	}

	existing, err := s.store.Get(ctx, req.PackID)
	if err != nil {
		logger.Log.Errorw("failed to get pack", "packID", req.PackID, "error", err)
		return nil, storeError("Error creating pack", err)
	}
	if existing != nil {
		return nil, invalidArgument("Pack with pack_id '%s' already exists", req.PackID)
	}

	now := time.Now().UTC()
	pack := &models.RechargePackDB{
		PackID:             req.PackID,
		Name:               req.Name,
		Price:              req.Price,
		Spins:              req.Spins,
		DiscountPercentage: req.DiscountPercentage,
		IsActive:           true,
		DisplayOrder:       req.DisplayOrder,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.store.Save(ctx, pack); err != nil {
		logger.Log.Errorw("failed to save pack", "packID", req.PackID, "error", err)
		return nil, storeError("Error creating pack", err)
	}

	logger.Log.Infow("pack created", "packID", pack.PackID)
	return pack, nil
}

// List returns packs ordered for display.
func (s *RechargePackService) List(ctx context.Context, activeOnly bool) ([]models.RechargePackDB, error) {
	packs, err := s.store.List(ctx, activeOnly)
	if err != nil {
		logger.Log.Errorw("failed to list packs", "error", err)
		return nil, storeError("Error fetching packs", err)
	}
	if packs == nil {
		packs = []models.RechargePackDB{}
	}
	return packs, nil
}

// Get returns a single pack.
func (s *RechargePackService) Get(ctx context.Context, packID string) (*models.RechargePackDB, error) {
	pack, err := s.store.Get(ctx, packID)
	if err != nil {
		logger.Log.Errorw("failed to get pack", "packID", packID, "error", err)
		return nil, storeError("Error fetching pack", err)
	}
	if pack == nil {
		return nil, notFound("Pack '%s' not found", packID)
	}
	return pack, nil
}

// Update applies a partial update and returns the stored pack.
func (s *RechargePackService) Update(ctx context.Context, packID string, upd models.RechargePackUpdate) (*models.RechargePackDB, error) {
	if upd.Price != nil && !upd.Price.IsPositive() {
		return nil, invalidArgument("price must be greater than 0")
	}
	if upd.Spins != nil && *upd.Spins <= 0 {
		return nil, invalidArgument("spins must be greater than 0")
	}
	if d := upd.DiscountPercentage; d != nil && (d.IsNegative() || d.GreaterThan(hundred)) {
		return nil, invalidArgument("discount_percentage must be between 0 and 100")
	}

	found, err := s.store.Update(ctx, packID, upd)
	if err != nil {
		logger.Log.Errorw("failed to update pack", "packID", packID, "error", err)
		return nil, storeError("Error updating pack", err)
	}
	if !found {
		return nil, notFound("Pack with pack_id '%s' not found", packID)
	}

	return s.Get(ctx, packID)
}

// Delete deactivates a pack, or removes it when hard is set.
func (s *RechargePackService) Delete(ctx context.Context, packID string, hard bool) error {
	remove := s.store.Deactivate
	if hard {
		remove = s.store.Delete
	}

	found, err := remove(ctx, packID)
	if err != nil {
		logger.Log.Errorw("failed to delete pack", "packID", packID, "hard", hard, "error", err)
		return storeError("Error deleting pack", err)
	}
	if !found {
		return notFound("Pack with pack_id '%s' not found", packID)
	}

	logger.Log.Infow("pack deleted", "packID", packID, "hard", hard)
	return nil
}
