package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-gaming-platform/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAdminProfileRepository(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewAdminProfileRepository(db)
	ctx := context.Background()
	adminID := uuid.New()

	profile, err := repo.GetByUserID(ctx, adminID)
	assert.NoError(t, err)
	assert.Nil(t, profile)

	latest, err := repo.GetLatest(ctx)
	assert.NoError(t, err)
	assert.Nil(t, latest)

	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	assert.NoError(t, repo.Save(ctx, &models.AdminProfileDB{UserID: adminID, UPIID: "admin@upi", UpdatedAt: now}))
	assert.NoError(t, repo.Save(ctx, &models.AdminProfileDB{UserID: adminID, UPIID: "admin@okbank", UpdatedAt: now.Add(time.Hour)}))

	profile, err = repo.GetByUserID(ctx, adminID)
	assert.NoError(t, err)
	assert.Equal(t, "admin@okbank", profile.UPIID)

	latest, err = repo.GetLatest(ctx)
	assert.NoError(t, err)
	assert.Equal(t, adminID, latest.UserID)
}
