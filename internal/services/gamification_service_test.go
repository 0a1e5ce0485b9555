package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutrikids/internal/models/db_models"
	"nutrikids/pkg/utils"
)

func newGamificationFixture(t *testing.T) (GamificationService, *fakeChildRepo) {
	t.Helper()
	childRepo := newFakeChildRepo()
	return NewGamificationService(childRepo), childRepo
}

func TestAwardPointsBelowFirstThreshold(t *testing.T) {
	svc, childRepo := newGamificationFixture(t)
	child := childRepo.add(&db_models.ChildProfile{Name: "Luca"})

	result, err := svc.AwardPoints(context.Background(), child.ID, 10)
	require.NoError(t, err)

	assert.Equal(t, 10, result.Points)
	assert.Equal(t, 1, result.Level)
	assert.False(t, result.LevelUp)
	assert.Empty(t, result.NewBadges)
}

func TestAwardPointsCrossesCentury(t *testing.T) {
	svc, childRepo := newGamificationFixture(t)
	child := childRepo.add(&db_models.ChildProfile{Name: "Sofia", Points: 95, Level: 1})

	result, err := svc.AwardPoints(context.Background(), child.ID, 10)
	require.NoError(t, err)

	assert.Equal(t, 105, result.Points)
	assert.Equal(t, 2, result.Level)
	assert.True(t, result.LevelUp)
	assert.Equal(t, []string{db_models.BadgeFirstCentury}, result.NewBadges)
}

func TestAwardPointsAreAdditive(t *testing.T) {
	svc, childRepo := newGamificationFixture(t)
	child := childRepo.add(&db_models.ChildProfile{Name: "Marco"})

	for i := 0; i < 5; i++ {
		_, err := svc.AwardPoints(context.Background(), child.ID, 10)
		require.NoError(t, err)
	}

	stored, err := childRepo.FindById(context.Background(), child.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, stored.Points)
	assert.Equal(t, 1, stored.Level)
}

func TestBadgesAreNeverReissued(t *testing.T) {
	svc, childRepo := newGamificationFixture(t)
	child := childRepo.add(&db_models.ChildProfile{Name: "Anna", Points: 150, Level: 2,
		Badges: []string{db_models.BadgeFirstCentury}})

	result, err := svc.AwardPoints(context.Background(), child.ID, 10)
	require.NoError(t, err)

	assert.Empty(t, result.NewBadges)

	stored, err := childRepo.FindById(context.Background(), child.ID)
	require.NoError(t, err)
	assert.Equal(t, []string(stored.Badges), []string{db_models.BadgeFirstCentury})
}

func TestLevelBadgesAwardedTogether(t *testing.T) {
	svc, childRepo := newGamificationFixture(t)
	child := childRepo.add(&db_models.ChildProfile{Name: "Giulia", Points: 390, Level: 4,
		Badges: []string{db_models.BadgeFirstCentury}})

	result, err := svc.AwardPoints(context.Background(), child.ID, 20)
	require.NoError(t, err)

	assert.Equal(t, 5, result.Level)
	assert.True(t, result.LevelUp)
	assert.Equal(t, []string{db_models.BadgeLevel5}, result.NewBadges)
}

func TestAwardPointsRejectsNonPositive(t *testing.T) {
	svc, childRepo := newGamificationFixture(t)
	child := childRepo.add(&db_models.ChildProfile{Name: "Pietro"})

	_, err := svc.AwardPoints(context.Background(), child.ID, 0)
	assert.ErrorIs(t, err, utils.ErrInvalidPoints)

	_, err = svc.AwardPoints(context.Background(), child.ID, -5)
	assert.ErrorIs(t, err, utils.ErrInvalidPoints)

	stored, err := childRepo.FindById(context.Background(), child.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Points, "rejected awards must not mutate state")
}

func TestAwardPointsUnknownChild(t *testing.T) {
	svc, _ := newGamificationFixture(t)

	_, err := svc.AwardPoints(context.Background(), uuid.New(), 10)
	assert.ErrorIs(t, err, utils.ErrChildNotFound)
}
