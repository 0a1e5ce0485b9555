package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutrikids/internal/models/db_models"
	"nutrikids/internal/models/request_models"
	"nutrikids/pkg/utils"
)

func TestUpdateChildAppliesOnlySentFields(t *testing.T) {
	childRepo := newFakeChildRepo()
	svc := NewChildService(childRepo)
	parentID := uuid.New()
	child := childRepo.add(&db_models.ChildProfile{
		ParentID:  parentID,
		Name:      "Sofia",
		Age:       6,
		Allergies: []string{"nuts"},
	})

	name := "Sofia Maria"
	age := 7
	updated, err := svc.UpdateChild(context.Background(), parentID, child.ID, request_models.UpdateChildRequest{
		Name: &name,
		Age:  &age,
	})
	require.NoError(t, err)
	assert.Equal(t, "Sofia Maria", updated.Name)
	assert.Equal(t, 7, updated.Age)
	assert.Equal(t, []string{"nuts"}, []string(updated.Allergies), "omitted field keeps its value")

	stored, err := childRepo.FindById(context.Background(), child.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sofia Maria", stored.Name)
}

func TestUpdateChildDeniedForOtherParent(t *testing.T) {
	childRepo := newFakeChildRepo()
	svc := NewChildService(childRepo)
	child := childRepo.add(&db_models.ChildProfile{ParentID: uuid.New(), Name: "Luca", Age: 4})

	name := "Hijacked"
	_, err := svc.UpdateChild(context.Background(), uuid.New(), child.ID, request_models.UpdateChildRequest{Name: &name})
	assert.ErrorIs(t, err, utils.ErrChildNotFound)

	stored, err := childRepo.FindById(context.Background(), child.ID)
	require.NoError(t, err)
	assert.Equal(t, "Luca", stored.Name)
}
