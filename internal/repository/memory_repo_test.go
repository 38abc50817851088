package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cheertaboi/refill-pricing-service/internal/models"
)

func TestMemoryPrescriptionRepo_Seeded(t *testing.T) {
	repo := NewMemoryPrescriptionRepo(models.SamplePrescriptions()...)
	ctx := context.Background()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "acetaminophen", list[0].Name)
	assert.Equal(t, "phenylephrine", list[2].Name)

	p, err := repo.GetByName(ctx, "diphenhydramine")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 50.0, p.PricePerRefill)
	assert.True(t, p.Subscription)
}

func TestMemoryPrescriptionRepo_Missing(t *testing.T) {
	repo := NewMemoryPrescriptionRepo()
	p, err := repo.GetByName(context.Background(), "ibuprofen")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestMemoryPrescriptionRepo_UpsertKeepsID(t *testing.T) {
	repo := NewMemoryPrescriptionRepo()
	ctx := context.Background()

	id, err := repo.Upsert(ctx, models.Prescription{Name: "ibuprofen", PricePerRefill: 8, Refills: 2})
	require.NoError(t, err)

	again, err := repo.Upsert(ctx, models.Prescription{Name: "ibuprofen", PricePerRefill: 9, Refills: 2})
	require.NoError(t, err)
	assert.Equal(t, id, again)

	p, err := repo.GetByName(ctx, "ibuprofen")
	require.NoError(t, err)
	assert.Equal(t, 9.0, p.PricePerRefill)
}
