package database_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/mailguard/pkg/database"
	"github.com/codeready-toolchain/mailguard/test/util"
)

func maskedHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

func TestAuditStore_InsertAndListRecent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}

	client := util.SetupTestDatabase(t)
	store := database.NewAuditStore(client)
	ctx := context.Background()

	first := database.AuditRecord{
		ID:          uuid.New().String(),
		Category:    "Billing Issues",
		EntityCount: 2,
		EntityCounts: map[string]int{
			"email":        1,
			"phone_number": 1,
		},
		MaskedSHA256: maskedHash("Contact [email] or [phone_number]."),
	}
	second := database.AuditRecord{
		ID:           uuid.New().String(),
		Category:     "Account Management",
		EntityCount:  0,
		EntityCounts: map[string]int{},
		MaskedSHA256: maskedHash("No personal data here."),
	}

	require.NoError(t, store.Insert(ctx, first))
	require.NoError(t, store.Insert(ctx, second))

	records, err := store.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.False(t, records[0].CreatedAt.Before(records[1].CreatedAt), "records should be newest first")

	byID := make(map[string]database.AuditRecord, len(records))
	for _, rec := range records {
		byID[rec.ID] = rec
	}
	got, ok := byID[first.ID]
	require.True(t, ok)
	assert.Equal(t, "Billing Issues", got.Category)
	assert.Equal(t, 2, got.EntityCount)
	assert.Equal(t, first.EntityCounts, got.EntityCounts)
	assert.Equal(t, first.MaskedSHA256, got.MaskedSHA256)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestAuditStore_ListRecentLimit(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}

	client := util.SetupTestDatabase(t)
	store := database.NewAuditStore(client)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		rec := database.AuditRecord{
			ID:           uuid.New().String(),
			Category:     "Technical Support",
			EntityCount:  i,
			EntityCounts: map[string]int{"email": i},
			MaskedSHA256: maskedHash("masked"),
		}
		require.NoError(t, store.Insert(ctx, rec))
	}

	records, err := store.ListRecent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestAuditStore_CountByCategory(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}

	client := util.SetupTestDatabase(t)
	store := database.NewAuditStore(client)
	ctx := context.Background()

	categories := []string{"Billing Issues", "Billing Issues", "Account Management"}
	for _, category := range categories {
		rec := database.AuditRecord{
			ID:           uuid.New().String(),
			Category:     category,
			EntityCounts: map[string]int{},
			MaskedSHA256: maskedHash("masked"),
		}
		require.NoError(t, store.Insert(ctx, rec))
	}

	counts, err := store.CountByCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"Billing Issues":     2,
		"Account Management": 1,
	}, counts)
}

func TestAuditStore_EmptyList(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}

	client := util.SetupTestDatabase(t)
	store := database.NewAuditStore(client)

	records, err := store.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}
