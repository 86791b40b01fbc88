package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/guidebook/internal/domain"
	"github.com/pkordes/guidebook/internal/repo"
	"github.com/pkordes/guidebook/testutil"
)

// newTx opens a transaction against the test database that is rolled back
// when the test finishes. Every repo in a test shares it so foreign keys
// resolve without committing anything.
func newTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})
	return tx
}

// createUser inserts a user with a unique email and returns it.
func createUser(t *testing.T, tx pgx.Tx) domain.User {
	t.Helper()
	u, err := repo.NewUserRepo(tx).Create(context.Background(), domain.User{
		Email:        uuid.NewString() + "@example.com",
		Name:         "Test User",
		PasswordHash: "not-a-real-hash",
		Role:         domain.RoleUser,
	})
	require.NoError(t, err, "create user fixture")
	return u
}

func recordFixture(name string) domain.BusinessRecord {
	site := "https://example.com"
	phone := "+1 555 0100"
	return domain.BusinessRecord{
		Name:         name,
		Category:     domain.CategoryEat,
		Address:      "1 Main St, Austin",
		MapReference: "https://maps.example.com/?q=1",
		Contact:      domain.Contact{Phone: &phone, Website: &site},
		Images:       []string{"https://images.example.com/1.jpg"},
		Rating:       4.5,
		ReviewCount:  120,
		Source:       domain.SourceYelp,
	}
}
