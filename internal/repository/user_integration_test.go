//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sectionconnection/users-api/internal/testutil"
)

// ============================================================================
// User Repository Integration Tests
// ============================================================================

func TestIntegrationUserRepository_ListUsers_Empty(t *testing.T) {
	ctx, repo, _ := newUserTestEnv(t)

	users, err := repo.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if users == nil {
		t.Fatal("ListUsers returned nil slice, want empty slice")
	}
	if len(users) != 0 {
		t.Errorf("expected 0 users, got %d", len(users))
	}
}

func TestIntegrationUserRepository_CreateUser(t *testing.T) {
	ctx, repo, _ := newUserTestEnv(t)

	username := testutil.UniqueName("alice")
	user, err := repo.CreateUser(ctx, username, "a@x.com")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	if user.UserID <= 0 {
		t.Errorf("UserID should be generated, got %d", user.UserID)
	}
	if user.Username != username {
		t.Errorf("Username mismatch: got %q", user.Username)
	}
	if user.Email != "a@x.com" {
		t.Errorf("Email mismatch: got %q", user.Email)
	}
	if user.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestIntegrationUserRepository_ListUsers_NewestFirst(t *testing.T) {
	ctx, repo, _ := newUserTestEnv(t)

	first, err := repo.CreateUser(ctx, "first", "first@x.com")
	if err != nil {
		t.Fatalf("CreateUser (first) failed: %v", err)
	}
	second, err := repo.CreateUser(ctx, "second", "second@x.com")
	if err != nil {
		t.Fatalf("CreateUser (second) failed: %v", err)
	}

	users, err := repo.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].UserID != second.UserID || users[1].UserID != first.UserID {
		t.Errorf("unexpected order: got [%d, %d], want [%d, %d]",
			users[0].UserID, users[1].UserID, second.UserID, first.UserID)
	}
}

func TestIntegrationUserRepository_CreateUser_DuplicatesAllowed(t *testing.T) {
	ctx, repo, pool := newUserTestEnv(t)

	for i := 0; i < 2; i++ {
		if _, err := repo.CreateUser(ctx, "bob", "b@x.com"); err != nil {
			t.Fatalf("CreateUser #%d failed: %v", i, err)
		}
	}

	n, err := testutil.CountUsers(ctx, pool)
	if err != nil {
		t.Fatalf("CountUsers failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 rows, got %d", n)
	}
}

func TestIntegrationUserRepository_CreateUser_ValuesAreBound(t *testing.T) {
	ctx, repo, pool := newUserTestEnv(t)

	hostile := "x'); DROP TABLE users; --"
	user, err := repo.CreateUser(ctx, hostile, "evil@x.com")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if user.Username != hostile {
		t.Errorf("username was altered: %q", user.Username)
	}

	n, err := testutil.CountUsers(ctx, pool)
	if err != nil {
		t.Fatalf("users table should still exist: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 row, got %d", n)
	}
}

func newUserTestEnv(t *testing.T) (context.Context, *Repository, *pgxpool.Pool) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	ctx := context.Background()
	dbURL := testutil.RequireEnv(t, "DATABASE_URL")

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(pool.Close)

	unlock, err := testutil.AcquireDBLock(ctx, pool)
	if err != nil {
		t.Fatalf("acquire db lock: %v", err)
	}
	t.Cleanup(func() {
		_ = unlock()
	})

	if err := testutil.ResetUsersSchema(ctx, pool); err != nil {
		t.Fatalf("reset users schema: %v", err)
	}

	repo, err := New(ctx, dbURL, PoolConfig{MaxConns: 4})
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}
	t.Cleanup(repo.Close)

	return ctx, repo, pool
}
