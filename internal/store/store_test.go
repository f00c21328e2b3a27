package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/roadready/backend/internal/store"
)

func backends(t *testing.T) map[string]store.Store {
	t.Helper()

	sqlite, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { sqlite.Close() })

	mr := miniredis.RunT(t)
	rdb := store.NewRedisFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { rdb.Close() })

	return map[string]store.Store{
		"memory": store.NewMemory(),
		"sqlite": sqlite,
		"redis":  rdb,
	}
}

func TestStore_GetMissing(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get(ctx, "user_stats")
			if !errors.Is(err, store.ErrNotFound) {
				t.Errorf("expected ErrNotFound, got %v", err)
			}
		})
	}
}

func TestStore_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Set(ctx, "daily_streak", []byte("1")); err != nil {
				t.Fatalf("set: %v", err)
			}
			if err := s.Set(ctx, "daily_streak", []byte("2")); err != nil {
				t.Fatalf("set: %v", err)
			}

			got, err := s.Get(ctx, "daily_streak")
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if string(got) != "2" {
				t.Errorf("expected %q, got %q", "2", got)
			}
		})
	}
}

func TestStore_RemoveMany(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s.Set(ctx, "a", []byte("1"))
			s.Set(ctx, "b", []byte("2"))
			s.Set(ctx, "c", []byte("3"))

			if err := s.RemoveMany(ctx, "a", "b", "missing"); err != nil {
				t.Fatalf("remove: %v", err)
			}

			for _, k := range []string{"a", "b"} {
				if _, err := s.Get(ctx, k); !errors.Is(err, store.ErrNotFound) {
					t.Errorf("expected %s removed, got %v", k, err)
				}
			}
			if got, _ := s.Get(ctx, "c"); string(got) != "3" {
				t.Errorf("expected c untouched, got %q", got)
			}

			if err := s.RemoveMany(ctx); err != nil {
				t.Errorf("expected no-op on empty key list, got %v", err)
			}
		})
	}
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "persist.db")

	s, err := store.NewSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Set(ctx, "last_study_date", []byte("2024-03-10")); err != nil {
		t.Fatalf("set: %v", err)
	}
	s.Close()

	s, err = store.NewSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	got, err := s.Get(ctx, "last_study_date")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "2024-03-10" {
		t.Errorf("expected %q, got %q", "2024-03-10", got)
	}
}

func TestNewRedis_PingFails(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	if _, err := store.NewRedis(context.Background(), addr, "", 0); err == nil {
		t.Error("expected error connecting to a closed server")
	}
}

func TestWithPrefix(t *testing.T) {
	ctx := context.Background()
	base := store.NewMemory()
	alice := store.WithPrefix(base, "alice:")
	bob := store.WithPrefix(base, "bob:")

	alice.Set(ctx, "daily_streak", []byte("5"))
	bob.Set(ctx, "daily_streak", []byte("1"))

	if got, _ := base.Get(ctx, "alice:daily_streak"); string(got) != "5" {
		t.Errorf("expected prefixed key in base store, got %q", got)
	}
	if got, _ := bob.Get(ctx, "daily_streak"); string(got) != "1" {
		t.Errorf("expected %q, got %q", "1", got)
	}

	if err := alice.RemoveMany(ctx, "daily_streak"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := alice.Get(ctx, "daily_streak"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if got, _ := bob.Get(ctx, "daily_streak"); string(got) != "1" {
		t.Errorf("expected other namespace untouched, got %q", got)
	}

	if store.WithPrefix(base, "") != store.Store(base) {
		t.Error("expected empty prefix to return the store unchanged")
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	s, err := store.Open(ctx, store.Options{Driver: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "open.db")})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	s.Close()

	mr := miniredis.RunT(t)
	s, err = store.Open(ctx, store.Options{Driver: "redis", RedisAddr: mr.Addr()})
	if err != nil {
		t.Fatalf("open redis: %v", err)
	}
	s.Close()

	if _, err := store.Open(ctx, store.Options{Driver: "mongo"}); err == nil {
		t.Error("expected error for unknown driver")
	}
}
