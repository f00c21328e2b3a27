package store

import (
	"context"
	"fmt"
	"io"
)

// Backend is a Store that holds a connection or file.
type Backend interface {
	Store
	io.Closer
}

type Options struct {
	Driver        string // sqlite, redis or memory
	SQLitePath    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Open returns the backend named by opts.Driver.
func Open(ctx context.Context, opts Options) (Backend, error) {
	switch opts.Driver {
	case "sqlite":
		s, err := NewSQLite(opts.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", opts.SQLitePath, err)
		}
		return s, nil
	case "redis":
		s, err := NewRedis(ctx, opts.RedisAddr, opts.RedisPassword, opts.RedisDB)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", opts.Driver)
	}
}
