package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/roadready/backend/internal/metrics"
	"github.com/roadready/backend/internal/store"
)

// records wraps the store with the fault policy shared by every progress
// component: failures are logged, counted and then treated as "no data".
type records struct {
	kv      store.Store
	logger  *slog.Logger
	metrics *metrics.Metrics
	locks   *keyLocker
}

func newRecords(kv store.Store, logger *slog.Logger, m *metrics.Metrics) *records {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &records{
		kv:      kv,
		logger:  logger,
		metrics: m,
		locks:   newKeyLocker(),
	}
}

// errCorrupt marks a stored value that could not be decoded.
var errCorrupt = errors.New("corrupt record")

// fetch returns the stored bytes. store.ErrNotFound is returned as is; any
// other read failure is logged and counted before it is returned.
func (r *records) fetch(ctx context.Context, key string) ([]byte, error) {
	data, err := r.kv.Get(ctx, key)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		r.fault(ctx, "get", key, err)
	}
	return data, err
}

// decode fills v from key. It returns store.ErrNotFound for an absent key,
// an errCorrupt error when the value cannot be decoded, and the store error
// when the read failed. v is only usable when decode returns nil.
func (r *records) decode(ctx context.Context, key string, v any) error {
	data, err := r.fetch(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		r.fault(ctx, "decode", key, err)
		return fmt.Errorf("%w: %s: %v", errCorrupt, key, err)
	}
	return nil
}

// load decodes key into v and reports whether v was filled.
func (r *records) load(ctx context.Context, key string, v any) bool {
	return r.decode(ctx, key, v) == nil
}

// overwritable reports whether a read-modify-write may replace key after
// its read returned err. An absent or corrupt value holds nothing worth
// keeping; after a failed read the stored value is unknown and must stay.
func overwritable(err error) bool {
	return err == nil || errors.Is(err, store.ErrNotFound) || errors.Is(err, errCorrupt)
}

func (r *records) setRaw(ctx context.Context, key string, data []byte) bool {
	if err := r.kv.Set(ctx, key, data); err != nil {
		r.fault(ctx, "set", key, err)
		return false
	}
	return true
}

func (r *records) save(ctx context.Context, key string, v any) bool {
	data, err := json.Marshal(v)
	if err != nil {
		r.fault(ctx, "encode", key, err)
		return false
	}
	return r.setRaw(ctx, key, data)
}

func (r *records) fault(ctx context.Context, op, key string, err error) {
	r.logger.ErrorContext(ctx, "progress storage error",
		"op", op,
		"key", key,
		"error", err,
	)
	r.metrics.StorageError(op, key)
}
