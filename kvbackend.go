package keep

import (
	"context"
	"encoding/base64"
	"fmt"
)

// KV is a flat string-keyed store: browser local storage on the sandboxed web
// target, or any persistent lookalike injected through WithBackend. Get
// distinguishes an absent key (ok false) from a lookup failure.
type KV interface {
	Get(key string) (val string, ok bool, err error)
	Set(key, val string) error
}

// KVBackend stores blobs in a KV store. The underlying medium only holds
// text, so values are base64 (standard alphabet) on the wire. No home-marker
// expansion is applied; keys are used as resolved.
type KVBackend struct {
	Store KV
}

func (b KVBackend) Exists(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, ok, err := b.Store.Get(name)
	if err != nil {
		return false, fmt.Errorf("checking key %s: %w", name, err)
	}
	return ok, nil
}

func (b KVBackend) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	val, ok, err := b.Store.Get(name)
	if err != nil {
		return nil, fmt.Errorf("reading key %s: %w", name, err)
	}
	if !ok {
		return nil, fmt.Errorf("reading key %s: %w", name, ErrNotFound)
	}
	data, err := base64.StdEncoding.DecodeString(val)
	if err != nil {
		return nil, &DecodeError{Key: name, Err: err}
	}
	return data, nil
}

func (b KVBackend) Write(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := b.Store.Set(name, base64.StdEncoding.EncodeToString(data)); err != nil {
		return fmt.Errorf("writing key %s: %w", name, err)
	}
	return nil
}
