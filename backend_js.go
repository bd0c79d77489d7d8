//go:build js && wasm

package keep

import (
	"errors"
	"fmt"
	"syscall/js"
)

func defaultBackend() Backend { return KVBackend{Store: localStorage{}} }

// ErrStorageUnavailable is returned when the page exposes no usable local
// storage (storage disabled, opaque origin, non-browser js host).
var ErrStorageUnavailable = errors.New("local storage unavailable")

// localStorage bridges KV onto window.localStorage. Calls are synchronous;
// the browser persists per origin.
type localStorage struct{}

func (localStorage) handle() (js.Value, error) {
	window := js.Global().Get("window")
	if window.IsUndefined() {
		return js.Value{}, ErrStorageUnavailable
	}
	storage := window.Get("localStorage")
	if storage.IsUndefined() || storage.IsNull() {
		return js.Value{}, ErrStorageUnavailable
	}
	return storage, nil
}

func (l localStorage) Get(key string) (string, bool, error) {
	storage, err := l.handle()
	if err != nil {
		return "", false, err
	}
	v := storage.Call("getItem", key)
	if v.IsNull() {
		return "", false, nil
	}
	return v.String(), true, nil
}

func (l localStorage) Set(key, val string) (err error) {
	// setItem throws on quota exhaustion, which syscall/js turns into a
	// panic; surface it as an error instead.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("storing key %s: %v", key, r)
		}
	}()
	storage, err := l.handle()
	if err != nil {
		return err
	}
	storage.Call("setItem", key, val)
	return nil
}
