// Package storage provides the durable string-keyed store the ledger
// persists its collections in.
package storage

import "errors"

// ErrStorage is wrapped by all errors the storage implementations return.
var ErrStorage = errors.New("storage error")

// KV is a durable string-keyed store.
//
// Get returns the stored value and whether the key exists. A missing key is
// not an error.
type KV interface {
	Get(key string) (value string, found bool, err error)
	Set(key, value string) error
	Remove(key string) error
}

// Pinger is implemented by stores that can check their backing resource.
type Pinger interface {
	Ping() error
}
