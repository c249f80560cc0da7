package storage

import "context"

//go:generate mockgen -source=kv.go -destination=mocks/mock.go

// KV is the key-value engine under the report repository. Set replaces the
// whole value of key in one write; engines give no other guarantee.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

const DefaultKey = "reports"
