package types

import "context"

// KVStoreAPI is the narrow durable key-value surface the recent search
// store persists through. GetString reports found=false for absent keys.
type KVStoreAPI interface {
	GetString(ctx context.Context, key string) (value string, found bool, err error)
	SetString(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
