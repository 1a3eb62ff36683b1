package store

import (
	"context"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// KV is the asynchronous string-keyed store the journal persists through. It
// is the sole durability mechanism: Get reports absence without error, Set
// overwrites.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// OpenKV returns a diskv-backed KV rooted at basePath.
func OpenKV(basePath string) KV {
	return &diskvKV{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024, // 1MB
	})}
}

type diskvKV struct {
	d *diskv.Diskv
}

func (k *diskvKV) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := k.d.Read(key)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(val), true, nil
}

func (k *diskvKV) Set(ctx context.Context, key, value string) error {
	return k.d.Write(key, []byte(value))
}
