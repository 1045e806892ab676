package storageprovider

import (
	"context"
	"os"
	"path/filepath"

	"assetdesk/providers"

	"github.com/pkg/errors"
)

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

// NewStorageProvider picks the session store backend named by driver.
func NewStorageProvider(ctx context.Context, driver, dsn, redisAddr string) (providers.StorageProvider, error) {
	switch driver {
	case DriverMemory:
		return NewMemoryProvider(), nil
	case DriverRedis:
		return NewRedisProvider(ctx, redisAddr)
	case DriverSQLite:
		if dir := filepath.Dir(dsn); dir != "." {
			if err := os.MkdirAll(dir, 0o700); err != nil {
				return nil, errors.Wrap(err, "create storage dir")
			}
		}
		return NewSQLProvider(DriverSQLite, dsn)
	case DriverPostgres:
		return NewSQLProvider(DriverPostgres, dsn)
	default:
		return nil, errors.Errorf("unknown storage driver %q", driver)
	}
}
