// Package persistence provides the GORM-backed implementation of the
// storage interfaces, with a registry of database providers selected by
// name at startup.
package persistence

import (
	"fmt"
	"sync"

	"github.com/Tarakreddy011/School-Management-App/domain"
	"gorm.io/gorm"
)

// DialectorOpener is a function that returns a gorm.Dialector for a DSN.
type DialectorOpener = func(string) gorm.Dialector

var (
	registryMu sync.RWMutex
	providers  = make(map[string]interface{})
)

// Register adds a storage provider to the registry. Provider can be a
// DialectorOpener (for GORM) or a custom factory function matching
// func(string) (domain.Storage, error).
func Register(name string, provider interface{}) {
	registryMu.Lock()
	defer registryMu.Unlock()
	providers[name] = provider
}

// Options tunes storage construction.
type Options struct {
	GormConfig  *gorm.Config
	SkipMigrate bool
}

// NewStorage creates a storage implementation by registered provider name.
func NewStorage(name, dsn string, opts *Options) (domain.Storage, error) {
	registryMu.RLock()
	provider, ok := providers[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("persistence: unknown storage provider %q", name)
	}
	if opts == nil {
		opts = &Options{}
	}

	if opener, ok := provider.(DialectorOpener); ok {
		gormConfig := opts.GormConfig
		if gormConfig == nil {
			gormConfig = &gorm.Config{}
		}

		db, err := gorm.Open(opener(dsn), gormConfig)
		if err != nil {
			return nil, err
		}

		repo := NewRepository(db)
		if !opts.SkipMigrate {
			if err := repo.AutoMigrate(); err != nil {
				return nil, err
			}
		}
		return repo, nil
	}

	if factory, ok := provider.(func(string) (domain.Storage, error)); ok {
		return factory(dsn)
	}

	return nil, fmt.Errorf("persistence: provider %q registered with incompatible type", name)
}
