package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Pinger reports whether the datastore is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// GORMPinger pings the connection pool behind a *gorm.DB.
type GORMPinger struct {
	db *gorm.DB
}

// NewGORMPinger creates a new GORMPinger.
func NewGORMPinger(db *gorm.DB) *GORMPinger {
	return &GORMPinger{db: db}
}

// Ping checks the datastore connection.
func (p *GORMPinger) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
