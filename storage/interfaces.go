package storage

import (
	"context"

	"rent591-scraper/models"
)

// HouseWriter is the write half of the warehouse, all the crawler needs.
type HouseWriter interface {
	Insert(ctx context.Context, houses []*models.House) error
}

// HouseStore is the full warehouse surface the read API depends on.
type HouseStore interface {
	HouseWriter

	// List returns up to limit rows in warehouse default order.
	List(ctx context.Context, limit int) ([]*models.House, error)

	// GetByID returns the row for houseID, or (nil, nil) when absent.
	GetByID(ctx context.Context, houseID string) (*models.House, error)
}
