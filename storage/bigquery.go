package storage

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"

	"rent591-scraper/config"
	"rent591-scraper/models"
	"rent591-scraper/utils"
)

// BigQueryStore persists listings to a BigQuery table and serves the read
// queries behind the API. Inserts are best-effort: row-level rejections are
// logged, never retried.
type BigQueryStore struct {
	client *bigquery.Client
	cfg    *config.Config
	logger *utils.Logger
}

// NewBigQueryStore connects to BigQuery for the configured project.
func NewBigQueryStore(ctx context.Context, cfg *config.Config, logger *utils.Logger) (*BigQueryStore, error) {
	client, err := bigquery.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("bigquery: connect: %w", err)
	}
	return &BigQueryStore{client: client, cfg: cfg, logger: logger}, nil
}

// Insert streams all rows in a single batch call. Rows rejected by the
// service are logged individually; the batch is not retried.
func (s *BigQueryStore) Insert(ctx context.Context, houses []*models.House) error {
	if len(houses) == 0 {
		return nil
	}

	inserter := s.client.Dataset(s.cfg.DatasetID).Table(s.cfg.TableID).Inserter()
	err := inserter.Put(ctx, houses)
	if err == nil {
		s.logger.Info("[bigquery] Inserted %d rows into %s", len(houses), s.cfg.TablePath())
		return nil
	}

	var multiErr bigquery.PutMultiError
	if errors.As(err, &multiErr) {
		for _, rowErr := range multiErr {
			s.logger.Error("[bigquery] Row %d rejected: %v", rowErr.RowIndex, rowErr.Errors)
		}
		return fmt.Errorf("bigquery: insert: %d of %d rows rejected", len(multiErr), len(houses))
	}

	return fmt.Errorf("bigquery: insert: %w", err)
}

// List returns up to limit rows in warehouse default order.
//
// The table identifier comes from configuration; only user-supplied values
// go through query parameters.
func (s *BigQueryStore) List(ctx context.Context, limit int) ([]*models.House, error) {
	q := s.client.Query(fmt.Sprintf("SELECT * FROM `%s` LIMIT @row_limit", s.cfg.TablePath()))
	q.Parameters = []bigquery.QueryParameter{
		{Name: "row_limit", Value: limit},
	}

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("bigquery: list query: %w", err)
	}
	return collectRows(it)
}

// GetByID returns the row for houseID, or (nil, nil) when no row matches.
func (s *BigQueryStore) GetByID(ctx context.Context, houseID string) (*models.House, error) {
	q := s.client.Query(fmt.Sprintf("SELECT * FROM `%s` WHERE house_id = @house_id LIMIT 1", s.cfg.TablePath()))
	q.Parameters = []bigquery.QueryParameter{
		{Name: "house_id", Value: houseID},
	}

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("bigquery: get query: %w", err)
	}

	houses, err := collectRows(it)
	if err != nil {
		return nil, err
	}
	if len(houses) == 0 {
		return nil, nil
	}
	return houses[0], nil
}

// Close releases the underlying client.
func (s *BigQueryStore) Close() error {
	return s.client.Close()
}

func collectRows(it *bigquery.RowIterator) ([]*models.House, error) {
	houses := make([]*models.House, 0)
	for {
		var h models.House
		err := it.Next(&h)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("bigquery: read row: %w", err)
		}
		houses = append(houses, &h)
	}
	return houses, nil
}
