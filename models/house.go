package models

import (
	"time"

	"cloud.google.com/go/bigquery"
)

// Gender restriction values as they appear on the listing page. Pages that
// carry no house-rule section fall back to GenderUnrestricted.
const (
	GenderUnrestricted = "男女皆可"
	GenderFemaleOnly   = "限女生"
	GenderMaleOnly     = "限男生"
)

// House is one rental listing as extracted from its detail page.
//
// Every field is always present: a failed extraction leaves the field as an
// empty string (GenderRestriction falls back to its default) instead of
// omitting the key, so consumers only ever check for emptiness.
type House struct {
	HouseID           string `json:"house_id" bigquery:"house_id"`
	Title             string `json:"title" bigquery:"title"`
	Price             string `json:"price" bigquery:"price"`
	ContactIdentity   string `json:"contact_identity" bigquery:"contact_identity"`
	ContactName       string `json:"contact_name" bigquery:"contact_name"`
	ContactPhone      string `json:"contact_phone" bigquery:"contact_phone"`
	HouseType         string `json:"house_type" bigquery:"house_type"`
	CurrentStatus     string `json:"current_status" bigquery:"current_status"`
	GenderRestriction string `json:"gender_restriction" bigquery:"gender_restriction"`
	Description       string `json:"description" bigquery:"description"`
}

// NewEmptyHouse returns a record with the ID set and every other field at its
// default. This is what a listing degrades to when its page cannot be fetched.
func NewEmptyHouse(houseID string) *House {
	return &House{
		HouseID:           houseID,
		GenderRestriction: GenderUnrestricted,
	}
}

// IsEmpty reports whether nothing besides the ID was extracted.
func (h *House) IsEmpty() bool {
	return h.Title == "" &&
		h.Price == "" &&
		h.ContactIdentity == "" &&
		h.ContactName == "" &&
		h.ContactPhone == "" &&
		h.HouseType == "" &&
		h.CurrentStatus == "" &&
		(h.GenderRestriction == "" || h.GenderRestriction == GenderUnrestricted) &&
		h.Description == ""
}

// Save implements bigquery.ValueSaver. Every column is written explicitly,
// empty or not, so the warehouse row always carries the full key set.
func (h *House) Save() (map[string]bigquery.Value, string, error) {
	return map[string]bigquery.Value{
		"house_id":           h.HouseID,
		"title":              h.Title,
		"price":              h.Price,
		"contact_identity":   h.ContactIdentity,
		"contact_name":       h.ContactName,
		"contact_phone":      h.ContactPhone,
		"house_type":         h.HouseType,
		"current_status":     h.CurrentStatus,
		"gender_restriction": h.GenderRestriction,
		"description":        h.Description,
	}, "", nil
}

// CrawlStats holds the aggregate counts and timing for one crawl run.
type CrawlStats struct {
	StartedAt      time.Time `json:"started_at"`
	TotalHouses    int       `json:"total_houses"`
	SuccessCount   int       `json:"success_count"`
	FailedIDs      []string  `json:"failed_ids"`
	ElapsedSeconds float64   `json:"elapsed_seconds"`
	SuccessRate    float64   `json:"success_rate"`
}
