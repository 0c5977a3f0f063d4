package models

import "math"

// PaginationParams is the optional paging of the questionnaire listing.
// Limit 0 means "everything".
type PaginationParams struct {
	Page  int `json:"page" query:"page" example:"1"`
	Limit int `json:"limit" query:"limit" example:"10"`
}

// Normalize clamps negative values and defaults Page to 1.
func (p PaginationParams) Normalize() PaginationParams {
	if p.Limit < 0 {
		p.Limit = 0
	}
	if p.Page < 1 {
		p.Page = 1
	}
	return p
}

// Validate rejects a normalized page whose skip would not fit in an int64.
func (p PaginationParams) Validate() error {
	if p.Limit > 0 && int64(p.Page-1) > math.MaxInt64/int64(p.Limit) {
		return NewValidationError("page is out of range")
	}
	return nil
}

// GetSkip is the number of records to skip. Call Validate first.
func (p PaginationParams) GetSkip() int64 {
	if p.Limit == 0 {
		return 0
	}
	return int64(p.Page-1) * int64(p.Limit)
}
