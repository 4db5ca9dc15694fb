package dto

import (
	"fmt"
	"slices"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams controls ordering and paging of a list query. Zero Page and Limit return every row.
type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty,min=1"`
	Limit   int    `json:"limit"    validate:"omitempty,min=1"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// OrderBy renders the ORDER BY clause. SortBy must be one of sortable, otherwise no ordering is applied.
func (p QueryParams) OrderBy(sortable []string) string {
	if p.SortBy == "" || !slices.Contains(sortable, p.SortBy) {
		return ""
	}

	dir := strings.ToUpper(p.SortDir)
	if dir != SortDirDesc {
		dir = SortDirAsc
	}

	return fmt.Sprintf("ORDER BY %s %s", p.SortBy, dir)
}

// LimitOffset renders the paging clause and adds its parameters to args.
func (p QueryParams) LimitOffset(args map[string]any) string {
	if p.Limit <= 0 {
		return ""
	}

	args["limit"] = p.Limit

	if p.Page <= 1 {
		return "LIMIT :limit"
	}

	args["offset"] = (p.Page - 1) * p.Limit

	return "LIMIT :limit OFFSET :offset"
}
