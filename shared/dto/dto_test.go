package dto_test

import (
	"roomapi/shared/constant"
	"roomapi/shared/dto"
	"roomapi/shared/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{CreatedAt: createdAt, UpdatedAt: updatedAt})

	assert.Equal(t, createdAt.Format(constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, updatedAt.Format(constant.DateFormat), metadata.UpdatedAt)
}

func TestFilter_Where(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equal with table",
			filter:    dto.Filter{Field: "id", Value: int64(4), Operator: dto.FilterOperatorEq, Table: "rooms"},
			wantWhere: "rooms.id = :id",
			wantArgs:  map[string]any{"id": int64(4)},
		},
		{
			name:      "not equal",
			filter:    dto.Filter{Field: "is_booked", Value: true, Operator: dto.FilterOperatorNe},
			wantWhere: "is_booked <> :is_booked",
			wantArgs:  map[string]any{"is_booked": true},
		},
		{
			name:      "like",
			filter:    dto.Filter{Field: "name", Value: "suite", Operator: dto.FilterOperatorLike},
			wantWhere: "LOWER(name) LIKE LOWER(:name)",
			wantArgs:  map[string]any{"name": "%suite%"},
		},
		{
			name:      "in with custom arg name",
			filter:    dto.Filter{ArgName: "ids", Field: "id", Value: []int64{1, 2}, Operator: dto.FilterOperatorIn},
			wantWhere: "id IN (:ids_0, :ids_1)",
			wantArgs:  map[string]any{"ids_0": int64(1), "ids_1": int64(2)},
		},
		{
			name:      "in with scalar is ignored",
			filter:    dto.Filter{Field: "id", Value: 1, Operator: dto.FilterOperatorIn},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
		{
			name:      "in with empty slice is ignored",
			filter:    dto.Filter{Field: "id", Value: []int64{}, Operator: dto.FilterOperatorIn},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
		{
			name:      "unknown operator",
			filter:    dto.Filter{Field: "id", Value: 1, Operator: "between"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.Where()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_Where(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorOr,
		Filters: []dto.Condition{
			dto.Filter{Field: "id", Value: int64(1), Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "name", Value: "x", Operator: "unknown"},
			dto.FilterGroup{
				Filters: []dto.Condition{
					dto.Filter{ArgName: "booked", Field: "is_booked", Value: true, Operator: dto.FilterOperatorEq},
				},
			},
		},
	}

	where, args := group.Where()

	assert.Equal(t, "(id = :id OR (is_booked = :booked))", where)
	assert.Equal(t, map[string]any{"id": int64(1), "booked": true}, args)

	empty := dto.FilterGroup{}
	where, args = empty.Where()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestQueryParams_OrderBy(t *testing.T) {
	sortable := []string{"id", "rooms.id", "name"}

	assert.Equal(t, "ORDER BY id ASC", dto.QueryParams{SortBy: "id", SortDir: dto.SortDirAsc}.OrderBy(sortable))
	assert.Equal(t, "ORDER BY rooms.id DESC", dto.QueryParams{SortBy: "rooms.id", SortDir: "desc"}.OrderBy(sortable))
	assert.Equal(t, "ORDER BY name ASC", dto.QueryParams{SortBy: "name"}.OrderBy(sortable))
	assert.Empty(t, dto.QueryParams{SortBy: "id; DROP TABLE rooms"}.OrderBy(sortable))
	assert.Empty(t, dto.QueryParams{}.OrderBy(sortable))
}

func TestQueryParams_LimitOffset(t *testing.T) {
	args := map[string]any{}
	assert.Empty(t, dto.QueryParams{Page: 3}.LimitOffset(args))
	assert.Empty(t, args)

	args = map[string]any{}
	assert.Equal(t, "LIMIT :limit", dto.QueryParams{Limit: 5}.LimitOffset(args))
	assert.Equal(t, map[string]any{"limit": 5}, args)

	args = map[string]any{}
	assert.Equal(t, "LIMIT :limit OFFSET :offset", dto.QueryParams{Page: 3, Limit: 5}.LimitOffset(args))
	assert.Equal(t, map[string]any{"limit": 5, "offset": 10}, args)
}
