package shared

import (
	"kiraya/shared/constant"
	"kiraya/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertStringToBool(t *testing.T) {
	boolTrue := true
	boolFalse := false

	tests := []struct {
		name  string
		value string
		want  *bool
	}{
		{name: "empty string", value: "", want: nil},
		{name: "true", value: "true", want: &boolTrue},
		{name: "false", value: "false", want: &boolFalse},
		{name: "numeric true", value: "1", want: &boolTrue},
		{name: "invalid", value: "maybe", want: nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := ConvertStringToBool(test.value)

			if test.want == nil {
				assert.Nil(t, got)

				return
			}

			assert.NotNil(t, got)
			assert.Equal(t, *test.want, *got)
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "zero total", total: 0, limit: 10, want: 1},
		{name: "zero limit", total: 25, limit: 0, want: 1},
		{name: "exact division", total: 20, limit: 10, want: 2},
		{name: "with remainder", total: 21, limit: 10, want: 3},
		{name: "less than one page", total: 3, limit: 10, want: 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, CalculateTotalPage(test.total, test.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type payload struct {
		Name  string `db:"name"`
		Price int    `db:"price"`
		Notes string `db:"notes"`
	}

	fields := TransformFields(payload{Name: "Avanza", Price: 350000}, "admin")

	assert.Equal(t, "Avanza", fields["name"])
	assert.Equal(t, 350000, fields["price"])
	assert.NotContains(t, fields, "notes")
	assert.Equal(t, "admin", fields[constant.FieldModifiedBy])
	assert.Contains(t, fields, constant.FieldModifiedAt)
}

func TestFilterByID(t *testing.T) {
	filter := FilterByID("booking-1", "id", "bookings")

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(bookings.id = :id)", where)
	assert.Equal(t, "booking-1", args["id"])
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "booking:list:all", BuildCacheKey("booking", "list", "all"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: "DESC"}
	filter := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "city_name", Value: "jakarta", Operator: dto.FilterOperatorLike, Table: "bookings"},
		},
	}

	first := BuildCacheKeyWithQuery("booking", params, filter)
	second := BuildCacheKeyWithQuery("booking", params, filter)

	assert.Equal(t, first, second)

	other := BuildCacheKeyWithQuery("booking", dto.QueryParams{Page: 2, Limit: 10}, filter)
	assert.NotEqual(t, first, other)
}
