package query

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageRequest_ClampsPageSize(t *testing.T) {
	tests := []struct {
		size, max, want int
	}{
		{10, 50, 10},
		{0, 50, 1},
		{-5, 50, 1},
		{51, 50, 50},
		{500, 50, 50},
		{3, 0, 1},
	}

	for _, tt := range tests {
		r := NewPageRequest(1, tt.size, tt.max)
		assert.Equal(t, tt.want, r.PageSize(), "size=%d max=%d", tt.size, tt.max)
	}
}

func TestPageRequest_SetPageSize(t *testing.T) {
	r := NewPageRequest(2, 10, 20)

	r.SetPageSize(100)
	assert.Equal(t, 20, r.PageSize())

	r.SetPageSize(0)
	assert.Equal(t, 1, r.PageSize())
	assert.Equal(t, 2, r.Page())
}

func numbers(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		page, size  int
		items       []int
		totalPages  int
		hasPrevious bool
		hasNext     bool
	}{
		{"primera página", 25, 1, 10, numbers(10), 3, false, true},
		{"página intermedia", 25, 2, 10, []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}, 3, true, true},
		{"última página parcial", 25, 3, 10, []int{21, 22, 23, 24, 25}, 3, true, false},
		{"más allá del final", 25, 4, 10, []int{}, 3, true, false},
		{"secuencia vacía", 0, 1, 10, []int{}, 0, false, false},
		{"página cero", 5, 0, 2, []int{1, 2}, 3, false, true},
		{"página negativa", 5, -3, 2, []int{1, 2}, 3, false, true},
		{"página máxima", 125, math.MaxInt, 10, []int{}, 13, true, false},
		{"página enorme con tamaño máximo", 125, math.MaxInt/2 + 2, 50, []int{}, 3, true, false},
		{"exacto", 20, 2, 10, []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}, 2, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			res := Paginate(numbers(tt.total), NewPageRequest(tt.page, tt.size, 50))

			// Assert
			assert.Equal(t, tt.items, res.Items)
			assert.Equal(t, tt.total, res.TotalCount)
			assert.Equal(t, tt.page, res.Page)
			assert.Equal(t, tt.size, res.PageSize)
			assert.Equal(t, tt.totalPages, res.TotalPages)
			assert.Equal(t, tt.hasPrevious, res.HasPrevious)
			assert.Equal(t, tt.hasNext, res.HasNext)
		})
	}
}

func TestPaginate_ClampedSizeDrivesMetadata(t *testing.T) {
	res := Paginate(numbers(120), NewPageRequest(1, 1000, 50))

	assert.Len(t, res.Items, 50)
	assert.Equal(t, 50, res.PageSize)
	assert.Equal(t, 3, res.TotalPages)
}

func TestPaginate_ClampedSizeAcrossPages(t *testing.T) {
	items := numbers(125)

	second := Paginate(items, NewPageRequest(2, 80, 50))
	third := Paginate(items, NewPageRequest(3, 80, 50))

	assert.Equal(t, 50, second.PageSize)
	assert.Equal(t, items[50:100], second.Items)
	assert.True(t, second.HasPrevious)
	assert.True(t, second.HasNext)
	assert.Equal(t, 3, second.TotalPages)

	assert.Len(t, third.Items, 25)
	assert.Equal(t, items[100:], third.Items)
	assert.False(t, third.HasNext)
	assert.Equal(t, 125, third.TotalCount)
}

func TestPageRequest_OffsetSaturates(t *testing.T) {
	assert.Equal(t, 0, NewPageRequest(1, 10, 50).Offset())
	assert.Equal(t, 0, NewPageRequest(-4, 10, 50).Offset())
	assert.Equal(t, 20, NewPageRequest(3, 10, 50).Offset())
	assert.Equal(t, math.MaxInt, NewPageRequest(math.MaxInt, 10, 50).Offset())
	assert.Equal(t, math.MaxInt, NewPageRequest(math.MaxInt/2+2, 50, 50).Offset())
}

func TestMapPage_PreservesMetadata(t *testing.T) {
	res := Paginate(numbers(7), NewPageRequest(2, 3, 50))

	mapped := MapPage(res, strconv.Itoa)

	assert.Equal(t, []string{"4", "5", "6"}, mapped.Items)
	assert.Equal(t, res.TotalCount, mapped.TotalCount)
	assert.Equal(t, res.TotalPages, mapped.TotalPages)
	assert.Equal(t, res.HasNext, mapped.HasNext)
	assert.Equal(t, res.HasPrevious, mapped.HasPrevious)

	replaced := WithItems(res, []bool{true})
	assert.Equal(t, []bool{true}, replaced.Items)
	assert.Equal(t, 3, replaced.TotalPages)
}
