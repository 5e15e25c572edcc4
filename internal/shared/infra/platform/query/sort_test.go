package query

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderBy(t *testing.T) {
	tests := []struct {
		orderBy string
		want    []SortClause
	}{
		{"", nil},
		{"name", []SortClause{{Field: "name"}}},
		{" name desc , age", []SortClause{{Field: "name", Descending: true}, {Field: "age"}}},
		{"name DESC", []SortClause{{Field: "name"}}},
		{"name,, ,age desc", []SortClause{{Field: "name"}, {Field: "age", Descending: true}}},
		{"name asc", []SortClause{{Field: "name"}}},
	}

	for _, tt := range tests {
		t.Run(tt.orderBy, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOrderBy(tt.orderBy))
		})
	}
}

func TestSorter_Sort(t *testing.T) {
	sorter, err := NewSorter[testPerson](testPeopleTable())
	require.NoError(t, err)

	tests := []struct {
		name    string
		orderBy string
		want    []int
	}{
		{"campo compuesto ascendente", "name", []int{3, 2, 1, 4}},
		{"campo compuesto descendente", "name desc", []int{4, 1, 2, 3}},
		{"reverse invierte ascendente", "age", []int{3, 1, 2, 4}},
		{"reverse invierte descendente", "age desc", []int{4, 2, 1, 3}},
		{"nil primero y estable", "country", []int{4, 2, 3, 1}},
		{"varias cláusulas", "country desc, name", []int{1, 3, 2, 4}},
		{"decimal con empate estable", "balance", []int{4, 2, 1, 3}},
		{"sufijo en mayúsculas es ascendente", "Name DESC", []int{3, 2, 1, 4}},
		{"cláusulas vacías ignoradas", "id desc,, ", []int{4, 3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			got, err := sorter.Sort(testPeople(), tt.orderBy)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSorter_BlankOrderByReturnsSameSequence(t *testing.T) {
	sorter, err := NewSorter[testPerson](testPeopleTable())
	require.NoError(t, err)
	people := testPeople()

	got, err := sorter.Sort(people, "   ")

	require.NoError(t, err)
	require.Len(t, got, len(people))
	assert.Same(t, &people[0], &got[0])
}

func TestSorter_DoesNotMutateInput(t *testing.T) {
	sorter, err := NewSorter[testPerson](testPeopleTable())
	require.NoError(t, err)
	people := testPeople()

	_, err = sorter.Sort(people, "name desc")

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, ids(people))
}

func TestSorter_UnknownField(t *testing.T) {
	sorter, err := NewSorter[testPerson](testPeopleTable())
	require.NoError(t, err)

	got, err := sorter.Sort(testPeople(), "name, surname desc")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrUnknownField)
	var uf *UnknownFieldError
	require.ErrorAs(t, err, &uf)
	assert.Equal(t, "surname", uf.Field)
}

func TestSorter_PointerElements(t *testing.T) {
	sorter, err := NewSorter[*testPerson](testPeopleTable())
	require.NoError(t, err)

	people := testPeople()
	ptrs := []*testPerson{&people[0], &people[1], &people[2], &people[3]}

	got, err := sorter.Sort(ptrs, "age desc")

	require.NoError(t, err)
	assert.Equal(t, 4, got[0].ID)
	assert.Equal(t, 3, got[3].ID)
}

func TestNewSorter_InvalidPath(t *testing.T) {
	table, err := NewFieldMappingTable(map[string]FieldMappingEntry{
		"x": {DestinationPaths: []string{"Country.Population"}},
	})
	require.NoError(t, err)

	_, err = NewSorter[testPerson](table)
	assert.Error(t, err)
}

func TestNewSorterWithAccessors(t *testing.T) {
	table, err := NewFieldMappingTable(map[string]FieldMappingEntry{
		"first": {DestinationPaths: []string{"First"}},
	})
	require.NoError(t, err)

	_, err = NewSorterWithAccessors[testPerson](table, Accessors[testPerson]{})
	assert.Error(t, err)

	sorter, err := NewSorterWithAccessors[testPerson](table, Accessors[testPerson]{
		"First": func(p testPerson) any { return p.First },
	})
	require.NoError(t, err)
	got, err := sorter.Sort(testPeople(), "first")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 4, 3}, ids(got))
}

func TestSort_OneShot(t *testing.T) {
	got, err := Sort(testPeople(), "id desc", testPeopleTable())

	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 2, 1}, ids(got))
}

func TestCompareValues(t *testing.T) {
	now := time.Now()
	low := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	high := uuid.MustParse("ffffffff-0000-0000-0000-000000000000")

	tests := []struct {
		name string
		a, b any
		want int
	}{
		{"nil y nil", nil, nil, 0},
		{"nil primero", nil, "a", -1},
		{"nil al final", "a", nil, 1},
		{"cadenas ordinales", "B", "a", -1},
		{"enteros", 10, 9, 1},
		{"enteros de distinto tamaño", int64(3), int32(3), 0},
		{"flotantes", 1.5, 2.5, -1},
		{"entero y flotante", 2, 1.5, 1},
		{"decimales", decimal.RequireFromString("10.50"), decimal.RequireFromString("10.5"), 0},
		{"fechas", now, now.Add(time.Second), -1},
		{"booleanos", true, false, 1},
		{"uuid", low, high, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compareValues(tt.a, tt.b))
		})
	}
}
