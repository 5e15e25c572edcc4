package query

import (
	"time"

	"github.com/shopspring/decimal"
)

type testCountry struct {
	Name string
}

type testPerson struct {
	ID      int
	First   string
	Last    string
	Born    time.Time
	Country *testCountry
	Balance decimal.Decimal
}

type testPersonView struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Age     int    `json:"age"`
	Secret  string `json:"-"`
	note    string
}

func born(year int) time.Time {
	return time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
}

func testPeopleTable() *FieldMappingTable {
	t, err := NewFieldMappingTable(map[string]FieldMappingEntry{
		"id":      {DestinationPaths: []string{"ID"}},
		"name":    {DestinationPaths: []string{"Last", "First"}},
		"country": {DestinationPaths: []string{"Country.Name"}},
		"age":     {DestinationPaths: []string{"Born"}, Reverse: true},
		"balance": {DestinationPaths: []string{"Balance"}},
	})
	if err != nil {
		panic(err)
	}
	return t
}

func testPeople() []testPerson {
	es := &testCountry{Name: "Spain"}
	fr := &testCountry{Name: "France"}
	return []testPerson{
		{ID: 1, First: "Lucia", Last: "Garcia", Born: born(1990), Country: es, Balance: decimal.RequireFromString("10.50")},
		{ID: 2, First: "Ana", Last: "Garcia", Born: born(1985), Country: fr, Balance: decimal.RequireFromString("2")},
		{ID: 3, First: "Pierre", Last: "Blanc", Born: born(2000), Country: fr, Balance: decimal.RequireFromString("10.5")},
		{ID: 4, First: "Marta", Last: "Zamora", Born: born(1970), Country: nil, Balance: decimal.RequireFromString("-1")},
	}
}

func ids(people []testPerson) []int {
	out := make([]int, len(people))
	for i, p := range people {
		out[i] = p.ID
	}
	return out
}
