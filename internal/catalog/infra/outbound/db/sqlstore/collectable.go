package sqlstore

import (
	catalogDomain "github.com/davicafu/coincatalog/internal/catalog/domain"
)

// Columnas comunes de coins y banknotes (alias "t") más el país (alias "k").
const (
	collectableColumns = `t.id, t.country_id, t.type, t.face_value, t.currency, t.year, t.subject, t.note, t.created_at`
	joinedCountry      = `k.id, k.name, k.code, k.continent, k.created_at`
)

func selectCollectable(table, extra string) string {
	return `SELECT ` + collectableColumns + `, ` + extra + `, ` + joinedCountry +
		` FROM ` + table + ` t JOIN countries k ON k.id = t.country_id`
}

// scanCollectable lee una fila de selectCollectable; extra son los destinos
// de las columnas propias de la entidad.
func scanCollectable(row interface{ Scan(...any) error }, c *catalogDomain.Collectable, extra ...any) error {
	dest := []any{&c.ID, &c.CountryID, &c.Type, &c.FaceValue, &c.Currency, &c.Year, &c.Subject, &c.Note, &c.CreatedAt}
	dest = append(dest, extra...)
	dest = append(dest, &c.Country.ID, &c.Country.Name, &c.Country.Code, &c.Country.Continent, &c.Country.CreatedAt)
	return row.Scan(dest...)
}

func collectableArgs(c *catalogDomain.Collectable) []any {
	return []any{c.ID, c.CountryID, c.Type, c.FaceValue, c.Currency, c.Year, c.Subject, c.Note, c.CreatedAt}
}

