package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	catalogDomain "github.com/davicafu/coincatalog/internal/catalog/domain"
	sharedDomain "github.com/davicafu/coincatalog/internal/shared/domain"
	sharedQuery "github.com/davicafu/coincatalog/internal/shared/infra/platform/query"
)

// ExportData es un listado completo (sin paginar) listo para escribir.
type ExportData struct {
	Title   string
	Columns []string
	Rows    []sharedQuery.Shaped
}

// collectables agrupa la lógica compartida por monedas y billetes.
type collectables[E any, V any] struct {
	resource  string
	store     *store[E]
	countries catalogDomain.CountryRepository
	pipeline  *ListPipeline[E, V]
	spec      func(catalogDomain.CollectableParameters) sharedDomain.Specification[*E]
	analytics *QueryRecorder
	invalid   error
}

// resolveCountry rellena el snapshot del país a partir de CountryID.
func (c *collectables[E, V]) resolveCountry(ctx context.Context, base *catalogDomain.Collectable) error {
	country, err := c.countries.GetByID(ctx, base.CountryID)
	if err != nil {
		if errors.Is(err, catalogDomain.ErrCountryNotFound) {
			return fmt.Errorf("%w: %w", c.invalid, err)
		}
		return err
	}
	base.Country = *country
	return nil
}

func (c *collectables[E, V]) getShaped(ctx context.Context, id uuid.UUID, fields string) (sharedQuery.Shaped, error) {
	item, err := c.store.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.pipeline.ShapeOne(item, fields)
}

func (c *collectables[E, V]) list(ctx context.Context, params catalogDomain.CollectableParameters) (sharedQuery.PageResult[sharedQuery.Shaped], error) {
	items, err := c.store.list(ctx)
	if err != nil {
		return sharedQuery.PageResult[sharedQuery.Shaped]{}, err
	}

	page, err := c.pipeline.Run(items, c.spec(params), params.ResourceParameters)
	if err != nil {
		return page, err
	}

	c.analytics.Record(c.resource, params.ResourceParameters, page.TotalCount)
	return page, nil
}

func (c *collectables[E, V]) export(ctx context.Context, params catalogDomain.CollectableParameters) (*ExportData, error) {
	columns, err := c.pipeline.Columns(params.Fields)
	if err != nil {
		return nil, err
	}
	items, err := c.store.list(ctx)
	if err != nil {
		return nil, err
	}
	ordered, err := c.pipeline.Ordered(items, c.spec(params), params.OrderBy)
	if err != nil {
		return nil, err
	}
	rows, err := c.pipeline.ShapeAll(ordered, params.Fields)
	if err != nil {
		return nil, err
	}
	return &ExportData{Title: c.resource, Columns: columns, Rows: rows}, nil
}
