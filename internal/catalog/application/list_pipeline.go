package application

import (
	"fmt"

	catalogDomain "github.com/davicafu/coincatalog/internal/catalog/domain"
	sharedDomain "github.com/davicafu/coincatalog/internal/shared/domain"
	sharedQuery "github.com/davicafu/coincatalog/internal/shared/infra/platform/query"
)

// ListPipeline encadena filtro, orden, paginación, vista y proyección para un
// par entidad/vista. Se construye al arrancar y es seguro para uso concurrente.
type ListPipeline[E, V any] struct {
	sorter    *sharedQuery.Sorter[*E]
	projector *sharedQuery.Projector[V]
	toView    func(*E) V
}

// NewListPipeline busca la tabla de campos E -> V y compila sorter y proyector.
func NewListPipeline[E, V any](registry *sharedQuery.Registry, toView func(*E) V) (*ListPipeline[E, V], error) {
	return NewListPipelineWithAccessors(registry, toView, nil)
}

// NewListPipelineWithAccessors ordena con accessors escritos a mano; con nil
// los compila por reflexión.
func NewListPipelineWithAccessors[E, V any](
	registry *sharedQuery.Registry,
	toView func(*E) V,
	accessors sharedQuery.Accessors[*E],
) (*ListPipeline[E, V], error) {
	table, err := sharedQuery.LookupFor[E, V](registry)
	if err != nil {
		return nil, err
	}
	var sorter *sharedQuery.Sorter[*E]
	if accessors != nil {
		sorter, err = sharedQuery.NewSorterWithAccessors(table, accessors)
	} else {
		sorter, err = sharedQuery.NewSorter[*E](table)
	}
	if err != nil {
		return nil, fmt.Errorf("sorter for %s: %w", sharedQuery.KeyFor[E, V](), err)
	}
	projector, err := sharedQuery.NewProjector[V]()
	if err != nil {
		return nil, err
	}
	return &ListPipeline[E, V]{sorter: sorter, projector: projector, toView: toView}, nil
}

// Run devuelve la página pedida ya proyectada. Los campos se validan antes de
// ordenar, y TotalCount cuenta los elementos filtrados.
func (p *ListPipeline[E, V]) Run(
	items []*E,
	spec sharedDomain.Specification[*E],
	params catalogDomain.ResourceParameters,
) (sharedQuery.PageResult[sharedQuery.Shaped], error) {
	if err := p.projector.Validate(params.Fields); err != nil {
		return sharedQuery.PageResult[sharedQuery.Shaped]{}, err
	}

	sorted, err := p.Ordered(items, spec, params.OrderBy)
	if err != nil {
		return sharedQuery.PageResult[sharedQuery.Shaped]{}, err
	}

	views := sharedQuery.MapPage(sharedQuery.Paginate(sorted, params.PageRequest()), p.toView)
	shaped, err := p.projector.ShapeAll(views.Items, params.Fields)
	if err != nil {
		return sharedQuery.PageResult[sharedQuery.Shaped]{}, err
	}
	return sharedQuery.WithItems(views, shaped), nil
}

// Ordered filtra y ordena sin paginar.
func (p *ListPipeline[E, V]) Ordered(items []*E, spec sharedDomain.Specification[*E], orderBy string) ([]*E, error) {
	return p.sorter.Sort(sharedDomain.Filter(items, spec), orderBy)
}

func (p *ListPipeline[E, V]) ShapeOne(item *E, fields string) (sharedQuery.Shaped, error) {
	return p.projector.Shape(p.toView(item), fields)
}

func (p *ListPipeline[E, V]) ShapeAll(items []*E, fields string) ([]sharedQuery.Shaped, error) {
	views := make([]V, len(items))
	for i, it := range items {
		views[i] = p.toView(it)
	}
	return p.projector.ShapeAll(views, fields)
}

// Columns devuelve los nombres de campo que producirá la proyección.
func (p *ListPipeline[E, V]) Columns(fields string) ([]string, error) {
	return p.projector.Columns(fields)
}

func (p *ListPipeline[E, V]) ValidOrderBy(orderBy string) bool {
	return p.sorter.Table().ValidFields(orderBy)
}
