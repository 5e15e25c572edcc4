package http

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	sharedQuery "github.com/davicafu/coincatalog/internal/shared/infra/platform/query"
)

const paginationHeader = "X-Pagination"

// paginationMetadata viaja en la cabecera X-Pagination. Los enlaces son nil
// cuando no hay página anterior o siguiente.
type paginationMetadata struct {
	TotalCount       int     `json:"totalCount"`
	PageSize         int     `json:"pageSize"`
	CurrentPage      int     `json:"currentPage"`
	TotalPages       int     `json:"totalPages"`
	PreviousPageLink *string `json:"previousPageLink"`
	NextPageLink     *string `json:"nextPageLink"`
}

func newPaginationMetadata[T any](c *gin.Context, page sharedQuery.PageResult[T]) paginationMetadata {
	meta := paginationMetadata{
		TotalCount:  page.TotalCount,
		PageSize:    page.PageSize,
		CurrentPage: page.Page,
		TotalPages:  page.TotalPages,
	}
	if page.HasPrevious {
		link := pageLink(c, page.Page-1, page.PageSize)
		meta.PreviousPageLink = &link
	}
	if page.HasNext {
		link := pageLink(c, page.Page+1, page.PageSize)
		meta.NextPageLink = &link
	}
	return meta
}

// pageLink reconstruye la URL actual cambiando solo page y pageSize.
func pageLink(c *gin.Context, page, pageSize int) string {
	u := url.URL{
		Scheme: "http",
		Host:   c.Request.Host,
		Path:   c.Request.URL.Path,
	}
	if c.Request.TLS != nil {
		u.Scheme = "https"
	}
	q := c.Request.URL.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))
	u.RawQuery = q.Encode()
	return u.String()
}

func writePage[T any](c *gin.Context, page sharedQuery.PageResult[T]) {
	meta, err := json.Marshal(newPaginationMetadata(c, page))
	if err == nil {
		c.Header(paginationHeader, string(meta))
	}
	c.JSON(http.StatusOK, page.Items)
}
