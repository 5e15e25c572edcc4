package http

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	catalogDomain "github.com/davicafu/coincatalog/internal/catalog/domain"
)

type collectableRequest struct {
	CountryID uuid.UUID       `json:"countryId" binding:"required"`
	Type      string          `json:"type" binding:"required"`
	FaceValue decimal.Decimal `json:"faceValue"`
	Currency  string          `json:"currency"`
	Year      int             `json:"year" binding:"required,min=1"`
	Subject   string          `json:"subject"`
	Note      string          `json:"note"`
}

func (r collectableRequest) toDomain() catalogDomain.Collectable {
	return catalogDomain.Collectable{
		CountryID: r.CountryID,
		Type:      r.Type,
		FaceValue: r.FaceValue,
		Currency:  r.Currency,
		Year:      r.Year,
		Subject:   r.Subject,
		Note:      r.Note,
	}
}

type coinRequest struct {
	collectableRequest
	Metal       string  `json:"metal"`
	DiameterMM  float64 `json:"diameter" binding:"min=0"`
	WeightGrams float64 `json:"weight" binding:"min=0"`
}

func (r coinRequest) toDomain() *catalogDomain.Coin {
	return &catalogDomain.Coin{
		Collectable: r.collectableRequest.toDomain(),
		Metal:       r.Metal,
		DiameterMM:  r.DiameterMM,
		WeightGrams: r.WeightGrams,
	}
}

type banknoteRequest struct {
	collectableRequest
	Color  string `json:"color"`
	Series string `json:"series"`
}

func (r banknoteRequest) toDomain() *catalogDomain.Banknote {
	return &catalogDomain.Banknote{
		Collectable: r.collectableRequest.toDomain(),
		Color:       r.Color,
		Series:      r.Series,
	}
}
