package export

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const timeLayout = "2006-01-02 15:04"

// cellValue convierte un valor proyectado en algo que una hoja de cálculo
// entienda como número, fecha o texto.
func cellValue(v any) any {
	switch x := v.(type) {
	case nil:
		return ""
	case decimal.Decimal:
		return x.InexactFloat64()
	case uuid.UUID:
		return x.String()
	case time.Time:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return x
	}
}

// text es la representación impresa de un valor proyectado.
func text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case time.Time:
		return x.Format(timeLayout)
	case float64:
		return decimal.NewFromFloat(x).String()
	default:
		return fmt.Sprint(x)
	}
}
