package filesystem

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	catalogDomain "github.com/davicafu/coincatalog/internal/catalog/domain"
)

// JSONSeedSource es un adaptador outbound que lee el catálogo inicial de un fichero JSON.
type JSONSeedSource struct {
	filePath string
	mu       sync.Mutex
}

func NewJSONSeedSource(filePath string) *JSONSeedSource {
	return &JSONSeedSource{
		filePath: filePath,
	}
}

// Load lee el fichero completo. Si no existe o está vacío devuelve un seed vacío.
func (s *JSONSeedSource) Load(ctx context.Context) (*catalogDomain.Seed, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &catalogDomain.Seed{}, nil
		}
		return nil, err
	}

	if len(data) == 0 {
		return &catalogDomain.Seed{}, nil
	}

	var seed catalogDomain.Seed
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("invalid seed file %s: %w", s.filePath, err)
	}

	return &seed, nil
}

var _ catalogDomain.SeedSource = (*JSONSeedSource)(nil)
