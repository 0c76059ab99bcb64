package finance

import (
	"fmt"

	"github.com/GriffinCanCode/econcalc/internal/domain/service"
)

// RegisterAll registers every calculation provider
func RegisterAll(registry *service.Registry) error {
	providers := []service.Provider{
		NewValues(),
		NewRates(),
		NewFactors(),
		NewGradients(),
	}
	for _, p := range providers {
		if err := registry.Register(p); err != nil {
			return fmt.Errorf("register %s: %w", p.Definition().ID, err)
		}
	}
	return nil
}
