package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/GriffinCanCode/econcalc/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/econcalc/internal/shared/types"
	"github.com/GriffinCanCode/econcalc/internal/shared/utils"
)

// Error codes of results the registry itself produces
const (
	CodeInvalidTool    = "InvalidTool"
	CodeUnknownService = "UnknownService"
	CodeInvalidParams  = "InvalidParams"
)

// Registry manages service discovery and execution
type Registry struct {
	services sync.Map
	metrics  *monitoring.Metrics
}

// Provider interface for service implementations
type Provider interface {
	Definition() types.Service
	Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)
}

// NewRegistry creates a new service registry
func NewRegistry() *Registry {
	return &Registry{}
}

// WithMetrics records every Execute call
func (r *Registry) WithMetrics(metrics *monitoring.Metrics) *Registry {
	r.metrics = metrics
	return r
}

// Register adds a service provider
func (r *Registry) Register(provider Provider) error {
	def := provider.Definition()
	if def.ID == "" {
		return fmt.Errorf("service ID cannot be empty")
	}
	if _, loaded := r.services.LoadOrStore(def.ID, provider); loaded {
		return fmt.Errorf("service already registered: %s", def.ID)
	}
	return nil
}

// Unregister removes a service provider
func (r *Registry) Unregister(serviceID string) {
	r.services.Delete(serviceID)
}

// Get retrieves a service by ID
func (r *Registry) Get(serviceID string) (Provider, bool) {
	val, ok := r.services.Load(serviceID)
	if !ok {
		return nil, false
	}
	return val.(Provider), true
}

// List returns registered services ordered by ID
func (r *Registry) List(category *types.Category) []types.Service {
	var services []types.Service
	r.services.Range(func(_, value interface{}) bool {
		def := value.(Provider).Definition()
		if category == nil || def.Category == *category {
			services = append(services, def)
		}
		return true
	})
	sort.Slice(services, func(i, j int) bool {
		return services[i].ID < services[j].ID
	})
	return services
}

// Discover finds relevant services for a given intent
func (r *Registry) Discover(intent string, limit int) []types.Service {
	type scoredService struct {
		service types.Service
		score   float64
	}

	intentLower := strings.ToLower(intent)
	var results []scoredService

	r.services.Range(func(_, value interface{}) bool {
		def := value.(Provider).Definition()
		if score := r.calculateRelevance(intentLower, def); score > 0 {
			results = append(results, scoredService{service: def, score: score})
		}
		return true
	})

	sort.Slice(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score > results[j].score
		}
		return results[i].service.ID < results[j].service.ID
	})

	if limit <= 0 || limit > len(results) {
		limit = len(results)
	}
	output := make([]types.Service, 0, limit)
	for i := 0; i < limit; i++ {
		output = append(output, results[i].service)
	}
	return output
}

// Execute runs a service tool. Routing failures come back both as a failed
// result and as an error; calculation failures are only a failed result.
func (r *Registry) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	if err := utils.ValidateToolID(toolID); err != nil {
		return failure(CodeInvalidTool, err.Error()), err
	}
	if err := utils.ValidateParams(params); err != nil {
		return failure(CodeInvalidParams, err.Error()), err
	}

	serviceID, _, ok := strings.Cut(toolID, ".")
	if !ok || serviceID == "" {
		return failure(CodeInvalidTool, "invalid tool ID format"), fmt.Errorf("invalid tool ID format: %s", toolID)
	}

	provider, found := r.Get(serviceID)
	if !found {
		msg := fmt.Sprintf("service not found: %s", serviceID)
		return failure(CodeUnknownService, msg), fmt.Errorf("%s", msg)
	}

	timer := monitoring.NewTimer(r.metrics, serviceID, toolID)
	result, err := provider.Execute(ctx, toolID, params, appCtx)
	switch {
	case err != nil:
		timer.Fail("InternalError")
	case result != nil && !result.Success:
		timer.Fail(result.Code)
	default:
		timer.Stop(monitoring.StatusSuccess)
	}
	return result, err
}

// Stats returns registry statistics
func (r *Registry) Stats() map[string]interface{} {
	var total, totalTools int
	categories := make(map[string]int)

	r.services.Range(func(_, value interface{}) bool {
		def := value.(Provider).Definition()
		total++
		totalTools += len(def.Tools)
		categories[string(def.Category)]++
		return true
	})

	return map[string]interface{}{
		"total_services": total,
		"total_tools":    totalTools,
		"categories":     categories,
	}
}

func (r *Registry) calculateRelevance(intent string, service types.Service) float64 {
	score := 0.0

	if strings.Contains(intent, service.ID) || strings.Contains(intent, strings.ToLower(service.Name)) {
		score += 10.0
	}

	for _, word := range strings.Fields(strings.ToLower(service.Description)) {
		if len(word) > 3 && strings.Contains(intent, word) {
			score += 5.0
		}
	}

	for _, cap := range service.Capabilities {
		capClean := strings.ReplaceAll(strings.ToLower(cap), "_", " ")
		if strings.Contains(intent, capClean) {
			score += 3.0
		}
	}

	if strings.Contains(intent, string(service.Category)) {
		score += 2.0
	}

	return score
}

func failure(code, msg string) *types.Result {
	return &types.Result{Success: false, Error: &msg, Code: code}
}
