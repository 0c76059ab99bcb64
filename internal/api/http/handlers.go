package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/econcalc/internal/domain/service"
	"github.com/GriffinCanCode/econcalc/internal/finance/calc"
	"github.com/GriffinCanCode/econcalc/internal/infrastructure/logging"
	"github.com/GriffinCanCode/econcalc/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/econcalc/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/econcalc/internal/shared/id"
	"github.com/GriffinCanCode/econcalc/internal/shared/types"
)

// Version is reported by the root endpoint
const Version = "1.0.0"

const defaultDiscoverLimit = 5

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *service.Registry
	metrics  *monitoring.Metrics
	logger   *logging.Logger
}

// NewHandlers creates a new handler set
func NewHandlers(registry *service.Registry, metrics *monitoring.Metrics, logger *logging.Logger) *Handlers {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Handlers{
		registry: registry,
		metrics:  metrics,
		logger:   logger.Named("http"),
	}
}

// Root reports service identity
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "econcalc",
		"version": Version,
	})
}

// Health reports registry and request statistics
func (h *Handlers) Health(c *gin.Context) {
	body := gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
	}
	if h.metrics != nil {
		body["metrics"] = h.metrics.Snapshot()
	}
	c.JSON(http.StatusOK, body)
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	var category *types.Category
	if s := c.Query("category"); s != "" {
		cat := types.Category(s)
		category = &cat
	}

	c.JSON(http.StatusOK, gin.H{
		"services": h.registry.List(category),
		"stats":    h.registry.Stats(),
	})
}

// DiscoverServices ranks services against a free-text intent
func (h *Handlers) DiscoverServices(c *gin.Context) {
	intent := c.Query("intent")
	if intent == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "intent is required"})
		return
	}

	limit := defaultDiscoverLimit
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	c.JSON(http.StatusOK, gin.H{
		"intent":   intent,
		"services": h.registry.Discover(intent, limit),
	})
}

// ExecuteService runs any registry tool from a JSON body
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Params == nil {
		req.Params = map[string]interface{}{}
	}

	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, h.callContext(c, "execute"))
	if err != nil {
		status := http.StatusBadRequest
		if result != nil && result.Code == service.CodeUnknownService {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	if !result.Success {
		h.logFailure(req.ToolID, result)
		c.JSON(StatusFor(result.Code), result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Calculate serves a calculation tool from query parameters
func (h *Handlers) Calculate(toolID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := QueryParams(c)

		result, err := h.registry.Execute(c.Request.Context(), toolID, params, h.callContext(c, "query"))
		if err != nil {
			if result != nil && result.Code == service.CodeInvalidParams {
				c.JSON(http.StatusBadRequest, ErrorBody(result))
				return
			}
			h.logger.Error("Calculation routing failed", zap.String("tool", toolID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		if !result.Success {
			h.logFailure(toolID, result)
			c.JSON(StatusFor(result.Code), ErrorBody(result))
			return
		}
		c.JSON(http.StatusOK, result.Data)
	}
}

// QueryParams flattens the query string, keeping the first value per key
func QueryParams(c *gin.Context) map[string]interface{} {
	query := c.Request.URL.Query()
	params := make(map[string]interface{}, len(query))
	for key, values := range query {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	return params
}

// StatusFor maps an error kind to an HTTP status
func StatusFor(code string) int {
	switch calc.Kind(code) {
	case calc.KindMissingParameters, calc.KindInvalidKind, calc.KindValidation:
		return http.StatusBadRequest
	case calc.KindDomain:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// ErrorBody renders a failed result
func ErrorBody(result *types.Result) gin.H {
	msg := ""
	if result.Error != nil {
		msg = *result.Error
	}
	return gin.H{"error": msg, "kind": result.Code}
}

func (h *Handlers) callContext(c *gin.Context, source string) *types.Context {
	reqID := id.NewRequestID().String()
	appCtx := &types.Context{RequestID: &reqID, Source: source}
	if traceID := tracing.GetTraceID(c.Request.Context()); traceID != "" {
		s := string(traceID)
		appCtx.TraceID = &s
	}
	return appCtx
}

func (h *Handlers) logFailure(toolID string, result *types.Result) {
	msg := ""
	if result.Error != nil {
		msg = *result.Error
	}
	h.logger.Debug("Calculation failed",
		zap.String("tool", toolID),
		zap.String("kind", result.Code),
		zap.String("error", msg),
	)
}
