// Package api - HTTP handlers for configuration events
// Handlers decode, delegate to the engine, and encode. They never compute costs.
package api

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"iops-calculator/core/engine"
	"iops-calculator/core/output"
	"iops-calculator/core/types"
	"iops-calculator/internal/errors"
	"iops-calculator/internal/metrics"
)

// Event names a configuration event
type Event string

const (
	EventTier    Event = "tier"
	EventStorage Event = "storage"
	EventDisk    Event = "disk"
	EventIops    Event = "iops"
)

// Handler applies configuration events through the engine
type Handler struct {
	engine  *engine.Engine
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewHandler creates a new handler
func NewHandler(eng *engine.Engine, m *metrics.Metrics, logger *zap.Logger) *Handler {
	return &Handler{
		engine:  eng,
		metrics: m,
		logger:  logger,
	}
}

// apply runs one event against the request's configuration.
// On error the returned configuration is the request's, unchanged.
func (h *Handler) apply(ctx context.Context, event Event, req *ConfigurationRequest) (*ConfigurationResponse, error) {
	session := h.engine.ResumeSession(req.Configuration, req.Warnings)

	var (
		warning *types.Warning
		err     error
	)
	switch event {
	case EventTier:
		err = session.SelectTier(string(req.Value))
	case EventStorage:
		err = session.SelectStorageType(types.StorageKey(req.Value))
	case EventDisk:
		warning, err = session.SetDiskSize(string(req.Value))
	case EventIops:
		warning, err = session.SetIops(string(req.Value))
	default:
		err = errors.Newf(errors.TypeInput, "unknown event %q", event)
	}

	h.metrics.RecordEvent(string(event), outcome(warning, err))
	if err != nil {
		h.logger.Debug("event rejected",
			zap.String("request_id", requestIDFrom(ctx)),
			zap.String("event", string(event)),
			zap.String("value", string(req.Value)),
			zap.Error(err))
		return nil, err
	}

	state := session.Snapshot()
	h.metrics.RecordPricing()

	floor, ceiling := h.engine.IopsRange(state.Configuration.DiskSizeGB, state.Configuration.StorageType)
	return &ConfigurationResponse{
		RequestID:     requestIDFrom(ctx),
		Configuration: state.Configuration,
		Warning:       warning,
		Warnings:      state.Warnings,
		Pricing:       state.Pricing,
		IopsBounds:    output.IopsBounds{Min: floor, Max: ceiling},
	}, nil
}

// price computes the monthly cost of a configuration as given
func (h *Handler) price(ctx context.Context, req *PricingRequest) *PricingResponse {
	h.metrics.RecordPricing()
	return &PricingResponse{
		RequestID:     requestIDFrom(ctx),
		Configuration: req.Configuration,
		Pricing:       h.engine.GetPricing(req.Configuration),
	}
}

func outcome(warning *types.Warning, err error) string {
	switch {
	case err != nil:
		return metrics.OutcomeRejected
	case warning != nil:
		return metrics.OutcomeWarning
	default:
		return metrics.OutcomeOK
	}
}

// errorStatus maps engine error types to HTTP status codes
func errorStatus(err error) int {
	switch errors.TypeOf(err) {
	case errors.TypeUnknownCatalogKey:
		return http.StatusUnprocessableEntity
	case errors.TypeInvalidInput, errors.TypeInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorCode is the stable code reported in error bodies
func errorCode(err error) string {
	return string(errors.TypeOf(err))
}
