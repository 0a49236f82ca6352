// Package pipeline turns one model round trip into a validated, typed payload.
package pipeline

import (
	"context"
	"errors"
	"fitlens-backend/domain"
	"fitlens-backend/internal/metrics"
	"fitlens-backend/pkg/gateway"
	"time"

	"go.uber.org/zap"
)

type (
	Pipeline interface {
		// Execute calls the model, normalizes and validates the reply and
		// decodes it into out. A *ModelFailure is returned for model-reported
		// failures, after the payload was decoded into out on a best-effort basis.
		Execute(ctx context.Context, kind Kind, req gateway.Request, out any) error
		// Text calls the model for free-text kinds such as chat.
		Text(ctx context.Context, kind Kind, req gateway.Request) (string, error)
		Provider() string
	}

	pipeline struct {
		gateway gateway.Gateway
		metrics *metrics.Metrics
		logger  *zap.Logger
	}
)

func NewPipeline(gw gateway.Gateway, m *metrics.Metrics, logger *zap.Logger) Pipeline {
	return &pipeline{
		gateway: gw,
		metrics: m,
		logger:  logger,
	}
}

func (p *pipeline) Provider() string { return p.gateway.Name() }

func (p *pipeline) Execute(ctx context.Context, kind Kind, req gateway.Request, out any) error {
	start := time.Now()
	outcome := metrics.OutcomeSuccess
	defer func() {
		p.metrics.ObserveAnalysis(string(kind), p.gateway.Name(), outcome, time.Since(start))
	}()

	log := p.logger.With(zap.String("kind", string(kind)), zap.String("provider", p.gateway.Name()))

	text, err := p.gateway.Complete(ctx, req)
	if err != nil {
		outcome = gatewayOutcome(err)
		log.Error("model gateway call failed", zap.Error(err))
		return err
	}

	payload, err := Normalize(text, req.JSONMode)
	if err != nil {
		outcome = metrics.OutcomeMalformed
		log.Error("malformed model response", zap.Error(err), zap.String("raw", text))
		return err
	}

	if failure, ok := DetectModelFailure(payload); ok {
		outcome = metrics.OutcomeModelReported
		log.Info("model reported a failure", zap.String("error", failure.Message))
		_ = decode(payload, out)
		return failure
	}

	if err := Validate(kind, payload); err != nil {
		outcome = metrics.OutcomeSchemaViolation
		log.Error("model response violates schema", zap.Error(err), zap.ByteString("payload", payload))
		return err
	}

	// only a missing top-level key fails the analysis, mistyped leaves do not
	if err := decode(payload, out); err != nil {
		log.Warn("model response has mistyped fields, keeping their zero values",
			zap.Error(err),
			zap.ByteString("payload", payload),
		)
	}
	return nil
}

func (p *pipeline) Text(ctx context.Context, kind Kind, req gateway.Request) (string, error) {
	start := time.Now()
	text, err := p.gateway.Complete(ctx, req)
	if err != nil {
		p.metrics.ObserveAnalysis(string(kind), p.gateway.Name(), gatewayOutcome(err), time.Since(start))
		p.logger.Error("model gateway call failed",
			zap.String("kind", string(kind)),
			zap.String("provider", p.gateway.Name()),
			zap.Error(err),
		)
		return "", err
	}
	p.metrics.ObserveAnalysis(string(kind), p.gateway.Name(), metrics.OutcomeSuccess, time.Since(start))
	return text, nil
}

func gatewayOutcome(err error) string {
	if errors.Is(err, domain.ErrEmptyResponse) {
		return metrics.OutcomeEmptyResponse
	}
	return metrics.OutcomeProviderError
}
