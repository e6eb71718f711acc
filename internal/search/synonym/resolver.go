// Package synonym expands a chemical name into alternate names from an
// external lookup service. The service is treated as unreliable: every
// failure degrades to "no synonyms".
package synonym

import (
	"context"
	"errors"
	"iter"
	"net"
	"time"

	"github.com/jackaholy/Cheminv2.0/internal/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

const tracerName = "cheminv.synonym"

type Resolver struct {
	source  Source
	timeout time.Duration
	logger  logger.ZapLogger
}

// NewResolver wraps source. A positive timeout bounds each lookup.
func NewResolver(source Source, timeout time.Duration, log logger.ZapLogger) *Resolver {
	return &Resolver{source: source, timeout: timeout, logger: log}
}

// Synonyms returns the alternate names of query as a lazy sequence: the lookup
// runs when the sequence is first iterated. Errors are logged, never returned.
func (r *Resolver) Synonyms(ctx context.Context, query string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, s := range r.lookup(ctx, query) {
			if !yield(s) {
				return
			}
		}
	}
}

func (r *Resolver) lookup(ctx context.Context, query string) []string {
	if query == "" || r.source == nil {
		return nil
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "synonym.Resolver.lookup")
	defer span.End()
	span.SetAttributes(attribute.String("synonym.query", query))

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	synonyms, err := r.source.Lookup(ctx, query)
	lookupDuration.Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		lookupsTotal.WithLabelValues(outcomeFound).Inc()
		span.SetAttributes(attribute.Int("synonym.count", len(synonyms)))
		return synonyms
	case errors.Is(err, ErrNotFound):
		lookupsTotal.WithLabelValues(outcomeNotFound).Inc()
		return nil
	case isTimeout(err):
		lookupsTotal.WithLabelValues(outcomeTimeout).Inc()
	default:
		lookupsTotal.WithLabelValues(outcomeError).Inc()
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	r.logger.Warn("Synonym lookup failed, searching without synonyms",
		zap.String("query", query),
		zap.Error(err),
	)
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
