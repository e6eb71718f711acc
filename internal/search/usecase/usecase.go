package usecase

import (
	"context"
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/jackaholy/Cheminv2.0/internal/logger"
	"github.com/jackaholy/Cheminv2.0/internal/search"
	"github.com/jackaholy/Cheminv2.0/internal/search/dto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

const tracerName = "cheminv.search"

// SynonymResolver yields alternate names for a query. Implementations absorb
// their own failures.
type SynonymResolver interface {
	Synonyms(ctx context.Context, query string) iter.Seq[string]
}

type searchUseCase struct {
	repo      search.Repository
	synonyms  SynonymResolver
	validator *FilterValidator
	logger    logger.ZapLogger
}

func NewSearchUseCase(repo search.Repository, synonyms SynonymResolver, log logger.ZapLogger) search.UseCase {
	return &searchUseCase{
		repo:      repo,
		synonyms:  synonyms,
		validator: NewFilterValidator(repo),
		logger:    log,
	}
}

func (uc *searchUseCase) Search(ctx context.Context, input *dto.SearchInput) (views []dto.ChemicalView, err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "search.UseCase.Search")
	defer span.End()

	start := time.Now()
	status := statusSuccess
	defer func() {
		searchDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	query := strings.TrimSpace(input.Query)
	span.SetAttributes(
		attribute.String("search.query", query),
		attribute.Bool("search.synonyms", input.Synonyms),
		attribute.Bool("search.filtered", !input.Filter.IsEmpty()),
	)

	if err := uc.validator.Validate(ctx, input.Filter); err != nil {
		if search.IsValidationError(err) {
			status = statusInvalid
		} else {
			status = statusError
			uc.logger.Error("Failed to validate search filters", zap.Error(err))
		}
		return nil, err
	}

	var synonyms iter.Seq[string]
	if input.Synonyms && query != "" && uc.synonyms != nil {
		synonyms = uc.synonyms.Synonyms(ctx, query)
	}
	terms := search.FilterTerms(query, synonyms)

	pred := search.BuildPredicate(query, terms, input.Filter)
	if pred.Empty {
		status = statusEmpty
		return []dto.ChemicalView{}, nil
	}
	if err := ctx.Err(); err != nil {
		status = statusError
		return nil, err
	}

	chemicals, err := uc.repo.FetchChemicals(ctx, pred)
	if err != nil {
		status = statusError
		uc.logger.Error("Failed to fetch chemicals",
			zap.String("query", query),
			zap.Int("terms", len(terms)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", search.ErrStoreQuery, err)
	}

	views = Aggregate(chemicals, input.Filter)
	Rank(query, views)

	searchResults.Observe(float64(len(views)))
	uc.logger.Debug("Search completed",
		zap.String("query", query),
		zap.Int("terms", len(terms)),
		zap.Int("fetched", len(chemicals)),
		zap.Int("results", len(views)),
	)
	return views, nil
}
