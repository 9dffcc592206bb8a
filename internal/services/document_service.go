package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/stwalsh4118/faasdoc/internal/aggregation"
	"github.com/stwalsh4118/faasdoc/internal/composer"
	"github.com/stwalsh4118/faasdoc/internal/document"
	"github.com/stwalsh4118/faasdoc/internal/logger"
	"github.com/stwalsh4118/faasdoc/internal/models"
	"github.com/stwalsh4118/faasdoc/internal/normalizer"
	"github.com/stwalsh4118/faasdoc/internal/repository"
)

// Service-level errors
var (
	ErrRecordNotFound   = errors.New("faas record not found")
	ErrInvalidVariant   = errors.New("invalid document variant")
	ErrEmptyBatch       = errors.New("batch contains no records")
	ErrBatchTooLarge    = errors.New("batch exceeds the maximum number of records")
	ErrStoreUnavailable = errors.New("record store is not configured")
)

// Result is one composed document with the data-quality findings and
// totals it was built from.
type Result struct {
	FaasID      string                 `json:"faas_id" yaml:"faas_id"`
	Document    document.Document      `json:"document" yaml:"document"`
	Aggregates  aggregation.Aggregates `json:"aggregates" yaml:"aggregates"`
	Diagnostics normalizer.Diagnostics `json:"diagnostics" yaml:"diagnostics"`
}

// BatchLimits bounds ComposeBatch.
type BatchLimits struct {
	MaxRecords  int
	Concurrency int
}

// DocumentService defines the document composition operations.
type DocumentService interface {
	// ComposeFaas builds the Field Appraisal and Assessment Sheet for payload.
	ComposeFaas(ctx context.Context, payload *models.FaasPayload) (*Result, error)

	// ComposeTaxDeclaration builds the Tax Declaration for payload, with
	// values from the declaration form taking precedence.
	ComposeTaxDeclaration(ctx context.Context, payload *models.FaasPayload, decl models.TaxDeclaration) (*Result, error)

	// ComposeByID loads the stored payload for faasID and composes variant.
	// Returns ErrRecordNotFound if no record exists.
	// Returns ErrStoreUnavailable if the service has no repository.
	ComposeByID(ctx context.Context, faasID string, variant document.Variant, decl models.TaxDeclaration) (*Result, error)

	// ComposeBatch composes every payload in parallel. Results keep the
	// order of payloads.
	// Returns ErrEmptyBatch or ErrBatchTooLarge for out-of-range batches.
	ComposeBatch(ctx context.Context, variant document.Variant, payloads []models.FaasPayload) ([]Result, error)
}

// documentService is the concrete implementation of DocumentService.
type documentService struct {
	repo     repository.FaasRepository
	composer *composer.Composer
	limits   BatchLimits
	log      *logger.Logger
}

// NewDocumentService creates a new instance of DocumentService.
// repo may be nil when no record store is configured.
func NewDocumentService(repo repository.FaasRepository, cp *composer.Composer, limits BatchLimits, log *logger.Logger) DocumentService {
	if limits.Concurrency < 1 {
		limits.Concurrency = 1
	}
	return &documentService{
		repo:     repo,
		composer: cp,
		limits:   limits,
		log:      log,
	}
}

func (s *documentService) ComposeFaas(ctx context.Context, payload *models.FaasPayload) (*Result, error) {
	return s.compose(ctx, document.VariantFaas, payload, models.TaxDeclaration{})
}

func (s *documentService) ComposeTaxDeclaration(ctx context.Context, payload *models.FaasPayload, decl models.TaxDeclaration) (*Result, error) {
	return s.compose(ctx, document.VariantTaxDeclaration, payload, decl)
}

func (s *documentService) ComposeByID(ctx context.Context, faasID string, variant document.Variant, decl models.TaxDeclaration) (*Result, error) {
	if !validVariant(variant) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVariant, variant)
	}
	if s.repo == nil {
		return nil, ErrStoreUnavailable
	}

	payload, err := s.repo.FindByID(ctx, faasID)
	if err != nil {
		s.log.Error("Failed to load faas record", err, map[string]interface{}{
			"faas_id": faasID,
		})
		return nil, fmt.Errorf("failed to load faas record: %w", err)
	}

	// Repository returns nil, nil when no record found - transform to domain error
	if payload == nil {
		s.log.Debug("No faas record found", map[string]interface{}{
			"faas_id": faasID,
		})
		return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, faasID)
	}

	return s.compose(ctx, variant, payload, decl)
}

func (s *documentService) ComposeBatch(ctx context.Context, variant document.Variant, payloads []models.FaasPayload) ([]Result, error) {
	if !validVariant(variant) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVariant, variant)
	}
	if len(payloads) == 0 {
		return nil, ErrEmptyBatch
	}
	if s.limits.MaxRecords > 0 && len(payloads) > s.limits.MaxRecords {
		s.log.Warn("Batch too large", map[string]interface{}{
			"records": len(payloads),
			"max":     s.limits.MaxRecords,
		})
		return nil, fmt.Errorf("%w: got %d, max %d", ErrBatchTooLarge, len(payloads), s.limits.MaxRecords)
	}

	s.log.Info("Composing batch", map[string]interface{}{
		"variant":     string(variant),
		"records":     len(payloads),
		"concurrency": s.limits.Concurrency,
	})

	results := make([]Result, len(payloads))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limits.Concurrency)

	for i := range payloads {
		g.Go(func() error {
			res, err := s.compose(gctx, variant, &payloads[i], models.TaxDeclaration{})
			if err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
			results[i] = *res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// compose runs normalize, aggregate and layout for one payload.
func (s *documentService) compose(ctx context.Context, variant document.Variant, payload *models.FaasPayload, decl models.TaxDeclaration) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	record, diags := normalizer.Normalize(payload)
	log := s.log.WithDocument(string(variant), record.ID)

	for _, w := range diags.Warnings {
		log.Warn("Payload data-quality warning", map[string]interface{}{
			"code":    string(w.Code),
			"field":   w.Field,
			"message": w.Message,
		})
	}

	agg := aggregation.Compute(record)

	var doc document.Document
	switch variant {
	case document.VariantFaas:
		doc = s.composer.ComposeFaasDocument(record, agg)
	case document.VariantTaxDeclaration:
		doc = s.composer.ComposeTaxDeclarationDocument(record, agg, decl)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidVariant, variant)
	}

	if err := document.Validate(doc); err != nil {
		log.Error("Composed document violates layout rules", err, nil)
	}

	log.Info("Document composed", map[string]interface{}{
		"kind":     string(record.Kind),
		"sections": len(doc.Sections),
		"warnings": len(diags.Warnings),
	})

	return &Result{
		FaasID:      record.ID,
		Document:    doc,
		Aggregates:  agg,
		Diagnostics: diags,
	}, nil
}

func validVariant(v document.Variant) bool {
	return v == document.VariantFaas || v == document.VariantTaxDeclaration
}
