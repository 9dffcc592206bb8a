package handlers

import (
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stwalsh4118/faasdoc/internal/aggregation"
	"github.com/stwalsh4118/faasdoc/internal/document"
	apierrors "github.com/stwalsh4118/faasdoc/internal/errors"
	"github.com/stwalsh4118/faasdoc/internal/middleware"
	"github.com/stwalsh4118/faasdoc/internal/models"
	"github.com/stwalsh4118/faasdoc/internal/normalizer"
	"github.com/stwalsh4118/faasdoc/internal/services"
)

var registerFieldNames sync.Once

// DocumentHandler handles document composition requests.
type DocumentHandler struct {
	service services.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler instance. It also makes
// gin's validator report fields by their json names.
func NewDocumentHandler(service services.DocumentService) *DocumentHandler {
	registerFieldNames.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			apierrors.RegisterJSONFieldNames(v)
		}
	})
	return &DocumentHandler{
		service: service,
	}
}

// TaxDeclarationRequest is the body of the tax declaration endpoint.
type TaxDeclarationRequest struct {
	Record      *models.FaasPayload   `json:"record" binding:"required"`
	Declaration models.TaxDeclaration `json:"declaration"`
}

// BatchRequest is the body of the batch endpoint.
type BatchRequest struct {
	Variant string               `json:"variant" binding:"required"`
	Records []models.FaasPayload `json:"records" binding:"required"`
}

// RecordDocumentQuery holds the query parameters of the stored-record endpoint.
type RecordDocumentQuery struct {
	Variant string `form:"variant"`
	Format  string `form:"format"`
}

// DocumentResponse wraps one composed document.
type DocumentResponse struct {
	DocumentID  string                 `json:"document_id" yaml:"document_id"`
	FaasID      string                 `json:"faas_id,omitempty" yaml:"faas_id,omitempty"`
	Document    document.Document      `json:"document" yaml:"document"`
	Aggregates  aggregation.Aggregates `json:"aggregates" yaml:"aggregates"`
	Diagnostics normalizer.Diagnostics `json:"diagnostics" yaml:"diagnostics"`
}

// BatchResponse wraps the documents of a batch, in request order.
type BatchResponse struct {
	Documents []DocumentResponse `json:"documents" yaml:"documents"`
	Count     int                `json:"count" yaml:"count"`
}

// ComposeFaas handles POST /api/v1/documents/faas.
func (h *DocumentHandler) ComposeFaas(c *gin.Context) {
	f, ok := outputFormat(c, c.Query("format"))
	if !ok {
		return
	}

	var payload models.FaasPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.BindError(c, err)
		return
	}

	result, err := h.service.ComposeFaas(c.Request.Context(), &payload)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	writeDocument(c, f, result)
}

// ComposeTaxDeclaration handles POST /api/v1/documents/tax-declaration.
func (h *DocumentHandler) ComposeTaxDeclaration(c *gin.Context) {
	f, ok := outputFormat(c, c.Query("format"))
	if !ok {
		return
	}

	var req TaxDeclarationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BindError(c, err)
		return
	}

	result, err := h.service.ComposeTaxDeclaration(c.Request.Context(), req.Record, req.Declaration)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	writeDocument(c, f, result)
}

// ComposeRecord handles GET /api/v1/records/:faasId/document.
func (h *DocumentHandler) ComposeRecord(c *gin.Context) {
	var query RecordDocumentQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apierrors.BadRequest(c, "Invalid query parameters", nil)
		return
	}

	f, ok := outputFormat(c, query.Format)
	if !ok {
		return
	}

	variant := document.VariantFaas
	if query.Variant != "" {
		parsed, valid := document.ParseVariant(query.Variant)
		if !valid {
			apierrors.BadRequest(c, "Variant must be faas or td", map[string]interface{}{
				"variant": query.Variant,
			})
			return
		}
		variant = parsed
	}

	faasID := strings.TrimSpace(c.Param("faasId"))
	if faasID == "" {
		apierrors.BadRequest(c, "FAAS id is required", nil)
		return
	}

	result, err := h.service.ComposeByID(c.Request.Context(), faasID, variant, models.TaxDeclaration{})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	writeDocument(c, f, result)
}

// ComposeBatch handles POST /api/v1/documents/batch.
func (h *DocumentHandler) ComposeBatch(c *gin.Context) {
	f, ok := outputFormat(c, c.Query("format"))
	if !ok {
		return
	}

	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BindError(c, err)
		return
	}

	variant, valid := document.ParseVariant(req.Variant)
	if !valid {
		apierrors.BadRequest(c, "Variant must be faas or td", map[string]interface{}{
			"variant": req.Variant,
		})
		return
	}

	results, err := h.service.ComposeBatch(c.Request.Context(), variant, req.Records)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	resp := BatchResponse{
		Documents: make([]DocumentResponse, 0, len(results)),
		Count:     len(results),
	}
	warnings := 0
	for i := range results {
		resp.Documents = append(resp.Documents, newDocumentResponse(&results[i]))
		warnings += len(results[i].Diagnostics.Warnings)
	}
	middleware.SetDocument(c, string(variant), "", warnings)

	write(c, f, http.StatusOK, resp)
}

func newDocumentResponse(r *services.Result) DocumentResponse {
	return DocumentResponse{
		DocumentID:  uuid.NewString(),
		FaasID:      r.FaasID,
		Document:    r.Document,
		Aggregates:  r.Aggregates,
		Diagnostics: r.Diagnostics,
	}
}

// writeDocument sends a single composed document and tags the request log.
func writeDocument(c *gin.Context, f document.Format, r *services.Result) {
	resp := newDocumentResponse(r)
	middleware.SetDocument(c, string(r.Document.Variant), r.FaasID, len(r.Diagnostics.Warnings))
	c.Header(middleware.DocumentIDHeader, resp.DocumentID)
	write(c, f, http.StatusOK, resp)
}

// write encodes body in the requested format.
func write(c *gin.Context, f document.Format, status int, body interface{}) {
	if f == document.FormatJSON {
		c.JSON(status, body)
		return
	}

	c.Header("Content-Type", f.ContentType())
	c.Status(status)
	if err := document.Encode(c.Writer, body, f); err != nil {
		_ = c.Error(err)
	}
}

// outputFormat resolves the response format from the format query value,
// falling back to the Accept header. It writes the error response itself.
func outputFormat(c *gin.Context, requested string) (document.Format, bool) {
	if requested == "" && strings.Contains(c.GetHeader("Accept"), "yaml") {
		return document.FormatYAML, true
	}
	f, err := document.ParseFormat(requested)
	if err != nil {
		apierrors.UnsupportedFormat(c, requested)
		return "", false
	}
	return f, true
}

// handleServiceError maps service-level errors onto the API error envelope.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRecordNotFound):
		apierrors.NotFound(c, "FAAS record not found")
	case errors.Is(err, services.ErrStoreUnavailable):
		apierrors.StoreUnavailable(c, "Record store is not configured")
	case errors.Is(err, services.ErrInvalidVariant),
		errors.Is(err, services.ErrEmptyBatch),
		errors.Is(err, services.ErrBatchTooLarge):
		apierrors.BadRequest(c, err.Error(), nil)
	default:
		apierrors.InternalServerError(c, "Failed to compose document", err)
	}
}
