package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	request "unimarket/internal/adapter/http/dto/request"
	response "unimarket/internal/adapter/http/dto/response"
	"unimarket/internal/usecase"
	"unimarket/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)

// QuotationHandler handles HTTP requests for the quotation authoring flow:
// opening a session, live draft validation, submission with the price
// shortfall confirmation step, and abandonment.

type QuotationHandler struct {
	usecase usecase.IQuotationSessionUseCase
}

func NewQuotationHandler(uc usecase.IQuotationSessionUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

// OpenSession starts an authoring session for an order. The response
// carries the computed material-cost baseline and the derived date window.
func (h *QuotationHandler) OpenSession(c *gin.Context) {
	var payload request.QuotationSessionOpenRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	orderID := payload.ResolveOrderID()
	if orderID == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	session, err := h.usecase.Open(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSession(session))
}

func (h *QuotationHandler) GetSession(c *gin.Context) {
	session, err := h.usecase.Get(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

// UpdateDraft replaces the session draft and returns the full validation
// result, so the UI can surface every failing rule on each field change.
func (h *QuotationHandler) UpdateDraft(c *gin.Context) {
	var payload request.QuotationDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	draft, err := payload.ResolveDraft()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", err.Error(), http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.UpdateDraft(c.Request.Context(), c.Param("session_id"), draft)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromValidationResult(result))
}

// Submit attempts the submission. Outcomes:
//   - 200: the payload was handed to the order-service.
//   - 409 with requires_confirmation: price below material cost; resubmit
//     with force=true to confirm.
//   - 422: hard validation failures, draft stays editable.
//   - 502: order-service rejection, upstream message verbatim.
func (h *QuotationHandler) Submit(c *gin.Context) {
	var payload request.QuotationSubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	outcome, err := h.usecase.Submit(c.Request.Context(), c.Param("session_id"), payload.Force)
	if err != nil {
		if errors.Is(err, usecase.ErrQuotationSubmitFailed) {
			// The order-service message is surfaced verbatim; the draft is
			// intact and can be retried.
			appErr := pkg.NewDomainErrorSimple("UPSTREAM_REJECTED", upstreamMessage(err), http.StatusBadGateway)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	switch {
	case outcome.RequiresConfirmation:
		c.JSON(http.StatusConflict, response.FromSubmitOutcome(outcome))
	case !outcome.Validation.OK():
		c.JSON(http.StatusUnprocessableEntity, response.FromSubmitOutcome(outcome))
	default:
		c.JSON(http.StatusOK, response.FromSubmitOutcome(outcome))
	}
}

func (h *QuotationHandler) AbandonSession(c *gin.Context) {
	if err := h.usecase.Abandon(c.Request.Context(), c.Param("session_id")); err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapQuotationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound), errors.Is(err, usecase.ErrSessionAbandoned):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Quotation session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotQuotable):
		return pkg.NewDomainErrorSimple("ORDER_NOT_QUOTABLE", "Order is not open for quotation", http.StatusConflict)
	case errors.Is(err, usecase.ErrSubmissionInFlight):
		return pkg.NewDomainErrorSimple("SUBMISSION_IN_FLIGHT", "A submission is already in flight for this draft", http.StatusConflict)
	case errors.Is(err, usecase.ErrSessionSubmitted):
		return pkg.NewDomainErrorSimple("ALREADY_SUBMITTED", "Quotation already submitted", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// upstreamMessage strips the local wrap so only the order-service text is
// returned to the UI.
func upstreamMessage(err error) string {
	msg := err.Error()
	prefix := usecase.ErrQuotationSubmitFailed.Error() + ": "
	return strings.TrimPrefix(msg, prefix)
}
