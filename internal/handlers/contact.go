package handlers

import (
	"net/http"
	"strings"

	apperrors "geotransect-api/internal/common/errors"
	"geotransect-api/internal/common/logger"
	"geotransect-api/internal/mapper"
	"geotransect-api/internal/models"
	"geotransect-api/internal/store"
)

const contactAckMessage = "Thanks for reaching out. We'll get back to you shortly."

// InquiryResponse is the fixed acknowledgement payload for accepted inquiries.
type InquiryResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ContactHandler serves the contact-form submission endpoint.
type ContactHandler struct {
	store  store.Store
	logger logger.Logger
}

func NewContactHandler(st store.Store, log logger.Logger) *ContactHandler {
	return &ContactHandler{
		store:  st,
		logger: log.WithFields(map[string]interface{}{"handler": "contact"}),
	}
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	input, stdErr := decodeBody(r)
	if stdErr != nil {
		respondError(w, stdErr)
		return
	}

	if result := models.InquirySchema.Validate(input); !result.Valid {
		respondError(w, apperrors.NewValidationFailedError(
			strings.Join(result.GetErrorMessages(), "; "), result.Errors))
		return
	}

	var inquiry models.Inquiry
	if err := mapper.DecodeRecord(input, &inquiry); err != nil {
		respondError(w, apperrors.NewMalformedBodyError(err))
		return
	}

	// Basic spam prevention: minimal content length, checked here in addition
	// to the schema's own minimum.
	if len(strings.TrimSpace(inquiry.Message)) < models.MinInquiryMessageLength {
		respondError(w, apperrors.NewMessageTooShortError())
		return
	}

	doc, err := mapper.ToDocument(&inquiry)
	if err != nil {
		respondError(w, apperrors.NewDocumentMappingFailedError(models.CollectionInquiry, err.Error()))
		return
	}

	if h.store == nil {
		respondError(w, apperrors.NewStoreInsertFailedError(models.CollectionInquiry, errStoreNotInitialized))
		return
	}

	if _, err := h.store.Insert(r.Context(), models.CollectionInquiry, doc); err != nil {
		h.logger.Error("inquiry insert failed", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, apperrors.NewStoreInsertFailedError(models.CollectionInquiry, err))
		return
	}

	// Email sending could be added here; for now we just acknowledge.
	respondJSON(w, http.StatusOK, InquiryResponse{Status: "ok", Message: contactAckMessage})
}
