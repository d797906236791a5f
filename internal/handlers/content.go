package handlers

import (
	"errors"
	"net/http"
	"strings"

	apperrors "geotransect-api/internal/common/errors"
	"geotransect-api/internal/common/logger"
	"geotransect-api/internal/common/validation"
	"geotransect-api/internal/mapper"
	"geotransect-api/internal/models"
	"geotransect-api/internal/store"
)

var errStoreNotInitialized = errors.New("document store not initialized")

// resource binds a record schema to a constructor for its typed record.
// The schema name doubles as the store collection name.
type resource struct {
	schema    validation.RecordSchema
	newRecord func() interface{}
}

var (
	serviceResource = resource{models.ServiceSchema, func() interface{} { return new(models.Service) }}
	projectResource = resource{models.ProjectSchema, func() interface{} { return new(models.Project) }}
	teamResource    = resource{models.TeamMemberSchema, func() interface{} { return new(models.TeamMember) }}
)

// ContentHandler serves the list and create endpoints for the content records.
type ContentHandler struct {
	store  store.Store
	logger logger.Logger
}

func NewContentHandler(st store.Store, log logger.Logger) *ContentHandler {
	return &ContentHandler{
		store:  st,
		logger: log.WithFields(map[string]interface{}{"handler": "content"}),
	}
}

func (h *ContentHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, serviceResource)
}

func (h *ContentHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, serviceResource)
}

func (h *ContentHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, projectResource)
}

func (h *ContentHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, projectResource)
}

func (h *ContentHandler) ListTeam(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, teamResource)
}

func (h *ContentHandler) CreateTeamMember(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, teamResource)
}

// list reads every document in the resource's collection and maps each one
// back into its record shape. A document that fails to map fails the whole
// request; schema drift must be visible, not skipped over.
func (h *ContentHandler) list(w http.ResponseWriter, r *http.Request, res resource) {
	collection := res.schema.Name

	if h.store == nil {
		respondError(w, apperrors.NewStoreReadFailedError(collection, errStoreNotInitialized))
		return
	}

	docs, err := h.store.FindAll(r.Context(), collection)
	if err != nil {
		h.logger.Error("list failed", map[string]interface{}{
			"collection": collection,
			"error":      err.Error(),
		})
		respondError(w, apperrors.NewStoreReadFailedError(collection, err))
		return
	}

	records := make([]interface{}, 0, len(docs))
	for _, doc := range docs {
		record := res.newRecord()
		if err := mapper.FromDocument(res.schema, doc, record); err != nil {
			h.logger.Error("document mapping failed", map[string]interface{}{
				"collection": collection,
				"error":      err.Error(),
			})
			respondError(w, asStandardError(collection, err))
			return
		}
		records = append(records, record)
	}

	respondJSON(w, http.StatusOK, records)
}

// create validates the input against the resource schema, converts it into a
// document and inserts it, answering with the store-assigned identifier.
func (h *ContentHandler) create(w http.ResponseWriter, r *http.Request, res resource) {
	collection := res.schema.Name

	input, stdErr := decodeBody(r)
	if stdErr != nil {
		respondError(w, stdErr)
		return
	}

	if result := res.schema.Validate(input); !result.Valid {
		respondError(w, apperrors.NewValidationFailedError(
			strings.Join(result.GetErrorMessages(), "; "), result.Errors))
		return
	}

	record := res.newRecord()
	if err := mapper.DecodeRecord(input, record); err != nil {
		respondError(w, apperrors.NewMalformedBodyError(err))
		return
	}

	doc, err := mapper.ToDocument(record)
	if err != nil {
		respondError(w, apperrors.NewDocumentMappingFailedError(collection, err.Error()))
		return
	}

	if h.store == nil {
		respondError(w, apperrors.NewStoreInsertFailedError(collection, errStoreNotInitialized))
		return
	}

	id, err := h.store.Insert(r.Context(), collection, doc)
	if err != nil {
		h.logger.Error("insert failed", map[string]interface{}{
			"collection": collection,
			"error":      err.Error(),
		})
		respondError(w, apperrors.NewStoreInsertFailedError(collection, err))
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// asStandardError keeps mapper errors intact and wraps anything else.
func asStandardError(collection string, err error) *apperrors.StandardError {
	var stdErr *apperrors.StandardError
	if errors.As(err, &stdErr) {
		return stdErr
	}
	return apperrors.NewDocumentMappingFailedError(collection, err.Error())
}
