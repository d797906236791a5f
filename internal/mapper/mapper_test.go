package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "geotransect-api/internal/common/errors"
	"geotransect-api/internal/models"
	"geotransect-api/internal/store"
)

// ==========================
// Test Helper Functions
// ==========================

func sampleService() *models.Service {
	return &models.Service{
		Title:       "Topographic Survey",
		Slug:        "topographic-survey",
		Summary:     "High accuracy topographic surveys",
		Description: "Full field-to-finish workflow",
		Icon:        "map",
		CoverImage:  "/img/topo.jpg",
	}
}

func sampleProject() *models.Project {
	return &models.Project{
		Title:    "Coastal Erosion Mapping",
		Slug:     "coastal-erosion-mapping",
		Sector:   "Environment",
		Summary:  "Multi-year shoreline monitoring",
		Images:   []string{"a.jpg", "b.jpg"},
		Services: []string{"topographic-survey"},
	}
}

// withIdentifier simulates a stored document: the store assigns the
// identifier on insert, so round-trip tests inject one by hand.
func withIdentifier(doc store.Document) store.Document {
	doc[store.IdentifierKey] = "68b000000000000000000001"
	return doc
}

// ==========================
// Core Functionality Tests
// ==========================

func TestToDocument(t *testing.T) {
	t.Run("serializes every field", func(t *testing.T) {
		doc, err := ToDocument(sampleService())
		require.NoError(t, err)

		assert.Equal(t, "Topographic Survey", doc["title"])
		assert.Equal(t, "topographic-survey", doc["slug"])
		assert.Equal(t, "map", doc["icon"])
	})

	t.Run("never writes an identifier", func(t *testing.T) {
		doc, err := ToDocument(sampleService())
		require.NoError(t, err)
		assert.NotContains(t, doc, store.IdentifierKey)
	})

	t.Run("applies list defaults", func(t *testing.T) {
		project := sampleProject()
		project.Images = nil
		project.Services = nil

		doc, err := ToDocument(project)
		require.NoError(t, err)

		assert.Equal(t, []string{}, doc["images"])
		assert.Equal(t, []string{}, doc["services"])
	})
}

func TestFromDocument_RoundTrip(t *testing.T) {
	t.Run("service", func(t *testing.T) {
		original := sampleService()
		doc, err := ToDocument(original)
		require.NoError(t, err)

		var decoded models.Service
		require.NoError(t, FromDocument(models.ServiceSchema, withIdentifier(doc), &decoded))
		assert.Equal(t, *original, decoded)
	})

	t.Run("project", func(t *testing.T) {
		original := sampleProject()
		doc, err := ToDocument(original)
		require.NoError(t, err)

		var decoded models.Project
		require.NoError(t, FromDocument(models.ProjectSchema, withIdentifier(doc), &decoded))
		assert.Equal(t, *original, decoded)
	})

	t.Run("team member", func(t *testing.T) {
		original := &models.TeamMember{
			Name:  "A. Mensah",
			Role:  "Lead Surveyor",
			Email: "a.mensah@example.com",
		}
		doc, err := ToDocument(original)
		require.NoError(t, err)

		var decoded models.TeamMember
		require.NoError(t, FromDocument(models.TeamMemberSchema, withIdentifier(doc), &decoded))
		assert.Equal(t, *original, decoded)
	})

	t.Run("inquiry", func(t *testing.T) {
		original := &models.Inquiry{
			Name:    "Jo",
			Email:   "jo@x.com",
			Subject: "Survey quote",
			Message: "I would like a consultation",
		}
		doc, err := ToDocument(original)
		require.NoError(t, err)

		var decoded models.Inquiry
		require.NoError(t, FromDocument(models.InquirySchema, withIdentifier(doc), &decoded))
		assert.Equal(t, *original, decoded)
	})
}

func TestFromDocument_DataDrift(t *testing.T) {
	t.Run("missing required field", func(t *testing.T) {
		doc := withIdentifier(store.Document{
			"title": "No slug here",
		})

		var decoded models.Service
		err := FromDocument(models.ServiceSchema, doc, &decoded)
		require.Error(t, err)

		var stdErr *apperrors.StandardError
		require.ErrorAs(t, err, &stdErr)
		assert.Equal(t, apperrors.ErrCodeDocumentMappingFailed, stdErr.Code)
		assert.Contains(t, stdErr.Details, "slug")
	})

	t.Run("wrong field type", func(t *testing.T) {
		doc := withIdentifier(store.Document{
			"title":   "Drifted",
			"slug":    "drifted",
			"summary": 12345,
		})

		var decoded models.Service
		err := FromDocument(models.ServiceSchema, doc, &decoded)
		var stdErr *apperrors.StandardError
		require.ErrorAs(t, err, &stdErr)
		assert.Equal(t, apperrors.ErrCodeDocumentMappingFailed, stdErr.Code)
	})

	t.Run("never coerces into a patched record", func(t *testing.T) {
		doc := withIdentifier(store.Document{"name": "only a name"})

		var decoded models.TeamMember
		err := FromDocument(models.TeamMemberSchema, doc, &decoded)
		require.Error(t, err)
	})
}

func TestFromDocument_ExtraFieldsIgnored(t *testing.T) {
	doc := withIdentifier(store.Document{
		"title":        "Topo",
		"slug":         "topo",
		"summary":      "short summary",
		"legacy_field": "left over from an older schema",
	})

	var decoded models.Service
	require.NoError(t, FromDocument(models.ServiceSchema, doc, &decoded))
	assert.Equal(t, "Topo", decoded.Title)
}

// ==========================
// Unit Tests
// ==========================

func TestDecodeRecord(t *testing.T) {
	t.Run("decodes validated input", func(t *testing.T) {
		var inquiry models.Inquiry
		err := DecodeRecord(map[string]interface{}{
			"name":    "Jo",
			"email":   "jo@x.com",
			"subject": "Hi",
			"message": "I would like a consultation",
		}, &inquiry)

		require.NoError(t, err)
		assert.Equal(t, "Jo", inquiry.Name)
		assert.Equal(t, "I would like a consultation", inquiry.Message)
	})

	t.Run("applies defaults after decoding", func(t *testing.T) {
		var project models.Project
		err := DecodeRecord(map[string]interface{}{
			"title":   "Minimal",
			"slug":    "minimal",
			"summary": "bare project",
		}, &project)

		require.NoError(t, err)
		assert.NotNil(t, project.Images)
		assert.Empty(t, project.Images)
		assert.NotNil(t, project.Services)
	})
}
