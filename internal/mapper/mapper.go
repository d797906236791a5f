// Package mapper converts between validated records and store documents.
// It is the only place the store identifier is stripped, and the only place
// the loosely-typed document representation touches the record types.
package mapper

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"

	apperrors "geotransect-api/internal/common/errors"
	"geotransect-api/internal/common/validation"
	"geotransect-api/internal/store"
)

// defaulter lets record types fill in defaults for absent optional fields,
// such as empty lists.
type defaulter interface {
	ApplyDefaults()
}

// ToDocument serializes all fields of a record into a store document. No
// identifier is written here; assigning one is the store's job on insert.
func ToDocument(record interface{}) (store.Document, error) {
	if d, ok := record.(defaulter); ok {
		d.ApplyDefaults()
	}

	doc := store.Document{}
	if err := mapstructure.Decode(record, &doc); err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return doc, nil
}

// FromDocument strips the store identifier from a document, validates the
// remaining fields against the schema and decodes them into out. A document
// that no longer satisfies its schema signals data drift and yields a
// mapping error rather than a silently patched record.
func FromDocument(schema validation.RecordSchema, doc store.Document, out interface{}) error {
	fields := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		if k == store.IdentifierKey {
			continue
		}
		fields[k] = v
	}

	if result := schema.Validate(fields); !result.Valid {
		return apperrors.NewDocumentMappingFailedError(
			schema.Name, strings.Join(result.GetErrorMessages(), "; "))
	}

	if err := DecodeRecord(fields, out); err != nil {
		return apperrors.NewDocumentMappingFailedError(schema.Name, err.Error())
	}
	return nil
}

// DecodeRecord decodes an already validated field mapping into a typed record
// and applies the record's defaults. Keys the record does not declare are
// ignored.
func DecodeRecord(fields map[string]interface{}, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: out,
	})
	if err != nil {
		return fmt.Errorf("build decoder: %w", err)
	}
	if err := decoder.Decode(fields); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}

	if d, ok := out.(defaulter); ok {
		d.ApplyDefaults()
	}
	return nil
}
