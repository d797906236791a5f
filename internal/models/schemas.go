package models

import "geotransect-api/internal/common/validation"

// Collection names follow the original convention: the lowercased record kind,
// singular, no pluralization.
const (
	CollectionService    = "service"
	CollectionProject    = "project"
	CollectionTeamMember = "teammember"
	CollectionInquiry    = "inquiry"
)

// MinInquiryMessageLength is the minimum trimmed length for Inquiry.Message.
// The contact handler re-checks this independently of schema validation.
const MinInquiryMessageLength = 10

var ServiceSchema = validation.RecordSchema{
	Name: CollectionService,
	Fields: []validation.Field{
		{Name: "title", Type: validation.TypeString, Required: true},
		{Name: "slug", Type: validation.TypeString, Required: true},
		{Name: "summary", Type: validation.TypeString, Required: true},
		{Name: "description", Type: validation.TypeString},
		{Name: "icon", Type: validation.TypeString},
		{Name: "cover_image", Type: validation.TypeString},
	},
}

var ProjectSchema = validation.RecordSchema{
	Name: CollectionProject,
	Fields: []validation.Field{
		{Name: "title", Type: validation.TypeString, Required: true},
		{Name: "slug", Type: validation.TypeString, Required: true},
		{Name: "sector", Type: validation.TypeString},
		{Name: "summary", Type: validation.TypeString, Required: true},
		{Name: "body", Type: validation.TypeString},
		{Name: "location", Type: validation.TypeString},
		{Name: "images", Type: validation.TypeStringList},
		{Name: "services", Type: validation.TypeStringList},
		{Name: "map_embed", Type: validation.TypeString},
	},
}

var TeamMemberSchema = validation.RecordSchema{
	Name: CollectionTeamMember,
	Fields: []validation.Field{
		{Name: "name", Type: validation.TypeString, Required: true},
		{Name: "role", Type: validation.TypeString, Required: true},
		{Name: "expertise", Type: validation.TypeString},
		{Name: "email", Type: validation.TypeString, Format: validation.FormatEmail},
		{Name: "phone", Type: validation.TypeString},
		{Name: "photo_url", Type: validation.TypeString},
	},
}

var InquirySchema = validation.RecordSchema{
	Name: CollectionInquiry,
	Fields: []validation.Field{
		{Name: "name", Type: validation.TypeString, Required: true},
		{Name: "email", Type: validation.TypeString, Required: true, Format: validation.FormatEmail},
		{Name: "phone", Type: validation.TypeString},
		{Name: "subject", Type: validation.TypeString, Required: true},
		{Name: "message", Type: validation.TypeString, Required: true, MinTrimmedLength: MinInquiryMessageLength},
	},
}
