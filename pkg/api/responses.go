package api

import (
	"github.com/codeready-toolchain/mailguard/pkg/database"
	"github.com/codeready-toolchain/mailguard/pkg/masking"
)

// MaskedEntity is the wire form of one detected entity. Position holds the
// [start, end) byte offsets into the original email body.
type MaskedEntity struct {
	Position       [2]int `json:"position"`
	Classification string `json:"classification"`
	Entity         string `json:"entity"`
}

// ClassifyEmailResponse is returned by POST /classify_email.
type ClassifyEmailResponse struct {
	InputEmailBody       string         `json:"input_email_body"`
	ListOfMaskedEntities []MaskedEntity `json:"list_of_masked_entities"`
	MaskedEmail          string         `json:"masked_email"`
	CategoryOfTheEmail   string         `json:"category_of_the_email"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string                 `json:"status"`
	Database *database.HealthStatus `json:"database,omitempty"`
	Error    string                 `json:"error,omitempty"`
}

// toMaskedEntities converts accepted findings to their wire form. The
// result is never nil so the JSON field serializes as [] rather than null.
func toMaskedEntities(entities []masking.Entity) []MaskedEntity {
	out := make([]MaskedEntity, 0, len(entities))
	for _, e := range entities {
		out = append(out, MaskedEntity{
			Position:       [2]int{e.Start, e.End},
			Classification: string(e.Classification),
			Entity:         e.Literal,
		})
	}
	return out
}
