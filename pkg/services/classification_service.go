// Package services contains the domain-level orchestration between masking,
// classification, and the audit trail.
package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/mailguard/pkg/database"
	"github.com/codeready-toolchain/mailguard/pkg/masking"
)

// Classifier assigns a support category to an already-masked email body.
type Classifier interface {
	Classify(ctx context.Context, text string) (string, error)
}

// Result is the outcome of processing one email: the original body, the
// entities that were masked out of it, the masked body, and its category.
type Result struct {
	InputEmailBody string
	Entities       []masking.Entity
	MaskedEmail    string
	Category       string
}

// ClassificationService masks PII out of an email body, classifies the
// masked text, and optionally records an audit entry.
type ClassificationService struct {
	masker     *masking.Service
	classifier Classifier
	audit      *database.AuditStore // optional, nil disables auditing
}

// NewClassificationService creates a new ClassificationService. The audit
// store may be nil when auditing is disabled.
func NewClassificationService(masker *masking.Service, classifier Classifier, audit *database.AuditStore) *ClassificationService {
	if masker == nil {
		panic("NewClassificationService: masker must not be nil")
	}
	if classifier == nil {
		panic("NewClassificationService: classifier must not be nil")
	}
	return &ClassificationService{
		masker:     masker,
		classifier: classifier,
		audit:      audit,
	}
}

// Process masks the email body and classifies the masked text. Only the
// masked text ever reaches the classifier, so its category decision cannot
// leak PII back out through model behavior.
func (s *ClassificationService) Process(ctx context.Context, emailBody string) (*Result, error) {
	masked, entities, err := s.masker.Mask(ctx, emailBody)
	if err != nil {
		return nil, err
	}

	category, err := s.classifier.Classify(ctx, masked)
	if err != nil {
		return nil, err
	}

	result := &Result{
		InputEmailBody: emailBody,
		Entities:       entities,
		MaskedEmail:    masked,
		Category:       category,
	}

	s.recordAudit(ctx, result)

	return result, nil
}

// recordAudit persists an audit record for the processed email. Audit
// failures are logged and swallowed: the classification result already
// exists and the caller should receive it.
func (s *ClassificationService) recordAudit(ctx context.Context, result *Result) {
	if s.audit == nil {
		return
	}

	counts := make(map[string]int)
	for _, entity := range result.Entities {
		counts[string(entity.Classification)]++
	}

	sum := sha256.Sum256([]byte(result.MaskedEmail))
	rec := database.AuditRecord{
		ID:           uuid.New().String(),
		Category:     result.Category,
		EntityCount:  len(result.Entities),
		EntityCounts: counts,
		MaskedSHA256: hex.EncodeToString(sum[:]),
	}

	if err := s.audit.Insert(ctx, rec); err != nil {
		slog.Error("Failed to record classification audit entry",
			"record_id", rec.ID,
			"category", rec.Category,
			"error", err)
	}
}
