// Package masking detects and redacts sensitive spans (names, emails, phone
// numbers, card numbers, dates, CVVs, expiry dates) in free-form text. It
// combines a statistical named-entity recognizer with an ordered regex rule
// table, deduplicates overlapping findings with a deterministic precedence
// policy, and rewrites the text with position-correct redaction markers.
package masking

import (
	"context"
	"log/slog"

	"github.com/codeready-toolchain/mailguard/pkg/nlp"
)

// Recognizer is the named-entity capability the service depends on. The
// production implementation is the NLP service client; tests substitute a
// stub without pulling in the model.
type Recognizer interface {
	Recognize(ctx context.Context, text string) ([]nlp.Entity, error)
}

// Service masks sensitive spans in text. Created once at application startup
// (singleton). Stateless aside from the compiled rule table; safe for
// unbounded concurrent use.
type Service struct {
	recognizer Recognizer
	registry   *PatternRegistry
}

// NewService creates a masking service over the given recognizer and
// compiled rule registry.
func NewService(recognizer Recognizer, registry *PatternRegistry) *Service {
	if recognizer == nil {
		panic("masking.NewService: recognizer must not be nil")
	}
	if registry == nil {
		panic("masking.NewService: registry must not be nil")
	}

	slog.Info("Masking service initialized", "rules", registry.Len())

	return &Service{
		recognizer: recognizer,
		registry:   registry,
	}
}

// Mask detects sensitive spans in text and returns the redacted text plus
// the accepted entities, sorted ascending by start offset with no two
// intervals intersecting. Each entity carries the verbatim literal for the
// caller's audit trail.
//
// Any failure aborts the whole call; partial masking is never returned. A
// recognizer failure surfaces as nlp.ErrUnavailable, not as a silent
// downgrade to regex-only coverage.
func (s *Service) Mask(ctx context.Context, text string) (string, []Entity, error) {
	if text == "" {
		return "", []Entity{}, nil
	}

	candidates, err := s.collect(ctx, text)
	if err != nil {
		return "", nil, err
	}

	accepted := resolveOverlaps(candidates)
	masked := substitute(text, accepted)

	entities := make([]Entity, 0, len(accepted))
	for _, sp := range accepted {
		entities = append(entities, Entity{
			Start:          sp.Start,
			End:            sp.End,
			Classification: sp.Classification,
			Literal:        sp.Literal,
		})
	}

	return masked, entities, nil
}
