package masking

import (
	"context"
)

// personLabel is the only recognizer label this system inspects. The model
// may emit any label set (ORG, GPE, ...); everything else is ignored.
const personLabel = "PERSON"

// collect runs the recognizer and then every rule in declared order,
// accumulating all raw matches into one candidate list. No deduplication
// happens here: candidates may overlap, and their order is the precedence
// order the resolver consumes, so they must never be re-sorted.
func (s *Service) collect(ctx context.Context, text string) ([]Span, error) {
	recognized, err := s.recognizer.Recognize(ctx, text)
	if err != nil {
		return nil, err
	}

	var candidates []Span
	for _, e := range recognized {
		if e.Label != personLabel {
			continue
		}
		if e.Start < 0 || e.End > len(text) || e.Start >= e.End {
			// Out-of-range offsets from the model would corrupt slicing.
			continue
		}
		candidates = append(candidates, Span{
			Start:          e.Start,
			End:            e.End,
			Classification: ClassFullName,
			Literal:        text[e.Start:e.End],
			Source:         SourceRecognizer,
		})
	}

	for _, rule := range s.registry.rules {
		for _, m := range rule.re.FindAllStringIndex(text, -1) {
			candidates = append(candidates, Span{
				Start:          m[0],
				End:            m[1],
				Classification: rule.label,
				Literal:        text[m[0]:m[1]],
				Source:         rule.name,
			})
		}
	}

	return candidates, nil
}
