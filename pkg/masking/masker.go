package masking

// substitute rewrites text by replacing each span with its bracketed
// classification tag, e.g. "[email]". Spans must be sorted ascending and
// non-overlapping. Replacement walks right to left: offsets refer to the
// original text, and substituting the rightmost span first leaves every
// lower offset untouched while the string changes length.
func substitute(text string, spans []Span) string {
	masked := text
	for i := len(spans) - 1; i >= 0; i-- {
		sp := spans[i]
		masked = masked[:sp.Start] + "[" + string(sp.Classification) + "]" + masked[sp.End:]
	}
	return masked
}
