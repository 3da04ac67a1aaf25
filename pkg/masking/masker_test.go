package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstitute_ReplacesSortedSpans(t *testing.T) {
	text := "call 5551234567 or mail a@b.io now"
	spans := []Span{
		{Start: 5, End: 15, Classification: ClassPhoneNumber},
		{Start: 24, End: 30, Classification: ClassEmail},
	}

	assert.Equal(t, "call [phone_number] or mail [email] now", substitute(text, spans))
}

func TestSubstitute_ReplacementLengthIndependent(t *testing.T) {
	// The tag replaces the span regardless of the literal's length; text
	// outside the spans is preserved byte for byte.
	text := "xx1yy"
	spans := []Span{{Start: 2, End: 3, Classification: ClassDOB}}
	assert.Equal(t, "xx[dob]yy", substitute(text, spans))
}

func TestSubstitute_WholeText(t *testing.T) {
	spans := []Span{{Start: 0, End: 10, Classification: ClassExpiryNo}}
	assert.Equal(t, "[expiry_no]", substitute("Exp: 09/27", spans))
}

func TestSubstitute_NoSpans(t *testing.T) {
	assert.Equal(t, "unchanged", substitute("unchanged", nil))
}
