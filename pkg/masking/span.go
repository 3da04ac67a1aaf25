package masking

// Classification labels a detected span. The label set is closed; labels are
// plain lowercase identifiers that appear verbatim inside redaction markers.
type Classification string

const (
	ClassFullName      Classification = "full_name"
	ClassEmail         Classification = "email"
	ClassPhoneNumber   Classification = "phone_number"
	ClassDOB           Classification = "dob"
	ClassAadharNum     Classification = "aadhar_num"
	ClassCreditDebitNo Classification = "credit_debit_no"
	ClassCVVNo         Classification = "cvv_no"
	ClassExpiryNo      Classification = "expiry_no"
)

// SourceRecognizer marks candidates produced by the statistical recognizer.
// Pattern candidates carry their rule name instead.
const SourceRecognizer = "recognizer"

// Span is a raw detection candidate: a half-open [Start, End) byte interval
// into the original text. Literal is always the verbatim slice
// text[Start:End], never a normalized form.
type Span struct {
	Start          int
	End            int
	Classification Classification
	Literal        string
	Source         string // detector that produced the span; precedence bookkeeping only
}

// Entity is an accepted finding returned to the caller. Offsets refer to the
// original (unmasked) text.
type Entity struct {
	Start          int
	End            int
	Classification Classification
	Literal        string
}
