package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/mailguard/pkg/api"
	"github.com/codeready-toolchain/mailguard/pkg/config"
	"github.com/codeready-toolchain/mailguard/pkg/masking"
	"github.com/codeready-toolchain/mailguard/pkg/nlp"
	"github.com/codeready-toolchain/mailguard/pkg/services"
)

type stubRecognizer struct {
	entities []nlp.Entity
	err      error
}

func (s *stubRecognizer) Recognize(_ context.Context, _ string) ([]nlp.Entity, error) {
	return s.entities, s.err
}

type stubClassifier struct {
	label string
	err   error
}

func (s *stubClassifier) Classify(_ context.Context, _ string) (string, error) {
	return s.label, s.err
}

func newTestServer(t *testing.T, recognizer masking.Recognizer, classifier services.Classifier) *api.Server {
	t.Helper()
	registry, err := masking.NewPatternRegistry(config.BuiltinRules())
	require.NoError(t, err)
	masker := masking.NewService(recognizer, registry)
	classification := services.NewClassificationService(masker, classifier, nil)
	return api.NewServer("7860", classification, nil)
}

func doClassify(t *testing.T, server *api.Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/classify_email", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	return rec
}

func TestClassifyEmail_Success(t *testing.T) {
	server := newTestServer(t, &stubRecognizer{}, &stubClassifier{label: "Billing Issues"})

	payload, err := json.Marshal(map[string]string{
		"email_body": "Contact me at alice@example.com or 555-123-4567.",
	})
	require.NoError(t, err)

	rec := doClassify(t, server, string(payload))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.ClassifyEmailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "Contact me at alice@example.com or 555-123-4567.", resp.InputEmailBody)
	assert.Equal(t, "Contact me at [email] or [phone_number].", resp.MaskedEmail)
	assert.Equal(t, "Billing Issues", resp.CategoryOfTheEmail)

	require.Len(t, resp.ListOfMaskedEntities, 2)
	assert.Equal(t, [2]int{14, 31}, resp.ListOfMaskedEntities[0].Position)
	assert.Equal(t, "email", resp.ListOfMaskedEntities[0].Classification)
	assert.Equal(t, "alice@example.com", resp.ListOfMaskedEntities[0].Entity)
	assert.Equal(t, [2]int{35, 47}, resp.ListOfMaskedEntities[1].Position)
	assert.Equal(t, "phone_number", resp.ListOfMaskedEntities[1].Classification)
	assert.Equal(t, "555-123-4567", resp.ListOfMaskedEntities[1].Entity)
}

func TestClassifyEmail_MissingBodyField(t *testing.T) {
	server := newTestServer(t, &stubRecognizer{}, &stubClassifier{label: "Other"})

	rec := doClassify(t, server, `{"subject": "hello"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "email_body")
}

func TestClassifyEmail_EmptyBodyAccepted(t *testing.T) {
	server := newTestServer(t, &stubRecognizer{err: errors.New("must not be called")}, &stubClassifier{label: "Other"})

	rec := doClassify(t, server, `{"email_body": ""}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.ClassifyEmailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "", resp.MaskedEmail)
	assert.Equal(t, "Other", resp.CategoryOfTheEmail)
	assert.NotNil(t, resp.ListOfMaskedEntities)
	assert.Empty(t, resp.ListOfMaskedEntities)
}

func TestClassifyEmail_MalformedJSON(t *testing.T) {
	server := newTestServer(t, &stubRecognizer{}, &stubClassifier{label: "Other"})

	rec := doClassify(t, server, `{"email_body": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClassifyEmail_RecognizerUnavailable(t *testing.T) {
	server := newTestServer(t, &stubRecognizer{err: nlp.ErrUnavailable}, &stubClassifier{label: "Other"})

	rec := doClassify(t, server, `{"email_body": "my card is 4111 1111 1111 1111"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "entity recognition service unavailable")
}

func TestClassifyEmail_ClassifierFailure(t *testing.T) {
	server := newTestServer(t, &stubRecognizer{}, &stubClassifier{err: errors.New("model not loaded")})

	rec := doClassify(t, server, `{"email_body": "hello"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
}

func TestClassifyEmail_EntitiesSerializeAsArray(t *testing.T) {
	server := newTestServer(t, &stubRecognizer{}, &stubClassifier{label: "Other"})

	rec := doClassify(t, server, `{"email_body": "nothing sensitive here"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"list_of_masked_entities":[]`)
}

func TestHealth_NoDatabase(t *testing.T) {
	server := newTestServer(t, &stubRecognizer{}, &stubClassifier{label: "Other"})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp api.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Nil(t, resp.Database)
}

func TestSecurityHeaders(t *testing.T) {
	server := newTestServer(t, &stubRecognizer{}, &stubClassifier{label: "Other"})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
}
