package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/mailguard/pkg/config"
	"github.com/codeready-toolchain/mailguard/pkg/database"
	"github.com/codeready-toolchain/mailguard/pkg/masking"
	"github.com/codeready-toolchain/mailguard/pkg/nlp"
	"github.com/codeready-toolchain/mailguard/pkg/services"
	"github.com/codeready-toolchain/mailguard/test/util"
)

type stubRecognizer struct {
	entities []nlp.Entity
	err      error
}

func (s *stubRecognizer) Recognize(_ context.Context, _ string) ([]nlp.Entity, error) {
	return s.entities, s.err
}

type stubClassifier struct {
	label    string
	err      error
	lastText string
}

func (s *stubClassifier) Classify(_ context.Context, text string) (string, error) {
	s.lastText = text
	return s.label, s.err
}

func newTestMasker(t *testing.T, recognizer masking.Recognizer) *masking.Service {
	t.Helper()
	registry, err := masking.NewPatternRegistry(config.BuiltinRules())
	require.NoError(t, err)
	return masking.NewService(recognizer, registry)
}

func TestClassificationService_Process(t *testing.T) {
	masker := newTestMasker(t, &stubRecognizer{})
	classifier := &stubClassifier{label: "Billing Issues"}
	svc := services.NewClassificationService(masker, classifier, nil)

	body := "Please refund me at alice@example.com."
	result, err := svc.Process(context.Background(), body)
	require.NoError(t, err)

	assert.Equal(t, body, result.InputEmailBody)
	assert.Equal(t, "Please refund me at [email].", result.MaskedEmail)
	assert.Equal(t, "Billing Issues", result.Category)
	require.Len(t, result.Entities, 1)
	assert.Equal(t, masking.ClassEmail, result.Entities[0].Classification)
	assert.Equal(t, "alice@example.com", result.Entities[0].Literal)
}

func TestClassificationService_ClassifierSeesOnlyMaskedText(t *testing.T) {
	masker := newTestMasker(t, &stubRecognizer{})
	classifier := &stubClassifier{label: "Account Management"}
	svc := services.NewClassificationService(masker, classifier, nil)

	_, err := svc.Process(context.Background(), "Reach me at bob@example.com or 555-123-4567.")
	require.NoError(t, err)

	assert.Equal(t, "Reach me at [email] or [phone_number].", classifier.lastText)
	assert.NotContains(t, classifier.lastText, "bob@example.com")
}

func TestClassificationService_RecognizerUnavailable(t *testing.T) {
	masker := newTestMasker(t, &stubRecognizer{err: nlp.ErrUnavailable})
	classifier := &stubClassifier{label: "Billing Issues"}
	svc := services.NewClassificationService(masker, classifier, nil)

	result, err := svc.Process(context.Background(), "Hi, my card is 4111 1111 1111 1111.")
	require.Error(t, err)
	assert.ErrorIs(t, err, nlp.ErrUnavailable)
	assert.Nil(t, result, "no partial result on recognizer failure")
	assert.Empty(t, classifier.lastText, "classifier must not run on unmasked text")
}

func TestClassificationService_ClassifierError(t *testing.T) {
	masker := newTestMasker(t, &stubRecognizer{})
	classifierErr := errors.New("classify: model not loaded")
	classifier := &stubClassifier{err: classifierErr}
	svc := services.NewClassificationService(masker, classifier, nil)

	result, err := svc.Process(context.Background(), "Hello there.")
	require.Error(t, err)
	assert.ErrorIs(t, err, classifierErr)
	assert.Nil(t, result)
}

func TestClassificationService_EmptyBody(t *testing.T) {
	masker := newTestMasker(t, &stubRecognizer{err: errors.New("must not be called")})
	classifier := &stubClassifier{label: "Other"}
	svc := services.NewClassificationService(masker, classifier, nil)

	result, err := svc.Process(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "", result.MaskedEmail)
	assert.Empty(t, result.Entities)
	assert.Equal(t, "Other", result.Category)
}

func TestClassificationService_AuditTrail(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}

	client := util.SetupTestDatabase(t)
	store := database.NewAuditStore(client)

	masker := newTestMasker(t, &stubRecognizer{})
	classifier := &stubClassifier{label: "Billing Issues"}
	svc := services.NewClassificationService(masker, classifier, store)

	_, err := svc.Process(context.Background(), "Bill to carol@example.com, card 4111 1111 1111 1111.")
	require.NoError(t, err)

	records, err := store.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "Billing Issues", rec.Category)
	assert.Equal(t, 2, rec.EntityCount)
	assert.Equal(t, map[string]int{"email": 1, "aadhar_num": 1}, rec.EntityCounts)
	assert.Len(t, rec.MaskedSHA256, 64)
}
