package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	response string
	err      error
	prompts  []string
}

func (s *stubClient) Complete(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.response, s.err
}

func newTestService(client Client) *Service {
	return NewService(client, ServiceConfig{
		FieldNames: []string{"Student Full Name", "Date of Birth", "Gender", "GPA"},
		FieldAliases: map[string]string{
			"dob":       "Date of Birth",
			"full name": "Student Full Name",
		},
		Information:      "The university was founded in 1990.",
		RegistrationHelp: "Registration requires 14 fields.",
	})
}

func TestServiceExtractValue(t *testing.T) {
	t.Run("Should return the trimmed completion as the value", func(t *testing.T) {
		svc := newTestService(&stubClient{response: "  John Michael Smith \n"})
		value, found, err := svc.ExtractValue(context.Background(), "Student Full Name", "my name is John Michael Smith")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "John Michael Smith", value)
	})
	t.Run("Should report absence on the no-data sentinel", func(t *testing.T) {
		svc := newTestService(&stubClient{response: "No data"})
		_, found, err := svc.ExtractValue(context.Background(), "GPA", "what do you mean")
		require.NoError(t, err)
		assert.False(t, found)
	})
	t.Run("Should report absence on an empty completion", func(t *testing.T) {
		svc := newTestService(&stubClient{response: "   "})
		_, found, err := svc.ExtractValue(context.Background(), "GPA", "hello")
		require.NoError(t, err)
		assert.False(t, found)
	})
	t.Run("Should propagate client errors", func(t *testing.T) {
		svc := newTestService(&stubClient{err: errors.New("boom")})
		_, _, err := svc.ExtractValue(context.Background(), "GPA", "3.5")
		assert.Error(t, err)
	})
}

func TestServiceClassifyIntent(t *testing.T) {
	t.Run("Should detect edit commands by substring", func(t *testing.T) {
		svc := newTestService(&stubClient{response: "This is an EDIT command."})
		intent, err := svc.ClassifyIntent(context.Background(), "change my name", "Gender")
		require.NoError(t, err)
		assert.Equal(t, IntentEditCmd, intent)
	})
	t.Run("Should detect questions by substring", func(t *testing.T) {
		svc := newTestService(&stubClient{response: "question"})
		intent, err := svc.ClassifyIntent(context.Background(), "why do you need this?", "Gender")
		require.NoError(t, err)
		assert.Equal(t, IntentQuestion, intent)
	})
	t.Run("Should default ambiguous output to field value", func(t *testing.T) {
		svc := newTestService(&stubClient{response: "I am not sure what this is"})
		intent, err := svc.ClassifyIntent(context.Background(), "Male", "Gender")
		require.NoError(t, err)
		assert.Equal(t, IntentFieldValue, intent)
	})
	t.Run("Should default empty output to field value", func(t *testing.T) {
		svc := newTestService(&stubClient{response: ""})
		intent, err := svc.ClassifyIntent(context.Background(), "Male", "Gender")
		require.NoError(t, err)
		assert.Equal(t, IntentFieldValue, intent)
	})
}

func TestServiceResolveFieldReference(t *testing.T) {
	t.Run("Should match canonical names case-insensitively", func(t *testing.T) {
		svc := newTestService(&stubClient{response: "date of birth"})
		name, ok, err := svc.ResolveFieldReference(context.Background(), "my birthday")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "Date of Birth", name)
	})
	t.Run("Should fall back to the alias table", func(t *testing.T) {
		svc := newTestService(&stubClient{response: "dob"})
		name, ok, err := svc.ResolveFieldReference(context.Background(), "dob")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "Date of Birth", name)
	})
	t.Run("Should strip quotes from the model answer", func(t *testing.T) {
		svc := newTestService(&stubClient{response: `"GPA"`})
		name, ok, err := svc.ResolveFieldReference(context.Background(), "my gpa")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "GPA", name)
	})
	t.Run("Should return unknown when nothing matches", func(t *testing.T) {
		svc := newTestService(&stubClient{response: "unknown"})
		_, ok, err := svc.ResolveFieldReference(context.Background(), "the thing")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestServiceAnswer(t *testing.T) {
	t.Run("Should short-circuit empty questions without calling the model", func(t *testing.T) {
		client := &stubClient{response: "should not be used"}
		svc := newTestService(client)
		answer, err := svc.Answer(context.Background(), "   ")
		require.NoError(t, err)
		assert.Equal(t, "Please provide a valid question.", answer)
		assert.Empty(t, client.prompts)
	})
	t.Run("Should ground the prompt on the information document", func(t *testing.T) {
		client := &stubClient{response: "Founded in 1990."}
		svc := newTestService(client)
		answer, err := svc.Answer(context.Background(), "When was the university founded?")
		require.NoError(t, err)
		assert.Equal(t, "Founded in 1990.", answer)
		require.Len(t, client.prompts, 1)
		assert.Contains(t, client.prompts[0], "The university was founded in 1990.")
	})
}

func TestServiceAnswerProcessQuestion(t *testing.T) {
	t.Run("Should include help text and current field in the prompt", func(t *testing.T) {
		client := &stubClient{response: "You need 14 fields."}
		svc := newTestService(client)
		answer, err := svc.AnswerProcessQuestion(context.Background(), "how many fields?", "Gender")
		require.NoError(t, err)
		assert.Equal(t, "You need 14 fields.", answer)
		require.Len(t, client.prompts, 1)
		assert.Contains(t, client.prompts[0], "Registration requires 14 fields.")
		assert.Contains(t, client.prompts[0], "Current Field: Gender")
	})
}
