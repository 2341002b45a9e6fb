package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/GasserElSawaf/UniCloudTest/pkg/logger"
)

// noDataSentinel is the marker the extraction prompt asks the model to
// return when no value for the field is discernible in the user's message.
const noDataSentinel = "no data"

// ServiceConfig carries the closed field-name list, the alias table used to
// resolve free-text field references, and the grounding documents.
type ServiceConfig struct {
	FieldNames   []string
	FieldAliases map[string]string
	// Information grounds university Q&A; RegistrationHelp grounds
	// questions about the registration process itself.
	Information      string
	RegistrationHelp string
}

// Service is the text-understanding capability built on a completion
// client. Model output is free text, so every method folds case and matches
// keywords defensively before trusting it.
type Service struct {
	client Client
	config ServiceConfig
}

func NewService(client Client, config ServiceConfig) *Service {
	return &Service{client: client, config: config}
}

// ExtractValue asks the model for the literal value of fieldName inside
// text. The second return is false when the model reports no discernible
// value; that is a normal outcome, not an error.
func (s *Service) ExtractValue(ctx context.Context, fieldName, text string) (string, bool, error) {
	prompt := fmt.Sprintf(`You are a helpful assistant. The user is being asked to provide their %[1]s for a registration form.
They may include additional text, but you must extract only the %[1]s from their message.
If you cannot find a clear %[1]s, respond with "No data".

Field: %[1]s
User Input: %[2]s

Please return only the exact %[1]s with no additional text, no explanations, and no formatting other than the value itself.`, fieldName, text)
	out, err := s.client.Complete(ctx, prompt)
	if err != nil {
		return "", false, fmt.Errorf("extracting %s: %w", fieldName, err)
	}
	value := strings.TrimSpace(out)
	if value == "" || strings.Contains(strings.ToLower(value), noDataSentinel) {
		return "", false, nil
	}
	return value, true, nil
}

// ClassifyIntent labels a registration-mode turn as a field value, a
// question, or an edit command. Unrecognized model output defaults to
// IntentFieldValue.
func (s *Service) ClassifyIntent(ctx context.Context, text, currentField string) (Intent, error) {
	prompt := fmt.Sprintf(`You are a helpful assistant assisting with student registration. The user is currently being prompted to enter the field: "%s" (if any).

Determine whether the following user input is:
1. A registration field value to be stored.
2. A question that needs to be answered.
3. An edit command to change a previously entered field.

User Input: "%s"

Respond with "field" if it's a registration field value, "question" if it's a question, or "edit" if it's an edit command.`, currentField, text)
	out, err := s.client.Complete(ctx, prompt)
	if err != nil {
		return IntentFieldValue, fmt.Errorf("classifying intent: %w", err)
	}
	label := strings.ToLower(strings.TrimSpace(out))
	logger.FromContext(ctx).Debug("intent classified", "label", label, "current_field", currentField)
	switch {
	case strings.Contains(label, "edit"):
		return IntentEditCmd, nil
	case strings.Contains(label, "question"):
		return IntentQuestion, nil
	default:
		return IntentFieldValue, nil
	}
}

// ResolveFieldReference maps a free-text reference onto one of the
// canonical field names. The model's answer is matched case-insensitively
// against the canonical list first, then against the alias table. The
// second return is false when neither matches.
func (s *Service) ResolveFieldReference(ctx context.Context, text string) (string, bool, error) {
	var names strings.Builder
	for _, name := range s.config.FieldNames {
		fmt.Fprintf(&names, "- %q\n", name)
	}
	prompt := fmt.Sprintf(`You are a helpful assistant assisting with student registration. Your task is to determine which registration field the user wants to edit based on their input.

Here are the available fields:
%s
The user might refer to these fields in various ways, including using abbreviations or partial terms.

User Input: "%s"

Please respond with the exact field name from the list above that the user intends to edit. If the field cannot be determined, respond with "unknown".`, names.String(), text)
	out, err := s.client.Complete(ctx, prompt)
	if err != nil {
		return "", false, fmt.Errorf("resolving field reference: %w", err)
	}
	answer := strings.TrimSpace(strings.Trim(strings.TrimSpace(out), `"`))
	logger.FromContext(ctx).Debug("field reference resolved", "answer", answer)
	for _, name := range s.config.FieldNames {
		if strings.EqualFold(name, answer) {
			return name, true, nil
		}
	}
	if mapped, ok := s.config.FieldAliases[strings.ToLower(answer)]; ok {
		return mapped, true, nil
	}
	return "", false, nil
}

// Answer grounds a one-turn question on the university information
// document, declining when the document lacks the answer.
func (s *Service) Answer(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "Please provide a valid question.", nil
	}
	prompt := fmt.Sprintf(`You are an intelligent assistant. Answer the following question using only the information provided below. If the information does not contain an answer, respond with "The provided information does not contain an answer to this question."

Information: %s
Question: %s`, s.config.Information, question)
	out, err := s.client.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("answering question: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// AnswerProcessQuestion answers a question about the registration process
// itself, grounded on the registration help text and the field currently
// being collected.
func (s *Service) AnswerProcessQuestion(ctx context.Context, question, currentField string) (string, error) {
	prompt := fmt.Sprintf(`You are a helpful assistant that can answer questions about the registration process.
The following information might help:

%s

Current Field: %s

User's question: %s

If you have enough info, answer. If not, respond "I'm sorry, I don't have the information to answer that."`, s.config.RegistrationHelp, currentField, question)
	out, err := s.client.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("answering registration question: %w", err)
	}
	return strings.TrimSpace(out), nil
}
