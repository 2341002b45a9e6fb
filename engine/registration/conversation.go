package registration

import (
	"context"
	"fmt"
	"strings"

	"github.com/GasserElSawaf/UniCloudTest/engine/llm"
	"github.com/GasserElSawaf/UniCloudTest/pkg/logger"
)

// Understanding is the language-service surface the conversation needs.
// Implementations return structured outcomes; all keyword post-processing
// of model output lives behind this interface.
type Understanding interface {
	Extractor
	ClassifyIntent(ctx context.Context, text, currentField string) (llm.Intent, error)
	ResolveFieldReference(ctx context.Context, text string) (string, bool, error)
	AnswerProcessQuestion(ctx context.Context, question, currentField string) (string, error)
}

const (
	completedReply   = "Your registration is already completed."
	transientReply   = "I'm having trouble processing that right now. Please try again."
	saveFailureReply = "Error saving registration. Please try again."
	finalizedReply   = "Thank you for your registration! Your details have been saved."
	unknownEditReply = "I'm sorry, I couldn't identify which field you want to edit."
	reprompt         = "Please respond with 'edit' to make changes or 'finalize' to complete your registration."
)

var editKeywords = map[string]bool{
	"edit": true, "yes": true, "i want to edit": true, "change": true, "modify": true,
}

var finalizeKeywords = map[string]bool{
	"finalize": true, "no": true, "no thanks": true, "finish": true, "complete": true,
}

// Conversation sequences field collection for registration sessions and
// dispatches each turn to the intent router, field pipeline, or edit flow.
type Conversation struct {
	schema   Schema
	registry *Registry
	pipeline *Pipeline
	svc      Understanding
	repo     Repository
}

func NewConversation(schema Schema, registry *Registry, svc Understanding, repo Repository) *Conversation {
	return &Conversation{
		schema:   schema,
		registry: registry,
		pipeline: NewPipeline(svc),
		svc:      svc,
		repo:     repo,
	}
}

// HandleTurn processes one registration-mode turn and returns the reply.
// Turns for the same session id are serialized by the registry. Language
// service and persistence failures surface as recoverable replies with the
// session state left untouched.
func (c *Conversation) HandleTurn(ctx context.Context, sessionID, text string) string {
	var answer string
	c.registry.Do(sessionID, func(s *Session) {
		answer = c.handle(ctx, s, text)
	})
	return answer
}

func (c *Conversation) handle(ctx context.Context, s *Session, text string) string {
	switch s.State() {
	case StateCompleted:
		return completedReply
	case StateEditing:
		return c.handleEdit(ctx, s, text)
	case StateAwaitingFinalization:
		return c.handleFinalization(ctx, s, text)
	default:
		return c.handleCollecting(ctx, s, text)
	}
}

func (c *Conversation) handleCollecting(ctx context.Context, s *Session, text string) string {
	log := logger.FromContext(ctx)
	if s.FieldCursor >= len(c.schema) {
		return c.summaryPrompt(s)
	}
	field := c.schema[s.FieldCursor]
	intent, err := c.svc.ClassifyIntent(ctx, text, field.Name)
	if err != nil {
		log.Error("intent classification failed", "session_id", s.ID, "error", err)
		return transientReply
	}
	switch intent {
	case llm.IntentQuestion:
		answer, err := c.svc.AnswerProcessQuestion(ctx, text, field.Name)
		if err != nil {
			log.Error("registration question failed", "session_id", s.ID, "error", err)
			return transientReply
		}
		return answer
	case llm.IntentEditCmd:
		return c.beginEdit(ctx, s, text)
	default:
		return c.collectField(ctx, s, field, text)
	}
}

func (c *Conversation) collectField(ctx context.Context, s *Session, field FieldDefinition, text string) string {
	log := logger.FromContext(ctx)
	if strings.TrimSpace(text) == "" {
		return fmt.Sprintf("Please provide your %s.", field.Name)
	}
	result, err := c.pipeline.Process(ctx, field, text)
	if err != nil {
		log.Error("field pipeline failed", "session_id", s.ID, "field", field.Name, "error", err)
		return transientReply
	}
	if !result.Valid {
		return fmt.Sprintf("Invalid input for %s: %s Please try again.", field.Name, result.Message)
	}
	s.Collected[field.Name] = result.Value
	s.FieldCursor++
	log.Info("field collected", "session_id", s.ID, "field", field.Name, "cursor", s.FieldCursor)
	return c.advancePrompt(s)
}

// handleEdit treats the turn's text as the replacement value for the field
// being edited. The cursor does not move; a failed attempt stays in the
// editing state.
func (c *Conversation) handleEdit(ctx context.Context, s *Session, text string) string {
	log := logger.FromContext(ctx)
	field, ok := c.schema.ByName(s.EditingField)
	if !ok {
		// EditingField is only ever set from schema names; reset defensively.
		s.EditingField = ""
		return c.currentPrompt(s)
	}
	result, err := c.pipeline.Process(ctx, field, text)
	if err != nil {
		log.Error("edit pipeline failed", "session_id", s.ID, "field", field.Name, "error", err)
		return transientReply
	}
	if !result.Valid {
		return fmt.Sprintf("Invalid input for %s: %s Please try again.", field.Name, result.Message)
	}
	s.Collected[field.Name] = result.Value
	s.EditingField = ""
	log.Info("field edited", "session_id", s.ID, "field", field.Name)
	// Confirm the edited field explicitly instead of echoing the
	// schema-order previous field, which is unrelated after an
	// out-of-order edit.
	return fmt.Sprintf("%s updated to %s.\n\n%s", field.Name, result.Value, c.currentPrompt(s))
}

func (c *Conversation) handleFinalization(ctx context.Context, s *Session, text string) string {
	log := logger.FromContext(ctx)
	input := strings.ToLower(strings.TrimSpace(text))
	switch {
	case editKeywords[input]:
		return "Please specify which field you would like to edit."
	case finalizeKeywords[input]:
		return c.finalize(ctx, s)
	}
	intent, err := c.svc.ClassifyIntent(ctx, text, "")
	if err != nil {
		log.Error("intent classification failed", "session_id", s.ID, "error", err)
		return transientReply
	}
	if intent == llm.IntentEditCmd {
		return c.beginEdit(ctx, s, text)
	}
	return reprompt
}

// beginEdit resolves the referenced field and gates the edit: only fields
// that already hold a value may be edited.
func (c *Conversation) beginEdit(ctx context.Context, s *Session, text string) string {
	log := logger.FromContext(ctx)
	name, ok, err := c.svc.ResolveFieldReference(ctx, text)
	if err != nil {
		log.Error("field reference resolution failed", "session_id", s.ID, "error", err)
		return transientReply
	}
	if !ok {
		return unknownEditReply
	}
	if _, filled := s.Collected[name]; !filled {
		return fmt.Sprintf("The field '%s' has not been filled yet. You can only edit fields that have been provided.", name)
	}
	s.EditingField = name
	return fmt.Sprintf("You want to edit %s. Please provide the new value.", name)
}

func (c *Conversation) finalize(ctx context.Context, s *Session) string {
	log := logger.FromContext(ctx)
	record := &Record{SessionID: s.ID, Fields: s.Snapshot()}
	if err := c.repo.Upsert(ctx, record); err != nil {
		// Stay in awaiting-finalization so the user can retry; the upsert
		// is idempotent.
		log.Error("failed to persist registration", "session_id", s.ID, "error", err)
		return saveFailureReply
	}
	s.Completed = true
	s.AwaitingFinalization = false
	log.Info("registration finalized", "session_id", s.ID, "fields", len(record.Fields))
	return finalizedReply
}

// advancePrompt asks for the field at the cursor, echoing the value just
// stored for the previous field as an implicit confirmation.
func (c *Conversation) advancePrompt(s *Session) string {
	if s.FieldCursor >= len(c.schema) {
		return c.summaryPrompt(s)
	}
	field := c.schema[s.FieldCursor]
	if s.FieldCursor > 0 {
		previous := c.schema[s.FieldCursor-1]
		value, ok := s.Collected[previous.Name]
		if !ok {
			value = "No value saved"
		}
		return fmt.Sprintf("%s: %s,\nPlease provide your %s.", previous.Name, value, field.Name)
	}
	return fmt.Sprintf("Please provide your %s.", field.Name)
}

// currentPrompt re-asks the cursor field without the previous-field echo.
func (c *Conversation) currentPrompt(s *Session) string {
	if s.FieldCursor >= len(c.schema) {
		return c.summaryPrompt(s)
	}
	return fmt.Sprintf("Please provide your %s.", c.schema[s.FieldCursor].Name)
}

// summaryPrompt emits the collected values in schema order and asks the
// user to edit or finalize.
func (c *Conversation) summaryPrompt(s *Session) string {
	s.AwaitingFinalization = true
	var lines []string
	for _, field := range c.schema {
		if value, ok := s.Collected[field.Name]; ok {
			lines = append(lines, fmt.Sprintf("**%s:** %s", field.Name, value))
		}
	}
	return fmt.Sprintf(
		"Registration completed!\n\nSummary:\nHere is a summary of the registration details for the student:\n%s\n\n"+
			"Do you want to edit anything on the data or finalize the registration? "+
			"(Type 'edit' to make changes or 'finalize' to complete)",
		strings.Join(lines, "\n"),
	)
}
