package response

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/harshil12345000/certifyr-sub001/pkg/assist/fields"
	"github.com/harshil12345000/certifyr-sub001/pkg/llm"
	"github.com/harshil12345000/certifyr-sub001/pkg/records"
)

// AdaptiveMessenger renders the assistant's prose for each structured
// outcome. Wording goes through the LLM so it adapts to the user's
// phrasing; every method has a deterministic fallback so the pipeline
// never depends on the model being up. A nil provider skips the LLM
// entirely.
type AdaptiveMessenger struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewAdaptiveMessenger(llmProvider llm.LLMProvider, logger *log.Logger) *AdaptiveMessenger {
	if logger == nil {
		logger = log.Default()
	}
	return &AdaptiveMessenger{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Disambiguation asks the user to pick one of several matching people.
func (m *AdaptiveMessenger) Disambiguation(ctx context.Context, matches []records.Summary) string {
	fallback := m.fallbackDisambiguation(matches)
	if m.llmProvider == nil {
		return fallback
	}

	var list strings.Builder
	for i, s := range matches {
		list.WriteString(fmt.Sprintf("%d. %s", i+1, s.Name))
		if s.ID != "" {
			list.WriteString(fmt.Sprintf(" (ID: %s)", s.ID))
		}
		if s.Department != "" {
			list.WriteString(fmt.Sprintf(" - %s", s.Department))
		}
		list.WriteString("\n")
	}

	prompt := fmt.Sprintf(`<task>
Generate a brief clarification message for a document assistant.

CONTEXT:
- Several people in the organization match the requested name
- The user must pick one before the document can be prepared

PEOPLE FOUND:
%s
REQUIREMENTS:
1. Be concise (1-2 sentences before the list)
2. Present the numbered list exactly as given
3. Ask the user to reply with the person's name or ID

Generate the message now:
</task>`, list.String())

	text, err := m.llmProvider.Generate(ctx, prompt)
	if err != nil {
		m.logger.Printf("[WARN] disambiguation message generation failed: %v", err)
		return fallback
	}
	return text
}

// MissingFields summarizes what is already known and asks for every
// outstanding field in one message.
func (m *AdaptiveMessenger) MissingFields(ctx context.Context, templateName string, known []fields.FieldInfo, missing []string) string {
	fallback := m.fallbackMissingFields(templateName, known, missing)
	if m.llmProvider == nil {
		return fallback
	}

	var knownList strings.Builder
	for _, f := range known {
		knownList.WriteString(fmt.Sprintf("- %s: %s\n", f.Label, f.Value))
	}
	var missingList strings.Builder
	for _, name := range missing {
		missingList.WriteString(fmt.Sprintf("- %s\n", fields.Label(name)))
	}

	prompt := fmt.Sprintf(`<task>
Generate a brief message for a document assistant collecting form fields.

CONTEXT:
- Preparing a "%s" document
- Some fields are already filled in, listed under KNOWN
- The fields under NEEDED must all be asked for in this one message

KNOWN:
%s
NEEDED:
%s
REQUIREMENTS:
1. Briefly confirm what is already known
2. Ask for ALL needed fields together, as one list, not one at a time
3. Suggest answering as "Field: value" lines
4. Keep it short

Generate the message now:
</task>`, templateName, knownList.String(), missingList.String())

	text, err := m.llmProvider.Generate(ctx, prompt)
	if err != nil {
		m.logger.Printf("[WARN] missing-fields message generation failed: %v", err)
		return fallback
	}
	return text
}

// Ready announces that the document can be generated.
func (m *AdaptiveMessenger) Ready(ctx context.Context, templateName, personName string) string {
	// Deterministic on purpose: this text sits next to a machine
	// signal and should not vary between runs.
	if personName != "" {
		return fmt.Sprintf("All details for the %s are in place for %s. Generating the document now.", templateName, personName)
	}
	return fmt.Sprintf("All details for the %s are in place. Generating the document now.", templateName)
}

// NotFound tells the user no record matched the requested name.
func (m *AdaptiveMessenger) NotFound(ctx context.Context, name string) string {
	fallback := fmt.Sprintf("I couldn't find anyone named %q in your organization's records. Check the spelling, or upload the person's data first.", name)
	if m.llmProvider == nil {
		return fallback
	}

	prompt := fmt.Sprintf(`<task>
Generate a brief "person not found" message for a document assistant.

CONTEXT:
- The user asked for a document for "%s"
- No record in the organization's uploaded data matches that name

REQUIREMENTS:
1. Suggest checking the spelling or uploading the person's data
2. Keep it to 1-2 sentences

Generate the message now:
</task>`, name)

	text, err := m.llmProvider.Generate(ctx, prompt)
	if err != nil {
		m.logger.Printf("[WARN] not-found message generation failed: %v", err)
		return fallback
	}
	return text
}

// Fallback handles turns that are not a document request.
func (m *AdaptiveMessenger) Fallback(ctx context.Context, message string) string {
	fallback := "I can help you prepare official documents. Tell me which document you need and for whom, e.g. \"Create a bonafide certificate for Asha Rao\"."
	if m.llmProvider == nil || strings.TrimSpace(message) == "" {
		return fallback
	}

	prompt := fmt.Sprintf(`<task>
You are a document assistant for an organization. The user said:

"%s"

This is not a document request you can act on. Reply helpfully in 1-2
sentences and remind them you can prepare official documents (e.g.
"Create a bonafide certificate for Asha Rao").

Generate the reply now:
</task>`, message)

	text, err := m.llmProvider.Generate(ctx, prompt)
	if err != nil {
		m.logger.Printf("[WARN] fallback message generation failed: %v", err)
		return fallback
	}
	return text
}

func (m *AdaptiveMessenger) fallbackDisambiguation(matches []records.Summary) string {
	var b strings.Builder
	b.WriteString("I found several people with that name. Who did you mean?\n")
	for i, s := range matches {
		b.WriteString(fmt.Sprintf("%d. %s", i+1, s.Name))
		if s.ID != "" {
			b.WriteString(fmt.Sprintf(" (ID: %s)", s.ID))
		}
		if s.Department != "" {
			b.WriteString(fmt.Sprintf(" - %s", s.Department))
		}
		b.WriteString("\n")
	}
	b.WriteString("\nReply with the person's name or ID.")
	return b.String()
}

func (m *AdaptiveMessenger) fallbackMissingFields(templateName string, known []fields.FieldInfo, missing []string) string {
	var b strings.Builder
	if len(known) > 0 {
		b.WriteString("Here's what I already have:\n")
		for _, f := range known {
			b.WriteString(fmt.Sprintf("- %s: %s\n", f.Label, f.Value))
		}
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("To finish the %s I still need:\n", templateName))
	for _, name := range missing {
		b.WriteString(fmt.Sprintf("- %s\n", fields.Label(name)))
	}
	b.WriteString("\nPlease send them as \"Field: value\" lines.")
	return b.String()
}
