package assist

import (
	"context"
	"log"
	"regexp"
	"strings"

	"github.com/harshil12345000/certifyr-sub001/pkg/assist/extract"
	"github.com/harshil12345000/certifyr-sub001/pkg/assist/fields"
	"github.com/harshil12345000/certifyr-sub001/pkg/assist/match"
	"github.com/harshil12345000/certifyr-sub001/pkg/records"
)

// Template identifies a document template and the canonical fields it
// needs filled before generation.
type Template struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Keywords       []string `json:"keywords,omitempty"`
	RequiredFields []string `json:"requiredFields"`
}

// Env is the per-turn snapshot of everything a turn reads: the org's
// person dataset, its template catalog, org-level defaults, and the
// issue date in the user's context. The orchestrator never mutates it.
type Env struct {
	Records   []records.Record
	Templates []Template
	Defaults  fields.Defaults
	IssueDate string
}

// Messenger renders the user-facing text for each outcome. Structured
// payloads stay deterministic; only the prose goes through here.
type Messenger interface {
	Disambiguation(ctx context.Context, matches []records.Summary) string
	MissingFields(ctx context.Context, templateName string, known []fields.FieldInfo, missing []string) string
	Ready(ctx context.Context, templateName, personName string) string
	Fallback(ctx context.Context, message string) string
	NotFound(ctx context.Context, name string) string
}

// Orchestrator drives the per-turn state machine: lookup, disambiguate,
// collect missing fields, signal readiness.
type Orchestrator struct {
	messenger Messenger
	logger    *log.Logger
}

func NewOrchestrator(messenger Messenger, logger *log.Logger) *Orchestrator {
	if logger == nil {
		logger = log.Default()
	}
	return &Orchestrator{messenger: messenger, logger: logger}
}

var newRequestVerb = regexp.MustCompile(`(?i)\b(create|generate|make|issue|draft)\b`)

// Step processes one user message against the session and environment,
// mutating the session and returning the turn's outcome. The caller
// persists the session and must serialize concurrent turns for the same
// conversation.
func (o *Orchestrator) Step(ctx context.Context, sess *Session, message string, env Env) Outcome {
	msg := strings.TrimSpace(message)
	if sess.Collected == nil {
		sess.Collected = make(map[string]string)
	}
	if sess.State == "" {
		sess.State = StateAwaitingInput
	}
	if msg == "" {
		return o.fallback(ctx, msg)
	}

	hasRecords := len(env.Records) > 0

	// An explicit create/generate request naming a different person
	// abandons the current flow, whatever state it is in. A looser
	// capitalized-word hit only counts when it resolves to a record
	// other than the matched one; collecting-state answers that merely
	// contain a verb word must never tear the session down.
	reset := false
	if name := extract.Extract(msg, hasRecords); name != "" &&
		sess.MatchedName != "" &&
		!strings.EqualFold(name, sess.MatchedName) &&
		newRequestVerb.MatchString(msg) &&
		o.confirmsNewRequest(sess, msg, name, env) {
		o.logger.Printf("assist: new request for %q resets session (was %q)", name, sess.MatchedName)
		sess.Reset()
		reset = true
	}

	// Answer values may mention another template's keyword; keyword
	// detection stays off while collecting unless the flow restarted.
	if sess.State != StateCollectingFields || reset {
		if tmpl := detectTemplate(env.Templates, msg); tmpl != nil {
			sess.TemplateID = tmpl.ID
		}
	}

	switch sess.State {
	case StateDisambiguating:
		return o.stepDisambiguating(ctx, sess, msg, env)
	case StateCollectingFields:
		return o.stepCollecting(ctx, sess, msg, env)
	default:
		return o.stepAwaiting(ctx, sess, msg, env)
	}
}

// confirmsNewRequest decides whether a verb-bearing message naming
// someone other than the matched person really starts a new request:
// either the person was named through an explicit document/create
// phrasing, or the candidate resolves cleanly to a different record.
func (o *Orchestrator) confirmsNewRequest(sess *Session, msg, name string, env Env) bool {
	if extract.ExplicitRequest(msg) != "" {
		return true
	}
	result := match.Resolve(env.Records, name)
	return result.Type == match.ResultExact &&
		!strings.EqualFold(records.Name(result.Record), sess.MatchedName)
}

func (o *Orchestrator) stepAwaiting(ctx context.Context, sess *Session, msg string, env Env) Outcome {
	name := extract.Extract(msg, len(env.Records) > 0)

	if name == "" {
		// No lookup in this message; continue with the already
		// matched person, or collect everything manually when a
		// template is in play.
		if sess.MatchedName != "" || sess.TemplateID != "" {
			return o.reconcile(ctx, sess, env)
		}
		return o.fallback(ctx, msg)
	}

	result := match.Resolve(env.Records, name)
	switch result.Type {
	case match.ResultExact:
		o.adopt(sess, result.Record)
		return o.reconcile(ctx, sess, env)
	case match.ResultDisambiguate:
		sess.State = StateDisambiguating
		sess.CandidateName = name
		return o.disambiguate(ctx, result.Matches)
	default:
		if sess.TemplateID != "" {
			// No record matched; fall back to collecting every
			// required field from the user.
			sess.MatchedName = ""
			sess.MatchedID = ""
			return o.reconcile(ctx, sess, env)
		}
		return Outcome{
			Type: OutcomeMessage,
			Text: o.notFound(ctx, name),
		}
	}
}

func (o *Orchestrator) stepDisambiguating(ctx context.Context, sess *Session, msg string, env Env) Outcome {
	result := match.Resolve(env.Records, sess.CandidateName)
	candidates := result.Matches
	if result.Type == match.ResultExact {
		candidates = []records.Record{result.Record}
	}

	// Selection by id takes precedence over name phrasing.
	for _, rec := range candidates {
		if id := records.ID(rec); id != "" && strings.EqualFold(strings.TrimSpace(msg), id) {
			return o.selectCandidate(ctx, sess, rec, env)
		}
	}

	if name := extract.Extract(msg, true); name != "" {
		refined := match.Resolve(candidates, name)
		switch refined.Type {
		case match.ResultExact:
			return o.selectCandidate(ctx, sess, refined.Record, env)
		case match.ResultDisambiguate:
			return o.disambiguate(ctx, refined.Matches)
		}
		// A name that matches none of the candidates may be a brand
		// new lookup.
		fresh := match.Resolve(env.Records, name)
		switch fresh.Type {
		case match.ResultExact:
			return o.selectCandidate(ctx, sess, fresh.Record, env)
		case match.ResultDisambiguate:
			sess.CandidateName = name
			return o.disambiguate(ctx, fresh.Matches)
		}
	}

	// Still ambiguous; re-present the candidate list.
	return o.disambiguate(ctx, candidates)
}

func (o *Orchestrator) stepCollecting(ctx context.Context, sess *Session, msg string, env Env) Outcome {
	// A message that independently looks like a new lookup is treated
	// as one; answer-like messages never reach here as names, so plain
	// answers such as "passport renewal" fall through to merging.
	if name := extract.Extract(msg, len(env.Records) > 0); name != "" {
		result := match.Resolve(env.Records, name)
		switch result.Type {
		case match.ResultExact:
			o.adopt(sess, result.Record)
			return o.reconcile(ctx, sess, env)
		case match.ResultDisambiguate:
			sess.State = StateDisambiguating
			sess.CandidateName = name
			return o.disambiguate(ctx, result.Matches)
		}
	}

	mergeAnswers(sess, msg)
	return o.reconcile(ctx, sess, env)
}

// mergeAnswers folds the user's reply into the collected field values.
// "Label: value" lines map onto the outstanding fields by label; a bare
// reply while exactly one field is outstanding becomes that field's
// value.
func mergeAnswers(sess *Session, msg string) {
	merged := false
	for _, line := range strings.Split(msg, "\n") {
		label, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if field := matchField(sess.Missing, label); field != "" {
			sess.Collected[field] = value
			merged = true
		}
	}
	if !merged && len(sess.Missing) == 1 && !strings.Contains(msg, "\n") {
		sess.Collected[sess.Missing[0]] = msg
	}
}

// matchField maps a user-written label onto one of the outstanding
// canonical field names, tolerating spacing, casing, and the humanized
// display form.
func matchField(missing []string, label string) string {
	key := flatten(label)
	if key == "" {
		return ""
	}
	for _, field := range missing {
		if flatten(field) == key || flatten(fields.Label(field)) == key {
			return field
		}
	}
	return ""
}

func flatten(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r == ' ' || r == '_' || r == '-' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (o *Orchestrator) selectCandidate(ctx context.Context, sess *Session, rec records.Record, env Env) Outcome {
	o.adopt(sess, rec)
	sess.CandidateName = ""
	return o.reconcile(ctx, sess, env)
}

func (o *Orchestrator) adopt(sess *Session, rec records.Record) {
	sess.MatchedName = records.Name(rec)
	sess.MatchedID = records.ID(rec)
}

// reconcile runs field reconciliation against the current template and
// matched record, transitioning to collecting or ready.
func (o *Orchestrator) reconcile(ctx context.Context, sess *Session, env Env) Outcome {
	tmpl := templateByID(env.Templates, sess.TemplateID)
	if tmpl == nil {
		sess.State = StateAwaitingInput
		return o.fallback(ctx, "")
	}

	rec := findRecord(env.Records, sess.MatchedID, sess.MatchedName)
	res := fields.Reconcile(tmpl.RequiredFields, rec, env.Defaults, sess.Collected, env.IssueDate)

	if res.Ready() {
		sess.State = StateAwaitingInput
		sess.Missing = nil
		out := Outcome{
			Type:       OutcomeReady,
			TemplateID: tmpl.ID,
			Known:      res.Known,
			Flagged:    res.Flagged,
			Signal: &GenerationSignal{
				TemplateID: tmpl.ID,
				Fields:     res.Fields,
			},
		}
		if o.messenger != nil {
			out.Text = o.messenger.Ready(ctx, tmpl.Name, sess.MatchedName)
		}
		return out
	}

	sess.State = StateCollectingFields
	sess.Missing = res.Missing
	out := Outcome{
		Type:       OutcomeMissingFields,
		TemplateID: tmpl.ID,
		Known:      res.Known,
		Missing:    res.Missing,
		Flagged:    res.Flagged,
	}
	if o.messenger != nil {
		out.Text = o.messenger.MissingFields(ctx, tmpl.Name, res.Known, res.Missing)
	}
	return out
}

func (o *Orchestrator) disambiguate(ctx context.Context, matches []records.Record) Outcome {
	summaries := make([]records.Summary, 0, len(matches))
	for _, rec := range matches {
		summaries = append(summaries, records.Summarize(rec))
	}
	out := Outcome{
		Type:    OutcomeDisambiguate,
		Matches: summaries,
	}
	if o.messenger != nil {
		out.Text = o.messenger.Disambiguation(ctx, summaries)
	}
	return out
}

func (o *Orchestrator) fallback(ctx context.Context, msg string) Outcome {
	out := Outcome{Type: OutcomeMessage}
	if o.messenger != nil {
		out.Text = o.messenger.Fallback(ctx, msg)
	}
	return out
}

func (o *Orchestrator) notFound(ctx context.Context, name string) string {
	if o.messenger != nil {
		return o.messenger.NotFound(ctx, name)
	}
	return ""
}

// detectTemplate picks the template referenced by the message, matching
// on template name or configured keywords.
func detectTemplate(templates []Template, msg string) *Template {
	lower := strings.ToLower(msg)
	for i := range templates {
		t := &templates[i]
		if t.Name != "" && strings.Contains(lower, strings.ToLower(t.Name)) {
			return t
		}
		for _, kw := range t.Keywords {
			if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
				return t
			}
		}
	}
	return nil
}

func templateByID(templates []Template, id string) *Template {
	if id == "" {
		return nil
	}
	for i := range templates {
		if templates[i].ID == id {
			return &templates[i]
		}
	}
	return nil
}

// findRecord re-locates the matched record in the current dataset
// snapshot, by id when available, otherwise by exact name. Returns nil
// when nothing matches; reconciliation then treats every person field
// as user-collectable.
func findRecord(recs []records.Record, id, name string) records.Record {
	if id != "" {
		for _, rec := range recs {
			if strings.EqualFold(records.ID(rec), id) {
				return rec
			}
		}
	}
	if name != "" {
		for _, rec := range recs {
			if strings.EqualFold(records.Name(rec), name) {
				return rec
			}
		}
	}
	return nil
}
