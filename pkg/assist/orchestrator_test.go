package assist

import (
	"context"
	"testing"

	"github.com/harshil12345000/certifyr-sub001/pkg/assist/fields"
	"github.com/harshil12345000/certifyr-sub001/pkg/records"
)

func testEnv() Env {
	return Env{
		Records: []records.Record{
			{"fullName": "Asha Rao", "department": "IT", "gender": "female"},
			{"fullName": "John Smith", "id": "EMP-101", "department": "Sales"},
			{"fullName": "John Doe", "id": "EMP-102", "department": "HR"},
		},
		Templates: []Template{
			{
				ID:             "bonafide-1",
				Name:           "Bonafide Certificate",
				Keywords:       []string{"bonafide"},
				RequiredFields: []string{"fullName", "gender", "department", "purpose", "place"},
			},
			{
				ID:             "experience-1",
				Name:           "Experience Certificate",
				Keywords:       []string{"experience"},
				RequiredFields: []string{"fullName", "department", "designation"},
			},
		},
		Defaults: fields.Defaults{
			Name:  "Riverside College",
			Place: "Chennai",
		},
		IssueDate: "30/08/2026",
	}
}

func TestStepBonafideFlow(t *testing.T) {
	o := NewOrchestrator(nil, nil)
	env := testEnv()
	sess := NewSession()
	ctx := context.Background()

	out := o.Step(ctx, sess, "Create bonafide for Asha", env)
	if out.Type != OutcomeMissingFields {
		t.Fatalf("first turn outcome = %q, want missing_fields", out.Type)
	}
	if out.TemplateID != "bonafide-1" {
		t.Errorf("templateId = %q, want bonafide-1", out.TemplateID)
	}
	if len(out.Missing) != 1 || out.Missing[0] != "purpose" {
		t.Fatalf("missing = %v, want [purpose]", out.Missing)
	}
	wantKnown := map[string]string{
		"fullName":   "Asha Rao",
		"gender":     "female",
		"department": "IT",
	}
	if len(out.Known) != len(wantKnown) {
		t.Fatalf("known = %+v, want exactly %v", out.Known, wantKnown)
	}
	for _, info := range out.Known {
		if wantKnown[info.Name] != info.Value {
			t.Errorf("known %s = %q, want %q", info.Name, info.Value, wantKnown[info.Name])
		}
		if info.Name == "place" {
			t.Errorf("org-resolved field %q surfaced as known person info", info.Name)
		}
	}
	if sess.State != StateCollectingFields {
		t.Errorf("state = %q, want collecting_fields", sess.State)
	}

	out = o.Step(ctx, sess, "passport renewal", env)
	if out.Type != OutcomeReady {
		t.Fatalf("second turn outcome = %q, want ready", out.Type)
	}
	if out.Signal == nil {
		t.Fatal("ready outcome has no generation signal")
	}
	if out.Signal.Fields["purpose"] != "passport renewal" {
		t.Errorf("fields.purpose = %q, want %q", out.Signal.Fields["purpose"], "passport renewal")
	}
	if out.Signal.Fields["place"] != "Chennai" {
		t.Errorf("fields.place = %q, want Chennai", out.Signal.Fields["place"])
	}
	if sess.State != StateAwaitingInput {
		t.Errorf("state after ready = %q, want awaiting_input", sess.State)
	}
}

func TestStepDisambiguation(t *testing.T) {
	o := NewOrchestrator(nil, nil)
	env := testEnv()
	sess := NewSession()
	ctx := context.Background()

	out := o.Step(ctx, sess, "Create experience certificate for John", env)
	if out.Type != OutcomeDisambiguate {
		t.Fatalf("outcome = %q, want disambiguate", out.Type)
	}
	if len(out.Matches) != 2 {
		t.Fatalf("matches = %d, want 2", len(out.Matches))
	}
	if out.Matches[0].Name != "John Smith" || out.Matches[1].Name != "John Doe" {
		t.Errorf("matches out of dataset order: %+v", out.Matches)
	}
	if sess.State != StateDisambiguating {
		t.Errorf("state = %q, want disambiguating", sess.State)
	}

	out = o.Step(ctx, sess, "I'm referring to John Doe", env)
	if out.Type != OutcomeMissingFields {
		t.Fatalf("selection outcome = %q, want missing_fields", out.Type)
	}
	if sess.MatchedName != "John Doe" {
		t.Errorf("matched = %q, want John Doe", sess.MatchedName)
	}
}

func TestStepDisambiguationByID(t *testing.T) {
	o := NewOrchestrator(nil, nil)
	env := testEnv()
	sess := NewSession()
	ctx := context.Background()

	o.Step(ctx, sess, "Create experience certificate for John", env)
	out := o.Step(ctx, sess, "EMP-101", env)
	if out.Type != OutcomeMissingFields {
		t.Fatalf("outcome = %q, want missing_fields", out.Type)
	}
	if sess.MatchedID != "EMP-101" {
		t.Errorf("matched id = %q, want EMP-101", sess.MatchedID)
	}
}

func TestStepIdempotentClassification(t *testing.T) {
	o := NewOrchestrator(nil, nil)
	env := testEnv()
	ctx := context.Background()

	run := func() Outcome {
		sess := NewSession()
		return o.Step(ctx, sess, "Create bonafide for Asha", env)
	}
	first := run()
	second := run()

	if first.Type != second.Type {
		t.Fatalf("outcome type differs: %q vs %q", first.Type, second.Type)
	}
	if len(first.Missing) != len(second.Missing) {
		t.Fatalf("missing differs: %v vs %v", first.Missing, second.Missing)
	}
	for i := range first.Missing {
		if first.Missing[i] != second.Missing[i] {
			t.Errorf("missing[%d] differs: %q vs %q", i, first.Missing[i], second.Missing[i])
		}
	}
}

func TestStepNewRequestResets(t *testing.T) {
	o := NewOrchestrator(nil, nil)
	env := testEnv()
	sess := NewSession()
	ctx := context.Background()

	o.Step(ctx, sess, "Create bonafide for Asha", env)
	sess.Collected["purpose"] = "passport renewal"

	out := o.Step(ctx, sess, "Create experience certificate for John Smith", env)
	if out.Type != OutcomeMissingFields {
		t.Fatalf("outcome = %q, want missing_fields", out.Type)
	}
	if sess.MatchedName != "John Smith" {
		t.Errorf("matched = %q, want John Smith", sess.MatchedName)
	}
	if len(sess.Collected) != 0 && sess.Collected["purpose"] != "" {
		t.Errorf("collected fields survived an explicit new request: %v", sess.Collected)
	}
	if out.TemplateID != "experience-1" {
		t.Errorf("templateId = %q, want experience-1", out.TemplateID)
	}
}

func TestStepCollectingAnswerWithVerbWords(t *testing.T) {
	o := NewOrchestrator(nil, nil)
	env := testEnv()
	sess := NewSession()
	ctx := context.Background()

	out := o.Step(ctx, sess, "Create bonafide for Asha", env)
	if out.Type != OutcomeMissingFields {
		t.Fatalf("first turn outcome = %q, want missing_fields", out.Type)
	}

	// A capitalized free-text answer containing "make" must merge into
	// the open field, not start a new request for "Count".
	out = o.Step(ctx, sess, "Make It Count", env)
	if out.Type != OutcomeReady {
		t.Fatalf("answer outcome = %q, want ready", out.Type)
	}
	if out.Signal.Fields["purpose"] != "Make It Count" {
		t.Errorf("fields.purpose = %q, want the verbatim answer", out.Signal.Fields["purpose"])
	}
	if out.Signal.Fields["fullName"] != "Asha Rao" {
		t.Errorf("fields.fullName = %q, matched person was lost mid-collection", out.Signal.Fields["fullName"])
	}
}

func TestStepCollectingAnswerKeepsTemplate(t *testing.T) {
	o := NewOrchestrator(nil, nil)
	env := testEnv()
	sess := NewSession()
	ctx := context.Background()

	o.Step(ctx, sess, "Create bonafide for Asha", env)

	// "experience" is another template's keyword; an answer mentioning it
	// must not switch the template mid-collection.
	out := o.Step(ctx, sess, "gaining work experience abroad", env)
	if out.Type != OutcomeReady {
		t.Fatalf("answer outcome = %q, want ready", out.Type)
	}
	if out.Signal.TemplateID != "bonafide-1" {
		t.Errorf("signal templateId = %q, want bonafide-1", out.Signal.TemplateID)
	}
	if out.Signal.Fields["purpose"] != "gaining work experience abroad" {
		t.Errorf("fields.purpose = %q, want the verbatim answer", out.Signal.Fields["purpose"])
	}
}

func TestStepLabelledAnswers(t *testing.T) {
	o := NewOrchestrator(nil, nil)
	env := testEnv()
	env.Templates = []Template{{
		ID:             "noc-1",
		Name:           "NOC",
		Keywords:       []string{"noc"},
		RequiredFields: []string{"fullName", "purpose", "destination"},
	}}
	sess := NewSession()
	ctx := context.Background()

	out := o.Step(ctx, sess, "Create NOC for Asha Rao", env)
	if out.Type != OutcomeMissingFields || len(out.Missing) != 2 {
		t.Fatalf("outcome = %q missing=%v, want missing_fields with 2 fields", out.Type, out.Missing)
	}

	out = o.Step(ctx, sess, "Purpose: visa application\nDestination: Germany", env)
	if out.Type != OutcomeReady {
		t.Fatalf("outcome = %q, want ready", out.Type)
	}
	if out.Signal.Fields["purpose"] != "visa application" || out.Signal.Fields["destination"] != "Germany" {
		t.Errorf("merged fields = %v", out.Signal.Fields)
	}
}

func TestStepNoDatasetFallsBackToManualCollection(t *testing.T) {
	o := NewOrchestrator(nil, nil)
	env := testEnv()
	env.Records = nil
	sess := NewSession()
	ctx := context.Background()

	out := o.Step(ctx, sess, "Create bonafide certificate", env)
	if out.Type != OutcomeMissingFields {
		t.Fatalf("outcome = %q, want missing_fields", out.Type)
	}
	// Everything person-level is missing; org defaults still resolve.
	want := map[string]bool{"fullName": true, "gender": true, "department": true, "purpose": true}
	if len(out.Missing) != len(want) {
		t.Fatalf("missing = %v, want person fields only", out.Missing)
	}
	for _, name := range out.Missing {
		if !want[name] {
			t.Errorf("unexpected missing field %q", name)
		}
	}
}

func TestStepNonDocumentMessage(t *testing.T) {
	o := NewOrchestrator(nil, nil)
	env := testEnv()
	sess := NewSession()

	out := o.Step(context.Background(), sess, "hello there", env)
	if out.Type != OutcomeMessage {
		t.Fatalf("outcome = %q, want message", out.Type)
	}
	if sess.State != StateAwaitingInput {
		t.Errorf("state = %q, want awaiting_input", sess.State)
	}
}
