package chatbot

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"befixed/models"

	"go.uber.org/zap"
)

func newTestEngine() *Engine {
	catalog := DefaultCatalog()
	gen := NewGenerator(catalog, rand.New(rand.NewSource(42)))
	return NewEngine(NewMemorySessionStore(), catalog, gen, zap.NewNop())
}

func mustTurn(t *testing.T, e *Engine, sessionID, text string) *models.ChatResponse {
	t.Helper()
	resp, err := e.HandleTurn(context.Background(), sessionID, text)
	if err != nil {
		t.Fatalf("HandleTurn(%q) failed: %v", text, err)
	}
	return resp
}

// The full funnel: greeting, service, description, urgency, location.
func TestEngineEndToEnd(t *testing.T) {
	e := newTestEngine()
	const sid = "e2e"

	resp := mustTurn(t, e, sid, "Hola")
	if resp.Context.Step != models.StepServiceSelection {
		t.Fatalf("turn 1: step = %s, want service_selection", resp.Context.Step)
	}
	if !inBank(greetingBank, resp.Message) {
		t.Errorf("turn 1: reply not from greeting bank: %q", resp.Message)
	}

	resp = mustTurn(t, e, sid, "necesito un electricista")
	if resp.Context.ServiceType == nil || *resp.Context.ServiceType != "electricidad" {
		t.Fatalf("turn 2: serviceType = %v, want electricidad", resp.Context.ServiceType)
	}
	if resp.Context.Step != models.StepProblemDescription {
		t.Fatalf("turn 2: step = %s, want problem_description", resp.Context.Step)
	}

	resp = mustTurn(t, e, sid, "no enciende la luz del pasillo")
	if resp.Context.Description == nil || *resp.Context.Description != "no enciende la luz del pasillo" {
		t.Fatalf("turn 3: description = %v", resp.Context.Description)
	}
	if resp.Context.Step != models.StepUrgencyCheck {
		t.Fatalf("turn 3: step = %s, want urgency_check", resp.Context.Step)
	}
	if !strings.Contains(resp.Message, "urgente") {
		t.Errorf("turn 3: technical urgency prompt must mention urgente: %q", resp.Message)
	}

	resp = mustTurn(t, e, sid, "es urgente")
	if resp.Context.Urgency == nil || *resp.Context.Urgency != "urgente" {
		t.Fatalf("turn 4: urgency = %v, want urgente", resp.Context.Urgency)
	}
	if resp.Context.Step != models.StepLocationRequest {
		t.Fatalf("turn 4: step = %s, want location_request", resp.Context.Step)
	}

	resp = mustTurn(t, e, sid, "estoy en Colonia Centro")
	if resp.Context.Location == nil || *resp.Context.Location != "Colonia Centro" {
		t.Fatalf("turn 5: location = %v, want Colonia Centro", resp.Context.Location)
	}
	if resp.Context.Step != models.StepTechnicianSearch {
		t.Fatalf("turn 5: step = %s, want technician_search", resp.Context.Step)
	}
	for _, want := range []string{"Electricidad", "no enciende la luz del pasillo", "urgente", "Colonia Centro"} {
		if !strings.Contains(resp.Message, want) {
			t.Errorf("turn 5: summary missing %q:\n%s", want, resp.Message)
		}
	}
}

// A first message naming a service skips the service-selection question.
func TestEngineServiceOnFirstTurn(t *testing.T) {
	e := newTestEngine()

	resp := mustTurn(t, e, "fast", "tengo un problema con la plomeria")
	if resp.Context.ServiceType == nil || *resp.Context.ServiceType != "plomeria" {
		t.Fatalf("serviceType = %v, want plomeria", resp.Context.ServiceType)
	}
	if resp.Context.Step != models.StepProblemDescription {
		t.Fatalf("step = %s, want problem_description", resp.Context.Step)
	}
}

// Once a slot is filled, passive extraction on later turns never overwrites it.
func TestEngineSlotMonotonicity(t *testing.T) {
	e := newTestEngine()
	const sid = "slots"

	mustTurn(t, e, sid, "Hola")
	mustTurn(t, e, sid, "necesito un electricista")

	// This message mentions a different service; it is captured verbatim as
	// the description, and serviceType must stay electricidad.
	resp := mustTurn(t, e, sid, "creo que también hay un problema de plomeria")
	if *resp.Context.ServiceType != "electricidad" {
		t.Errorf("serviceType overwritten to %s", *resp.Context.ServiceType)
	}
	if resp.Context.Description == nil || !strings.Contains(*resp.Context.Description, "plomeria") {
		t.Errorf("description not captured verbatim: %v", resp.Context.Description)
	}
}

// The step index never decreases over a session's turns.
func TestEngineStepMonotonicity(t *testing.T) {
	e := newTestEngine()
	const sid = "mono"

	turns := []string{
		"Hola",
		"necesito un plomero",
		"fuga debajo del fregadero",
		"Hola", // greeting mid-funnel must not regress the step
		"puede esperar",
		"estoy en Colonia Roma",
		"gracias",
	}

	prev := -1
	for i, text := range turns {
		resp := mustTurn(t, e, sid, text)
		idx := stepIndex[resp.Context.Step]
		if idx < prev {
			t.Fatalf("turn %d (%q): step regressed to %s", i+1, text, resp.Context.Step)
		}
		prev = idx
	}
}

// The generic follow-up after the funnel completes.
func TestEngineDoneTurn(t *testing.T) {
	e := newTestEngine()
	const sid = "done"

	mustTurn(t, e, sid, "necesito un cerrajero")
	mustTurn(t, e, sid, "se trabó la cerradura")
	mustTurn(t, e, sid, "es urgente")
	resp := mustTurn(t, e, sid, "estoy en Polanco")
	if resp.Context.Step != models.StepTechnicianSearch {
		t.Fatalf("step = %s, want technician_search", resp.Context.Step)
	}

	resp = mustTurn(t, e, sid, "ok")
	if resp.Context.Step != models.StepDone {
		t.Fatalf("step = %s, want done", resp.Context.Step)
	}
}

func TestEngineQuickReplies(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	resp, err := e.SelectService(ctx, "qr", "limpieza")
	if err != nil {
		t.Fatalf("SelectService failed: %v", err)
	}
	if *resp.Context.ServiceType != "limpieza" || resp.Context.Step != models.StepProblemDescription {
		t.Fatalf("unexpected context after selection: %+v", resp.Context)
	}

	// Explicit selection may overwrite, unlike passive extraction.
	resp, err = e.SelectService(ctx, "qr", "pintura")
	if err != nil {
		t.Fatalf("SelectService failed: %v", err)
	}
	if *resp.Context.ServiceType != "pintura" {
		t.Errorf("explicit selection should overwrite, got %s", *resp.Context.ServiceType)
	}

	if _, err := e.SelectService(ctx, "qr", "telepatia"); err == nil {
		t.Error("expected error for unknown service")
	}

	mustTurn(t, e, "qr", "pintar la fachada")
	resp, err = e.SelectUrgency(ctx, "qr", UrgencyNormal)
	if err != nil {
		t.Fatalf("SelectUrgency failed: %v", err)
	}
	if *resp.Context.Urgency != UrgencyNormal || resp.Context.Step != models.StepLocationRequest {
		t.Fatalf("unexpected context after urgency selection: %+v", resp.Context)
	}

	if _, err := e.SelectUrgency(ctx, "qr", "maybe"); err == nil {
		t.Error("expected error for unknown urgency value")
	}
}

func TestEngineHistoryPagination(t *testing.T) {
	e := newTestEngine()
	const sid = "hist"
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		mustTurn(t, e, sid, fmt.Sprintf("mensaje %d", i))
	}

	// 5 turns = 10 messages (user + bot each).
	h, err := e.History(ctx, sid, 4, 1)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if h.TotalCount != 10 || len(h.Messages) != 4 || h.TotalPages != 3 {
		t.Fatalf("unexpected page: total=%d len=%d pages=%d", h.TotalCount, len(h.Messages), h.TotalPages)
	}
	if h.Messages[0].Role != models.RoleUser || h.Messages[1].Role != models.RoleBot {
		t.Error("history should alternate user/bot")
	}

	h, err = e.History(ctx, sid, 4, 3)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(h.Messages) != 2 {
		t.Errorf("last page should hold 2 messages, got %d", len(h.Messages))
	}

	h, err = e.History(ctx, "unseen", 10, 1)
	if err != nil {
		t.Fatalf("History for unseen session failed: %v", err)
	}
	if h.TotalCount != 0 {
		t.Errorf("unseen session should have empty history, got %d", h.TotalCount)
	}
}

func TestEngineResetSession(t *testing.T) {
	e := newTestEngine()
	const sid = "reset"
	ctx := context.Background()

	mustTurn(t, e, sid, "necesito un electricista")
	if err := e.ResetSession(ctx, sid); err != nil {
		t.Fatalf("ResetSession failed: %v", err)
	}

	resp := mustTurn(t, e, sid, "Hola")
	if resp.Context.ServiceType != nil {
		t.Error("reset should clear slots")
	}
	if resp.Context.Step != models.StepServiceSelection {
		t.Errorf("fresh session after reset, got step %s", resp.Context.Step)
	}
}

// Distinct sessions are independent and safe to process in parallel.
func TestEngineConcurrentSessions(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			sid := fmt.Sprintf("conc-%d", n)
			if _, err := e.HandleTurn(ctx, sid, "Hola"); err != nil {
				t.Errorf("session %s: %v", sid, err)
				return
			}
			if _, err := e.HandleTurn(ctx, sid, "necesito un plomero"); err != nil {
				t.Errorf("session %s: %v", sid, err)
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < 20; i++ {
		sid := fmt.Sprintf("conc-%d", i)
		sess, err := e.Store.Get(ctx, sid)
		if err != nil || sess == nil {
			t.Fatalf("session %s missing: %v", sid, err)
		}
		if sess.Context.ServiceType == nil || *sess.Context.ServiceType != "plomeria" {
			t.Errorf("session %s: serviceType = %v", sid, sess.Context.ServiceType)
		}
		if len(sess.History) != 4 {
			t.Errorf("session %s: history len = %d, want 4", sid, len(sess.History))
		}
	}
}
