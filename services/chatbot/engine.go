// File: services/chatbot/engine.go
package chatbot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"befixed/models"

	"go.uber.org/zap"
)

// Engine orchestrates one conversation turn: it loads or creates the session,
// runs intent recognition, merges slots, advances the funnel and asks the
// generator for the reply. Turns on the same session are serialized; distinct
// sessions run concurrently.
type Engine struct {
	Store      SessionStore
	Catalog    *Catalog
	Recognizer *Recognizer
	Generator  *Generator
	Logger     *zap.Logger

	locks sync.Map // sessionID -> *sync.Mutex
}

// NewEngine wires an engine over the given store and catalog.
func NewEngine(store SessionStore, catalog *Catalog, gen *Generator, logger *zap.Logger) *Engine {
	return &Engine{
		Store:      store,
		Catalog:    catalog,
		Recognizer: &Recognizer{Catalog: catalog},
		Generator:  gen,
		Logger:     logger,
	}
}

// HandleTurn processes one user message for the given session. Unseen session
// ids start a fresh conversation; recognition misses never fail a turn, the
// only error source is the session store.
func (e *Engine) HandleTurn(ctx context.Context, sessionID, text string) (*models.ChatResponse, error) {
	mu := e.sessionLock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	sess, err := e.loadOrCreate(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sess.History = append(sess.History, models.ChatMessage{Role: models.RoleUser, Text: text, Timestamp: now})

	intent, ents := e.Recognizer.Recognize(text)

	// Passive entity merge: first write wins. A later message never
	// overwrites an already-filled slot through extraction alone.
	if ents.ServiceType != nil && sess.Context.ServiceType == nil {
		sess.Context.ServiceType = ents.ServiceType
	}
	if ents.Urgency != nil && sess.Context.Urgency == nil {
		sess.Context.Urgency = ents.Urgency
	}
	if ents.Location != nil && sess.Context.Location == nil {
		sess.Context.Location = ents.Location
	}

	// Step-specific free-text capture into the slot the current step is
	// asking for, verbatim, and only if still empty.
	switch sess.Context.Step {
	case models.StepProblemDescription:
		if sess.Context.Description == nil {
			sess.Context.Description = &text
		}
	case models.StepUrgencyCheck:
		if sess.Context.Urgency == nil {
			sess.Context.Urgency = &text
		}
	case models.StepLocationRequest:
		if sess.Context.Location == nil {
			sess.Context.Location = &text
		}
	}

	sess.Context.Step = clampStep(sess.Context.Step, nextStep(sess.Context.Step, sess.Context))

	reply, suggestions := e.Generator.Generate(intent, sess.Context)

	sess.History = append(sess.History, models.ChatMessage{Role: models.RoleBot, Text: reply, Timestamp: time.Now()})
	sess.LastUpdated = time.Now()

	if err := e.Store.Set(ctx, sessionID, sess); err != nil {
		return nil, fmt.Errorf("failed to persist chat session: %w", err)
	}

	e.Logger.Debug("processed chat turn",
		zap.String("sessionId", sessionID),
		zap.String("intent", intent),
		zap.String("step", string(sess.Context.Step)),
	)

	return &models.ChatResponse{Message: reply, Context: sess.Context, Suggestions: suggestions}, nil
}

// SelectService applies an explicit service quick-reply. Unlike passive
// extraction this may overwrite a previous choice, and it moves the funnel to
// the description question if the conversation has not reached it yet.
func (e *Engine) SelectService(ctx context.Context, sessionID, serviceID string) (*models.ChatResponse, error) {
	svc := e.Catalog.FindByID(serviceID)
	if svc == nil {
		return nil, fmt.Errorf("unknown service %q", serviceID)
	}

	mu := e.sessionLock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	sess, err := e.loadOrCreate(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	id := svc.ID
	sess.Context.ServiceType = &id
	sess.Context.Step = clampStep(sess.Context.Step, models.StepProblemDescription)

	return e.finishSelection(ctx, sessionID, sess, svc.Label)
}

// SelectUrgency applies an explicit urgency quick-reply ("urgente" or
// "normal") and, when the conversation is waiting on it, advances to the
// location question.
func (e *Engine) SelectUrgency(ctx context.Context, sessionID, urgency string) (*models.ChatResponse, error) {
	if urgency != UrgencyUrgent && urgency != UrgencyNormal {
		return nil, fmt.Errorf("unknown urgency %q", urgency)
	}

	mu := e.sessionLock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	sess, err := e.loadOrCreate(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sess.Context.Urgency = &urgency
	if sess.Context.Step == models.StepUrgencyCheck {
		sess.Context.Step = models.StepLocationRequest
	}

	return e.finishSelection(ctx, sessionID, sess, urgency)
}

// History returns one page of a session's message history. An unseen session
// id yields an empty page rather than an error.
func (e *Engine) History(ctx context.Context, sessionID string, limit, page int) (*models.ConversationHistory, error) {
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}

	sess, err := e.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var messages []models.ChatMessage
	if sess != nil {
		messages = sess.History
	}

	total := len(messages)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &models.ConversationHistory{
		Messages:   messages[start:end],
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

// ResetSession recreates the session from scratch. This is the only way a
// conversation moves backwards; the funnel itself never regresses.
func (e *Engine) ResetSession(ctx context.Context, sessionID string) error {
	mu := e.sessionLock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	return e.Store.Set(ctx, sessionID, newSession(sessionID))
}

func (e *Engine) loadOrCreate(ctx context.Context, sessionID string) (*models.ChatSession, error) {
	sess, err := e.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat session: %w", err)
	}
	if sess == nil {
		sess = newSession(sessionID)
	}
	return sess, nil
}

// finishSelection records the quick-reply exchange in history and persists.
func (e *Engine) finishSelection(ctx context.Context, sessionID string, sess *models.ChatSession, selection string) (*models.ChatResponse, error) {
	now := time.Now()
	sess.History = append(sess.History, models.ChatMessage{Role: models.RoleUser, Text: selection, Timestamp: now})

	reply, suggestions := e.Generator.Generate(IntentServiceRequest, sess.Context)
	sess.History = append(sess.History, models.ChatMessage{Role: models.RoleBot, Text: reply, Timestamp: time.Now()})
	sess.LastUpdated = time.Now()

	if err := e.Store.Set(ctx, sessionID, sess); err != nil {
		return nil, fmt.Errorf("failed to persist chat session: %w", err)
	}

	return &models.ChatResponse{Message: reply, Context: sess.Context, Suggestions: suggestions}, nil
}

func (e *Engine) sessionLock(sessionID string) *sync.Mutex {
	v, _ := e.locks.LoadOrStore(sessionID, &sync.Mutex{})
	return v.(*sync.Mutex)
}

func newSession(sessionID string) *models.ChatSession {
	return &models.ChatSession{
		SessionID:   sessionID,
		Context:     models.ChatContext{Step: models.StepGreeting},
		History:     []models.ChatMessage{},
		LastUpdated: time.Now(),
	}
}
