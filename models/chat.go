// models/chat.go
package models

import "time"

// Conversation steps, in funnel order. A session only ever moves forward
// through these; resetting a session is an explicit external operation.
type Step string

const (
	StepGreeting           Step = "greeting"
	StepServiceSelection   Step = "service_selection"
	StepProblemDescription Step = "problem_description"
	StepUrgencyCheck       Step = "urgency_check"
	StepLocationRequest    Step = "location_request"
	StepTechnicianSearch   Step = "technician_search"
	StepDone               Step = "done"
)

// Message roles.
const (
	RoleUser = "user"
	RoleBot  = "bot"
)

// ChatMessage is a single entry in a session's history.
type ChatMessage struct {
	Role      string    `bson:"role" json:"role"`
	Text      string    `bson:"text" json:"text"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// ChatContext holds the accumulated slot values for one conversation.
// Slots are nil until captured; field names match the original API contract.
type ChatContext struct {
	Step        Step    `bson:"step" json:"step"`
	ServiceType *string `bson:"serviceType" json:"serviceType"`
	Description *string `bson:"description" json:"description"`
	Urgency     *string `bson:"urgency" json:"urgency"`
	Location    *string `bson:"location" json:"location"`
}

// ChatSession is the per-conversation mutable state, keyed by an opaque
// session id supplied by the caller.
type ChatSession struct {
	SessionID   string        `bson:"sessionId" json:"sessionId"`
	Context     ChatContext   `bson:"context" json:"context"`
	History     []ChatMessage `bson:"history" json:"history"`
	LastUpdated time.Time     `bson:"lastUpdated" json:"lastUpdated"`
}

// ChatResponse is what one processed turn returns to the caller.
type ChatResponse struct {
	Message     string      `json:"message"`
	Context     ChatContext `json:"context"`
	Suggestions []string    `json:"suggestions"`
}

// ConversationHistory is a paginated slice of a session's messages.
type ConversationHistory struct {
	Messages   []ChatMessage `json:"messages"`
	TotalCount int           `json:"totalCount"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int           `json:"totalPages"`
}
