// File: services/chatbot/steps.go
package chatbot

import "befixed/models"

// stepIndex orders the funnel. Transitions are clamped so a session's step
// never regresses within a conversation.
var stepIndex = map[models.Step]int{
	models.StepGreeting:           0,
	models.StepServiceSelection:   1,
	models.StepProblemDescription: 2,
	models.StepUrgencyCheck:       3,
	models.StepLocationRequest:    4,
	models.StepTechnicianSearch:   5,
	models.StepDone:               6,
}

// nextStep computes the step the session moves to, given the current step and
// the slot state after this turn's captures.
func nextStep(current models.Step, ctx models.ChatContext) models.Step {
	switch current {
	case models.StepGreeting:
		// A first message that already names a service skips straight to the
		// description question.
		if ctx.ServiceType != nil {
			return models.StepProblemDescription
		}
		return models.StepServiceSelection
	case models.StepServiceSelection:
		if ctx.ServiceType != nil {
			return models.StepProblemDescription
		}
	case models.StepProblemDescription:
		if ctx.Description != nil {
			return models.StepUrgencyCheck
		}
	case models.StepUrgencyCheck:
		if ctx.Urgency != nil {
			return models.StepLocationRequest
		}
	case models.StepLocationRequest:
		if ctx.Location != nil {
			return models.StepTechnicianSearch
		}
	case models.StepTechnicianSearch:
		return models.StepDone
	}
	return current
}

// clampStep keeps the funnel monotonic: candidate steps behind the current
// one resolve to the current step.
func clampStep(current, candidate models.Step) models.Step {
	if stepIndex[candidate] < stepIndex[current] {
		return current
	}
	return candidate
}
