// File: services/chatbot/generator.go
package chatbot

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"befixed/models"
)

// Generator maps (step, context, intent) to a reply and quick-reply
// suggestions. Phrasing variety comes from an injected randomness source so
// tests can seed it for deterministic output.
type Generator struct {
	Catalog *Catalog

	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator builds a generator using the given randomness source.
func NewGenerator(catalog *Catalog, rng *rand.Rand) *Generator {
	return &Generator{Catalog: catalog, rng: rng}
}

// Generate produces the reply for the step the session has just moved to.
// Deterministic given the context, except where a phrase bank offers several
// equivalent variants.
func (g *Generator) Generate(intent string, ctx models.ChatContext) (string, []string) {
	switch ctx.Step {
	case models.StepServiceSelection:
		switch intent {
		case IntentGreeting:
			return g.pick(greetingBank), greetingSuggestions
		case IntentHelp:
			return g.pick(helpBank), []string{"Servicios disponibles", "Encontrar un técnico"}
		case IntentThanks:
			return g.pick(thanksBank), []string{"Necesito otro servicio", "Adiós"}
		case IntentGoodbye:
			return g.pick(goodbyeBank), nil
		default:
			return g.pick(serviceRequestBank), serviceSuggestions
		}

	case models.StepProblemDescription:
		label := g.serviceLabel(ctx)
		if g.isTechnical(ctx) {
			return fmt.Sprintf("Entiendo que necesitas un servicio de %s. ¿Puedes describirme el problema con más detalle?", strings.ToLower(label)), descriptionSuggestions
		}
		return fmt.Sprintf("Entiendo que necesitas un servicio de %s. ¿Puedes contarme más sobre lo que necesitas?", strings.ToLower(label)), descriptionSuggestions

	case models.StepUrgencyCheck:
		if g.isTechnical(ctx) {
			return "Gracias por la información. ¿Es un problema urgente que necesita atención inmediata?", urgencySuggestions
		}
		return "Gracias por la información. ¿Cuándo lo necesitas?", scheduleSuggestions

	case models.StepLocationRequest:
		return "Entendido. Para poder ayudarte mejor, ¿podrías confirmar tu ubicación?", locationSuggestions

	case models.StepTechnicianSearch:
		return g.summary(ctx), searchSuggestions

	case models.StepDone:
		switch intent {
		case IntentThanks:
			return g.pick(thanksBank), []string{"Necesito otro servicio", "Adiós"}
		case IntentGoodbye:
			return g.pick(goodbyeBank), nil
		default:
			return "Entiendo. ¿Hay algo más en lo que pueda ayudarte?", genericSuggestions
		}
	}

	return g.pick(fallbackBank), genericSuggestions
}

// summary is the deterministic recap sent once every slot is filled. Field
// order and wording match the original BeFixed bot.
func (g *Generator) summary(ctx models.ChatContext) string {
	technical := g.isTechnical(ctx)

	kind := "servicio"
	urgencyLabel := "Cuándo lo necesitas"
	closing := "para este servicio"
	if technical {
		kind = "problema"
		urgencyLabel = "Urgencia"
		closing = "ahora"
	}

	return fmt.Sprintf(`¡Perfecto! Ya tengo toda la información sobre tu %s:

- Tipo de servicio: %s
- Descripción: %s
- %s: %s
- Ubicación: %s

¿Quieres que busque profesionales disponibles %s?`,
		kind,
		g.serviceLabel(ctx),
		deref(ctx.Description),
		urgencyLabel,
		deref(ctx.Urgency),
		deref(ctx.Location),
		closing,
	)
}

// serviceLabel resolves the display label for the session's service, falling
// back to the raw id when the catalog cannot resolve it.
func (g *Generator) serviceLabel(ctx models.ChatContext) string {
	if ctx.ServiceType == nil {
		return ""
	}
	if svc := g.Catalog.FindByID(*ctx.ServiceType); svc != nil {
		return svc.Label
	}
	return *ctx.ServiceType
}

func (g *Generator) isTechnical(ctx models.ChatContext) bool {
	if ctx.ServiceType == nil {
		return false
	}
	svc := g.Catalog.FindByID(*ctx.ServiceType)
	return svc != nil && svc.Category == models.CategoryTechnical
}

func (g *Generator) pick(bank []string) string {
	if len(bank) == 1 {
		return bank[0]
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return bank[g.rng.Intn(len(bank))]
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
