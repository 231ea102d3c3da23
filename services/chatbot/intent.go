// File: services/chatbot/intent.go
package chatbot

import (
	"regexp"
	"strings"

	"befixed/models"
)

// Intents the recognizer can produce.
const (
	IntentGreeting         = "greeting"
	IntentHelp             = "help"
	IntentServiceRequest   = "service_request"
	IntentLocationInfo     = "location_info"
	IntentUrgencyInfo      = "urgency_info"
	IntentTechnicianSearch = "technician_search"
	IntentBookingRequest   = "booking_request"
	IntentCancel           = "cancel"
	IntentThanks           = "thanks"
	IntentGoodbye          = "goodbye"
	IntentUnknown          = "unknown"
)

// Urgency values produced by entity extraction.
const (
	UrgencyUrgent = "urgente"
	UrgencyNormal = "normal"
)

// Entities extracted from a single message. Absent fields are nil.
type Entities struct {
	ServiceType *string
	Urgency     *string
	Location    *string
}

// intentFamily pairs an intent tag with its trigger patterns. Families are
// evaluated in slice order and the first matching pattern wins, so the order
// of this table is part of the recognizer's contract.
type intentFamily struct {
	intent   string
	patterns []*regexp.Regexp
}

var intentFamilies = []intentFamily{
	{IntentGreeting, compileAll(`(?i)^hola`, `(?i)^buenos días`, `(?i)^buenas tardes`, `(?i)^buenas noches`, `(?i)^saludos`, `(?i)^hey`)},
	{IntentHelp, compileAll(`(?i)ayuda`, `(?i)^ayúdame`, `(?i)^necesito ayuda`, `(?i)^cómo funciona`, `(?i)^qué puedes hacer`)},
	{IntentServiceRequest, compileAll(`(?i)necesito un`, `(?i)busco un`, `(?i)quiero contratar`, `(?i)problema con`, `(?i)arreglar`, `(?i)reparar`)},
	{IntentLocationInfo, compileAll(`(?i)mi ubicación es`, `(?i)estoy en`, `(?i)mi dirección es`, `(?i)vivo en`)},
	{IntentUrgencyInfo, compileAll(`(?i)es urgente`, `(?i)lo necesito ahora`, `(?i)emergencia`, `(?i)puede esperar`, `(?i)no es urgente`)},
	{IntentTechnicianSearch, compileAll(`(?i)buscar técnicos`, `(?i)encontrar profesionales`, `(?i)ver técnicos`, `(?i)técnicos disponibles`)},
	{IntentBookingRequest, compileAll(`(?i)reservar`, `(?i)contratar`, `(?i)agendar`, `(?i)programar`)},
	{IntentCancel, compileAll(`(?i)cancelar`, `(?i)anular`, `(?i)suspender`)},
	{IntentThanks, compileAll(`(?i)gracias`, `(?i)te agradezco`, `(?i)muchas gracias`)},
	{IntentGoodbye, compileAll(`(?i)adiós`, `(?i)hasta luego`, `(?i)chao`, `(?i)bye`)},
}

var (
	urgentPattern    = regexp.MustCompile(`(?i)urgente|emergencia|inmediato|ahora mismo|cuanto antes`)
	notUrgentPattern = regexp.MustCompile(`(?i)no.*urgente|puede esperar|cuando pueda|sin prisa`)
	locationPattern  = regexp.MustCompile(`(?i)en\s+([^,.]+)`)
)

// professionAliases maps trade words to catalog service ids, so "necesito un
// electricista" resolves even though the catalog label is "Electricidad".
// Checked in this order, after the plain id/label mention scan.
var professionAliases = []struct {
	word      string
	serviceID string
}{
	{"electricista", "electricidad"},
	{"plomero", "plomeria"},
	{"cerrajero", "cerrajeria"},
	{"gasista", "gas"},
	{"jardinero", "jardineria"},
	{"pintor", "pintura"},
}

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(e))
	}
	return out
}

// Recognizer performs pattern-based intent detection and entity extraction.
// It is stateless apart from the read-only catalog, and never fails: a
// message with no matches yields intent "unknown" and empty entities.
type Recognizer struct {
	Catalog *Catalog
}

// Recognize returns the best-effort intent for the message plus any entities
// it could extract. Entity extraction is independent of the detected intent.
func (r *Recognizer) Recognize(text string) (string, Entities) {
	return r.extractIntent(text), r.extractEntities(text)
}

func (r *Recognizer) extractIntent(text string) string {
	for _, fam := range intentFamilies {
		for _, p := range fam.patterns {
			if p.MatchString(text) {
				return fam.intent
			}
		}
	}
	// No pattern matched; a bare service mention still counts as a request.
	if r.resolveService(text) != nil {
		return IntentServiceRequest
	}
	return IntentUnknown
}

func (r *Recognizer) extractEntities(text string) Entities {
	var ents Entities

	if svc := r.resolveService(text); svc != nil {
		id := svc.ID
		ents.ServiceType = &id
	}

	if urgentPattern.MatchString(text) {
		u := UrgencyUrgent
		ents.Urgency = &u
	} else if notUrgentPattern.MatchString(text) {
		u := UrgencyNormal
		ents.Urgency = &u
	}

	// Coarse location capture: the text following "en" up to the next comma
	// or period. A known approximation, not a geocoder.
	if m := locationPattern.FindStringSubmatch(text); len(m) > 1 {
		loc := strings.TrimSpace(m[1])
		if loc != "" {
			ents.Location = &loc
		}
	}

	return ents
}

func (r *Recognizer) resolveService(text string) *models.ServiceOffering {
	if svc := r.Catalog.FindByTextMention(text); svc != nil {
		return svc
	}
	lower := strings.ToLower(text)
	for _, alias := range professionAliases {
		if strings.Contains(lower, alias.word) {
			if svc := r.Catalog.FindByID(alias.serviceID); svc != nil {
				return svc
			}
		}
	}
	return nil
}
