// File: services/chatbot/responses.go
package chatbot

// Canned phrase banks for Felix. When a bank has several variants the
// generator picks one uniformly at random; callers must treat the whole bank
// as acceptable output.
var (
	greetingBank = []string{
		"¡Hola! Soy Felix, tu asistente de BeFixed. ¿En qué puedo ayudarte hoy?",
		"¡Bienvenido a BeFixed! Soy Felix, tu asistente personal. ¿Qué servicio estás buscando?",
		"Hola, soy Felix. Estoy aquí para conectarte con los mejores profesionales. ¿Qué necesitas?",
	}

	helpBank = []string{
		"Puedo ayudarte a encontrar técnicos especializados para resolver problemas en tu hogar. ¿Qué tipo de servicio necesitas?",
		"Estoy aquí para asistirte. Puedo ayudarte a encontrar electricistas, plomeros, cerrajeros y más. ¿Qué problema tienes?",
		"BeFixed te conecta con profesionales calificados. Dime qué necesitas y te ayudaré a encontrar al técnico adecuado.",
	}

	serviceRequestBank = []string{
		"¿Qué tipo de servicio estás buscando? Tenemos electricistas, plomeros, cerrajeros y más.",
		"Cuéntame más sobre el problema que tienes. ¿Es un tema de electricidad, plomería, cerrajería u otro?",
		"¿Con qué necesitas ayuda hoy? Puedo conectarte con profesionales de diversas especialidades.",
	}

	thanksBank = []string{
		"¡De nada! Estoy aquí para ayudarte cuando lo necesites.",
		"Es un placer poder ayudarte. ¿Hay algo más en lo que pueda asistirte?",
		"No hay de qué. Si necesitas cualquier otra cosa, no dudes en preguntar.",
	}

	goodbyeBank = []string{
		"¡Hasta pronto! No dudes en volver si necesitas ayuda con algún servicio.",
		"¡Que tengas un excelente día! Estaré aquí cuando necesites un profesional.",
		"¡Adiós! Recuerda que puedes contactarme cuando necesites un técnico.",
	}

	fallbackBank = []string{
		"Lo siento, no estoy seguro de entender lo que necesitas. ¿Podrías ser más específico?",
		"Disculpa, no he comprendido bien. ¿Podrías reformular tu pregunta?",
		"No estoy seguro de cómo ayudarte con eso. ¿Puedes explicarme qué tipo de servicio necesitas?",
	}
)

// Quick-reply suggestion sets per step.
var (
	greetingSuggestions    = []string{"Necesito un electricista", "Tengo un problema de plomería", "¿Qué servicios ofrecen?"}
	serviceSuggestions     = []string{"Electricidad", "Plomería", "Cerrajería", "Gas", "Limpieza"}
	descriptionSuggestions = []string{"Es una fuga de agua", "No funciona la electricidad", "Necesito cambiar una cerradura"}
	urgencySuggestions     = []string{"Sí, es urgente", "No, puede esperar"}
	scheduleSuggestions    = []string{"Lo antes posible", "Esta semana"}
	locationSuggestions    = []string{"Usar mi ubicación actual", "Ingresar otra dirección"}
	searchSuggestions      = []string{"Ver técnicos disponibles", "Cambiar servicio"}
	genericSuggestions     = []string{"Necesito un técnico", "Ayuda", "Servicios disponibles"}
)
