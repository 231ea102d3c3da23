// File: handlers/chatbot.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"befixed/services/booking"
	"befixed/services/chatbot"
	"befixed/services/matching"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatbotHandler exposes the dialogue engine, technician search and booking
// over HTTP.
type ChatbotHandler struct {
	Engine   *chatbot.Engine
	Catalog  *chatbot.Catalog
	Matcher  matching.MatcherService
	Recorder booking.RecorderService
	Logger   *zap.Logger
}

// NewChatbotHandler wires a handler over the given services.
func NewChatbotHandler(engine *chatbot.Engine, catalog *chatbot.Catalog, matcher matching.MatcherService, recorder booking.RecorderService, logger *zap.Logger) *ChatbotHandler {
	return &ChatbotHandler{Engine: engine, Catalog: catalog, Matcher: matcher, Recorder: recorder, Logger: logger}
}

// ProcessMessage handles POST /api/chatbot/message.
func (h *ChatbotHandler) ProcessMessage(c *gin.Context) {
	var body struct {
		Message   string `json:"message"`
		SessionID string `json:"sessionId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "El mensaje es requerido",
		})
		return
	}
	if body.SessionID == "" {
		body.SessionID = uuid.New().String()
	}

	response, err := h.Engine.HandleTurn(c.Request.Context(), body.SessionID, body.Message)
	if err != nil {
		h.Logger.Error("ProcessMessage: turn failed", zap.String("sessionId", body.SessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error al procesar el mensaje",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"sessionId": body.SessionID,
		"response":  response,
	})
}

// GetServices handles GET /api/chatbot/services.
func (h *ChatbotHandler) GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"services": h.Catalog.List(),
	})
}

// FindTechnicians handles POST /api/chatbot/find-technicians.
func (h *ChatbotHandler) FindTechnicians(c *gin.Context) {
	var body struct {
		ServiceType string `json:"serviceType"`
		Location    string `json:"location"`
		Urgency     string `json:"urgency"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.ServiceType == "" || body.Location == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "El tipo de servicio y la ubicación son requeridos",
		})
		return
	}

	technicians, err := h.Matcher.Find(body.ServiceType, body.Location, body.Urgency)
	if err != nil {
		h.Logger.Error("FindTechnicians: search failed", zap.String("serviceType", body.ServiceType), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error al buscar técnicos",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"technicians": technicians,
	})
}

// BookService handles POST /api/chatbot/book-service.
func (h *ChatbotHandler) BookService(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Usuario no autenticado",
		})
		return
	}

	var body struct {
		TechnicianID  string     `json:"technicianId"`
		ServiceType   string     `json:"serviceType"`
		ScheduledTime *time.Time `json:"scheduledTime"`
		Location      string     `json:"location"`
		Description   string     `json:"description"`
		Urgency       string     `json:"urgency"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Cuerpo de la petición inválido",
		})
		return
	}

	created, err := h.Recorder.Create(c.Request.Context(), booking.CreateInput{
		ClientID:      userID,
		TechnicianID:  body.TechnicianID,
		ServiceType:   body.ServiceType,
		ScheduledTime: body.ScheduledTime,
		Location:      body.Location,
		Description:   body.Description,
		Urgency:       body.Urgency,
	})
	if err != nil {
		var notFound *booking.NotFoundError
		var invalid *booking.ValidationError
		switch {
		case errors.As(err, &notFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Técnico no encontrado"})
		case errors.As(err, &invalid):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "El técnico, tipo de servicio y ubicación son requeridos"})
		default:
			h.Logger.Error("BookService: booking failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error al reservar servicio"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"booking": created,
	})
}

// ConversationHistory handles GET /api/chatbot/conversation-history.
func (h *ChatbotHandler) ConversationHistory(c *gin.Context) {
	sessionID := c.Query("sessionId")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "El identificador de sesión es requerido",
		})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	history, err := h.Engine.History(c.Request.Context(), sessionID, limit, page)
	if err != nil {
		h.Logger.Error("ConversationHistory: lookup failed", zap.String("sessionId", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error al obtener historial de conversaciones",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"history": history,
	})
}

// ResetSession handles DELETE /api/chatbot/session/:sessionId.
func (h *ChatbotHandler) ResetSession(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if err := h.Engine.ResetSession(c.Request.Context(), sessionID); err != nil {
		h.Logger.Error("ResetSession: reset failed", zap.String("sessionId", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error al reiniciar la sesión",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SelectService handles POST /api/chatbot/select-service (service quick-reply).
func (h *ChatbotHandler) SelectService(c *gin.Context) {
	var body struct {
		SessionID string `json:"sessionId"`
		ServiceID string `json:"serviceId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.SessionID == "" || body.ServiceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "La sesión y el servicio son requeridos",
		})
		return
	}

	response, err := h.Engine.SelectService(c.Request.Context(), body.SessionID, body.ServiceID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Servicio no reconocido",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "response": response})
}

// SelectUrgency handles POST /api/chatbot/select-urgency (urgency quick-reply).
func (h *ChatbotHandler) SelectUrgency(c *gin.Context) {
	var body struct {
		SessionID string `json:"sessionId"`
		Urgency   string `json:"urgency"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.SessionID == "" || body.Urgency == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "La sesión y la urgencia son requeridas",
		})
		return
	}

	response, err := h.Engine.SelectUrgency(c.Request.Context(), body.SessionID, body.Urgency)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Valor de urgencia no reconocido",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "response": response})
}
