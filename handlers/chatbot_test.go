package handlers

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	bookingRepo "befixed/database/repository/booking"
	technicianRepo "befixed/database/repository/technician"
	"befixed/services/booking"
	"befixed/services/chatbot"
	"befixed/services/matching"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	catalog := chatbot.DefaultCatalog()
	engine := chatbot.NewEngine(
		chatbot.NewMemorySessionStore(),
		catalog,
		chatbot.NewGenerator(catalog, rand.New(rand.NewSource(7))),
		zap.NewNop(),
	)
	techRepo := technicianRepo.NewMemoryTechnicianRepo()
	h := NewChatbotHandler(
		engine,
		catalog,
		&matching.DefaultMatcherService{Repo: techRepo},
		&booking.DefaultRecorderService{Repo: bookingRepo.NewMemoryBookingRepo(), Technician: techRepo},
		zap.NewNop(),
	)

	r := gin.New()
	api := r.Group("/api/chatbot")
	api.POST("/message", h.ProcessMessage)
	api.GET("/services", h.GetServices)
	api.POST("/find-technicians", h.FindTechnicians)
	api.POST("/book-service", func(c *gin.Context) {
		c.Set("userID", "client-1")
		h.BookService(c)
	})
	api.GET("/conversation-history", h.ConversationHistory)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProcessMessageRequiresText(t *testing.T) {
	r := newTestRouter()

	w := postJSON(t, r, "/api/chatbot/message", gin.H{"message": ""})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["success"] != false || resp["message"] != "El mensaje es requerido" {
		t.Errorf("unexpected body: %v", resp)
	}
}

func TestProcessMessageMintsSession(t *testing.T) {
	r := newTestRouter()

	w := postJSON(t, r, "/api/chatbot/message", gin.H{"message": "Hola"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success   bool   `json:"success"`
		SessionID string `json:"sessionId"`
		Response  struct {
			Message string `json:"message"`
		} `json:"response"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.SessionID == "" {
		t.Errorf("missing session id in response: %+v", resp)
	}
	if resp.Response.Message == "" {
		t.Error("empty bot message")
	}
}

func TestGetServices(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/chatbot/services", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Success  bool `json:"success"`
		Services []struct {
			ID string `json:"id"`
		} `json:"services"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Services) != 10 {
		t.Errorf("expected 10 services, got %d", len(resp.Services))
	}
}

func TestFindTechniciansValidation(t *testing.T) {
	r := newTestRouter()

	w := postJSON(t, r, "/api/chatbot/find-technicians", gin.H{"serviceType": "electricidad"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without location, got %d", w.Code)
	}

	w = postJSON(t, r, "/api/chatbot/find-technicians", gin.H{
		"serviceType": "electricidad",
		"location":    "Colonia Centro",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Technicians []struct {
			ID string `json:"id"`
		} `json:"technicians"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Technicians) == 0 {
		t.Error("expected electricians in the roster")
	}
}

func TestBookServiceUnknownTechnician(t *testing.T) {
	r := newTestRouter()

	w := postJSON(t, r, "/api/chatbot/book-service", gin.H{
		"technicianId": "999",
		"serviceType":  "plomeria",
		"location":     "Centro",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestBookServiceCreatesBooking(t *testing.T) {
	r := newTestRouter()

	w := postJSON(t, r, "/api/chatbot/book-service", gin.H{
		"technicianId": "1",
		"serviceType":  "electricidad",
		"location":     "Colonia Centro",
		"urgency":      "urgente",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Booking struct {
			Status   string `json:"status"`
			ClientID string `json:"clientId"`
		} `json:"booking"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Booking.Status != "pending" || resp.Booking.ClientID != "client-1" {
		t.Errorf("unexpected booking: %+v", resp.Booking)
	}
}

func TestConversationHistoryRequiresSession(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/chatbot/conversation-history", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without sessionId, got %d", w.Code)
	}
}
