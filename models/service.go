// models/service.go
package models

// Service categories. Technical services use fix-a-problem framing in the
// chatbot; home services use scheduled-service framing.
const (
	CategoryTechnical = "technical"
	CategoryHome      = "home"
)

// ServiceOffering represents a type of service offered on the platform.
type ServiceOffering struct {
	ID       string `bson:"id" json:"id"`             // e.g., "plomeria"
	Label    string `bson:"label" json:"label"`       // Display name, e.g., "Plomería"
	Icon     string `bson:"icon" json:"icon"`         // Emoji shown in service pickers
	Category string `bson:"category" json:"category"` // "technical" or "home"
}
