// models/technician.go
package models

// Technician represents a professional available for service requests.
type Technician struct {
	ID              string   `bson:"id" json:"id"`
	Name            string   `bson:"name" json:"name"`
	Specialty       string   `bson:"specialty" json:"specialty"`
	Avatar          string   `bson:"avatar" json:"avatar"`
	Initials        string   `bson:"initials" json:"initials"`
	Rating          float64  `bson:"rating" json:"rating"`
	ReviewCount     int      `bson:"reviewCount" json:"reviewCount"`
	DistanceKm      float64  `bson:"distanceKm" json:"distanceKm"`
	ETALabel        string   `bson:"etaLabel" json:"etaLabel"`
	ServicesOffered []string `bson:"servicesOffered" json:"servicesOffered"`
}

// Offers reports whether the technician covers the given service id.
func (t Technician) Offers(serviceID string) bool {
	for _, s := range t.ServicesOffered {
		if s == serviceID {
			return true
		}
	}
	return false
}
