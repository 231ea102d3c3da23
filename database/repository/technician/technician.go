// File: database/repository/technician/technician.go
package technician

import (
	"sync"

	"befixed/models"
)

// TechnicianRepository defines access to the technician roster. The roster is
// read-only at request time, so implementations only need lookup methods.
type TechnicianRepository interface {
	GetAll() ([]models.Technician, error)
	GetByID(id string) (*models.Technician, error)
	GetByService(serviceID string) ([]models.Technician, error)
}

// MemoryTechnicianRepo serves a fixed in-process roster. A live registry
// would back this with a database; the interface is the seam for that swap.
type MemoryTechnicianRepo struct {
	mu          sync.RWMutex
	technicians []models.Technician
}

// NewMemoryTechnicianRepo returns a repo seeded with the default roster.
func NewMemoryTechnicianRepo() *MemoryTechnicianRepo {
	return NewMemoryTechnicianRepoWith(defaultRoster())
}

// NewMemoryTechnicianRepoWith returns a repo over the given roster.
func NewMemoryTechnicianRepoWith(roster []models.Technician) *MemoryTechnicianRepo {
	return &MemoryTechnicianRepo{technicians: roster}
}

func (r *MemoryTechnicianRepo) GetAll() ([]models.Technician, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Technician, len(r.technicians))
	copy(out, r.technicians)
	return out, nil
}

func (r *MemoryTechnicianRepo) GetByID(id string) (*models.Technician, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.technicians {
		if r.technicians[i].ID == id {
			t := r.technicians[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (r *MemoryTechnicianRepo) GetByService(serviceID string) ([]models.Technician, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Technician
	for _, t := range r.technicians {
		if t.Offers(serviceID) {
			out = append(out, t)
		}
	}
	return out, nil
}

func defaultRoster() []models.Technician {
	return []models.Technician{
		{
			ID: "1", Name: "Carlos Rodríguez", Specialty: "Electricidad",
			Avatar: "/placeholder.svg?height=40&width=40", Initials: "CR",
			Rating: 4.8, ReviewCount: 56, DistanceKm: 1.2, ETALabel: "8 min",
			ServicesOffered: []string{"electricidad", "refrigeracion"},
		},
		{
			ID: "2", Name: "Ana Martínez", Specialty: "Plomería",
			Avatar: "/placeholder.svg?height=40&width=40", Initials: "AM",
			Rating: 4.9, ReviewCount: 32, DistanceKm: 2.5, ETALabel: "12 min",
			ServicesOffered: []string{"plomeria", "gas"},
		},
		{
			ID: "3", Name: "Miguel Sánchez", Specialty: "Cerrajería",
			Avatar: "/placeholder.svg?height=40&width=40", Initials: "MS",
			Rating: 4.7, ReviewCount: 41, DistanceKm: 3.8, ETALabel: "15 min",
			ServicesOffered: []string{"cerrajeria"},
		},
		{
			ID: "4", Name: "Limpieza Express", Specialty: "Limpieza",
			Avatar: "/placeholder.svg?height=40&width=40", Initials: "LE",
			Rating: 4.9, ReviewCount: 78, DistanceKm: 2.3, ETALabel: "Hoy",
			ServicesOffered: []string{"limpieza"},
		},
		{
			ID: "5", Name: "María Gómez", Specialty: "Limpieza",
			Avatar: "/placeholder.svg?height=40&width=40", Initials: "MG",
			Rating: 4.7, ReviewCount: 45, DistanceKm: 1.8, ETALabel: "Hoy",
			ServicesOffered: []string{"limpieza", "jardineria"},
		},
	}
}
