// File: services/matching/matcher.go
package matching

import (
	"fmt"
	"sort"

	technicianRepo "befixed/database/repository/technician"
	"befixed/models"
)

// MatcherService finds candidate technicians for a finalized service request.
type MatcherService interface {
	Find(serviceType, location string, urgency string) ([]models.Technician, error)
}

// DefaultMatcherService implements MatcherService over the roster repository.
type DefaultMatcherService struct {
	Repo technicianRepo.TechnicianRepository
}

// Find filters the roster to technicians offering the service and ranks them
// by ascending distance. An empty result is valid, not an error. Location and
// urgency are accepted but do not currently influence filtering or ordering
// beyond the distance sort.
func (s *DefaultMatcherService) Find(serviceType, location string, urgency string) ([]models.Technician, error) {
	matched, err := s.Repo.GetByService(serviceType)
	if err != nil {
		return nil, fmt.Errorf("failed to query technician roster: %w", err)
	}
	if len(matched) == 0 {
		return []models.Technician{}, nil
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].DistanceKm < matched[j].DistanceKm
	})
	return matched, nil
}
