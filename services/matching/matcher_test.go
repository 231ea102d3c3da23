package matching

import (
	"testing"

	technicianRepo "befixed/database/repository/technician"
)

func newTestMatcher() *DefaultMatcherService {
	return &DefaultMatcherService{Repo: technicianRepo.NewMemoryTechnicianRepo()}
}

func TestFindFiltersByService(t *testing.T) {
	m := newTestMatcher()

	techs, err := m.Find("cerrajeria", "Centro", "urgente")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(techs) != 1 {
		t.Fatalf("expected 1 locksmith, got %d", len(techs))
	}
	for _, tech := range techs {
		if !tech.Offers("cerrajeria") {
			t.Errorf("technician %s does not offer cerrajeria", tech.ID)
		}
	}
}

func TestFindSortsByDistance(t *testing.T) {
	m := newTestMatcher()

	techs, err := m.Find("limpieza", "Centro", "")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(techs) != 2 {
		t.Fatalf("expected 2 cleaners, got %d", len(techs))
	}
	for i := 1; i < len(techs); i++ {
		if techs[i].DistanceKm < techs[i-1].DistanceKm {
			t.Fatalf("not sorted by distance: %v before %v", techs[i-1].DistanceKm, techs[i].DistanceKm)
		}
	}
	// María Gómez (1.8 km) ranks ahead of Limpieza Express (2.3 km).
	if techs[0].Name != "María Gómez" {
		t.Errorf("closest cleaner should rank first, got %s", techs[0].Name)
	}
}

func TestFindUnknownServiceIsEmptyNotError(t *testing.T) {
	m := newTestMatcher()

	techs, err := m.Find("nonexistent-service", "Centro", "")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if techs == nil || len(techs) != 0 {
		t.Errorf("expected empty non-nil result, got %v", techs)
	}
}

// Location and urgency are accepted but do not change the result.
func TestFindIgnoresLocationAndUrgency(t *testing.T) {
	m := newTestMatcher()

	a, err := m.Find("plomeria", "Norte", "urgente")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	b, err := m.Find("plomeria", "Sur", "")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("result differs by location/urgency: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Errorf("ordering differs at %d: %s vs %s", i, a[i].ID, b[i].ID)
		}
	}
}
