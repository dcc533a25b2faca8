package services

import (
	"testing"

	"go.uber.org/zap"

	"github.com/neighborhood-resolver/app/models"
)

func TestCacheService(t *testing.T) {
	cs, err := NewCacheService(2, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	key := cs.Key("Adana", "Çukurova", "Bota Mh.")
	if _, found := cs.Get(key); found {
		t.Fatal("unexpected hit on empty cache")
	}

	row := &models.OutputRow{NeighborhoodID: 225001}
	cs.Set(key, row)

	got, found := cs.Get(key)
	if !found || got.NeighborhoodID != 225001 {
		t.Fatalf("expected cached row, got %v (found=%v)", got, found)
	}

	// Distinct raw fields must never collide.
	other := cs.Key("Adana", "Çukurova", "Atatürk Mh.")
	if key == other {
		t.Error("cache keys collide for distinct records")
	}

	// Size bound evicts the oldest entry.
	cs.Set(other, &models.OutputRow{NeighborhoodID: 225002})
	cs.Set(cs.Key("Hatay", "İskenderun", "Numune Mh."), &models.OutputRow{NeighborhoodID: 310001})
	if cs.Len() != 2 {
		t.Errorf("cache exceeded its bound: %d", cs.Len())
	}
}
