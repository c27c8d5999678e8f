package repositories

import (
	"testing"

	"sleeperbooking/internal/domain/models"
)

func TestSeatInventoryFreshPartition(t *testing.T) {
	inv := NewSeatInventory(models.SeedBookedSeats)

	available, booked := inv.Partition()
	if len(available)+len(booked) != models.BerthCount {
		t.Fatalf("partition does not cover the universe: %d available + %d booked", len(available), len(booked))
	}

	// Only the two seeds inside the berth map show up in the listing.
	if len(booked) != 2 || booked[0] != "5U" || booked[1] != "12U" {
		t.Fatalf("unexpected booked labels: %v", booked)
	}
	if inv.BookedCount() != 5 {
		t.Fatalf("booked count = %d, want 5 (phantom seeds included)", inv.BookedCount())
	}

	for _, label := range available {
		if inv.IsBooked(label) {
			t.Fatalf("label %s listed available but reported booked", label)
		}
	}
}

func TestSeatInventoryPartitionOrder(t *testing.T) {
	inv := NewSeatInventory(nil)
	available, _ := inv.Partition()

	universe := models.SeatUniverse()
	if len(available) != len(universe) {
		t.Fatalf("empty inventory should list the full universe, got %d labels", len(available))
	}
	for i, label := range universe {
		if available[i] != label {
			t.Fatalf("order broken at %d: got %s, want %s", i, available[i], label)
		}
	}
	if universe[0] != "1U" || universe[15] != "16U" || universe[16] != "1L" || universe[31] != "16L" {
		t.Fatalf("unexpected universe boundaries: %v", universe)
	}
}

func TestSeatInventoryReserveReleaseRoundTrip(t *testing.T) {
	inv := NewSeatInventory(nil)

	inv.Reserve([]string{"1U", "2L"})
	if !inv.IsBooked("1U") || !inv.IsBooked("2L") {
		t.Fatal("reserved labels not booked")
	}

	// Duplicate reserve is absorbed by set semantics.
	inv.Reserve([]string{"1U"})
	if inv.BookedCount() != 2 {
		t.Fatalf("duplicate reserve changed count: %d", inv.BookedCount())
	}

	inv.Release([]string{"1U", "2L"})
	if inv.IsBooked("1U") || inv.IsBooked("2L") {
		t.Fatal("released labels still booked")
	}

	// Releasing an available label is a no-op.
	inv.Release([]string{"7U"})
	if inv.BookedCount() != 0 {
		t.Fatalf("release of available label changed count: %d", inv.BookedCount())
	}
}
