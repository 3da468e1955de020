package storage

import (
	"testing"
	"time"

	"github.com/c360studio/shipyard/ontology"
	"github.com/c360studio/shipyard/population"
)

func TestRecordID(t *testing.T) {
	t.Run("NewRecordID generates valid ID", func(t *testing.T) {
		id := NewRecordID(RecordTypeSnapshot)
		if id.Type != RecordTypeSnapshot {
			t.Errorf("expected type %s, got %s", RecordTypeSnapshot, id.Type)
		}
		if id.ID == "" {
			t.Error("expected non-empty ID")
		}
	})

	t.Run("String returns correct format", func(t *testing.T) {
		id := RecordID{Type: RecordTypeReading, ID: "abc123"}
		expected := "reading:abc123"
		if id.String() != expected {
			t.Errorf("expected %s, got %s", expected, id.String())
		}
	})

	t.Run("ParseRecordID handles all types", func(t *testing.T) {
		tests := []struct {
			input    string
			expected RecordType
		}{
			{"snapshot:123", RecordTypeSnapshot},
			{"reading:456", RecordTypeReading},
			{"inspection:789", RecordTypeInspection},
		}

		for _, tc := range tests {
			id, err := ParseRecordID(tc.input)
			if err != nil {
				t.Errorf("unexpected error for %s: %v", tc.input, err)
				continue
			}
			if id.Type != tc.expected {
				t.Errorf("for %s: expected type %s, got %s", tc.input, tc.expected, id.Type)
			}
		}
	})

	t.Run("ParseRecordID rejects invalid format", func(t *testing.T) {
		invalidIDs := []string{
			"invalid",
			"no-colon",
			"",
			"unknown:123",
		}

		for _, input := range invalidIDs {
			_, err := ParseRecordID(input)
			if err == nil {
				t.Errorf("expected error for %q, got nil", input)
			}
		}
	})

	t.Run("Round trip ID conversion", func(t *testing.T) {
		original := NewRecordID(RecordTypeInspection)
		str := original.String()
		parsed, err := ParseRecordID(str)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if parsed.Type != original.Type {
			t.Errorf("type mismatch: expected %s, got %s", original.Type, parsed.Type)
		}
		if parsed.ID != original.ID {
			t.Errorf("ID mismatch: expected %s, got %s", original.ID, parsed.ID)
		}
	})
}

func TestSnapshotFromGraph(t *testing.T) {
	g := ontology.NewGraph(ontology.MustSchema())
	if err := population.Populate(g); err != nil {
		t.Fatalf("populate: %v", err)
	}

	snap := SnapshotFromGraph(g)

	if snap.Counts.Vessels != 2 {
		t.Errorf("expected 2 vessels, got %d", snap.Counts.Vessels)
	}
	if snap.AverageCompletion == nil {
		t.Fatal("expected average completion to be set")
	}
	if *snap.AverageCompletion != 52.5 {
		t.Errorf("expected average completion 52.5, got %v", *snap.AverageCompletion)
	}
	if snap.EquipmentUtilization == nil || *snap.EquipmentUtilization != 100.0 {
		t.Error("expected equipment utilization 100.0")
	}
}

func TestSnapshotFromEmptyGraph(t *testing.T) {
	g := ontology.NewGraph(ontology.MustSchema())

	snap := SnapshotFromGraph(g)

	if snap.Counts.Vessels != 0 {
		t.Errorf("expected 0 vessels, got %d", snap.Counts.Vessels)
	}
	if snap.AverageCompletion != nil {
		t.Error("expected average completion to be omitted for empty yard")
	}
	if snap.AverageExperience != nil {
		t.Error("expected average experience to be omitted for empty yard")
	}
}

func TestReadingsFromGraph(t *testing.T) {
	g := ontology.NewGraph(ontology.MustSchema())
	if err := population.Populate(g); err != nil {
		t.Fatalf("populate: %v", err)
	}

	// Only the temperature and vibration sensors carry a current value.
	readings := ReadingsFromGraph(g)
	if len(readings) != 2 {
		t.Fatalf("expected 2 readings, got %d", len(readings))
	}

	byID := make(map[string]*Reading, len(readings))
	for _, r := range readings {
		byID[r.SensorID] = r
	}

	temp, ok := byID["TempSensor_WR001"]
	if !ok {
		t.Fatal("expected a reading for TempSensor_WR001")
	}
	if temp.Value != 45.5 {
		t.Errorf("expected value 45.5, got %v", temp.Value)
	}
	if temp.Kind != "temperature" {
		t.Errorf("expected kind temperature, got %q", temp.Kind)
	}
	want, _ := time.Parse(time.RFC3339, population.SampleTimestamp)
	if !temp.Timestamp.Equal(want) {
		t.Errorf("expected timestamp %v, got %v", want, temp.Timestamp)
	}

	vib, ok := byID["VibSensor_CR001"]
	if !ok {
		t.Fatal("expected a reading for VibSensor_CR001")
	}
	if vib.Value != 2.3 || vib.Kind != "vibration" {
		t.Errorf("unexpected vibration reading: %+v", vib)
	}
}

func TestInspectionsFromGraph(t *testing.T) {
	g := ontology.NewGraph(ontology.MustSchema())
	if err := population.Populate(g); err != nil {
		t.Fatalf("populate: %v", err)
	}

	// Only the hull and engine are scored; both pass the 90.0 cutoff.
	inspections := InspectionsFromGraph(g)
	if len(inspections) != 2 {
		t.Fatalf("expected 2 inspections, got %d", len(inspections))
	}

	byID := make(map[string]*Inspection, len(inspections))
	for _, insp := range inspections {
		byID[insp.ComponentID] = insp
	}

	hull, ok := byID["Hull_V001"]
	if !ok {
		t.Fatal("expected an inspection for Hull_V001")
	}
	if hull.Score != 95.5 || !hull.Passed {
		t.Errorf("unexpected hull inspection: %+v", hull)
	}
	if hull.Inspector != "Robert Lee" {
		t.Errorf("expected inspector Robert Lee, got %q", hull.Inspector)
	}

	engine, ok := byID["Engine_V001"]
	if !ok {
		t.Fatal("expected an inspection for Engine_V001")
	}
	if engine.Score != 98.0 || !engine.Passed {
		t.Errorf("unexpected engine inspection: %+v", engine)
	}
	if engine.Inspector != "" {
		t.Errorf("expected no inspector for the engine, got %q", engine.Inspector)
	}
}

func TestBucketNames(t *testing.T) {
	if BucketSnapshots != "SHIPYARD_SNAPSHOTS" {
		t.Errorf("unexpected snapshots bucket: %s", BucketSnapshots)
	}
	if BucketReadings != "SHIPYARD_READINGS" {
		t.Errorf("unexpected readings bucket: %s", BucketReadings)
	}
	if BucketInspections != "SHIPYARD_INSPECTIONS" {
		t.Errorf("unexpected inspections bucket: %s", BucketInspections)
	}
}
