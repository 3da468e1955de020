// Package storage provides yard history storage using NATS KV.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/c360studio/shipyard/analytics"
	"github.com/c360studio/shipyard/ontology"
	vocab "github.com/c360studio/shipyard/vocabulary/shipyard"
)

// RecordType represents the type of record stored in KV.
type RecordType string

const (
	RecordTypeSnapshot   RecordType = "snapshot"
	RecordTypeReading    RecordType = "reading"
	RecordTypeInspection RecordType = "inspection"
)

// Bucket names for each record type.
const (
	BucketSnapshots   = "SHIPYARD_SNAPSHOTS"
	BucketReadings    = "SHIPYARD_READINGS"
	BucketInspections = "SHIPYARD_INSPECTIONS"
)

// RecordID represents a typed record identifier.
type RecordID struct {
	Type RecordType
	ID   string
}

// String returns the string representation of the record ID.
func (r RecordID) String() string {
	return fmt.Sprintf("%s:%s", r.Type, r.ID)
}

// ParseRecordID parses a record ID string into its components.
func ParseRecordID(s string) (RecordID, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return RecordID{}, fmt.Errorf("invalid record ID format: %s", s)
	}
	recordType := RecordType(parts[0])
	switch recordType {
	case RecordTypeSnapshot, RecordTypeReading, RecordTypeInspection:
		return RecordID{Type: recordType, ID: parts[1]}, nil
	default:
		return RecordID{}, fmt.Errorf("unknown record type: %s", parts[0])
	}
}

// NewRecordID generates a new unique record ID for the given type.
func NewRecordID(t RecordType) RecordID {
	return RecordID{
		Type: t,
		ID:   uuid.New().String(),
	}
}

// KPISnapshot is an archived KPI measurement of the yard at one point
// in time. Averages are omitted when no individuals contributed.
type KPISnapshot struct {
	ID                   string             `json:"id"`
	Counts               analytics.Snapshot `json:"counts"`
	AverageCompletion    *float64           `json:"average_completion,omitempty"`
	EquipmentUtilization *float64           `json:"equipment_utilization,omitempty"`
	AverageQuality       *float64           `json:"average_quality,omitempty"`
	AverageExperience    *float64           `json:"average_experience,omitempty"`
	CreatedAt            time.Time          `json:"created_at"`
}

// SnapshotFromGraph measures a graph into an archivable snapshot.
func SnapshotFromGraph(g *ontology.Graph) *KPISnapshot {
	snap := &KPISnapshot{Counts: analytics.TakeSnapshot(g)}
	if v, ok := analytics.AverageCompletion(g); ok {
		snap.AverageCompletion = &v
	}
	if v, ok := analytics.EquipmentUtilization(g); ok {
		snap.EquipmentUtilization = &v
	}
	if v, ok := analytics.AverageQualityScore(g); ok {
		snap.AverageQuality = &v
	}
	if v, ok := analytics.AverageExperience(g); ok {
		snap.AverageExperience = &v
	}
	return snap
}

// Reading is an archived sensor measurement.
type Reading struct {
	ID        string    `json:"id"`
	SensorID  string    `json:"sensor_id"`
	Kind      string    `json:"kind,omitempty"`
	Value     float64   `json:"value"`
	Timestamp time.Time `json:"timestamp"`
}

// ReadingsFromGraph extracts one archivable reading per sensor that
// carries a current value. Sensors without a reading are skipped.
func ReadingsFromGraph(g *ontology.Graph) []*Reading {
	var out []*Reading
	for _, s := range g.InstancesOf(ontology.ClassSensor) {
		value, ok := s.Float(ontology.PropReading)
		if !ok {
			continue
		}
		r := &Reading{SensorID: s.ID, Value: value}
		if kind, ok := vocab.SensorKindMap[string(s.Class)]; ok {
			r.Kind = string(kind)
		}
		if ts, ok := s.String(ontology.PropTimestamp); ok {
			if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
				r.Timestamp = parsed
			}
		}
		out = append(out, r)
	}
	return out
}

// PassingScore is the minimum quality score for an inspection to pass.
const PassingScore = 90.0

// InspectionsFromGraph extracts an inspection record for every component
// with a recorded quality score. The inspector name comes from the
// component's inspectedBy edge when present.
func InspectionsFromGraph(g *ontology.Graph) []*Inspection {
	var out []*Inspection
	for _, c := range g.InstancesOf(ontology.ClassVesselComponent) {
		score, ok := c.Float(ontology.PropQualityScore)
		if !ok {
			continue
		}
		insp := &Inspection{
			ComponentID: c.ID,
			Score:       score,
			Passed:      score >= PassingScore,
		}
		if inspector, ok := g.Object(c, ontology.PropInspectedBy); ok {
			insp.Inspector = inspector.Label()
		}
		out = append(out, insp)
	}
	return out
}

// Inspection is an archived quality inspection of a component.
type Inspection struct {
	ID          string    `json:"id"`
	ComponentID string    `json:"component_id"`
	Inspector   string    `json:"inspector"`
	Score       float64   `json:"score"`
	Passed      bool      `json:"passed"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store provides yard history storage operations backed by NATS KV.
type Store struct {
	snapshots   jetstream.KeyValue
	readings    jetstream.KeyValue
	inspections jetstream.KeyValue
}

// NewStore creates a new Store with the given JetStream context.
// It creates the necessary KV buckets if they don't exist.
func NewStore(ctx context.Context, js jetstream.JetStream) (*Store, error) {
	snapshots, err := getOrCreateBucket(ctx, js, BucketSnapshots)
	if err != nil {
		return nil, fmt.Errorf("create snapshots bucket: %w", err)
	}

	readings, err := getOrCreateBucket(ctx, js, BucketReadings)
	if err != nil {
		return nil, fmt.Errorf("create readings bucket: %w", err)
	}

	inspections, err := getOrCreateBucket(ctx, js, BucketInspections)
	if err != nil {
		return nil, fmt.Errorf("create inspections bucket: %w", err)
	}

	return &Store{
		snapshots:   snapshots,
		readings:    readings,
		inspections: inspections,
	}, nil
}

func getOrCreateBucket(ctx context.Context, js jetstream.JetStream, name string) (jetstream.KeyValue, error) {
	kv, err := js.KeyValue(ctx, name)
	if err == nil {
		return kv, nil
	}
	// Bucket doesn't exist, create it
	return js.CreateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      name,
		Description: fmt.Sprintf("Shipyard %s storage", strings.ToLower(name)),
		History:     5, // Keep last 5 revisions
	})
}

// CreateSnapshot archives a KPI snapshot and returns its ID.
func (s *Store) CreateSnapshot(ctx context.Context, snap *KPISnapshot) (RecordID, error) {
	id := NewRecordID(RecordTypeSnapshot)
	snap.ID = id.String()
	snap.CreatedAt = time.Now()

	data, err := json.Marshal(snap)
	if err != nil {
		return RecordID{}, fmt.Errorf("marshal snapshot: %w", err)
	}

	if _, err := s.snapshots.Create(ctx, id.ID, data); err != nil {
		return RecordID{}, fmt.Errorf("store snapshot: %w", err)
	}

	return id, nil
}

// GetSnapshot retrieves a snapshot by ID.
func (s *Store) GetSnapshot(ctx context.Context, id RecordID) (*KPISnapshot, error) {
	if id.Type != RecordTypeSnapshot {
		return nil, fmt.Errorf("invalid record type: expected snapshot, got %s", id.Type)
	}

	entry, err := s.snapshots.Get(ctx, id.ID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get snapshot: %w", err)
	}

	var snap KPISnapshot
	if err := json.Unmarshal(entry.Value(), &snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	return &snap, nil
}

// ListSnapshots returns all archived snapshots.
func (s *Store) ListSnapshots(ctx context.Context) ([]*KPISnapshot, error) {
	keys, err := s.snapshots.Keys(ctx)
	if err != nil {
		if err == jetstream.ErrNoKeysFound {
			return nil, nil
		}
		return nil, fmt.Errorf("list snapshot keys: %w", err)
	}

	snapshots := make([]*KPISnapshot, 0, len(keys))
	for _, key := range keys {
		entry, err := s.snapshots.Get(ctx, key)
		if err != nil {
			continue // Skip entries that fail to load
		}
		var snap KPISnapshot
		if err := json.Unmarshal(entry.Value(), &snap); err != nil {
			continue
		}
		snapshots = append(snapshots, &snap)
	}

	return snapshots, nil
}

// AppendReading archives a sensor reading and returns its ID.
func (s *Store) AppendReading(ctx context.Context, r *Reading) (RecordID, error) {
	id := NewRecordID(RecordTypeReading)
	r.ID = id.String()
	if r.Timestamp.IsZero() {
		r.Timestamp = time.Now()
	}

	data, err := json.Marshal(r)
	if err != nil {
		return RecordID{}, fmt.Errorf("marshal reading: %w", err)
	}

	if _, err := s.readings.Create(ctx, id.ID, data); err != nil {
		return RecordID{}, fmt.Errorf("store reading: %w", err)
	}

	return id, nil
}

// GetReading retrieves a reading by ID.
func (s *Store) GetReading(ctx context.Context, id RecordID) (*Reading, error) {
	if id.Type != RecordTypeReading {
		return nil, fmt.Errorf("invalid record type: expected reading, got %s", id.Type)
	}

	entry, err := s.readings.Get(ctx, id.ID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get reading: %w", err)
	}

	var r Reading
	if err := json.Unmarshal(entry.Value(), &r); err != nil {
		return nil, fmt.Errorf("unmarshal reading: %w", err)
	}

	return &r, nil
}

// ListReadingsBySensor returns all archived readings for a sensor.
func (s *Store) ListReadingsBySensor(ctx context.Context, sensorID string) ([]*Reading, error) {
	keys, err := s.readings.Keys(ctx)
	if err != nil {
		if err == jetstream.ErrNoKeysFound {
			return nil, nil
		}
		return nil, fmt.Errorf("list reading keys: %w", err)
	}

	readings := make([]*Reading, 0)
	for _, key := range keys {
		entry, err := s.readings.Get(ctx, key)
		if err != nil {
			continue
		}
		var r Reading
		if err := json.Unmarshal(entry.Value(), &r); err != nil {
			continue
		}
		if r.SensorID == sensorID {
			readings = append(readings, &r)
		}
	}

	return readings, nil
}

// CreateInspection archives an inspection and returns its ID.
func (s *Store) CreateInspection(ctx context.Context, insp *Inspection) (RecordID, error) {
	id := NewRecordID(RecordTypeInspection)
	insp.ID = id.String()
	insp.CreatedAt = time.Now()

	data, err := json.Marshal(insp)
	if err != nil {
		return RecordID{}, fmt.Errorf("marshal inspection: %w", err)
	}

	if _, err := s.inspections.Create(ctx, id.ID, data); err != nil {
		return RecordID{}, fmt.Errorf("store inspection: %w", err)
	}

	return id, nil
}

// GetInspection retrieves an inspection by ID.
func (s *Store) GetInspection(ctx context.Context, id RecordID) (*Inspection, error) {
	if id.Type != RecordTypeInspection {
		return nil, fmt.Errorf("invalid record type: expected inspection, got %s", id.Type)
	}

	entry, err := s.inspections.Get(ctx, id.ID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get inspection: %w", err)
	}

	var insp Inspection
	if err := json.Unmarshal(entry.Value(), &insp); err != nil {
		return nil, fmt.Errorf("unmarshal inspection: %w", err)
	}

	return &insp, nil
}

// GetInspectionByComponent retrieves the latest inspection for a component.
func (s *Store) GetInspectionByComponent(ctx context.Context, componentID string) (*Inspection, error) {
	keys, err := s.inspections.Keys(ctx)
	if err != nil {
		if err == jetstream.ErrNoKeysFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("list inspection keys: %w", err)
	}

	var latest *Inspection
	for _, key := range keys {
		entry, err := s.inspections.Get(ctx, key)
		if err != nil {
			continue
		}
		var insp Inspection
		if err := json.Unmarshal(entry.Value(), &insp); err != nil {
			continue
		}
		if insp.ComponentID != componentID {
			continue
		}
		if latest == nil || insp.CreatedAt.After(latest.CreatedAt) {
			latest = &insp
		}
	}

	if latest == nil {
		return nil, ErrNotFound
	}
	return latest, nil
}

// isNotFound checks if an error indicates a key was not found.
func isNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), "key not found")
}
