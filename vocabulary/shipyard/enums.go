package shipyard

// VesselStatus represents the construction status of a vessel.
type VesselStatus string

const (
	// VesselStatusUnderConstruction indicates active construction.
	VesselStatusUnderConstruction VesselStatus = "under_construction"

	// VesselStatusFittingOut indicates post-launch outfitting.
	VesselStatusFittingOut VesselStatus = "fitting_out"

	// VesselStatusSeaTrials indicates the vessel is in sea trials.
	VesselStatusSeaTrials VesselStatus = "sea_trials"

	// VesselStatusDelivered indicates the vessel has been handed over.
	VesselStatusDelivered VesselStatus = "delivered"
)

// EquipmentStatus represents the operational status of equipment.
type EquipmentStatus string

const (
	// EquipmentStatusOperational indicates the equipment is in service.
	EquipmentStatusOperational EquipmentStatus = "operational"

	// EquipmentStatusMaintenance indicates the equipment is under maintenance.
	EquipmentStatusMaintenance EquipmentStatus = "maintenance"

	// EquipmentStatusIdle indicates the equipment is out of rotation.
	EquipmentStatusIdle EquipmentStatus = "idle"
)

// ProcessStatus represents the execution status of a process.
type ProcessStatus string

const (
	// ProcessStatusScheduled indicates the process is planned but not started.
	ProcessStatusScheduled ProcessStatus = "scheduled"

	// ProcessStatusPending indicates the process is waiting on a dependency.
	ProcessStatusPending ProcessStatus = "pending"

	// ProcessStatusInProgress indicates the process is running.
	ProcessStatusInProgress ProcessStatus = "in_progress"

	// ProcessStatusCompleted indicates the process has finished.
	ProcessStatusCompleted ProcessStatus = "completed"
)

// Priority represents the priority level of a process.
type Priority string

const (
	// PriorityHigh marks time-critical work.
	PriorityHigh Priority = "high"

	// PriorityMedium marks standard-schedule work.
	PriorityMedium Priority = "medium"

	// PriorityLow marks deferrable work.
	PriorityLow Priority = "low"
)

// SensorKind represents the measurement domain of a sensor.
type SensorKind string

const (
	// SensorKindTemperature measures temperature in degrees Celsius.
	SensorKindTemperature SensorKind = "temperature"

	// SensorKindVibration measures vibration in mm/s.
	SensorKindVibration SensorKind = "vibration"

	// SensorKindPressure measures pressure in bar.
	SensorKindPressure SensorKind = "pressure"

	// SensorKindHumidity measures relative humidity percentage.
	SensorKindHumidity SensorKind = "humidity"

	// SensorKindPosition tracks GPS position.
	SensorKindPosition SensorKind = "position"

	// SensorKindSafety detects gas, fire and other hazards.
	SensorKindSafety SensorKind = "safety"

	// SensorKindQuality performs inspection measurements.
	SensorKindQuality SensorKind = "quality"
)

// MaterialKind represents the stock category of a material.
type MaterialKind string

const (
	// MaterialKindSteelPlate is hull construction plating.
	MaterialKindSteelPlate MaterialKind = "steel_plate"

	// MaterialKindPaint is coating stock.
	MaterialKindPaint MaterialKind = "paint"

	// MaterialKindWeldingRod is welding consumable stock.
	MaterialKindWeldingRod MaterialKind = "welding_rod"

	// MaterialKindElectricalCable is cabling stock.
	MaterialKindElectricalCable MaterialKind = "electrical_cable"
)

// SystemKind represents the category of a digital system.
type SystemKind string

const (
	// SystemKindMES is a manufacturing execution system.
	SystemKindMES SystemKind = "mes"

	// SystemKindERP is an enterprise resource planning system.
	SystemKindERP SystemKind = "erp"

	// SystemKindDigitalTwin is a virtual vessel replica.
	SystemKindDigitalTwin SystemKind = "digital_twin"

	// SystemKindAI is an AI-driven optimization system.
	SystemKindAI SystemKind = "ai"
)

// PersonRoleKind represents the workforce role of a person.
type PersonRoleKind string

const (
	// RoleWelder is a welding specialist.
	RoleWelder PersonRoleKind = "welder"

	// RoleElectrician is an electrical systems specialist.
	RoleElectrician PersonRoleKind = "electrician"

	// RolePainter is a painting specialist.
	RolePainter PersonRoleKind = "painter"

	// RoleEngineer is engineering staff.
	RoleEngineer PersonRoleKind = "engineer"

	// RoleInspector is a quality control inspector.
	RoleInspector PersonRoleKind = "inspector"

	// RoleSafetyOfficer is safety management staff.
	RoleSafetyOfficer PersonRoleKind = "safety_officer"

	// RoleManager is management staff.
	RoleManager PersonRoleKind = "manager"
)
