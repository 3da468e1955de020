package shipyard

import "github.com/c360studio/semstreams/vocabulary"

// Asset predicates define attributes shared by physical assets.
const (
	// AssetName is the display name of an asset.
	AssetName = "shipyard.asset.name"

	// AssetID is the business identifier (e.g. "DD-001").
	AssetID = "shipyard.asset.id"

	// AssetStatus is the operational status.
	// Values: operational, under_construction, maintenance, idle
	AssetStatus = "shipyard.asset.status"

	// AssetCapacity is the capacity specification (tonnage, square metres).
	AssetCapacity = "shipyard.asset.capacity"

	// AssetLocation links an asset or person to its facility.
	AssetLocation = "shipyard.asset.location"

	// EntityClass carries the ontology class IRIs asserted for an entity.
	EntityClass = "shipyard.entity.class"
)

// Vessel predicates define attributes of ships under construction.
const (
	// VesselType is the vessel type designation.
	// Values: "Container Ship", "Oil Tanker", "Bulk Carrier", ...
	VesselType = "shipyard.vessel.type"

	// VesselLength is the overall length in metres.
	VesselLength = "shipyard.vessel.length"

	// VesselDeadweight is the deadweight tonnage.
	VesselDeadweight = "shipyard.vessel.deadweight"

	// VesselCompletion is the construction completion percentage.
	VesselCompletion = "shipyard.vessel.completion"
)

// Component predicates define attributes of vessel components.
const (
	// ComponentVessel links a component to its parent vessel.
	ComponentVessel = "shipyard.component.vessel"

	// ComponentQuality is the quality score out of 100.
	ComponentQuality = "shipyard.component.quality"
)

// Sensor predicates define attributes of the IoT sensor network.
const (
	// SensorReading is the current reading value.
	SensorReading = "shipyard.sensor.reading"

	// SensorCoordinates is the GPS coordinate string for position sensors.
	SensorCoordinates = "shipyard.sensor.coordinates"

	// SensorTimestamp is the RFC3339 timestamp of the last observation.
	SensorTimestamp = "shipyard.sensor.timestamp"

	// SensorInstalledOn links a sensor to the asset it is mounted on.
	SensorInstalledOn = "shipyard.sensor.installed_on"

	// SensorMonitors links a sensor to the entity it observes.
	SensorMonitors = "shipyard.sensor.monitors"
)

// Person predicates define attributes of the workforce.
const (
	// PersonRole is the workforce role.
	// Values: welder, electrician, painter, engineer, inspector, safety_officer, manager
	PersonRole = "shipyard.person.role"

	// PersonExperience is the years of professional experience.
	PersonExperience = "shipyard.person.experience"

	// PersonCertification lists held certifications.
	PersonCertification = "shipyard.person.certification"

	// PersonSupervisor links a worker to their supervisor.
	PersonSupervisor = "shipyard.person.supervisor"
)

// Process predicates define attributes of manufacturing operations.
const (
	// ProcessStatusPredicate is the execution status.
	// Values: scheduled, in_progress, completed, pending
	ProcessStatusPredicate = "shipyard.process.status"

	// ProcessCompletion is the completion percentage.
	ProcessCompletion = "shipyard.process.completion"

	// ProcessPriority is the priority level.
	// Values: high, medium, low
	ProcessPriority = "shipyard.process.priority"

	// ProcessTemperature is the operating temperature for thermal processes.
	ProcessTemperature = "shipyard.process.temperature"

	// ProcessOperator links a process to the worker operating it.
	ProcessOperator = "shipyard.process.operator"

	// ProcessSupervisor links a process to its supervising engineer or manager.
	ProcessSupervisor = "shipyard.process.supervisor"

	// ProcessInspector links a process to its quality inspector.
	ProcessInspector = "shipyard.process.inspector"

	// ProcessProduces links a process to its output vessel or component.
	ProcessProduces = "shipyard.process.produces"

	// ProcessRequires links a process to required equipment, material or labour.
	ProcessRequires = "shipyard.process.requires"
)

// Material predicates define attributes of stock and consumables.
const (
	// MaterialQuantity is the stock quantity in unit-appropriate terms.
	MaterialQuantity = "shipyard.material.quantity"

	// MaterialUsedIn links a material to the process consuming it.
	MaterialUsedIn = "shipyard.material.used_in"
)

// System predicates define attributes of digital infrastructure.
const (
	// SystemManages links a digital system to managed entities.
	SystemManages = "shipyard.system.manages"
)

func init() {
	registerAssetPredicates()
	registerVesselPredicates()
	registerSensorPredicates()
	registerPersonPredicates()
	registerProcessPredicates()
	registerInventoryPredicates()
}

func registerAssetPredicates() {
	vocabulary.Register(AssetName,
		vocabulary.WithDescription("Display name of a shipyard asset"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropName))

	vocabulary.Register(AssetID,
		vocabulary.WithDescription("Business identifier of an asset"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropID))

	vocabulary.Register(AssetStatus,
		vocabulary.WithDescription("Operational status: operational, under_construction, maintenance, idle"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropStatus))

	vocabulary.Register(AssetCapacity,
		vocabulary.WithDescription("Capacity specification (tonnage or floor area)"),
		vocabulary.WithDataType("float"),
		vocabulary.WithIRI(PropCapacity))

	vocabulary.Register(AssetLocation,
		vocabulary.WithDescription("Links an asset or person to the facility it is located in"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropLocatedIn))

	vocabulary.Register(EntityClass,
		vocabulary.WithDescription("Ontology class IRIs asserted for an entity"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(RDFType))
}

func registerVesselPredicates() {
	vocabulary.Register(VesselType,
		vocabulary.WithDescription("Vessel type designation"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropVesselType))

	vocabulary.Register(VesselLength,
		vocabulary.WithDescription("Overall vessel length in metres"),
		vocabulary.WithDataType("float"),
		vocabulary.WithIRI(PropLength))

	vocabulary.Register(VesselDeadweight,
		vocabulary.WithDescription("Deadweight tonnage"),
		vocabulary.WithDataType("float"),
		vocabulary.WithIRI(PropDeadweight))

	vocabulary.Register(VesselCompletion,
		vocabulary.WithDescription("Construction completion percentage"),
		vocabulary.WithDataType("float"),
		vocabulary.WithIRI(PropCompletion))

	vocabulary.Register(ComponentVessel,
		vocabulary.WithDescription("Links a component to its parent vessel"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropPartOf))

	vocabulary.Register(ComponentQuality,
		vocabulary.WithDescription("Component quality score out of 100"),
		vocabulary.WithDataType("float"),
		vocabulary.WithIRI(PropQualityScore))
}

func registerSensorPredicates() {
	vocabulary.Register(SensorReading,
		vocabulary.WithDescription("Current sensor reading value"),
		vocabulary.WithDataType("float"),
		vocabulary.WithIRI(PropReading))

	vocabulary.Register(SensorCoordinates,
		vocabulary.WithDescription("GPS coordinate string for position sensors"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropCoordinates))

	vocabulary.Register(SensorTimestamp,
		vocabulary.WithDescription("RFC3339 timestamp of the last observation"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropTimestamp))

	vocabulary.Register(SensorInstalledOn,
		vocabulary.WithDescription("Links a sensor to the asset it is mounted on"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropInstalledOn))

	vocabulary.Register(SensorMonitors,
		vocabulary.WithDescription("Links a sensor to the entity it observes"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropMonitors))
}

func registerPersonPredicates() {
	vocabulary.Register(PersonRole,
		vocabulary.WithDescription("Workforce role: welder, electrician, painter, engineer, inspector, safety_officer, manager"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"role"))

	vocabulary.Register(PersonExperience,
		vocabulary.WithDescription("Years of professional experience"),
		vocabulary.WithDataType("int"),
		vocabulary.WithIRI(PropExperience))

	vocabulary.Register(PersonCertification,
		vocabulary.WithDescription("Held certifications"),
		vocabulary.WithDataType("array"),
		vocabulary.WithIRI(PropCertification))

	vocabulary.Register(PersonSupervisor,
		vocabulary.WithDescription("Links a worker to their supervisor"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropSupervisedBy))
}

func registerProcessPredicates() {
	vocabulary.Register(ProcessStatusPredicate,
		vocabulary.WithDescription("Process execution status: scheduled, in_progress, completed, pending"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropStatus))

	vocabulary.Register(ProcessCompletion,
		vocabulary.WithDescription("Process completion percentage"),
		vocabulary.WithDataType("float"),
		vocabulary.WithIRI(PropCompletion))

	vocabulary.Register(ProcessPriority,
		vocabulary.WithDescription("Process priority: high, medium, low"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropPriority))

	vocabulary.Register(ProcessTemperature,
		vocabulary.WithDescription("Operating temperature for thermal processes"),
		vocabulary.WithDataType("float"),
		vocabulary.WithIRI(PropTemperature))

	vocabulary.Register(ProcessOperator,
		vocabulary.WithDescription("Links a process to the worker operating it"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropOperatedBy))

	vocabulary.Register(ProcessSupervisor,
		vocabulary.WithDescription("Links a process to its supervising engineer or manager"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropSupervisedBy))

	vocabulary.Register(ProcessInspector,
		vocabulary.WithDescription("Links a process to its quality inspector"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropInspectedBy))

	vocabulary.Register(ProcessProduces,
		vocabulary.WithDescription("Links a process to its output vessel or component"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropProduces))

	vocabulary.Register(ProcessRequires,
		vocabulary.WithDescription("Links a process to required equipment, material or labour"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropRequires))
}

func registerInventoryPredicates() {
	vocabulary.Register(MaterialQuantity,
		vocabulary.WithDescription("Stock quantity in unit-appropriate terms"),
		vocabulary.WithDataType("int"),
		vocabulary.WithIRI(PropQuantity))

	vocabulary.Register(MaterialUsedIn,
		vocabulary.WithDescription("Links a material to the process consuming it"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropUsedIn))

	vocabulary.Register(SystemManages,
		vocabulary.WithDescription("Links a digital system to the entities it manages"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropManages))
}
