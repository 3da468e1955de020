package shipyard

// EntityType represents the kind of a shipyard entity for mapping and
// entity-ID purposes.
type EntityType string

// Entity type constants map entity kinds to their string identifiers.
const (
	// EntityTypeVessel is the entity type for ships under construction.
	EntityTypeVessel EntityType = "vessel"
	// EntityTypeComponent is the entity type for vessel components.
	EntityTypeComponent EntityType = "component"
	// EntityTypeFacility is the entity type for yard facilities.
	EntityTypeFacility EntityType = "facility"
	// EntityTypeEquipment is the entity type for yard equipment.
	EntityTypeEquipment EntityType = "equipment"
	// EntityTypeSensor is the entity type for IoT sensors.
	EntityTypeSensor EntityType = "sensor"
	// EntityTypePerson is the entity type for workforce members.
	EntityTypePerson EntityType = "person"
	// EntityTypeProcess is the entity type for manufacturing processes.
	EntityTypeProcess EntityType = "process"
	// EntityTypeMaterial is the entity type for stock materials.
	EntityTypeMaterial EntityType = "material"
	// EntityTypeSystem is the entity type for digital systems.
	EntityTypeSystem EntityType = "system"
)

// ClassIRIMap maps simple class names to their full ontology IRIs.
// Use this for RDF export type assertions.
var ClassIRIMap = map[string]string{
	"Thing":              ClassThing,
	"PhysicalAsset":      ClassPhysicalAsset,
	"Vessel":             ClassVessel,
	"VesselComponent":    ClassVesselComponent,
	"Hull":               ClassHull,
	"Engine":             ClassEngine,
	"NavigationSystem":   ClassNavigationSystem,
	"ElectricalSystem":   ClassElectricalSystem,
	"ShipyardFacility":   ClassShipyardFacility,
	"DryDock":            ClassDryDock,
	"Workshop":           ClassWorkshop,
	"WeldingStation":     ClassWeldingStation,
	"PaintingStation":    ClassPaintingStation,
	"AssemblyStation":    ClassAssemblyStation,
	"Warehouse":          ClassWarehouse,
	"Equipment":          ClassEquipment,
	"Crane":              ClassCrane,
	"WeldingRobot":       ClassWeldingRobot,
	"CuttingMachine":     ClassCuttingMachine,
	"TransportVehicle":   ClassTransportVehicle,
	"Sensor":             ClassSensor,
	"TemperatureSensor":  ClassTemperatureSensor,
	"VibrationSensor":    ClassVibrationSensor,
	"PressureSensor":     ClassPressureSensor,
	"HumiditySensor":     ClassHumiditySensor,
	"PositionSensor":     ClassPositionSensor,
	"SafetySensor":       ClassSafetySensor,
	"QualitySensor":      ClassQualitySensor,
	"Person":             ClassPerson,
	"Worker":             ClassWorker,
	"Welder":             ClassWelder,
	"Electrician":        ClassElectrician,
	"Painter":            ClassPainter,
	"Engineer":           ClassEngineer,
	"QualityInspector":   ClassQualityInspector,
	"SafetyOfficer":      ClassSafetyOfficer,
	"Manager":            ClassManager,
	"Process":            ClassProcess,
	"WeldingProcess":     ClassWeldingProcess,
	"AssemblyProcess":    ClassAssemblyProcess,
	"InspectionProcess":  ClassInspectionProcess,
	"PaintingProcess":    ClassPaintingProcess,
	"MaintenanceProcess": ClassMaintenanceProcess,
	"Material":           ClassMaterial,
	"SteelPlate":         ClassSteelPlate,
	"Paint":              ClassPaint,
	"WeldingRod":         ClassWeldingRod,
	"ElectricalCable":    ClassElectricalCable,
	"DigitalSystem":      ClassDigitalSystem,
	"MES":                ClassMES,
	"ERP":                ClassERP,
	"DigitalTwin":        ClassDigitalTwin,
	"AISystem":           ClassAISystem,
}

// classNameByIRI is the reverse of ClassIRIMap, built once at init.
var classNameByIRI = func() map[string]string {
	m := make(map[string]string, len(ClassIRIMap))
	for name, iri := range ClassIRIMap {
		m[iri] = name
	}
	return m
}()

// ClassNameForIRI resolves a class IRI back to its simple class name.
// Used when re-loading exported documents.
func ClassNameForIRI(iri string) (string, bool) {
	name, ok := classNameByIRI[iri]
	return name, ok
}

// EntityTypeClassMap maps entity types to their taxonomy branch class IRI.
var EntityTypeClassMap = map[EntityType]string{
	EntityTypeVessel:    ClassVessel,
	EntityTypeComponent: ClassVesselComponent,
	EntityTypeFacility:  ClassShipyardFacility,
	EntityTypeEquipment: ClassEquipment,
	EntityTypeSensor:    ClassSensor,
	EntityTypePerson:    ClassPerson,
	EntityTypeProcess:   ClassProcess,
	EntityTypeMaterial:  ClassMaterial,
	EntityTypeSystem:    ClassDigitalSystem,
}

// GetTypesForEntity returns the class IRIs asserted for an entity type:
// its taxonomy branch class followed by the root Thing class.
func GetTypesForEntity(entityType EntityType) []string {
	types := make([]string, 0, 2)
	if iri, ok := EntityTypeClassMap[entityType]; ok {
		types = append(types, iri)
	}
	return append(types, ClassThing)
}

// SensorKindMap maps sensor class names to their measurement kind.
var SensorKindMap = map[string]SensorKind{
	"TemperatureSensor": SensorKindTemperature,
	"VibrationSensor":   SensorKindVibration,
	"PressureSensor":    SensorKindPressure,
	"HumiditySensor":    SensorKindHumidity,
	"PositionSensor":    SensorKindPosition,
	"SafetySensor":      SensorKindSafety,
	"QualitySensor":     SensorKindQuality,
}

// MaterialKindMap maps material class names to their stock category.
var MaterialKindMap = map[string]MaterialKind{
	"SteelPlate":      MaterialKindSteelPlate,
	"Paint":           MaterialKindPaint,
	"WeldingRod":      MaterialKindWeldingRod,
	"ElectricalCable": MaterialKindElectricalCable,
}

// SystemKindMap maps digital-system class names to their category.
var SystemKindMap = map[string]SystemKind{
	"MES":         SystemKindMES,
	"ERP":         SystemKindERP,
	"DigitalTwin": SystemKindDigitalTwin,
	"AISystem":    SystemKindAI,
}

// ObjectPropertyIRIMap maps object property names to their full IRIs.
var ObjectPropertyIRIMap = map[string]string{
	"locatedIn":    PropLocatedIn,
	"partOf":       PropPartOf,
	"installedOn":  PropInstalledOn,
	"operatedBy":   PropOperatedBy,
	"supervisedBy": PropSupervisedBy,
	"inspectedBy":  PropInspectedBy,
	"monitors":     PropMonitors,
	"usedIn":       PropUsedIn,
	"produces":     PropProduces,
	"requires":     PropRequires,
	"manages":      PropManages,
}

// DataPropertyIRIMap maps data property names to their full IRIs.
var DataPropertyIRIMap = map[string]string{
	"hasName":                 PropName,
	"hasID":                   PropID,
	"hasStatus":               PropStatus,
	"hasCapacity":             PropCapacity,
	"hasReading":              PropReading,
	"hasCoordinates":          PropCoordinates,
	"hasQuantity":             PropQuantity,
	"hasCompletionPercentage": PropCompletion,
	"hasVesselType":           PropVesselType,
	"hasLength":               PropLength,
	"hasDeadweight":           PropDeadweight,
	"hasExperience":           PropExperience,
	"hasCertification":        PropCertification,
	"hasTimestamp":            PropTimestamp,
	"hasPriority":             PropPriority,
	"hasQualityScore":         PropQualityScore,
	"hasTemperature":          PropTemperature,
}

// objectPropertyNameByIRI is the reverse of ObjectPropertyIRIMap.
var objectPropertyNameByIRI = func() map[string]string {
	m := make(map[string]string, len(ObjectPropertyIRIMap))
	for name, iri := range ObjectPropertyIRIMap {
		m[iri] = name
	}
	return m
}()

// ObjectPropertyNameForIRI resolves an object property IRI to its name.
func ObjectPropertyNameForIRI(iri string) (string, bool) {
	name, ok := objectPropertyNameByIRI[iri]
	return name, ok
}

// PredicateIRIMap maps internal dotted predicates to ontology IRIs.
// Use this for RDF export to translate dotted predicates to full IRIs.
var PredicateIRIMap = map[string]string{
	AssetName:     PropName,
	AssetID:       PropID,
	AssetStatus:   PropStatus,
	AssetCapacity: PropCapacity,
	AssetLocation: PropLocatedIn,
	EntityClass:   RDFType,

	VesselType:       PropVesselType,
	VesselLength:     PropLength,
	VesselDeadweight: PropDeadweight,
	VesselCompletion: PropCompletion,

	ComponentVessel:  PropPartOf,
	ComponentQuality: PropQualityScore,

	SensorReading:     PropReading,
	SensorCoordinates: PropCoordinates,
	SensorTimestamp:   PropTimestamp,
	SensorInstalledOn: PropInstalledOn,
	SensorMonitors:    PropMonitors,

	PersonRole:          Namespace + "role",
	PersonExperience:    PropExperience,
	PersonCertification: PropCertification,
	PersonSupervisor:    PropSupervisedBy,

	ProcessStatusPredicate: PropStatus,
	ProcessCompletion:      PropCompletion,
	ProcessPriority:        PropPriority,
	ProcessTemperature:     PropTemperature,
	ProcessOperator:        PropOperatedBy,
	ProcessSupervisor:      PropSupervisedBy,
	ProcessInspector:       PropInspectedBy,
	ProcessProduces:        PropProduces,
	ProcessRequires:        PropRequires,

	MaterialQuantity: PropQuantity,
	MaterialUsedIn:   PropUsedIn,

	SystemManages: PropManages,
}

// GetPredicateIRI returns the ontology IRI for a dotted predicate.
// Unmapped predicates fall back to the shipyard namespace.
func GetPredicateIRI(predicate string) string {
	if iri, ok := PredicateIRIMap[predicate]; ok {
		return iri
	}
	return Namespace + predicate
}
