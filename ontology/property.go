package ontology

// ValueKind is the literal type of a data property.
type ValueKind string

// Literal kinds supported by data properties.
const (
	KindString ValueKind = "string"
	KindInt    ValueKind = "int"
	KindFloat  ValueKind = "float"
)

// Object property names. These are the edge labels of the graph.
const (
	PropLocatedIn    = "locatedIn"
	PropPartOf       = "partOf"
	PropInstalledOn  = "installedOn"
	PropOperatedBy   = "operatedBy"
	PropSupervisedBy = "supervisedBy"
	PropInspectedBy  = "inspectedBy"
	PropMonitors     = "monitors"
	PropUsedIn       = "usedIn"
	PropProduces     = "produces"
	PropRequires     = "requires"
	PropManages      = "manages"
)

// Data property names.
const (
	PropName          = "hasName"
	PropID            = "hasID"
	PropStatus        = "hasStatus"
	PropCapacity      = "hasCapacity"
	PropReading       = "hasReading"
	PropCoordinates   = "hasCoordinates"
	PropQuantity      = "hasQuantity"
	PropCompletion    = "hasCompletionPercentage"
	PropVesselType    = "hasVesselType"
	PropLength        = "hasLength"
	PropDeadweight    = "hasDeadweight"
	PropExperience    = "hasExperience"
	PropCertification = "hasCertification"
	PropTimestamp     = "hasTimestamp"
	PropPriority      = "hasPriority"
	PropQualityScore  = "hasQualityScore"
	PropTemperature   = "hasTemperature"
)

// ObjectProperty declares a named, directed relationship between classes.
// An edge (a, p, b) is valid when a's class is within one of p's domain
// classes and b's class is within one of p's range classes. Functional
// properties allow at most one outgoing edge per subject.
type ObjectProperty struct {
	Name       string
	Domain     []Class
	Range      []Class
	Functional bool
}

// DataProperty declares a named literal attribute with its value kind and
// the classes allowed to carry it. Functional properties hold one value;
// non-functional ones accumulate.
type DataProperty struct {
	Name       string
	Kind       ValueKind
	Domain     []Class
	Functional bool
}

// objectPropertyTable is the static relationship table of the ontology.
var objectPropertyTable = []ObjectProperty{
	{
		Name:   PropLocatedIn,
		Domain: []Class{ClassPhysicalAsset, ClassPerson, ClassMaterial},
		Range:  []Class{ClassShipyardFacility},
	},
	{
		Name:   PropPartOf,
		Domain: []Class{ClassVesselComponent},
		Range:  []Class{ClassVessel},
	},
	{
		Name:       PropInstalledOn,
		Domain:     []Class{ClassSensor},
		Range:      []Class{ClassPhysicalAsset},
		Functional: true,
	},
	{
		Name:       PropOperatedBy,
		Domain:     []Class{ClassEquipment, ClassProcess},
		Range:      []Class{ClassWorker},
		Functional: true,
	},
	{
		Name:       PropSupervisedBy,
		Domain:     []Class{ClassWorker, ClassProcess},
		Range:      []Class{ClassManager, ClassEngineer},
		Functional: true,
	},
	{
		Name:       PropInspectedBy,
		Domain:     []Class{ClassVessel, ClassVesselComponent, ClassProcess},
		Range:      []Class{ClassQualityInspector},
		Functional: true,
	},
	{
		Name:       PropMonitors,
		Domain:     []Class{ClassSensor},
		Range:      []Class{ClassPhysicalAsset, ClassProcess},
		Functional: true,
	},
	{
		Name:       PropUsedIn,
		Domain:     []Class{ClassMaterial},
		Range:      []Class{ClassProcess},
		Functional: true,
	},
	{
		Name:       PropProduces,
		Domain:     []Class{ClassProcess},
		Range:      []Class{ClassVesselComponent, ClassVessel},
		Functional: true,
	},
	{
		Name:       PropRequires,
		Domain:     []Class{ClassProcess},
		Range:      []Class{ClassEquipment, ClassMaterial, ClassWorker},
		Functional: true,
	},
	{
		Name:   PropManages,
		Domain: []Class{ClassDigitalSystem},
		Range:  []Class{ClassProcess, ClassEquipment, ClassMaterial},
	},
}

// dataPropertyTable is the static attribute table of the ontology.
var dataPropertyTable = []DataProperty{
	{Name: PropName, Kind: KindString, Domain: []Class{ClassThing}, Functional: true},
	{Name: PropID, Kind: KindString, Domain: []Class{ClassThing}, Functional: true},
	{Name: PropStatus, Kind: KindString, Domain: []Class{ClassEquipment, ClassProcess, ClassVessel}, Functional: true},
	{Name: PropCapacity, Kind: KindFloat, Domain: []Class{ClassEquipment, ClassShipyardFacility}, Functional: true},
	{Name: PropReading, Kind: KindFloat, Domain: []Class{ClassSensor}, Functional: true},
	{Name: PropCoordinates, Kind: KindString, Domain: []Class{ClassPositionSensor, ClassShipyardFacility}, Functional: true},
	{Name: PropQuantity, Kind: KindInt, Domain: []Class{ClassMaterial}, Functional: true},
	{Name: PropCompletion, Kind: KindFloat, Domain: []Class{ClassProcess, ClassVessel}, Functional: true},
	{Name: PropVesselType, Kind: KindString, Domain: []Class{ClassVessel}, Functional: true},
	{Name: PropLength, Kind: KindFloat, Domain: []Class{ClassVessel}, Functional: true},
	{Name: PropDeadweight, Kind: KindFloat, Domain: []Class{ClassVessel}, Functional: true},
	{Name: PropExperience, Kind: KindInt, Domain: []Class{ClassPerson}, Functional: true},
	{Name: PropCertification, Kind: KindString, Domain: []Class{ClassPerson}},
	{Name: PropTimestamp, Kind: KindString, Domain: []Class{ClassSensor, ClassProcess}, Functional: true},
	{Name: PropPriority, Kind: KindString, Domain: []Class{ClassProcess}, Functional: true},
	{Name: PropQualityScore, Kind: KindFloat, Domain: []Class{ClassVesselComponent, ClassProcess}, Functional: true},
	{Name: PropTemperature, Kind: KindFloat, Domain: []Class{ClassProcess}, Functional: true},
}
