// Package ontology defines the static shipyard schema and the in-memory
// graph of individuals built against it.
//
// The schema is declared as explicit tagged variants: every class is an
// enumerated constant with a declared parent, and every relationship is a
// row in a static property table carrying its domain and range classes.
// The whole table is validated once at construction; there is no runtime
// class discovery and no process-wide registry. All state lives in a Graph
// value that callers create, populate, and pass around explicitly.
package ontology

// Class identifies a node in the shipyard taxonomy.
type Class string

// Taxonomy classes. Each class except ClassThing declares its parent in
// classParents below; the hierarchy is single-rooted at ClassThing.
const (
	ClassThing Class = "Thing"

	// Physical infrastructure
	ClassPhysicalAsset    Class = "PhysicalAsset"
	ClassVessel           Class = "Vessel"
	ClassVesselComponent  Class = "VesselComponent"
	ClassHull             Class = "Hull"
	ClassEngine           Class = "Engine"
	ClassNavigationSystem Class = "NavigationSystem"
	ClassElectricalSystem Class = "ElectricalSystem"
	ClassShipyardFacility Class = "ShipyardFacility"
	ClassDryDock          Class = "DryDock"
	ClassWorkshop         Class = "Workshop"
	ClassWeldingStation   Class = "WeldingStation"
	ClassPaintingStation  Class = "PaintingStation"
	ClassAssemblyStation  Class = "AssemblyStation"
	ClassWarehouse        Class = "Warehouse"

	// Equipment and machinery
	ClassEquipment        Class = "Equipment"
	ClassCrane            Class = "Crane"
	ClassWeldingRobot     Class = "WeldingRobot"
	ClassCuttingMachine   Class = "CuttingMachine"
	ClassTransportVehicle Class = "TransportVehicle"

	// IoT sensors
	ClassSensor            Class = "Sensor"
	ClassTemperatureSensor Class = "TemperatureSensor"
	ClassVibrationSensor   Class = "VibrationSensor"
	ClassPressureSensor    Class = "PressureSensor"
	ClassHumiditySensor    Class = "HumiditySensor"
	ClassPositionSensor    Class = "PositionSensor"
	ClassSafetySensor      Class = "SafetySensor"
	ClassQualitySensor     Class = "QualitySensor"

	// Workforce
	ClassPerson           Class = "Person"
	ClassWorker           Class = "Worker"
	ClassWelder           Class = "Welder"
	ClassElectrician      Class = "Electrician"
	ClassPainter          Class = "Painter"
	ClassEngineer         Class = "Engineer"
	ClassQualityInspector Class = "QualityInspector"
	ClassSafetyOfficer    Class = "SafetyOfficer"
	ClassManager          Class = "Manager"

	// Processes
	ClassProcess            Class = "Process"
	ClassWeldingProcess     Class = "WeldingProcess"
	ClassAssemblyProcess    Class = "AssemblyProcess"
	ClassInspectionProcess  Class = "InspectionProcess"
	ClassPaintingProcess    Class = "PaintingProcess"
	ClassMaintenanceProcess Class = "MaintenanceProcess"

	// Materials
	ClassMaterial        Class = "Material"
	ClassSteelPlate      Class = "SteelPlate"
	ClassPaint           Class = "Paint"
	ClassWeldingRod      Class = "WeldingRod"
	ClassElectricalCable Class = "ElectricalCable"

	// Digital systems
	ClassDigitalSystem Class = "DigitalSystem"
	ClassMES           Class = "MES"
	ClassERP           Class = "ERP"
	ClassDigitalTwin   Class = "DigitalTwin"
	ClassAISystem      Class = "AISystem"
)

// classDeclarations lists every class in declaration order together with
// its parent. Order is preserved so schema listings are deterministic.
var classDeclarations = []struct {
	class  Class
	parent Class
}{
	{ClassThing, ""},

	{ClassPhysicalAsset, ClassThing},
	{ClassVessel, ClassPhysicalAsset},
	{ClassVesselComponent, ClassPhysicalAsset},
	{ClassHull, ClassVesselComponent},
	{ClassEngine, ClassVesselComponent},
	{ClassNavigationSystem, ClassVesselComponent},
	{ClassElectricalSystem, ClassVesselComponent},
	{ClassShipyardFacility, ClassPhysicalAsset},
	{ClassDryDock, ClassShipyardFacility},
	{ClassWorkshop, ClassShipyardFacility},
	{ClassWeldingStation, ClassWorkshop},
	{ClassPaintingStation, ClassWorkshop},
	{ClassAssemblyStation, ClassWorkshop},
	{ClassWarehouse, ClassShipyardFacility},

	{ClassEquipment, ClassPhysicalAsset},
	{ClassCrane, ClassEquipment},
	{ClassWeldingRobot, ClassEquipment},
	{ClassCuttingMachine, ClassEquipment},
	{ClassTransportVehicle, ClassEquipment},

	{ClassSensor, ClassThing},
	{ClassTemperatureSensor, ClassSensor},
	{ClassVibrationSensor, ClassSensor},
	{ClassPressureSensor, ClassSensor},
	{ClassHumiditySensor, ClassSensor},
	{ClassPositionSensor, ClassSensor},
	{ClassSafetySensor, ClassSensor},
	{ClassQualitySensor, ClassSensor},

	{ClassPerson, ClassThing},
	{ClassWorker, ClassPerson},
	{ClassWelder, ClassWorker},
	{ClassElectrician, ClassWorker},
	{ClassPainter, ClassWorker},
	{ClassEngineer, ClassPerson},
	{ClassQualityInspector, ClassPerson},
	{ClassSafetyOfficer, ClassPerson},
	{ClassManager, ClassPerson},

	{ClassProcess, ClassThing},
	{ClassWeldingProcess, ClassProcess},
	{ClassAssemblyProcess, ClassProcess},
	{ClassInspectionProcess, ClassProcess},
	{ClassPaintingProcess, ClassProcess},
	{ClassMaintenanceProcess, ClassProcess},

	{ClassMaterial, ClassThing},
	{ClassSteelPlate, ClassMaterial},
	{ClassPaint, ClassMaterial},
	{ClassWeldingRod, ClassMaterial},
	{ClassElectricalCable, ClassMaterial},

	{ClassDigitalSystem, ClassThing},
	{ClassMES, ClassDigitalSystem},
	{ClassERP, ClassDigitalSystem},
	{ClassDigitalTwin, ClassDigitalSystem},
	{ClassAISystem, ClassDigitalSystem},
}
