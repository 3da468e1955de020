package shipyard

// Namespace is the base IRI prefix for all shipyard ontology terms.
const Namespace = "https://smartshipyard.dev/ontology/"

// EntityNamespace is the base IRI for shipyard entity instances.
const EntityNamespace = "https://smartshipyard.dev/entity/"

// RDFType is the standard rdf:type predicate IRI.
const RDFType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

// Class IRIs define the types of entities in the shipyard ontology.
// The taxonomy is single-rooted at ClassThing.
const (
	// ClassThing is the taxonomy root.
	ClassThing = Namespace + "Thing"

	// ClassPhysicalAsset is the base class for all physical assets.
	// Parent: ClassThing
	ClassPhysicalAsset = Namespace + "PhysicalAsset"

	// ClassVessel represents a ship under construction or maintenance.
	// Parent: ClassPhysicalAsset
	ClassVessel = Namespace + "Vessel"

	// ClassVesselComponent represents a component that makes up a vessel.
	// Parent: ClassPhysicalAsset
	ClassVesselComponent = Namespace + "VesselComponent"

	// ClassHull represents a ship hull structure.
	// Parent: ClassVesselComponent
	ClassHull = Namespace + "Hull"

	// ClassEngine represents a propulsion system.
	// Parent: ClassVesselComponent
	ClassEngine = Namespace + "Engine"

	// ClassNavigationSystem represents navigation and control systems.
	// Parent: ClassVesselComponent
	ClassNavigationSystem = Namespace + "NavigationSystem"

	// ClassElectricalSystem represents electrical infrastructure.
	// Parent: ClassVesselComponent
	ClassElectricalSystem = Namespace + "ElectricalSystem"

	// ClassShipyardFacility represents a physical facility in the yard.
	// Parent: ClassPhysicalAsset
	ClassShipyardFacility = Namespace + "ShipyardFacility"

	// ClassDryDock represents a dry dock for construction and maintenance.
	// Parent: ClassShipyardFacility
	ClassDryDock = Namespace + "DryDock"

	// ClassWorkshop represents a manufacturing and assembly workshop.
	// Parent: ClassShipyardFacility
	ClassWorkshop = Namespace + "Workshop"

	// ClassWeldingStation represents a station for welding operations.
	// Parent: ClassWorkshop
	ClassWeldingStation = Namespace + "WeldingStation"

	// ClassPaintingStation represents a station for painting and coating.
	// Parent: ClassWorkshop
	ClassPaintingStation = Namespace + "PaintingStation"

	// ClassAssemblyStation represents a station for component assembly.
	// Parent: ClassWorkshop
	ClassAssemblyStation = Namespace + "AssemblyStation"

	// ClassWarehouse represents a storage facility.
	// Parent: ClassShipyardFacility
	ClassWarehouse = Namespace + "Warehouse"

	// ClassEquipment represents manufacturing and construction equipment.
	// Parent: ClassPhysicalAsset
	ClassEquipment = Namespace + "Equipment"

	// ClassCrane represents heavy lifting equipment.
	// Parent: ClassEquipment
	ClassCrane = Namespace + "Crane"

	// ClassWeldingRobot represents an automated welding system.
	// Parent: ClassEquipment
	ClassWeldingRobot = Namespace + "WeldingRobot"

	// ClassCuttingMachine represents metal cutting equipment.
	// Parent: ClassEquipment
	ClassCuttingMachine = Namespace + "CuttingMachine"

	// ClassTransportVehicle represents a material transport vehicle.
	// Parent: ClassEquipment
	ClassTransportVehicle = Namespace + "TransportVehicle"

	// ClassSensor represents an IoT monitoring sensor.
	// Parent: ClassThing
	ClassSensor = Namespace + "Sensor"

	// ClassTemperatureSensor monitors temperature.
	// Parent: ClassSensor
	ClassTemperatureSensor = Namespace + "TemperatureSensor"

	// ClassVibrationSensor monitors vibration.
	// Parent: ClassSensor
	ClassVibrationSensor = Namespace + "VibrationSensor"

	// ClassPressureSensor monitors pressure.
	// Parent: ClassSensor
	ClassPressureSensor = Namespace + "PressureSensor"

	// ClassHumiditySensor monitors humidity.
	// Parent: ClassSensor
	ClassHumiditySensor = Namespace + "HumiditySensor"

	// ClassPositionSensor tracks GPS position.
	// Parent: ClassSensor
	ClassPositionSensor = Namespace + "PositionSensor"

	// ClassSafetySensor monitors safety conditions (gas, fire).
	// Parent: ClassSensor
	ClassSafetySensor = Namespace + "SafetySensor"

	// ClassQualitySensor performs quality inspection measurements.
	// Parent: ClassSensor
	ClassQualitySensor = Namespace + "QualitySensor"

	// ClassPerson represents a human resource.
	// Parent: ClassThing
	ClassPerson = Namespace + "Person"

	// ClassWorker represents a shipyard worker.
	// Parent: ClassPerson
	ClassWorker = Namespace + "Worker"

	// ClassWelder represents a welding specialist.
	// Parent: ClassWorker
	ClassWelder = Namespace + "Welder"

	// ClassElectrician represents an electrical systems specialist.
	// Parent: ClassWorker
	ClassElectrician = Namespace + "Electrician"

	// ClassPainter represents a painting specialist.
	// Parent: ClassWorker
	ClassPainter = Namespace + "Painter"

	// ClassEngineer represents engineering staff.
	// Parent: ClassPerson
	ClassEngineer = Namespace + "Engineer"

	// ClassQualityInspector represents a quality control inspector.
	// Parent: ClassPerson
	ClassQualityInspector = Namespace + "QualityInspector"

	// ClassSafetyOfficer represents safety management staff.
	// Parent: ClassPerson
	ClassSafetyOfficer = Namespace + "SafetyOfficer"

	// ClassManager represents management staff.
	// Parent: ClassPerson
	ClassManager = Namespace + "Manager"

	// ClassProcess represents a manufacturing or construction process.
	// Parent: ClassThing
	ClassProcess = Namespace + "Process"

	// ClassWeldingProcess represents welding operations.
	// Parent: ClassProcess
	ClassWeldingProcess = Namespace + "WeldingProcess"

	// ClassAssemblyProcess represents component assembly.
	// Parent: ClassProcess
	ClassAssemblyProcess = Namespace + "AssemblyProcess"

	// ClassInspectionProcess represents quality inspection.
	// Parent: ClassProcess
	ClassInspectionProcess = Namespace + "InspectionProcess"

	// ClassPaintingProcess represents surface treatment and painting.
	// Parent: ClassProcess
	ClassPaintingProcess = Namespace + "PaintingProcess"

	// ClassMaintenanceProcess represents equipment maintenance.
	// Parent: ClassProcess
	ClassMaintenanceProcess = Namespace + "MaintenanceProcess"

	// ClassMaterial represents raw materials and supplies.
	// Parent: ClassThing
	ClassMaterial = Namespace + "Material"

	// ClassSteelPlate represents steel plates for hull construction.
	// Parent: ClassMaterial
	ClassSteelPlate = Namespace + "SteelPlate"

	// ClassPaint represents coating materials.
	// Parent: ClassMaterial
	ClassPaint = Namespace + "Paint"

	// ClassWeldingRod represents welding consumables.
	// Parent: ClassMaterial
	ClassWeldingRod = Namespace + "WeldingRod"

	// ClassElectricalCable represents electrical wiring stock.
	// Parent: ClassMaterial
	ClassElectricalCable = Namespace + "ElectricalCable"

	// ClassDigitalSystem represents digital infrastructure and software.
	// Parent: ClassThing
	ClassDigitalSystem = Namespace + "DigitalSystem"

	// ClassMES represents a Manufacturing Execution System.
	// Parent: ClassDigitalSystem
	ClassMES = Namespace + "MES"

	// ClassERP represents Enterprise Resource Planning.
	// Parent: ClassDigitalSystem
	ClassERP = Namespace + "ERP"

	// ClassDigitalTwin represents a digital twin of a physical asset.
	// Parent: ClassDigitalSystem
	ClassDigitalTwin = Namespace + "DigitalTwin"

	// ClassAISystem represents an AI/ML optimisation system.
	// Parent: ClassDigitalSystem
	ClassAISystem = Namespace + "AISystem"
)

// Object Property IRIs define relationships between entities.
const (
	// PropLocatedIn is the physical location relationship.
	// Domain: ClassPhysicalAsset | ClassPerson, Range: ClassShipyardFacility
	PropLocatedIn = Namespace + "locatedIn"

	// PropPartOf is the component relationship.
	// Domain: ClassVesselComponent, Range: ClassVessel
	PropPartOf = Namespace + "partOf"

	// PropInstalledOn records where a sensor is mounted.
	// Domain: ClassSensor, Range: ClassPhysicalAsset. Functional.
	PropInstalledOn = Namespace + "installedOn"

	// PropOperatedBy links equipment or a process to its operator.
	// Domain: ClassEquipment | ClassProcess, Range: ClassWorker. Functional.
	PropOperatedBy = Namespace + "operatedBy"

	// PropSupervisedBy is the supervision relationship.
	// Domain: ClassWorker | ClassProcess, Range: ClassManager | ClassEngineer. Functional.
	PropSupervisedBy = Namespace + "supervisedBy"

	// PropInspectedBy is the inspection relationship.
	// Domain: ClassVessel | ClassVesselComponent | ClassProcess,
	// Range: ClassQualityInspector. Functional.
	PropInspectedBy = Namespace + "inspectedBy"

	// PropMonitors links a sensor to its monitoring target.
	// Domain: ClassSensor, Range: ClassPhysicalAsset | ClassProcess. Functional.
	PropMonitors = Namespace + "monitors"

	// PropUsedIn is the material usage relationship.
	// Domain: ClassMaterial, Range: ClassProcess. Functional.
	PropUsedIn = Namespace + "usedIn"

	// PropProduces is the production relationship.
	// Domain: ClassProcess, Range: ClassVesselComponent | ClassVessel. Functional.
	PropProduces = Namespace + "produces"

	// PropRequires is the dependency relationship.
	// Domain: ClassProcess, Range: ClassEquipment | ClassMaterial | ClassWorker. Functional.
	PropRequires = Namespace + "requires"

	// PropManages links a digital system to the entities it manages.
	// Domain: ClassDigitalSystem, Range: ClassProcess | ClassEquipment | ClassMaterial
	PropManages = Namespace + "manages"
)

// Data Property IRIs define literal-valued attributes.
const (
	// PropName is the display name of an entity.
	PropName = Namespace + "hasName"

	// PropID is the business identifier of an entity.
	PropID = Namespace + "hasID"

	// PropStatus is the operational status.
	PropStatus = Namespace + "hasStatus"

	// PropCapacity is the capacity specification.
	PropCapacity = Namespace + "hasCapacity"

	// PropReading is the current sensor reading value.
	PropReading = Namespace + "hasReading"

	// PropCoordinates is a GPS coordinate string.
	PropCoordinates = Namespace + "hasCoordinates"

	// PropQuantity is the material stock quantity.
	PropQuantity = Namespace + "hasQuantity"

	// PropCompletion is the completion percentage.
	PropCompletion = Namespace + "hasCompletionPercentage"

	// PropVesselType is the vessel type designation.
	PropVesselType = Namespace + "hasVesselType"

	// PropLength is the vessel length in metres.
	PropLength = Namespace + "hasLength"

	// PropDeadweight is the vessel deadweight in tons.
	PropDeadweight = Namespace + "hasDeadweight"

	// PropExperience is the years of experience.
	PropExperience = Namespace + "hasExperience"

	// PropCertification is a held certification.
	PropCertification = Namespace + "hasCertification"

	// PropTimestamp is an RFC3339 observation timestamp.
	PropTimestamp = Namespace + "hasTimestamp"

	// PropPriority is the process priority level.
	PropPriority = Namespace + "hasPriority"

	// PropQualityScore is the quality score out of 100.
	PropQualityScore = Namespace + "hasQualityScore"

	// PropTemperature is the process operating temperature.
	PropTemperature = Namespace + "hasTemperature"
)
