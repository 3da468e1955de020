// Package population builds the sample shipyard data set. Construction is
// deterministic: fixed identifiers, fixed attribute values, no clocks.
package population

import (
	"fmt"

	"github.com/c360studio/shipyard/ontology"
	vocab "github.com/c360studio/shipyard/vocabulary/shipyard"
)

// SampleTimestamp is the fixed observation timestamp stamped on sensor
// readings so repeated runs produce identical graphs.
const SampleTimestamp = "2025-03-14T09:30:00Z"

// builder wraps a graph with error-latching helpers: after the first
// failure every call is a no-op, so Populate reads as straight-line
// construction and still surfaces the first typing violation.
type builder struct {
	g   *ontology.Graph
	err error
}

func (b *builder) add(class ontology.Class, id string) *ontology.Individual {
	if b.err != nil {
		return nil
	}
	ind, err := b.g.AddIndividual(class, id)
	if err != nil {
		b.err = err
	}
	return ind
}

func (b *builder) str(ind *ontology.Individual, prop, v string) {
	if b.err != nil {
		return
	}
	b.err = b.g.SetString(ind, prop, v)
}

func (b *builder) addStr(ind *ontology.Individual, prop, v string) {
	if b.err != nil {
		return
	}
	b.err = b.g.AddString(ind, prop, v)
}

func (b *builder) num(ind *ontology.Individual, prop string, v float64) {
	if b.err != nil {
		return
	}
	b.err = b.g.SetFloat(ind, prop, v)
}

func (b *builder) count(ind *ontology.Individual, prop string, v int) {
	if b.err != nil {
		return
	}
	b.err = b.g.SetInt(ind, prop, v)
}

func (b *builder) relate(sub *ontology.Individual, prop string, obj *ontology.Individual) {
	if b.err != nil {
		return
	}
	b.err = b.g.Relate(sub, prop, obj)
}

// Populate fills the graph with the sample shipyard: facilities, two
// vessels under construction with their components, equipment, the IoT
// sensor network, workforce, active processes, material stock, and the
// digital systems coordinating them. Any domain/range violation aborts
// with an error; a clean run leaves the graph ready for queries.
func Populate(g *ontology.Graph) error {
	b := &builder{g: g}

	// Facilities
	drydock1 := b.add(ontology.ClassDryDock, "DryDock_01")
	b.str(drydock1, ontology.PropName, "Main Dry Dock 1")
	b.str(drydock1, ontology.PropID, "DD-001")
	b.num(drydock1, ontology.PropCapacity, 150000.0) // tonnage

	drydock2 := b.add(ontology.ClassDryDock, "DryDock_02")
	b.str(drydock2, ontology.PropName, "Dry Dock 2")
	b.str(drydock2, ontology.PropID, "DD-002")
	b.num(drydock2, ontology.PropCapacity, 100000.0)

	weldingShop := b.add(ontology.ClassWeldingStation, "WeldingShop_01")
	b.str(weldingShop, ontology.PropName, "Primary Welding Station")
	b.str(weldingShop, ontology.PropID, "WS-001")

	paintingShop := b.add(ontology.ClassPaintingStation, "PaintingShop_01")
	b.str(paintingShop, ontology.PropName, "Coating and Painting Station")
	b.str(paintingShop, ontology.PropID, "PS-001")

	assemblyShop := b.add(ontology.ClassAssemblyStation, "AssemblyShop_01")
	b.str(assemblyShop, ontology.PropName, "Main Assembly Station")
	b.str(assemblyShop, ontology.PropID, "AS-001")

	warehouse := b.add(ontology.ClassWarehouse, "Warehouse_01")
	b.str(warehouse, ontology.PropName, "Materials Warehouse")
	b.str(warehouse, ontology.PropID, "WH-001")
	b.num(warehouse, ontology.PropCapacity, 5000.0) // square metres

	// Vessels under construction
	vessel1 := b.add(ontology.ClassVessel, "Vessel_Container_001")
	b.str(vessel1, ontology.PropName, "Container Ship Pacific Star")
	b.str(vessel1, ontology.PropID, "V-CS-001")
	b.str(vessel1, ontology.PropVesselType, "Container Ship")
	b.num(vessel1, ontology.PropLength, 350.0)
	b.num(vessel1, ontology.PropDeadweight, 145000.0)
	b.num(vessel1, ontology.PropCompletion, 65.0)
	b.str(vessel1, ontology.PropStatus, string(vocab.VesselStatusUnderConstruction))
	b.relate(vessel1, ontology.PropLocatedIn, drydock1)

	vessel2 := b.add(ontology.ClassVessel, "Vessel_Tanker_001")
	b.str(vessel2, ontology.PropName, "Oil Tanker Atlantic Pride")
	b.str(vessel2, ontology.PropID, "V-TK-001")
	b.str(vessel2, ontology.PropVesselType, "Oil Tanker")
	b.num(vessel2, ontology.PropLength, 280.0)
	b.num(vessel2, ontology.PropDeadweight, 95000.0)
	b.num(vessel2, ontology.PropCompletion, 40.0)
	b.str(vessel2, ontology.PropStatus, string(vocab.VesselStatusUnderConstruction))
	b.relate(vessel2, ontology.PropLocatedIn, drydock2)

	// Vessel components
	hull1 := b.add(ontology.ClassHull, "Hull_V001")
	b.str(hull1, ontology.PropName, "Hull - Pacific Star")
	b.str(hull1, ontology.PropID, "H-V001")
	b.num(hull1, ontology.PropQualityScore, 95.5)
	b.relate(hull1, ontology.PropPartOf, vessel1)

	engine1 := b.add(ontology.ClassEngine, "Engine_V001")
	b.str(engine1, ontology.PropName, "Main Engine - Pacific Star")
	b.str(engine1, ontology.PropID, "E-V001")
	b.num(engine1, ontology.PropQualityScore, 98.0)
	b.relate(engine1, ontology.PropPartOf, vessel1)

	navSystem1 := b.add(ontology.ClassNavigationSystem, "NavSystem_V001")
	b.str(navSystem1, ontology.PropName, "Navigation System - Pacific Star")
	b.str(navSystem1, ontology.PropID, "NS-V001")
	b.relate(navSystem1, ontology.PropPartOf, vessel1)

	electrical1 := b.add(ontology.ClassElectricalSystem, "ElecSystem_V001")
	b.str(electrical1, ontology.PropName, "Electrical System - Pacific Star")
	b.str(electrical1, ontology.PropID, "ES-V001")
	b.relate(electrical1, ontology.PropPartOf, vessel1)

	// Equipment
	crane1 := b.add(ontology.ClassCrane, "Crane_001")
	b.str(crane1, ontology.PropName, "Gantry Crane 1")
	b.str(crane1, ontology.PropID, "CR-001")
	b.num(crane1, ontology.PropCapacity, 500.0) // tons
	b.str(crane1, ontology.PropStatus, string(vocab.EquipmentStatusOperational))
	b.relate(crane1, ontology.PropLocatedIn, drydock1)

	weldingRobot1 := b.add(ontology.ClassWeldingRobot, "WeldRobot_001")
	b.str(weldingRobot1, ontology.PropName, "Automated Welding Robot 1")
	b.str(weldingRobot1, ontology.PropID, "WR-001")
	b.str(weldingRobot1, ontology.PropStatus, string(vocab.EquipmentStatusOperational))
	b.relate(weldingRobot1, ontology.PropLocatedIn, weldingShop)

	cuttingMachine1 := b.add(ontology.ClassCuttingMachine, "CuttingMachine_001")
	b.str(cuttingMachine1, ontology.PropName, "Plasma Cutting Machine")
	b.str(cuttingMachine1, ontology.PropID, "CM-001")
	b.str(cuttingMachine1, ontology.PropStatus, string(vocab.EquipmentStatusOperational))
	b.relate(cuttingMachine1, ontology.PropLocatedIn, assemblyShop)

	// IoT sensors
	tempSensor1 := b.add(ontology.ClassTemperatureSensor, "TempSensor_WR001")
	b.str(tempSensor1, ontology.PropName, "Temperature Sensor - Welding Robot 1")
	b.str(tempSensor1, ontology.PropID, "TS-WR001")
	b.num(tempSensor1, ontology.PropReading, 45.5) // °C
	b.str(tempSensor1, ontology.PropTimestamp, SampleTimestamp)
	b.relate(tempSensor1, ontology.PropInstalledOn, weldingRobot1)
	b.relate(tempSensor1, ontology.PropMonitors, weldingRobot1)

	vibSensor1 := b.add(ontology.ClassVibrationSensor, "VibSensor_CR001")
	b.str(vibSensor1, ontology.PropName, "Vibration Sensor - Crane 1")
	b.str(vibSensor1, ontology.PropID, "VS-CR001")
	b.num(vibSensor1, ontology.PropReading, 2.3) // mm/s
	b.str(vibSensor1, ontology.PropTimestamp, SampleTimestamp)
	b.relate(vibSensor1, ontology.PropInstalledOn, crane1)
	b.relate(vibSensor1, ontology.PropMonitors, crane1)

	posSensor1 := b.add(ontology.ClassPositionSensor, "PosSensor_V001")
	b.str(posSensor1, ontology.PropName, "Position Tracker - Pacific Star")
	b.str(posSensor1, ontology.PropID, "PS-V001")
	b.str(posSensor1, ontology.PropCoordinates, "37.8267 N, 122.4233 W")
	b.relate(posSensor1, ontology.PropInstalledOn, vessel1)
	b.relate(posSensor1, ontology.PropMonitors, vessel1)

	safetySensor1 := b.add(ontology.ClassSafetySensor, "SafetySensor_WS001")
	b.str(safetySensor1, ontology.PropName, "Gas Detection - Welding Shop")
	b.str(safetySensor1, ontology.PropID, "SS-WS001")
	b.relate(safetySensor1, ontology.PropInstalledOn, weldingShop)
	b.relate(safetySensor1, ontology.PropMonitors, weldingShop)

	qualitySensor1 := b.add(ontology.ClassQualitySensor, "QualitySensor_H001")
	b.str(qualitySensor1, ontology.PropName, "Ultrasonic Tester - Hull")
	b.str(qualitySensor1, ontology.PropID, "QS-H001")
	b.relate(qualitySensor1, ontology.PropInstalledOn, hull1)
	b.relate(qualitySensor1, ontology.PropMonitors, hull1)

	// Workforce
	welder1 := b.add(ontology.ClassWelder, "Welder_001")
	b.str(welder1, ontology.PropName, "John Smith")
	b.str(welder1, ontology.PropID, "W-001")
	b.count(welder1, ontology.PropExperience, 15)
	b.addStr(welder1, ontology.PropCertification, "AWS D1.1")
	b.addStr(welder1, ontology.PropCertification, "6G Position")
	b.relate(welder1, ontology.PropLocatedIn, weldingShop)

	welder2 := b.add(ontology.ClassWelder, "Welder_002")
	b.str(welder2, ontology.PropName, "Maria Garcia")
	b.str(welder2, ontology.PropID, "W-002")
	b.count(welder2, ontology.PropExperience, 12)
	b.addStr(welder2, ontology.PropCertification, "AWS D1.1")
	b.relate(welder2, ontology.PropLocatedIn, weldingShop)

	electrician1 := b.add(ontology.ClassElectrician, "Electrician_001")
	b.str(electrician1, ontology.PropName, "David Chen")
	b.str(electrician1, ontology.PropID, "E-001")
	b.count(electrician1, ontology.PropExperience, 10)
	b.addStr(electrician1, ontology.PropCertification, "Master Electrician")
	b.addStr(electrician1, ontology.PropCertification, "Marine Systems")
	b.relate(electrician1, ontology.PropLocatedIn, drydock1)

	painter1 := b.add(ontology.ClassPainter, "Painter_001")
	b.str(painter1, ontology.PropName, "Ahmed Hassan")
	b.str(painter1, ontology.PropID, "P-001")
	b.count(painter1, ontology.PropExperience, 8)
	b.addStr(painter1, ontology.PropCertification, "NACE Coating Inspector")
	b.relate(painter1, ontology.PropLocatedIn, paintingShop)

	engineer1 := b.add(ontology.ClassEngineer, "Engineer_001")
	b.str(engineer1, ontology.PropName, "Dr. Sarah Johnson")
	b.str(engineer1, ontology.PropID, "ENG-001")
	b.count(engineer1, ontology.PropExperience, 20)
	b.addStr(engineer1, ontology.PropCertification, "Naval Architect")
	b.addStr(engineer1, ontology.PropCertification, "PE License")

	inspector1 := b.add(ontology.ClassQualityInspector, "Inspector_001")
	b.str(inspector1, ontology.PropName, "Robert Lee")
	b.str(inspector1, ontology.PropID, "QI-001")
	b.count(inspector1, ontology.PropExperience, 18)
	b.addStr(inspector1, ontology.PropCertification, "ASNT Level III")
	b.addStr(inspector1, ontology.PropCertification, "ISO 9001 Lead Auditor")

	safetyOfficer1 := b.add(ontology.ClassSafetyOfficer, "SafetyOfficer_001")
	b.str(safetyOfficer1, ontology.PropName, "Lisa Brown")
	b.str(safetyOfficer1, ontology.PropID, "SO-001")
	b.count(safetyOfficer1, ontology.PropExperience, 12)
	b.addStr(safetyOfficer1, ontology.PropCertification, "OSHA 30")
	b.addStr(safetyOfficer1, ontology.PropCertification, "CSP")

	manager1 := b.add(ontology.ClassManager, "Manager_001")
	b.str(manager1, ontology.PropName, "Michael Anderson")
	b.str(manager1, ontology.PropID, "MGR-001")
	b.count(manager1, ontology.PropExperience, 25)

	// Processes
	weldingProc1 := b.add(ontology.ClassWeldingProcess, "WeldingProc_H001")
	b.str(weldingProc1, ontology.PropName, "Hull Welding - Section A")
	b.str(weldingProc1, ontology.PropID, "WP-H001")
	b.str(weldingProc1, ontology.PropStatus, string(vocab.ProcessStatusInProgress))
	b.num(weldingProc1, ontology.PropCompletion, 75.0)
	b.str(weldingProc1, ontology.PropPriority, string(vocab.PriorityHigh))
	b.num(weldingProc1, ontology.PropTemperature, 850.0)
	b.relate(weldingProc1, ontology.PropOperatedBy, welder1)
	b.relate(weldingProc1, ontology.PropSupervisedBy, engineer1)
	b.relate(weldingProc1, ontology.PropProduces, hull1)
	b.relate(weldingProc1, ontology.PropRequires, weldingRobot1)

	assemblyProc1 := b.add(ontology.ClassAssemblyProcess, "AssemblyProc_E001")
	b.str(assemblyProc1, ontology.PropName, "Engine Installation")
	b.str(assemblyProc1, ontology.PropID, "AP-E001")
	b.str(assemblyProc1, ontology.PropStatus, string(vocab.ProcessStatusScheduled))
	b.num(assemblyProc1, ontology.PropCompletion, 0.0)
	b.str(assemblyProc1, ontology.PropPriority, string(vocab.PriorityMedium))
	b.relate(assemblyProc1, ontology.PropSupervisedBy, engineer1)
	b.relate(assemblyProc1, ontology.PropProduces, vessel1)
	b.relate(assemblyProc1, ontology.PropRequires, crane1)

	inspectionProc1 := b.add(ontology.ClassInspectionProcess, "InspectionProc_H001")
	b.str(inspectionProc1, ontology.PropName, "Hull Quality Inspection")
	b.str(inspectionProc1, ontology.PropID, "IP-H001")
	b.str(inspectionProc1, ontology.PropStatus, string(vocab.ProcessStatusCompleted))
	b.num(inspectionProc1, ontology.PropCompletion, 100.0)
	b.relate(inspectionProc1, ontology.PropInspectedBy, inspector1)
	b.relate(hull1, ontology.PropInspectedBy, inspector1)

	paintingProc1 := b.add(ontology.ClassPaintingProcess, "PaintingProc_V001")
	b.str(paintingProc1, ontology.PropName, "Hull Surface Coating")
	b.str(paintingProc1, ontology.PropID, "PP-V001")
	b.str(paintingProc1, ontology.PropStatus, string(vocab.ProcessStatusPending))
	b.num(paintingProc1, ontology.PropCompletion, 0.0)
	b.str(paintingProc1, ontology.PropPriority, string(vocab.PriorityLow))
	b.relate(paintingProc1, ontology.PropOperatedBy, painter1)
	b.relate(paintingProc1, ontology.PropProduces, hull1)

	// Materials
	steelPlates := b.add(ontology.ClassSteelPlate, "SteelPlate_Stock")
	b.str(steelPlates, ontology.PropName, "High-Strength Steel Plates")
	b.str(steelPlates, ontology.PropID, "MAT-SP-001")
	b.count(steelPlates, ontology.PropQuantity, 500) // units
	b.relate(steelPlates, ontology.PropLocatedIn, warehouse)
	b.relate(steelPlates, ontology.PropUsedIn, weldingProc1)

	weldingRods := b.add(ontology.ClassWeldingRod, "WeldingRod_Stock")
	b.str(weldingRods, ontology.PropName, "E7018 Welding Electrodes")
	b.str(weldingRods, ontology.PropID, "MAT-WR-001")
	b.count(weldingRods, ontology.PropQuantity, 10000)
	b.relate(weldingRods, ontology.PropLocatedIn, warehouse)
	b.relate(weldingRods, ontology.PropUsedIn, weldingProc1)

	paintStock := b.add(ontology.ClassPaint, "Paint_Stock")
	b.str(paintStock, ontology.PropName, "Marine Grade Anti-Fouling Paint")
	b.str(paintStock, ontology.PropID, "MAT-PT-001")
	b.count(paintStock, ontology.PropQuantity, 5000) // litres
	b.relate(paintStock, ontology.PropLocatedIn, warehouse)
	b.relate(paintStock, ontology.PropUsedIn, paintingProc1)

	cables := b.add(ontology.ClassElectricalCable, "Cable_Stock")
	b.str(cables, ontology.PropName, "Marine Grade Electrical Cable")
	b.str(cables, ontology.PropID, "MAT-EC-001")
	b.count(cables, ontology.PropQuantity, 15000) // metres
	b.relate(cables, ontology.PropLocatedIn, warehouse)

	// Digital systems
	mesSystem := b.add(ontology.ClassMES, "MES_System")
	b.str(mesSystem, ontology.PropName, "Manufacturing Execution System")
	b.str(mesSystem, ontology.PropID, "DIG-MES-001")
	b.relate(mesSystem, ontology.PropManages, weldingProc1)
	b.relate(mesSystem, ontology.PropManages, assemblyProc1)
	b.relate(mesSystem, ontology.PropManages, paintingProc1)

	erpSystem := b.add(ontology.ClassERP, "ERP_System")
	b.str(erpSystem, ontology.PropName, "Enterprise Resource Planning")
	b.str(erpSystem, ontology.PropID, "DIG-ERP-001")
	b.relate(erpSystem, ontology.PropManages, steelPlates)
	b.relate(erpSystem, ontology.PropManages, weldingRods)
	b.relate(erpSystem, ontology.PropManages, paintStock)
	b.relate(erpSystem, ontology.PropManages, cables)

	digitalTwin1 := b.add(ontology.ClassDigitalTwin, "DigitalTwin_V001")
	b.str(digitalTwin1, ontology.PropName, "Digital Twin - Pacific Star")
	b.str(digitalTwin1, ontology.PropID, "DIG-DT-V001")

	aiSystem1 := b.add(ontology.ClassAISystem, "AI_Optimization")
	b.str(aiSystem1, ontology.PropName, "AI Production Optimizer")
	b.str(aiSystem1, ontology.PropID, "DIG-AI-001")
	b.relate(aiSystem1, ontology.PropManages, weldingProc1)
	b.relate(aiSystem1, ontology.PropManages, assemblyProc1)

	if b.err != nil {
		return fmt.Errorf("populate shipyard: %w", b.err)
	}
	return nil
}
