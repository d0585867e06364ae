// Package takeoffapi - Hardcoded demo dataset.
// In production this would query the measurement extraction backend;
// the demo serves one floor plan regardless of the requested document.
package takeoffapi

import (
	"context"

	"github.com/google/uuid"

	"takeoff-cost/core/takeoff"
)

// MockStore serves a fixed floor-plan dataset: one zone at 1:100 scale
// with two windows, one door and two wall segments.
type MockStore struct{}

// NewMockStore creates the demo state store
func NewMockStore() *MockStore {
	return &MockStore{}
}

// PageState returns the demo hierarchy for any document page
func (m *MockStore) PageState(ctx context.Context, documentID uuid.UUID, pageNumber int) (*takeoff.PageState, error) {
	zoneID := uuid.MustParse("a1b2c3d4-e5f6-4a5b-8c9d-0e1f2a3b4c5d")

	windowConditionID := uuid.MustParse("f1e2d3c4-b5a6-4c5d-8e9f-0a1b2c3d4e5f")
	doorConditionID := uuid.MustParse("e2d3c4b5-a6f7-4c5d-8e9f-0a1b2c3d4e5f")
	wallConditionID := uuid.MustParse("d3c4b5a6-f7e8-4c5d-8e9f-0a1b2c3d4e5f")

	zone := &takeoff.Zone{
		ID:    zoneID,
		Scale: 100.0, // 1:100 architectural scale
		Name:  "First Floor Plan",
		DPI:   300,
		BoundingBox: &takeoff.BoundingBox{
			Left:   0.1,
			Top:    0.1,
			Right:  0.9,
			Bottom: 0.9,
		},
	}

	windowCondition := &takeoff.Condition{
		ID:          windowConditionID,
		Name:        "Standard Window",
		Type:        takeoff.MeasureCount,
		Shape:       "Rectangle",
		Category:    "Windows",
		Description: "Standard residential window",
		Layer:       "WINDOWS",
		Color:       "#3498db",
		LineStyle:   "Solid",
		FillPattern: "None",
		Quantities: []takeoff.QuantityDef{
			{Name: "Count", UnitOfMeasure: "EA"},
			{Name: "Area", UnitOfMeasure: "SQ.M"},
		},
		Properties: []takeoff.NameValuePair{
			{Name: "Width", Value: "1200"},
			{Name: "Height", Value: "1500"},
			{Name: "Material", Value: "PVC"},
		},
		CustomAttributes: []takeoff.NameValuePair{
			{Name: "EnergyRating", Value: "A+"},
			{Name: "GlazingType", Value: "Double"},
		},
	}

	angle := 0.0
	doorAngle := 90.0

	windowItems := []takeoff.Item{
		{
			ID:          uuid.MustParse("b2c3d4e5-f6a7-4b5c-8d9e-0f1a2b3c4d5e"),
			ConditionID: windowConditionID,
			ZoneID:      zoneID,
			Name:        "Window #1 - Living Room",
			Angle:       &angle,
			Points: []takeoff.Point{
				{X: 150.5, Y: 200.3},
				{X: 180.5, Y: 200.3},
				{X: 180.5, Y: 237.8},
				{X: 150.5, Y: 237.8},
			},
			Quantities: []takeoff.QuantityValue{
				{Name: "Count", UnitOfMeasure: "EA", Value: 1.0},
				{Name: "Area", UnitOfMeasure: "SQ.M", Value: 1.8},
			},
		},
		{
			ID:          uuid.MustParse("c3d4e5f6-a7b8-4c5d-8e9f-0a1b2c3d4e5f"),
			ConditionID: windowConditionID,
			ZoneID:      zoneID,
			Name:        "Window #2 - Bedroom",
			Angle:       &angle,
			Points: []takeoff.Point{
				{X: 450.0, Y: 180.0},
				{X: 480.0, Y: 180.0},
				{X: 480.0, Y: 217.5},
				{X: 450.0, Y: 217.5},
			},
			Quantities: []takeoff.QuantityValue{
				{Name: "Count", UnitOfMeasure: "EA", Value: 1.0},
				{Name: "Area", UnitOfMeasure: "SQ.M", Value: 1.8},
			},
		},
	}

	doorCondition := &takeoff.Condition{
		ID:          doorConditionID,
		Name:        "Interior Door",
		Type:        takeoff.MeasureCount,
		Shape:       "Door",
		Category:    "Doors",
		Description: "Standard interior door with frame",
		Layer:       "DOORS",
		Color:       "#e74c3c",
		LineStyle:   "Solid",
		FillPattern: "None",
		Quantities: []takeoff.QuantityDef{
			{Name: "Count", UnitOfMeasure: "EA"},
		},
		Properties: []takeoff.NameValuePair{
			{Name: "Width", Value: "900"},
			{Name: "Height", Value: "2100"},
			{Name: "Material", Value: "Wood"},
		},
		CustomAttributes: []takeoff.NameValuePair{
			{Name: "FireRating", Value: "30min"},
			{Name: "HandleType", Value: "Lever"},
		},
	}

	doorItems := []takeoff.Item{
		{
			ID:          uuid.MustParse("d4e5f6a7-b8c9-4d5e-8f9a-0b1c2d3e4f5a"),
			ConditionID: doorConditionID,
			ZoneID:      zoneID,
			Name:        "Door #1 - Main Entrance",
			Angle:       &doorAngle,
			Points: []takeoff.Point{
				{X: 300.0, Y: 150.0},
				{X: 327.0, Y: 150.0},
				{X: 327.0, Y: 213.0},
				{X: 300.0, Y: 213.0},
			},
			Quantities: []takeoff.QuantityValue{
				{Name: "Count", UnitOfMeasure: "EA", Value: 1.0},
			},
		},
	}

	wallCondition := &takeoff.Condition{
		ID:          wallConditionID,
		Name:        "Exterior Wall",
		Type:        takeoff.MeasureArea,
		Shape:       "Polygon",
		Category:    "Walls",
		Description: "Exterior wall with insulation",
		Layer:       "WALLS",
		Color:       "#95a5a6",
		LineStyle:   "Solid",
		FillPattern: "Solid",
		Quantities: []takeoff.QuantityDef{
			{Name: "Area", UnitOfMeasure: "SQ.M"},
			{Name: "Length", UnitOfMeasure: "M"},
		},
		Properties: []takeoff.NameValuePair{
			{Name: "Thickness", Value: "300"},
			{Name: "Material", Value: "Brick"},
			{Name: "Insulation", Value: "Mineral Wool"},
		},
		CustomAttributes: []takeoff.NameValuePair{
			{Name: "ThermalResistance", Value: "3.5"},
			{Name: "LoadBearing", Value: "Yes"},
		},
	}

	wallItems := []takeoff.Item{
		{
			ID:          uuid.MustParse("e5f6a7b8-c9d0-4e5f-8a9b-0c1d2e3f4a5b"),
			ConditionID: wallConditionID,
			ZoneID:      zoneID,
			Name:        "Wall #1 - North Wall",
			Points: []takeoff.Point{
				{X: 100.0, Y: 100.0},
				{X: 600.0, Y: 100.0},
				{X: 600.0, Y: 130.0},
				{X: 100.0, Y: 130.0},
			},
			Quantities: []takeoff.QuantityValue{
				{Name: "Area", UnitOfMeasure: "SQ.M", Value: 15.5},
				{Name: "Length", UnitOfMeasure: "M", Value: 5.0},
			},
		},
		{
			ID:          uuid.MustParse("f6a7b8c9-d0e1-4f5a-8b9c-0d1e2f3a4b5c"),
			ConditionID: wallConditionID,
			ZoneID:      zoneID,
			Name:        "Wall #2 - East Wall",
			Points: []takeoff.Point{
				{X: 600.0, Y: 100.0},
				{X: 630.0, Y: 100.0},
				{X: 630.0, Y: 500.0},
				{X: 600.0, Y: 500.0},
			},
			Quantities: []takeoff.QuantityValue{
				{Name: "Area", UnitOfMeasure: "SQ.M", Value: 12.4},
				{Name: "Length", UnitOfMeasure: "M", Value: 4.0},
			},
		},
	}

	return &takeoff.PageState{
		Zones: []takeoff.ZoneState{
			{
				Zone: zone,
				Conditions: []takeoff.ConditionState{
					{Condition: windowCondition, Items: windowItems},
					{Condition: doorCondition, Items: doorItems},
					{Condition: wallCondition, Items: wallItems},
				},
			},
		},
	}, nil
}
