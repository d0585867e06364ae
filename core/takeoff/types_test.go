package takeoff

import (
	"encoding/json"
	"testing"
)

// statePayload mirrors the takeoff service wire format
const statePayload = `{
  "takeoffZones": [
    {
      "takeoffZone": {
        "id": "a1b2c3d4-e5f6-4a5b-8c9d-0e1f2a3b4c5d",
        "name": "First Floor Plan",
        "scale": 100.0,
        "dpi": 300,
        "boundingBox": {"left": 0.1, "top": 0.1, "right": 0.9, "bottom": 0.9}
      },
      "conditions": [
        {
          "condition": {
            "id": "f1e2d3c4-b5a6-4c5d-8e9f-0a1b2c3d4e5f",
            "name": "Standard Window",
            "type": "Count",
            "shape": "Rectangle"
          },
          "takeoffItems": [
            {
              "id": "b2c3d4e5-f6a7-4b5c-8d9e-0f1a2b3c4d5e",
              "conditionId": "f1e2d3c4-b5a6-4c5d-8e9f-0a1b2c3d4e5f",
              "takeoffZoneId": "a1b2c3d4-e5f6-4a5b-8c9d-0e1f2a3b4c5d",
              "itemName": "Window #1 - Living Room",
              "angle": 0.0,
              "points": [{"x": 150.5, "y": 200.3}],
              "quantityValues": [
                {"name": "Count", "unitOfMeasure": "EA", "value": 1.0}
              ]
            }
          ]
        }
      ]
    }
  ]
}`

func TestPageStateDecode(t *testing.T) {
	var page PageState
	if err := json.Unmarshal([]byte(statePayload), &page); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if len(page.Zones) != 1 {
		t.Fatalf("expected 1 zone, got %d", len(page.Zones))
	}

	zone := page.Zones[0].Zone
	if zone == nil || zone.Name != "First Floor Plan" {
		t.Fatalf("unexpected zone: %+v", zone)
	}
	if zone.Scale != 100.0 || zone.DPI != 300 {
		t.Errorf("zone scale/dpi = %v/%v", zone.Scale, zone.DPI)
	}

	conds := page.Zones[0].Conditions
	if len(conds) != 1 || conds[0].Condition.Name != "Standard Window" {
		t.Fatalf("unexpected conditions: %+v", conds)
	}
	if conds[0].Condition.Type != MeasureCount {
		t.Errorf("measurement type = %q, want Count", conds[0].Condition.Type)
	}

	items := conds[0].Items
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	it := items[0]
	if it.Name != "Window #1 - Living Room" {
		t.Errorf("item name = %q", it.Name)
	}
	if it.Angle == nil || *it.Angle != 0.0 {
		t.Errorf("angle = %v, want 0.0", it.Angle)
	}
	if len(it.Quantities) != 1 || it.Quantities[0].Value != 1.0 {
		t.Errorf("quantities = %+v", it.Quantities)
	}
	if it.Quantities[0].UnitOfMeasure != "EA" {
		t.Errorf("unit = %q, want EA", it.Quantities[0].UnitOfMeasure)
	}
}

func TestPageStateCounts(t *testing.T) {
	var page PageState
	if err := json.Unmarshal([]byte(statePayload), &page); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if got := page.CountConditions(); got != 1 {
		t.Errorf("CountConditions() = %d, want 1", got)
	}
	if got := page.CountItems(); got != 1 {
		t.Errorf("CountItems() = %d, want 1", got)
	}

	empty := &PageState{}
	if empty.CountConditions() != 0 || empty.CountItems() != 0 {
		t.Error("empty page must count zero conditions and items")
	}
}

func TestBoundingBoxDimensions(t *testing.T) {
	box := BoundingBox{Left: 0.25, Top: 0.5, Right: 0.75, Bottom: 0.875}

	if got := box.Width(); got != 0.5 {
		t.Errorf("Width() = %v, want 0.5", got)
	}
	if got := box.Height(); got != 0.375 {
		t.Errorf("Height() = %v, want 0.375", got)
	}
}

func TestChangeActionEntityName(t *testing.T) {
	cases := []struct {
		action ChangeAction
		want   string
	}{
		{ChangeAction{Condition: &Condition{Name: "Standard Window"}}, "Standard Window"},
		{ChangeAction{Zone: &Zone{Name: "First Floor Plan"}}, "First Floor Plan"},
		{ChangeAction{Item: &Item{Name: "Window #1"}}, "Window #1"},
		{ChangeAction{}, "N/A"},
	}

	for _, tc := range cases {
		if got := tc.action.EntityName(); got != tc.want {
			t.Errorf("EntityName() = %q, want %q", got, tc.want)
		}
	}
}
