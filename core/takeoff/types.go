// Package takeoff defines the measurement data model exchanged between
// the takeoff service and the estimator.
// The hierarchy is strictly tree-shaped: PageState owns zones, zones own
// condition states, condition states own items, items own quantity values.
// The estimator treats a materialized PageState as read-only.
package takeoff

import "github.com/google/uuid"

// MeasurementType tags how a condition is measured on the drawing
type MeasurementType string

const (
	// MeasureCount is discrete counting (1, 2, 3... windows)
	MeasureCount MeasurementType = "Count"

	// MeasureArea is surface measurement in square units
	MeasureArea MeasurementType = "Area"

	// MeasureLinear is length measurement
	MeasureLinear MeasurementType = "Linear"
)

// Point is a 2D coordinate on the drawing
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// BoundingBox is a rectangular area in document coordinates
type BoundingBox struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// Width returns the horizontal extent of the box
func (b BoundingBox) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box
func (b BoundingBox) Height() float64 {
	return b.Bottom - b.Top
}

// NameValuePair is a generic property or attribute entry
type NameValuePair struct {
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"`
}

// QuantityDef declares a measurement quantity a condition produces
type QuantityDef struct {
	// Name is the quantity name (e.g. "Count", "Area", "Length")
	Name string `json:"name,omitempty"`

	// UnitOfMeasure is the unit (e.g. "EA", "SQ.M", "M")
	UnitOfMeasure string `json:"unitOfMeasure,omitempty"`

	// ExcludeAttachments excludes attached items from this quantity
	ExcludeAttachments bool `json:"excludeAttachments"`
}

// QuantityValue is a single measured value attached to an item.
// Values are matched by name, not by a closed enum; consumers match
// names case-insensitively by substring.
type QuantityValue struct {
	Name          string  `json:"name,omitempty"`
	UnitOfMeasure string  `json:"unitOfMeasure,omitempty"`
	Value         float64 `json:"value"`
}

// Item is one concrete measured instance of a condition
type Item struct {
	// ID uniquely identifies this item
	ID uuid.UUID `json:"id"`

	// ConditionID references the owning condition
	ConditionID uuid.UUID `json:"conditionId"`

	// ZoneID references the owning zone
	ZoneID uuid.UUID `json:"takeoffZoneId"`

	// ParentItemID links attachment items to their parent
	ParentItemID *uuid.UUID `json:"parentTakeoffItemId,omitempty"`

	// Points defines the item geometry on the drawing
	Points []Point `json:"points,omitempty"`

	// Angle is the rotation angle in degrees
	Angle *float64 `json:"angle,omitempty"`

	// Name is an optional custom name for this instance
	Name string `json:"itemName,omitempty"`

	// Quantities holds the measured values for all quantities
	Quantities []QuantityValue `json:"quantityValues,omitempty"`
}

// Condition describes a type of constructible element (window, door,
// wall...) together with its measurement rules and display attributes.
type Condition struct {
	// ID uniquely identifies the condition
	ID uuid.UUID `json:"id"`

	// Name is the display name (e.g. "Standard Window 1200x1500")
	Name string `json:"name,omitempty"`

	// Type is the measurement type tag (Count, Area, Linear)
	Type MeasurementType `json:"type,omitempty"`

	// Description carries additional notes
	Description string `json:"description,omitempty"`

	// Layer is the drawing layer name
	Layer string `json:"layer,omitempty"`

	// Color is the display color for UI rendering
	Color string `json:"color,omitempty"`

	// LineStyle is the line style for rendering
	LineStyle string `json:"lineStyle,omitempty"`

	// FillPattern is the fill pattern for area elements
	FillPattern string `json:"fillPattern,omitempty"`

	// IsAttachment marks conditions attached to another element
	IsAttachment bool `json:"isAttachment"`

	// Category is the grouping (e.g. "Doors", "Windows")
	Category string `json:"category,omitempty"`

	// Shape is the geometric shape (Window, Column, Square...)
	Shape string `json:"shape,omitempty"`

	// Quantities declares the quantities measured for this condition
	Quantities []QuantityDef `json:"quantities,omitempty"`

	// Properties holds standard key-value properties
	Properties []NameValuePair `json:"properties,omitempty"`

	// CustomAttributes holds user-defined attributes
	CustomAttributes []NameValuePair `json:"customAttributes,omitempty"`
}

// ConditionState pairs a condition with all its measured items
type ConditionState struct {
	Condition *Condition `json:"condition,omitempty"`
	Items     []Item     `json:"takeoffItems,omitempty"`
}

// Zone is a scaled, positioned region of a drawing
type Zone struct {
	// ID uniquely identifies the zone
	ID uuid.UUID `json:"id"`

	// Scale is the architectural scale factor (100 for 1:100)
	Scale float64 `json:"scale"`

	// Name is the zone name (e.g. "Floor Plan - Scale 1:100")
	Name string `json:"name,omitempty"`

	// BoundingBox bounds the zone on the page
	BoundingBox *BoundingBox `json:"boundingBox,omitempty"`

	// DPI is the resolution of the source drawing
	DPI int `json:"dpi"`
}

// ZoneState pairs a zone with all conditions measured within it
type ZoneState struct {
	Zone       *Zone            `json:"takeoffZone,omitempty"`
	Conditions []ConditionState `json:"conditions,omitempty"`
}

// PageState is the complete measurement state for one document page.
// Zone order reflects the provider's response order; the sequence may
// be empty, which is a valid result, not an error.
type PageState struct {
	Zones []ZoneState `json:"takeoffZones,omitempty"`
}

// CountConditions returns the number of condition states across all zones
func (p *PageState) CountConditions() int {
	n := 0
	for _, z := range p.Zones {
		n += len(z.Conditions)
	}
	return n
}

// CountItems returns the number of items across all zones and conditions
func (p *PageState) CountItems() int {
	n := 0
	for _, z := range p.Zones {
		for _, c := range z.Conditions {
			n += len(c.Items)
		}
	}
	return n
}
