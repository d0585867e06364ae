// Package takeoff - Change notification types
package takeoff

import "github.com/google/uuid"

// ActionName identifies what happened to an entity
type ActionName string

const (
	ActionCreate ActionName = "Create"
	ActionUpdate ActionName = "Update"
	ActionDelete ActionName = "Delete"
)

// EntityType identifies which entity a change action touched
type EntityType string

const (
	EntityZone      EntityType = "TakeoffZone"
	EntityCondition EntityType = "Condition"
	EntityItem      EntityType = "TakeoffItem"
)

// ChangeAction is a single create/update/delete event within a
// notification. At most one of Zone, Condition, Item is set, matching
// EntityType.
type ChangeAction struct {
	// OrderNumber orders actions within one notification
	OrderNumber int `json:"orderNumber"`

	// ActionName is Create, Update or Delete
	ActionName ActionName `json:"actionName,omitempty"`

	// EntityType names the changed entity kind
	EntityType EntityType `json:"entityType,omitempty"`

	// Zone is set when EntityType is TakeoffZone
	Zone *Zone `json:"takeoffZone,omitempty"`

	// Condition is set when EntityType is Condition
	Condition *Condition `json:"condition,omitempty"`

	// Item is set when EntityType is TakeoffItem
	Item *Item `json:"takeoffItem,omitempty"`
}

// EntityName returns a display name for the changed entity, if any
func (a *ChangeAction) EntityName() string {
	switch {
	case a.Condition != nil && a.Condition.Name != "":
		return a.Condition.Name
	case a.Zone != nil && a.Zone.Name != "":
		return a.Zone.Name
	case a.Item != nil && a.Item.Name != "":
		return a.Item.Name
	}
	return "N/A"
}

// ChangeNotification is the webhook payload the takeoff service sends
// when measurements change on a page.
type ChangeNotification struct {
	// DocumentID identifies the construction document
	DocumentID uuid.UUID `json:"documentId"`

	// PageNumber is the 1-indexed page where changes occurred
	PageNumber int `json:"pageNumber"`

	// Actions lists the individual changes
	Actions []ChangeAction `json:"actions,omitempty"`
}
