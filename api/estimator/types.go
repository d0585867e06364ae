// Package estimator - Webhook request types and validation
package estimator

import (
	"github.com/google/uuid"

	"takeoff-cost/core/takeoff"
	"takeoff-cost/internal/errors"
)

// changeRequest is the wire form of a change notification. DocumentID is
// validated separately so a malformed UUID produces a validation error
// instead of a bare JSON decode failure.
type changeRequest struct {
	DocumentID string                 `json:"documentId"`
	PageNumber int                    `json:"pageNumber"`
	Actions    []takeoff.ChangeAction `json:"actions"`
}

func (c *changeRequest) validate() error {
	if c.DocumentID == "" {
		return errors.Input("documentId is required")
	}
	if _, err := uuid.Parse(c.DocumentID); err != nil {
		return errors.Input("documentId must be a valid UUID")
	}
	if c.PageNumber < 1 {
		return errors.Input("pageNumber must be >= 1")
	}
	return nil
}

// toNotification converts a validated request to the domain type
func (c *changeRequest) toNotification() *takeoff.ChangeNotification {
	return &takeoff.ChangeNotification{
		DocumentID: uuid.MustParse(c.DocumentID),
		PageNumber: c.PageNumber,
		Actions:    c.Actions,
	}
}
