// Package cmd - notify command
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"takeoff-cost/adapters/notify"
	"takeoff-cost/api/estimator"
	"takeoff-cost/core/takeoff"
)

var (
	notifyEndpoint string
	notifySecret   string
	notifyDocument string
	notifyPage     int
)

// notifyCmd sends a simulated change notification to a running estimator
var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Send a change notification to the estimator",
	Long: `Simulate the takeoff service notifying the estimator that
measurements changed, triggering a recomputation.

Examples:
  takeoff-cost notify --endpoint http://localhost:8001
  takeoff-cost notify --endpoint http://localhost:8001 --secret s3cret --page 2`,
	RunE: runNotify,
}

func init() {
	notifyCmd.Flags().StringVarP(&notifyEndpoint, "endpoint", "e", "http://localhost:8001", "estimator base URL")
	notifyCmd.Flags().StringVarP(&notifySecret, "secret", "s", "", "webhook signing secret")
	notifyCmd.Flags().StringVarP(&notifyDocument, "document", "d", "", "document UUID (default: random)")
	notifyCmd.Flags().IntVarP(&notifyPage, "page", "n", 1, "page number (1-indexed)")
}

func runNotify(cmd *cobra.Command, args []string) error {
	documentID := uuid.New()
	if notifyDocument != "" {
		parsed, err := uuid.Parse(notifyDocument)
		if err != nil {
			return fmt.Errorf("invalid document id: %w", err)
		}
		documentID = parsed
	}
	if notifyPage < 1 {
		return fmt.Errorf("page must be >= 1")
	}

	cfg := notify.DefaultConfig(notifyEndpoint + estimator.WebhookPath)
	cfg.Secret = notifySecret

	change := &takeoff.ChangeNotification{
		DocumentID: documentID,
		PageNumber: notifyPage,
		Actions: []takeoff.ChangeAction{
			{
				OrderNumber: 1,
				ActionName:  takeoff.ActionUpdate,
				EntityType:  takeoff.EntityItem,
				Item:        &takeoff.Item{ID: uuid.New(), Name: "Simulated change"},
			},
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := notify.New(cfg).Send(ctx, change); err != nil {
		return fmt.Errorf("notification failed: %w", err)
	}

	fmt.Printf("Notification accepted: document=%s page=%d\n", documentID, notifyPage)
	return nil
}
