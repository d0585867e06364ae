// Package estimator - Fetch-and-estimate processing.
// The handler owns the orchestration the webhook triggers: pull the full
// page state from the takeoff service, run the pricing engine, keep the
// latest result in memory and log the outcome. Fetch failures are logged,
// never surfaced to the webhook caller.
package estimator

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"takeoff-cost/adapters/takeoffclient"
	"takeoff-cost/core/estimate"
	"takeoff-cost/core/output"
	"takeoff-cost/core/takeoff"
	"takeoff-cost/internal/logging"
)

// LatestEstimate is the most recent computed estimate
type LatestEstimate struct {
	// DocumentID of the estimated document
	DocumentID uuid.UUID `json:"documentId"`

	// PageNumber of the estimated page
	PageNumber int `json:"pageNumber"`

	// Total is the grand total in currency units
	Total float64 `json:"total"`

	// Formatted is the display rendering of the total
	Formatted string `json:"formatted"`

	// ItemCount is the number of priced items
	ItemCount int `json:"itemCount"`

	// ComputedAt is when the estimate was produced
	ComputedAt time.Time `json:"computedAt"`
}

// Handler runs the fetch-then-compute flow
type Handler struct {
	client       *takeoffclient.Client
	engine       *estimate.Engine
	fetchTimeout time.Duration
	log          *zap.Logger

	mu     sync.RWMutex
	latest *LatestEstimate

	// wg tracks in-flight background recomputations so tests and
	// shutdown can wait for them
	wg sync.WaitGroup
}

// NewHandler creates a handler. A nil engine uses the default pricing
// table.
func NewHandler(client *takeoffclient.Client, engine *estimate.Engine, fetchTimeout time.Duration) *Handler {
	if engine == nil {
		engine = estimate.New(nil)
	}
	if fetchTimeout <= 0 {
		fetchTimeout = 30 * time.Second
	}
	return &Handler{
		client:       client,
		engine:       engine,
		fetchTimeout: fetchTimeout,
		log:          logging.Named("estimator"),
	}
}

// ProcessAsync schedules a fetch-and-estimate run in the background so
// the webhook response is not blocked on it.
func (h *Handler) ProcessAsync(documentID uuid.UUID, pageNumber int) {
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		h.process(documentID, pageNumber)
	}()
}

// Wait blocks until all in-flight recomputations finish
func (h *Handler) Wait() {
	h.wg.Wait()
}

// Latest returns the most recent estimate, or nil if none was computed
func (h *Handler) Latest() *LatestEstimate {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.latest
}

func (h *Handler) process(documentID uuid.UUID, pageNumber int) {
	ctx, cancel := context.WithTimeout(context.Background(), h.fetchTimeout)
	defer cancel()

	h.log.Info("fetching full state from takeoff service",
		zap.String("document_id", documentID.String()),
		zap.Int("page_number", pageNumber),
	)

	state, err := h.client.GetPageState(ctx, documentID, pageNumber)
	if err != nil {
		h.log.Error("failed to fetch page state", zap.Error(err))
		return
	}

	h.log.Info("retrieved state",
		zap.Int("zones", len(state.Zones)),
		zap.Int("conditions", state.CountConditions()),
		zap.Int("items", state.CountItems()),
	)

	result := h.engine.Estimate(state)

	for _, skipped := range result.Skipped {
		h.log.Warn("condition matched no pricing rule",
			zap.String("condition", skipped.Condition),
			zap.Int("items_skipped", skipped.ItemCount),
		)
	}

	formatted := output.FormatCurrency(result.Total)
	h.log.Info("estimate computed",
		zap.String("total", formatted),
		zap.Int("priced_items", result.ItemCount),
		zap.Int("cost_lines", len(result.Lines)),
	)

	h.mu.Lock()
	h.latest = &LatestEstimate{
		DocumentID: documentID,
		PageNumber: pageNumber,
		Total:      result.TotalFloat(),
		Formatted:  formatted,
		ItemCount:  result.ItemCount,
		ComputedAt: time.Now().UTC(),
	}
	h.mu.Unlock()
}

// logActions writes one line per change action, mirroring the incoming
// notification order.
func (h *Handler) logActions(change *takeoff.ChangeNotification) {
	h.log.Info("change notification received",
		zap.String("document_id", change.DocumentID.String()),
		zap.Int("page_number", change.PageNumber),
		zap.Int("actions", len(change.Actions)),
	)
	for _, action := range change.Actions {
		h.log.Info("change action",
			zap.Int("order", action.OrderNumber),
			zap.String("action", string(action.ActionName)),
			zap.String("entity", string(action.EntityType)),
			zap.String("name", action.EntityName()),
		)
	}
}
