package order

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/Adityavardhan394/chatbot-restarunt/internal/domain"
)

// track schedules one timer per remaining stage at its fixed offset from
// confirmation. Stage 0 is reached synchronously during Checkout.
func (e *Engine) track(o *domain.Order) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := 1; i < len(o.Stages); i++ {
		idx := i
		t := e.scheduler.AfterFunc(o.Stages[i].Offset, func() {
			e.advanceStage(o.ID, idx)
		})
		e.timers[o.ID] = append(e.timers[o.ID], t)
	}
}

// advanceStage moves an order to the given stage. Progression is monotonic:
// a stage at or behind the current one is ignored, so timers firing out of
// order can never move the order backward.
func (e *Engine) advanceStage(orderID string, stage int) {
	e.mu.Lock()
	o, ok := e.orders[orderID]
	if !ok || stage <= o.CurrentStage || stage >= len(o.Stages) {
		e.mu.Unlock()
		return
	}
	o.CurrentStage = stage
	o.Status = o.Stages[stage].Status
	o.Stages[stage].ReachedAt = e.now()
	record := o.Stages[stage]
	terminal := o.Terminal()
	snap := o.Snapshot()
	e.mu.Unlock()

	ctx := context.Background()
	if err := e.store.SaveOrder(ctx, snap); err != nil {
		log.Error().Err(err).Str("order_id", orderID).Msg("failed to persist stage transition")
	}
	e.publish(ctx, o, record)
	e.notify(record)

	log.Info().
		Str("order_id", orderID).
		Str("status", string(record.Status)).
		Int("stage", stage).
		Msg("order stage advanced")

	if terminal {
		e.mu.Lock()
		delete(e.timers, orderID)
		e.mu.Unlock()
	}
}
