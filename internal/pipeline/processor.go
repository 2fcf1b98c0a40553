// Package pipeline turns chat exchange events into usage statistics.
package pipeline

import (
	"context"
	"fmt"

	"vaccine-village-go/internal/repository"
	"vaccine-village-go/pkg/events"
	"vaccine-village-go/pkg/log"
)

// Processor aggregates ChatExchange events into Redis counters.
type Processor struct {
	statsRepo repository.StatsRepository
}

// NewProcessor creates a new Processor.
func NewProcessor(statsRepo repository.StatsRepository) *Processor {
	return &Processor{statsRepo: statsRepo}
}

// Process counts ev once. Redelivered events are skipped; a failed attempt
// leaves no trace, so the consumer's retry counts it again.
func (p *Processor) Process(ctx context.Context, ev events.ChatExchange) error {
	counted, err := p.statsRepo.CountExchange(ctx, ev)
	if err != nil {
		return fmt.Errorf("count chat exchange: %w", err)
	}
	if !counted {
		log.Debugf("[Processor] event %s already counted", ev.MessageID)
		return nil
	}
	log.Debugf("[Processor] counted event %s topic=%s lang=%s unsafe=%t", ev.MessageID, ev.Topic, ev.Language, ev.Unsafe)
	return nil
}
