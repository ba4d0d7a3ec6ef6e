package service

import (
	"context"

	"token-vault/internal/core/domain"
	"token-vault/internal/core/ports"

	"github.com/rs/zerolog"
)

// JournalEventPublisher implements ports.EventPublisher by appending to the
// persistent event journal. Publishing never fails the calling operation; a
// journal write failure is logged and swallowed.
type JournalEventPublisher struct {
	eventRepo ports.EventRepository
	log       zerolog.Logger
}

// NewJournalEventPublisher creates a new JournalEventPublisher.
func NewJournalEventPublisher(eventRepo ports.EventRepository, log zerolog.Logger) *JournalEventPublisher {
	return &JournalEventPublisher{eventRepo: eventRepo, log: log}
}

// Publish appends the event to the journal.
func (p *JournalEventPublisher) Publish(ctx context.Context, ev domain.VaultEvent) {
	if err := p.eventRepo.Append(ctx, &ev); err != nil {
		p.log.Warn().
			Err(err).
			Str("kind", string(ev.Kind)).
			Str("actor", ev.Actor).
			Msg("failed to journal vault event")
	}
}
