package ports

import (
	"context"

	"github.com/05ryt31/No-more-FOMO/internal/domain"
)

// EventExtractor turns a free-text announcement (or pasted URL content) into
// structured event fields for the organizer form.
type EventExtractor interface {
	Extract(ctx context.Context, text string) (*domain.ExtractedEvent, error)
}
