package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Dosada05/scouting-system/live"
	"github.com/Dosada05/scouting-system/repositories"
	"github.com/Dosada05/scouting-system/utils"
)

// Notifier receives change events after successful mutations.
type Notifier interface {
	BroadcastToRoom(roomID string, message interface{})
}

func notify(n Notifier, room, msgType string, payload interface{}) {
	if n == nil {
		return
	}
	n.BroadcastToRoom(room, live.Message{Type: msgType, Payload: payload, RoomID: room})
}

// PhotoUpload is an image picked in a form.
type PhotoUpload struct {
	ContentType string `json:"contentType"`
	Data        []byte `json:"data"`
}

// photoDataURI validates the upload and encodes it for the photoData field.
func photoDataURI(p *PhotoUpload) (string, error) {
	if p == nil || len(p.Data) == 0 {
		return "", nil
	}
	if !strings.HasPrefix(p.ContentType, "image/") {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedPhotoType, p.ContentType)
	}
	return utils.PhotoDataURI(p.ContentType, p.Data), nil
}

// lookupWithFallback loads one entity directly and, if that fails for any
// reason, searches the whole collection for it.
func lookupWithFallback[T any](
	ctx context.Context,
	logger *slog.Logger,
	kind, id string,
	get func(context.Context, string) (*T, error),
	list func(context.Context) ([]T, error),
	idOf func(T) string,
	notFound error,
) (*T, error) {
	item, err := get(ctx, id)
	if err == nil {
		return item, nil
	}
	logger.WarnContext(ctx, "direct lookup failed, searching collection",
		slog.String("kind", kind), slog.String("id", id), slog.Any("error", err))

	items, listErr := list(ctx)
	if listErr != nil {
		return nil, fmt.Errorf("%w: collection lookup failed: %w", notFound, listErr)
	}
	for i := range items {
		if idOf(items[i]) == id {
			return &items[i], nil
		}
	}
	return nil, notFound
}

// mapNotFound translates a backend 404 into the entity's own error.
func mapNotFound(err, notFound error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return notFound
	}
	return err
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
