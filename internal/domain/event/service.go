package event

import (
	"context"

	"github.com/hrconsole/hr-console-backend/internal/domain/user"
)

type EventService interface {
	Add(ctx context.Context, caller user.Principal, req CreateEventRequest) (EventResponse, error)
	List(ctx context.Context, caller user.Principal) ([]EventResponse, error)
	Edit(ctx context.Context, caller user.Principal, req UpdateEventRequest) (EventResponse, error)
	Delete(ctx context.Context, caller user.Principal, id string) error
}
