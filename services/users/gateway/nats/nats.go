package gateway_nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bankedge/gateway/internal/pkg/logger"
	"github.com/bankedge/gateway/internal/pkg/models"
	natspkg "github.com/bankedge/gateway/internal/pkg/nats"
)

// EventGateway publishes auth events to NATS. A nil client disables
// publishing without changing call sites.
type EventGateway struct {
	client *natspkg.Client
}

// NewEventGateway creates a new NATS event gateway
func NewEventGateway(client *natspkg.Client) *EventGateway {
	return &EventGateway{client: client}
}

// PublishCustomerRegistered publishes a first-login customer registration event
func (g *EventGateway) PublishCustomerRegistered(ctx context.Context, event *models.AuthEvent) error {
	return g.publish(natspkg.SubjectCustomerRegistered, event)
}

// PublishAdminLogin publishes an admin login event
func (g *EventGateway) PublishAdminLogin(ctx context.Context, event *models.AuthEvent) error {
	return g.publish(natspkg.SubjectAdminLogin, event)
}

func (g *EventGateway) publish(subject string, event *models.AuthEvent) error {
	if g.client == nil {
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal auth event: %w", err)
	}

	if err := g.client.Publish(subject, data); err != nil {
		logger.Warn("Failed to publish auth event",
			logger.String("subject", subject),
			logger.Int64("user_id", event.UserID),
			logger.Err(err))
		return fmt.Errorf("failed to publish auth event: %w", err)
	}

	return nil
}
