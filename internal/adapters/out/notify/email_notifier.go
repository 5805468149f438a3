// Package notify implements the notification port: an email notifier backed
// by SendGrid for production and a log notifier for local development.
package notify

import (
	"context"
	"fmt"

	"laundry/internal/core/domain/model/driver"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

var _ ports.Notifier = (*EmailNotifier)(nil)

// EmailNotifier sends order notifications to the customer's registered email
// through SendGrid.
type EmailNotifier struct {
	client *sendgrid.Client
	from   *mail.Email
	users  ports.UserRepository
}

// NewEmailNotifier creates a notifier that sends through SendGrid. The user
// repository resolves order owners to their email addresses.
func NewEmailNotifier(apiKey, fromName, fromAddress string, users ports.UserRepository) (*EmailNotifier, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("sendgrid api key is empty")
	}
	if fromAddress == "" {
		return nil, fmt.Errorf("sender address is empty")
	}
	if users == nil {
		return nil, fmt.Errorf("user repository is nil")
	}

	return &EmailNotifier{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail(fromName, fromAddress),
		users:  users,
	}, nil
}

// NotifyOrderStatusChanged emails the order's owner about the new status.
func (n *EmailNotifier) NotifyOrderStatusChanged(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	subject, body := StatusChangeMessage(aggregate)
	return n.send(ctx, aggregate, subject, body)
}

// NotifyDriverAssigned emails the order's owner the assigned driver's details.
func (n *EmailNotifier) NotifyDriverAssigned(
	ctx context.Context,
	aggregate *order.Order,
	assigned *driver.Driver,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := assigned.Validate(); err != nil {
		return err
	}

	subject, body := DriverAssignedMessage(aggregate, assigned)
	return n.send(ctx, aggregate, subject, body)
}

func (n *EmailNotifier) send(ctx context.Context, aggregate *order.Order, subject, body string) error {
	account, err := n.users.Get(ctx, aggregate.UserID())
	if err != nil {
		return fmt.Errorf("resolve recipient for order %s: %w", aggregate.ID(), err)
	}

	message := mail.NewSingleEmail(
		n.from, subject, mail.NewEmail(account.Name(), account.Email()), body, "")

	response, err := n.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("send notification for order %s: %w", aggregate.ID(), err)
	}
	if response.StatusCode >= 300 {
		return fmt.Errorf("send notification for order %s: sendgrid returned %d",
			aggregate.ID(), response.StatusCode)
	}

	return nil
}

// StatusChangeMessage renders the subject and body for a status change email.
func StatusChangeMessage(aggregate *order.Order) (string, string) {
	subject := fmt.Sprintf("Your laundry order is %s", aggregate.Status())
	body := fmt.Sprintf(
		"Hello,\n\nYour %s order %s is now %s.\n\nThank you for choosing us.",
		aggregate.Category(), aggregate.ID(), aggregate.Status())
	return subject, body
}

// DriverAssignedMessage renders the subject and body for a driver assignment
// email.
func DriverAssignedMessage(aggregate *order.Order, assigned *driver.Driver) (string, string) {
	subject := "A driver is on the way for your laundry pickup"
	body := fmt.Sprintf(
		"Hello,\n\n%s will pick up order %s driving a %s (%s).\nYou can reach them at %s.",
		assigned.Name(), aggregate.ID(), assigned.VehicleType(),
		assigned.VehicleNumber(), assigned.Phone())
	return subject, body
}
