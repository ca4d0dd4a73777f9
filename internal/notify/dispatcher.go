// Package notify fans a stored message out to its recipients' devices.
//
// Delivery is strictly best-effort: a missing token is a skip, a lookup or
// transport failure is a logged warning, and nothing here ever propagates
// back to the send path that already persisted the message.
package notify

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/eventlink/chat-service/internal/config"
	"github.com/eventlink/chat-service/internal/model"
)

const (
	ChatNotificationType  = "chat"
	EventNotificationType = "event_message"
)

type Dispatcher struct {
	users     UserStore
	directory UserDirectory
	push      PushTransport
}

func New(users UserStore, directory UserDirectory, push PushTransport) *Dispatcher {
	return &Dispatcher{
		users:     users,
		directory: directory,
		push:      push,
	}
}

// resolveUser reads through the local chat_users cache to the user directory,
// caching anything it had to fetch.
func (d *Dispatcher) resolveUser(ctx context.Context, userID string) (*model.ChatUser, error) {
	user, err := d.users.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cached user: %w", err)
	}
	if user != nil {
		return user, nil
	}

	user, err = d.directory.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user from directory: %w", err)
	}

	if err := d.users.SaveUser(ctx, user); err != nil {
		logger := logger_lib.FromContext(ctx, config.KeyLogger)
		logger.Warn(fmt.Sprintf("failed to cache user %s: %v", userID, err))
	}

	return user, nil
}

// NotifyPrivate notifies the single receiver of a private message, if and
// only if they have a registered device token.
func (d *Dispatcher) NotifyPrivate(ctx context.Context, message *model.Message) error {
	if message.ReceiverID == nil {
		return fmt.Errorf("private message has no receiver")
	}

	sender, err := d.resolveUser(ctx, message.SenderID.String())
	if err != nil {
		return fmt.Errorf("failed to resolve sender: %w", err)
	}

	receiver, err := d.resolveUser(ctx, message.ReceiverID.String())
	if err != nil {
		return fmt.Errorf("failed to resolve receiver: %w", err)
	}

	if receiver.PushToken == "" {
		return nil
	}

	metadata := map[string]string{
		"type":        ChatNotificationType,
		"sender_id":   message.SenderID.String(),
		"receiver_id": message.ReceiverID.String(),
	}

	title := fmt.Sprintf("%s sent you a message", sender.Nickname)
	if err := d.push.Send(ctx, receiver.PushToken, title, message.Content, metadata); err != nil {
		return fmt.Errorf("failed to send push notification: %w", err)
	}

	return nil
}

// NotifyEvent notifies every current participant and the creator except the
// sender. Deliveries run concurrently and independently: one recipient's
// failure is logged and never blocks the others.
func (d *Dispatcher) NotifyEvent(ctx context.Context, message *model.Message, eventInfo *model.EventInfo) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	if message.EventID == nil {
		return fmt.Errorf("event message has no event id")
	}

	sender, err := d.resolveUser(ctx, message.SenderID.String())
	if err != nil {
		return fmt.Errorf("failed to resolve sender: %w", err)
	}

	metadata := map[string]string{
		"type":      EventNotificationType,
		"event_id":  message.EventID.String(),
		"sender_id": message.SenderID.String(),
	}
	title := fmt.Sprintf("%s in %s", sender.Nickname, message.EventID.String())

	g := errgroup.Group{}
	for _, recipientID := range eventInfo.Recipients(message.SenderID) {
		recipientID := recipientID
		g.Go(func() error {
			recipient, err := d.resolveUser(ctx, recipientID.String())
			if err != nil {
				logger.Warn(fmt.Sprintf("failed to resolve recipient %s: %v", recipientID, err))
				return nil
			}

			if recipient.PushToken == "" {
				return nil
			}

			if err := d.push.Send(ctx, recipient.PushToken, title, message.Content, metadata); err != nil {
				logger.Warn(fmt.Sprintf("failed to send push notification to %s: %v", recipientID, err))
			}

			return nil
		})
	}

	// goroutines swallow their own failures, Wait only synchronizes
	_ = g.Wait()

	return nil
}
