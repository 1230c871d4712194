package worker

import (
	"context"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/hyperlinqai/tulip-foundation/pkg/mq"
	"github.com/hyperlinqai/tulip-foundation/services/notification-service/internal/events"
	"github.com/hyperlinqai/tulip-foundation/services/notification-service/internal/notifier"
)

// Worker drains donation lifecycle events off the shared consumer and
// turns each one into an operator notification. Handler errors Nack with
// requeue, so delivery is at-least-once.
type Worker struct {
	cons     *mq.Consumer
	notifier notifier.Notifier
}

func NewWorker(cons *mq.Consumer, n notifier.Notifier) *Worker {
	return &Worker{cons: cons, notifier: n}
}

func (w *Worker) Run(ctx context.Context) error {
	msgs, err := w.cons.Deliveries(ctx)
	if err != nil {
		return fmt.Errorf("consume failed: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			if err := w.handleDelivery(d); err != nil {
				log.Printf("[notify] handle error key=%s err=%v -> Nack&requeue", d.RoutingKey, err)
				_ = d.Nack(false, true)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (w *Worker) handleDelivery(d amqp.Delivery) error {
	switch d.RoutingKey {
	case events.RKDonationCompleted:
		ev, err := events.MustUnmarshal[events.DonationCompleted](d.Body)
		if err != nil {
			return err
		}
		msg := fmt.Sprintf("Donation %s for %d received (payment=%s).", ev.DonationID, ev.Amount, ev.PaymentID)
		if ev.Designation != "" {
			msg = fmt.Sprintf("%s Designation: %s", msg, ev.Designation)
		}
		return w.notifier.Notify("💰 Donation Received", msg)

	case events.RKDonationUnrecorded:
		ev, err := events.MustUnmarshal[events.DonationUnrecorded](d.Body)
		if err != nil {
			return err
		}
		return w.notifier.Notify("⚠️ Unrecorded Donation",
			fmt.Sprintf("Payment %s (%d from %s) was charged but never stored: %s. Reconcile against the gateway dashboard.",
				ev.PaymentID, ev.Amount, ev.Email, ev.Reason))

	case events.RKRegistrationPaid:
		ev, err := events.MustUnmarshal[events.RegistrationPaid](d.Body)
		if err != nil {
			return err
		}
		tx := ""
		if ev.TransactionID != nil {
			tx = *ev.TransactionID
		}
		return w.notifier.Notify("✅ Registration Paid",
			fmt.Sprintf("Registration %s marked paid for %d (tx=%s).", ev.RegistrationID, ev.TotalAmount, tx))

	default:
		log.Printf("[notify] skip unknown key=%s", d.RoutingKey)
	}
	return nil
}
