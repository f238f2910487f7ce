package api

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/sahlimouna/gari-app/internal/db"
	"github.com/sahlimouna/gari-app/internal/service"
)

// StripeWebhookHandler ingests gateway events and turns them into payment
// rows. This is the external producer the payment history reads from; the
// card form never writes here.
type StripeWebhookHandler struct {
	Secret        string
	Reservations  *service.ReservationService
	Payments      *service.PaymentService
	Catalog       *service.CatalogService
	Notifications *service.NotificationService
}

func NewStripeWebhookHandler(secret string, reservations *service.ReservationService,
	payments *service.PaymentService, catalog *service.CatalogService,
	notifications *service.NotificationService) *StripeWebhookHandler {
	return &StripeWebhookHandler{
		Secret:        secret,
		Reservations:  reservations,
		Payments:      payments,
		Catalog:       catalog,
		Notifications: notifications,
	}
}

func (h *StripeWebhookHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	const maxBodyBytes = int64(65536)
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("Error reading webhook body: %v", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	sigHeader := r.Header.Get("Stripe-Signature")
	event, err := webhook.ConstructEvent(payload, sigHeader, h.Secret)
	if err != nil {
		log.Printf("Webhook signature verification failed: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			log.Printf("Error parsing checkout.session: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		receiptURL := ""
		if sess.PaymentIntent != nil && sess.PaymentIntent.LatestCharge != nil {
			receiptURL = sess.PaymentIntent.LatestCharge.ReceiptURL
		}
		if err := h.recordPayment(sess.Metadata["reservation_id"], int(sess.AmountTotal/100),
			db.PaymentStatusCompleted, receiptURL); err != nil {
			log.Printf("Error recording completed payment: %v", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

	case "payment_intent.payment_failed":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			log.Printf("Error parsing payment_intent: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if err := h.recordPayment(intent.Metadata["reservation_id"], int(intent.Amount/100),
			db.PaymentStatusFailed, ""); err != nil {
			log.Printf("Error recording failed payment: %v", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

	default:
		log.Printf("Unhandled event type: %s", event.Type)
	}

	w.WriteHeader(http.StatusOK)
}

func (h *StripeWebhookHandler) recordPayment(reservationID string, amount int, status, receiptURL string) error {
	res, err := h.Reservations.FindByID(reservationID)
	if err != nil {
		return err
	}

	parkingName := res.ParkingID
	if parking, err := h.Catalog.GetParking(res.ParkingID); err == nil && parking != nil {
		parkingName = parking.Name
	}

	payment, err := h.Payments.RecordGatewayPayment(res, parkingName, amount, status, "card", receiptURL)
	if err != nil {
		return err
	}
	h.Notifications.NotifyPaymentRecorded(payment)
	return nil
}
