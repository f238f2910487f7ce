package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahlimouna/gari-app/internal/db"
	"github.com/sahlimouna/gari-app/internal/entities"
)

func TestFormatCardNumber(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "digits with letters", in: "4242424242424242abc", want: "4242 4242 4242 4242"},
		{name: "caps at 16 digits", in: "42424242424242429999", want: "4242 4242 4242 4242"},
		{name: "already formatted is unchanged", in: "4242 4242 4242 4242", want: "4242 4242 4242 4242"},
		{name: "partial number", in: "424242", want: "4242 42"},
		{name: "no digits", in: "abc-def", want: ""},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatCardNumber(tt.in)
			assert.Equal(t, tt.want, got)
			// Re-running the formatter on its own output must be a no-op.
			assert.Equal(t, got, FormatCardNumber(got))
		})
	}
}

func TestFormatCVV(t *testing.T) {
	assert.Equal(t, "123", FormatCVV("123"))
	assert.Equal(t, "123", FormatCVV("12345"))
	assert.Equal(t, "12", FormatCVV("1a2b"))
	assert.Equal(t, "", FormatCVV("abc"))
}

func TestValidateCardForm(t *testing.T) {
	valid := entities.CardForm{
		CardNumber:  "4242424242424242",
		CardName:    "JEAN DUPONT",
		ExpiryMonth: "06",
		ExpiryYear:  "2027",
		CVV:         "123",
	}

	form := valid
	require.NoError(t, ValidateCardForm(&form))
	assert.Equal(t, "4242 4242 4242 4242", form.CardNumber)

	for _, clear := range []func(*entities.CardForm){
		func(f *entities.CardForm) { f.CardNumber = "" },
		func(f *entities.CardForm) { f.CardName = "  " },
		func(f *entities.CardForm) { f.ExpiryMonth = "" },
		func(f *entities.CardForm) { f.ExpiryYear = "" },
		func(f *entities.CardForm) { f.CVV = "xyz" },
	} {
		form := valid
		clear(&form)
		assert.Error(t, ValidateCardForm(&form))
	}
}

func TestSubmitCard(t *testing.T) {
	svc := NewPaymentService(nil)
	svc.processingDelay = 10 * time.Millisecond

	resp, err := svc.SubmitCard(context.Background(), entities.CardForm{
		CardNumber:  "4242 4242 4242 4242",
		CardName:    "JEAN DUPONT",
		ExpiryMonth: "06",
		ExpiryYear:  "2027",
		CVV:         "123",
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)

	_, err = svc.SubmitCard(context.Background(), entities.CardForm{})
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc.processingDelay = time.Minute
	_, err = svc.SubmitCard(ctx, entities.CardForm{
		CardNumber:  "4242424242424242",
		CardName:    "JEAN DUPONT",
		ExpiryMonth: "06",
		ExpiryYear:  "2027",
		CVV:         "123",
	})
	assert.ErrorIs(t, err, context.Canceled)
}

type stubPaymentStore struct {
	payments []db.Payment
}

func (s *stubPaymentStore) ListPaymentsByUser(string) ([]db.Payment, error) {
	return s.payments, nil
}

func (s *stubPaymentStore) CreatePayment(p *db.Payment) error {
	s.payments = append(s.payments, *p)
	return nil
}

func TestGetPaymentHistory(t *testing.T) {
	now := time.Now()
	store := &stubPaymentStore{payments: []db.Payment{
		{ID: "p1", Amount: 800, Status: db.PaymentStatusCompleted, Date: now},
		{ID: "p2", Amount: 300, Status: db.PaymentStatusCompleted, Date: now},
		{ID: "p3", Amount: 500, Status: db.PaymentStatusPending, Date: now},
		{ID: "p4", Amount: 200, Status: db.PaymentStatusFailed, Date: now},
	}}

	history, err := NewPaymentService(store).GetPaymentHistory("user-1")
	require.NoError(t, err)
	assert.Len(t, history.Payments, 4)
	assert.Equal(t, 1100, history.TotalPaid)
	assert.Equal(t, 2, history.CompletedCount)
	assert.Equal(t, 1, history.PendingCount)
}
