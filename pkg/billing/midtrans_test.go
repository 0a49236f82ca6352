package billing

import (
	"context"
	"fitlens-backend/domain"
	"fitlens-backend/entities"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const serverKey = "SB-Mid-server-test"

type fakeSnap struct {
	request  *snap.Request
	response *snap.Response
	err      *midtrans.Error
}

func (f *fakeSnap) CreateTransaction(req *snap.Request) (*snap.Response, *midtrans.Error) {
	f.request = req
	return f.response, f.err
}

func newMidtrans(t *testing.T, fake *fakeSnap) *midtransProcessor {
	p := NewMidtransProcessor(MidtransConfig{
		ServerKey: serverKey,
		Amounts:   map[string]int64{"plus-month": 49900},
	}, zaptest.NewLogger(t)).(*midtransProcessor)
	p.snap = fake
	return p
}

func notification(orderID, status, statusCode, gross, signature string) []byte {
	return []byte(fmt.Sprintf(`{"transaction_id": "tx-1", "transaction_status": %q, "fraud_status": "accept", "order_id": %q, "status_code": %q, "gross_amount": %q, "signature_key": %q}`,
		status, orderID, statusCode, gross, signature))
}

func TestMidtransCreateCheckout(t *testing.T) {
	fake := &fakeSnap{response: &snap.Response{Token: "tok", RedirectURL: "https://app.sandbox.midtrans.com/snap/v2/vtweb/tok"}}
	p := newMidtrans(t, fake)

	plan, _ := FindPlan("plus")
	resp, err := p.CreateCheckout(context.Background(), plan, entities.IntervalMonth)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.SessionID, "sub-plus-month-"))
	assert.Equal(t, "https://app.sandbox.midtrans.com/snap/v2/vtweb/tok", resp.URL)

	require.NotNil(t, fake.request)
	assert.Equal(t, resp.SessionID, fake.request.TransactionDetails.OrderID)
	assert.Equal(t, int64(49900), fake.request.TransactionDetails.GrossAmt)
	require.NotNil(t, fake.request.Items)
	assert.Equal(t, "Plus", (*fake.request.Items)[0].Name)
}

func TestMidtransCreateCheckout_Errors(t *testing.T) {
	plan, _ := FindPlan("basic")
	_, err := newMidtrans(t, &fakeSnap{}).CreateCheckout(context.Background(), plan, entities.IntervalMonth)
	assert.ErrorIs(t, err, domain.ErrInvalidPlan)

	plus, _ := FindPlan("plus")
	fake := &fakeSnap{err: &midtrans.Error{Message: "unauthorized", StatusCode: 401}}
	_, err = newMidtrans(t, fake).CreateCheckout(context.Background(), plus, entities.IntervalMonth)
	assert.ErrorIs(t, err, domain.ErrCheckoutFailed)
}

func TestMidtransParseWebhook(t *testing.T) {
	p := newMidtrans(t, &fakeSnap{})
	orderID := "sub-plus-month-5f0c"

	sig := MidtransSignature(orderID, "200", "49900.00", serverKey)
	event, err := p.ParseWebhook(notification(orderID, "settlement", "200", "49900.00", sig), "")
	require.NoError(t, err)
	assert.Equal(t, domain.EventCheckoutCompleted, event.Type)
	assert.Equal(t, orderID, event.ObjectID)
	require.NotNil(t, event.Subscription)
	assert.Equal(t, "plus", event.Subscription.PlanID)
	assert.Equal(t, entities.SubscriptionActive, event.Subscription.Status)

	sig = MidtransSignature(orderID, "202", "49900.00", serverKey)
	event, err = p.ParseWebhook(notification(orderID, "expire", "202", "49900.00", sig), "")
	require.NoError(t, err)
	assert.Equal(t, domain.EventPaymentFailed, event.Type)
}

func TestMidtransParseWebhook_Signature(t *testing.T) {
	p := newMidtrans(t, &fakeSnap{})

	_, err := p.ParseWebhook(notification("sub-plus-month-1", "settlement", "200", "49900.00", ""), "")
	assert.ErrorIs(t, err, domain.ErrMissingSignature)

	forged := MidtransSignature("sub-plus-month-1", "200", "1.00", serverKey)
	_, err = p.ParseWebhook(notification("sub-plus-month-1", "settlement", "200", "49900.00", forged), "")
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)

	_, err = p.ParseWebhook([]byte("not json"), "")
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestMidtransCancelSubscription(t *testing.T) {
	p := newMidtrans(t, &fakeSnap{})
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return now }

	c, err := p.CancelSubscription(context.Background(), "sub-plus-month-1")
	require.NoError(t, err)
	assert.Equal(t, now, c.CanceledAt)
	assert.Equal(t, now.AddDate(0, 0, domain.CancelGraceDays), c.AccessUntil)
}

func TestPlanFromOrderID(t *testing.T) {
	assert.Equal(t, "premium", planFromOrderID("sub-premium-year-8a1f-4c2e"))
	assert.Empty(t, planFromOrderID("order-1"))
	assert.Empty(t, planFromOrderID("sub-basic"))
}

func TestParseAmount(t *testing.T) {
	assert.Equal(t, int64(29900), ParseAmount("29900"))
	assert.Zero(t, ParseAmount(""))
	assert.Zero(t, ParseAmount("29,90"))
}
