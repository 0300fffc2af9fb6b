package workorder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/dgsoftwash/booking-api/internal/domain/workorder"
	"github.com/dgsoftwash/booking-api/internal/httperr"
	"github.com/dgsoftwash/booking-api/internal/models"
	"github.com/dgsoftwash/booking-api/internal/notify"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Get(ctx context.Context, id uint) (*models.WorkOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WorkOrder), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]models.WorkOrder, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.WorkOrder), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, wo *models.WorkOrder) error {
	args := m.Called(ctx, wo)
	if wo != nil {
		wo.ID = 42
	}
	return args.Error(0)
}

func (m *MockRepository) Save(ctx context.Context, wo *models.WorkOrder) error {
	args := m.Called(ctx, wo)
	return args.Error(0)
}

type recordingSender struct {
	emails []notify.Email
	sms    []notify.SMS
}

func (s *recordingSender) SendEmail(ctx context.Context, email notify.Email) error {
	s.emails = append(s.emails, email)
	return nil
}

func (s *recordingSender) SendSMS(ctx context.Context, sms notify.SMS) error {
	s.sms = append(s.sms, sms)
	return nil
}

func orderWithCustomer(email string) *models.WorkOrder {
	return &models.WorkOrder{
		ID:      7,
		Service: "house-single",
		Price:   "$575.00",
		Customer: &models.Customer{
			ID: 3, Name: "Pat Doe", Email: email, Phone: "555-0101",
		},
	}
}

func boolp(b bool) *bool { return &b }

func TestUpdateStatusFiresInvoiceEmail(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Get", mock.Anything, uint(7)).Return(orderWithCustomer("pat@example.com"), nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	uc := NewUpdateStatus(repo, notify.NewDispatcher(&recordingSender{}))

	got, err := uc.Execute(context.Background(), 7, UpdateInput{Invoiced: boolp(true)})
	require.NoError(t, err)

	assert.Equal(t, domain.NotifyInvoice, got.EmailSent)
	assert.True(t, got.WorkOrder.Invoiced)
	repo.AssertCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUpdateStatusNoEmailOnFile(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Get", mock.Anything, uint(7)).Return(orderWithCustomer(""), nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	uc := NewUpdateStatus(repo, notify.NewDispatcher(&recordingSender{}))

	got, err := uc.Execute(context.Background(), 7, UpdateInput{Invoiced: boolp(true)})
	require.NoError(t, err)

	// The status change sticks even though nothing could be sent.
	assert.Equal(t, domain.NotifyNone, got.EmailSent)
	assert.True(t, got.WorkOrder.Invoiced)
}

func TestUpdateStatusStampsAndClearsPaidAt(t *testing.T) {
	repo := new(MockRepository)
	wo := orderWithCustomer("pat@example.com")
	repo.On("Get", mock.Anything, uint(7)).Return(wo, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	uc := NewUpdateStatus(repo, notify.NewDispatcher(&recordingSender{}))

	got, err := uc.Execute(context.Background(), 7, UpdateInput{Paid: boolp(true)})
	require.NoError(t, err)
	require.NotNil(t, got.WorkOrder.PaidAt)
	assert.Equal(t, domain.NotifyNone, got.EmailSent)

	got, err = uc.Execute(context.Background(), 7, UpdateInput{Paid: boolp(false)})
	require.NoError(t, err)
	assert.Nil(t, got.WorkOrder.PaidAt)
}

func TestUpdateStatusPartialPatchLeavesOtherFields(t *testing.T) {
	repo := new(MockRepository)
	wo := orderWithCustomer("pat@example.com")
	wo.AdminNotes = "gate code 4411"
	wo.Invoiced = true
	repo.On("Get", mock.Anything, uint(7)).Return(wo, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	uc := NewUpdateStatus(repo, notify.NewDispatcher(&recordingSender{}))

	notes := "done, rinsed twice"
	got, err := uc.Execute(context.Background(), 7, UpdateInput{
		JobComplete:     boolp(true),
		CompletionNotes: &notes,
	})
	require.NoError(t, err)

	assert.True(t, got.WorkOrder.Invoiced)
	assert.Equal(t, "gate code 4411", got.WorkOrder.AdminNotes)
	assert.Equal(t, notes, got.WorkOrder.CompletionNotes)
	assert.Equal(t, domain.NotifyNone, got.EmailSent)
}

func TestRequestReviewSendsSynchronously(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Get", mock.Anything, uint(7)).Return(orderWithCustomer("pat@example.com"), nil)

	sender := &recordingSender{}
	uc := NewActions(repo, sender)

	require.NoError(t, uc.RequestReview(context.Background(), 7))
	require.Len(t, sender.emails, 1)
	assert.Equal(t, "pat@example.com", sender.emails[0].To)
}

func TestRequestReviewWithoutEmail(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Get", mock.Anything, uint(7)).Return(orderWithCustomer(""), nil)

	uc := NewActions(repo, &recordingSender{})

	err := uc.RequestReview(context.Background(), 7)
	assert.True(t, httperr.IsBusiness(err, "no_email"))
}

func TestSendReminderNeedsBooking(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Get", mock.Anything, uint(7)).Return(orderWithCustomer("pat@example.com"), nil)

	uc := NewActions(repo, &recordingSender{})

	err := uc.SendReminder(context.Background(), 7)
	assert.True(t, httperr.IsBusiness(err, "no_booking"))
}

func TestSendReminderTextsBookingDetails(t *testing.T) {
	repo := new(MockRepository)
	wo := orderWithCustomer("pat@example.com")
	wo.Booking = &models.Booking{Date: "2026-03-06", Time: "09:00"}
	repo.On("Get", mock.Anything, uint(7)).Return(wo, nil)

	sender := &recordingSender{}
	uc := NewActions(repo, sender)

	require.NoError(t, uc.SendReminder(context.Background(), 7))
	require.Len(t, sender.sms, 1)
	assert.Equal(t, "555-0101", sender.sms[0].To)
	assert.Contains(t, sender.sms[0].Body, "2026-03-06")
}
