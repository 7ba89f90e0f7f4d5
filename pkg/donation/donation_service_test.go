package donation

import (
	"context"
	"testing"

	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeDonationRepository struct {
	donations map[string]*entities.Donation
}

func newFakeDonationRepository() *fakeDonationRepository {
	return &fakeDonationRepository{donations: make(map[string]*entities.Donation)}
}

func (f *fakeDonationRepository) CreateDonation(_ context.Context, donation *entities.Donation) error {
	if donation.ID == uuid.Nil {
		donation.ID = uuid.New()
	}
	f.donations[donation.ID.String()] = donation
	return nil
}

func (f *fakeDonationRepository) GetDonations(_ context.Context) ([]*entities.Donation, error) {
	var donations []*entities.Donation
	for _, donation := range f.donations {
		donations = append(donations, donation)
	}
	return donations, nil
}

func (f *fakeDonationRepository) GetDonationByID(_ context.Context, id string) (*entities.Donation, error) {
	donation, ok := f.donations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return donation, nil
}

func (f *fakeDonationRepository) SetQuantity(_ context.Context, id string, quantity float64) (int64, error) {
	donation, ok := f.donations[id]
	if !ok {
		return 0, nil
	}
	donation.Quantity = quantity
	return 1, nil
}

func submitDonation(quantity float64) domain.SubmitDonationRequest {
	return domain.SubmitDonationRequest{
		Name:         "Sara",
		Contact:      "03211234567",
		Location:     "Islamabad",
		FoodType:     "Flour",
		Quantity:     quantity,
		QuantityUnit: "kg",
	}
}

func TestSubmitDonation_RejectsNonPositiveQuantity(t *testing.T) {
	t.Parallel()

	svc := NewDonationService(newFakeDonationRepository())

	for _, quantity := range []float64{0, -5} {
		_, err := svc.SubmitDonation(context.Background(), submitDonation(quantity))
		require.ErrorIs(t, err, domain.ErrInvalidQuantity)
	}
}

func TestSubmitDonation_Success(t *testing.T) {
	t.Parallel()

	svc := NewDonationService(newFakeDonationRepository())

	created, err := svc.SubmitDonation(context.Background(), submitDonation(25))
	require.NoError(t, err)
	assert.Equal(t, 25.0, created.Quantity)
	assert.Equal(t, "kg", created.QuantityUnit)
}

func TestUpdateDonationQuantity(t *testing.T) {
	t.Parallel()

	repo := newFakeDonationRepository()
	svc := NewDonationService(repo)

	created, err := svc.SubmitDonation(context.Background(), submitDonation(25))
	require.NoError(t, err)

	updated, err := svc.UpdateDonationQuantity(context.Background(), created.ID, domain.UpdateDonationQuantityRequest{Quantity: 0})
	require.NoError(t, err)
	assert.Equal(t, 0.0, updated.Quantity, "exhausted donations keep their record at zero")

	_, err = svc.UpdateDonationQuantity(context.Background(), created.ID, domain.UpdateDonationQuantityRequest{Quantity: -1})
	require.ErrorIs(t, err, domain.ErrNegativeQuantity)

	_, err = svc.UpdateDonationQuantity(context.Background(), uuid.New().String(), domain.UpdateDonationQuantityRequest{Quantity: 5})
	require.ErrorIs(t, err, domain.ErrDonationNotFound)
}
