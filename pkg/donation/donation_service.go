package donation

import (
	"context"

	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"
)

type (
	DonationService interface {
		SubmitDonation(ctx context.Context, req domain.SubmitDonationRequest) (*domain.Donation, error)
		GetDonations(ctx context.Context) ([]*domain.Donation, error)
		UpdateDonationQuantity(ctx context.Context, id string, req domain.UpdateDonationQuantityRequest) (*domain.Donation, error)
	}

	donationService struct {
		donationRepository DonationRepository
	}
)

func NewDonationService(donationRepository DonationRepository) DonationService {
	return &donationService{donationRepository: donationRepository}
}

func ToDonationResponse(donation *entities.Donation) *domain.Donation {
	return &domain.Donation{
		ID:           donation.ID.String(),
		Name:         donation.Name,
		Contact:      donation.Contact,
		Location:     donation.Location,
		FoodType:     donation.FoodType,
		Quantity:     donation.Quantity,
		QuantityUnit: donation.QuantityUnit,
		Description:  donation.Description,
		CreatedAt:    donation.CreatedAt,
	}
}

func (s *donationService) SubmitDonation(ctx context.Context, req domain.SubmitDonationRequest) (*domain.Donation, error) {
	if req.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	donation := &entities.Donation{
		Name:         req.Name,
		Contact:      req.Contact,
		Location:     req.Location,
		FoodType:     req.FoodType,
		Quantity:     req.Quantity,
		QuantityUnit: req.QuantityUnit,
		Description:  req.Description,
	}

	if err := s.donationRepository.CreateDonation(ctx, donation); err != nil {
		return nil, err
	}

	return ToDonationResponse(donation), nil
}

func (s *donationService) GetDonations(ctx context.Context) ([]*domain.Donation, error) {
	donations, err := s.donationRepository.GetDonations(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Donation, 0, len(donations))
	for _, donation := range donations {
		result = append(result, ToDonationResponse(donation))
	}
	return result, nil
}

func (s *donationService) UpdateDonationQuantity(ctx context.Context, id string, req domain.UpdateDonationQuantityRequest) (*domain.Donation, error) {
	if req.Quantity < 0 {
		return nil, domain.ErrNegativeQuantity
	}

	rows, err := s.donationRepository.SetQuantity(ctx, id, req.Quantity)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, domain.ErrDonationNotFound
	}

	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToDonationResponse(donation), nil
}
