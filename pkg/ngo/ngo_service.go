package ngo

import (
	"context"
	"errors"
	"fmt"
	"log"

	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"
	"FoodBridge-Backend/internal/utils/mailing"
	"FoodBridge-Backend/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	NGOService interface {
		Signup(ctx context.Context, req domain.NGOSignupRequest) (*domain.NGO, error)
		Login(ctx context.Context, req domain.NGOLoginRequest) (*domain.NGOLoginResponse, error)
		Me(ctx context.Context, ngoID string) (*domain.NGO, error)
		GetPendingNGOs(ctx context.Context) ([]*domain.NGO, error)
		Verify(ctx context.Context, ngoID string) (*domain.NGO, error)
	}

	ngoService struct {
		ngoRepository NGORepository
		jwtService    jwt.JWTService
		mailer        mailing.Mailer
	}
)

func NewNGOService(ngoRepository NGORepository, jwtService jwt.JWTService, mailer mailing.Mailer) NGOService {
	return &ngoService{
		ngoRepository: ngoRepository,
		jwtService:    jwtService,
		mailer:        mailer,
	}
}

func toNGOResponse(ngo *entities.NGO) *domain.NGO {
	return &domain.NGO{
		ID:                 ngo.ID.String(),
		Name:               ngo.Name,
		Email:              ngo.Email,
		Phone:              ngo.Phone,
		City:               ngo.City,
		RegistrationNumber: ngo.RegistrationNumber,
		IsVerified:         ngo.IsVerified,
	}
}

func (s *ngoService) Signup(ctx context.Context, req domain.NGOSignupRequest) (*domain.NGO, error) {
	if _, err := s.ngoRepository.GetNGOByEmail(ctx, req.Email); err == nil {
		return nil, domain.ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	ngo := &entities.NGO{
		Name:               req.Name,
		Email:              req.Email,
		Phone:              req.Phone,
		City:               req.City,
		RegistrationNumber: req.RegistrationNumber,
		Password:           string(hashed),
		IsVerified:         false,
	}

	if err := s.ngoRepository.CreateNGO(ctx, ngo); err != nil {
		return nil, err
	}

	return toNGOResponse(ngo), nil
}

func (s *ngoService) Login(ctx context.Context, req domain.NGOLoginRequest) (*domain.NGOLoginResponse, error) {
	ngo, err := s.ngoRepository.GetNGOByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !ngo.IsVerified {
		return nil, domain.ErrNGONotVerified
	}

	if err := bcrypt.CompareHashAndPassword([]byte(ngo.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	public := toNGOResponse(ngo)
	token := s.jwtService.GenerateTokenNGO(*public)

	return &domain.NGOLoginResponse{
		Token: token,
		NGO:   *public,
	}, nil
}

func (s *ngoService) Me(ctx context.Context, ngoID string) (*domain.NGO, error) {
	ngo, err := s.ngoRepository.GetNGOByID(ctx, ngoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNGONotFound
		}
		return nil, err
	}
	return toNGOResponse(ngo), nil
}

func (s *ngoService) GetPendingNGOs(ctx context.Context) ([]*domain.NGO, error) {
	ngos, err := s.ngoRepository.GetUnverifiedNGOs(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.NGO, 0, len(ngos))
	for _, ngo := range ngos {
		result = append(result, toNGOResponse(ngo))
	}
	return result, nil
}

func (s *ngoService) Verify(ctx context.Context, ngoID string) (*domain.NGO, error) {
	rows, err := s.ngoRepository.MarkVerified(ctx, ngoID)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, domain.ErrNGONotFound
	}

	ngo, err := s.ngoRepository.GetNGOByID(ctx, ngoID)
	if err != nil {
		return nil, err
	}

	// Approval notification is best effort; a mail failure must not
	// roll back the verification.
	if s.mailer != nil {
		body := fmt.Sprintf(
			"<p>Dear %s,</p><p>Your NGO account has been approved. You can now log in and start allocating donations.</p>",
			ngo.Name,
		)
		if err := s.mailer.Send(ngo.Email, "Your NGO account has been approved", body); err != nil {
			log.Printf("failed to send approval email to %s: %v", ngo.Email, err)
		}
	}

	return toNGOResponse(ngo), nil
}
