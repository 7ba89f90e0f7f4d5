package jwt

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/internal/utils"

	"github.com/golang-jwt/jwt/v4"
)

type (
	JWTService interface {
		GenerateTokenNGO(ngo domain.NGO) string
		ValidateTokenNGO(token string) (*jwt.Token, error)
		GetNGOByToken(token string) (*NGOClaims, error)
	}

	// NGOClaims carries the NGO's public fields so the presentation
	// layer can render the session without an extra lookup.
	NGOClaims struct {
		NGOID              string `json:"ngo_id"`
		Email              string `json:"email"`
		Name               string `json:"name"`
		City               string `json:"city"`
		RegistrationNumber string `json:"registration_number"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

// Session tokens expire after seven days.
const tokenLifetime = 7 * 24 * time.Hour

func getSecretKey() string {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return secret
	}
	utils.LoadConfig()
	return utils.GetConfig("JWT_SECRET")
}

func NewJWTService() JWTService {
	return &jwtService{
		secretKey: getSecretKey(),
		issuer:    "FOODBRIDGE",
	}
}

func (j *jwtService) GenerateTokenNGO(ngo domain.NGO) string {
	claims := NGOClaims{
		ngo.ID,
		ngo.Email,
		ngo.Name,
		ngo.City,
		ngo.RegistrationNumber,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tx, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		log.Println(err)
	}
	return tx
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateTokenNGO(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &NGOClaims{}, j.parseToken)
}

func (j *jwtService) GetNGOByToken(token string) (*NGOClaims, error) {
	t_Token, err := j.ValidateTokenNGO(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := t_Token.Claims.(*NGOClaims)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}
