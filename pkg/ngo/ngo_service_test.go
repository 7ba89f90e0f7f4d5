package ngo

import (
	"context"
	"os"
	"testing"

	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"
	"FoodBridge-Backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeNGORepository struct {
	byID    map[string]*entities.NGO
	byEmail map[string]*entities.NGO
}

func newFakeNGORepository() *fakeNGORepository {
	return &fakeNGORepository{
		byID:    make(map[string]*entities.NGO),
		byEmail: make(map[string]*entities.NGO),
	}
}

func (f *fakeNGORepository) CreateNGO(_ context.Context, ngo *entities.NGO) error {
	if ngo.ID == uuid.Nil {
		ngo.ID = uuid.New()
	}
	f.byID[ngo.ID.String()] = ngo
	f.byEmail[ngo.Email] = ngo
	return nil
}

func (f *fakeNGORepository) GetNGOByEmail(_ context.Context, email string) (*entities.NGO, error) {
	ngo, ok := f.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return ngo, nil
}

func (f *fakeNGORepository) GetNGOByID(_ context.Context, id string) (*entities.NGO, error) {
	ngo, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return ngo, nil
}

func (f *fakeNGORepository) GetUnverifiedNGOs(_ context.Context) ([]*entities.NGO, error) {
	var ngos []*entities.NGO
	for _, ngo := range f.byID {
		if !ngo.IsVerified {
			ngos = append(ngos, ngo)
		}
	}
	return ngos, nil
}

func (f *fakeNGORepository) MarkVerified(_ context.Context, id string) (int64, error) {
	ngo, ok := f.byID[id]
	if !ok {
		return 0, nil
	}
	ngo.IsVerified = true
	return 1, nil
}

type fakeMailer struct {
	sent []string
}

func (f *fakeMailer) Send(toEmail string, _ string, _ string) error {
	f.sent = append(f.sent, toEmail)
	return nil
}

func newTestService(t *testing.T) (NGOService, *fakeNGORepository, *fakeMailer) {
	t.Helper()
	os.Setenv("JWT_SECRET", "test-secret")
	repo := newFakeNGORepository()
	mailer := &fakeMailer{}
	return NewNGOService(repo, jwt.NewJWTService(), mailer), repo, mailer
}

func signupRequest() domain.NGOSignupRequest {
	return domain.NGOSignupRequest{
		Name:               "Edhi Foundation",
		Email:              "a@b.com",
		Phone:              "02132310066",
		City:               "Karachi",
		RegistrationNumber: "NGO-1951",
		Password:           "sufficiently-long",
	}
}

func TestSignup_CreatesUnverifiedNGO(t *testing.T) {
	svc, repo, _ := newTestService(t)

	created, err := svc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)
	assert.False(t, created.IsVerified)

	stored, err := repo.GetNGOByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	assert.False(t, stored.IsVerified)
	assert.NotEqual(t, "sufficiently-long", stored.Password, "password must be stored hashed")
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), signupRequest())
	require.ErrorIs(t, err, domain.ErrEmailExists)
}

func TestLogin_BeforeVerification(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), domain.NGOLoginRequest{
		Email:    "a@b.com",
		Password: "sufficiently-long",
	})
	require.ErrorIs(t, err, domain.ErrNGONotVerified)
}

func TestLogin_GenericCredentialFailure(t *testing.T) {
	svc, _, _ := newTestService(t)

	created, err := svc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)
	_, err = svc.Verify(context.Background(), created.ID)
	require.NoError(t, err)

	// Unknown email and wrong password must be indistinguishable.
	_, errUnknown := svc.Login(context.Background(), domain.NGOLoginRequest{
		Email:    "nobody@b.com",
		Password: "whatever",
	})
	_, errWrong := svc.Login(context.Background(), domain.NGOLoginRequest{
		Email:    "a@b.com",
		Password: "not-the-password",
	})
	require.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	require.ErrorIs(t, errWrong, domain.ErrInvalidCredentials)
}

func TestLogin_AfterVerification(t *testing.T) {
	svc, _, mailer := newTestService(t)

	created, err := svc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	_, err = svc.Verify(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"a@b.com"}, mailer.sent)

	resp, err := svc.Login(context.Background(), domain.NGOLoginRequest{
		Email:    "a@b.com",
		Password: "sufficiently-long",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "a@b.com", resp.NGO.Email)

	claims, err := jwt.NewJWTService().GetNGOByToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.NGOID)
	assert.Equal(t, "Edhi Foundation", claims.Name)
	assert.Equal(t, "Karachi", claims.City)
	assert.Equal(t, "NGO-1951", claims.RegistrationNumber)
}

func TestVerify_NotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Verify(context.Background(), uuid.New().String())
	require.ErrorIs(t, err, domain.ErrNGONotFound)
}

func TestGetPendingNGOs(t *testing.T) {
	svc, _, _ := newTestService(t)

	created, err := svc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	pending, err := svc.GetPendingNGOs(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)

	_, err = svc.Verify(context.Background(), created.ID)
	require.NoError(t, err)

	pending, err = svc.GetPendingNGOs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pending)
}
