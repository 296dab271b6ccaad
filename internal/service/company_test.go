package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/326-T/nft-service/internal/logger"
	"github.com/326-T/nft-service/internal/mocks"
	"github.com/326-T/nft-service/internal/model"
	"github.com/326-T/nft-service/internal/service"
)

func TestCompany_Register_Success(t *testing.T) {
	ctx := context.Background()
	store := &mocks.CompanyStore{}
	hasher := &mocks.PasswordHasher{}

	store.On("GetByEmail", mock.Anything, "hr@acme.test").Return(model.Company{}, model.ErrNotFound)
	hasher.On("Hash", "secret").Return("$digest$", nil)
	store.On("Create", mock.Anything, mock.MatchedBy(func(c model.Company) bool {
		return c.Name == "ACME" && c.PasswordDigest == "$digest$" && c.Version == 1
	})).Return(model.Company{ID: uuid.New(), Name: "ACME"}, nil)

	s := service.NewCompany(store, hasher, logger.New(0))

	saved, err := s.Register(ctx, service.RegisterCompanyParams{Name: "ACME", Email: "hr@acme.test", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "ACME", saved.Name)
	store.AssertExpectations(t)
}

func TestCompany_Register_EmailTaken(t *testing.T) {
	store := &mocks.CompanyStore{}
	store.On("GetByEmail", mock.Anything, "hr@acme.test").Return(model.Company{ID: uuid.New()}, nil)

	s := service.NewCompany(store, &mocks.PasswordHasher{}, logger.New(0))

	_, err := s.Register(context.Background(), service.RegisterCompanyParams{Email: "hr@acme.test", Password: "x"})
	require.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestCompany_Update_PreservesDigest(t *testing.T) {
	store := &mocks.CompanyStore{}
	id := uuid.New()

	store.On("GetByID", mock.Anything, id).Return(model.Company{ID: id, PasswordDigest: "$keep$", Version: 2}, nil)
	store.On("Update", mock.Anything, mock.MatchedBy(func(c model.Company) bool {
		return c.PasswordDigest == "$keep$" && c.Name == "ACME Corp" && c.Version == 2
	})).Return(model.Company{ID: id, Name: "ACME Corp", Version: 3}, nil)

	s := service.NewCompany(store, &mocks.PasswordHasher{}, logger.New(0))

	saved, err := s.Update(context.Background(), id, service.UpdateCompanyParams{Name: "ACME Corp"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), saved.Version)
}

func TestCompany_Login_WrongPassword(t *testing.T) {
	store := &mocks.CompanyStore{}
	hasher := &mocks.PasswordHasher{}

	store.On("GetByEmail", mock.Anything, "hr@acme.test").Return(model.Company{PasswordDigest: "$digest$"}, nil)
	hasher.On("Verify", "wrong", "$digest$").Return(false)

	s := service.NewCompany(store, hasher, logger.New(0))

	_, err := s.Login(context.Background(), "hr@acme.test", "wrong")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestCompany_Login_Success(t *testing.T) {
	store := &mocks.CompanyStore{}
	hasher := &mocks.PasswordHasher{}
	id := uuid.New()

	store.On("GetByEmail", mock.Anything, "hr@acme.test").Return(model.Company{ID: id, PasswordDigest: "$digest$"}, nil)
	hasher.On("Verify", "secret", "$digest$").Return(true)

	s := service.NewCompany(store, hasher, logger.New(0))

	got, err := s.Login(context.Background(), "hr@acme.test", "secret")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
}
