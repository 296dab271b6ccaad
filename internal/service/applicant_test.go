package service_test

import (
	"context"
	"errors"
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

func TestApplicant_Register_Success(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ApplicantStore{}
	hasher := &mocks.PasswordHasher{}

	store.On("GetByEmail", mock.Anything, "jon@example.com").Return(model.Applicant{}, model.ErrNotFound)
	hasher.On("Hash", "pa55w0rd").Return("$digest$", nil)
	store.On("Create", mock.Anything, mock.MatchedBy(func(a model.Applicant) bool {
		return a.Email == "jon@example.com" && a.PasswordDigest == "$digest$" && a.Version == 1
	})).Return(model.Applicant{ID: uuid.New(), Email: "jon@example.com"}, nil)

	s := service.NewApplicant(store, hasher, logger.New(0))

	saved, err := s.Register(ctx, service.RegisterApplicantParams{
		FirstName: "Jon",
		LastName:  "Snow",
		Email:     "jon@example.com",
		Password:  "pa55w0rd",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, saved.ID)
	store.AssertExpectations(t)
}

func TestApplicant_Register_EmailTaken(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ApplicantStore{}
	hasher := &mocks.PasswordHasher{}

	store.On("GetByEmail", mock.Anything, "jon@example.com").Return(model.Applicant{ID: uuid.New()}, nil)

	s := service.NewApplicant(store, hasher, logger.New(0))

	_, err := s.Register(ctx, service.RegisterApplicantParams{Email: "jon@example.com", Password: "x"})
	require.ErrorIs(t, err, model.ErrEmailTaken)
	hasher.AssertNotCalled(t, "Hash", mock.Anything)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestApplicant_Update_PreservesDigest(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ApplicantStore{}
	hasher := &mocks.PasswordHasher{}
	id := uuid.New()

	old := model.Applicant{ID: id, Email: "old@example.com", PasswordDigest: "$keep$", Version: 3}
	store.On("GetByID", mock.Anything, id).Return(old, nil)
	store.On("Update", mock.Anything, mock.MatchedBy(func(a model.Applicant) bool {
		return a.ID == id && a.Email == "new@example.com" && a.PasswordDigest == "$keep$" && a.Version == 3
	})).Return(model.Applicant{ID: id, Email: "new@example.com", Version: 4}, nil)

	s := service.NewApplicant(store, hasher, logger.New(0))

	saved, err := s.Update(ctx, id, service.UpdateApplicantParams{Email: "new@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", saved.Email)
	store.AssertExpectations(t)
}

func TestApplicant_Update_VersionConflict(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ApplicantStore{}
	id := uuid.New()

	store.On("GetByID", mock.Anything, id).Return(model.Applicant{ID: id, Version: 1}, nil)
	store.On("Update", mock.Anything, mock.Anything).Return(model.Applicant{}, model.ErrVersionConflict)

	s := service.NewApplicant(store, &mocks.PasswordHasher{}, logger.New(0))

	_, err := s.Update(ctx, id, service.UpdateApplicantParams{})
	require.ErrorIs(t, err, model.ErrVersionConflict)
}

func TestApplicant_Login(t *testing.T) {
	id := uuid.New()
	stored := model.Applicant{ID: id, Email: "jon@example.com", PasswordDigest: "$digest$"}

	tests := []struct {
		name      string
		email     string
		password  string
		storedErr error
		verifyOK  bool
		wantErr   error
	}{
		{
			name:     "success",
			email:    "jon@example.com",
			password: "pa55w0rd",
			verifyOK: true,
		},
		{
			name:      "unknown email",
			email:     "nobody@example.com",
			password:  "pa55w0rd",
			storedErr: model.ErrNotFound,
			wantErr:   model.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "jon@example.com",
			password: "wrong",
			verifyOK: false,
			wantErr:  model.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mocks.ApplicantStore{}
			hasher := &mocks.PasswordHasher{}

			if tt.storedErr != nil {
				store.On("GetByEmail", mock.Anything, tt.email).Return(model.Applicant{}, tt.storedErr)
			} else {
				store.On("GetByEmail", mock.Anything, tt.email).Return(stored, nil)
				hasher.On("Verify", tt.password, "$digest$").Return(tt.verifyOK)
			}

			s := service.NewApplicant(store, hasher, logger.New(0))

			got, err := s.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, got.ID)
		})
	}
}

func TestApplicant_Delete_StoreError(t *testing.T) {
	store := &mocks.ApplicantStore{}
	id := uuid.New()
	boom := errors.New("boom")
	store.On("Delete", mock.Anything, id).Return(boom)

	s := service.NewApplicant(store, &mocks.PasswordHasher{}, logger.New(0))

	err := s.Delete(context.Background(), id)
	require.ErrorIs(t, err, boom)
}
