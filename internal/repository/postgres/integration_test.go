//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/326-T/nft-service/internal/model"
	repo "github.com/326-T/nft-service/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "nft_service_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/nft_service_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func newApplicant(email string) model.Applicant {
	now := time.Now()
	return model.Applicant{
		ID:             uuid.New(),
		FirstName:      "Taro",
		LastName:       "Yamada",
		Email:          email,
		Phone:          "090-0000-0000",
		Address:        "Tokyo",
		PasswordDigest: "$2a$10$digest",
		CreatedAt:      now,
		UpdatedAt:      now,
		Version:        1,
	}
}

func newCompany(email string) model.Company {
	now := time.Now()
	return model.Company{
		ID:             uuid.New(),
		Name:           "Acme",
		Email:          email,
		Phone:          "03-0000-0000",
		Address:        "Osaka",
		PasswordDigest: "$2a$10$digest",
		CreatedAt:      now,
		UpdatedAt:      now,
		Version:        1,
	}
}

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	applicants := repo.NewApplicantRepository(conn)
	companies := repo.NewCompanyRepository(conn)
	resumes := repo.NewResumeRepository(conn)
	offers := repo.NewOfferRepository(conn)

	applicant, err := applicants.Create(ctx, newApplicant("applicant@example.com"))
	require.NoError(t, err)
	company, err := companies.Create(ctx, newCompany("company@example.com"))
	require.NoError(t, err)

	t.Run("applicant_lookup", func(t *testing.T) {
		byID, err := applicants.GetByID(ctx, applicant.ID)
		require.NoError(t, err)
		assert.Equal(t, applicant.Email, byID.Email)

		byEmail, err := applicants.GetByEmail(ctx, applicant.Email)
		require.NoError(t, err)
		assert.Equal(t, applicant.ID, byEmail.ID)

		_, err = applicants.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("applicant_version_check", func(t *testing.T) {
		fresh, err := applicants.GetByID(ctx, applicant.ID)
		require.NoError(t, err)

		fresh.Phone = "090-1111-1111"
		fresh.UpdatedAt = time.Now()
		updated, err := applicants.Update(ctx, fresh)
		require.NoError(t, err)
		assert.Equal(t, fresh.Version+1, updated.Version)

		// Same (now stale) version loses the check.
		_, err = applicants.Update(ctx, fresh)
		assert.ErrorIs(t, err, model.ErrVersionConflict)
	})

	var resume model.Resume
	t.Run("resume_crud", func(t *testing.T) {
		now := time.Now()
		created, err := resumes.Create(ctx, model.Resume{
			ID:          uuid.New(),
			ApplicantID: applicant.ID,
			Education:   "PhD",
			Skills:      "Go, SQL",
			MintStatus:  model.MintStatusPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		require.NoError(t, err)
		assert.Equal(t, model.MintStatusPending, created.MintStatus)
		assert.Nil(t, created.MinimumPrice)

		price := float32(500)
		created.MintStatus = model.MintStatusPublished
		created.MinimumPrice = &price
		created.UpdatedAt = time.Now()
		updated, err := resumes.Update(ctx, created)
		require.NoError(t, err)
		assert.Equal(t, model.MintStatusPublished, updated.MintStatus)
		require.NotNil(t, updated.MinimumPrice)
		assert.Equal(t, price, *updated.MinimumPrice)

		published, err := resumes.GetByMintStatus(ctx, model.MintStatusPublished)
		require.NoError(t, err)
		assert.Len(t, published, 1)

		byApplicant, err := resumes.GetByApplicantID(ctx, applicant.ID)
		require.NoError(t, err)
		assert.Len(t, byApplicant, 1)

		resume = updated
	})

	t.Run("offer_crud_and_view", func(t *testing.T) {
		now := time.Now()
		offer, err := offers.Create(ctx, model.Offer{
			ID:        uuid.New(),
			ResumeID:  resume.ID,
			CompanyID: company.ID,
			Price:     1000,
			Message:   "join us",
			Status:    model.OfferStatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		})
		require.NoError(t, err)
		assert.Equal(t, model.OfferStatusPending, offer.Status)

		offer.Status = model.OfferStatusAccepted
		offer.UpdatedAt = time.Now()
		updated, err := offers.Update(ctx, offer)
		require.NoError(t, err)
		assert.Equal(t, model.OfferStatusAccepted, updated.Status)

		details, err := offers.GetDetailsByResumeID(ctx, resume.ID)
		require.NoError(t, err)
		require.Len(t, details, 1)
		assert.Equal(t, company.Name, details[0].CompanyName)
		assert.Equal(t, model.OfferStatusAccepted, details[0].Status)

		require.NoError(t, offers.Delete(ctx, offer.ID))
		_, err = offers.GetByID(ctx, offer.ID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("resume_delete", func(t *testing.T) {
		require.NoError(t, resumes.Delete(ctx, resume.ID))
		_, err := resumes.GetByID(ctx, resume.ID)
		assert.ErrorIs(t, err, model.ErrNotFound)

		// Deleting a missing row is a no-op.
		assert.NoError(t, resumes.Delete(ctx, resume.ID))
	})
}
