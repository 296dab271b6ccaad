package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/326-T/nft-service/internal/api/http/reqctx"
	"github.com/326-T/nft-service/internal/mocks"
	"github.com/326-T/nft-service/internal/model"
	"github.com/326-T/nft-service/internal/service"
	"github.com/326-T/nft-service/internal/testutil"
)

func newResumeApp(svc *mocks.ResumeService, identities reqctx.Identities) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: NewErrorHandler(testutil.MakeNoopLogger())})
	app.Use(func(c *fiber.Ctx) error {
		reqctx.Set(c, identities)
		return c.Next()
	})

	h := NewResume(svc, testutil.MakeNoopLogger())
	g := app.Group("/api/v1/resumes")
	g.Get("/", h.List)
	g.Get("/applicant", h.ListOwn)
	g.Get("/mint-status/:code", h.ListByMintStatus)
	g.Get("/:id/picture", h.Picture)
	g.Get("/:id", h.Get)
	g.Post("/", h.Create)
	g.Patch("/:id/mint", h.Mint)
	g.Patch("/:id/expire", h.Expire)
	g.Patch("/:id", h.Update)
	g.Delete("/:id", h.Delete)
	g.Put("/:id/picture", h.UploadPicture)
	return app
}

func applicantIdentity() reqctx.Identities {
	return reqctx.Identities{Applicant: &model.Applicant{ID: uuid.New(), Email: "jon@example.com"}}
}

func TestResumeHandler_Create(t *testing.T) {
	svc := &mocks.ResumeService{}
	identities := applicantIdentity()

	svc.On("Create", mock.Anything, identities.Applicant.ID, service.ResumeContentParams{Education: "BSc"}).
		Return(model.Resume{ID: uuid.New(), ApplicantID: identities.Applicant.ID}, nil)

	app := newResumeApp(svc, identities)

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/resumes/", strings.NewReader(`{"education":"BSc"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	svc.AssertExpectations(t)
}

func TestResumeHandler_Create_NoIdentity(t *testing.T) {
	app := newResumeApp(&mocks.ResumeService{}, reqctx.Identities{})

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/resumes/", strings.NewReader(`{}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestResumeHandler_ListOwn(t *testing.T) {
	svc := &mocks.ResumeService{}
	identities := applicantIdentity()

	svc.On("FindByApplicant", mock.Anything, identities.Applicant.ID).
		Return([]model.Resume{{ID: uuid.New(), ApplicantID: identities.Applicant.ID}}, nil)

	app := newResumeApp(svc, identities)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/resumes/applicant", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body []resumeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, identities.Applicant.ID, body[0].ApplicantID)
}

func TestResumeHandler_ListByMintStatus(t *testing.T) {
	svc := &mocks.ResumeService{}

	svc.On("FindByMintStatus", mock.Anything, model.MintStatusPublished).
		Return([]model.Resume{{ID: uuid.New(), MintStatus: model.MintStatusPublished}}, nil)

	app := newResumeApp(svc, applicantIdentity())

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/resumes/mint-status/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body []resumeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "published", body[0].MintStatus)
}

func TestResumeHandler_ListByMintStatus_UnknownCodeDefaultsToPending(t *testing.T) {
	svc := &mocks.ResumeService{}
	svc.On("FindByMintStatus", mock.Anything, model.MintStatusPending).Return([]model.Resume{}, nil)

	app := newResumeApp(svc, applicantIdentity())

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/resumes/mint-status/42", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	svc.AssertExpectations(t)
}

func TestResumeHandler_Mint(t *testing.T) {
	svc := &mocks.ResumeService{}
	id := uuid.New()
	price := float32(900)

	svc.On("Mint", mock.Anything, id, float32(900)).
		Return(model.Resume{ID: id, MintStatus: model.MintStatusPublished, MinimumPrice: &price}, nil)

	app := newResumeApp(svc, applicantIdentity())

	req := httptest.NewRequest(fiber.MethodPatch, "/api/v1/resumes/"+id.String()+"/mint", strings.NewReader(`{"minimumPrice":900}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body resumeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "published", body.MintStatus)
	require.NotNil(t, body.MinimumPrice)
	assert.Equal(t, float32(900), *body.MinimumPrice)
}

func TestResumeHandler_Expire_ReportsRejections(t *testing.T) {
	svc := &mocks.ResumeService{}
	id := uuid.New()
	offerID := uuid.New()

	svc.On("Expire", mock.Anything, id).Return(
		model.Resume{ID: id, MintStatus: model.MintStatusExpired},
		[]model.OfferOutcome{{OfferID: offerID}},
		nil,
	)

	app := newResumeApp(svc, applicantIdentity())

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPatch, "/api/v1/resumes/"+id.String()+"/expire", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Resume         resumeResponse     `json:"resume"`
		RejectedOffers []rejectionOutcome `json:"rejectedOffers"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "expired", body.Resume.MintStatus)
	require.Len(t, body.RejectedOffers, 1)
	assert.Equal(t, offerID, body.RejectedOffers[0].OfferID)
	assert.Empty(t, body.RejectedOffers[0].Error)
}

func TestResumeHandler_Get_NotFound(t *testing.T) {
	svc := &mocks.ResumeService{}
	id := uuid.New()
	svc.On("FindByID", mock.Anything, id).Return(model.Resume{}, model.ErrNotFound)

	app := newResumeApp(svc, applicantIdentity())

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/resumes/"+id.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestResumeHandler_Get_BadID(t *testing.T) {
	app := newResumeApp(&mocks.ResumeService{}, applicantIdentity())

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/resumes/not-a-uuid", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestResumeHandler_Picture(t *testing.T) {
	svc := &mocks.ResumeService{}
	id := uuid.New()
	svc.On("PictureStream", mock.Anything, id).Return(io.NopCloser(strings.NewReader("jpegdata")), nil)

	app := newResumeApp(svc, applicantIdentity())

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/resumes/"+id.String()+"/picture", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "jpegdata", string(data))
}

func TestResumeHandler_UploadPicture_EmptyBody(t *testing.T) {
	app := newResumeApp(&mocks.ResumeService{}, applicantIdentity())

	req := httptest.NewRequest(fiber.MethodPut, "/api/v1/resumes/"+uuid.NewString()+"/picture", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
