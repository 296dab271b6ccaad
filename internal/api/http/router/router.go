// Package router assembles the fiber application: middleware chain,
// error handling and the versioned route groups.
package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/326-T/nft-service/internal/api/http/handler"
	"github.com/326-T/nft-service/internal/api/http/middleware"
	"github.com/326-T/nft-service/internal/logger"
	"github.com/326-T/nft-service/internal/model"
	"github.com/326-T/nft-service/internal/service"
)

type Router struct {
	applicantService *service.Applicant
	companyService   *service.Company
	resumeService    *service.Resume
	offerService     *service.Offer
	codec            model.TokenCodec
	logger           *logger.Logger
}

func New(
	applicantService *service.Applicant,
	companyService *service.Company,
	resumeService *service.Resume,
	offerService *service.Offer,
	codec model.TokenCodec,
	logger *logger.Logger,
) *Router {
	return &Router{
		applicantService: applicantService,
		companyService:   companyService,
		resumeService:    resumeService,
		offerService:     offerService,
		codec:            codec,
		logger:           logger,
	}
}

// Register builds the fiber app with the full middleware chain and all
// route groups.
func (r *Router) Register() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          handler.NewErrorHandler(r.logger),
		DisableStartupMessage: true,
	})

	app.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowOriginsFunc: func(origin string) bool { return true },
	}))
	app.Use(middleware.NewLogging(r.logger).Handle)
	app.Use(middleware.NewAuthenticate(r.codec, r.applicantService, r.companyService, r.logger).Handle)
	app.Use(middleware.NewAuthorize(r.logger).Handle)

	r.registerApplicantRoutes(app)
	r.registerCompanyRoutes(app)
	r.registerResumeRoutes(app)
	r.registerOfferRoutes(app)

	return app
}

func (r *Router) registerApplicantRoutes(app *fiber.App) {
	h := handler.NewApplicant(r.applicantService, r.codec, r.logger)

	g := app.Group("/api/v1/applicants")
	g.Get("/", h.List)
	g.Get("/current", h.Current)
	g.Get("/:id", h.Get)
	g.Post("/", h.Register)
	g.Post("/login", h.Login)
	g.Patch("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

func (r *Router) registerCompanyRoutes(app *fiber.App) {
	h := handler.NewCompany(r.companyService, r.codec, r.logger)

	g := app.Group("/api/v1/companies")
	g.Get("/", h.List)
	g.Get("/current", h.Current)
	g.Get("/:id", h.Get)
	g.Post("/", h.Register)
	g.Post("/login", h.Login)
	g.Patch("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

func (r *Router) registerResumeRoutes(app *fiber.App) {
	h := handler.NewResume(r.resumeService, r.logger)

	// Literal segments are registered before the catch-all :id routes.
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
}

func (r *Router) registerOfferRoutes(app *fiber.App) {
	h := handler.NewOffer(r.offerService, r.logger)

	g := app.Group("/api/v1/offers")
	g.Get("/", h.List)
	g.Get("/resume/:id", h.ListByResume)
	g.Get("/:id", h.Get)
	g.Post("/", h.Create)
	g.Patch("/accepted/:id", h.Accept)
	g.Patch("/rejected/:id", h.Reject)
	g.Patch("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
