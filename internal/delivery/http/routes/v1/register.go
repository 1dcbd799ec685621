package v1

import (
	"log"
	"time"

	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/user"
	"jobboard/internal/pkg/jwt"
	"jobboard/internal/repository"
	"jobboard/internal/upload"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Deps carries the infrastructure the v1 surface is built on.
type Deps struct {
	JWT   jwt.Service
	Users user.Repository

	Companies    repository.CompanyRepository
	Jobs         repository.JobRepository
	Applications repository.ApplicationRepository

	Cache  usecase.SearchCache
	Store  *upload.Store
	Logger *log.Logger

	AccessTokenTTL time.Duration
}

func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	authMw := middleware.NewAuthMiddleware(d.JWT)

	authUC := usecase.NewAuthUsecase(d.Users, d.JWT)
	userUC := usecase.NewUserUsecase(d.Users, d.Store, d.Logger)
	companyUC := usecase.NewCompanyUsecase(d.Companies, d.Store, d.Logger)
	jobUC := usecase.NewJobUsecase(d.Jobs, d.Companies, d.Applications, searchInvalidator(d.Cache), d.Logger)
	searchUC := usecase.NewJobSearchUsecase(d.Jobs, d.Cache, d.Logger)
	recommendUC := usecase.NewRecommendationUsecase(d.Users, d.Jobs, d.Applications)
	applicationUC := usecase.NewApplicationUsecase(d.Applications, d.Jobs)

	authHandler := handler.NewAuthHandler(authUC, d.Store, d.AccessTokenTTL)
	userHandler := handler.NewUserHandler(userUC, d.Store)
	companyHandler := handler.NewCompanyHandler(companyUC, d.Store)
	jobHandler := handler.NewJobHandler(jobUC, searchUC)
	recommendHandler := handler.NewRecommendationHandler(recommendUC)
	applicationHandler := handler.NewApplicationHandler(applicationUC)
	fileHandler := handler.NewFileHandler(d.Store)

	authed := authMw.Middleware()
	recruiterOnly := authMw.RequireRole(user.RoleRecruiter)

	users := r.Group("/user")
	authHandler.RegisterRoutes(users)
	userHandler.RegisterRoutes(users.Group("", authed))
	fileHandler.RegisterRoutes(users.Group("/files", authed))

	jobs := r.Group("/job", authed)
	jobs.Post("/post", jobHandler.Post, recruiterOnly)
	jobs.Get("/get", jobHandler.GetAll)
	jobs.Get("/search", jobHandler.Search)
	jobs.Get("/getadminjobs", jobHandler.GetAdminJobs, recruiterOnly)
	jobs.Get("/get/:id", jobHandler.GetByID)
	jobs.Get("/recommendations", recommendHandler.GetRecommendations)

	companyHandler.RegisterRoutes(r.Group("/company", authed, recruiterOnly))
	applicationHandler.RegisterRoutes(r.Group("/application", authed))
}

// searchInvalidator narrows the cache to the invalidation side used by job
// posting, tolerating a nil cache in tests.
func searchInvalidator(c usecase.SearchCache) usecase.SearchInvalidator {
	if inv, ok := c.(usecase.SearchInvalidator); ok {
		return inv
	}
	return nil
}
