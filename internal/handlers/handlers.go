package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/vpoletaev/giftwell/docs"
	authhandlers "github.com/vpoletaev/giftwell/internal/handlers/auth"
	contributionhandlers "github.com/vpoletaev/giftwell/internal/handlers/contributions"
	userhandlers "github.com/vpoletaev/giftwell/internal/handlers/users"
	wishhandlers "github.com/vpoletaev/giftwell/internal/handlers/wishes"
	"github.com/vpoletaev/giftwell/internal/service"
	"github.com/vpoletaev/giftwell/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	Me(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
}

type WishHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetLast(w http.ResponseWriter, r *http.Request)
	GetTop(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Copy(w http.ResponseWriter, r *http.Request)
}

type ContributionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler         AuthHandler
	UserHandler         UserHandler
	WishHandler         WishHandler
	ContributionHandler ContributionHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:         authhandlers.New(s.AuthService),
		UserHandler:         userhandlers.New(s.UserService),
		WishHandler:         wishhandlers.New(s.WishService),
		ContributionHandler: contributionhandlers.New(s.ContributionService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.AuthHandler.Register)
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/users", func(r chi.Router) {
				r.Get("/me", h.UserHandler.Me)
				r.Get("/{id}", h.UserHandler.GetByID)
			})
			r.Route("/wishes", func(r chi.Router) {
				r.Post("/", h.WishHandler.Create)
				r.Get("/last", h.WishHandler.GetLast)
				r.Get("/top", h.WishHandler.GetTop)
				r.Get("/{id}", h.WishHandler.Get)
				r.Patch("/{id}", h.WishHandler.Update)
				r.Delete("/{id}", h.WishHandler.Delete)
				r.Post("/{id}/copy", h.WishHandler.Copy)
			})
			r.Route("/contributions", func(r chi.Router) {
				r.Post("/", h.ContributionHandler.Create)
				r.Get("/", h.ContributionHandler.List)
				r.Get("/{id}", h.ContributionHandler.Get)
			})
		})
	})

	return r
}
