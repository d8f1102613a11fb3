package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/scon-hq/scon-backend-go/internal/handler/http/middleware"
	"github.com/scon-hq/scon-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	allowedOrigins []string,
	authHandler AuthHandler,
	storeHandler StoreHandler,
	employeeHandler EmployeeHandler,
	scheduleHandler ScheduleHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "scon-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", authHandler.Me)

			r.Route("/stores", func(r chi.Router) {
				r.Get("/", storeHandler.List)
				r.Post("/", storeHandler.Create)

				r.Route("/{storeID}", func(r chi.Router) {
					r.Get("/", storeHandler.Get)
					r.Put("/", storeHandler.Update)
					r.Delete("/", storeHandler.Delete)

					r.Route("/employees", func(r chi.Router) {
						r.Get("/", employeeHandler.List)
						r.Post("/", employeeHandler.Create)
						r.Get("/{employeeID}", employeeHandler.Get)
						r.Put("/{employeeID}", employeeHandler.Update)
						r.Delete("/{employeeID}", employeeHandler.Delete)
					})

					r.Route("/schedules", func(r chi.Router) {
						r.Get("/", scheduleHandler.GetMonth)
						r.Put("/week", scheduleHandler.SaveWeek)
						r.Post("/autofill", scheduleHandler.AutoFill)
						r.Post("/copy-pattern", scheduleHandler.CopyPattern)
						r.Post("/send", scheduleHandler.Send)
						r.Put("/shifts", scheduleHandler.SetShift)
						r.Delete("/shifts/{date}/{employeeID}", scheduleHandler.DeleteShift)
					})

					r.Get("/payrolls", payrollHandler.GetWeekly)
				})
			})
		})
	})
	return r
}
