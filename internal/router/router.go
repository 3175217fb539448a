// Package router wires repositories, services and handlers into the HTTP routes.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/sbilibin2017/gw-lesson-planner/internal/handlers"
	"github.com/sbilibin2017/gw-lesson-planner/internal/middlewares"
	"github.com/sbilibin2017/gw-lesson-planner/internal/repositories"
	"github.com/sbilibin2017/gw-lesson-planner/internal/services"
	"github.com/sbilibin2017/gw-lesson-planner/internal/session"
	"github.com/sbilibin2017/gw-lesson-planner/internal/views"
)

// Setup builds the application router. Every route except register, login
// and logout sits behind the session gate.
func Setup(db *sqlx.DB, sessions *session.Manager, renderer *views.Renderer, log *zap.SugaredLogger) http.Handler {
	// Initialize repositories
	getConn := middlewares.GetConnFromContext
	userReadRepo := repositories.NewUserReadRepository(db, getConn)
	userWriteRepo := repositories.NewUserWriteRepository(db, getConn)
	courseReadRepo := repositories.NewCourseReadRepository(db, getConn)
	courseWriteRepo := repositories.NewCourseWriteRepository(db, getConn)
	lessonReadRepo := repositories.NewLessonReadRepository(db, getConn)
	lessonWriteRepo := repositories.NewLessonWriteRepository(db, getConn)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo)
	courseService := services.NewCourseService(courseReadRepo, courseWriteRepo, lessonReadRepo, lessonWriteRepo)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService, sessions, renderer)
	loginHandler := handlers.NewLoginHandler(authService, sessions, renderer)
	logoutHandler := handlers.NewLogoutHandler(sessions)
	dashboardHandler := handlers.NewDashboardHandler(courseService, sessions, renderer)
	createCourseHandler := handlers.NewCreateCourseHandler(courseService, sessions, renderer)
	courseHandler := handlers.NewCourseHandler(courseService, sessions, renderer)
	addLessonHandler := handlers.NewAddLessonHandler(courseService, sessions, renderer)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))
	r.Use(middlewares.NoCache)
	r.Use(middlewares.ConnMiddleware(db))

	// Public routes
	r.Get("/register", registerHandler)
	r.Post("/register", registerHandler)
	r.Get("/login", loginHandler)
	r.Post("/login", loginHandler)
	r.Get("/logout", logoutHandler)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.RequireSession(sessions))
		r.Get("/", dashboardHandler)
		r.Get("/create_class", createCourseHandler)
		r.Post("/create_class", createCourseHandler)
		r.Get("/course/{"+handlers.CourseIDParam+"}", courseHandler)
		r.Get("/course/{"+handlers.CourseIDParam+"}/add_lesson", addLessonHandler)
		r.Post("/course/{"+handlers.CourseIDParam+"}/add_lesson", addLessonHandler)
	})

	return r
}
