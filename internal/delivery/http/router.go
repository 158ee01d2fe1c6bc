package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"explorewithme/internal/delivery/http/controllers"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	User        *controllers.UserController
	Category    *controllers.CategoryController
	Event       *controllers.EventController
	Request     *controllers.RequestController
	Compilation *controllers.CompilationController
	Comment     *controllers.CommentController
	Auth        *controllers.AuthController
}

// NewRouter initializes the HTTP router with all application routes.
// adminGuard wraps every /admin route except the token endpoint; nil leaves them open.
func NewRouter(c Controllers, adminGuard func(http.Handler) http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	admin := func(pattern string, h http.HandlerFunc) {
		if adminGuard == nil {
			mux.Handle(pattern, h)
			return
		}
		mux.Handle(pattern, adminGuard(h))
	}

	// Admin API
	mux.HandleFunc("POST /admin/auth/token", c.Auth.IssueToken)

	admin("POST /admin/users", c.User.Create)
	admin("GET /admin/users", c.User.List)
	admin("DELETE /admin/users/{userId}", c.User.Delete)

	admin("POST /admin/categories", c.Category.Create)
	admin("PATCH /admin/categories/{catId}", c.Category.Update)
	admin("DELETE /admin/categories/{catId}", c.Category.Delete)

	admin("GET /admin/events", c.Event.SearchAdmin)
	admin("PATCH /admin/events/{eventId}", c.Event.UpdateByAdmin)

	admin("POST /admin/compilations", c.Compilation.Create)
	admin("PATCH /admin/compilations/{compId}", c.Compilation.Update)
	admin("DELETE /admin/compilations/{compId}", c.Compilation.Delete)

	admin("DELETE /admin/comments/{commentId}", c.Comment.DeleteByAdmin)

	// Private API
	mux.HandleFunc("POST /users/{userId}/events", c.Event.Create)
	mux.HandleFunc("GET /users/{userId}/events", c.Event.ListByInitiator)
	mux.HandleFunc("GET /users/{userId}/events/{eventId}", c.Event.GetByInitiator)
	mux.HandleFunc("PATCH /users/{userId}/events/{eventId}", c.Event.UpdateByInitiator)
	mux.HandleFunc("GET /users/{userId}/events/{eventId}/requests", c.Request.ListForEvent)
	mux.HandleFunc("PATCH /users/{userId}/events/{eventId}/requests", c.Request.UpdateStatuses)

	mux.HandleFunc("POST /users/{userId}/requests", c.Request.Create)
	mux.HandleFunc("GET /users/{userId}/requests", c.Request.ListByRequester)
	mux.HandleFunc("PATCH /users/{userId}/requests/{requestId}/cancel", c.Request.Cancel)

	mux.HandleFunc("POST /users/{userId}/events/{eventId}/comments", c.Comment.Add)
	mux.HandleFunc("GET /users/{userId}/comments", c.Comment.ListByAuthor)
	mux.HandleFunc("PATCH /users/{userId}/comments/{commentId}", c.Comment.Update)
	mux.HandleFunc("DELETE /users/{userId}/comments/{commentId}", c.Comment.Delete)

	// Public API
	mux.HandleFunc("GET /categories", c.Category.List)
	mux.HandleFunc("GET /categories/{catId}", c.Category.Get)
	mux.HandleFunc("GET /events", c.Event.SearchPublic)
	mux.HandleFunc("GET /events/{eventId}", c.Event.GetPublic)
	mux.HandleFunc("GET /events/{eventId}/comments", c.Comment.ListByEvent)
	mux.HandleFunc("GET /compilations", c.Compilation.List)
	mux.HandleFunc("GET /compilations/{compId}", c.Compilation.Get)
	mux.HandleFunc("GET /comments/{commentId}", c.Comment.Get)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
