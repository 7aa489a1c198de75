package wire

import (
	"filmestop/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireUser configures user management routes
func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/", userHandler.CreateUser)             // POST /users
		r.Get("/", userHandler.GetUsers)                // GET /users
		r.Get("/{user_id}", userHandler.GetUserByID)    // GET /users/{user_id}
		r.Put("/{user_id}", userHandler.UpdateUser)     // PUT /users/{user_id}
		r.Delete("/{user_id}", userHandler.DeleteUser)  // DELETE /users/{user_id}
	})
}
