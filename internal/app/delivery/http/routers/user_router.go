package routers

import (
	"hospital-service/internal/app/services/users"
	"hospital-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

// attachUserRoutes mounts both login surfaces: the hospital core /login
// and the user-management /register + /auth/login pair.
func attachUserRoutes(router chi.Router, userController *users.UserController) {
	router.Post(constvars.EndpointLogin, userController.Login)
	router.Post(constvars.EndpointUsersRegister, userController.Register)
	router.Post(constvars.EndpointUsersLogin, userController.Login)
}
