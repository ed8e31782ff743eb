package router

import (
	userapp "github.com/crediya/auth-service/internal/application"
	"github.com/crediya/auth-service/internal/container"
	repouser "github.com/crediya/auth-service/internal/domain/repository"
	pginfra "github.com/crediya/auth-service/internal/infrastructure/postgres"
	handlers "github.com/crediya/auth-service/internal/interface/http"
	"github.com/crediya/auth-service/internal/router/modules"
)

type UserModuleDeps struct {
	Repo    repouser.UserRepository
	Service *userapp.Service
	Handler *handlers.UserHandler
}

func buildUserDeps() UserModuleDeps {
	repo := pginfra.NewUserRepository(container.GetPGPool())

	service := userapp.NewService(
		repo,
		container.GetRabbitPub(),
		container.GetLogger(),
	)

	handler := handlers.NewUserHandler(service, container.GetLogger())

	return UserModuleDeps{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup.
func InitModules(r *Registry) {
	userDeps := buildUserDeps()
	r.Add(modules.NewUserModule(userDeps.Handler))
}
