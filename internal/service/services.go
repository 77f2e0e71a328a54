package service

import (
	"time"

	"github.com/dcastro/clientadmin/internal/config"
	"github.com/dcastro/clientadmin/internal/password"
	"github.com/dcastro/clientadmin/internal/repository"
	"github.com/dcastro/clientadmin/internal/token"
)

type Services struct {
	Auth    *AuthService
	User    *UserService
	Role    *RoleService
	Client  *ClientService
	Order   *OrderService
	Comment *CommentService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	hasher := password.NewHasher()
	issuer := token.NewIssuer(cfg.JWTSecret, time.Duration(cfg.JWTExpirationHours)*time.Hour)

	return &Services{
		Auth:    NewAuthService(repos.Tx, repos.Credential, hasher, issuer, cfg),
		User:    NewUserService(repos.Tx, repos.User, repos.Audit, hasher, cfg),
		Role:    NewRoleService(repos.Role, repos.User),
		Client:  NewClientService(repos.Client, repos.Audit),
		Order:   NewOrderService(repos.Order, repos.Client, repos.Audit),
		Comment: NewCommentService(repos.Comment),
	}
}
