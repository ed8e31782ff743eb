package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/crediya/auth-service/internal/domain/entity"
	repo "github.com/crediya/auth-service/internal/domain/repository"
	"github.com/crediya/auth-service/pkg/helpers"
	"github.com/crediya/auth-service/pkg/mailer"
)

// EmailAlreadyExistsError is the business error raised when a registration
// uses an email that is already taken. It is mapped to 409 at the boundary.
type EmailAlreadyExistsError struct {
	Email string
}

func (e *EmailAlreadyExistsError) Error() string {
	return "Email " + e.Email + " is already registered."
}

// RegisterUserCommand carries the validated registration data into the use case.
type RegisterUserCommand struct {
	FirstName      string
	LastName       string
	Email          string
	IdentityNumber string
	PhoneNumber    string
	BirthDate      *time.Time
	Address        string
	IDRole         string
	BaseSalary     float64
}

// RegisterUserPort is the inbound port for the registration use case.
type RegisterUserPort interface {
	RegisterUser(ctx context.Context, cmd RegisterUserCommand) (*entity.User, error)
}

// Service implements RegisterUserPort on top of the UserRepository port.
type Service struct {
	Repo   repo.UserRepository
	Pub    *helpers.RabbitPublisher
	Logger *logrus.Logger
}

func NewService(repo repo.UserRepository, pub *helpers.RabbitPublisher, logger *logrus.Logger) *Service {
	return &Service{Repo: repo, Pub: pub, Logger: logger}
}

// RegisterUser checks email availability, constructs the User entity
// (re-running domain validation) and persists it. The save is attempted only
// after the existence check reported "not found".
//
// The check and the insert are not atomic: two concurrent registrations with
// the same email can both pass the check, and the loser then fails on the
// storage uniqueness constraint as a plain infrastructure error, not as an
// EmailAlreadyExistsError.
func (s *Service) RegisterUser(ctx context.Context, cmd RegisterUserCommand) (*entity.User, error) {
	exists, err := s.Repo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		if s.Logger != nil {
			s.Logger.WithField("email", cmd.Email).Warn("registration failed: email already exists")
		}
		return nil, &EmailAlreadyExistsError{Email: cmd.Email}
	}

	u, err := entity.NewUser(
		cmd.FirstName,
		cmd.LastName,
		cmd.Email,
		cmd.IdentityNumber,
		cmd.PhoneNumber,
		cmd.BirthDate,
		cmd.Address,
		cmd.IDRole,
		cmd.BaseSalary,
	)
	if err != nil {
		return nil, err
	}

	saved, err := s.Repo.Save(ctx, u)
	if err != nil {
		return nil, err
	}

	s.queueWelcomeEmail(ctx, saved)
	return saved, nil
}

// queueWelcomeEmail publishes a welcome email job for the worker. Failures
// are logged and never fail the registration.
func (s *Service) queueWelcomeEmail(ctx context.Context, u *entity.User) {
	if s.Pub == nil {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email(),
		Template: "welcome",
		Data:     map[string]any{"first_name": u.FirstName()},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("email", u.Email()).Warn("queue welcome email failed")
	}
}

var _ RegisterUserPort = (*Service)(nil)
