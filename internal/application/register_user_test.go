package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crediya/auth-service/internal/domain/entity"
)

type fakeUserRepo struct {
	emails    map[string]bool
	existsErr error
	saveErr   error
	nextID    int64
	saveCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{emails: map[string]bool{}, nextID: 1}
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	return f.emails[email], nil
}

func (f *fakeUserRepo) Save(_ context.Context, u *entity.User) (*entity.User, error) {
	f.saveCalls++
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	id := f.nextID
	f.nextID++
	f.emails[u.Email()] = true
	return entity.MaterializeUser(&id, u.FirstName(), u.LastName(), u.Email(), u.IdentityNumber(),
		u.PhoneNumber(), u.BirthDate(), u.Address(), u.IDRole(), u.BaseSalary())
}

func command() RegisterUserCommand {
	birth := time.Date(1995, 11, 11, 0, 0, 0, 0, time.UTC)
	return RegisterUserCommand{
		FirstName:      "Larry",
		LastName:       "Ramirez",
		Email:          "larry.ramirez11@outlook.com",
		IdentityNumber: "123456789",
		PhoneNumber:    "3001234567",
		BirthDate:      &birth,
		Address:        "123 Main St",
		IDRole:         "ROLE_USER",
		BaseSalary:     5000000,
	}
}

func TestRegisterUser_Success(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, nil, nil)
	cmd := command()

	u, err := svc.RegisterUser(context.Background(), cmd)
	require.NoError(t, err)
	require.NotNil(t, u)

	require.NotNil(t, u.ID(), "persisted user must carry an identifier")
	assert.Equal(t, cmd.FirstName, u.FirstName())
	assert.Equal(t, cmd.LastName, u.LastName())
	assert.Equal(t, cmd.Email, u.Email())
	assert.Equal(t, cmd.IdentityNumber, u.IdentityNumber())
	assert.Equal(t, cmd.PhoneNumber, u.PhoneNumber())
	assert.Equal(t, cmd.BirthDate, u.BirthDate())
	assert.Equal(t, cmd.Address, u.Address())
	assert.Equal(t, cmd.IDRole, u.IDRole())
	assert.Equal(t, cmd.BaseSalary, u.BaseSalary())
	assert.Equal(t, 1, repo.saveCalls)
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	repo.emails["larry.ramirez11@outlook.com"] = true
	svc := NewService(repo, nil, nil)

	u, err := svc.RegisterUser(context.Background(), command())
	require.Error(t, err)
	assert.Nil(t, u)

	var dup *EmailAlreadyExistsError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "larry.ramirez11@outlook.com", dup.Email)
	assert.Equal(t, "Email larry.ramirez11@outlook.com is already registered.", err.Error())
	assert.Zero(t, repo.saveCalls, "save must not be attempted on duplicate email")
}

func TestRegisterUser_InvalidCommand(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, nil, nil)
	cmd := command()
	cmd.Email = "not-an-email"

	// the boundary validates too, but the entity is safe to construct from
	// any caller and re-checks on its own
	_, err := svc.RegisterUser(context.Background(), cmd)
	require.Error(t, err)
	var verr *entity.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, repo.saveCalls)
}

func TestRegisterUser_ExistsCheckFailurePropagates(t *testing.T) {
	repo := newFakeUserRepo()
	repo.existsErr = errors.New("connection refused")
	svc := NewService(repo, nil, nil)

	_, err := svc.RegisterUser(context.Background(), command())
	require.EqualError(t, err, "connection refused")
	assert.Zero(t, repo.saveCalls)
}

func TestRegisterUser_SaveFailurePropagates(t *testing.T) {
	repo := newFakeUserRepo()
	repo.saveErr = errors.New("unique constraint violated")
	svc := NewService(repo, nil, nil)

	_, err := svc.RegisterUser(context.Background(), command())
	require.EqualError(t, err, "unique constraint violated")

	// storage-level uniqueness violations stay infrastructure errors
	var dup *EmailAlreadyExistsError
	assert.False(t, errors.As(err, &dup))
}

func TestExistsByEmail_IdempotentWithoutWrites(t *testing.T) {
	repo := newFakeUserRepo()
	ctx := context.Background()

	first, err := repo.ExistsByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	second, err := repo.ExistsByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.False(t, first)
}
