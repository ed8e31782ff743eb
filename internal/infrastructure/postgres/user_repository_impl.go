package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/crediya/auth-service/internal/domain/entity"
	"github.com/crediya/auth-service/internal/domain/repository"
)

// UserRepository persists users in the usuario table.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM usuario WHERE email = $1)
	`, email)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *UserRepository) Save(ctx context.Context, u *entity.User) (*entity.User, error) {
	var birthDate *time.Time
	if u.BirthDate() != nil {
		d := *u.BirthDate()
		birthDate = &d
	}

	var id int64
	row := r.pool.QueryRow(ctx, `
		INSERT INTO usuario (nombre, apellido, email, documento_identidad, telefono, fecha_nacimiento, direccion, id_rol, salario_base)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id_usuario
	`, u.FirstName(), u.LastName(), u.Email(), nullable(u.IdentityNumber()), nullable(u.PhoneNumber()),
		birthDate, nullable(u.Address()), nullable(u.IDRole()), u.BaseSalary())
	if err := row.Scan(&id); err != nil {
		return nil, err
	}

	return entity.MaterializeUser(&id, u.FirstName(), u.LastName(), u.Email(), u.IdentityNumber(),
		u.PhoneNumber(), birthDate, u.Address(), u.IDRole(), u.BaseSalary())
}

// nullable maps empty optional strings to SQL NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

var _ repository.UserRepository = (*UserRepository)(nil)
