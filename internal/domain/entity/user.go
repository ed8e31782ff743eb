package entity

import (
	"regexp"
	"strings"
	"time"
)

var emailPattern = regexp.MustCompile(`^(?i)[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,6}$`)

const (
	MinimumSalary float64 = 0
	MaximumSalary float64 = 15000000
)

// ValidationError reports a domain rule broken during User construction.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// User is the aggregate root for the registration domain.
//
// ID is nil until the user has been persisted; a persisted ID never changes.
// All fields are set at construction time and read through accessors only.
type User struct {
	id             *int64
	firstName      string
	lastName       string
	email          string
	identityNumber string
	phoneNumber    string
	birthDate      *time.Time
	address        string
	idRole         string
	baseSalary     float64
}

// NewUser builds an unpersisted User (no identifier) and enforces the
// domain invariants: non-blank names and email, a well-formed email
// address, and a base salary within [MinimumSalary, MaximumSalary].
// Identity number, phone, birth date, address and role are accepted as-is.
func NewUser(firstName, lastName, email, identityNumber, phoneNumber string, birthDate *time.Time, address, idRole string, baseSalary float64) (*User, error) {
	return MaterializeUser(nil, firstName, lastName, email, identityNumber, phoneNumber, birthDate, address, idRole, baseSalary)
}

// MaterializeUser builds a User carrying an existing identifier, re-running
// the same validation. Used by the persistence adapter to rebuild saved rows.
func MaterializeUser(id *int64, firstName, lastName, email, identityNumber, phoneNumber string, birthDate *time.Time, address, idRole string, baseSalary float64) (*User, error) {
	if err := requireNotBlank(firstName, "First name cannot be null or empty."); err != nil {
		return nil, err
	}
	if err := requireNotBlank(lastName, "Last name cannot be null or empty."); err != nil {
		return nil, err
	}
	if err := requireNotBlank(email, "Email cannot be null or empty."); err != nil {
		return nil, err
	}
	if !emailPattern.MatchString(email) {
		return nil, &ValidationError{Message: "The email format is not valid."}
	}
	if baseSalary < MinimumSalary || baseSalary > MaximumSalary {
		return nil, &ValidationError{Message: "Base salary must be between 0 and 15000000."}
	}
	return &User{
		id:             id,
		firstName:      firstName,
		lastName:       lastName,
		email:          email,
		identityNumber: identityNumber,
		phoneNumber:    phoneNumber,
		birthDate:      birthDate,
		address:        address,
		idRole:         idRole,
		baseSalary:     baseSalary,
	}, nil
}

func requireNotBlank(value, message string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Message: message}
	}
	return nil
}

func (u *User) ID() *int64             { return u.id }
func (u *User) FirstName() string      { return u.firstName }
func (u *User) LastName() string       { return u.lastName }
func (u *User) Email() string          { return u.email }
func (u *User) IdentityNumber() string { return u.identityNumber }
func (u *User) PhoneNumber() string    { return u.phoneNumber }
func (u *User) BirthDate() *time.Time  { return u.birthDate }
func (u *User) Address() string        { return u.address }
func (u *User) IDRole() string         { return u.idRole }
func (u *User) BaseSalary() float64    { return u.baseSalary }
