package validation

import (
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var initOnce sync.Once

type probe struct {
	Name      string   `json:"name" binding:"omitempty,notblank"`
	Email     string   `json:"email" binding:"required,email"`
	BirthDate string   `json:"birthDate" binding:"omitempty,pastdate"`
	Salary    *float64 `json:"salary" binding:"required,gte=0,lte=15000000"`
}

func bindProbe(t *testing.T, body string) error {
	t.Helper()
	initOnce.Do(Init)
	var p probe
	return binding.JSON.BindBody([]byte(body), &p)
}

func TestMessage_UsesJSONFieldNames(t *testing.T) {
	err := bindProbe(t, `{"email":"broken","salary":100}`)
	require.Error(t, err)
	assert.Equal(t, "'email': must be a valid email", Message(err))
}

func TestMessage_JoinsEveryViolation(t *testing.T) {
	err := bindProbe(t, `{"email":"broken","salary":-1}`)
	require.Error(t, err)
	msg := Message(err)
	assert.Contains(t, msg, "'email': must be a valid email")
	assert.Contains(t, msg, "'salary': must be greater than or equal to 0")
	assert.Contains(t, msg, ", ")
}

func TestMessage_Required(t *testing.T) {
	err := bindProbe(t, `{}`)
	require.Error(t, err)
	msg := Message(err)
	assert.Contains(t, msg, "'email': is required")
	assert.Contains(t, msg, "'salary': is required")
}

func TestPastDate(t *testing.T) {
	tests := []struct {
		name      string
		birthDate string
		ok        bool
	}{
		{"past date", "1995-11-11", true},
		{"yesterday", time.Now().UTC().AddDate(0, 0, -1).Format(DateLayout), true},
		{"omitted", "", true},
		{"today", time.Now().UTC().Format(DateLayout), false},
		{"future date", "2999-01-01", false},
		{"wrong layout", "11-11-1995", false},
		{"not a date", "soon", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := `{"email":"a@b.com","salary":100,"birthDate":"` + tt.birthDate + `"}`
			err := bindProbe(t, body)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, Message(err), "'birthDate': must be a valid date in the past")
			}
		})
	}
}

func TestNotBlank(t *testing.T) {
	err := bindProbe(t, `{"name":"   ","email":"a@b.com","salary":100}`)
	require.Error(t, err)
	assert.Equal(t, "'name': cannot be blank", Message(err))

	err = bindProbe(t, `{"name":"Ana","email":"a@b.com","salary":100}`)
	assert.NoError(t, err)
}

func TestMessage_NilError(t *testing.T) {
	assert.Empty(t, Message(nil))
}
