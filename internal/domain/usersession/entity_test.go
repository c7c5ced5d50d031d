package usersession

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func aliceBirth() time.Time {
	return time.Date(1990, time.May, 1, 0, 0, 0, 0, time.UTC)
}

func newAlice() *UserSession {
	return New("Alice", "Alice Smith", "asmith", "alice@example.com", aliceBirth())
}

func TestNew_StoresAllFields(t *testing.T) {
	s := newAlice()

	assert.Equal(t, "Alice", s.FirstName())
	assert.Equal(t, "Alice Smith", s.FullName())
	assert.Equal(t, "asmith", s.Username())
	assert.Equal(t, "alice@example.com", s.Email())
	assert.True(t, s.DateBirth().Equal(aliceBirth()))
}

func TestNew_ZeroValuesAccepted(t *testing.T) {
	s := New("", "", "", "", time.Time{})

	assert.Empty(t, s.FirstName())
	assert.Empty(t, s.FullName())
	assert.Empty(t, s.Username())
	assert.Empty(t, s.Email())
	assert.True(t, s.DateBirth().IsZero())
}

func TestSetters_StoreValueVerbatim(t *testing.T) {
	tests := []struct {
		name  string
		set   func(s *UserSession, v string)
		get   func(s *UserSession) string
		value string
	}{
		{"first name keeps whitespace", (*UserSession).SetFirstName, (*UserSession).FirstName, "  Bob  "},
		{"full name keeps case", (*UserSession).SetFullName, (*UserSession).FullName, "bOB jONES"},
		{"username accepts empty", (*UserSession).SetUsername, (*UserSession).Username, ""},
		{"email is not validated", (*UserSession).SetEmail, (*UserSession).Email, "not-an-email"},
		{"unicode survives", (*UserSession).SetFullName, (*UserSession).FullName, "Zoë Ångström"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newAlice()
			tt.set(s, tt.value)
			assert.Equal(t, tt.value, tt.get(s))
		})
	}
}

func TestSetDateBirth_KeepsLocationAndFutureDates(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	future := time.Date(2999, time.January, 2, 15, 4, 5, 6, loc)

	s := newAlice()
	s.SetDateBirth(future)

	got := s.DateBirth()
	assert.Equal(t, future, got)
	assert.Equal(t, loc, got.Location())
}

func TestSetters_FieldIndependence(t *testing.T) {
	s := newAlice()

	s.SetUsername("asmith2")

	assert.Equal(t, "asmith2", s.Username())
	assert.Equal(t, "Alice", s.FirstName())
	assert.Equal(t, "Alice Smith", s.FullName())
	assert.Equal(t, "alice@example.com", s.Email())
	assert.True(t, s.DateBirth().Equal(aliceBirth()))

	s.SetDateBirth(time.Date(2000, time.February, 29, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "asmith2", s.Username())
	assert.Equal(t, "Alice", s.FirstName())
	assert.Equal(t, "Alice Smith", s.FullName())
	assert.Equal(t, "alice@example.com", s.Email())
}

func TestSetters_LastWriteWins(t *testing.T) {
	s := newAlice()

	s.SetEmail("a@example.com")
	s.SetEmail("b@example.com")

	assert.Equal(t, "b@example.com", s.Email())
}

func TestNew_InstancesAreIndependent(t *testing.T) {
	a := newAlice()
	b := newAlice()

	a.SetFirstName("Alicia")

	assert.Equal(t, "Alicia", a.FirstName())
	assert.Equal(t, "Alice", b.FirstName())
}
