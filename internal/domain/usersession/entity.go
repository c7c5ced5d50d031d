package usersession

import "time"

// UserSession holds the profile data of the signed-in user.
// It is a plain record: no field is validated or derived.
type UserSession struct {
	firstName string
	fullName  string
	username  string
	email     string
	dateBirth time.Time
}

// New creates a UserSession from all five profile values.
func New(firstName, fullName, username, email string, dateBirth time.Time) *UserSession {
	return &UserSession{
		firstName: firstName,
		fullName:  fullName,
		username:  username,
		email:     email,
		dateBirth: dateBirth,
	}
}

// FirstName returns the stored first name.
func (s *UserSession) FirstName() string {
	return s.firstName
}

// SetFirstName overwrites the first name.
func (s *UserSession) SetFirstName(v string) {
	s.firstName = v
}

// FullName returns the stored full name.
func (s *UserSession) FullName() string {
	return s.fullName
}

// SetFullName overwrites the full name.
func (s *UserSession) SetFullName(v string) {
	s.fullName = v
}

// Username returns the stored username.
func (s *UserSession) Username() string {
	return s.username
}

// SetUsername overwrites the username.
func (s *UserSession) SetUsername(v string) {
	s.username = v
}

// Email returns the stored email address. The format is not checked.
func (s *UserSession) Email() string {
	return s.email
}

// SetEmail overwrites the email address.
func (s *UserSession) SetEmail(v string) {
	s.email = v
}

// DateBirth returns the stored date of birth, location included.
func (s *UserSession) DateBirth() time.Time {
	return s.dateBirth
}

// SetDateBirth overwrites the date of birth.
func (s *UserSession) SetDateBirth(v time.Time) {
	s.dateBirth = v
}
