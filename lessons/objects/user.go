package objects

import "fmt"

// Person is implemented by User and by every type that embeds it.
type Person interface {
	Base() *User
	Greet() string
}

type User struct {
	Name  string
	Email string

	inits int
}

func NewUser(name, email string) *User {
	u := &User{}
	u.init(name, email)
	return u
}

func (u *User) init(name, email string) {
	u.Name = name
	u.Email = email
	u.inits++
}

func (u *User) Greet() string {
	return fmt.Sprintf("Hi, I'm %s (%s)", u.Name, u.Email)
}

// Base returns the embedded User.
func (u *User) Base() *User {
	return u
}

// Admin is a User with an access level. It overrides Greet.
type Admin struct {
	*User
	Level int
}

func NewAdmin(name, email string, level int) *Admin {
	return &Admin{User: NewUser(name, email), Level: level}
}

func (a *Admin) Greet() string {
	return fmt.Sprintf("Hi, I'm %s (Admin Level %d)", a.Name, a.Level)
}

// Introduce extends the User greeting rather than replacing it.
func (a *Admin) Introduce() string {
	return a.User.Greet() + fmt.Sprintf(", level %d", a.Level)
}

// IsUser reports whether v is a User or embeds one.
func IsUser(v any) bool {
	p, ok := v.(Person)
	return ok && p.Base() != nil
}

// IsExactlyUser reports whether v is a *User and not a type built on it.
func IsExactlyUser(v any) bool {
	_, ok := v.(*User)
	return ok
}

// IsAdmin reports whether v is an *Admin.
func IsAdmin(v any) bool {
	_, ok := v.(*Admin)
	return ok
}
