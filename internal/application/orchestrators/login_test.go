package orchestrators

import (
	"context"
	"errors"
	"testing"

	"lessonportal/internal/domain/user"
)

type mockLoginStore struct {
	users map[string]user.User
}

func (m *mockLoginStore) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := m.users[email]
	if !ok {
		return user.User{}, errors.New("user not found")
	}
	return u, nil
}

func loginFixture(t *testing.T) LoginDeps {
	t.Helper()
	u := user.User{ID: 7, Email: "ana.silva@example.com", FirstName: "Ana", LastName: "Silva", Role: user.RoleStudent}
	if err := u.SetPassword("correct horse"); err != nil {
		t.Fatalf("SetPassword() error = %v", err)
	}
	odd := user.User{ID: 8, Email: "admin@example.com", Role: "admin"}
	if err := odd.SetPassword("correct horse"); err != nil {
		t.Fatalf("SetPassword() error = %v", err)
	}
	return LoginDeps{UserStore: &mockLoginStore{users: map[string]user.User{
		u.Email:   u,
		odd.Email: odd,
	}}}
}

func TestExecuteLogin_Success(t *testing.T) {
	deps := loginFixture(t)
	got, err := ExecuteLogin(context.Background(), LoginInput{Email: "ana.silva@example.com", Password: "correct horse"}, deps)
	if err != nil {
		t.Fatalf("ExecuteLogin() error = %v", err)
	}
	if got.UserID != 7 || got.Role != user.RoleStudent || got.FirstName != "Ana" {
		t.Errorf("ExecuteLogin() = %+v", got)
	}
}

func TestExecuteLogin_Failures(t *testing.T) {
	deps := loginFixture(t)
	tests := []struct {
		name  string
		input LoginInput
	}{
		{"empty email", LoginInput{Password: "correct horse"}},
		{"empty password", LoginInput{Email: "ana.silva@example.com"}},
		{"unknown email", LoginInput{Email: "nobody@example.com", Password: "correct horse"}},
		{"wrong password", LoginInput{Email: "ana.silva@example.com", Password: "incorrect horse"}},
		{"role outside portal", LoginInput{Email: "admin@example.com", Password: "correct horse"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExecuteLogin(context.Background(), tt.input, deps)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("ExecuteLogin() error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}
