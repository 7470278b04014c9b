package service

import (
	"errors"
	"testing"

	"github.com/ferreguly-next/internal/config"
	"github.com/ferreguly-next/internal/constants"
	"github.com/ferreguly-next/internal/repository"

	"gorm.io/gorm"
)

func newUserAuthServiceForTest(db *gorm.DB) *UserAuthService {
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret-key-0123456789abcdef-0123"
	cfg.JWT.ExpireHours = 1
	cfg.Security.PasswordPolicy = config.PasswordPolicyConfig{
		MinLength:     8,
		RequireLower:  true,
		RequireNumber: true,
	}
	return NewUserAuthService(cfg, repository.NewUserRepository(db))
}

func TestRegisterAndTokenRoundTrip(t *testing.T) {
	db := newShopTestDB(t, "auth_register")
	svc := newUserAuthServiceForTest(db)

	user, token, expiresAt, err := svc.Register(RegisterInput{
		Email:     "  Cliente@Example.com ",
		Password:  "ferreteria1",
		FirstName: "Laura",
		LastName:  "Mendoza",
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if user.Email != "cliente@example.com" {
		t.Fatalf("email should be normalized, got %s", user.Email)
	}
	if user.Role != constants.RoleCustomer {
		t.Fatalf("new user role want customer got %s", user.Role)
	}
	if expiresAt.IsZero() || token == "" {
		t.Fatalf("expected signed token with expiry")
	}

	claims, err := svc.ParseUserJWT(token)
	if err != nil {
		t.Fatalf("ParseUserJWT error: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email || claims.Role != user.Role {
		t.Fatalf("claims mismatch: %+v", claims)
	}

	if _, _, _, err := svc.Register(RegisterInput{Email: "cliente@example.com", Password: "ferreteria1"}); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("duplicate email want ErrEmailExists got %v", err)
	}
	if _, _, _, err := svc.Register(RegisterInput{Email: "no-es-correo", Password: "ferreteria1"}); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("bad email want ErrInvalidEmail got %v", err)
	}
}

func TestRegisterEnforcesPasswordPolicy(t *testing.T) {
	db := newShopTestDB(t, "auth_policy")
	svc := newUserAuthServiceForTest(db)

	cases := []string{"corta1", "SINMINUSCULAS1", "sinnumeros"}
	for _, password := range cases {
		_, _, _, err := svc.Register(RegisterInput{Email: "nuevo@example.com", Password: password})
		if !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("password %q want ErrWeakPassword got %v", password, err)
		}
	}
}

func TestLogin(t *testing.T) {
	db := newShopTestDB(t, "auth_login")
	svc := newUserAuthServiceForTest(db)

	registered, _, _, err := svc.Register(RegisterInput{Email: "cliente@example.com", Password: "ferreteria1"})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	user, token, _, err := svc.Login("CLIENTE@example.com", "ferreteria1")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if user.ID != registered.ID || token == "" {
		t.Fatalf("unexpected login result")
	}

	if _, _, _, err := svc.Login("cliente@example.com", "incorrecta1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password want ErrInvalidCredentials got %v", err)
	}
	if _, _, _, err := svc.Login("desconocido@example.com", "ferreteria1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email want ErrInvalidCredentials got %v", err)
	}

	registered.IsActive = false
	if err := db.Save(registered).Error; err != nil {
		t.Fatalf("disable user failed: %v", err)
	}
	if _, _, _, err := svc.Login("cliente@example.com", "ferreteria1"); !errors.Is(err, ErrUserDisabled) {
		t.Fatalf("disabled user want ErrUserDisabled got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	db := newShopTestDB(t, "auth_change")
	svc := newUserAuthServiceForTest(db)

	user, _, _, err := svc.Register(RegisterInput{Email: "cliente@example.com", Password: "ferreteria1"})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	if err := svc.ChangePassword(user.ID, "equivocada1", "renovada22"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("wrong old password want ErrInvalidPassword got %v", err)
	}
	if err := svc.ChangePassword(user.ID, "ferreteria1", "corta"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("weak new password want ErrWeakPassword got %v", err)
	}
	if err := svc.ChangePassword(user.ID, "ferreteria1", "renovada22"); err != nil {
		t.Fatalf("ChangePassword error: %v", err)
	}

	if _, _, _, err := svc.Login("cliente@example.com", "ferreteria1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password should no longer work, got %v", err)
	}
	if _, _, _, err := svc.Login("cliente@example.com", "renovada22"); err != nil {
		t.Fatalf("login with new password error: %v", err)
	}
}
