package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	domainErrors "github.com/polkiloo/foodbridge/internal/domain/errors"
	"github.com/polkiloo/foodbridge/internal/domain/model"
	pkgAuth "github.com/polkiloo/foodbridge/internal/pkg/auth"
	testhelpers "github.com/polkiloo/foodbridge/internal/test"
)

func newAuthUseCase(repo *testhelpers.UserRepositoryStub, notifier *testhelpers.NotifierStub) *AuthUseCase {
	return NewAuthUseCase(repo, testhelpers.HasherStub{}, testhelpers.StrategyStub{}, notifier)
}

func TestAuthUseCaseRegisterSuccess(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	notifier := &testhelpers.NotifierStub{}
	uc := newAuthUseCase(repo, notifier)

	ctx := context.Background()
	user, token, err := uc.Register(ctx, model.Registration{Email: "  Alice@Example.ORG ", Password: "password", Name: "Alice"})
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected user to have ID assigned")
	}
	if user.Role != model.RoleDonor {
		t.Fatalf("expected default donor role, got %q", user.Role)
	}
	if token != "donor:"+user.ID {
		t.Fatalf("unexpected token %q", token)
	}

	stored, err := repo.GetByEmail(ctx, "alice@example.org")
	if err != nil {
		t.Fatalf("expected user in repository: %v", err)
	}
	if stored.PasswordHash != "hash:password" {
		t.Fatalf("password hash not stored: %v", stored.PasswordHash)
	}
	if welcomed, _, _ := notifier.Counts(); welcomed != 1 {
		t.Fatalf("expected one welcome notification, got %d", welcomed)
	}
}

func TestAuthUseCaseRegisterNGO(t *testing.T) {
	uc := newAuthUseCase(testhelpers.NewUserRepositoryStub(), &testhelpers.NotifierStub{})
	user, token, err := uc.Register(context.Background(), model.Registration{Email: "ngo@example.org", Password: "pw", Role: model.RoleNGO})
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if token != "ngo:"+user.ID {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestAuthUseCaseRegisterDuplicate(t *testing.T) {
	notifier := &testhelpers.NotifierStub{}
	uc := newAuthUseCase(testhelpers.NewUserRepositoryStub(), notifier)

	ctx := context.Background()
	reg := model.Registration{Email: "bob@example.org", Password: "secret"}
	if _, _, err := uc.Register(ctx, reg); err != nil {
		t.Fatalf("unexpected error on first register: %v", err)
	}
	reg.Email = "BOB@example.org"
	if _, _, err := uc.Register(ctx, reg); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if welcomed, _, _ := notifier.Counts(); welcomed != 1 {
		t.Fatalf("expected a single welcome notification, got %d", welcomed)
	}
}

func TestAuthUseCaseRegisterValidation(t *testing.T) {
	uc := newAuthUseCase(testhelpers.NewUserRepositoryStub(), &testhelpers.NotifierStub{})
	cases := []struct {
		name string
		reg  model.Registration
		want error
	}{
		{"empty email", model.Registration{Password: "pw"}, domainErrors.ErrInvalidCredentials},
		{"empty password", model.Registration{Email: "a@b.c"}, domainErrors.ErrInvalidCredentials},
		{"unknown role", model.Registration{Email: "a@b.c", Password: "pw", Role: "admin"}, domainErrors.ErrInvalidRole},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := uc.Register(context.Background(), tc.reg); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestAuthUseCaseRegisterFailures(t *testing.T) {
	reg := model.Registration{Email: "user@example.org", Password: "pass"}

	t.Run("hasher", func(t *testing.T) {
		uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{HashFn: func(string) (string, error) {
			return "", fmt.Errorf("hash error")
		}}, testhelpers.StrategyStub{}, &testhelpers.NotifierStub{})
		if _, _, err := uc.Register(context.Background(), reg); err == nil {
			t.Fatal("expected hashing error")
		}
	})

	t.Run("repository", func(t *testing.T) {
		repo := testhelpers.NewUserRepositoryStub()
		repo.Err = fmt.Errorf("db down")
		uc := newAuthUseCase(repo, &testhelpers.NotifierStub{})
		if _, _, err := uc.Register(context.Background(), reg); err == nil {
			t.Fatal("expected repository error")
		}
	})

	t.Run("token", func(t *testing.T) {
		notifier := &testhelpers.NotifierStub{}
		uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, testhelpers.StrategyStub{
			IssueFn: func(model.Identity) (string, error) { return "", fmt.Errorf("cannot issue token") },
		}, notifier)
		if _, _, err := uc.Register(context.Background(), reg); err == nil {
			t.Fatal("expected token issuing error")
		}
		if welcomed, _, _ := notifier.Counts(); welcomed != 0 {
			t.Fatal("did not expect welcome mail when token issuing fails")
		}
	})
}

func TestAuthUseCaseAuthenticate(t *testing.T) {
	uc := newAuthUseCase(testhelpers.NewUserRepositoryStub(), &testhelpers.NotifierStub{})

	ctx := context.Background()
	user, _, err := uc.Register(ctx, model.Registration{Email: "carol@example.org", Password: "123456", Role: model.RoleNGO})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := uc.Authenticate(ctx, "carol@example.org", "bad"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
	if _, _, err := uc.Authenticate(ctx, "absent@example.org", "123456"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for unknown email, got %v", err)
	}
	if _, _, err := uc.Authenticate(ctx, "", "123456"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for empty email, got %v", err)
	}

	_, token, err := uc.Authenticate(ctx, " CAROL@example.org ", "123456")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token != "ngo:"+user.ID {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestAuthUseCaseAuthenticateRepositoryError(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := newAuthUseCase(repo, &testhelpers.NotifierStub{})
	repo.Err = fmt.Errorf("storage unavailable")
	_, _, err := uc.Authenticate(context.Background(), "user@example.org", "pass")
	if err == nil || errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestAuthUseCaseParseToken(t *testing.T) {
	uc := newAuthUseCase(testhelpers.NewUserRepositoryStub(), &testhelpers.NotifierStub{})

	identity, err := uc.ParseToken("ngo:user-42")
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if identity.UserID != "user-42" || identity.Role != model.RoleNGO {
		t.Fatalf("unexpected identity %+v", identity)
	}

	if _, err := uc.ParseToken("bad-token"); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
	if _, err := uc.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestAuthUseCaseGetByID(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := newAuthUseCase(repo, &testhelpers.NotifierStub{})
	user, _, err := uc.Register(context.Background(), model.Registration{Email: "dave@example.org", Password: "pwd", Name: "Dave"})
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	fetched, err := uc.GetByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("get by id returned error: %v", err)
	}
	if fetched.Name != "Dave" {
		t.Fatalf("expected name Dave, got %q", fetched.Name)
	}

	repo.Err = fmt.Errorf("read error")
	if _, err := uc.GetByID(context.Background(), user.ID); err == nil {
		t.Fatal("expected repository error")
	}
}
