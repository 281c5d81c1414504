package services

import (
	"context"
	"errors"
	"testing"

	"lankatrip/internal/models/db_models"
	"lankatrip/internal/models/request_models"
	"lankatrip/pkg/utils"
)

type fakeAccountRepo struct {
	byEmail  map[string]*db_models.Account
	inserted []*db_models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byEmail: make(map[string]*db_models.Account)}
}

func (f *fakeAccountRepo) InsertTx(account *db_models.Account, ctx context.Context) error {
	f.inserted = append(f.inserted, account)
	f.byEmail[account.Email] = account
	return nil
}

func (f *fakeAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	for _, account := range f.byEmail {
		if account.ID.String() == id {
			return account, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return f.byEmail[email], nil
}

func TestCreateAccountAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)

	signup := request_models.SignUpRequest{
		DisplayName: "Nimali",
		Email:       "nimali@example.lk",
		Password:    "correct-horse",
	}
	if err := svc.CreateAccount(context.Background(), signup); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected one inserted account, got %d", len(repo.inserted))
	}
	if repo.inserted[0].PasswordHash == signup.Password {
		t.Fatal("password must not be stored in clear text")
	}

	token, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    signup.Email,
		Password: signup.Password,
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a signed token")
	}
	if _, err := utils.ValidateToken(token); err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)

	signup := request_models.SignUpRequest{DisplayName: "Nimali", Email: "nimali@example.lk", Password: "pw"}
	if err := svc.CreateAccount(context.Background(), signup); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.CreateAccount(context.Background(), signup); !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)

	signup := request_models.SignUpRequest{DisplayName: "Nimali", Email: "nimali@example.lk", Password: "correct-horse"}
	if err := svc.CreateAccount(context.Background(), signup); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.Login(context.Background(), request_models.LoginRequest{Email: signup.Email, Password: "battery-staple"})
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAccountService(newFakeAccountRepo())

	_, err := svc.Login(context.Background(), request_models.LoginRequest{Email: "ghost@example.lk", Password: "pw"})
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
