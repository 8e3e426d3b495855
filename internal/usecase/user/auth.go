package user

import (
	"context"
	"log"
	"strings"

	"github.com/BruksfildServices01/essentia-tours/internal/audit"
	"github.com/BruksfildServices01/essentia-tours/internal/auth"
	domain "github.com/BruksfildServices01/essentia-tours/internal/domain/user"
	"github.com/BruksfildServices01/essentia-tours/internal/httperr"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
	"github.com/BruksfildServices01/essentia-tours/internal/validators"
)

type TokenIssuer interface {
	GenerateToken(user *models.User) (string, error)
}

// RedirectFor is the landing page of each role after sign-in.
func RedirectFor(role string) string {
	switch role {
	case models.RoleAdmin:
		return "/admin"
	case models.RoleGuia:
		return "/guia"
	}
	return "/dashboard"
}

// ======================================================
// REGISTER
// ======================================================

type RegisterInput struct {
	Nome  string
	Email string
	Senha string
	Tipo  string
}

type AuthOutput struct {
	User        *models.User
	Token       string
	RedirectURL string
}

type Register struct {
	repo   domain.Repository
	tokens TokenIssuer
	audit  *audit.Dispatcher
}

func NewRegister(
	repo domain.Repository,
	tokens TokenIssuer,
	audit *audit.Dispatcher,
) *Register {
	return &Register{
		repo:   repo,
		tokens: tokens,
		audit:  audit,
	}
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*AuthOutput, error) {
	nome := strings.TrimSpace(in.Nome)
	email := validators.NormalizeEmail(in.Email)
	tipo := strings.TrimSpace(in.Tipo)

	if nome == "" || email == "" || in.Senha == "" || tipo == "" {
		return nil, httperr.ErrBusiness("missing_required_fields")
	}
	if !models.IsValidRole(tipo) {
		return nil, httperr.ErrBusiness("invalid_user_type")
	}
	if !validators.IsEmail(email) {
		return nil, httperr.ErrBusiness("invalid_email")
	}

	existing, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrBusiness("email_already_registered")
	}

	hash, err := auth.HashPassword(in.Senha)
	if err != nil {
		return nil, err
	}

	first, last := SplitName(nome)
	u := &models.User{
		Email:        email,
		Nome:         nome,
		FirstName:    first,
		LastName:     last,
		PasswordHash: hash,
		UserType:     tipo,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	token, err := uc.tokens.GenerateToken(u)
	if err != nil {
		return nil, err
	}

	log.Printf("[Auth] user registered id=%s type=%s", u.ID, u.UserType)

	uc.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &u.ID,
		Metadata: map[string]string{"userType": tipo},
	})

	return &AuthOutput{User: u, Token: token, RedirectURL: RedirectFor(tipo)}, nil
}

// ======================================================
// LOGIN
// ======================================================

type Login struct {
	repo   domain.Repository
	tokens TokenIssuer
}

func NewLogin(repo domain.Repository, tokens TokenIssuer) *Login {
	return &Login{repo: repo, tokens: tokens}
}

func (uc *Login) Execute(ctx context.Context, email, password string) (*AuthOutput, error) {
	email = validators.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, httperr.ErrBusiness("missing_credentials")
	}

	u, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil || u.PasswordHash == "" || !auth.CheckPassword(u.PasswordHash, password) {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	token, err := uc.tokens.GenerateToken(u)
	if err != nil {
		return nil, err
	}

	return &AuthOutput{User: u, Token: token, RedirectURL: RedirectFor(u.UserType)}, nil
}

// ======================================================
// ME
// ======================================================

type Me struct {
	repo domain.Repository
}

func NewMe(repo domain.Repository) *Me {
	return &Me{repo: repo}
}

// Execute loads the signed-in account. A nil id or a deleted account yields
// nil without error.
func (uc *Me) Execute(ctx context.Context, userID *string) (*models.User, error) {
	if userID == nil {
		return nil, nil
	}
	u, err := uc.repo.Get(ctx, *userID)
	if httperr.IsBusiness(err, "user_not_found") {
		return nil, nil
	}
	return u, err
}
