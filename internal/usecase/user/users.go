package user

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/essentia-tours/internal/audit"
	"github.com/BruksfildServices01/essentia-tours/internal/auth"
	domain "github.com/BruksfildServices01/essentia-tours/internal/domain/user"
	"github.com/BruksfildServices01/essentia-tours/internal/httperr"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
	"github.com/BruksfildServices01/essentia-tours/internal/validators"
)

// SplitName derives first and last name from a full name.
func SplitName(nome string) (string, string) {
	parts := strings.Fields(nome)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

type UserView struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Nome      string    `json:"nome"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	UserType  string    `json:"userType"`
	Telefone  string    `json:"telefone"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ToView(u models.User) UserView {
	first, last := SplitName(u.Nome)
	if u.FirstName != "" {
		first = u.FirstName
	}
	if u.LastName != "" {
		last = u.LastName
	}
	return UserView{
		ID:        u.ID,
		Email:     u.Email,
		Nome:      u.Nome,
		FirstName: first,
		LastName:  last,
		UserType:  u.UserType,
		Telefone:  u.Telefone,
		Status:    "ativo",
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ======================================================
// USE CASE
// ======================================================

// Users is the admin user management surface.
type Users struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUsers(repo domain.Repository, audit *audit.Dispatcher) *Users {
	return &Users{repo: repo, audit: audit}
}

func (uc *Users) List(ctx context.Context) ([]UserView, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserView, 0, len(users))
	for _, u := range users {
		out = append(out, ToView(u))
	}
	return out, nil
}

type UserInput struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	UserType  string
	Password  string
	ActorID   *string
}

func (uc *Users) Create(ctx context.Context, in UserInput) (*UserView, error) {
	first := strings.TrimSpace(in.FirstName)
	last := strings.TrimSpace(in.LastName)
	email := validators.NormalizeEmail(in.Email)

	if first == "" || last == "" || email == "" || in.UserType == "" || in.Password == "" {
		return nil, httperr.ErrBusiness("missing_required_fields")
	}
	if !models.IsValidRole(in.UserType) {
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

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Email:        email,
		Nome:         first + " " + last,
		FirstName:    first,
		LastName:     last,
		PasswordHash: hash,
		UserType:     in.UserType,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	uc.dispatch(in.ActorID, "user_created", u.ID)

	v := ToView(*u)
	return &v, nil
}

// Update applies the non-empty fields. Nome follows first/last name.
func (uc *Users) Update(ctx context.Context, in UserInput) (*UserView, error) {
	if in.ID == "" {
		return nil, httperr.ErrBusiness("user_id_required")
	}

	fields := map[string]any{}
	if email := validators.NormalizeEmail(in.Email); email != "" {
		if !validators.IsEmail(email) {
			return nil, httperr.ErrBusiness("invalid_email")
		}
		fields["email"] = email
	}
	if in.UserType != "" {
		if !models.IsValidRole(in.UserType) {
			return nil, httperr.ErrBusiness("invalid_user_type")
		}
		fields["user_type"] = in.UserType
	}

	first := strings.TrimSpace(in.FirstName)
	last := strings.TrimSpace(in.LastName)
	if first != "" {
		fields["first_name"] = first
	}
	if last != "" {
		fields["last_name"] = last
	}
	if full := strings.TrimSpace(first + " " + last); full != "" {
		fields["nome"] = full
	}

	if in.Password != "" {
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		fields["password_hash"] = hash
	}

	ok, err := uc.repo.Update(ctx, in.ID, fields)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("user_not_found")
	}

	u, err := uc.repo.Get(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	uc.dispatch(in.ActorID, "user_updated", u.ID)

	v := ToView(*u)
	return &v, nil
}

func (uc *Users) Delete(ctx context.Context, id string, actorID *string) error {
	if id == "" {
		return httperr.ErrBusiness("user_id_required")
	}
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.ErrBusiness("user_not_found")
	}

	uc.dispatch(actorID, "user_deleted", id)
	return nil
}

// UpdateType changes the role of the account registered with email.
func (uc *Users) UpdateType(
	ctx context.Context,
	email, userType string,
	actorID *string,
) (*models.User, error) {

	email = validators.NormalizeEmail(email)
	if email == "" || userType == "" {
		return nil, httperr.ErrBusiness("missing_required_fields")
	}
	if !models.IsValidRole(userType) {
		return nil, httperr.ErrBusiness("invalid_user_type")
	}

	u, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, httperr.ErrBusiness("user_not_found")
	}

	if _, err := uc.repo.Update(ctx, u.ID, map[string]any{"user_type": userType}); err != nil {
		return nil, err
	}
	u.UserType = userType

	uc.dispatch(actorID, "user_type_updated", u.ID)
	return u, nil
}

func (uc *Users) dispatch(actorID *string, action, id string) {
	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   action,
		Entity:   "user",
		EntityID: &id,
	})
}
