package guia

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/essentia-tours/internal/audit"
	"github.com/BruksfildServices01/essentia-tours/internal/domain/user"
	"github.com/BruksfildServices01/essentia-tours/internal/httperr"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
	"github.com/BruksfildServices01/essentia-tours/internal/validators"
)

type Repository interface {
	GetGuia(ctx context.Context, id string) (*models.Guia, error)
	ListActive(ctx context.Context) ([]models.Guia, error)
	Create(ctx context.Context, g *models.Guia) error
	Update(ctx context.Context, id string, fields map[string]any) (bool, error)
}

type GuiaInput struct {
	Nome               *string
	Email              *string
	Telefone           *string
	Especialidades     *models.StringList
	Idiomas            *models.StringList
	Biografia          *string
	Status             *string
	PercentualComissao *float64
	ActorID            *string
}

// Guias manages guide profiles. A profile created for an email that already
// has an account shares that account's id, which is how the guide dashboard
// finds it.
type Guias struct {
	repo  Repository
	users user.Repository
	audit *audit.Dispatcher
}

func NewGuias(repo Repository, users user.Repository, audit *audit.Dispatcher) *Guias {
	return &Guias{repo: repo, users: users, audit: audit}
}

func (uc *Guias) List(ctx context.Context) ([]models.Guia, error) {
	guias, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if guias == nil {
		guias = []models.Guia{}
	}
	return guias, nil
}

func (uc *Guias) Create(ctx context.Context, in GuiaInput) (*models.Guia, error) {
	nome := trimmed(in.Nome)
	if nome == "" {
		return nil, httperr.ErrBusiness("nome_required")
	}

	g := &models.Guia{
		Nome:               nome,
		Telefone:           trimmed(in.Telefone),
		Biografia:          trimmed(in.Biografia),
		Status:             "ativo",
		PercentualComissao: in.PercentualComissao,
		Especialidades:     models.StringList{},
		Idiomas:            models.StringList{},
	}
	if in.Especialidades != nil {
		g.Especialidades = *in.Especialidades
	}
	if in.Idiomas != nil {
		g.Idiomas = *in.Idiomas
	}
	if s := trimmed(in.Status); s != "" {
		g.Status = s
	}

	if email := validators.NormalizeEmail(trimmed(in.Email)); email != "" {
		if !validators.IsEmail(email) {
			return nil, httperr.ErrBusiness("invalid_email")
		}
		g.Email = email

		account, err := uc.users.FindByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if account != nil {
			existing, err := uc.repo.GetGuia(ctx, account.ID)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, httperr.ErrBusiness("guia_already_exists")
			}
			g.ID = account.ID
		}
	}

	if err := uc.repo.Create(ctx, g); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.ActorID,
		Action:   "guia_created",
		Entity:   "guia",
		EntityID: &g.ID,
	})

	return g, nil
}

func (uc *Guias) Update(ctx context.Context, id string, in GuiaInput) (*models.Guia, error) {
	fields := map[string]any{}
	if v := trimmed(in.Nome); v != "" {
		fields["nome"] = v
	}
	if in.Email != nil {
		email := validators.NormalizeEmail(*in.Email)
		if email != "" && !validators.IsEmail(email) {
			return nil, httperr.ErrBusiness("invalid_email")
		}
		fields["email"] = email
	}
	if in.Telefone != nil {
		fields["telefone"] = trimmed(in.Telefone)
	}
	if in.Biografia != nil {
		fields["biografia"] = trimmed(in.Biografia)
	}
	if v := trimmed(in.Status); v != "" {
		fields["status"] = v
	}
	if in.Especialidades != nil {
		fields["especialidades"] = *in.Especialidades
	}
	if in.Idiomas != nil {
		fields["idiomas"] = *in.Idiomas
	}
	if in.PercentualComissao != nil {
		if *in.PercentualComissao < 0 || *in.PercentualComissao > 100 {
			return nil, httperr.ErrBusiness("invalid_commission")
		}
		fields["percentual_comissao"] = *in.PercentualComissao
	}

	ok, err := uc.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("guia_not_found")
	}

	g, err := uc.repo.GetGuia(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, httperr.ErrBusiness("guia_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.ActorID,
		Action:   "guia_updated",
		Entity:   "guia",
		EntityID: &id,
	})

	return g, nil
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
