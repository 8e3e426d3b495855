package lead

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/essentia-tours/internal/audit"
	domain "github.com/BruksfildServices01/essentia-tours/internal/domain/lead"
	"github.com/BruksfildServices01/essentia-tours/internal/httperr"
	"github.com/BruksfildServices01/essentia-tours/internal/metrics"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
	"github.com/BruksfildServices01/essentia-tours/internal/timezone"
	"github.com/BruksfildServices01/essentia-tours/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateLeadInput struct {
	Nome          string
	Email         string
	Telefone      string
	PasseioID     string
	PasseioNome   string
	DataPasseio   string
	NumeroPessoas int
	Observacoes   string
}

// ======================================================
// USE CASE
// ======================================================

type CreateLead struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateLead(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateLead {
	return &CreateLead{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateLead) Execute(
	ctx context.Context,
	in CreateLeadInput,
) (*models.Lead, error) {

	nome := strings.TrimSpace(in.Nome)
	email := validators.NormalizeEmail(in.Email)
	passeioID := strings.TrimSpace(in.PasseioID)

	if nome == "" || email == "" || passeioID == "" {
		return nil, httperr.ErrBusiness("missing_required_fields")
	}
	if !validators.IsEmail(email) {
		return nil, httperr.ErrBusiness("invalid_email")
	}

	l := &models.Lead{
		Nome:          nome,
		Email:         email,
		PasseioID:     passeioID,
		PasseioNome:   strings.TrimSpace(in.PasseioNome),
		NumeroPessoas: in.NumeroPessoas,
		Observacoes:   strings.TrimSpace(in.Observacoes),
		Status:        domain.StatusNovo,
	}
	if l.NumeroPessoas < 1 {
		l.NumeroPessoas = 1
	}
	if tel := strings.TrimSpace(in.Telefone); tel != "" {
		l.Telefone = &tel
	}
	if strings.TrimSpace(in.DataPasseio) != "" {
		d, err := timezone.ParseDate(in.DataPasseio)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		l.DataPasseio = &d
	}

	if err := uc.repo.Create(ctx, l); err != nil {
		return nil, err
	}

	metrics.LeadsCreated.Inc()
	uc.audit.Dispatch(audit.Event{
		Action:   "lead_created",
		Entity:   "lead",
		EntityID: &l.ID,
	})

	return l, nil
}

// ======================================================
// LIST
// ======================================================

type ListLeads struct {
	repo domain.Repository
}

func NewListLeads(repo domain.Repository) *ListLeads {
	return &ListLeads{repo: repo}
}

// Execute returns every lead, newest first.
func (uc *ListLeads) Execute(ctx context.Context) ([]models.Lead, error) {
	leads, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if leads == nil {
		leads = []models.Lead{}
	}
	return leads, nil
}
