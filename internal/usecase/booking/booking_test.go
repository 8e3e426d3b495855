package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/essentia-tours/internal/domain/booking"
	"github.com/BruksfildServices01/essentia-tours/internal/dto"
	"github.com/BruksfildServices01/essentia-tours/internal/httperr"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
)

// ======================================================
// FAKES
// ======================================================

type fakeRepo struct {
	passeios     map[string]*models.Passeio
	agendamentos map[string]*models.Agendamento
	lastFilter   domain.ListFilter
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		passeios: map[string]*models.Passeio{
			"tour-1": {ID: "tour-1", Nome: "Cristo Redentor", Preco: 100},
			"tour-2": {ID: "tour-2", Nome: "Pão de Açúcar", Preco: 250},
		},
		agendamentos: map[string]*models.Agendamento{},
	}
}

func (r *fakeRepo) GetPasseio(_ context.Context, id string) (*models.Passeio, error) {
	p, ok := r.passeios[id]
	if !ok {
		return nil, httperr.ErrBusiness("passeio_not_found")
	}
	return p, nil
}

func (r *fakeRepo) Create(_ context.Context, a *models.Agendamento) error {
	if a.ID == "" {
		a.ID = models.NewID()
	}
	cp := *a
	r.agendamentos[a.ID] = &cp
	return nil
}

func (r *fakeRepo) Get(_ context.Context, id string) (*models.Agendamento, error) {
	a, ok := r.agendamentos[id]
	if !ok {
		return nil, httperr.ErrBusiness("agendamento_not_found")
	}
	cp := *a
	return &cp, nil
}

func (r *fakeRepo) Update(_ context.Context, a *models.Agendamento) error {
	cp := *a
	r.agendamentos[a.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) (bool, error) {
	_, ok := r.agendamentos[id]
	delete(r.agendamentos, id)
	return ok, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id string, s domain.Status) (bool, error) {
	a, ok := r.agendamentos[id]
	if ok {
		a.Status = string(s)
	}
	return ok, nil
}

func (r *fakeRepo) CountByStatus(_ context.Context, s domain.Status) (int64, error) {
	var n int64
	for _, a := range r.agendamentos {
		if domain.Normalize(a.Status) == s {
			n++
		}
	}
	return n, nil
}

func (r *fakeRepo) GetView(_ context.Context, id string) (*dto.AgendamentoView, error) {
	a, ok := r.agendamentos[id]
	if !ok {
		return nil, httperr.ErrBusiness("agendamento_not_found")
	}
	return &dto.AgendamentoView{ID: a.ID, Status: a.Status}, nil
}

func (r *fakeRepo) List(_ context.Context, f domain.ListFilter) ([]dto.AgendamentoView, error) {
	r.lastFilter = f
	return nil, nil
}

type fakeColumns struct {
	ids map[string]bool
}

func (f fakeColumns) ListActive(context.Context) ([]models.KanbanColumn, error) { return nil, nil }
func (f fakeColumns) Get(context.Context, string) (*models.KanbanColumn, error) {
	return nil, httperr.ErrBusiness("column_not_found")
}
func (f fakeColumns) Exists(_ context.Context, id string) (bool, error) { return f.ids[id], nil }
func (f fakeColumns) Create(context.Context, *models.KanbanColumn) error { return nil }
func (f fakeColumns) Update(context.Context, *models.KanbanColumn) error { return nil }
func (f fakeColumns) Delete(context.Context, string) (bool, error) { return false, nil }

func strPtr(s string) *string { return &s }
func intPtr(i int) *int { return &i }

// ======================================================
// TESTS
// ======================================================

func TestCreateAgendamentoSnapshotsValues(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAgendamento(repo, fakeColumns{}, nil, 30)

	a, err := uc.Execute(context.Background(), AgendamentoInput{
		PasseioID:     strPtr("tour-1"),
		ClienteID:     strPtr("none"),
		GuiaID:        strPtr(""),
		DataPasseio:   strPtr("2025-06-10T12:00:00Z"),
		NumeroPessoas: intPtr(3),
	})
	require.NoError(t, err)

	assert.Equal(t, 300.0, a.ValorTotal)
	assert.Equal(t, 30.0, a.PercentualComissao)
	assert.Equal(t, 90.0, a.ValorComissao)
	assert.Equal(t, a.ValorTotal*a.PercentualComissao/100, a.ValorComissao)
	assert.Equal(t, "em_progresso", a.Status)
	assert.Nil(t, a.ClienteID)
	assert.Nil(t, a.GuiaID)
	assert.Equal(t, "2025-06-10", a.DataPasseio.Format("2006-01-02"))
}

func TestCreateAgendamentoClampsPartySize(t *testing.T) {
	uc := NewCreateAgendamento(newFakeRepo(), fakeColumns{}, nil, 30)

	a, err := uc.Execute(context.Background(), AgendamentoInput{
		PasseioID:     strPtr("tour-1"),
		DataPasseio:   strPtr("2025-06-10"),
		NumeroPessoas: intPtr(0),
		Status:        strPtr("Confirmada"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, a.NumeroPessoas)
	assert.Equal(t, 100.0, a.ValorTotal)
	assert.Equal(t, "confirmadas", a.Status)
}

func TestCreateAgendamentoRejectsBadInput(t *testing.T) {
	uc := NewCreateAgendamento(newFakeRepo(), fakeColumns{ids: map[string]bool{"vip": true}}, nil, 30)
	ctx := context.Background()

	cases := []struct {
		name string
		in   AgendamentoInput
		code string
	}{
		{"missing tour", AgendamentoInput{DataPasseio: strPtr("2025-06-10")}, "passeio_required"},
		{"unknown tour", AgendamentoInput{PasseioID: strPtr("x"), DataPasseio: strPtr("2025-06-10")}, "passeio_not_found"},
		{"missing date", AgendamentoInput{PasseioID: strPtr("tour-1")}, "data_required"},
		{"bad date", AgendamentoInput{PasseioID: strPtr("tour-1"), DataPasseio: strPtr("10/06/2025")}, "invalid_date"},
		{"unknown status", AgendamentoInput{PasseioID: strPtr("tour-1"), DataPasseio: strPtr("2025-06-10"), Status: strPtr("arquivado")}, "invalid_status"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tc.in)
			assert.True(t, httperr.IsBusiness(err, tc.code), "got %v", err)
		})
	}

	a, err := uc.Execute(ctx, AgendamentoInput{PasseioID: strPtr("tour-1"), DataPasseio: strPtr("2025-06-10"), Status: strPtr("vip")})
	require.NoError(t, err)
	assert.Equal(t, "vip", a.Status, "custom column ids are valid statuses")
}

func TestUpdateAgendamentoKeepsSnapshotUnlessPricingChanges(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()
	created, err := NewCreateAgendamento(repo, fakeColumns{}, nil, 30).Execute(ctx, AgendamentoInput{
		PasseioID: strPtr("tour-1"), DataPasseio: strPtr("2025-06-10"), NumeroPessoas: intPtr(2),
	})
	require.NoError(t, err)

	repo.passeios["tour-1"].Preco = 999
	uc := NewUpdateAgendamento(repo, fakeColumns{}, nil)

	a, err := uc.Execute(ctx, created.ID, AgendamentoInput{Observacoes: strPtr("levar protetor")})
	require.NoError(t, err)
	assert.Equal(t, 200.0, a.ValorTotal, "price change does not touch existing bookings")
	assert.Equal(t, "levar protetor", *a.Observacoes)

	a, err = uc.Execute(ctx, created.ID, AgendamentoInput{PasseioID: strPtr("tour-2")})
	require.NoError(t, err)
	assert.Equal(t, 500.0, a.ValorTotal)
	assert.Equal(t, 150.0, a.ValorComissao)

	a, err = uc.Execute(ctx, created.ID, AgendamentoInput{PercentualComissao: func() *float64 { v := 10.0; return &v }()})
	require.NoError(t, err)
	assert.Equal(t, 50.0, a.ValorComissao)

	_, err = uc.Execute(ctx, "missing", AgendamentoInput{})
	assert.True(t, httperr.IsBusiness(err, "agendamento_not_found"))
}

func TestDeleteAgendamento(t *testing.T) {
	repo := newFakeRepo()
	repo.agendamentos["a1"] = &models.Agendamento{ID: "a1"}
	uc := NewDeleteAgendamento(repo, nil)

	require.NoError(t, uc.Execute(context.Background(), "a1", nil))
	err := uc.Execute(context.Background(), "a1", nil)
	assert.True(t, httperr.IsBusiness(err, "agendamento_not_found"))
}

func TestListAgendamentosMonthFilter(t *testing.T) {
	repo := newFakeRepo()
	uc := NewListAgendamentos(repo)

	rows, err := uc.Execute(context.Background(), ListAgendamentosInput{Month: "2024-02", Status: "cancelado"})
	require.NoError(t, err)
	assert.NotNil(t, rows)

	assert.Equal(t, domain.StatusCanceladas, repo.lastFilter.Status)
	assert.Equal(t, "2024-02-01", repo.lastFilter.From.Format("2006-01-02"))
	assert.Equal(t, "2024-02-29", repo.lastFilter.To.Format("2006-01-02"))

	_, err = uc.Execute(context.Background(), ListAgendamentosInput{Month: "fev"})
	assert.True(t, httperr.IsBusiness(err, "invalid_month"))
}
