package kanban

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/BruksfildServices01/essentia-tours/internal/domain/booking"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
)

const (
	NovoColumnID      = "novo"
	DefaultColor      = "gray"
	DefaultOrderIndex = 99
	newColumnPrefix   = "new_"
)

type ColumnRepository interface {
	ListActive(ctx context.Context) ([]models.KanbanColumn, error)
	Get(ctx context.Context, id string) (*models.KanbanColumn, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, c *models.KanbanColumn) error
	Update(ctx context.Context, c *models.KanbanColumn) error
	Delete(ctx context.Context, id string) (bool, error)
}

// IsNewColumnID reports whether id is a placeholder minted by the board for
// a column that has not been saved yet.
func IsNewColumnID(id string) bool {
	return id == "" || strings.Contains(id, newColumnPrefix)
}

var (
	spaces  = regexp.MustCompile(`\s+`)
	invalid = regexp.MustCompile(`[^a-z0-9_]`)
)

// Slugify turns a column title into the status id stored on bookings:
// "Aguardando Pagamento" -> "aguardando_pagamento".
func Slugify(title string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, title)
	if err != nil {
		folded = title
	}

	s := strings.ToLower(strings.TrimSpace(folded))
	s = spaces.ReplaceAllString(s, "_")
	return invalid.ReplaceAllString(s, "")
}

// IsAllowedStatus reports whether s may be written to a board item: a
// canonical booking status, "novo" for leads, or the id of a persisted column.
func IsAllowedStatus(
	ctx context.Context,
	columns ColumnRepository,
	s booking.Status,
	isLead bool,
) (bool, error) {

	if s == "" {
		return false, nil
	}
	if booking.IsBookingStatus(s) {
		return true, nil
	}
	if isLead && s == booking.StatusNovo {
		return true, nil
	}
	return columns.Exists(ctx, string(s))
}
