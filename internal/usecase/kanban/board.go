package kanban

import (
	"context"

	domain "github.com/BruksfildServices01/essentia-tours/internal/domain/kanban"
)

type GetBoard struct {
	reader domain.Reader
}

func NewGetBoard(reader domain.Reader) *GetBoard {
	return &GetBoard{reader: reader}
}

func (uc *GetBoard) Execute(ctx context.Context) (*domain.Board, error) {
	snap, err := uc.reader.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	board := domain.BuildBoard(snap)
	return &board, nil
}
