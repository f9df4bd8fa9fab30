package service

import (
	"context"

	"github.com/alexanderramin/huddle/internal/contract"
	"github.com/alexanderramin/huddle/internal/importer"
)

// AskService answers one free-text question. Query failures degrade into
// empty results and diagnostics on the response; the returned error is
// reserved for a cancelled context.
type AskService interface {
	Ask(ctx context.Context, req contract.AskRequest) (*contract.AskResponse, error)
}

type StatsService interface {
	Stats(ctx context.Context) (*contract.StoreStats, error)
}

type ImportService interface {
	Import(ctx context.Context, req contract.ImportRequest) (*contract.ImportResult, error)
	ImportDataset(ctx context.Context, ds *importer.Dataset, replace bool) (*contract.ImportResult, error)
}

// BaselineSource supplies the league-wide mean EPA.
type BaselineSource interface {
	LeagueBaseline(ctx context.Context) (float64, error)
}
