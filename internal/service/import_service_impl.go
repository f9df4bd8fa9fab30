package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/huddle/internal/contract"
	"github.com/alexanderramin/huddle/internal/db"
	"github.com/alexanderramin/huddle/internal/importer"
	"github.com/alexanderramin/huddle/internal/repository"
)

type importService struct {
	games    repository.GameRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(games repository.GameRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		games:    games,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) Import(ctx context.Context, req contract.ImportRequest) (*contract.ImportResult, error) {
	ds, err := importer.LoadDataset(req.Path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportDataset(ctx, ds, req.Replace)
}

// ImportDataset validates ds and writes it in one transaction. With replace
// set, every stored game and play is deleted first.
func (s *importService) ImportDataset(ctx context.Context, ds *importer.Dataset, replace bool) (result *contract.ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"games":   len(ds.Games),
		"plays":   len(ds.Plays),
		"replace": replace,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	var lookupErr error
	var stored importer.StoredGameFunc
	if !replace {
		stored = func(id string) bool {
			ok, err := s.games.Exists(ctx, id)
			if err != nil && lookupErr == nil {
				lookupErr = err
			}
			return ok
		}
	}

	errs := importer.ValidateDataset(ds, stored)
	if lookupErr != nil {
		return nil, fmt.Errorf("checking stored games: %w", lookupErr)
	}
	if len(errs) > 0 {
		fields["validation_errors"] = len(errs)
		return nil, importer.ValidationError(errs)
	}

	converted := importer.Convert(ds)
	result = &contract.ImportResult{
		GameCount: len(converted.Games),
		PlayCount: len(converted.Plays),
		Replaced:  replace,
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txGames := repository.NewSQLiteGameRepo(tx)
		txPlays := repository.NewSQLitePlayRepo(tx)

		if replace {
			if err := txPlays.DeleteAll(ctx); err != nil {
				return err
			}
			if err := txGames.DeleteAll(ctx); err != nil {
				return err
			}
		}

		for _, g := range converted.Games {
			if err := txGames.Create(ctx, g); err != nil {
				return fmt.Errorf("creating game %s: %w", g.ID, err)
			}
		}
		for i, p := range converted.Plays {
			if err := txPlays.Create(ctx, p); err != nil {
				return fmt.Errorf("creating play %d: %w", i, err)
			}
		}

		var err error
		if result.TotalGames, err = txGames.Count(ctx); err != nil {
			return err
		}
		result.TotalPlays, err = txPlays.Count(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
