package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/huddle/internal/contract"
	"github.com/alexanderramin/huddle/internal/repository"
)

type statsService struct {
	games    repository.GameRepo
	plays    repository.PlayRepo
	baseline BaselineSource
}

func NewStatsService(games repository.GameRepo, plays repository.PlayRepo, baseline BaselineSource) StatsService {
	return &statsService{games: games, plays: plays, baseline: baseline}
}

func (s *statsService) Stats(ctx context.Context) (*contract.StoreStats, error) {
	games, err := s.games.Count(ctx)
	if err != nil {
		return nil, err
	}
	plays, err := s.plays.Count(ctx)
	if err != nil {
		return nil, err
	}
	baseline, err := s.baseline.LeagueBaseline(ctx)
	if err != nil {
		return nil, fmt.Errorf("league baseline: %w", err)
	}
	return &contract.StoreStats{Games: games, Plays: plays, Baseline: baseline}, nil
}
