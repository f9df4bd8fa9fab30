package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/huddle/internal/analytics"
	"github.com/alexanderramin/huddle/internal/contract"
	"github.com/alexanderramin/huddle/internal/intelligence"
	"github.com/alexanderramin/huddle/internal/repository"
	"github.com/google/uuid"
)

const (
	diagDatabaseError = "Error técnico en la base de datos: %v"
	diagBaselineError = "No se pudo calcular el promedio de la liga: %v"
)

type askService struct {
	games    repository.GameRepo
	plays    repository.PlayRepo
	baseline BaselineSource
	observer UseCaseObserver
}

func NewAskService(
	games repository.GameRepo,
	plays repository.PlayRepo,
	baseline BaselineSource,
	observers ...UseCaseObserver,
) AskService {
	return &askService{
		games:    games,
		plays:    plays,
		baseline: baseline,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *askService) Ask(ctx context.Context, req contract.AskRequest) (resp *contract.AskResponse, err error) {
	startedAt := time.Now().UTC()
	requestID := uuid.New().String()
	fields := map[string]any{"request_id": requestID}
	// queryErr is logged but never returned; the response degrades instead.
	var queryErr error
	defer func() {
		observed := err
		if observed == nil {
			observed = queryErr
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "ask",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   observed == nil,
			Err:       observed,
			Fields:    fields,
		})
	}()

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	rec := intelligence.Extract(req.Question)
	plan := intelligence.Dispatch(rec)
	fields["plan"] = string(plan.Kind)
	fields["teams"] = rec.Teams

	resp = &contract.AskResponse{
		RequestID: requestID,
		Question:  req.Question,
		Record:    rec,
		Plan:      plan,
	}

	switch plan.Kind {
	case intelligence.PlanHistorical:
		queryErr = s.answerHistorical(ctx, resp)
	case intelligence.PlanTactical:
		queryErr = s.answerTactical(ctx, resp)
	default:
		resp.Outcome = contract.OutcomeFallback
		resp.Help = intelligence.FallbackHelp(req.Question)
	}
	fields["outcome"] = string(resp.Outcome)
	return resp, nil
}

// answerHistorical fails closed silently: a query error leaves the response
// empty without a diagnostic.
func (s *askService) answerHistorical(ctx context.Context, resp *contract.AskResponse) error {
	games, err := s.games.RecentResults(ctx, *resp.Plan.Historical)
	if err != nil {
		resp.Outcome = contract.OutcomeNoResults
		return fmt.Errorf("historical query: %w", err)
	}
	if len(games) == 0 {
		resp.Outcome = contract.OutcomeNoResults
		return nil
	}
	resp.Outcome = contract.OutcomeHistorical
	resp.Games = games
	return nil
}

// answerTactical fails closed and surfaces the database error to the user.
// A baseline failure still shows the metrics, compared against 0.
func (s *askService) answerTactical(ctx context.Context, resp *contract.AskResponse) error {
	rows, err := s.plays.Tactical(ctx, *resp.Plan.Tactical)
	if err != nil {
		resp.Outcome = contract.OutcomeNoResults
		resp.Diagnostics = append(resp.Diagnostics, fmt.Sprintf(diagDatabaseError, err))
		return fmt.Errorf("tactical query: %w", err)
	}
	if len(rows) == 0 {
		resp.Outcome = contract.OutcomeNoResults
		return nil
	}

	league, berr := s.baseline.LeagueBaseline(ctx)
	if berr != nil {
		league = 0
		resp.Diagnostics = append(resp.Diagnostics, fmt.Sprintf(diagBaselineError, berr))
	}

	summary := analytics.Summarize(rows, league)
	resp.Outcome = contract.OutcomeTactical
	resp.Summary = &summary
	if berr != nil {
		return fmt.Errorf("league baseline: %w", berr)
	}
	return nil
}
