package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/console"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

type statsRepository interface {
	Load(ctx context.Context) (*entity.Stats, error)
	Save(ctx context.Context, stats *entity.Stats) error
}

type botService interface {
	MakeTurn(match *entity.Match) (int, error)
}

type hintService interface {
	Advise(match *entity.Match) (*service.Hint, error)
}

// gameConsole is the narrow output/input surface the session needs; the match
// loop and move selection stay free of presentation concerns behind it.
type gameConsole interface {
	Intro(stats *entity.Stats)
	ConfigIntro(stats *entity.Stats)
	ConfigSummary(match *entity.Match, humanStarts bool)
	PromptSymbol() (string, error)
	PromptMoveFirst(defaultFirst bool) (bool, error)
	PromptDifficulty() (entity.Difficulty, error)
	PromptPlayAgain() (bool, error)
	PromptMove(match *entity.Match) (console.MoveInput, error)
	RenderBoard(match *entity.Match)
	RoundStarted()
	SystemMove(mark string, cell int)
	ShowHint(hint *service.Hint)
	HintUnavailable()
	Outcome(status string)
	Scoreboard(stats *entity.Stats)
	FinalScoreboard(stats *entity.Stats)
	Goodbye()
	Warn(message string)
}

// Session drives the whole sitting: load stats, loop over configured rounds,
// record and persist outcomes, and always attempt a final save on the way out.
type Session struct {
	logger *slog.Logger

	statsRepo statsRepository
	bot       botService
	hint      hintService
	ui        gameConsole

	stats *entity.Stats
}

func NewSession(logger *slog.Logger, statsRepo statsRepository, bot botService, hint hintService, ui gameConsole) *Session {
	return &Session{
		logger: logger.With("component", "session"),

		statsRepo: statsRepo,
		bot:       bot,
		hint:      hint,
		ui:        ui,
	}
}

// Run - executes the session loop until the player quits, declines another
// round or the context is canceled. Only apperror.ErrQuitGame unwinds past a
// round; every other round-level error is logged and the loop continues.
func (that *Session) Run(ctx context.Context) error {
	stats, err := that.statsRepo.Load(ctx)
	if err != nil {
		that.logger.Warn("could not load stats", "error", err)
		that.ui.Warn(fmt.Sprintf("Could not load previous stats (%v)!\nStarting fresh...", err))
	}
	that.stats = stats

	that.ui.Intro(that.stats)

	for ctx.Err() == nil {
		match, err := that.configure()
		if errors.Is(err, apperror.ErrQuitGame) {
			break
		}

		if err != nil {
			that.logger.Error("configuration failed", "error", err)
			continue
		}

		err = that.playRound(ctx, match)
		if errors.Is(err, apperror.ErrQuitGame) {
			break
		}

		if err != nil {
			that.logger.Error("round failed", "match_id", match.ID, "error", err)
			that.ui.Warn(fmt.Sprintf("An unexpected error occurred: %v", err))
			continue
		}

		that.ui.Outcome(match.Status)
		that.recordOutcome(match)
		that.saveStats(ctx)
		that.ui.Scoreboard(that.stats)

		again, err := that.ui.PromptPlayAgain()
		if errors.Is(err, apperror.ErrQuitGame) {
			break
		}

		if err != nil {
			return fmt.Errorf("failed to prompt play again: %w", err)
		}

		if !again {
			that.ui.FinalScoreboard(that.stats)
			break
		}
	}

	that.saveStats(ctx)
	that.ui.Goodbye()

	return nil
}

// configure - gathers the round configuration from the player.
func (that *Session) configure() (*entity.Match, error) {
	that.ui.ConfigIntro(that.stats)

	humanMark, err := that.ui.PromptSymbol()
	if err != nil {
		return nil, err
	}

	humanStarts, err := that.ui.PromptMoveFirst(humanMark == entity.MarkX)
	if err != nil {
		return nil, err
	}

	difficulty, err := that.ui.PromptDifficulty()
	if err != nil {
		return nil, err
	}

	match := entity.NewMatch(humanMark, humanStarts, difficulty)
	that.ui.ConfigSummary(match, humanStarts)

	that.logger.Info("round configured",
		"match_id", match.ID,
		"human_mark", match.HumanMark,
		"difficulty", match.Difficulty,
		"human_starts", humanStarts,
	)

	return match, nil
}

// playRound - runs one round to a terminal state, alternating human input and
// system moves.
func (that *Session) playRound(ctx context.Context, match *entity.Match) error {
	match.ResetBoard()
	that.ui.RoundStarted()
	that.ui.RenderBoard(match)

	for !match.IsFinished() {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %w", apperror.ErrQuitGame, ctx.Err())
		}

		switch match.Status {
		case entity.StatusAwaitingHuman:
			if err := that.humanTurn(match); err != nil {
				return err
			}
		case entity.StatusAwaitingSystem:
			if err := that.systemTurn(match); err != nil {
				return err
			}
		}
	}

	return nil
}

func (that *Session) humanTurn(match *entity.Match) error {
	input, err := that.ui.PromptMove(match)
	if err != nil {
		return err
	}

	if input.Hint {
		that.adviseHint(match)
		return nil
	}

	if err = tictactoe.MakeTurn(match, match.HumanMark, input.Cell); err != nil {
		return fmt.Errorf("human turn failed: %w", err)
	}

	if match.IsFinished() {
		that.ui.RenderBoard(match)
	}

	return nil
}

func (that *Session) systemTurn(match *entity.Match) error {
	cell, err := that.bot.MakeTurn(match)
	if err != nil {
		return fmt.Errorf("system turn failed: %w", err)
	}

	that.ui.SystemMove(match.SystemMark, cell)
	that.ui.RenderBoard(match)

	return nil
}

func (that *Session) adviseHint(match *entity.Match) {
	hint, err := that.hint.Advise(match)
	if err != nil {
		that.logger.Warn("hint unavailable", "match_id", match.ID, "error", err)
		that.ui.HintUnavailable()
		return
	}

	that.ui.ShowHint(hint)
}

func (that *Session) recordOutcome(match *entity.Match) {
	switch match.Status {
	case entity.StatusHumanWon:
		that.stats.RecordWin()
	case entity.StatusSystemWon:
		that.stats.RecordLoss()
	case entity.StatusTie:
		that.stats.RecordTie()
	}

	that.logger.Info("round finished", "match_id", match.ID, "outcome", match.Status)
}

// saveStats - persists the scoreboard; write failures are reported but never
// end the session.
func (that *Session) saveStats(ctx context.Context) {
	if err := that.statsRepo.Save(ctx, that.stats); err != nil {
		that.logger.Warn("could not save stats", "error", err)
		that.ui.Warn(fmt.Sprintf("Failed to save stats (%v). Your progress may not persist!", err))
	}
}
