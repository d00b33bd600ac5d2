package usecase

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/driveline/autosales-service/internal/domain"
	"go.uber.org/zap"
)

type GoalUsecase interface {
	ComputeMonthlyProgress(ownerID string, goal domain.SalesGoal) (*domain.GoalProgress, error)
	MotivationalMessage(unitsProgressPct float64) string
}

type DefaultGoalUsecase struct {
	SaleRepo domain.SaleRepository
	Logger   *zap.Logger
}

func NewDefaultGoalUsecase(saleRepo domain.SaleRepository, logger *zap.Logger) *DefaultGoalUsecase {
	return &DefaultGoalUsecase{
		SaleRepo: saleRepo,
		Logger:   logger,
	}
}

// ComputeMonthlyProgress folds the goal month's sales into progress figures.
// The returned percentages are uncapped; callers cap them for display via
// GoalProgress.Display.
func (uc *DefaultGoalUsecase) ComputeMonthlyProgress(ownerID string, goal domain.SalesGoal) (*domain.GoalProgress, error) {
	from := time.Date(goal.Year, goal.Month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	sales, err := uc.SaleRepo.GetSalesByPeriod(ownerID, from, to)
	if err != nil {
		return nil, err
	}

	progress := domain.ComputeGoalProgress(sales, goal)
	return &progress, nil
}

var behindMessages = []string{
	"Keep pushing! Every sale brings you closer to your goal.",
	"Small steps lead to big achievements. Stay focused!",
	"Your breakthrough is just around the corner!",
	"Success is built one customer at a time. Keep going!",
	"You've got this! Time to kick it into high gear.",
	"Every champion faced challenges. This is your moment to shine!",
	"Your potential is unlimited. Let's make it happen!",
	"Today's efforts are tomorrow's victories.",
	"Believe in yourself. Your next big sale is coming!",
	"Challenges are opportunities in disguise. Seize them!",
}

var onTrackMessages = []string{
	"You're in the zone! Keep that momentum going!",
	"Perfect pace! You're right where you need to be.",
	"Consistency wins the race. You're proving it!",
	"Your dedication is paying off. Stay the course!",
	"You've found your rhythm. Keep it up!",
	"This is what success looks like. Well done!",
	"You're making it happen! Stay focused!",
	"Great work maintaining your pace!",
	"You're showing what you're capable of!",
	"Keep this energy going! You're doing great!",
}

var exceedingMessages = []string{
	"Outstanding performance! You're crushing it!",
	"You're not just meeting goals, you're setting new standards!",
	"Phenomenal work! You're in a league of your own!",
	"Unstoppable! Your success is inspiring others!",
	"You're redefining what's possible! Amazing work!",
	"Excellence personified! Keep soaring higher!",
	"You're proving that limits are just suggestions!",
	"Extraordinary achievement! You're on fire!",
	"Top-tier performance! You're making history!",
	"Legendary status achieved! Keep breaking records!",
}

// MotivationalMessage pairs a random band message with the milestone label
// for the units percentage.
func (uc *DefaultGoalUsecase) MotivationalMessage(unitsProgressPct float64) string {
	var pool []string
	switch domain.BandFor(unitsProgressPct) {
	case domain.BandExceeding:
		pool = exceedingMessages
	case domain.BandOnTrack:
		pool = onTrackMessages
	default:
		pool = behindMessages
	}

	return fmt.Sprintf("%s (%s)", pool[rand.Intn(len(pool))], domain.Milestone(unitsProgressPct))
}
