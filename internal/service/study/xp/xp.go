// Package xp implements the experience-point and level model.
// All functions are pure: the same inputs always give the same outputs.
package xp

import (
	"time"

	"github.com/heartmarshall/studybuddy/internal/domain"
)

// PointsPerLevel is the XP span of a single level.
const PointsPerLevel = 100

// Session bonus terms.
const (
	PointsPerStudiedCard   = 2
	AccuracyBonus          = 10
	AccuracyBonusMinimum   = 0.80
	LongSessionBonus       = 5
	LongSessionMinDuration = 600 * time.Second
)

// LevelOf returns the level reached with xp points. Negative xp counts as zero.
func LevelOf(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/PointsPerLevel + 1
}

// Progress returns the points earned inside the current level. With a level
// span of 100 it is also the percentage towards the next level.
func Progress(xp int) int {
	if xp < 0 {
		return 0
	}
	return xp % PointsPerLevel
}

// ToNextLevel returns the points still needed to reach the next level.
func ToNextLevel(xp int) int {
	return PointsPerLevel - Progress(xp)
}

// Award adds amount to the stats and recomputes the level. A level-up event
// is returned when the new level is above current.Level. Negative amounts
// are treated as zero.
func Award(current domain.UserStats, amount int, reason string) (domain.UserStats, *domain.LevelUpEvent) {
	if amount < 0 {
		amount = 0
	}

	next := current
	next.XP = current.XP + amount
	next.Level = LevelOf(next.XP)

	if next.Level <= current.Level {
		return next, nil
	}
	return next, &domain.LevelUpEvent{
		PreviousLevel: current.Level,
		Level:         next.Level,
		Reason:        reason,
	}
}

// Normalize returns stats with the level recomputed from XP.
func Normalize(stats domain.UserStats) domain.UserStats {
	if stats.XP < 0 {
		stats.XP = 0
	}
	stats.Level = LevelOf(stats.XP)
	return stats
}

// SessionBonus returns the XP granted when a session ends.
func SessionBonus(cardsStudied int, accuracy float64, elapsed time.Duration) int {
	points := cardsStudied * PointsPerStudiedCard
	if accuracy >= AccuracyBonusMinimum {
		points += AccuracyBonus
	}
	if elapsed >= LongSessionMinDuration {
		points += LongSessionBonus
	}
	return points
}

// Accuracy returns correct/studied, or 0 when nothing was studied.
func Accuracy(correct, studied int) float64 {
	if studied <= 0 {
		return 0
	}
	return float64(correct) / float64(studied)
}
