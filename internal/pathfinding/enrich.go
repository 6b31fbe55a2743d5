package pathfinding

import (
	"github.com/google/uuid"

	"github.com/redmage123/course-creator-sub021/internal/domain"
)

// PathSummary is the enriched result returned for a learning path.
type PathSummary struct {
	Path                  []string `json:"path"`
	TotalCourses          int      `json:"total_courses"`
	TotalDuration         float64  `json:"total_duration"`
	DifficultyProgression []string `json:"difficulty_progression"`
	StartDifficulty       string   `json:"start_difficulty,omitempty"`
	EndDifficulty         string   `json:"end_difficulty,omitempty"`
	HasDifficultyJump     bool     `json:"has_difficulty_jump"`
}

// Summarize enriches a raw path with aggregate duration and difficulty
// metadata. Missing node properties fall back to safe defaults: duration 0,
// difficulty intermediate.
func Summarize(path []uuid.UUID, props domain.NodeProperties) *PathSummary {
	summary := &PathSummary{
		Path:                  make([]string, len(path)),
		TotalCourses:          len(path),
		DifficultyProgression: make([]string, len(path)),
	}

	for i, id := range path {
		summary.Path[i] = id.String()
		if duration := props[id].Duration; duration != nil {
			summary.TotalDuration += *duration
		}
		summary.DifficultyProgression[i] = difficultyLabel(props, id)
	}

	if len(summary.DifficultyProgression) > 0 {
		summary.StartDifficulty = summary.DifficultyProgression[0]
		summary.EndDifficulty = summary.DifficultyProgression[len(summary.DifficultyProgression)-1]
	}

	summary.HasDifficultyJump = hasDifficultyJump(summary.DifficultyProgression)
	return summary
}

// hasDifficultyJump reports whether any pair of consecutive difficulties
// differs by more than one level. Only adjacent pairs are checked.
func hasDifficultyJump(progression []string) bool {
	for i := 1; i < len(progression); i++ {
		previous := DifficultyLevel(progression[i-1])
		current := DifficultyLevel(progression[i])
		if diff := current - previous; diff > 1 || diff < -1 {
			return true
		}
	}
	return false
}
