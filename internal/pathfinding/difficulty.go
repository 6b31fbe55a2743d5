package pathfinding

import (
	"github.com/google/uuid"

	"github.com/redmage123/course-creator-sub021/internal/domain"
)

// difficultyLevels is the 4-level integer encoding shared by the easiest
// heuristic and difficulty-jump detection.
var difficultyLevels = map[string]int{
	domain.DifficultyBeginner:     1,
	domain.DifficultyIntermediate: 2,
	domain.DifficultyAdvanced:     3,
	domain.DifficultyExpert:       4,
}

const defaultDifficultyLevel = 2 // intermediate

// DifficultyLevel maps a difficulty label to its integer encoding. Absent or
// unrecognised labels map to the intermediate level.
func DifficultyLevel(label string) int {
	if level, ok := difficultyLevels[label]; ok {
		return level
	}
	return defaultDifficultyLevel
}

// difficultyLabel resolves the label to show for a node, defaulting to
// intermediate when the node has no difficulty property. Unrecognised labels
// pass through unchanged; only the integer encoding normalises them.
func difficultyLabel(props domain.NodeProperties, id uuid.UUID) string {
	if label := props[id].Difficulty; label != "" {
		return label
	}
	return domain.DifficultyIntermediate
}
