package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/redmage123/course-creator-sub021/internal/domain"
)

// Generator produces synthetic course catalogs aligned with the path engine
// schema. Courses are laid out in difficulty tiers and prerequisites point
// from easier tiers towards harder ones, so generated graphs are acyclic and
// every strategy has meaningful work to do.
type Generator struct {
	cfg       Config
	rand      *rand.Rand
	fragments titleFragments
}

// New returns a configured Generator instance.
func New(cfg Config) *Generator {
	if cfg.NumCourses <= 0 {
		cfg.NumCourses = DefaultConfig().NumCourses
	}
	if cfg.EdgesPerCourse <= 0 {
		cfg.EdgesPerCourse = DefaultConfig().EdgesPerCourse
	}
	if cfg.SkipTierChance <= 0 {
		cfg.SkipTierChance = DefaultConfig().SkipTierChance
	}
	if cfg.UnweightedChance <= 0 {
		cfg.UnweightedChance = DefaultConfig().UnweightedChance
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return &Generator{
		cfg:       cfg,
		rand:      rand.New(rand.NewSource(cfg.Seed)),
		fragments: defaultTitleFragments(),
	}
}

var tierOrder = []string{
	domain.DifficultyBeginner,
	domain.DifficultyIntermediate,
	domain.DifficultyAdvanced,
	domain.DifficultyExpert,
}

// Generate synthesises a course catalog. It respects context cancellation.
func (g *Generator) Generate(ctx context.Context) (domain.Catalog, error) {
	tiers := make([][]string, len(tierOrder))
	courses := make([]domain.Course, 0, g.cfg.NumCourses)

	for i := 0; i < g.cfg.NumCourses; i++ {
		if err := ctx.Err(); err != nil {
			return domain.Catalog{}, err
		}

		// Front-load the easier tiers so most paths start shallow.
		tier := g.randomTier()
		id := uuid.NewString()
		tiers[tier] = append(tiers[tier], id)

		courses = append(courses, domain.Course{
			ID:         id,
			Title:      g.randomTitle(tier),
			Difficulty: tierOrder[tier],
			Duration:   float64(15 + g.rand.Intn(10)*15),
			Topics:     g.randomTopics(),
		})
	}

	prereqs := make([]domain.Prerequisite, 0, g.cfg.NumCourses*g.cfg.EdgesPerCourse)
	for tier := 0; tier < len(tiers)-1; tier++ {
		for _, sourceID := range tiers[tier] {
			if err := ctx.Err(); err != nil {
				return domain.Catalog{}, err
			}

			targetTier := tier + 1
			if targetTier < len(tiers)-1 && g.rand.Float64() < g.cfg.SkipTierChance {
				targetTier++
			}
			targets := tiers[targetTier]
			if len(targets) == 0 {
				continue
			}

			count := 1 + g.rand.Intn(g.cfg.EdgesPerCourse)
			seen := make(map[string]bool, count)
			for i := 0; i < count; i++ {
				targetID := targets[g.rand.Intn(len(targets))]
				if seen[targetID] {
					continue
				}
				seen[targetID] = true

				prereq := domain.Prerequisite{
					SourceID: sourceID,
					TargetID: targetID,
				}
				if g.rand.Float64() >= g.cfg.UnweightedChance {
					weight := 1 + g.rand.Float64()*4
					prereq.Weight = &weight
				}
				prereqs = append(prereqs, prereq)
			}
		}
	}

	return domain.Catalog{Courses: courses, Prerequisites: prereqs}, nil
}

func (g *Generator) randomTier() int {
	roll := g.rand.Float64()
	switch {
	case roll < 0.35:
		return 0
	case roll < 0.70:
		return 1
	case roll < 0.90:
		return 2
	default:
		return 3
	}
}

func (g *Generator) randomTitle(tier int) string {
	subject := g.fragments.subjects[g.rand.Intn(len(g.fragments.subjects))]
	qualifier := g.fragments.qualifiers[tier][g.rand.Intn(len(g.fragments.qualifiers[tier]))]
	return fmt.Sprintf("%s %s", qualifier, subject)
}

func (g *Generator) randomTopics() []string {
	count := 1 + g.rand.Intn(3)
	topics := make([]string, 0, count)
	seen := make(map[string]bool, count)
	for i := 0; i < count; i++ {
		topic := g.fragments.topics[g.rand.Intn(len(g.fragments.topics))]
		if seen[topic] {
			continue
		}
		seen[topic] = true
		topics = append(topics, topic)
	}
	return topics
}

type titleFragments struct {
	subjects   []string
	qualifiers [][]string
	topics     []string
}

func defaultTitleFragments() titleFragments {
	return titleFragments{
		subjects: []string{
			"Python", "Go", "SQL", "Statistics", "Machine Learning", "Web Development",
			"Data Engineering", "Cloud Architecture", "Kubernetes", "Linear Algebra",
			"Distributed Systems", "API Design", "Security", "Databases",
		},
		qualifiers: [][]string{
			{"Introduction to", "Getting Started with", "Foundations of"},
			{"Practical", "Applied", "Working with"},
			{"Advanced", "Scaling", "Optimizing"},
			{"Mastering", "Architecting", "Internals of"},
		},
		topics: []string{
			"programming", "data", "infrastructure", "mathematics", "web",
			"devops", "databases", "security", "ml",
		},
	}
}
