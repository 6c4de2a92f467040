// Package rules defines the achievement catalogue. Rules are registered
// explicitly, file by file, so startup order is deterministic; each rule
// closes over the read-only repositories it queries.
package rules

import (
	"context"

	"cfachievements/internal/achievement"
	"cfachievements/internal/database"
)

// RegisterAll populates the registry with every rule in catalogue order.
func RegisterAll(ctx context.Context, reg *achievement.Registry, repos *database.Repos) {
	registerContribution(ctx, reg, repos.Users)
	registerHacks(ctx, reg, repos.Hacks)
	registerProfile(ctx, reg, repos.Users)
	registerRanks(ctx, reg, repos.Users)
	registerRating(ctx, reg, repos.RatingChanges)
	registerSystests(ctx, reg, repos.Submissions)
	registerWinners(ctx, reg, repos.Standings)
}
