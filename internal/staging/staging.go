// Package staging provides the durable intermediate buffer submission
// ingestion writes each fetched page into before the final relational
// commit. Rows are appended per contest; a contest is trusted only once its
// done marker is set, otherwise its staged rows are wiped and the contest is
// refetched from offset zero.
package staging

import (
	"context"

	"cfachievements/internal/models"
)

type Store interface {
	// Append adds one page of rows to the contest's buffer.
	Append(ctx context.Context, contestID int, rows []models.Submission) error
	// Count returns the number of staged rows for the contest.
	Count(ctx context.Context, contestID int) (int64, error)
	// Load returns all staged rows for the contest in append order.
	Load(ctx context.Context, contestID int) ([]models.Submission, error)
	// MarkDone records that the last page for the contest was fetched.
	MarkDone(ctx context.Context, contestID int) error
	// Done reports whether the contest's buffer is complete.
	Done(ctx context.Context, contestID int) (bool, error)
	// Wipe removes the contest's rows and done marker.
	Wipe(ctx context.Context, contestID int) error
}
