package database

// Repos bundles one repository per entity over a shared connection.
type Repos struct {
	Users         *UserRepository
	Contests      *ContestRepository
	Problems      *ProblemRepository
	Standings     *StandingsRepository
	Hacks         *HackRepository
	RatingChanges *RatingChangeRepository
	Submissions   *SubmissionRepository
}

func NewRepos(db *GormDB) *Repos {
	return &Repos{
		Users:         NewUserRepository(db),
		Contests:      NewContestRepository(db),
		Problems:      NewProblemRepository(db),
		Standings:     NewStandingsRepository(db),
		Hacks:         NewHackRepository(db),
		RatingChanges: NewRatingChangeRepository(db),
		Submissions:   NewSubmissionRepository(db),
	}
}
