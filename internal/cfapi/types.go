package cfapi

// Wire types for the upstream API. Field names follow the JSON the API
// returns; decoding to stable integer codes happens in the fetchers.

type RatedUser struct {
	Handle                  string `json:"handle"`
	Contribution            int    `json:"contribution"`
	Rank                    string `json:"rank"`
	Rating                  int    `json:"rating"`
	MaxRank                 string `json:"maxRank"`
	MaxRating               int    `json:"maxRating"`
	LastOnlineTimeSeconds   int64  `json:"lastOnlineTimeSeconds"`
	RegistrationTimeSeconds int64  `json:"registrationTimeSeconds"`
	FriendOfCount           int    `json:"friendOfCount"`
}

type Contest struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Phase            string `json:"phase"`
	StartTimeSeconds int64  `json:"startTimeSeconds"`
}

type Member struct {
	Handle string `json:"handle"`
}

type Party struct {
	ContestID       int      `json:"contestId"`
	Members         []Member `json:"members"`
	ParticipantType string   `json:"participantType"`
	Ghost           bool     `json:"ghost"`
}

type Problem struct {
	ContestID int      `json:"contestId"`
	Index     string   `json:"index"`
	Name      string   `json:"name"`
	Rating    *int     `json:"rating"`
	Tags      []string `json:"tags"`
}

type ProblemResult struct {
	Points                    float64 `json:"points"`
	Penalty                   int     `json:"penalty"`
	RejectedAttemptCount      int     `json:"rejectedAttemptCount"`
	BestSubmissionTimeSeconds int     `json:"bestSubmissionTimeSeconds"`
}

type RanklistRow struct {
	Party                 Party           `json:"party"`
	Rank                  int             `json:"rank"`
	Points                float64         `json:"points"`
	Penalty               int             `json:"penalty"`
	SuccessfulHackCount   int             `json:"successfulHackCount"`
	UnsuccessfulHackCount int             `json:"unsuccessfulHackCount"`
	ProblemResults        []ProblemResult `json:"problemResults"`
}

type Standings struct {
	Contest  Contest       `json:"contest"`
	Problems []Problem     `json:"problems"`
	Rows     []RanklistRow `json:"rows"`
}

type Hack struct {
	ID       int64   `json:"id"`
	Hacker   Party   `json:"hacker"`
	Defender Party   `json:"defender"`
	Verdict  string  `json:"verdict"`
	Problem  Problem `json:"problem"`
}

type RatingChange struct {
	ContestID               int    `json:"contestId"`
	Handle                  string `json:"handle"`
	Rank                    int    `json:"rank"`
	OldRating               int    `json:"oldRating"`
	NewRating               int    `json:"newRating"`
	RatingUpdateTimeSeconds int64  `json:"ratingUpdateTimeSeconds"`
}

type Submission struct {
	ID                  int64   `json:"id"`
	ContestID           int     `json:"contestId"`
	Problem             Problem `json:"problem"`
	Author              Party   `json:"author"`
	ProgrammingLanguage string  `json:"programmingLanguage"`
	Verdict             string  `json:"verdict"`
	Testset             string  `json:"testset"`
	PassedTestCount     int     `json:"passedTestCount"`
	TimeConsumedMillis  int     `json:"timeConsumedMillis"`
	MemoryConsumedBytes int64   `json:"memoryConsumedBytes"`
}
