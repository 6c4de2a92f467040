package models

import "fmt"

// The upstream API reports ranks, verdicts, testsets and participant types as
// symbolic strings. Each enum below carries a single decode table shared by
// every fetcher; decoding an unknown symbol is an error the fetchers treat as
// fatal rather than defaulting.

type ParticipantType int16

const (
	ParticipantContestant ParticipantType = iota + 1
	ParticipantPractice
	ParticipantVirtual
	ParticipantManager
	ParticipantOutOfCompetition
)

var participantTypeSymbols = map[string]ParticipantType{
	"CONTESTANT":         ParticipantContestant,
	"PRACTICE":           ParticipantPractice,
	"VIRTUAL":            ParticipantVirtual,
	"MANAGER":            ParticipantManager,
	"OUT_OF_COMPETITION": ParticipantOutOfCompetition,
}

func ParseParticipantType(symbol string) (ParticipantType, error) {
	if t, ok := participantTypeSymbols[symbol]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("unknown participant type %q", symbol)
}

type Verdict int16

const (
	VerdictFailed Verdict = iota + 1
	VerdictOK
	VerdictPartial
	VerdictCompilationError
	VerdictRuntimeError
	VerdictWrongAnswer
	VerdictPresentationError
	VerdictTimeLimitExceeded
	VerdictMemoryLimitExceeded
	VerdictIdlenessLimitExceeded
	VerdictSecurityViolated
	VerdictCrashed
	VerdictInputPreparationCrashed
	VerdictChallenged
	VerdictSkipped
	VerdictTesting
	VerdictRejected
	// VerdictSubmitted is returned by the API but not documented.
	VerdictSubmitted
)

var verdictSymbols = map[string]Verdict{
	"FAILED":                    VerdictFailed,
	"OK":                        VerdictOK,
	"PARTIAL":                   VerdictPartial,
	"COMPILATION_ERROR":         VerdictCompilationError,
	"RUNTIME_ERROR":             VerdictRuntimeError,
	"WRONG_ANSWER":              VerdictWrongAnswer,
	"PRESENTATION_ERROR":        VerdictPresentationError,
	"TIME_LIMIT_EXCEEDED":       VerdictTimeLimitExceeded,
	"MEMORY_LIMIT_EXCEEDED":     VerdictMemoryLimitExceeded,
	"IDLENESS_LIMIT_EXCEEDED":   VerdictIdlenessLimitExceeded,
	"SECURITY_VIOLATED":         VerdictSecurityViolated,
	"CRASHED":                   VerdictCrashed,
	"INPUT_PREPARATION_CRASHED": VerdictInputPreparationCrashed,
	"CHALLENGED":                VerdictChallenged,
	"SKIPPED":                   VerdictSkipped,
	"TESTING":                   VerdictTesting,
	"REJECTED":                  VerdictRejected,
	"SUBMITTED":                 VerdictSubmitted,
}

func ParseVerdict(symbol string) (Verdict, error) {
	if v, ok := verdictSymbols[symbol]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("unknown verdict %q", symbol)
}

type Testset int16

const (
	TestsetSamples Testset = iota + 1
	TestsetPretests
	TestsetTests
	TestsetChallenges
	TestsetTests1
	TestsetTests2
	TestsetTests3
	TestsetTests4
	TestsetTests5
	TestsetTests6
	TestsetTests7
	TestsetTests8
	TestsetTests9
	TestsetTests10
)

var testsetSymbols = map[string]Testset{
	"SAMPLES":    TestsetSamples,
	"PRETESTS":   TestsetPretests,
	"TESTS":      TestsetTests,
	"CHALLENGES": TestsetChallenges,
	"TESTS1":     TestsetTests1,
	"TESTS2":     TestsetTests2,
	"TESTS3":     TestsetTests3,
	"TESTS4":     TestsetTests4,
	"TESTS5":     TestsetTests5,
	"TESTS6":     TestsetTests6,
	"TESTS7":     TestsetTests7,
	"TESTS8":     TestsetTests8,
	"TESTS9":     TestsetTests9,
	"TESTS10":    TestsetTests10,
}

func ParseTestset(symbol string) (Testset, error) {
	if t, ok := testsetSymbols[symbol]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("unknown testset %q", symbol)
}

type HackVerdict int16

const (
	HackSuccessful HackVerdict = iota + 1
	HackUnsuccessful
	HackInvalidInput
	HackGeneratorIncompilable
	HackGeneratorCrashed
	HackIgnored
	HackTesting
	HackOther
)

var hackVerdictSymbols = map[string]HackVerdict{
	"HACK_SUCCESSFUL":        HackSuccessful,
	"HACK_UNSUCCESSFUL":      HackUnsuccessful,
	"INVALID_INPUT":          HackInvalidInput,
	"GENERATOR_INCOMPILABLE": HackGeneratorIncompilable,
	"GENERATOR_CRASHED":      HackGeneratorCrashed,
	"IGNORED":                HackIgnored,
	"TESTING":                HackTesting,
	"OTHER":                  HackOther,
}

func ParseHackVerdict(symbol string) (HackVerdict, error) {
	if v, ok := hackVerdictSymbols[symbol]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("unknown hack verdict %q", symbol)
}

type Rank int16

const (
	RankNewbie Rank = iota + 1
	RankPupil
	RankSpecialist
	RankExpert
	RankCandidateMaster
	RankMaster
	RankInternationalMaster
	RankGrandmaster
	RankInternationalGrandmaster
	RankLegendaryGrandmaster
)

var rankSymbols = map[string]Rank{
	"newbie":                    RankNewbie,
	"pupil":                     RankPupil,
	"specialist":                RankSpecialist,
	"expert":                    RankExpert,
	"candidate master":          RankCandidateMaster,
	"master":                    RankMaster,
	"international master":      RankInternationalMaster,
	"grandmaster":               RankGrandmaster,
	"international grandmaster": RankInternationalGrandmaster,
	"legendary grandmaster":     RankLegendaryGrandmaster,
}

var rankTitles = map[Rank]string{
	RankNewbie:                   "Newbie",
	RankPupil:                    "Pupil",
	RankSpecialist:               "Specialist",
	RankExpert:                   "Expert",
	RankCandidateMaster:          "Candidate Master",
	RankMaster:                   "Master",
	RankInternationalMaster:      "International Master",
	RankGrandmaster:              "Grandmaster",
	RankInternationalGrandmaster: "International Grandmaster",
	RankLegendaryGrandmaster:     "Legendary Grandmaster",
}

func ParseRank(symbol string) (Rank, error) {
	if r, ok := rankSymbols[symbol]; ok {
		return r, nil
	}
	return 0, fmt.Errorf("unknown rank %q", symbol)
}

// Ranks returns every rank in ascending order.
func Ranks() []Rank {
	ranks := make([]Rank, 0, len(rankTitles))
	for r := RankNewbie; r <= RankLegendaryGrandmaster; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

func (r Rank) Title() string {
	if title, ok := rankTitles[r]; ok {
		return title
	}
	return fmt.Sprintf("Rank(%d)", int(r))
}
