package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParticipantType(t *testing.T) {
	symbols := map[string]ParticipantType{
		"CONTESTANT":         ParticipantContestant,
		"PRACTICE":           ParticipantPractice,
		"VIRTUAL":            ParticipantVirtual,
		"MANAGER":            ParticipantManager,
		"OUT_OF_COMPETITION": ParticipantOutOfCompetition,
	}
	for symbol, want := range symbols {
		got, err := ParseParticipantType(symbol)
		require.NoError(t, err, "symbol %s should decode", symbol)
		assert.Equal(t, want, got)
	}

	_, err := ParseParticipantType("SPECTATOR")
	assert.Error(t, err, "unknown symbols must not decode to a default")
}

func TestParseVerdictKnownSymbols(t *testing.T) {
	got, err := ParseVerdict("OK")
	require.NoError(t, err)
	assert.Equal(t, VerdictOK, got)

	got, err = ParseVerdict("SUBMITTED")
	require.NoError(t, err)
	assert.Equal(t, VerdictSubmitted, got)

	_, err = ParseVerdict("ACCEPTED")
	assert.Error(t, err)
}

func TestParseTestset(t *testing.T) {
	got, err := ParseTestset("PRETESTS")
	require.NoError(t, err)
	assert.Equal(t, TestsetPretests, got)

	got, err = ParseTestset("TESTS10")
	require.NoError(t, err)
	assert.Equal(t, TestsetTests10, got)

	_, err = ParseTestset("TESTS11")
	assert.Error(t, err)
}

func TestParseHackVerdict(t *testing.T) {
	got, err := ParseHackVerdict("HACK_SUCCESSFUL")
	require.NoError(t, err)
	assert.Equal(t, HackSuccessful, got)

	_, err = ParseHackVerdict("HACKED")
	assert.Error(t, err)
}

func TestParseRank(t *testing.T) {
	got, err := ParseRank("legendary grandmaster")
	require.NoError(t, err)
	assert.Equal(t, RankLegendaryGrandmaster, got)
	assert.Equal(t, "Legendary Grandmaster", got.Title())

	_, err = ParseRank("tourist")
	assert.Error(t, err)
}

func TestRanksAscending(t *testing.T) {
	ranks := Ranks()
	require.Len(t, ranks, 10)
	assert.Equal(t, RankNewbie, ranks[0])
	assert.Equal(t, RankLegendaryGrandmaster, ranks[len(ranks)-1])
}
