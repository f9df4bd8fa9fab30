package intelligence

import (
	"testing"

	"github.com/alexanderramin/huddle/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexicon_EveryAliasMapsToRosterTeam(t *testing.T) {
	for _, a := range teamAliases {
		assert.True(t, IsTeamCode(a.value), "alias %q maps to unknown code %q", a.key, a.value)
		assert.NotEmpty(t, a.key)
	}
}

func TestLexicon_RosterHas32Teams(t *testing.T) {
	confs := Conferences()
	require.Len(t, confs, 2)
	assert.Equal(t, domain.ConferenceAFC, confs[0].Conference)
	assert.Len(t, confs[0].Teams, 16)
	assert.Len(t, confs[1].Teams, 16)
	assert.Len(t, teamCodes, 32)

	// Every roster team is reachable through at least one alias.
	for _, c := range confs {
		for _, code := range c.Teams {
			assert.NotEmpty(t, TeamAliases(code), "no alias for %s", code)
		}
	}
}

func TestLexicon_ConferencesReturnsCopies(t *testing.T) {
	confs := Conferences()
	confs[0].Teams[0] = "XXX"
	assert.Equal(t, "NE", Conferences()[0].Teams[0])
}

func TestLexicon_TeamAliasesInScanOrder(t *testing.T) {
	assert.Equal(t, []string{"chiefs", "kansas", "kc"}, TeamAliases("KC"))
	assert.Nil(t, TeamAliases("XXX"))
}
