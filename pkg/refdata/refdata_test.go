package refdata_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/limbo/agriquest/pkg/entity"
	"github.com/limbo/agriquest/pkg/refdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	set, err := refdata.Load("")
	require.NoError(t, err)
	assert.NotEmpty(t, set.Badges)
	assert.NotEmpty(t, set.Schemes)
	require.NotEmpty(t, set.Quests)
	kinds := make(map[entity.BadgeKind]bool)
	for _, b := range set.Badges {
		kinds[b.Kind] = true
	}
	assert.True(t, kinds[entity.BadgeCompletions])
	assert.True(t, kinds[entity.BadgeWeeklyChampion])
	assert.True(t, kinds[entity.BadgeStreak])
	for _, q := range set.Quests {
		assert.True(t, q.IsActive)
		assert.True(t, q.Type.Valid())
		assert.Equal(t, 5, q.Points)
	}
}

func TestQuestIDsAreStable(t *testing.T) {
	// Same ids as the postgres seed migration
	assert.Equal(t, uuid.MustParse("b93487c8-cf2f-5a01-abcd-9b2fab1cfe39"), refdata.QuestID("water-before-sunrise"))
	assert.Equal(t, uuid.MustParse("43d9a0c5-15c6-5cd5-acaf-8c81ec8a2199"), refdata.QuestID("register-for-scheme"))
}

func TestLoadOverrideDir(t *testing.T) {
	dir := t.TempDir()
	badges := `
badges:
  - name: Drip Expert
    category: water
    required_count: 3
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, refdata.BadgesFile), []byte(badges), 0o600))
	set, err := refdata.Load(dir)
	require.NoError(t, err)
	require.Len(t, set.Badges, 1)
	assert.Equal(t, "Drip Expert", set.Badges[0].Name)
	assert.Equal(t, entity.BadgeCompletions, set.Badges[0].Kind)
	// Files missing from the directory fall back to embedded data
	assert.NotEmpty(t, set.Schemes)
}

func TestParseBadgesYAML(t *testing.T) {
	testCases := []struct {
		Desc    string
		Payload string
		Error   bool
	}{
		{
			Desc:    "empty",
			Payload: "  \n",
			Error:   true,
		},
		{
			Desc:    "malformed",
			Payload: "badges: [",
			Error:   true,
		},
		{
			Desc:    "missing required count",
			Payload: "badges:\n  - name: Lazy\n",
			Error:   true,
		},
		{
			Desc:    "unknown kind",
			Payload: "badges:\n  - name: Odd\n    kind: likes\n    required_count: 2\n",
			Error:   true,
		},
		{
			Desc:    "duplicate name",
			Payload: "badges:\n  - name: A\n    required_count: 1\n  - name: A\n    required_count: 2\n",
			Error:   true,
		},
		{
			Desc:    "valid",
			Payload: "badges:\n  - name: Champion\n    kind: weekly_champion\n    required_count: 1\n",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			_, err := refdata.ParseBadgesYAML([]byte(tc.Payload))
			if tc.Error {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseSchemesYAML(t *testing.T) {
	t.Run("invalid link", func(t *testing.T) {
		_, err := refdata.ParseSchemesYAML([]byte("schemes:\n  - code: X\n    name: Y\n    link: not a url\n"))
		assert.Error(t, err)
	})
	t.Run("duplicate code", func(t *testing.T) {
		_, err := refdata.ParseSchemesYAML([]byte("schemes:\n  - code: X\n    name: Y\n  - code: X\n    name: Z\n"))
		assert.Error(t, err)
	})
}

func TestParseQuestsYAML(t *testing.T) {
	quests, err := refdata.ParseQuestsYAML([]byte("quests:\n  - key: k\n    title: T\n    quest_type: weekly\n    points: 5\n    inactive: true\n"))
	require.NoError(t, err)
	require.Len(t, quests, 1)
	assert.False(t, quests[0].IsActive)
	assert.Equal(t, "general", quests[0].Category)
	assert.Equal(t, refdata.QuestID("k"), quests[0].ID)

	_, err = refdata.ParseQuestsYAML([]byte("quests:\n  - key: k\n    title: T\n    quest_type: monthly\n    points: 5\n"))
	assert.Error(t, err)
}
