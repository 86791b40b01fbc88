package selection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/guidebook/internal/domain"
	"github.com/pkordes/guidebook/internal/selection"
)

// fullState returns a state with every stage chosen and ready to search.
func fullState() selection.State {
	return selection.State{
		Category:    domain.CategoryEat,
		Region:      "North America",
		Country:     "United States",
		City:        "New York",
		ResultCount: 10,
		Ready:       true,
	}
}

// For every stage i, applying any value leaves every stage j > i empty and
// keeps every stage before i untouched.
func TestApply_ClearsEveryLaterStage(t *testing.T) {
	for i, stage := range selection.Stages {
		for _, value := range []string{"X", "", fullState().Value(stage)} {
			got := selection.Apply(fullState(), stage, value)

			assert.Equal(t, value, got.Value(stage), "stage %s", stage)
			for _, before := range selection.Stages[:i] {
				assert.Equal(t, fullState().Value(before), got.Value(before), "stage %s changed by %s", before, stage)
			}
			for _, after := range selection.Stages[i+1:] {
				assert.Empty(t, got.Value(after), "stage %s not cleared by %s", after, stage)
			}
			assert.Zero(t, got.ResultCount)
			assert.False(t, got.Ready)
		}
	}
}

// Re-selecting the value a stage already holds still resets the stages after it.
func TestApply_SameValueStillResets(t *testing.T) {
	got := selection.Apply(fullState(), selection.StageRegion, "North America")

	assert.Equal(t, "North America", got.Region)
	assert.Empty(t, got.Country)
	assert.Empty(t, got.City)
	assert.False(t, got.Ready)
}

func TestApply_UnknownStageIsNoop(t *testing.T) {
	s := fullState()

	assert.Equal(t, s, selection.Apply(s, selection.StageResultCount, "5"))
	assert.Equal(t, s, selection.Apply(s, selection.Stage("bogus"), "5"))
}

func TestSetResultCount(t *testing.T) {
	s := selection.Apply(fullState(), selection.StageCity, "Chicago")
	require.False(t, s.Ready)

	got, err := selection.SetResultCount(s, 20)

	require.NoError(t, err)
	assert.Equal(t, 20, got.ResultCount)
	assert.True(t, got.Ready)
}

func TestSetResultCount_RequiresCity(t *testing.T) {
	s := selection.Apply(fullState(), selection.StageCountry, "United States")

	_, err := selection.SetResultCount(s, 10)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSetResultCount_OutOfRange(t *testing.T) {
	for _, n := range []int{0, -1, selection.MaxResultCount + 1} {
		_, err := selection.SetResultCount(fullState(), n)
		assert.ErrorIs(t, err, domain.ErrValidation, "n=%d", n)
	}
}

func TestPromoteCity_BypassesCascade(t *testing.T) {
	s := selection.State{Category: domain.CategoryPlay, Region: "Asia", Country: "Japan", City: "Tokyo", ResultCount: 5, Ready: true}

	got := selection.PromoteCity(s, "Paris")

	assert.Equal(t, "Asia", got.Region)
	assert.Equal(t, "Japan", got.Country)
	assert.Equal(t, "Paris", got.City)
	assert.Zero(t, got.ResultCount)
	assert.False(t, got.Ready)
}

func TestUnlocked(t *testing.T) {
	empty := selection.State{}
	assert.True(t, empty.Unlocked(selection.StageCategory))
	assert.False(t, empty.Unlocked(selection.StageRegion))
	assert.False(t, empty.Unlocked(selection.StageResultCount))

	withRegion := selection.State{Category: domain.CategoryEat, Region: "Europe"}
	assert.True(t, withRegion.Unlocked(selection.StageCountry))
	assert.False(t, withRegion.Unlocked(selection.StageCity))
}

func TestParseStage(t *testing.T) {
	st, err := selection.ParseStage("country")
	require.NoError(t, err)
	assert.Equal(t, selection.StageCountry, st)

	_, err = selection.ParseStage("planet")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
