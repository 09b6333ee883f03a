package dashboard

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkpulse/pkg/contracts/domain"
)

func TestSummarize(t *testing.T) {
	table := NewTable([]domain.ScoreRecord{
		rec("2025-05-25", "양천생태", "김철수", 80),
		rec("2025-05-26", "양천생태", "김철수", 91),
		rec("2025-06-01", "소양강", "김철수", 76),
	})

	s := Summarize(table)
	assert.Equal(t, 3, s.Rounds)
	assert.InDelta(t, 82.333, s.Mean, 0.001)
	assert.Equal(t, 76, s.Best, "lower is better")
	assert.Equal(t, 76, s.Latest, "chronologically last record")
}

func TestSummarize_LatestFollowsDateNotInputOrder(t *testing.T) {
	table := NewTable([]domain.ScoreRecord{
		rec("2025-06-01", "소양강", "김철수", 99),
		rec("2025-05-25", "양천생태", "김철수", 80),
	})
	assert.Equal(t, 99, Summarize(table).Latest)
}

func TestSummarize_EmptyView(t *testing.T) {
	s := Summarize(NewTable(nil))
	assert.Equal(t, 0, s.Rounds)
	assert.True(t, math.IsNaN(s.Mean))
	assert.Equal(t, 0, s.Best)
	assert.Equal(t, 0, s.Latest)
}

func TestSummaryMarshalJSON(t *testing.T) {
	t.Run("mean rounded to one decimal", func(t *testing.T) {
		data, err := json.Marshal(Summary{Rounds: 3, Mean: 82.3333, Best: 76, Latest: 91})
		require.NoError(t, err)
		assert.JSONEq(t, `{"rounds":3,"mean":82.3,"best":76,"latest":91}`, string(data))
	})

	t.Run("empty view renders mean null", func(t *testing.T) {
		data, err := json.Marshal(Summarize(NewTable(nil)))
		require.NoError(t, err)
		assert.JSONEq(t, `{"rounds":0,"mean":null,"best":0,"latest":0}`, string(data))
	})
}
