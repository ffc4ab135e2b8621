package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_RecordAndFilter(t *testing.T) {
	repo := NewMemoryRepository()

	require.NoError(t, repo.RecordEvent(EventCropPlanted, EventMetadata{"crop": "wheat", "plot": 0}))
	require.NoError(t, repo.RecordEvent(EventDayTick, EventMetadata{"day": 2}))
	require.NoError(t, repo.RecordEvent(EventRainFell, nil))

	all, err := repo.GetEvents(time.Time{}, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 1, all[0].ID)
	assert.Equal(t, 3, all[2].ID)

	ticks, err := repo.GetEvents(time.Time{}, []EventType{EventDayTick})
	require.NoError(t, err)
	require.Len(t, ticks, 1)
	assert.Equal(t, EventDayTick, ticks[0].Type)

	require.NoError(t, repo.Clear())
	all, err = repo.GetEvents(time.Time{}, nil)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCalculateStats_SeasonSummary(t *testing.T) {
	repo := NewMemoryRepository()

	require.NoError(t, repo.RecordEvent(EventSeedPurchased, EventMetadata{"crop": "wheat", "price": 10}))
	require.NoError(t, repo.RecordEvent(EventCropPlanted, EventMetadata{"crop": "wheat", "plot": 0}))
	for day := 2; day <= 5; day++ {
		require.NoError(t, repo.RecordEvent(EventDayTick, EventMetadata{"day": day, "balance": 90}))
	}
	require.NoError(t, repo.RecordEvent(EventPestStruck, EventMetadata{"plot": 0}))
	require.NoError(t, repo.RecordEvent(EventRainFell, nil))
	require.NoError(t, repo.RecordEvent(EventCropHarvested, EventMetadata{"crop": "wheat", "plot": 0, "earned": 25}))
	require.NoError(t, repo.RecordEvent(EventGameWon, EventMetadata{"day": 6, "balance": 505}))

	events, err := repo.GetEvents(time.Time{}, nil)
	require.NoError(t, err)

	stats, err := CalculateStats(events, time.Time{})
	require.NoError(t, err)

	assert.Equal(t, 4, stats.DayTicks)
	assert.Equal(t, 1, stats.Harvests)
	assert.Equal(t, 0.25, stats.HarvestsPerDay)
	assert.Equal(t, 1, stats.PestEvents)
	assert.Equal(t, 1, stats.RainEvents)
	assert.Equal(t, 25, stats.CoinsEarned)
	assert.Equal(t, 10, stats.CoinsSpent)
	assert.Equal(t, 1, stats.SeedsBought["wheat"])
	assert.Equal(t, 1, stats.HarvestsByCrop["wheat"])
	assert.Equal(t, 1, stats.Wins)
	assert.Equal(t, 1, stats.EventCounts[EventCropPlanted])
}

func TestCalculateStats_EmptyInput(t *testing.T) {
	stats, err := CalculateStats(nil, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.DayTicks)
	assert.Equal(t, 0.0, stats.HarvestsPerDay)
}
