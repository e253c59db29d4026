package snapstore

import (
	"testing"
	"time"

	"github.com/guildtools/raidscope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryStore(t *testing.T) *SnapshotStoreImpl {
	t.Helper()
	store, err := NewSnapshotStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store.(*SnapshotStoreImpl)
}

func sampleRun(runID int64, guild string) (schema.RunRecord, []schema.PlayerRowRecord) {
	started := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	finished := started.Add(2 * time.Second)
	params := "date=0315 workers=4 limit=50"

	run := schema.RunRecord{
		RunID:        runID,
		StartedAt:    started,
		FinishedAt:   &finished,
		Guild:        guild,
		EventDate:    "0315",
		TotalPlayers: 2,
		ConfigParams: &params,
	}
	rows := []schema.PlayerRowRecord{
		{
			RunID: runID, Player: "briar", ResolvedAt: finished,
			AttackCount: 1, TotalScore: 2500, AverageScore: 2500,
			Battle: 131.5, PerWaveScore: 2315, MaxScore: 2999800,
			Estimable: true,
		},
		{
			RunID: runID, Player: "aster", ResolvedAt: finished,
			AttackCount: 2, TotalScore: 7400, AverageScore: 3700,
			Battle: 120, PerWaveScore: 2200, MaxScore: 2851200,
			Estimable: true,
		},
	}
	return run, rows
}

// TestSnapshotStoreRoundTrip saves a run and reads everything back.
func TestSnapshotStoreRoundTrip(t *testing.T) {
	store := newMemoryStore(t)

	run, rows := sampleRun(1000, "moonguard")
	require.NoError(t, store.SaveRun(run, rows))

	runs, err := store.ListRuns(0)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	got := runs[0]
	assert.Equal(t, run.RunID, got.RunID)
	assert.Equal(t, "moonguard", got.Guild)
	assert.Equal(t, "0315", got.EventDate)
	assert.Equal(t, int32(2), got.TotalPlayers)
	assert.True(t, run.StartedAt.Equal(got.StartedAt))
	require.NotNil(t, got.FinishedAt)
	assert.True(t, run.FinishedAt.Equal(*got.FinishedAt))
	require.NotNil(t, got.ConfigParams)
	assert.Equal(t, *run.ConfigParams, *got.ConfigParams)

	playerRows, err := store.PlayerRows(run.RunID)
	require.NoError(t, err)
	require.Len(t, playerRows, 2)

	// Ordered by total score descending
	assert.Equal(t, "aster", playerRows[0].Player)
	assert.Equal(t, int64(7400), playerRows[0].TotalScore)
	assert.Equal(t, "briar", playerRows[1].Player)
	assert.Equal(t, 131.5, playerRows[1].Battle)
	assert.True(t, playerRows[1].Estimable)
	assert.False(t, playerRows[1].Escalated)
}

// TestSnapshotStoreListRunsNewestFirst checks ordering and the limit clause.
func TestSnapshotStoreListRunsNewestFirst(t *testing.T) {
	store := newMemoryStore(t)

	for i := int64(1); i <= 3; i++ {
		run, rows := sampleRun(i, "moonguard")
		require.NoError(t, store.SaveRun(run, rows))
	}

	runs, err := store.ListRuns(0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, int64(3), runs[0].RunID)
	assert.Equal(t, int64(1), runs[2].RunID)

	limited, err := store.ListRuns(2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, int64(3), limited[0].RunID)
}

// TestSnapshotStoreOptionalFieldsNil stores a run without finish metadata.
func TestSnapshotStoreOptionalFieldsNil(t *testing.T) {
	store := newMemoryStore(t)

	run, _ := sampleRun(7, "moonguard")
	run.FinishedAt = nil
	run.ConfigParams = nil
	require.NoError(t, store.SaveRun(run, nil))

	runs, err := store.ListRuns(0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Nil(t, runs[0].FinishedAt)
	assert.Nil(t, runs[0].ConfigParams)
}

// TestSnapshotStoreStatusAndClear walks the status counters through a clear.
func TestSnapshotStoreStatusAndClear(t *testing.T) {
	store := newMemoryStore(t)

	status, err := store.Status()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, string(schema.SQLiteBackend), status.Backend)
	assert.Zero(t, status.TotalRuns)

	run, rows := sampleRun(42, "moonguard")
	require.NoError(t, store.SaveRun(run, rows))

	status, err = store.Status()
	require.NoError(t, err)
	assert.Equal(t, int64(1), status.TotalRuns)
	assert.Equal(t, int64(2), status.TotalPlayerRows)
	assert.True(t, run.StartedAt.Equal(status.LastRunTime))

	require.NoError(t, store.Clear())

	status, err = store.Status()
	require.NoError(t, err)
	assert.Zero(t, status.TotalRuns)
	assert.Zero(t, status.TotalPlayerRows)
}

// TestSnapshotStoreNoneBackend is the connected no-op path.
func TestSnapshotStoreNoneBackend(t *testing.T) {
	store, err := NewSnapshotStore(schema.NoneBackend, "")
	require.NoError(t, err)

	run, rows := sampleRun(1, "moonguard")
	assert.NoError(t, store.SaveRun(run, rows))

	runs, err := store.ListRuns(0)
	require.NoError(t, err)
	assert.Empty(t, runs)

	status, err := store.Status()
	require.NoError(t, err)
	assert.False(t, status.Connected)
	assert.NoError(t, store.Clear())
	assert.NoError(t, store.Close())
}

// TestSnapshotStoreUnsupportedBackend rejects unknown names.
func TestSnapshotStoreUnsupportedBackend(t *testing.T) {
	_, err := NewSnapshotStore(schema.DatabaseBackend("oracle"), "")
	assert.Error(t, err)
}
