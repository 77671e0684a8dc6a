package stats

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSummary() Summary {
	return Summary{
		SessionID:           "3f1c9a2e-7b7d-4f0e-9a51-2c7d5e8b6a10",
		DistanceTraveled:    61.25,
		SurvivalTime:        187.33333333333334,
		EnemiesDefeated:     42,
		Score:               470,
		MagicBoltDamage:     1234.5,
		ElectricBurstDamage: 0.1 + 0.2,
		ExplosionDamage:     880,
		ItemCollectionCount: 3,
		WaveNumber:          4,
		BossesDefeated:      0,
		PlayerLevel:         6,
	}
}

func TestSummary_RecordRoundTrip(t *testing.T) {
	want := sampleSummary()
	got, err := ParseRecord(want.Record())
	require.NoError(t, err)
	if got != want {
		t.Fatalf("round trip changed the record:\n got %+v\nwant %+v", got, want)
	}
}

func TestParseRecord_RejectsMalformedRows(t *testing.T) {
	rec := sampleSummary().Record()

	_, err := ParseRecord(rec[:5])
	assert.True(t, errors.Is(err, ErrBadRecord), "short row: %v", err)

	rec[4] = "lots"
	_, err = ParseRecord(rec)
	assert.True(t, errors.Is(err, ErrBadRecord), "bad score: %v", err)
	assert.Contains(t, err.Error(), "Score")
}

func TestCSVSink_WritesHeaderOnlyOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gamedata.csv")
	sink := NewCSVSink(path)

	first := sampleSummary()
	second := sampleSummary()
	second.SessionID = "second"
	second.Score = 10

	require.NoError(t, sink.LogStats(first))
	require.NoError(t, sink.LogStats(second))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Join(Header, ","), lines[0])

	got, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first, got[0])
	assert.Equal(t, second, got[1])
}

func TestCSVSink_AppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gamedata.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(Header, ",")+"\n"), 0o644))

	require.NoError(t, NewCSVSink(path).LogStats(sampleSummary()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(raw), "SessionID"), "header duplicated")
}

func TestRead_ReportsLineOfBadRow(t *testing.T) {
	in := strings.Join(Header, ",") + "\n" + strings.Join(sampleSummary().Record(), ",") + "\nnot,a,row\n"
	got, err := Read(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
	assert.Len(t, got, 1)
}

func TestSummarize_MeansAndRates(t *testing.T) {
	a := Summary{MagicBoltDamage: 100, SurvivalTime: 50, EnemiesDefeated: 30, WaveNumber: 3, PlayerLevel: 4, Score: 300}
	b := Summary{MagicBoltDamage: 300, SurvivalTime: 150, EnemiesDefeated: 10, WaveNumber: 1, PlayerLevel: 2, Score: 100, BossesDefeated: 1}

	agg := Summarize([]Summary{a, b})

	assert.Equal(t, 2, agg.Sessions)
	assert.InDelta(t, 200, agg.MagicBolt.Mean, 1e-9)
	assert.InDelta(t, 100, agg.MagicBolt.Std, 1e-9)
	assert.InDelta(t, 100, agg.SurvivalTime.Mean, 1e-9)
	assert.InDelta(t, 10, agg.EnemiesPerWave, 1e-9)
	assert.InDelta(t, 2, agg.DamagePerSecond, 1e-9)
	assert.Equal(t, 150.0, agg.LongestSurvival)
	assert.Equal(t, 4, agg.HighestLevelReached)
	assert.Equal(t, 1, agg.BossesDefeated)

	var sb strings.Builder
	agg.Print(&sb)
	assert.Contains(t, sb.String(), "sessions:            2")
}

func TestSummarize_Empty(t *testing.T) {
	agg := Summarize(nil)
	if agg.Sessions != 0 || agg.MagicBolt.Mean != 0 {
		t.Fatalf("expected zero aggregate, got %+v", agg)
	}
}
