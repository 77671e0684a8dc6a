// Package stats persists one summary row per game session and reads the rows
// back for aggregate reporting.
package stats

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrBadRecord is returned for rows that do not match the column schema.
var ErrBadRecord = errors.New("stats: malformed record")

// Header is the fixed column schema of the statistics file.
var Header = []string{
	"SessionID",
	"DistanceTraveled",
	"SurvivalTime",
	"EnemiesDefeated",
	"Score",
	"MagicBoltDamage",
	"ElectricBurstDamage",
	"ExplosionDamage",
	"ItemCollectionCount",
	"WaveNumber",
	"BossesDefeated",
	"PlayerLevel",
}

// Summary is the end-of-session record.
type Summary struct {
	SessionID           string
	DistanceTraveled    float64
	SurvivalTime        float64
	EnemiesDefeated     int
	Score               int
	MagicBoltDamage     float64
	ElectricBurstDamage float64
	ExplosionDamage     float64
	ItemCollectionCount int
	WaveNumber          int
	BossesDefeated      int
	PlayerLevel         int
}

// TotalDamage sums the three ability counters.
func (s Summary) TotalDamage() float64 {
	return s.MagicBoltDamage + s.ElectricBurstDamage + s.ExplosionDamage
}

// Record encodes s in Header order. Floats use the shortest representation
// that parses back to the same value.
func (s Summary) Record() []string {
	return []string{
		s.SessionID,
		formatFloat(s.DistanceTraveled),
		formatFloat(s.SurvivalTime),
		strconv.Itoa(s.EnemiesDefeated),
		strconv.Itoa(s.Score),
		formatFloat(s.MagicBoltDamage),
		formatFloat(s.ElectricBurstDamage),
		formatFloat(s.ExplosionDamage),
		strconv.Itoa(s.ItemCollectionCount),
		strconv.Itoa(s.WaveNumber),
		strconv.Itoa(s.BossesDefeated),
		strconv.Itoa(s.PlayerLevel),
	}
}

// String renders s as a short multi-line report, used for the clipboard.
func (s Summary) String() string {
	return fmt.Sprintf("Session %s\nSurvived %.1fs  Score %d  Wave %d  Level %d\n"+
		"Enemies %d  Bosses %d  Items %d  Distance %.1f\n"+
		"Damage: bolt %.0f  burst %.0f  explosion %.0f",
		s.SessionID, s.SurvivalTime, s.Score, s.WaveNumber, s.PlayerLevel,
		s.EnemiesDefeated, s.BossesDefeated, s.ItemCollectionCount, s.DistanceTraveled,
		s.MagicBoltDamage, s.ElectricBurstDamage, s.ExplosionDamage)
}

// ParseRecord decodes a row written by Record.
func ParseRecord(rec []string) (Summary, error) {
	if len(rec) != len(Header) {
		return Summary{}, fmt.Errorf("%w: %d columns, want %d", ErrBadRecord, len(rec), len(Header))
	}
	p := fieldParser{rec: rec}
	s := Summary{
		SessionID:           rec[0],
		DistanceTraveled:    p.float(1),
		SurvivalTime:        p.float(2),
		EnemiesDefeated:     p.int(3),
		Score:               p.int(4),
		MagicBoltDamage:     p.float(5),
		ElectricBurstDamage: p.float(6),
		ExplosionDamage:     p.float(7),
		ItemCollectionCount: p.int(8),
		WaveNumber:          p.int(9),
		BossesDefeated:      p.int(10),
		PlayerLevel:         p.int(11),
	}
	if p.err != nil {
		return Summary{}, p.err
	}
	return s, nil
}

// fieldParser keeps the first conversion error so ParseRecord stays flat.
type fieldParser struct {
	rec []string
	err error
}

func (p *fieldParser) float(i int) float64 {
	if p.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(p.rec[i], 64)
	if err != nil {
		p.err = fmt.Errorf("%w: column %s: %v", ErrBadRecord, Header[i], err)
	}
	return v
}

func (p *fieldParser) int(i int) int {
	if p.err != nil {
		return 0
	}
	v, err := strconv.Atoi(p.rec[i])
	if err != nil {
		p.err = fmt.Errorf("%w: column %s: %v", ErrBadRecord, Header[i], err)
	}
	return v
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
