package stats

import (
	"fmt"
	"io"
	"math"
)

// MeanStd is a sample mean and population standard deviation.
type MeanStd struct {
	Mean float64
	Std  float64
}

func meanStd(xs []float64) MeanStd {
	if len(xs) == 0 {
		return MeanStd{}
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(len(xs))
	sq := 0.0
	for _, x := range xs {
		sq += (x - mean) * (x - mean)
	}
	return MeanStd{Mean: mean, Std: math.Sqrt(sq / float64(len(xs)))}
}

// Aggregate summarizes many sessions.
type Aggregate struct {
	Sessions            int
	MagicBolt           MeanStd
	ElectricBurst       MeanStd
	Explosion           MeanStd
	SurvivalTime        MeanStd
	Score               MeanStd
	EnemiesPerWave      float64 // total enemies defeated / total waves reached
	BossesDefeated      int
	LongestSurvival     float64
	DamagePerSecond     float64 // total damage over total survival time
	HighestLevelReached int
}

// Summarize aggregates sums. The zero Aggregate is returned for no sessions.
func Summarize(sums []Summary) Aggregate {
	agg := Aggregate{Sessions: len(sums)}
	if len(sums) == 0 {
		return agg
	}
	var bolt, burst, expl, surv, score []float64
	enemies, waves := 0, 0
	totalDamage, totalTime := 0.0, 0.0
	for _, s := range sums {
		bolt = append(bolt, s.MagicBoltDamage)
		burst = append(burst, s.ElectricBurstDamage)
		expl = append(expl, s.ExplosionDamage)
		surv = append(surv, s.SurvivalTime)
		score = append(score, float64(s.Score))
		enemies += s.EnemiesDefeated
		waves += s.WaveNumber
		agg.BossesDefeated += s.BossesDefeated
		agg.LongestSurvival = math.Max(agg.LongestSurvival, s.SurvivalTime)
		agg.HighestLevelReached = max(agg.HighestLevelReached, s.PlayerLevel)
		totalDamage += s.TotalDamage()
		totalTime += s.SurvivalTime
	}
	agg.MagicBolt = meanStd(bolt)
	agg.ElectricBurst = meanStd(burst)
	agg.Explosion = meanStd(expl)
	agg.SurvivalTime = meanStd(surv)
	agg.Score = meanStd(score)
	if waves > 0 {
		agg.EnemiesPerWave = float64(enemies) / float64(waves)
	}
	if totalTime > 0 {
		agg.DamagePerSecond = totalDamage / totalTime
	}
	return agg
}

// Print writes a human-readable report of agg.
func (agg Aggregate) Print(w io.Writer) {
	fmt.Fprintf(w, "sessions:            %d\n", agg.Sessions)
	if agg.Sessions == 0 {
		return
	}
	fmt.Fprintf(w, "survival time:       %8.1f ± %.1f s (longest %.1f s)\n",
		agg.SurvivalTime.Mean, agg.SurvivalTime.Std, agg.LongestSurvival)
	fmt.Fprintf(w, "score:               %8.1f ± %.1f\n", agg.Score.Mean, agg.Score.Std)
	fmt.Fprintf(w, "magic bolt damage:   %8.1f ± %.1f\n", agg.MagicBolt.Mean, agg.MagicBolt.Std)
	fmt.Fprintf(w, "electric burst dmg:  %8.1f ± %.1f\n", agg.ElectricBurst.Mean, agg.ElectricBurst.Std)
	fmt.Fprintf(w, "explosion damage:    %8.1f ± %.1f\n", agg.Explosion.Mean, agg.Explosion.Std)
	fmt.Fprintf(w, "enemies per wave:    %8.2f\n", agg.EnemiesPerWave)
	fmt.Fprintf(w, "damage per second:   %8.2f\n", agg.DamagePerSecond)
	fmt.Fprintf(w, "bosses defeated:     %d\n", agg.BossesDefeated)
	fmt.Fprintf(w, "highest level:       %d\n", agg.HighestLevelReached)
}
