package sim

import "testing"

func testAnimator() Animator {
	counts := countsFor(FrameCounts{
		"t_idle":      4,
		"t_running":   4,
		"t_attacked":  3,
		"t_attacking": 6,
		"t_dead":      5,
	}, "t")
	return NewAnimator(counts, AnimTiming{
		IdleInterval:      0.25,
		RunInterval:       0.25,
		AttackedDuration:  0.3,
		AttackingDuration: 0.6,
		DeathDuration:     0.8,
	})
}

func TestAnimator_IdleRunningFollowsMovement(t *testing.T) {
	a := testAnimator()
	a.Moved(0.5)
	if a.State() != AnimRunning {
		t.Fatalf("expected running after moving, got %s", a.State())
	}
	a.Moved(0)
	if a.State() != AnimIdle {
		t.Fatalf("expected idle after stopping, got %s", a.State())
	}
	a.Moved(moveEpsilon / 2)
	if a.State() != AnimIdle {
		t.Fatal("sub-epsilon jitter should not start the running animation")
	}
}

func TestAnimator_LoopingFramesWrap(t *testing.T) {
	a := testAnimator()
	a.Update(1.25) // five intervals over four frames
	if a.Frame() != 1 {
		t.Fatalf("expected frame 1 after wrapping, got %d", a.Frame())
	}
}

func TestAnimator_HurtLocksThenReturnsToIdle(t *testing.T) {
	a := testAnimator()
	a.Hurt()
	if !a.Locked() || a.State() != AnimAttacked {
		t.Fatalf("expected a locked attacked state, got %s", a.State())
	}
	if ev := a.Update(0.2); ev != AnimEventNone {
		t.Fatalf("lock ended early: %v", ev)
	}
	if a.BeginAttack() {
		t.Fatal("cannot start an attack while hurt")
	}
	if ev := a.Update(0.2); ev != AnimEventHurtOver {
		t.Fatalf("expected hurt-over after the duration, got %v", ev)
	}
	if a.State() != AnimIdle || a.Locked() {
		t.Fatalf("expected unlocked idle, got %s", a.State())
	}
}

func TestAnimator_AttackReleasesOnce(t *testing.T) {
	a := testAnimator()
	if !a.BeginAttack() {
		t.Fatal("attack should start from idle")
	}
	a.Update(0.35)
	if a.Frame() != 3 {
		t.Fatalf("attacking frame should follow elapsed/duration, got %d", a.Frame())
	}
	releases := 0
	for i := 0; i < 10; i++ {
		if a.Update(0.1) == AnimEventAttackRelease {
			releases++
		}
	}
	if releases != 1 {
		t.Fatalf("expected exactly one release, got %d", releases)
	}
	if a.State() != AnimIdle {
		t.Fatalf("expected idle after the attack, got %s", a.State())
	}
}

func TestAnimator_DeathIsTerminal(t *testing.T) {
	a := testAnimator()
	if !a.Die() {
		t.Fatal("first Die should report the transition")
	}
	if a.Die() {
		t.Fatal("second Die must not fire again")
	}
	a.Hurt()
	a.Moved(3)
	if a.State() != AnimDead {
		t.Fatalf("dead animator left the dead state: %s", a.State())
	}
	a.Update(0.5)
	if a.DeathFinished() {
		t.Fatal("death animation finished early")
	}
	if ev := a.Update(0.4); ev != AnimEventDeathOver {
		t.Fatalf("expected death-over, got %v", ev)
	}
	if a.Frame() != 4 {
		t.Fatalf("death should hold its last frame, got %d", a.Frame())
	}
	if ev := a.Update(1); ev != AnimEventNone || !a.DeathFinished() {
		t.Fatal("death-over must be reported once")
	}
}

func TestCountsFor_DefaultsToOneFrame(t *testing.T) {
	counts := countsFor(nil, "missing")
	for _, s := range AllAnimStates {
		if counts[s] != 1 {
			t.Fatalf("state %s: expected 1 frame, got %d", s, counts[s])
		}
	}
}
