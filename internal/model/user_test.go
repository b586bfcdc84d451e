package model

import "testing"

func TestOnboardingStepTransitions(t *testing.T) {
	cases := []struct {
		from    OnboardingStep
		to      OnboardingStep
		allowed bool
	}{
		{StepNone, StepMorningTime, true},
		{StepMorningTime, StepEveningTime, true},
		{StepEveningTime, StepCompleted, true},
		// /start resets any step back to morning_time.
		{StepCompleted, StepMorningTime, true},
		{StepEveningTime, StepMorningTime, true},
		// Backwards and skipping moves are rejected.
		{StepCompleted, StepEveningTime, false},
		{StepNone, StepEveningTime, false},
		{StepNone, StepCompleted, false},
		{StepMorningTime, StepCompleted, false},
		{StepEveningTime, StepEveningTime, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Errorf("CanTransitionTo(%q -> %q) = %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestOnboardingStepInProgress(t *testing.T) {
	if StepNone.InProgress() || StepCompleted.InProgress() {
		t.Error("none and completed must not count as in progress")
	}
	if !StepMorningTime.InProgress() || !StepEveningTime.InProgress() {
		t.Error("morning_time and evening_time must count as in progress")
	}
}

func TestRitualTimeFor(t *testing.T) {
	morning := "08:00"
	evening := "21:30"
	u := User{MorningRitualTime: &morning, EveningRitualTime: &evening}

	if got := u.RitualTimeFor(RitualMorning); got == nil || *got != morning {
		t.Errorf("RitualTimeFor(morning) = %v, want %q", got, morning)
	}
	if got := u.RitualTimeFor(RitualEvening); got == nil || *got != evening {
		t.Errorf("RitualTimeFor(evening) = %v, want %q", got, evening)
	}
}
