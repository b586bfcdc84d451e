package repository

import (
	"context"
	"testing"

	"tasker-bot/internal/model"
)

func TestGetOrCreateUser(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository(newTestDB(t))

	created, err := users.GetOrCreate(ctx, 42, "Анна", "Иванова")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.OnboardingStep != model.StepNone {
		t.Errorf("new user step = %q, want none", created.OnboardingStep)
	}

	again, err := users.GetOrCreate(ctx, 42, "Анна", "Петрова")
	if err != nil {
		t.Fatalf("get existing: %v", err)
	}
	if again.ID != created.ID {
		t.Errorf("expected the same row, got ids %d and %d", created.ID, again.ID)
	}

	reloaded, err := users.FindByMaxID(ctx, 42)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.LastName != "Петрова" {
		t.Errorf("profile not refreshed: last name %q", reloaded.LastName)
	}
}

func TestSetOnboardingStepEnforcesTransitions(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository(newTestDB(t))

	if _, err := users.GetOrCreate(ctx, 7, "Boris", ""); err != nil {
		t.Fatalf("create: %v", err)
	}

	// none -> evening_time is not a legal move; the row must not change.
	if ok, err := users.SetOnboardingStep(ctx, 7, model.StepEveningTime); err != nil || ok {
		t.Errorf("SetOnboardingStep(none -> evening_time) = %v, %v; want false, nil", ok, err)
	}

	steps := []model.OnboardingStep{model.StepMorningTime, model.StepEveningTime, model.StepCompleted}
	for _, step := range steps {
		ok, err := users.SetOnboardingStep(ctx, 7, step)
		if err != nil || !ok {
			t.Fatalf("SetOnboardingStep(-> %q) = %v, %v; want true, nil", step, ok, err)
		}
	}

	// completed -> completed is rejected, but /start may reset.
	if ok, err := users.SetOnboardingStep(ctx, 7, model.StepCompleted); err != nil || ok {
		t.Errorf("repeated completion accepted: %v, %v", ok, err)
	}
	if ok, err := users.SetOnboardingStep(ctx, 7, model.StepMorningTime); err != nil || !ok {
		t.Errorf("reset to morning_time refused: %v, %v", ok, err)
	}
}

func TestListOnboarded(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository(newTestDB(t))

	// Fully onboarded with a morning time.
	if _, err := users.GetOrCreate(ctx, 1, "A", ""); err != nil {
		t.Fatal(err)
	}
	mustStep(t, users, 1, model.StepMorningTime)
	if err := users.SetRitualTime(ctx, 1, model.RitualMorning, "08:00"); err != nil {
		t.Fatal(err)
	}
	mustStep(t, users, 1, model.StepEveningTime)
	mustStep(t, users, 1, model.StepCompleted)

	// Stuck mid-onboarding: excluded.
	if _, err := users.GetOrCreate(ctx, 2, "B", ""); err != nil {
		t.Fatal(err)
	}
	mustStep(t, users, 2, model.StepMorningTime)

	// Never started: excluded.
	if _, err := users.GetOrCreate(ctx, 3, "C", ""); err != nil {
		t.Fatal(err)
	}

	onboarded, err := users.ListOnboarded(ctx)
	if err != nil {
		t.Fatalf("list onboarded: %v", err)
	}
	if len(onboarded) != 1 || onboarded[0].MaxUserID != 1 {
		t.Fatalf("expected only user 1, got %v", onboarded)
	}
}

func mustStep(t *testing.T, users *UserRepository, userID int64, step model.OnboardingStep) {
	t.Helper()
	ok, err := users.SetOnboardingStep(context.Background(), userID, step)
	if err != nil || !ok {
		t.Fatalf("SetOnboardingStep(%d -> %q) = %v, %v", userID, step, ok, err)
	}
}

func TestMoodLogRange(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	moods := NewMoodRepository(db)

	if err := moods.Log(ctx, 5, 8, model.RitualMorning); err == nil {
		t.Error("expected out-of-range level to be rejected")
	}
	if err := moods.Log(ctx, 5, 4, model.RitualEvening); err != nil {
		t.Errorf("valid level rejected: %v", err)
	}

	n, err := moods.CountForUser(ctx, 5)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("expected exactly one mood row, got %d", n)
	}
}
