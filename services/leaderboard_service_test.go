package services

import "testing"

// The spec scenario: alice and bob register under Red Team, alice
// completes a 10-point task, bob a 5-point task, and the leaderboard
// reports Red Team with 15 points.
func TestTeamTotalsScenario(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	completions := NewCompletionService(db)
	leaderboard := NewLeaderboardService(db)

	alice, err := users.Register("a@x.com", "alice", "pw", "Red Team")
	if err != nil {
		t.Fatalf("register alice: %v", err)
	}
	bob, err := users.Register("b@x.com", "bob", "pw", "Red Team")
	if err != nil {
		t.Fatalf("register bob: %v", err)
	}
	// A team with members but no completions: must not appear at all.
	if _, err := users.Register("c@x.com", "carol", "pw", "Blue Team"); err != nil {
		t.Fatalf("register carol: %v", err)
	}

	task1 := createTask(t, db, "Photograph the launch pad", 10)
	task2 := createTask(t, db, "Spot the station overhead", 5)

	if _, err := completions.Record(alice.ID, task1.ID, "photos/a.jpg"); err != nil {
		t.Fatalf("record alice: %v", err)
	}
	if _, err := completions.Record(bob.ID, task2.ID, "photos/b.jpg"); err != nil {
		t.Fatalf("record bob: %v", err)
	}

	totals, err := leaderboard.TeamTotals()
	if err != nil {
		t.Fatalf("TeamTotals: %v", err)
	}
	if len(totals) != 1 {
		t.Fatalf("totals = %v, want exactly Red Team", totals)
	}
	if totals[0].TeamName != "Red Team" || totals[0].TotalPoints != 15 {
		t.Errorf("got (%q, %d), want (Red Team, 15)", totals[0].TeamName, totals[0].TotalPoints)
	}
}

func TestTeamTotalsOrderedByPoints(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	completions := NewCompletionService(db)
	leaderboard := NewLeaderboardService(db)

	alice, err := users.Register("a@x.com", "alice", "pw", "Red Team")
	if err != nil {
		t.Fatalf("register alice: %v", err)
	}
	bob, err := users.Register("b@x.com", "bob", "pw", "Blue Team")
	if err != nil {
		t.Fatalf("register bob: %v", err)
	}

	small := createTask(t, db, "Sketch the crew patch", 3)
	big := createTask(t, db, "Photograph the launch pad", 10)

	if _, err := completions.Record(alice.ID, small.ID, "photos/a.jpg"); err != nil {
		t.Fatalf("record alice: %v", err)
	}
	if _, err := completions.Record(bob.ID, big.ID, "photos/b.jpg"); err != nil {
		t.Fatalf("record bob: %v", err)
	}

	totals, err := leaderboard.TeamTotals()
	if err != nil {
		t.Fatalf("TeamTotals: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("totals = %v, want 2 rows", totals)
	}
	if totals[0].TeamName != "Blue Team" || totals[0].TotalPoints != 10 {
		t.Errorf("first row = (%q, %d), want (Blue Team, 10)", totals[0].TeamName, totals[0].TotalPoints)
	}
	if totals[1].TeamName != "Red Team" || totals[1].TotalPoints != 3 {
		t.Errorf("second row = (%q, %d), want (Red Team, 3)", totals[1].TeamName, totals[1].TotalPoints)
	}
}

func TestTeamTotalsEmptyLedger(t *testing.T) {
	db := newTestDB(t)
	leaderboard := NewLeaderboardService(db)

	totals, err := leaderboard.TeamTotals()
	if err != nil {
		t.Fatalf("TeamTotals: %v", err)
	}
	if len(totals) != 0 {
		t.Errorf("totals = %v, want empty", totals)
	}
}
