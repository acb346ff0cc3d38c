package services

import (
	"errors"
	"testing"
	"time"

	"github.com/jfk9unit/caninecompanionapp/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func recordWithClaim(streak, longest, logins int, last time.Time) *models.StreakRecord {
	return &models.StreakRecord{
		UserID:        "u1",
		CurrentStreak: streak,
		LongestStreak: longest,
		TotalLogins:   logins,
		LastClaimDate: &last,
	}
}

func TestAdvanceStreakFirstClaim(t *testing.T) {
	today := date(2024, 7, 10)
	next, err := AdvanceStreak(nil, "u1", today)
	if err != nil {
		t.Fatal(err)
	}

	if next.CurrentStreak != 1 || next.LongestStreak != 1 || next.TotalLogins != 1 {
		t.Errorf("unexpected first claim record: %+v", next)
	}
	if next.LastClaimDate == nil || !next.LastClaimDate.Equal(today) {
		t.Errorf("last claim date = %v, want %v", next.LastClaimDate, today)
	}
}

func TestAdvanceStreakSameDayRepeat(t *testing.T) {
	today := date(2024, 7, 10)
	record := recordWithClaim(3, 5, 10, today)

	_, err := AdvanceStreak(record, "u1", today)
	if !errors.Is(err, ErrAlreadyClaimed) {
		t.Errorf("err = %v, want ErrAlreadyClaimed", err)
	}

	// a later timestamp on the same calendar day is still a repeat
	_, err = AdvanceStreak(record, "u1", today.Add(23*time.Hour))
	if !errors.Is(err, ErrAlreadyClaimed) {
		t.Errorf("err = %v, want ErrAlreadyClaimed", err)
	}
}

func TestAdvanceStreakConsecutiveDay(t *testing.T) {
	record := recordWithClaim(3, 5, 10, date(2024, 7, 10))

	next, err := AdvanceStreak(record, "u1", date(2024, 7, 11))
	if err != nil {
		t.Fatal(err)
	}

	if next.CurrentStreak != 4 {
		t.Errorf("streak = %d, want 4", next.CurrentStreak)
	}
	if next.LongestStreak != 5 {
		t.Errorf("longest = %d, want 5 (unchanged)", next.LongestStreak)
	}
	if next.TotalLogins != 11 {
		t.Errorf("logins = %d, want 11", next.TotalLogins)
	}
	// the input record must stay untouched
	if record.CurrentStreak != 3 {
		t.Errorf("input record mutated: %+v", record)
	}
}

func TestAdvanceStreakExtendsLongest(t *testing.T) {
	record := recordWithClaim(5, 5, 20, date(2024, 7, 10))

	next, err := AdvanceStreak(record, "u1", date(2024, 7, 11))
	if err != nil {
		t.Fatal(err)
	}

	if next.CurrentStreak != 6 || next.LongestStreak != 6 {
		t.Errorf("streak/longest = %d/%d, want 6/6", next.CurrentStreak, next.LongestStreak)
	}
}

func TestAdvanceStreakGapResets(t *testing.T) {
	record := recordWithClaim(9, 9, 30, date(2024, 7, 10))

	next, err := AdvanceStreak(record, "u1", date(2024, 7, 12))
	if err != nil {
		t.Fatal(err)
	}

	if next.CurrentStreak != 1 {
		t.Errorf("streak = %d, want reset to 1", next.CurrentStreak)
	}
	if next.LongestStreak != 9 {
		t.Errorf("longest = %d, want 9 preserved across reset", next.LongestStreak)
	}
	if next.TotalLogins != 31 {
		t.Errorf("logins = %d, want 31", next.TotalLogins)
	}
}

func TestAdvanceStreakMonthBoundary(t *testing.T) {
	record := recordWithClaim(2, 2, 2, date(2024, 6, 30))

	next, err := AdvanceStreak(record, "u1", date(2024, 7, 1))
	if err != nil {
		t.Fatal(err)
	}

	if next.CurrentStreak != 3 {
		t.Errorf("streak = %d, want 3 across the month boundary", next.CurrentStreak)
	}
}

func TestComputeClaimRewardDaySevenMilestone(t *testing.T) {
	record := recordWithClaim(6, 6, 6, date(2024, 7, 9))

	next, err := AdvanceStreak(record, "u1", date(2024, 7, 10))
	if err != nil {
		t.Fatal(err)
	}

	reward, milestone, pay := ComputeClaimReward(next, false, models.VIPDailyTokens)
	if !pay {
		t.Fatal("claiming day 7 should pay the milestone")
	}
	if reward.Tokens != 120 {
		t.Errorf("tokens = %d, want 120 (day-7 payout plus milestone bonus)", reward.Tokens)
	}
	if reward.XP != 75 {
		t.Errorf("xp = %d, want 75", reward.XP)
	}
	if milestone.BadgeTitle != "Week Warrior" {
		t.Errorf("badge = %q, want Week Warrior", milestone.BadgeTitle)
	}
}

func TestComputeClaimRewardVIPFlatTokens(t *testing.T) {
	record := recordWithClaim(7, 7, 7, date(2024, 7, 10))
	record.MilestonesEarned = []int{7}

	reward, _, pay := ComputeClaimReward(record, true, 25)
	if pay {
		t.Error("already-earned milestone should not pay again")
	}
	if reward.Tokens != 25 {
		t.Errorf("tokens = %d, want the configured VIP amount 25", reward.Tokens)
	}
	if reward.XP != 150 {
		t.Errorf("xp = %d, want 150 (doubled for VIP)", reward.XP)
	}
}

func TestComputeClaimRewardMilestoneOncePerRecord(t *testing.T) {
	// earn the week milestone, miss a few days, then grow the streak back
	record := recordWithClaim(7, 7, 7, date(2024, 7, 10))
	record.MilestonesEarned = []int{7}

	next, err := AdvanceStreak(record, "u1", date(2024, 7, 15))
	if err != nil {
		t.Fatal(err)
	}
	if next.CurrentStreak != 1 {
		t.Fatalf("streak = %d, want reset to 1", next.CurrentStreak)
	}

	for day := 16; day <= 21; day++ {
		next, err = AdvanceStreak(next, "u1", date(2024, 7, day))
		if err != nil {
			t.Fatal(err)
		}
	}
	if next.CurrentStreak != 7 {
		t.Fatalf("streak = %d, want regrown to 7", next.CurrentStreak)
	}

	reward, _, pay := ComputeClaimReward(next, false, models.VIPDailyTokens)
	if pay {
		t.Error("regrown streak should not pay the week milestone twice")
	}
	if reward.Tokens != 50 {
		t.Errorf("tokens = %d, want the plain day-7 payout 50", reward.Tokens)
	}
}

func TestAdvanceStreakNilLastClaimDate(t *testing.T) {
	record := &models.StreakRecord{UserID: "u1", CurrentStreak: 4, LongestStreak: 4, TotalLogins: 4}

	next, err := AdvanceStreak(record, "u1", date(2024, 7, 10))
	if err != nil {
		t.Fatal(err)
	}

	if next.CurrentStreak != 1 {
		t.Errorf("streak = %d, want 1 for a record without a claim date", next.CurrentStreak)
	}
}
