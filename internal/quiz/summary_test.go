package quiz

import (
	"testing"
	"time"
)

func summaryFixture() ([]Question, map[string]Answer, map[string]time.Duration) {
	questions := []Question{
		{ID: "a1", Topic: "algebra", Difficulty: Easy, Points: 5, CorrectValues: []string{"x"}},
		{ID: "a2", Topic: "algebra", Difficulty: Medium, Points: 5, CorrectValues: []string{"y"}},
		{ID: "g1", Topic: "geometry", Difficulty: Medium, Points: 10, CorrectValues: []string{"z"}},
		{ID: "g2", Topic: "geometry", Difficulty: Hard, Points: 10, CorrectValues: []string{"w"}},
	}
	answers := map[string]Answer{
		"a1": Single("x"),    // correct
		"a2": Single("nope"), // wrong
		"g1": Single("z"),    // correct
		"g2": Single("w"),    // correct
	}
	spent := map[string]time.Duration{
		"a1": 2 * time.Second,
		"a2": 4 * time.Second,
		"g1": 6 * time.Second,
		"g2": 8 * time.Second,
	}
	return questions, answers, spent
}

func TestBuildSummary_Totals(t *testing.T) {
	questions, answers, spent := summaryFixture()
	sum := BuildSummary(questions, answers, spent, nil, time.Minute, Hard)

	if sum.Correct != 3 || sum.Answered != 4 || sum.TotalQuestions != 4 {
		t.Errorf("correct/answered/total = %d/%d/%d, want 3/4/4", sum.Correct, sum.Answered, sum.TotalQuestions)
	}
	if sum.Score != 25 || sum.MaxScore != 30 {
		t.Errorf("score = %d/%d, want 25/30", sum.Score, sum.MaxScore)
	}
	if sum.Correct > sum.TotalQuestions || sum.Score > sum.MaxScore {
		t.Error("consistency bounds violated")
	}
	if sum.AvgTimePerItem != 5*time.Second {
		t.Errorf("avg time = %v, want 5s", sum.AvgTimePerItem)
	}
	if sum.FinalLevel != Hard {
		t.Errorf("final level = %v, want hard", sum.FinalLevel)
	}
}

func TestBuildSummary_PerTopicAndDifficulty(t *testing.T) {
	questions, answers, spent := summaryFixture()
	sum := BuildSummary(questions, answers, spent, nil, time.Minute, Medium)

	alg := sum.ByTopic["algebra"]
	if alg.Total != 2 || alg.Correct != 1 {
		t.Errorf("algebra = %+v, want 2 total / 1 correct", alg)
	}
	geo := sum.ByTopic["geometry"]
	if geo.Accuracy() != 1.0 {
		t.Errorf("geometry accuracy = %v, want 1.0", geo.Accuracy())
	}

	med := sum.ByDifficulty[Medium]
	if med.Total != 2 || med.Correct != 1 {
		t.Errorf("medium bucket = %+v, want 2 total / 1 correct", med)
	}
}

func TestBuildSummary_Streaks(t *testing.T) {
	// Order: correct, wrong, correct, correct → best 2, final 2.
	questions, answers, spent := summaryFixture()
	sum := BuildSummary(questions, answers, spent, nil, time.Minute, Medium)

	if sum.BestStreak != 2 {
		t.Errorf("best streak = %d, want 2", sum.BestStreak)
	}
	if sum.FinalStreak != 2 {
		t.Errorf("final streak = %d, want 2", sum.FinalStreak)
	}
}

func TestBuildSummary_UnansweredBreaksStreak(t *testing.T) {
	questions, answers, spent := summaryFixture()
	delete(answers, "a2") // unanswered instead of wrong
	sum := BuildSummary(questions, answers, spent, nil, time.Minute, Medium)

	if sum.Answered != 3 {
		t.Errorf("answered = %d, want 3", sum.Answered)
	}
	if sum.BestStreak != 2 {
		t.Errorf("best streak = %d, want 2 (gap breaks run)", sum.BestStreak)
	}
}

func TestBuildSummary_TimeoutsCounted(t *testing.T) {
	questions, answers, spent := summaryFixture()
	answers["g2"] = TimedOut()
	sum := BuildSummary(questions, answers, spent, nil, time.Minute, Medium)

	if sum.TimedOut != 1 {
		t.Errorf("timedOut = %d, want 1", sum.TimedOut)
	}
	if sum.Score != 15 {
		t.Errorf("score = %d, want 15 (g2 forfeited)", sum.Score)
	}
}

func TestBuildSummary_Empty(t *testing.T) {
	sum := BuildSummary(nil, nil, nil, nil, 0, Easy)
	if sum.TotalQuestions != 0 || sum.MaxScore != 0 || sum.AvgTimePerItem != 0 {
		t.Errorf("empty summary not zero-valued: %+v", sum)
	}
	if sum.Accuracy() != 0 {
		t.Errorf("empty accuracy = %v, want 0", sum.Accuracy())
	}
}
