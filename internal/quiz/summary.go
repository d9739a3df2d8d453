package quiz

import "time"

// GroupStats is an answered/correct tally for one topic or level bucket.
type GroupStats struct {
	Total   int
	Correct int
}

// Accuracy returns the correct fraction, or 0 for an empty bucket.
func (g GroupStats) Accuracy() float64 {
	if g.Total == 0 {
		return 0
	}
	return float64(g.Correct) / float64(g.Total)
}

// Summary is the performance report computed once at session completion.
type Summary struct {
	TotalQuestions int
	Answered       int
	Correct        int
	TimedOut       int
	Flagged        int

	Score    int
	MaxScore int

	Duration       time.Duration
	AvgTimePerItem time.Duration

	// BestStreak is the longest run of consecutive correct answers in
	// question order; FinalStreak is the run still open at the end.
	BestStreak  int
	FinalStreak int

	ByTopic      map[string]GroupStats
	ByDifficulty map[Difficulty]GroupStats

	// FinalLevel is where the difficulty adapter ended the session.
	FinalLevel Difficulty
}

// BuildSummary derives the report from a finished run. Streaks follow
// question order, not submission order. Zero questions yields a zero
// summary; no field divides by the question count.
func BuildSummary(
	questions []Question,
	answers map[string]Answer,
	timeSpent map[string]time.Duration,
	flagged map[string]bool,
	duration time.Duration,
	finalLevel Difficulty,
) *Summary {
	sum := &Summary{
		TotalQuestions: len(questions),
		Duration:       duration,
		ByTopic:        make(map[string]GroupStats),
		ByDifficulty:   make(map[Difficulty]GroupStats),
		FinalLevel:     finalLevel,
	}

	streak := 0
	var spent time.Duration
	for i := range questions {
		q := &questions[i]
		sum.MaxScore += q.Points
		if flagged[q.ID] {
			sum.Flagged++
		}

		a, ok := answers[q.ID]
		if !ok {
			streak = 0
			continue
		}
		sum.Answered++
		spent += timeSpent[q.ID]
		if a.IsTimeout() {
			sum.TimedOut++
		}

		correct := Validate(a, q.CorrectAnswer())
		topic := sum.ByTopic[q.Topic]
		topic.Total++
		byLevel := sum.ByDifficulty[q.Difficulty]
		byLevel.Total++

		if correct {
			sum.Correct++
			sum.Score += q.Points
			topic.Correct++
			byLevel.Correct++
			streak++
			if streak > sum.BestStreak {
				sum.BestStreak = streak
			}
		} else {
			streak = 0
		}
		sum.ByTopic[q.Topic] = topic
		sum.ByDifficulty[q.Difficulty] = byLevel
	}
	sum.FinalStreak = streak

	if sum.Answered > 0 {
		sum.AvgTimePerItem = spent / time.Duration(sum.Answered)
	}
	return sum
}

// Accuracy returns the overall correct fraction over answered questions.
func (s *Summary) Accuracy() float64 {
	if s.Answered == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Answered)
}
