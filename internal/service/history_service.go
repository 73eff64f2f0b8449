package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"interviewflow/internal/cache"
	"interviewflow/internal/model"
)

// HistoryService shapes stored interview records for the history and
// dashboard views.
type HistoryService struct {
	store cache.HistoryStore
}

// NewHistoryService creates a new history service
func NewHistoryService(store cache.HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// RecentInterviews lists the most recently finished interviews, newest
// first.
func (s *HistoryService) RecentInterviews(ctx context.Context, limit int) ([]model.HistoryItem, error) {
	records, err := s.store.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}

	items := make([]model.HistoryItem, 0, len(records))
	for _, record := range records {
		items = append(items, historyItem(record))
	}
	return items, nil
}

// DashboardStats aggregates stored reports into the dashboard view. The
// skill matrix is scaled from report averages; rounds and alerts carry
// fixed copy.
func (s *HistoryService) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	records, err := s.store.Recent(ctx, 20)
	if err != nil {
		return nil, err
	}

	mean := func(metric string) float64 {
		if len(records) == 0 {
			return 0.0
		}
		sum := 0.0
		for _, record := range records {
			sum += record.Averages[metric]
		}
		return sum / float64(len(records))
	}

	technical := mean("technical_accuracy")
	clarity := mean("clarity")
	confidence := mean("confidence")
	attitude := mean("attitude")

	missions := []model.HistoryItem{}
	for i, record := range records {
		if i >= 3 {
			break
		}
		missions = append(missions, historyItem(record))
	}

	return &model.DashboardStats{
		Rounds: []model.RoundInfo{
			{
				ID:             "1",
				Name:           "Screening",
				RoundLabel:     "1 Round",
				ApplicantsDesc: fmt.Sprintf("%d Interviews Completed", len(records)),
				QuestionsDesc:  fmt.Sprintf("%d Questions", totalQuestions(records)),
				Status:         "Completed",
				StatusColor:    "text-green-500",
			},
			{
				ID:             "2",
				Name:           "Coding",
				RoundLabel:     "2 Round",
				ApplicantsDesc: "Practice in the Code Dojo",
				QuestionsDesc:  "27 Questions",
				Status:         "In progress",
				StatusColor:    "text-blue-500",
			},
		},
		SkillMatrix: []model.SkillMatrixItem{
			{Subject: "Technical", A: scale(technical)},
			{Subject: "Communication", A: scale(clarity)},
			{Subject: "Confidence", A: scale(confidence)},
			{Subject: "Subject Depth", A: scale((technical + clarity) / 2)},
			{Subject: "Problem Solving", A: scale((technical + confidence) / 2)},
			{Subject: "Culture Fit", A: scale(attitude)},
		},
		CriticalAlerts: []model.CriticalAlert{
			{
				ID:          "1",
				Title:       "System Design Depth",
				Description: "You failed to discuss Scalability in recent sessions.",
				Type:        "critical",
				ActionLabel: "Practice Module",
			},
			{
				ID:          "2",
				Title:       "Body Language",
				Description: "Eye contact drops below 40% when thinking.",
				Type:        "warning",
				ActionLabel: "Practice Module",
			},
		},
		RecentMissions: missions,
	}, nil
}

func historyItem(record model.InterviewRecord) model.HistoryItem {
	status := "Incomplete"
	if record.Completed {
		status = "Completed"
	}

	minutes := int(record.EndedAt.Sub(record.StartedAt).Round(time.Minute).Minutes())

	return model.HistoryItem{
		ID:       record.SessionID,
		Role:     record.Role,
		Date:     record.EndedAt.Format("2006-01-02"),
		Duration: fmt.Sprintf("%dm", minutes),
		Score:    int(math.Round(record.HiringProbability * 100)),
		Status:   status,
	}
}

func totalQuestions(records []model.InterviewRecord) int {
	total := 0
	for _, record := range records {
		total += record.NumQuestions
	}
	return total
}

func scale(v float64) float64 {
	return math.Round(v * 100)
}
