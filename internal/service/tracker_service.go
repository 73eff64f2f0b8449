package service

import (
	"context"

	"interviewflow/internal/model"
	"interviewflow/internal/repository"
)

// TrackerService manages the job-application kanban board.
type TrackerService struct {
	repo repository.TrackerRepo
}

// NewTrackerService creates a new tracker service
func NewTrackerService(repo repository.TrackerRepo) *TrackerService {
	return &TrackerService{repo: repo}
}

// Board returns the tracker board, seeding the default board on first
// read.
func (s *TrackerService) Board(ctx context.Context) (*model.TrackerData, error) {
	data, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if data == nil {
		data = defaultBoard()
		if err := s.repo.Replace(ctx, data); err != nil {
			return nil, err
		}
	}
	return data, nil
}

// Update replaces the whole board.
func (s *TrackerService) Update(ctx context.Context, data *model.TrackerData) (*model.TrackerData, error) {
	if err := s.repo.Replace(ctx, data); err != nil {
		return nil, err
	}
	return data, nil
}

// AddJob appends a job card to a column (wishlist when unspecified) and
// returns the updated board.
func (s *TrackerService) AddJob(ctx context.Context, job model.JobApplication, columnID string) (*model.TrackerData, error) {
	data, err := s.Board(ctx)
	if err != nil {
		return nil, err
	}

	if columnID == "" {
		columnID = "wishlist"
	}
	if column, ok := data.Columns[columnID]; ok {
		column.Items = append(column.Items, job)
		data.Columns[columnID] = column
	}

	if err := s.repo.Replace(ctx, data); err != nil {
		return nil, err
	}
	return data, nil
}

func defaultBoard() *model.TrackerData {
	return &model.TrackerData{
		Columns: map[string]model.TrackerColumn{
			"wishlist": {
				ID:    "wishlist",
				Title: "Wishlist",
				Color: "border-slate-500",
				Items: []model.JobApplication{
					{ID: "job-1", Company: "Netflix", Role: "Senior Backend Engineer", Logo: "https://logo.clearbit.com/netflix.com", DaysAgo: 2, Status: "active"},
					{ID: "job-2", Company: "Airbnb", Role: "Staff Software Engineer", Logo: "https://logo.clearbit.com/airbnb.com", DaysAgo: 5, Status: "active"},
				},
			},
			"applied": {
				ID:    "applied",
				Title: "Applied",
				Color: "border-blue-500",
				Items: []model.JobApplication{
					{ID: "job-3", Company: "Stripe", Role: "Product Engineer", Logo: "https://logo.clearbit.com/stripe.com", DaysAgo: 15, Status: "stagnant"},
					{ID: "job-4", Company: "Uber", Role: "Backend Developer", Logo: "https://logo.clearbit.com/uber.com", DaysAgo: 3, Status: "active"},
				},
			},
			"phone": {
				ID:    "phone",
				Title: "Phone Screen",
				Color: "border-purple-500",
				Items: []model.JobApplication{
					{ID: "job-5", Company: "DoorDash", Role: "Senior Engineer", Logo: "https://logo.clearbit.com/doordash.com", DaysAgo: 1, Status: "active"},
				},
			},
			"technical": {
				ID:    "technical",
				Title: "Technical Round",
				Color: "border-orange-500",
				Items: []model.JobApplication{
					{ID: "job-6", Company: "Google", Role: "L5 Software Engineer", Logo: "https://logo.clearbit.com/google.com", DaysAgo: 4, Status: "active"},
				},
			},
			"offer": {
				ID:    "offer",
				Title: "Offer",
				Color: "border-green-500",
				Items: []model.JobApplication{},
			},
			"rejected": {
				ID:    "rejected",
				Title: "Rejected",
				Color: "border-red-500",
				Items: []model.JobApplication{
					{ID: "job-7", Company: "Meta", Role: "Production Engineer", Logo: "https://logo.clearbit.com/meta.com", DaysAgo: 20, Status: "active"},
				},
			},
		},
		ColumnOrder: []string{"wishlist", "applied", "phone", "technical", "offer", "rejected"},
	}
}
