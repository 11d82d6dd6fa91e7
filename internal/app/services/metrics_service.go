package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/emre/staffhub/internal/app/models"
)

// MetricsService aggregates the counters for the dashboard landing page
type MetricsService interface {
	GetDashboardMetrics(ctx context.Context) (*models.DashboardMetrics, error)
}

type employeeCounter interface {
	Count(ctx context.Context) (int64, error)
}

type departmentCounter interface {
	Count(ctx context.Context) (int64, error)
}

type taskCounter interface {
	Count(ctx context.Context) (int64, error)
}

type pendingLeaveCounter interface {
	CountPending(ctx context.Context) (int64, error)
}

type metricsService struct {
	employeeRepo   employeeCounter
	departmentRepo departmentCounter
	taskRepo       taskCounter
	leaveRepo      pendingLeaveCounter
}

// NewMetricsService creates a new metrics service instance
func NewMetricsService(
	employeeRepo employeeCounter,
	departmentRepo departmentCounter,
	taskRepo taskCounter,
	leaveRepo pendingLeaveCounter,
) MetricsService {
	return &metricsService{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		taskRepo:       taskRepo,
		leaveRepo:      leaveRepo,
	}
}

// GetDashboardMetrics runs the four count queries concurrently and fails
// as a whole if any of them fails
func (s *metricsService) GetDashboardMetrics(ctx context.Context) (*models.DashboardMetrics, error) {
	var metrics models.DashboardMetrics

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.employeeRepo.Count(gctx)
		if err != nil {
			return fmt.Errorf("error counting employees: %w", err)
		}
		metrics.TotalEmployees = n
		return nil
	})

	g.Go(func() error {
		n, err := s.departmentRepo.Count(gctx)
		if err != nil {
			return fmt.Errorf("error counting departments: %w", err)
		}
		metrics.TotalDepartments = n
		return nil
	})

	g.Go(func() error {
		n, err := s.taskRepo.Count(gctx)
		if err != nil {
			return fmt.Errorf("error counting tasks: %w", err)
		}
		metrics.TotalTasks = n
		return nil
	})

	g.Go(func() error {
		n, err := s.leaveRepo.CountPending(gctx)
		if err != nil {
			return fmt.Errorf("error counting pending leave requests: %w", err)
		}
		metrics.PendingLeaveRequests = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &metrics, nil
}
