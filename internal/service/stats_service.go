package service

import (
	"context"

	"github.com/luxestate/luxestate-api/internal/domain"
	"github.com/luxestate/luxestate-api/internal/repository/ports"
)

const dashboardChartMonths = 6

type StatsService struct {
	properties ports.PropertyRepository
	enquiries  ports.EnquiryRepository
}

func NewStatsService(propertyRepo ports.PropertyRepository, enquiryRepo ports.EnquiryRepository) *StatsService {
	return &StatsService{properties: propertyRepo, enquiries: enquiryRepo}
}

func (s *StatsService) Dashboard(ctx context.Context) (*domain.DashboardStats, []domain.MonthlyEnquiryCount, error) {
	total, available, err := s.properties.CountByAvailability(ctx)
	if err != nil {
		return nil, nil, err
	}

	byStatus, err := s.enquiries.CountByStatus(ctx)
	if err != nil {
		return nil, nil, err
	}
	totalEnquiries := 0
	for _, count := range byStatus {
		totalEnquiries += count
	}

	monthly, err := s.enquiries.CountPerMonth(ctx, dashboardChartMonths)
	if err != nil {
		return nil, nil, err
	}

	stats := &domain.DashboardStats{
		TotalProperties:     total,
		AvailableProperties: available,
		TotalEnquiries:      totalEnquiries,
		PendingEnquiries:    byStatus[domain.EnquiryStatusPending],
	}
	return stats, monthly, nil
}
