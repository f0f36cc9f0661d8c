package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rewardo/reward-flight-search/internal/domain"
	"github.com/rewardo/reward-flight-search/test/mock"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func defaultPage() domain.PageRequest {
	return domain.PageRequest{Number: 0, Size: 10}
}

func TestRangeSearchInjectsConfiguredCarrier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name        string
		config      *Config
		wantCarrier string
	}{
		{name: "configured carrier", config: &Config{CarrierCode: "BA"}, wantCarrier: "BA"},
		{name: "nil config uses default", config: nil, wantCarrier: "VS"},
		{name: "empty carrier uses default", config: &Config{}, wantCarrier: "VS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mock.NewMockRewardFlightRepository(ctrl)
			repo.EXPECT().
				RangeSearch(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, criteria domain.RangeCriteria) (domain.Page[domain.RewardFlight], error) {
					assert.Equal(t, tt.wantCarrier, criteria.CarrierCode)
					return domain.NewPage[domain.RewardFlight](nil, criteria.Page, 0), nil
				})

			uc := NewRewardSearchUseCase(repo, tt.config, zerolog.Nop())

			_, err := uc.RangeSearch(context.Background(), "LHR", "JFK",
				mustDate(t, "2024-06-01"), mustDate(t, "2024-06-03"), defaultPage())
			require.NoError(t, err)
		})
	}
}

func TestRangeSearchValidationRejectsBeforeRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No repository expectations: invalid criteria must never reach the store.
	repo := mock.NewMockRewardFlightRepository(ctrl)
	uc := NewRewardSearchUseCase(repo, nil, zerolog.Nop())

	tests := []struct {
		name string
		run  func() error
	}{
		{
			name: "bad origin",
			run: func() error {
				_, err := uc.RangeSearch(context.Background(), "lhr", "JFK",
					mustDate(t, "2024-06-01"), mustDate(t, "2024-06-03"), defaultPage())
				return err
			},
		},
		{
			name: "zero page size",
			run: func() error {
				_, err := uc.RangeSearch(context.Background(), "LHR", "JFK",
					mustDate(t, "2024-06-01"), mustDate(t, "2024-06-03"),
					domain.PageRequest{Number: 0, Size: 0})
				return err
			},
		},
		{
			name: "cheapest with first cabin",
			run: func() error {
				_, err := uc.CheapestSearch(context.Background(), "LHR", "JFK",
					domain.CabinFirst, domain.PageRequest{Number: 0, Size: 50})
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidRequest)
		})
	}
}

func TestRangeSearchPassesPageThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	want := domain.Page[domain.RewardFlight]{
		Content:       []domain.RewardFlight{{ID: "1", Origin: "LHR", Destination: "JFK"}},
		PageNumber:    2,
		PageSize:      10,
		TotalElements: 21,
		TotalPages:    3,
	}

	repo := mock.NewMockRewardFlightRepository(ctrl)
	repo.EXPECT().
		RangeSearch(gomock.Any(), gomock.Any()).
		Return(want, nil)

	uc := NewRewardSearchUseCase(repo, nil, zerolog.Nop())

	got, err := uc.RangeSearch(context.Background(), "LHR", "JFK",
		mustDate(t, "2024-06-01"), mustDate(t, "2024-06-03"),
		domain.PageRequest{Number: 2, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSearchErrorsPropagateWithoutRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeErr := domain.NewDataAccessError("range search count", errors.New("connection refused"))

	repo := mock.NewMockRewardFlightRepository(ctrl)
	// Times(1) pins down the no-internal-retry policy.
	repo.EXPECT().
		RangeSearch(gomock.Any(), gomock.Any()).
		Return(domain.Page[domain.RewardFlight]{}, storeErr).
		Times(1)

	uc := NewRewardSearchUseCase(repo, nil, zerolog.Nop())

	_, err := uc.RangeSearch(context.Background(), "LHR", "JFK",
		mustDate(t, "2024-06-01"), mustDate(t, "2024-06-03"), defaultPage())
	require.Error(t, err)

	var dae *domain.DataAccessError
	assert.True(t, errors.As(err, &dae))
}

func TestQueryTimeoutBoundsRepositoryContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRewardFlightRepository(ctrl)
	repo.EXPECT().
		RangeSearch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, criteria domain.RangeCriteria) (domain.Page[domain.RewardFlight], error) {
			deadline, ok := ctx.Deadline()
			require.True(t, ok, "repository context should carry the configured deadline")
			assert.WithinDuration(t, time.Now().Add(2*time.Second), deadline, time.Second)
			return domain.NewPage[domain.RewardFlight](nil, criteria.Page, 0), nil
		})
	repo.EXPECT().
		CheapestSearch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, criteria domain.CheapestCriteria) (domain.Page[domain.RewardFlight], error) {
			_, ok := ctx.Deadline()
			require.True(t, ok)
			return domain.NewPage[domain.RewardFlight](nil, criteria.Page, 0), nil
		})

	uc := NewRewardSearchUseCase(repo, &Config{QueryTimeout: 2 * time.Second}, zerolog.Nop())

	_, err := uc.RangeSearch(context.Background(), "LHR", "JFK",
		mustDate(t, "2024-06-01"), mustDate(t, "2024-06-03"), defaultPage())
	require.NoError(t, err)

	_, err = uc.CheapestSearch(context.Background(), "LHR", "JFK",
		domain.CabinEconomy, domain.PageRequest{Number: 0, Size: 50})
	require.NoError(t, err)
}

func TestZeroQueryTimeoutLeavesContextUnbounded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRewardFlightRepository(ctrl)
	repo.EXPECT().
		RangeSearch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, criteria domain.RangeCriteria) (domain.Page[domain.RewardFlight], error) {
			_, ok := ctx.Deadline()
			assert.False(t, ok, "no configured timeout should mean no deadline")
			return domain.NewPage[domain.RewardFlight](nil, criteria.Page, 0), nil
		})

	uc := NewRewardSearchUseCase(repo, &Config{CarrierCode: "VS"}, zerolog.Nop())

	_, err := uc.RangeSearch(context.Background(), "LHR", "JFK",
		mustDate(t, "2024-06-01"), mustDate(t, "2024-06-03"), defaultPage())
	require.NoError(t, err)
}

func TestExpiredQueryTimeoutSurfacesDeadline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRewardFlightRepository(ctrl)
	repo.EXPECT().
		RangeSearch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ domain.RangeCriteria) (domain.Page[domain.RewardFlight], error) {
			<-ctx.Done()
			return domain.Page[domain.RewardFlight]{}, ctx.Err()
		})

	uc := NewRewardSearchUseCase(repo, &Config{QueryTimeout: time.Millisecond}, zerolog.Nop())

	_, err := uc.RangeSearch(context.Background(), "LHR", "JFK",
		mustDate(t, "2024-06-01"), mustDate(t, "2024-06-03"), defaultPage())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCheapestSearchDelegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	want := domain.Page[domain.RewardFlight]{
		Content:       []domain.RewardFlight{{ID: "5"}},
		PageNumber:    0,
		PageSize:      50,
		TotalElements: 1,
		TotalPages:    1,
	}

	repo := mock.NewMockRewardFlightRepository(ctrl)
	repo.EXPECT().
		CheapestSearch(gomock.Any(), domain.CheapestCriteria{
			Origin:      "LHR",
			Destination: "JFK",
			Cabin:       domain.CabinBusiness,
			Page:        domain.PageRequest{Number: 0, Size: 50},
		}).
		Return(want, nil)

	uc := NewRewardSearchUseCase(repo, nil, zerolog.Nop())

	got, err := uc.CheapestSearch(context.Background(), "LHR", "JFK",
		domain.CabinBusiness, domain.PageRequest{Number: 0, Size: 50})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
