package transparency

import (
	"context"
	"net/url"
	"testing"

	"seffaflik/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockFetcher is a mock implementation of Fetcher for testing.
type MockFetcher struct {
	mock.Mock
}

var _ Fetcher = &MockFetcher{} // Compile-time check

// Fetch implements the Fetcher interface.
func (m *MockFetcher) Fetch(ctx context.Context, path string, params url.Values) (map[string]any, error) {
	args := m.Called(ctx, path, params)
	body, _ := args.Get(0).(map[string]any)
	return body, args.Error(1)
}

func TestSeriesSendsEntityParams(t *testing.T) {
	m := &MockFetcher{}
	want := url.Values{
		"startDate":       {"2021-01-01"},
		"endDate":         {"2021-01-02"},
		"organizationEIC": {"40X000000000104H"},
		"uevcbEIC":        {""},
	}
	m.On("Fetch", mock.Anything, "production/dpp", want).Return(map[string]any{"dppList": []any{}}, nil).Once()

	s, hook := newTestService(m)
	table := s.Series(context.Background(), "kgup", model.Query{Start: "2021-01-01", End: "2021-01-02", Entity: "40X000000000104H"})

	assert.True(t, table.Empty())
	assert.Len(t, table.Columns, 13)
	assert.Empty(t, hook.AllEntries())
	m.AssertExpectations(t)
}

func TestSeriesGatewayErrorNotRelogged(t *testing.T) {
	m := &MockFetcher{}
	m.On("Fetch", mock.Anything, "market/smp", mock.Anything).
		Return(nil, &model.Error{Kind: model.KindConnectivity, Code: "CONNECTION_FAILED"}).Once()

	s, hook := newTestService(m)
	table := s.Series(context.Background(), "smf", model.Query{Start: "2021-01-01", End: "2021-01-01"})

	assert.Equal(t, []string{"Tarih", "Saat", "SMF", "Sistem Yönü"}, table.Header())
	assert.Empty(t, hook.AllEntries())
	m.AssertExpectations(t)
}

func TestValidationFailureSkipsFetcher(t *testing.T) {
	m := &MockFetcher{}
	s, _ := newTestService(m)

	s.Series(context.Background(), "santraller", model.Query{Start: "25.10.2000"})
	s.Series(context.Background(), "gerceklesen-uretim-santral", model.Query{Start: "2021-01-01", End: "2020-01-01", Entity: "641"})

	m.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything, mock.Anything)
}
