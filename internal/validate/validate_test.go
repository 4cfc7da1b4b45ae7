package validate

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator() (*Validator, *test.Hook) {
	log, hook := test.NewNullLogger()
	return New(log), hook
}

func TestDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"valid", "2021-01-01", true},
		{"leap day", "2020-02-29", true},
		{"not a leap year", "2021-02-29", false},
		{"bad month", "2021-13-01", false},
		{"day first", "01-01-2021", false},
		{"slashes", "2021/01/01", false},
		{"empty", "", false},
		{"with time", "2021-01-01T00:00:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, hook := newTestValidator()
			assert.Equal(t, tt.want, v.Date(tt.in))
			if tt.want {
				assert.Empty(t, hook.AllEntries())
				return
			}
			require.Len(t, hook.AllEntries(), 1)
			entry := hook.LastEntry()
			assert.Equal(t, logrus.WarnLevel, entry.Level)
			assert.Equal(t, "ValidationFailure", entry.Data["error_kind"])
			assert.Equal(t, "DATE_FORMAT", entry.Data["constraint"])
		})
	}
}

func TestDateRange(t *testing.T) {
	v, hook := newTestValidator()

	assert.True(t, v.DateRange("2021-01-01", "2021-01-01"))
	assert.True(t, v.DateRange("2021-01-01", "2021-01-31"))
	assert.Empty(t, hook.AllEntries())

	assert.False(t, v.DateRange("2021-01-02", "2021-01-01"))
	assert.Equal(t, "DATE_ORDER", hook.LastEntry().Data["constraint"])

	assert.False(t, v.DateRange("2021-01-01", "yarın"))
	assert.Equal(t, "DATE_FORMAT", hook.LastEntry().Data["constraint"])
	assert.Len(t, hook.AllEntries(), 2)
}

func TestDateRangeWithEntity(t *testing.T) {
	v, hook := newTestValidator()

	assert.True(t, v.DateRangeWithEntity("2021-01-01", "2021-01-02", "40X000000000104H"))
	assert.False(t, v.DateRangeWithEntity("2021-01-01", "2021-01-02", 195))
	assert.Equal(t, "ENTITY_TYPE", hook.LastEntry().Data["constraint"])

	// date checks run first
	assert.False(t, v.DateRangeWithEntity("2021-01-03", "2021-01-02", 195))
	assert.Equal(t, "DATE_ORDER", hook.LastEntry().Data["constraint"])
}

func TestDateRangeWithID(t *testing.T) {
	v, hook := newTestValidator()

	assert.True(t, v.DateRangeWithID("2021-01-01", "2021-01-02", "641"))
	assert.True(t, v.DateRangeWithID("2021-01-01", "2021-01-02", 641))
	assert.True(t, v.DateRangeWithID("2021-01-01", "2021-01-02", int64(641)))
	assert.False(t, v.DateRangeWithID("2021-01-01", "2021-01-02", 6.41))
	assert.Equal(t, "ID_TYPE", hook.LastEntry().Data["constraint"])
	assert.False(t, v.DateRangeWithID("2021-01-01", "2021-01-02", nil))
}

func TestDateWithID(t *testing.T) {
	v, hook := newTestValidator()

	assert.True(t, v.DateWithID("2021-01-01", 641))
	assert.False(t, v.DateWithID("2021-1-1", 641))
	assert.Equal(t, "DATE_FORMAT", hook.LastEntry().Data["constraint"])
	assert.False(t, v.DateWithID("2021-01-01", 6.41))
	assert.Equal(t, "ID_TYPE", hook.LastEntry().Data["constraint"])
}

func TestEntity(t *testing.T) {
	v, hook := newTestValidator()

	assert.True(t, v.Entity("40X000000000104H"))
	assert.False(t, v.Entity(""))
	assert.Equal(t, "ENTITY_REQUIRED", hook.LastEntry().Data["constraint"])
	assert.False(t, v.Entity(195))
	assert.Equal(t, "ENTITY_TYPE", hook.LastEntry().Data["constraint"])
	assert.Len(t, hook.AllEntries(), 2)
}

func TestPeriodAndVolume(t *testing.T) {
	v, hook := newTestValidator()

	assert.True(t, v.DateRangeWithPeriod("2021-01-01", "2021-12-31", "aylık"))
	assert.False(t, v.DateRangeWithPeriod("2021-01-01", "2021-12-31", "weekly"))
	assert.Equal(t, "PERIOD", hook.LastEntry().Data["constraint"])

	assert.False(t, v.Report(CheckPublishedPeriod("hourly")))
	assert.Equal(t, "PERIOD", hook.LastEntry().Data["constraint"])
	assert.True(t, v.Report(CheckPublishedPeriod("aylık")))

	assert.True(t, v.VolumeType("TALEP"))
	assert.False(t, v.VolumeType("ALIS"))
	assert.Equal(t, "VOLUME_TYPE", hook.LastEntry().Data["constraint"])
}

func TestCheckReturnsTypedError(t *testing.T) {
	err := CheckDateRange("2021-02-01", "2021-01-01")
	require.NotNil(t, err)
	assert.Equal(t, "DATE_ORDER", err.Code)
	assert.Contains(t, err.Message, "2021-01-01")

	assert.Nil(t, CheckDate("2000-10-25"))
	assert.Nil(t, CheckVolumeType(""))
}

func TestPackageLevelHelpers(t *testing.T) {
	assert.True(t, Date("2021-01-01"))
	assert.True(t, DateRange("2021-01-01", "2021-01-02"))
	assert.True(t, DateRangeWithEntity("2021-01-01", "2021-01-02", "X"))
	assert.True(t, DateRangeWithPeriod("2021-01-01", "2021-01-02", "hourly"))
	assert.True(t, DateRangeWithID("2021-01-01", "2021-01-02", 1))
}
