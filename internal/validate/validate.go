// Package validate gates caller input before any request is made.
//
// The bool-returning functions never panic: on failure they log one warning
// carrying error_kind=ValidationFailure and return false. The Check variants
// return the underlying *model.Error instead of logging.
package validate

import (
	"seffaflik/internal/model"

	"github.com/sirupsen/logrus"
)

// Validator logs failed checks to Log.
type Validator struct {
	Log logrus.FieldLogger
}

func New(log logrus.FieldLogger) *Validator {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Validator{Log: log}
}

var std = New(nil)

func Date(text string) bool { return std.Date(text) }

func DateRange(start, end string) bool { return std.DateRange(start, end) }

func DateRangeWithEntity(start, end string, entity any) bool {
	return std.DateRangeWithEntity(start, end, entity)
}

func DateRangeWithPeriod(start, end, period string) bool {
	return std.DateRangeWithPeriod(start, end, period)
}

func DateRangeWithID(start, end string, id any) bool { return std.DateRangeWithID(start, end, id) }

func (v *Validator) Date(text string) bool {
	return v.report(CheckDate(text))
}

func (v *Validator) DateRange(start, end string) bool {
	return v.report(CheckDateRange(start, end))
}

func (v *Validator) DateRangeWithEntity(start, end string, entity any) bool {
	return v.report(CheckDateRangeWithEntity(start, end, entity))
}

func (v *Validator) DateRangeWithPeriod(start, end, period string) bool {
	return v.report(CheckDateRangeWithPeriod(start, end, period))
}

func (v *Validator) DateRangeWithID(start, end string, id any) bool {
	return v.report(CheckDateRangeWithID(start, end, id))
}

func (v *Validator) DateWithID(date string, id any) bool {
	return v.report(CheckDateWithID(date, id))
}

func (v *Validator) Entity(entity any) bool {
	return v.report(CheckEntity(entity))
}

// Report logs err like the other checks. It is for callers that combine
// Check functions themselves.
func (v *Validator) Report(err *model.Error) bool {
	return v.report(err)
}

func (v *Validator) VolumeType(kind string) bool {
	return v.report(CheckVolumeType(kind))
}

// report logs err (if any) and converts it to the validator result.
func (v *Validator) report(err *model.Error) bool {
	if err == nil {
		return true
	}
	v.Log.WithFields(logrus.Fields{
		"error_kind": model.KindValidation.String(),
		"constraint": err.Code,
	}).Warn(err.Message)
	return false
}

func CheckDate(text string) *model.Error {
	if _, err := model.ParseDate(text); err != nil {
		return model.NewValidationError("DATE_FORMAT", "dates must be in YYYY-MM-DD format (e.g. 2000-10-25), got %q", text)
	}
	return nil
}

func CheckDateRange(start, end string) *model.Error {
	s, err := model.ParseDate(start)
	if err != nil {
		return model.NewValidationError("DATE_FORMAT", "dates must be in YYYY-MM-DD format (e.g. 2000-10-25), got %q", start)
	}
	e, err := model.ParseDate(end)
	if err != nil {
		return model.NewValidationError("DATE_FORMAT", "dates must be in YYYY-MM-DD format (e.g. 2000-10-25), got %q", end)
	}
	if s.After(e) {
		return model.NewValidationError("DATE_ORDER", "end date %s must not be before start date %s", end, start)
	}
	return nil
}

func CheckDateRangeWithEntity(start, end string, entity any) *model.Error {
	if err := CheckDateRange(start, end); err != nil {
		return err
	}
	if _, ok := entity.(string); !ok {
		return model.NewValidationError("ENTITY_TYPE", "organization EIC must be a string, got %T", entity)
	}
	return nil
}

func CheckDateRangeWithPeriod(start, end, period string) *model.Error {
	if err := CheckDateRange(start, end); err != nil {
		return err
	}
	return CheckPeriod(period)
}

// CheckDateRangeWithID accepts plant ids given either as text or as an integer.
func CheckDateRangeWithID(start, end string, id any) *model.Error {
	if err := CheckDateRange(start, end); err != nil {
		return err
	}
	return checkID(id)
}

func CheckDateWithID(date string, id any) *model.Error {
	if err := CheckDate(date); err != nil {
		return err
	}
	return checkID(id)
}

func checkID(id any) *model.Error {
	switch id.(type) {
	case string, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return nil
	default:
		return model.NewValidationError("ID_TYPE", "plant id must be a string or an integer, got %T", id)
	}
}

// CheckEntity is for endpoints scoped by an entity code alone; an empty
// code would select nothing.
func CheckEntity(entity any) *model.Error {
	s, ok := entity.(string)
	if !ok {
		return model.NewValidationError("ENTITY_TYPE", "organization EIC must be a string, got %T", entity)
	}
	if s == "" {
		return model.NewValidationError("ENTITY_REQUIRED", "an organization EIC is required")
	}
	return nil
}

func CheckPeriod(period string) *model.Error {
	if _, ok := model.ParsePeriod(period); !ok {
		return model.NewValidationError("PERIOD", "period must be one of hourly, daily, monthly, yearly, got %q", period)
	}
	return nil
}

// CheckPublishedPeriod rejects periods the platform has no wire value for.
// Hourly figures only exist as separate hourly series.
func CheckPublishedPeriod(period string) *model.Error {
	p, ok := model.ParsePeriod(period)
	if !ok {
		return CheckPeriod(period)
	}
	if p.APIValue() == "" {
		return model.NewValidationError("PERIOD", "period %q is not published for this series", period)
	}
	return nil
}

func CheckVolumeType(kind string) *model.Error {
	if _, ok := model.ParseVolumeType(kind); !ok {
		return model.NewValidationError("VOLUME_TYPE", "volume type must be one of NET, ARZ, TALEP, got %q", kind)
	}
	return nil
}
