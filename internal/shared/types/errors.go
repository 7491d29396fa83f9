package types

import "errors"

var (
	ErrInvalidUsageFile      = errors.New("usage file is not a valid JSON array of records")
	ErrNoPeriods             = errors.New("no billing periods configured")
	ErrInvalidPeriod         = errors.New("invalid period, expected label=file")
	ErrUnsupportedReportType = errors.New("unsupported report type")
)
