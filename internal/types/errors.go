package types

import "errors"

var (
	ErrMissingReportID = errors.New("report id is required")
)
