package orders

import (
	"errors"

	"shopreorder/parsers"
)

var (
	ErrNoShopSelected  = errors.New("no shop selected")
	ErrMissingFiles    = errors.New("sales and stock files are required")
	ErrNoFilesSelected = errors.New("no files selected")
	ErrBadDays         = errors.New("sales_days and forecast_days must be whole numbers")
	ErrNoSnapshot      = errors.New("no data uploaded yet")
)

var userMessages = map[error]string{
	ErrNoShopSelected:          "Select a shop first!",
	ErrMissingFiles:            "Both sales and stock files are required",
	ErrNoFilesSelected:         "No files selected",
	ErrBadDays:                 "Sales days and forecast days must be whole numbers",
	ErrNoSnapshot:              "No data uploaded yet",
	parsers.ErrUnsupportedFile: "Only Excel or CSV files allowed (.xlsx, .xls, .csv)",
}

// IsUserError reports whether err was caused by the request rather than
// by processing it.
func IsUserError(err error) bool {
	for _, target := range []error{
		ErrNoShopSelected,
		ErrMissingFiles,
		ErrNoFilesSelected,
		ErrBadDays,
		parsers.ErrUnsupportedFile,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// UserMessage returns the alert text for err. Errors without a known
// sentinel keep their own text.
func UserMessage(err error) string {
	for target, msg := range userMessages {
		if errors.Is(err, target) {
			return msg
		}
	}
	return err.Error()
}
