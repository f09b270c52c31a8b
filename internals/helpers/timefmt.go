package helper

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// FormatClock merender kolom TIME sebagai "HH:MM" (format API jadwal).
func FormatClock(t datatypes.Time) string {
	d := time.Duration(t)
	return fmt.Sprintf("%02d:%02d", int(d.Hours())%24, int(d.Minutes())%60)
}

// ParseClock menerima "HH:MM" dan mengembalikan nilai kolom TIME.
func ParseClock(s string) (datatypes.Time, error) {
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return datatypes.Time(0), fiber.NewError(fiber.StatusBadRequest, "Invalid time format, expected HH:MM")
	}
	return datatypes.NewTime(parsed.Hour(), parsed.Minute(), 0, 0), nil
}

// ParseDate menerima "YYYY-MM-DD" (UTC) untuk kolom DATE.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
	}
	return d, nil
}
