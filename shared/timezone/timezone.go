package timezone

import (
	"time"
	"venuely/config"

	"github.com/rs/zerolog/log"
)

// DateLayout is the calendar date format used for event dates.
const DateLayout = "2006-01-02"

var location = time.UTC

func init() {
	name := config.Get().App.Timezone
	if name == "" {
		return
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("unknown timezone, falling back to UTC")

		return
	}

	location = loc
}

// Location is the configured application timezone, UTC when APP_TIMEZONE is unset or invalid.
func Location() *time.Location {
	return location
}

func Now() time.Time {
	return time.Now().In(location)
}

func ToAppTime(t time.Time) time.Time {
	return t.In(location)
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// ParseDate reads a YYYY-MM-DD value as midnight in the application timezone.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, location)
}

// FormatDate renders the calendar date of t in the application timezone.
func FormatDate(t time.Time) string {
	return Format(t, DateLayout)
}
