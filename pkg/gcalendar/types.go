package gcalendar

import "time"

// Config locates the credentials for NewClient.
type Config struct {
	CredentialsPath string
	TokenPath       string // Needed for OAuth desktop credentials only
	CalendarID      string // Defaults to "primary"
}

func (c Config) calendarID() string {
	if c.CalendarID == "" {
		return defaultCalendarID
	}
	return c.CalendarID
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	Summary     string
	Description string
	Start       time.Time
	Duration    time.Duration // Ignored for all-day events; defaults to one hour
	AllDay      bool
	Timezone    string // e.g. "Asia/Ho_Chi_Minh"
}

// Event is the part of a created event callers need.
type Event struct {
	ID       string
	Summary  string
	HTMLLink string
	AllDay   bool
}
