// Package gcalendar schedules dated tasks in Google Calendar.
package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	defaultCalendarID = "primary"
	defaultDuration   = time.Hour
	allDayLayout      = "2006-01-02"
)

var ErrNoToken = errors.New("oauth desktop credentials need a token file")

// Client wraps the Google Calendar API service.
type Client struct {
	service    *calendar.Service
	calendarID string
}

// NewClient loads credentials from cfg. Service account keys are used as is;
// OAuth desktop credentials also need cfg.TokenPath.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	data, err := os.ReadFile(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	ts, err := tokenSource(ctx, data, cfg.TokenPath)
	if err != nil {
		return nil, err
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc, calendarID: cfg.calendarID()}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, calendarID string) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc, calendarID: Config{CalendarID: calendarID}.calendarID()}, nil
}

func tokenSource(ctx context.Context, credentialsJSON []byte, tokenPath string) (oauth2.TokenSource, error) {
	if jwt, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope); err == nil {
		return jwt.TokenSource(ctx), nil
	}

	oauthConfig, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}
	if tokenPath == "" {
		return nil, ErrNoToken
	}

	raw, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoToken, err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(raw, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token file: %w", err)
	}
	return oauthConfig.TokenSource(ctx, &tok), nil
}

// CreateEvent inserts an event for a task. All-day requests become date-only
// events spanning one day.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
	}

	if req.AllDay {
		event.Start = &calendar.EventDateTime{Date: req.Start.Format(allDayLayout)}
		event.End = &calendar.EventDateTime{Date: req.Start.AddDate(0, 0, 1).Format(allDayLayout)}
	} else {
		duration := req.Duration
		if duration <= 0 {
			duration = defaultDuration
		}
		end := req.Start.Add(duration)
		event.Start = &calendar.EventDateTime{DateTime: req.Start.Format(time.RFC3339), TimeZone: req.Timezone}
		event.End = &calendar.EventDateTime{DateTime: end.Format(time.RFC3339), TimeZone: req.Timezone}
	}

	created, err := c.service.Events.Insert(c.calendarID, event).Context(ctx).Do()
	if err != nil {
		return Event{}, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return Event{
		ID:       created.Id,
		Summary:  created.Summary,
		HTMLLink: created.HtmlLink,
		AllDay:   req.AllDay,
	}, nil
}
