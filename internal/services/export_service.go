package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"lankatrip/internal/models/db_models"
	"lankatrip/pkg/metrics"
	"lankatrip/pkg/utils"
)

type ExportServiceInterface interface {
	RenderPDF(ctx context.Context, ownerID string, itineraryID string) ([]byte, error)
	RenderICS(ctx context.Context, ownerID string, itineraryID string) ([]byte, error)
}

// ExportService renders on-demand derivatives of a stored itinerary.
// Rendering is read-only, so concurrent exports of the same itinerary
// need no coordination.
type ExportService struct {
	itineraryService ItineraryServiceInterface
	registry         *metrics.Registry
}

func NewExportService(itineraryService ItineraryServiceInterface, registry *metrics.Registry) ExportServiceInterface {
	return &ExportService{
		itineraryService: itineraryService,
		registry:         registry,
	}
}

func (s *ExportService) RenderPDF(ctx context.Context, ownerID string, itineraryID string) ([]byte, error) {
	itinerary, err := s.itineraryService.GetItineraryForOwner(ctx, ownerID, itineraryID)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, fmt.Sprintf("%s - %d day itinerary", itinerary.Destination, itinerary.DurationDays))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Start date: %s", utils.FormatDateOnly(itinerary.StartDate)))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Travelers: %d | Budget: %s", itinerary.TravelersCount, itinerary.BudgetLevel))
	pdf.Ln(10)

	for _, day := range itinerary.Days {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 9, fmt.Sprintf("Day %d - %s", day.DayNumber, utils.FormatDateOnly(day.Date)))
		pdf.Ln(9)

		pdf.SetFont("Arial", "", 11)
		for _, act := range day.Activities {
			line := act.Title
			if act.StartTime != "" {
				line = fmt.Sprintf("%s - %s  %s", act.StartTime, act.EndTime, act.Title)
			}
			pdf.Cell(0, 7, line)
			pdf.Ln(6)
			if act.Notes != "" {
				pdf.SetFont("Arial", "I", 9)
				pdf.MultiCell(0, 5, act.Notes, "", "", false)
				pdf.SetFont("Arial", "", 11)
			}
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.registry.Inc("exports_pdf_total")
	return buf.Bytes(), nil
}

func (s *ExportService) RenderICS(ctx context.Context, ownerID string, itineraryID string) ([]byte, error) {
	itinerary, err := s.itineraryService.GetItineraryForOwner(ctx, ownerID, itineraryID)
	if err != nil {
		return nil, err
	}

	s.registry.Inc("exports_ics_total")
	return renderCalendar(itinerary), nil
}

// renderCalendar emits one VEVENT per activity; activities without a
// time slot become all-day events on their day's date. iCalendar
// requires CRLF line endings.
func renderCalendar(itinerary *db_models.Itinerary) []byte {
	var b strings.Builder

	writeLine := func(line string) {
		b.WriteString(line)
		b.WriteString("\r\n")
	}

	writeLine("BEGIN:VCALENDAR")
	writeLine("VERSION:2.0")
	writeLine("PRODID:-//lankatrip//itinerary//EN")
	writeLine("CALSCALE:GREGORIAN")

	stamp := time.Now().UTC().Format("20060102T150405Z")

	for _, day := range itinerary.Days {
		for _, act := range day.Activities {
			writeLine("BEGIN:VEVENT")
			writeLine(fmt.Sprintf("UID:%s@lankatrip", act.ID.String()))
			writeLine("DTSTAMP:" + stamp)

			if start, err := combineDayTime(day.Date, act.StartTime); err == nil {
				writeLine("DTSTART;TZID=Asia/Colombo:" + start.Format("20060102T150405"))
				if end, err := combineDayTime(day.Date, act.EndTime); err == nil {
					writeLine("DTEND;TZID=Asia/Colombo:" + end.Format("20060102T150405"))
				}
			} else {
				writeLine("DTSTART;VALUE=DATE:" + day.Date.Format("20060102"))
			}

			writeLine("SUMMARY:" + escapeICSText(act.Title))
			if act.Notes != "" {
				writeLine("DESCRIPTION:" + escapeICSText(act.Notes))
			}
			writeLine("LOCATION:" + escapeICSText(itinerary.Destination))
			writeLine("END:VEVENT")
		}
	}

	writeLine("END:VCALENDAR")
	return []byte(b.String())
}

func combineDayTime(day time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0, utils.SriLankaLocation()), nil
}

func escapeICSText(s string) string {
	replacer := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\n", "\\n",
	)
	return replacer.Replace(s)
}
