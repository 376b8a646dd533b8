package calendar

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"
)

const (
	calendarProdID   = "-//Bowling Calendar//" + calendarDomain + "//"
	calendarTimezone = "Europe/London"

	eventPriority = "5"
)

// floatingLayout renders a date-time with no UTC marker. Match times are
// wall-clock times in the calendar's X-WR-TIMEZONE zone; marking them Z
// would shift every event by an hour during BST.
const floatingLayout = "20060102T150405"

// Serialize encodes the events as an iCalendar document. The calendar-level
// headers are constant regardless of match content.
func Serialize(events []Event) string {
	cal := ical.NewCalendar()
	cal.SetProductId(calendarProdID)
	cal.SetVersion("2.0")
	cal.SetCalscale("GREGORIAN")
	cal.SetXWRTimezone(calendarTimezone)

	for _, event := range events {
		addEvent(cal, event)
	}

	return cal.Serialize()
}

func addEvent(cal *ical.Calendar, event Event) {
	ve := cal.AddEvent(event.UID)
	ve.SetLocation(event.Location)
	ve.SetSummary(event.Summary)
	ve.SetDescription(event.Description)
	ve.SetProperty(ical.ComponentPropertyDtStart, event.Start.Format(floatingLayout))
	ve.SetProperty(ical.ComponentPropertyDtEnd, event.End.Format(floatingLayout))
	ve.SetDtStampTime(event.Stamp)
	ve.SetProperty(ical.ComponentProperty(ical.PropertyPriority), eventPriority)

	alarm := ve.AddAlarm()
	alarm.SetAction(ical.Action(event.Alarm.Action))
	alarm.SetTrigger(triggerValue(event.Alarm.Trigger))
	alarm.SetProperty(ical.ComponentPropertyDescription, event.Alarm.Description)
}

// triggerValue renders a relative trigger as an ISO 8601 duration, e.g.
// -1h → "-PT1H".
func triggerValue(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%sPT%dH%dM", sign, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%sPT%dH", sign, hours)
	default:
		return fmt.Sprintf("%sPT%dM", sign, minutes)
	}
}
