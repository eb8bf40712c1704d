package stats

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/hourstack/timesheet-mcp/internal/timesheet"
)

// dateLayout is the calendar date format used for range bounds and bucket keys.
const dateLayout = "2006-01-02"

// weeklyThresholdDays is the inclusive day count above which the weekly
// roll-up is produced.
const weeklyThresholdDays = 14

// unknownProjectKey groups tasks that carry no project reference.
const unknownProjectKey = "unknown"

// Result is the aggregated statistics for a date range.
type Result struct {
	StartDate        string         `json:"startDate"`
	EndDate          string         `json:"endDate"`
	TotalHours       float64        `json:"totalHours"`
	BillableHours    float64        `json:"billableHours"`
	NonBillableHours float64        `json:"nonBillableHours"`
	TotalBreakHours  float64        `json:"totalBreakHours"`
	TotalTasks       int            `json:"totalTasks"`
	ProjectBreakdown []ProjectStats `json:"projectBreakdown"`
	DailyHours       []DayStats     `json:"dailyHours"`
	WeeklyHours      []WeekStats    `json:"weeklyHours,omitempty"`
}

// ProjectStats is the per-project share of the range.
type ProjectStats struct {
	ProjectID        string  `json:"projectId"`
	ProjectTitle     string  `json:"projectTitle"`
	Hours            float64 `json:"hours"`
	BillableHours    float64 `json:"billableHours"`
	NonBillableHours float64 `json:"nonBillableHours"`
	TaskCount        int     `json:"taskCount"`
	Percentage       float64 `json:"percentage"`
}

// DayStats is one calendar day of the daily series.
type DayStats struct {
	Date             string  `json:"date"`
	Hours            float64 `json:"hours"`
	BillableHours    float64 `json:"billableHours"`
	NonBillableHours float64 `json:"nonBillableHours"`
	BreakHours       float64 `json:"breakHours"`
}

// WeekStats is one ISO week (Monday start) of the weekly roll-up.
type WeekStats struct {
	WeekStart        string  `json:"weekStart"`
	Hours            float64 `json:"hours"`
	BillableHours    float64 `json:"billableHours"`
	NonBillableHours float64 `json:"nonBillableHours"`
	BreakHours       float64 `json:"breakHours"`
}

// bucket accumulates raw seconds before conversion to hours.
type bucket struct {
	total    int64
	billable int64
	brk      int64
	tasks    int
}

func (b *bucket) add(task timesheet.Task) {
	b.total += task.Duration
	if task.Billable {
		b.billable += task.Duration
	}
	b.brk += task.DurationBreak
	b.tasks++
}

// Aggregate computes statistics for tasks within [startDate, endDate]
// inclusive. Tasks without a start timestamp are counted in the overall and
// per-project totals but excluded from the daily and weekly series.
func Aggregate(tasks []timesheet.Task, startDate, endDate string) (*Result, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, fmt.Errorf("parsing start date %q: %w", startDate, err)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, fmt.Errorf("parsing end date %q: %w", endDate, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("end date %s is before start date %s", endDate, startDate)
	}

	var overall bucket
	projects := map[string]*bucket{}
	projectTitles := map[string]string{}
	projectOrder := []string{}
	days := map[string]*bucket{}

	for _, task := range tasks {
		overall.add(task)

		key := unknownProjectKey
		title := "Unknown"
		if task.Project != nil && task.Project.ID != "" {
			key = task.Project.ID
			title = task.Project.Title
		}
		project, ok := projects[key]
		if !ok {
			project = &bucket{}
			projects[key] = project
			projectTitles[key] = title
			projectOrder = append(projectOrder, key)
		}
		project.add(task)

		// Daily bucket keyed by the calendar-date prefix of the start timestamp.
		if len(task.StartDateTime) >= len(dateLayout) {
			day := task.StartDateTime[:len(dateLayout)]
			dayBucket, ok := days[day]
			if !ok {
				dayBucket = &bucket{}
				days[day] = dayBucket
			}
			dayBucket.add(task)
		}
	}

	dayCount := int(end.Sub(start).Hours()/24) + 1
	daily := make([]DayStats, 0, dayCount)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format(dateLayout)
		dayBucket := days[key]
		if dayBucket == nil {
			dayBucket = &bucket{}
		}
		daily = append(daily, DayStats{
			Date:             key,
			Hours:            roundHours(dayBucket.total),
			BillableHours:    roundHours(dayBucket.billable),
			NonBillableHours: roundHours(dayBucket.total - dayBucket.billable),
			BreakHours:       roundHours(dayBucket.brk),
		})
	}

	result := &Result{
		StartDate:        startDate,
		EndDate:          endDate,
		TotalHours:       roundHours(overall.total),
		BillableHours:    roundHours(overall.billable),
		NonBillableHours: roundHours(overall.total - overall.billable),
		TotalBreakHours:  roundHours(overall.brk),
		TotalTasks:       overall.tasks,
		ProjectBreakdown: buildProjectBreakdown(projects, projectTitles, projectOrder, overall.total),
		DailyHours:       daily,
	}

	if dayCount > weeklyThresholdDays {
		result.WeeklyHours = buildWeekly(start, end, days)
	}

	return result, nil
}

// buildProjectBreakdown sorts projects by raw seconds descending (ties keep
// first-seen order) and converts to hours and percentages.
func buildProjectBreakdown(projects map[string]*bucket, titles map[string]string, order []string, totalSeconds int64) []ProjectStats {
	sorted := make([]string, len(order))
	copy(sorted, order)
	sort.SliceStable(sorted, func(i, j int) bool {
		return projects[sorted[i]].total > projects[sorted[j]].total
	})

	breakdown := make([]ProjectStats, 0, len(sorted))
	for _, key := range sorted {
		project := projects[key]
		percentage := 0.0
		if totalSeconds > 0 {
			percentage = math.Round(float64(project.total) / float64(totalSeconds) * 100)
		}
		breakdown = append(breakdown, ProjectStats{
			ProjectID:        key,
			ProjectTitle:     titles[key],
			Hours:            roundHours(project.total),
			BillableHours:    roundHours(project.billable),
			NonBillableHours: roundHours(project.total - project.billable),
			TaskCount:        project.tasks,
			Percentage:       percentage,
		})
	}
	return breakdown
}

// buildWeekly folds the daily buckets into ISO weeks keyed by Monday.
func buildWeekly(start, end time.Time, days map[string]*bucket) []WeekStats {
	weeks := map[string]*bucket{}
	weekOrder := []string{}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		dayBucket := days[day.Format(dateLayout)]
		key := mondayOf(day).Format(dateLayout)
		week, ok := weeks[key]
		if !ok {
			week = &bucket{}
			weeks[key] = week
			weekOrder = append(weekOrder, key)
		}
		if dayBucket != nil {
			week.total += dayBucket.total
			week.billable += dayBucket.billable
			week.brk += dayBucket.brk
		}
	}

	weekly := make([]WeekStats, 0, len(weekOrder))
	for _, key := range weekOrder {
		week := weeks[key]
		weekly = append(weekly, WeekStats{
			WeekStart:        key,
			Hours:            roundHours(week.total),
			BillableHours:    roundHours(week.billable),
			NonBillableHours: roundHours(week.total - week.billable),
			BreakHours:       roundHours(week.brk),
		})
	}
	return weekly
}

// mondayOf returns the Monday of the ISO week containing day. Sunday maps to
// the prior Monday.
func mondayOf(day time.Time) time.Time {
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return day.AddDate(0, 0, -offset)
}

// roundHours converts raw seconds to hours rounded to two decimal places.
func roundHours(seconds int64) float64 {
	return math.Round(float64(seconds)/3600*100) / 100
}
