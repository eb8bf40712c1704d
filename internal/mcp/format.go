package mcp

import (
	"fmt"
	"strings"

	"github.com/hourstack/timesheet-mcp/internal/stats"
	"github.com/hourstack/timesheet-mcp/internal/timesheet"
)

// Formatters turn domain objects into the text half of a tool response.
// They substitute neutral defaults for missing optional fields and never
// panic; the structured half is built alongside by the handlers.

// formatTimer renders the timer state as a multi-line summary.
func formatTimer(timer *timesheet.Timer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Timer: %s\n", timer.Status)
	if timer.Task == nil {
		return strings.TrimRight(b.String(), "\n")
	}

	task := timer.Task
	fmt.Fprintf(&b, "Task: %s\n", orUntitled(task.Description))
	if task.Project != nil {
		fmt.Fprintf(&b, "Project: %s\n", orUntitled(task.Project.Title))
	}
	if task.StartDateTime != "" {
		fmt.Fprintf(&b, "Started: %s\n", task.StartDateTime)
	}
	fmt.Fprintf(&b, "Elapsed: %s (%s)", formatDuration(task.Duration), billableLabel(task.Billable))
	return b.String()
}

// formatTask renders a single task summary.
func formatTask(task *timesheet.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Task: %s\n", orUntitled(task.Description))
	if task.Project != nil {
		fmt.Fprintf(&b, "Project: %s\n", orUntitled(task.Project.Title))
	}
	if task.StartDateTime != "" {
		window := task.StartDateTime
		if task.EndDateTime != "" {
			window += " .. " + task.EndDateTime
		}
		fmt.Fprintf(&b, "When: %s\n", window)
	}
	fmt.Fprintf(&b, "Duration: %s (%s)", formatDuration(task.Duration), billableLabel(task.Billable))
	return b.String()
}

// formatTaskList renders a task page as one line per task.
func formatTaskList(tasks []timesheet.Task, total int) string {
	if len(tasks) == 0 {
		return "No tasks found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d tasks (showing %d):\n", total, len(tasks))
	for _, task := range tasks {
		project := ""
		if task.Project != nil && task.Project.Title != "" {
			project = " [" + task.Project.Title + "]"
		}
		day := ""
		if len(task.StartDateTime) >= 10 {
			day = task.StartDateTime[:10] + " "
		}
		fmt.Fprintf(&b, "- %s%s%s: %s (%s)\n",
			day, orUntitled(task.Description), project,
			formatDuration(task.Duration), billableLabel(task.Billable))
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatProjectList renders projects as one line each.
func formatProjectList(projects []timesheet.Project, total int) string {
	if len(projects) == 0 {
		return "No projects found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d projects:\n", total)
	for _, project := range projects {
		line := "- " + orUntitled(project.Title)
		if project.Employer != "" {
			line += " (" + project.Employer + ")"
		}
		if project.Archived {
			line += " [archived]"
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatProject renders a single project summary.
func formatProject(project *timesheet.Project) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Project: %s\n", orUntitled(project.Title))
	if project.Employer != "" {
		fmt.Fprintf(&b, "Employer: %s\n", project.Employer)
	}
	if project.TaskRate > 0 {
		fmt.Fprintf(&b, "Rate: %.2f/h\n", project.TaskRate)
	}
	fmt.Fprintf(&b, "ID: %s", project.ID)
	return b.String()
}

// formatTeamList renders teams with their member counts.
func formatTeamList(teams []timesheet.Team) string {
	if len(teams) == 0 {
		return "No teams found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d teams:\n", len(teams))
	for _, team := range teams {
		fmt.Fprintf(&b, "- %s (%d members)\n", orUntitled(team.Name), len(team.Members))
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatTemplateList renders export templates as one line each.
func formatTemplateList(templates []timesheet.ExportTemplate) string {
	if len(templates) == 0 {
		return "No export templates found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d export templates:\n", len(templates))
	for _, template := range templates {
		line := "- " + orUntitled(template.Name)
		if template.FileFormat != "" {
			line += " (" + strings.ToUpper(template.FileFormat) + ")"
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatStats renders the aggregated statistics as a multi-line report.
func formatStats(result *stats.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Statistics %s .. %s\n", result.StartDate, result.EndDate)
	fmt.Fprintf(&b, "Total: %.2fh over %d tasks\n", result.TotalHours, result.TotalTasks)
	fmt.Fprintf(&b, "Billable: %.2fh / Non-billable: %.2fh\n", result.BillableHours, result.NonBillableHours)
	if result.TotalBreakHours > 0 {
		fmt.Fprintf(&b, "Breaks: %.2fh\n", result.TotalBreakHours)
	}
	if len(result.ProjectBreakdown) > 0 {
		b.WriteString("By project:\n")
		for _, project := range result.ProjectBreakdown {
			fmt.Fprintf(&b, "- %s: %.2fh (%.0f%%, %d tasks)\n",
				orUntitled(project.ProjectTitle), project.Hours, project.Percentage, project.TaskCount)
		}
	}
	if len(result.WeeklyHours) > 0 {
		b.WriteString("By week:\n")
		for _, week := range result.WeeklyHours {
			fmt.Fprintf(&b, "- week of %s: %.2fh\n", week.WeekStart, week.Hours)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
