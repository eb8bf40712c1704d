package timesheet

// Timer status values reported by the API.
const (
	TimerRunning = "running"
	TimerPaused  = "paused"
	TimerStopped = "stopped"
)

// Timer represents the current timer state for the authenticated user.
type Timer struct {
	Status string `json:"status"`
	Task   *Task  `json:"task,omitempty"`
}

// ProjectRef is the embedded project reference carried on tasks.
type ProjectRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Color string `json:"color,omitempty"`
}

// Task represents a tracked unit of work. Duration is in seconds; a running
// task has no EndDateTime yet. StartDateTime and EndDateTime are ISO 8601
// timestamps as returned by the API.
type Task struct {
	ID            string      `json:"id"`
	Description   string      `json:"description,omitempty"`
	Project       *ProjectRef `json:"project,omitempty"`
	StartDateTime string      `json:"startDateTime,omitempty"`
	EndDateTime   string      `json:"endDateTime,omitempty"`
	Duration      int64       `json:"duration"`
	DurationBreak int64       `json:"durationBreak,omitempty"`
	Billable      bool        `json:"billable"`
	Billed        bool        `json:"billed,omitempty"`
	Tags          []string    `json:"tags,omitempty"`
	Location      string      `json:"location,omitempty"`
	Feeling       int         `json:"feeling,omitempty"`
}

// Project represents a timesheet project.
type Project struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Employer    string  `json:"employer,omitempty"`
	Color       string  `json:"color,omitempty"`
	TaskRate    float64 `json:"taskDefaultRate,omitempty"`
	Archived    bool    `json:"archived,omitempty"`
	TeamID      string  `json:"teamId,omitempty"`
}

// Team represents a team the user belongs to.
type Team struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Members     []TeamMember `json:"members,omitempty"`
}

// TeamMember is a single member inside a team.
type TeamMember struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// Note is a free-text note attached to a task.
type Note struct {
	ID       string `json:"id,omitempty"`
	TaskID   string `json:"taskId"`
	Text     string `json:"text"`
	DateTime string `json:"dateTime,omitempty"`
}

// Expense is a monetary expense attached to a task.
type Expense struct {
	ID          string  `json:"id,omitempty"`
	TaskID      string  `json:"taskId"`
	Description string  `json:"description,omitempty"`
	Amount      float64 `json:"amount"`
	DateTime    string  `json:"dateTime,omitempty"`
	Refunded    bool    `json:"refunded,omitempty"`
}

// Pause is a manual break inside a task. Duration is in seconds.
type Pause struct {
	ID            string `json:"id,omitempty"`
	TaskID        string `json:"taskId"`
	Description   string `json:"description,omitempty"`
	StartDateTime string `json:"startDateTime"`
	EndDateTime   string `json:"endDateTime,omitempty"`
	Duration      int64  `json:"duration,omitempty"`
}

// ExportTemplate describes a saved export/report configuration.
type ExportTemplate struct {
	ID         string   `json:"id,omitempty"`
	Name       string   `json:"name"`
	FileFormat string   `json:"fileFormat,omitempty"`
	Fields     []string `json:"fields,omitempty"`
	SortOrder  string   `json:"sortOrder,omitempty"`
}

// Export is a generated export document.
type Export struct {
	FileName string `json:"fileName"`
	URL      string `json:"url,omitempty"`
	Content  string `json:"content,omitempty"`
}

// Profile holds identity data for the authenticated user.
type Profile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// Settings holds user preferences relevant to formatting.
type Settings struct {
	Timezone      string `json:"timezone,omitempty"`
	Currency      string `json:"currency,omitempty"`
	DateFormat    string `json:"dateFormat,omitempty"`
	TimerRounding int    `json:"timerRounding,omitempty"`
}

// Page is a single page of a list response.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}
