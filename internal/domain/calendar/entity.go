package calendar

const (
	EntryTypeHoliday = "holiday"
	EntryTypeLeave   = "leave"
)

// Entry is one item of the dashboard calendar feed.
type Entry struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Start  string `json:"start"`
	End    string `json:"end"`
	Type   string `json:"type"`
	Status string `json:"status,omitempty"`
	Color  string `json:"color"`
}
