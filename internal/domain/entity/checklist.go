package entity

// ChecklistKind identifies one of the fixed checklist catalogs.
type ChecklistKind string

const (
	ChecklistKindSavingsMethods       ChecklistKind = "savings_methods"
	ChecklistKindAutomationStrategies ChecklistKind = "automation_strategies"
	ChecklistKindChallenge            ChecklistKind = "challenge"
	ChecklistKindPrayerCalendar       ChecklistKind = "prayer_calendar"
)

// ChecklistKinds lists every catalog in display order.
var ChecklistKinds = []ChecklistKind{
	ChecklistKindSavingsMethods,
	ChecklistKindAutomationStrategies,
	ChecklistKindChallenge,
	ChecklistKindPrayerCalendar,
}

// IsValid reports whether the kind names a known catalog.
func (k ChecklistKind) IsValid() bool {
	for _, kind := range ChecklistKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// ChecklistItem is one entry of a fixed catalog. Only Checked ever changes.
type ChecklistItem struct {
	Key     string
	Label   string
	Checked bool
}

// Checklist is an ordered, fixed-size catalog of items.
type Checklist struct {
	Kind  ChecklistKind
	Items []ChecklistItem
}

// CheckedCount returns the number of checked items.
func (c *Checklist) CheckedCount() int {
	n := 0
	for _, item := range c.Items {
		if item.Checked {
			n++
		}
	}
	return n
}

// Flags returns the checked flags in catalog order.
func (c *Checklist) Flags() []bool {
	flags := make([]bool, len(c.Items))
	for i, item := range c.Items {
		flags[i] = item.Checked
	}
	return flags
}
