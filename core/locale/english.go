package locale

var english = &Catalog{
	labels: map[string]string{
		"planning":  "Planning",
		"active":    "Active",
		"completed": "Completed",
		"on_hold":   "On hold",

		"available":      "Available",
		"in_use":         "In use",
		"maintenance":    "Maintenance",
		"out_of_service": "Out of service",

		"fuel":             "Fuel",
		"labor":            "Labor",
		"materials":        "Materials",
		"equipment_rental": "Equipment rental",
		"other":            "Other",
	},
	months: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	messages: map[MessageKey]string{
		MsgLoginRequired: "You must be signed in to add an expense",
		MsgInvalidImage:  "Please select a valid image",
		MsgImageTooLarge: "The image must not exceed 5 MB",
		MsgConfirmDelete: "Are you sure you want to delete",
		MsgInvalidID:     "Invalid id",
		MsgSignedOut:     "Signed out",
		"load_failed":    "Error loading records",
		"save_failed":    "Error saving record",
		"delete_failed":  "Error deleting record",
	},
	operations: map[string]map[Operation]string{
		"dashboard": {
			OpLoad: "Error loading the dashboard",
		},
		"client": {
			OpLoad:   "Error loading clients",
			OpSave:   "Error saving client",
			OpDelete: "Error deleting client",
		},
		"project": {
			OpLoad:   "Error loading projects",
			OpSave:   "Error saving project",
			OpDelete: "Error deleting project",
		},
		"equipment": {
			OpLoad:   "Error loading equipment",
			OpSave:   "Error saving equipment",
			OpDelete: "Error deleting equipment",
		},
		"expense": {
			OpLoad:   "Error loading expenses",
			OpSave:   "Error saving expense",
			OpDelete: "Error deleting expense",
		},
		"timesheet": {
			OpLoad:   "Error loading timesheets",
			OpSave:   "Error saving timesheet",
			OpDelete: "Error deleting timesheet",
		},
	},
	this: map[string]string{
		"client":    "this client",
		"project":   "this project",
		"equipment": "this equipment",
		"expense":   "this expense",
		"timesheet": "this timesheet",
	},
	columns: map[string][]string{
		"expenses":   {"Date", "Description", "Category", "Project", "Receipt number", "Amount"},
		"timesheets": {"Date", "Employee", "Project", "Task", "Hours", "Hourly rate", "Cost"},
		"total":      {"Total"},
	},
}
