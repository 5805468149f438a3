package order

// FlowStep describes how a status is presented to the customer: the step
// title, a short description, a rough time estimate, and the actions the
// client may offer at that point.
type FlowStep struct {
	Title         string
	Description   string
	EstimatedTime string
	Actions       []string
}

// flowSteps maps each status to its display step. The table is the single
// source for the progress view rendered by clients.
var flowSteps = map[Status]FlowStep{
	StatusPending: {
		Title:         "Order received",
		Description:   "We have received your order and are confirming availability.",
		EstimatedTime: "5-10 min",
		Actions:       []string{"cancel"},
	},
	StatusConfirmed: {
		Title:         "Order confirmed",
		Description:   "A driver is being dispatched to pick up your items.",
		EstimatedTime: "30-45 min",
		Actions:       []string{"track"},
	},
	StatusInProgress: {
		Title:         "Cleaning in progress",
		Description:   "Your items were picked up and are being cleaned.",
		EstimatedTime: "24-48 hrs",
		Actions:       []string{"track"},
	},
	StatusCompleted: {
		Title:         "Delivered",
		Description:   "Your order was delivered. Thank you!",
		EstimatedTime: "",
		Actions:       []string{"rate", "reorder"},
	},
	StatusCancelled: {
		Title:         "Cancelled",
		Description:   "This order was cancelled.",
		EstimatedTime: "",
		Actions:       []string{"reorder"},
	},
}

// flowOrder lists the statuses in intended progression order for rendering
// the full step list. Cancelled is excluded; it replaces the flow instead of
// being part of it.
var flowOrder = []Status{StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted}

// StepFor returns the display step for a status.
// The second return value is false for statuses outside the enum.
func StepFor(s Status) (FlowStep, bool) {
	step, ok := flowSteps[s]
	return step, ok
}

// FlowStatuses returns the statuses of the happy-path progression in order.
func FlowStatuses() []Status {
	statuses := make([]Status, len(flowOrder))
	copy(statuses, flowOrder)
	return statuses
}
