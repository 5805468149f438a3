package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrGetOrderFlowQueryIsNotConstructed = errors.New(
	"GetOrderFlowQuery must be created via NewGetOrderFlowQuery constructor",
)

// GetOrderFlowQuery retrieves the progress view for one order: each step of
// the happy path annotated with where the order currently stands.
type GetOrderFlowQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderFlowQuery creates a query for an order's progress view.
func NewGetOrderFlowQuery(orderID kernel.UUID) (GetOrderFlowQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderFlowQuery{}, err
	}

	return GetOrderFlowQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderFlowQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderFlowQueryIsNotConstructed)
}

// OrderID returns the order whose progress is requested.
func (q GetOrderFlowQuery) OrderID() kernel.UUID {
	return q.orderID
}

// FlowStepView is one rendered step of the progress view.
type FlowStepView struct {
	Status        string
	Title         string
	Description   string
	EstimatedTime string
	Actions       []string
	Completed     bool
	Current       bool
}

// GetOrderFlowQueryResponse is the full progress view for an order.
// A cancelled order renders the cancellation step alone.
type GetOrderFlowQueryResponse struct {
	OrderID kernel.UUID
	Status  string
	Steps   []FlowStepView
}
