package queries

import (
	"context"
	"database/sql"
	"errors"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderFlowQueryHandler builds the progress view for an order.
// Reads only the order's status from the database; the step copy comes from
// the domain flow table.
type GetOrderFlowQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderFlowQueryHandler creates a handler for order progress queries.
func NewGetOrderFlowQueryHandler(db *gorm.DB) GetOrderFlowQueryHandler {
	return GetOrderFlowQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOrderFlowQueryHandler) Handle(
	ctx context.Context,
	query GetOrderFlowQuery,
) (GetOrderFlowQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderFlowQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT status FROM orders WHERE id = ?
	`, query.OrderID().String()).Row()

	var rawStatus string
	err := row.Scan(&rawStatus)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderFlowQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetOrderFlowQueryResponse{}, err
	}

	status := order.Status(rawStatus)
	if err = status.Validate(); err != nil {
		return GetOrderFlowQueryResponse{}, err
	}

	return GetOrderFlowQueryResponse{
		OrderID: query.OrderID(),
		Status:  status.String(),
		Steps:   buildSteps(status),
	}, nil
}

func buildSteps(current order.Status) []FlowStepView {
	if current == order.StatusCancelled {
		step, _ := order.StepFor(current)
		return []FlowStepView{{
			Status:      current.String(),
			Title:       step.Title,
			Description: step.Description,
			Actions:     step.Actions,
			Current:     true,
		}}
	}

	statuses := order.FlowStatuses()
	views := make([]FlowStepView, 0, len(statuses))
	reached := true

	for _, status := range statuses {
		step, _ := order.StepFor(status)
		isCurrent := status == current
		views = append(views, FlowStepView{
			Status:        status.String(),
			Title:         step.Title,
			Description:   step.Description,
			EstimatedTime: step.EstimatedTime,
			Actions:       step.Actions,
			Completed:     reached && !isCurrent,
			Current:       isCurrent,
		})
		if isCurrent {
			reached = false
		}
	}

	return views
}
