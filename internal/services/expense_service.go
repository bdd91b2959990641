package services

import (
	"context"

	"github.com/google/uuid"

	"gigwise/internal/models/db_models"
	"gigwise/internal/models/request_models"
	"gigwise/internal/models/response_models"
	"gigwise/internal/repositories"
	"gigwise/pkg/utils"
)

type ExpenseServiceInterface interface {
	CreateExpense(ctx context.Context, accountID uuid.UUID, request request_models.CreateExpenseRequest) (*response_models.ExpenseResponse, error)
	ListExpenses(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]response_models.ExpenseResponse, error)
	DeleteExpense(ctx context.Context, accountID uuid.UUID, expenseID string) error
}

type ExpenseService struct {
	expenseRepo repositories.ExpenseRepository
}

func NewExpenseService(expenseRepo repositories.ExpenseRepository) ExpenseServiceInterface {
	return &ExpenseService{expenseRepo: expenseRepo}
}

func (s *ExpenseService) CreateExpense(ctx context.Context, accountID uuid.UUID, request request_models.CreateExpenseRequest) (*response_models.ExpenseResponse, error) {
	expense := &db_models.LocomotionExpense{
		AccountID:   accountID,
		Kind:        db_models.ExpenseKind(request.Kind),
		Description: request.Description,
		AmountMinor: request.AmountMinor,
		Currency:    currencyOrDefault(request.Currency),
		Date:        request.Date,
	}

	var err error
	if expense.ShowID, err = parseOptionalUUID(request.ShowID); err != nil {
		return nil, utils.ErrInvalidInput
	}

	if err := s.expenseRepo.Insert(ctx, expense); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return buildExpenseResponse(expense), nil
}

func (s *ExpenseService) ListExpenses(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]response_models.ExpenseResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	expenses, err := s.expenseRepo.ListByAccount(ctx, accountID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		out = append(out, *buildExpenseResponse(&expenses[i]))
	}
	return out, nil
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, accountID uuid.UUID, expenseID string) error {
	expense, err := s.expenseRepo.FindByID(ctx, accountID, expenseID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if expense == nil {
		return utils.ErrExpenseNotFound
	}
	if err := s.expenseRepo.Delete(ctx, accountID, expenseID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func buildExpenseResponse(expense *db_models.LocomotionExpense) *response_models.ExpenseResponse {
	resp := &response_models.ExpenseResponse{
		ID:          expense.ID.String(),
		Kind:        string(expense.Kind),
		Description: expense.Description,
		AmountMinor: expense.AmountMinor,
		Currency:    expense.Currency,
		Date:        utils.FormatRFC3339(utils.FromUnixSeconds(expense.Date)),
	}
	if expense.ShowID != nil {
		id := expense.ShowID.String()
		resp.ShowID = &id
	}
	return resp
}
