package item

import (
	"time"

	"github.com/chasselife/xpnse/internal"
)

// CreateItemDTO represents the request payload for creating an item
type CreateItemDTO struct {
	ExpenseCategoryID string   `json:"expenseCategoryId"`
	Date              string   `json:"date"`
	Time              string   `json:"time"`
	Title             string   `json:"title"`
	SubItems          []string `json:"subItems"`
	Notes             string   `json:"notes"`
	Cost              float64  `json:"cost"`
}

// Validate validates the CreateItemDTO
func (dto CreateItemDTO) Validate() error {
	if dto.ExpenseCategoryID == "" {
		return internal.NewValidationError("expenseCategoryId is required", internal.ErrCodeValidationFailed)
	}
	if dto.Title == "" {
		return internal.NewValidationError("title is required", internal.ErrCodeInvalidTitle)
	}
	if dto.Cost < 0 {
		return internal.NewValidationError("cost cannot be negative", internal.ErrCodeInvalidCost)
	}
	if err := validateDate(dto.Date); err != nil {
		return err
	}
	return nil
}

// UpdateItemDTO is a partial field set; nil fields retain stored values. The
// owning category cannot be changed after creation.
type UpdateItemDTO struct {
	Date     *string   `json:"date,omitempty"`
	Time     *string   `json:"time,omitempty"`
	Title    *string   `json:"title,omitempty"`
	SubItems *[]string `json:"subItems,omitempty"`
	Notes    *string   `json:"notes,omitempty"`
	Cost     *float64  `json:"cost,omitempty"`
}

// Validate validates the UpdateItemDTO
func (dto UpdateItemDTO) Validate() error {
	if dto.Title != nil && *dto.Title == "" {
		return internal.NewValidationError("title cannot be empty", internal.ErrCodeInvalidTitle)
	}
	if dto.Cost != nil && *dto.Cost < 0 {
		return internal.NewValidationError("cost cannot be negative", internal.ErrCodeInvalidCost)
	}
	if dto.Date != nil {
		if err := validateDate(*dto.Date); err != nil {
			return err
		}
	}
	return nil
}

func validateDate(date string) error {
	if date == "" {
		return internal.NewValidationError("date is required", internal.ErrCodeInvalidDate)
	}
	if _, err := time.Parse(internal.DateLayout, date); err != nil {
		return internal.NewValidationError("date must be YYYY-MM-DD", internal.ErrCodeInvalidDate)
	}
	return nil
}
