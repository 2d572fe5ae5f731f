package category

import (
	"github.com/chasselife/xpnse/internal"
)

// CreateCategoryDTO represents the request payload for creating a category
type CreateCategoryDTO struct {
	ExpenseID   string `json:"expenseId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

// Validate validates the CreateCategoryDTO
func (dto CreateCategoryDTO) Validate() error {
	if dto.ExpenseID == "" {
		return internal.NewValidationError("expenseId is required", internal.ErrCodeValidationFailed)
	}
	if dto.Title == "" {
		return internal.NewValidationError("title is required", internal.ErrCodeInvalidTitle)
	}
	if len(dto.Title) > 120 {
		return internal.NewValidationError("title must be less than 120 characters", internal.ErrCodeInvalidTitle)
	}
	if len(dto.Description) > 500 {
		return internal.NewValidationError("description must be less than 500 characters", internal.ErrCodeValidationFailed)
	}
	return nil
}

// UpdateCategoryDTO is a partial field set; nil fields retain stored values.
// The owning expense cannot be changed after creation.
type UpdateCategoryDTO struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	Color       *string `json:"color,omitempty"`
}

// Validate validates the UpdateCategoryDTO
func (dto UpdateCategoryDTO) Validate() error {
	if dto.Title != nil && *dto.Title == "" {
		return internal.NewValidationError("title cannot be empty", internal.ErrCodeInvalidTitle)
	}
	if dto.Title != nil && len(*dto.Title) > 120 {
		return internal.NewValidationError("title must be less than 120 characters", internal.ErrCodeInvalidTitle)
	}
	if dto.Description != nil && len(*dto.Description) > 500 {
		return internal.NewValidationError("description must be less than 500 characters", internal.ErrCodeValidationFailed)
	}
	return nil
}
