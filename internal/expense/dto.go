package expense

import (
	"github.com/chasselife/xpnse/internal"
)

// CreateExpenseDTO represents the request payload for creating an expense
type CreateExpenseDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

// Validate validates the CreateExpenseDTO
func (dto CreateExpenseDTO) Validate() error {
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

// UpdateExpenseDTO is a partial field set: nil fields retain the stored
// value, supplied fields overwrite it.
type UpdateExpenseDTO struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	Color       *string `json:"color,omitempty"`
}

// Validate validates the UpdateExpenseDTO
func (dto UpdateExpenseDTO) Validate() error {
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
