package account

import (
	"github.com/gestorfin/dre-management/internal"
	"github.com/gestorfin/dre-management/internal/core/common/validation"
)

type CreateAccountDTO struct {
	CompanyID int64  `json:"company_id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Group     string `json:"group"`
	SortOrder int    `json:"order"`
}

func (dto CreateAccountDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("company_id", dto.CompanyID).Required()
	v.Field("name", dto.Name).Required().MaxLength(120)
	v.Field("type", dto.Type).Required()
	v.Field("group", dto.Group).Required()
	return v.Validate()
}
