package domain

type Department struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type CreateDepartmentInput struct {
	Name string `json:"name" validate:"required"`
}

type UpdateDepartmentInput struct {
	Name *string `json:"name,omitempty"`
}
