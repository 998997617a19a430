package domain

type Machine struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type CreateMachineInput struct {
	Name string `json:"name" validate:"required"`
}

type UpdateMachineInput struct {
	Name *string `json:"name,omitempty"`
}
