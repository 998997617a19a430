package domain

type Worker struct {
	ID        string  `json:"id" db:"id"`
	Name      string  `json:"name" db:"name"`
	AvatarURL string  `json:"avatarUrl" db:"avatar_url"`
	Email     *string `json:"email,omitempty" db:"email"`
}

type CreateWorkerInput struct {
	Name      string  `json:"name" validate:"required"`
	AvatarURL string  `json:"avatarUrl"`
	Email     *string `json:"email,omitempty"`
}

type UpdateWorkerInput struct {
	Name      *string `json:"name,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
	Email     *string `json:"email,omitempty"`
}
