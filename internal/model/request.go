package model

// Validation tags mirror the rules the original intake forms enforce: every
// field required, institutional email, senha of at least 6 characters.

type RegisterRequest struct {
	Name     string `json:"nome" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Rank     string `json:"patente" validate:"required"`
	Unit     string `json:"unidade" validate:"required"`
	Password string `json:"senha" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required"`
}

type CreateUserRequest struct {
	Name     string `json:"nome" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Rank     string `json:"patente" validate:"required"`
	Unit     string `json:"unidade" validate:"required"`
	Password string `json:"senha" validate:"required,min=6"`
}

// UpdateUserRequest carries optional profile fields. The password is never
// updated through this path.
type UpdateUserRequest struct {
	Name  *string `json:"nome,omitempty" validate:"omitempty,min=1"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	Rank  *string `json:"patente,omitempty" validate:"omitempty,min=1"`
	Unit  *string `json:"unidade,omitempty" validate:"omitempty,min=1"`
}

type CreateOccurrenceRequest struct {
	Type        string `json:"tipo" validate:"required"`
	Address     string `json:"endereco" validate:"required"`
	Priority    string `json:"prioridade" validate:"required,oneof=BAIXA MEDIA ALTA CRITICA"`
	Description string `json:"descricao" validate:"required"`
}

type UpdateOccurrenceRequest struct {
	Type        *string `json:"tipo,omitempty" validate:"omitempty,min=1"`
	Address     *string `json:"endereco,omitempty" validate:"omitempty,min=1"`
	Priority    *string `json:"prioridade,omitempty" validate:"omitempty,oneof=BAIXA MEDIA ALTA CRITICA"`
	Description *string `json:"descricao,omitempty" validate:"omitempty,min=1"`
}

type CreateSignatureRequest struct {
	OccurrenceID string `json:"occurrenceId" validate:"required,uuid4"`
	Image        string `json:"assinatura" validate:"required"`
}

type UpdateSignatureRequest struct {
	Image string `json:"assinatura" validate:"required"`
}
