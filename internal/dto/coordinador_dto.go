package dto

type CrearCoordinadorRequest struct {
	Nombre      string `json:"nombre"      validate:"required,min=2,max=100"`
	Email       string `json:"email"       validate:"required,email"`
	Password    string `json:"password"    validate:"required,min=6"`
	Telefono    string `json:"telefono"    validate:"omitempty,min=6,max=30"`
	RemiseriaID string `json:"remiseriaId" validate:"required,uuid"`
}

type ActualizarCoordinadorRequest struct {
	Nombre   *string `json:"nombre"   validate:"omitempty,min=2,max=100"`
	Telefono *string `json:"telefono" validate:"omitempty,min=6,max=30"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}

type CoordinadorResponse struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Email       string `json:"email"`
	Telefono    string `json:"telefono"`
	Activo      bool   `json:"activo"`
	RemiseriaID string `json:"remiseriaId"`
}
