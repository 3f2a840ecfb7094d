package dto

type CrearDuenioRequest struct {
	Nombre   string `json:"nombre"   validate:"required,min=2,max=100"`
	Telefono string `json:"telefono" validate:"required,min=6,max=30"`
	DNI      string `json:"dni"      validate:"required,min=6,max=15"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// ActualizarDuenioRequest uses pointers so the handler can tell which fields
// the request is trying to set — the authz matrix rejects the whole request
// if any of them is outside the caller's allowed set.
type ActualizarDuenioRequest struct {
	Nombre   *string `json:"nombre"   validate:"omitempty,min=2,max=100"`
	Telefono *string `json:"telefono" validate:"omitempty,min=6,max=30"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	DNI      *string `json:"dni"      validate:"omitempty,min=6,max=15"`
	Activo   *bool   `json:"activo"`
}

// CamposSolicitados lists the JSON names of the fields present in the request.
func (r *ActualizarDuenioRequest) CamposSolicitados() []string {
	var campos []string
	if r.Nombre != nil {
		campos = append(campos, "nombre")
	}
	if r.Telefono != nil {
		campos = append(campos, "telefono")
	}
	if r.Email != nil {
		campos = append(campos, "email")
	}
	if r.Password != nil {
		campos = append(campos, "password")
	}
	if r.DNI != nil {
		campos = append(campos, "dni")
	}
	if r.Activo != nil {
		campos = append(campos, "activo")
	}
	return campos
}

type DuenioResponse struct {
	ID         string   `json:"id"`
	Nombre     string   `json:"nombre"`
	Telefono   string   `json:"telefono"`
	DNI        *string  `json:"dni"`
	Email      string   `json:"email"`
	Activo     bool     `json:"activo"`
	Remiserias []string `json:"remiseriaIds"`
}
