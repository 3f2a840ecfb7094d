package dto

type CrearRemiseriaRequest struct {
	NombreFantasia string   `json:"nombreFantasia" validate:"required,min=2,max=100"`
	RazonSocial    string   `json:"razonSocial"    validate:"required,min=2,max=150"`
	CUIT           string   `json:"cuit"           validate:"required,min=11,max=13"`
	Direccion      string   `json:"direccion"      validate:"required,min=3,max=200"`
	Telefono       string   `json:"telefono"       validate:"required,min=6,max=30"`
	DuenioIDs      []string `json:"duenioIds"      validate:"omitempty,dive,uuid"`
}

// ActualizarRemiseriaRequest: pointer fields feed the authz matrix — an
// associated DUENIO may only touch direccion/telefono, ADMIN everything.
type ActualizarRemiseriaRequest struct {
	NombreFantasia *string   `json:"nombreFantasia" validate:"omitempty,min=2,max=100"`
	RazonSocial    *string   `json:"razonSocial"    validate:"omitempty,min=2,max=150"`
	CUIT           *string   `json:"cuit"           validate:"omitempty,min=11,max=13"`
	Direccion      *string   `json:"direccion"      validate:"omitempty,min=3,max=200"`
	Telefono       *string   `json:"telefono"       validate:"omitempty,min=6,max=30"`
	Estado         *bool     `json:"estado"`
	DuenioIDs      *[]string `json:"duenioIds"      validate:"omitempty,dive,uuid"`
}

func (r *ActualizarRemiseriaRequest) CamposSolicitados() []string {
	var campos []string
	if r.NombreFantasia != nil {
		campos = append(campos, "nombreFantasia")
	}
	if r.RazonSocial != nil {
		campos = append(campos, "razonSocial")
	}
	if r.CUIT != nil {
		campos = append(campos, "cuit")
	}
	if r.Direccion != nil {
		campos = append(campos, "direccion")
	}
	if r.Telefono != nil {
		campos = append(campos, "telefono")
	}
	if r.Estado != nil {
		campos = append(campos, "estado")
	}
	if r.DuenioIDs != nil {
		campos = append(campos, "duenioIds")
	}
	return campos
}

type RemiseriaResponse struct {
	ID             string   `json:"id"`
	NombreFantasia string   `json:"nombreFantasia"`
	RazonSocial    string   `json:"razonSocial"`
	CUIT           string   `json:"cuit"`
	Direccion      string   `json:"direccion"`
	Telefono       string   `json:"telefono"`
	Estado         bool     `json:"estado"`
	DuenioIDs      []string `json:"duenioIds"`
}
