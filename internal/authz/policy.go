// Package authz holds the declarative per-field write-permission matrix.
// Handlers never re-derive permission logic; they call CamposPermitidos once
// with the resolved principal's role and the set of fields the request tries
// to change. Enforcement is all-or-nothing: one forbidden field rejects the
// whole request.
package authz

import (
	"fmt"
	"sort"
	"strings"

	"appremises/internal/apierror"
	"appremises/internal/model"
)

// Entidad identifies a registry with differentiated non-admin write access.
type Entidad string

const (
	EntidadDuenio    Entidad = "duenio"
	EntidadRemiseria Entidad = "remiseria"
)

// matriz: entidad → rol → set of writable field names (JSON field names).
// ADMIN is handled as a wildcard in CamposPermitidos, so only the restricted
// roles appear here.
var matriz = map[Entidad]map[string]map[string]bool{
	EntidadDuenio: {
		// A dueño may update their own contact data but never identity
		// or status fields.
		model.RolDuenio: {
			"telefono": true,
			"email":    true,
			"password": true,
		},
	},
	EntidadRemiseria: {
		// An associated dueño may only keep the premises contact data fresh.
		model.RolDuenio: {
			"direccion": true,
			"telefono":  true,
		},
	},
}

// CamposPermitidos validates that rol may write every field in solicitados
// on entidad. Returns Forbidden naming the offending fields otherwise.
func CamposPermitidos(entidad Entidad, rol string, solicitados []string) error {
	if rol == model.RolAdmin {
		return nil
	}

	permitidos := matriz[entidad][rol]
	if permitidos == nil {
		return apierror.Forbidden("No tiene permisos para modificar " + string(entidad))
	}

	var rechazados []string
	for _, campo := range solicitados {
		if !permitidos[campo] {
			rechazados = append(rechazados, campo)
		}
	}
	if len(rechazados) > 0 {
		sort.Strings(rechazados)
		return apierror.Forbidden(fmt.Sprintf(
			"No tiene permisos para modificar los campos: %s", strings.Join(rechazados, ", ")))
	}
	return nil
}
