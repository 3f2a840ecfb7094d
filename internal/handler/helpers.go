package handler

import (
	"net/http"
	"reflect"
	"strings"

	"appremises/internal/apierror"
	"appremises/internal/middleware"
	"appremises/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, apierror.Validation("JSON inválido"))
		return false
	}
	if err := validate.Struct(req); err != nil {
		var campos []string
		for _, fe := range err.(validator.ValidationErrors) {
			campos = append(campos, fe.Field())
		}
		respondError(c, apierror.Validation("Datos inválidos: "+strings.Join(campos, ", ")))
		return false
	}
	return true
}

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondMessage(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": msg})
}

func respondError(c *gin.Context, err error) {
	apiErr := apierror.From(err)
	c.JSON(apiErr.Status, gin.H{"success": false, "error": apiErr.Mensaje})
}

// parseIDParam reads the :id path parameter as a UUID, responding 400 itself
// on failure.
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apierror.Validation("id inválido"))
		return uuid.Nil, false
	}
	return id, true
}

// principalID returns the authenticated user's id from the JWT claims.
func principalID(c *gin.Context) uuid.UUID {
	claims := middleware.GetClaims(c)
	id, _ := uuid.Parse(claims.UserID)
	return id
}

// requestMeta captures the caller fingerprint for telemetry events.
func requestMeta(c *gin.Context) service.RequestMeta {
	meta := service.RequestMeta{}
	if ip := c.ClientIP(); ip != "" {
		meta.IPAddress = &ip
	}
	if ua := c.Request.UserAgent(); ua != "" {
		meta.UserAgent = &ua
	}
	return meta
}
