package validators

import (
	"reflect"
	"regexp"

	"bizindustry/cmd/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

const MaxCatalogIDLength = 64

var catalogIDRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Region accepts empty values and any of the quick-select regions.
func Region(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		log.Warnf("validator 'region' applied to non-string type: %s", field.Kind().String())
		return false
	}

	val := field.String()
	return val == "" || entity.IsKnownRegion(val)
}

// CatalogID accepts identifiers safe to embed in a catalog URL path.
func CatalogID(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return IsCatalogID(val)
}

func IsCatalogID(id string) bool {
	return id != "" && len(id) <= MaxCatalogIDLength && catalogIDRegex.MatchString(id)
}

// Register installs the custom tags on validate.
func Register(validate *validator.Validate) {
	_ = validate.RegisterValidation("region", Region)
	_ = validate.RegisterValidation("catalogid", CatalogID)
}
