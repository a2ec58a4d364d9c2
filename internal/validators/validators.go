package validators

import (
	"regexp"
	"strings"

	"fleetcommander/internal/domain/entity"
	"fleetcommander/internal/utils"

	"github.com/go-playground/validator/v10"
)

var (
	clockRegex    = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	typeCodeRegex = regexp.MustCompile(`^[a-z]+(_[a-z0-9]+)*$`)
)

// Timestamp accepts any ISO-8601 layout the store understands.
func Timestamp(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return utils.IsValidTimestamp(val)
}

// ClockTime accepts 24h HH:MM strings, used by schedule departure times.
func ClockTime(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return clockRegex.MatchString(val)
}

// ShipStatus accepts the four canonical statuses plus the legacy "at_sea".
func ShipStatus(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, valid := entity.NormalizeShipStatus(val)
	return valid
}

// Rank accepts canonical rank labels and legacy synonyms.
func Rank(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, valid := entity.NormalizeRank(val)
	return valid
}

// TypeCode accepts "{base}" or "{base}_{slug}" codes whose base is a known
// ship type family.
func TypeCode(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	val = strings.ToLower(val)
	if !typeCodeRegex.MatchString(val) {
		return false
	}
	return entity.IsValidTypeBase(entity.TypeBaseOf(val))
}
