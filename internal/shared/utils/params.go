package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/artsoul-app/artsoul/internal/shared/errors"
	"github.com/artsoul-app/artsoul/internal/shared/id"
)

// ParseRefParam reads a prefixed reference from a URL path parameter.
// paramName is the Gin route parameter name (e.g., "entityRef").
// prefix is the expected prefix (e.g., id.PrefixArtwork).
// entityName is used in error messages.
func ParseRefParam(c *gin.Context, paramName, prefix, entityName string) (string, error) {
	ref := c.Param(paramName)
	if ref == "" {
		return "", errors.NewFieldValidationError(entityName+" reference is required", []string{paramName})
	}

	if err := id.Validate(ref, prefix); err != nil {
		return "", errors.NewFieldValidationError(
			fmt.Sprintf("invalid %s reference, expected %s_xxxxxxxxxxxx", entityName, prefix),
			[]string{paramName},
		)
	}

	return ref, nil
}
