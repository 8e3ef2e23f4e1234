package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/asadk/maktab/internal/app/models/dto"
	"github.com/asadk/maktab/internal/middleware"
)

// parseIDParam reads the :id path parameter. On a malformed ID it writes a
// 400 response and returns false.
func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "ID must be a valid number").WithField("id"))
		return 0, false
	}
	return id, true
}

// queryInt64 reads an optional numeric query parameter. Absent or
// non-numeric values yield nil, so a bad filter widens the list instead of
// failing the request.
func queryInt64(ctx *gin.Context, name string) *int64 {
	raw := ctx.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

// queryBool reads an optional boolean query parameter, nil when absent or
// unparseable.
func queryBool(ctx *gin.Context, name string) *bool {
	raw := ctx.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

// bindError writes a 400 for a failed JSON bind.
func bindError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest,
		dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid request data").
			WithDetails(middleware.ValidationMessages(err)))
}

// emptyIfNil substitutes an empty slice so list endpoints serialize as []
// rather than null.
func emptyIfNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
