package status

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mauiplayer/radio-api/api/types"
	apperrors "github.com/mauiplayer/radio-api/pkg/errors"
)

// GetCounter returns the shared counter
// @Summary Get the shared counter
// @Tags status
// @Produce json
// @Success 200 {object} counter.Snapshot
// @Failure 500 {object} types.ErrorResponse
// @Router /api/counter [get]
func GetCounter(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := deps.CounterService.Get(c.Request.Context())
		if err != nil {
			types.SendError(c, apperrors.Wrap(err, apperrors.ErrCodeInternal, "Failed to read counter"))
			return
		}
		types.SendSuccess(c, snap)
	}
}

// PostCounter adds delta to the shared counter
// @Summary Update the shared counter
// @Description Adds delta to the counter. A missing body or delta adds 1, a non numeric delta adds 0.
// @Tags status
// @Accept json
// @Produce json
// @Param request body types.CounterRequest false "Counter update"
// @Success 200 {object} counter.Snapshot
// @Failure 500 {object} types.ErrorResponse
// @Router /api/counter [post]
func PostCounter(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		delta := parseDelta(c)

		snap, err := deps.CounterService.Add(c.Request.Context(), delta)
		if err != nil {
			types.SendError(c, apperrors.Wrap(err, apperrors.ErrCodeInternal, "Failed to update counter"))
			return
		}
		types.SendSuccess(c, snap)
	}
}

// parseDelta reads the delta of a counter update. An absent body or field
// counts as 1; anything that is not a finite number counts as 0.
func parseDelta(c *gin.Context) int64 {
	var fields map[string]json.RawMessage
	if err := c.ShouldBindJSON(&fields); err != nil {
		return 1
	}

	raw, ok := fields["delta"]
	if !ok {
		return 1
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return 0
	}

	switch v := value.(type) {
	case float64:
		return toInt(v)
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return toInt(f)
	case bool:
		if v {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func toInt(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt64/2 {
		return 0
	}
	return int64(f)
}
