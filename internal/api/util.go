package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/arcade-cabinet/iron-frontier-sub004/internal/constants"
)

// parseSessionID reads the numeric session id from the path, writing the
// error response itself on failure.
func parseSessionID(c *gin.Context) (uint, bool) {
	raw := c.Param("sessionID")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidSessionID})
		return 0, false
	}
	return uint(id), true
}

// normalizeTimestamps recursively renames GORM timestamp keys from CamelCase
// (CreatedAt, UpdatedAt, DeletedAt) to snake_case keys (created_at,
// updated_at, deleted_at) so clients consistently receive snake_case.
func normalizeTimestamps(v interface{}) interface{} {
	switch vv := v.(type) {
	case map[string]interface{}:
		for k, val := range vv {
			vv[k] = normalizeTimestamps(val)
		}
		if val, ok := vv["CreatedAt"]; ok {
			vv["created_at"] = val
			delete(vv, "CreatedAt")
		}
		if val, ok := vv["UpdatedAt"]; ok {
			vv["updated_at"] = val
			delete(vv, "UpdatedAt")
		}
		if val, ok := vv["DeletedAt"]; ok {
			vv["deleted_at"] = val
			delete(vv, "DeletedAt")
		}
		return vv
	case []interface{}:
		for i := range vv {
			vv[i] = normalizeTimestamps(vv[i])
		}
		return vv
	default:
		return v
	}
}

// MarshalIntoSnakeTimestamps marshals the given value into JSON, then
// decodes into an interface{} and normalizes timestamp keys to snake_case.
func MarshalIntoSnakeTimestamps(v interface{}) (interface{}, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return normalizeTimestamps(out), nil
}
