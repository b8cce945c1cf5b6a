package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildQueryString(t *testing.T) {
	t.Run("drops empty and nil values and encodes spaces", func(t *testing.T) {
		qs := BuildQueryString(map[string]interface{}{
			"a": 1,
			"b": "",
			"c": nil,
			"e": "x y",
		})

		assert.Equal(t, "a=1&e=x+y", qs)
	})

	t.Run("keys are emitted in sorted order", func(t *testing.T) {
		qs := BuildQueryString(map[string]interface{}{
			"zebra": "z",
			"alpha": "a",
		})

		assert.Equal(t, "alpha=a&zebra=z", qs)
	})

	t.Run("empty map yields empty string", func(t *testing.T) {
		assert.Equal(t, "", BuildQueryString(nil))
	})
}

func TestGetOptionalQueryParam(t *testing.T) {
	req := httptest.NewRequest("GET", "/?period=month", nil)

	assert.Equal(t, "month", GetOptionalQueryParam(req, "period", "day"))
	assert.Equal(t, "day", GetOptionalQueryParam(req, "missing", "day"))
}

func TestGetQueryParam(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/?username=alice", nil)
		w := httptest.NewRecorder()

		value, ok := GetQueryParam(req, w, "username")

		assert.True(t, ok)
		assert.Equal(t, "alice", value)
	})

	t.Run("missing writes 400", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		w := httptest.NewRecorder()

		_, ok := GetQueryParam(req, w, "username")

		assert.False(t, ok)
		assert.Equal(t, 400, w.Code)
		assert.Contains(t, w.Body.String(), "Missing username")
	})
}
