// api/util/helper/api_test.go
package helper_util_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	helper_util "github.com/firatsalmanoglu/firesafe-api/util/helper"
)

func paginationContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestGetPaginationParams(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
		wantErr    bool
	}{
		{"defaults", "", 10, 0, false},
		{"explicit values", "limit=25&offset=50", 25, 50, false},
		{"zero limit falls back to default", "limit=0", 10, 0, false},
		{"negative limit falls back to default", "limit=-5", 10, 0, false},
		{"oversized limit is clamped", "limit=5000", 100, 0, false},
		{"negative offset is clamped", "offset=-20", 10, 0, false},
		{"non-numeric limit errors", "limit=abc", 0, 0, true},
		{"non-numeric offset errors", "offset=xyz", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := paginationContext(t, tt.query)
			limit, offset, err := helper_util.GetPaginationParams(c)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
