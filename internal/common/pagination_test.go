package common

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetPageParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		query    string
		wantSize int64
		wantPage int64
	}{
		{name: "defaults when absent", query: "", wantSize: DefaultPageSize, wantPage: 0},
		{name: "explicit values", query: "size=10&page=3", wantSize: 10, wantPage: 3},
		{name: "non-numeric size falls back", query: "size=ten&page=1", wantSize: DefaultPageSize, wantPage: 1},
		{name: "zero size falls back", query: "size=0", wantSize: DefaultPageSize, wantPage: 0},
		{name: "negative page clamps to zero", query: "page=-2", wantSize: DefaultPageSize, wantPage: 0},
		{name: "non-numeric page clamps to zero", query: "page=first", wantSize: DefaultPageSize, wantPage: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/donation-requests?"+tt.query, nil)

			size, page := GetPageParams(c)
			assert.Equal(t, tt.wantSize, size)
			assert.Equal(t, tt.wantPage, page)
		})
	}
}
