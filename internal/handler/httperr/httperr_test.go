//go:build unit

package httperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"course-enrollment/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

var errMissing = errors.New("missing")

func TestAbortMapped(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(err error) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		httperr.AbortMapped(c, err, httperr.Mapping{Target: errMissing, Status: http.StatusNotFound, Message: "Not found"})
		return rec
	}

	t.Run("正常系: ラップされたエラーも対応するステータスになる", func(t *testing.T) {
		rec := run(fmt.Errorf("lookup: %w", errMissing))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":{"message":"Not found"}}`, rec.Body.String())
	})

	t.Run("異常系: 未知のエラーは500になる", func(t *testing.T) {
		rec := run(errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
