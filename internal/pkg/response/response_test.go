package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xerrors "crm-service/internal/pkg/errors"
)

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestSuccess(t *testing.T) {
	c, w := testContext()

	Success(c, http.StatusCreated, "created", map[string]int{"id": 7})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "created", resp.Message)
	assert.Empty(t, resp.Error)
}

func TestSuccess_ZeroStatusDefaultsToOK(t *testing.T) {
	c, w := testContext()

	Success(c, 0, "ok", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFromError_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", xerrors.ErrNotFound, http.StatusNotFound},
		{"reference", xerrors.Referencef("contact 9 does not exist"), http.StatusBadRequest},
		{"validation", xerrors.Validationf("value must be non-negative"), http.StatusBadRequest},
		{"unauthorized", xerrors.ErrUnauthorized, http.StatusUnauthorized},
		{"store unavailable", xerrors.Wrap(xerrors.ErrStoreUnavailable, "connect refused"), http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, w := testContext()

			FromError(c, "request failed", tc.err)

			assert.Equal(t, tc.want, w.Code)
			assert.True(t, c.IsAborted())

			var resp Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, "request failed", resp.Message)
			assert.NotEmpty(t, resp.Error)
		})
	}
}
