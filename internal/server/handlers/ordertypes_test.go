package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOrderTypes_EmptyStore(t *testing.T) {
	r := newTestRouter(setupTestDB(t))

	w := doJSON(r, http.MethodGet, "/order-types", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCreateOrderType_ThenListIncludesItOnce(t *testing.T) {
	r := newTestRouter(setupTestDB(t))

	w := doJSON(r, http.MethodPost, "/order-types", `{"name":"Express"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
	decodeBody(t, w, &created)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Express", created.Name)

	w = doJSON(r, http.MethodGet, "/order-types", "")
	require.Equal(t, http.StatusOK, w.Code)

	var names []string
	decodeBody(t, w, &names)
	assert.Equal(t, []string{"Express"}, names)
}

func TestCreateOrderType_MissingName(t *testing.T) {
	r := newTestRouter(setupTestDB(t))

	w := doJSON(r, http.MethodPost, "/order-types", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "name is required")
}

func TestCreateOrderType_DuplicateRejectedByStore(t *testing.T) {
	r := newTestRouter(setupTestDB(t))

	w := doJSON(r, http.MethodPost, "/order-types", `{"name":"Standard"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// Uniqueness is enforced by the store's index, not application code.
	w = doJSON(r, http.MethodPost, "/order-types", `{"name":"Standard"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestDeleteOrderType_NonExistentStillSucceeds(t *testing.T) {
	r := newTestRouter(setupTestDB(t))

	w := doJSON(r, http.MethodDelete, "/order-types/DoesNotExist", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "message")
}

func TestDeleteOrderType_RemovesRow(t *testing.T) {
	r := newTestRouter(setupTestDB(t))

	w := doJSON(r, http.MethodPost, "/order-types", `{"name":"Custom"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodDelete, "/order-types/Custom", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/order-types", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
