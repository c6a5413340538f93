package e2e_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memberPayload struct {
	ID       uuid.UUID  `json:"id"`
	Name     string     `json:"name"`
	Relation string     `json:"relation"`
	SpouseID *uuid.UUID `json:"spouse_id"`
	ParentID *uuid.UUID `json:"parent_id"`
}

type eventPayload struct {
	ID       uuid.UUID  `json:"id"`
	Title    string     `json:"title"`
	Location string     `json:"location"`
	StartsAt time.Time  `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
}

func TestE2E_MemberFlow(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	token := app.token(t)

	resp, err := app.post("/api/members", map[string]any{
		"name":     "Grandma Rose",
		"relation": "grandparent",
	}, authHeader(token))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var rose memberPayload
	env := parseEnvelope(t, resp)
	require.True(t, env.OK)
	decodeData(t, env, &rose)

	resp, err = app.post("/api/members", map[string]any{
		"name":      "Dad",
		"relation":  "parent",
		"parent_id": rose.ID.String(),
	}, authHeader(token))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var dad memberPayload
	env = parseEnvelope(t, resp)
	decodeData(t, env, &dad)
	require.NotNil(t, dad.ParentID)
	assert.Equal(t, rose.ID, *dad.ParentID)

	// Public tree listing puts the root generation first.
	resp, err = app.get("/api/members", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var members []memberPayload
	env = parseEnvelope(t, resp)
	decodeData(t, env, &members)
	require.Len(t, members, 2)
	assert.Equal(t, "Grandma Rose", members[0].Name)

	t.Run("dangling reference is rejected", func(t *testing.T) {
		resp, err := app.post("/api/members", map[string]any{
			"name":      "Orphan",
			"parent_id": uuid.NewString(),
		}, authHeader(token))
		require.NoError(t, err)

		env := parseEnvelope(t, resp)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.NotNil(t, env.Err)
		assert.Equal(t, "validation", env.Err.Kind)
	})

	t.Run("mutations require a token", func(t *testing.T) {
		resp, err := app.delete("/api/members/"+rose.ID.String(), nil)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	// Removing the grandparent leaves the child with no parent reference.
	resp, err = app.delete("/api/members/"+rose.ID.String(), authHeader(token))
	require.NoError(t, err)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp, err = app.get("/api/members/"+dad.ID.String(), nil)
	require.NoError(t, err)
	env = parseEnvelope(t, resp)
	decodeData(t, env, &dad)
	assert.Nil(t, dad.ParentID)
}

func TestE2E_EventFlow(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	token := app.token(t)

	past := map[string]any{
		"title":     "Last Year's Picnic",
		"starts_at": time.Now().Add(-30 * 24 * time.Hour).Format(time.RFC3339),
	}
	future := map[string]any{
		"title":     "Winter Reunion",
		"location":  "Grandpa's farm",
		"starts_at": time.Now().Add(60 * 24 * time.Hour).Format(time.RFC3339),
	}

	for _, body := range []map[string]any{past, future} {
		resp, err := app.post("/api/events", body, authHeader(token))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	var events []eventPayload

	resp, err := app.get("/api/events", nil)
	require.NoError(t, err)
	env := parseEnvelope(t, resp)
	decodeData(t, env, &events)
	require.Len(t, events, 2)
	assert.Equal(t, "Last Year's Picnic", events[0].Title)

	resp, err = app.get("/api/events?upcoming=true", nil)
	require.NoError(t, err)
	env = parseEnvelope(t, resp)
	decodeData(t, env, &events)
	require.Len(t, events, 1)
	assert.Equal(t, "Winter Reunion", events[0].Title)

	t.Run("missing start time is rejected", func(t *testing.T) {
		resp, err := app.post("/api/events", map[string]any{"title": "No Date"}, authHeader(token))
		require.NoError(t, err)

		env := parseEnvelope(t, resp)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.NotNil(t, env.Err)
		assert.Equal(t, "validation", env.Err.Kind)
	})
}
