//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/2beens/gymplates/internal/gymstats/weights"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) deleteAllWeights(ctx context.Context) {
	_, err := s.dbPool.Exec(ctx, "DELETE FROM plate_weight")
	require.NoError(s.T(), err)
}

func (s *IntegrationTestSuite) doRequest(ctx context.Context, method, path string, body any) (int, []byte) {
	var reqBody io.Reader
	if body != nil {
		bodyJson, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reqBody = bytes.NewReader(bodyJson)
	}

	req, err := http.NewRequestWithContext(ctx, method, fmt.Sprintf("%s%s", serverEndpoint, path), reqBody)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "GymPlates/1")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)
	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) listWeights(ctx context.Context, userID string) []weights.PlateWeight {
	status, body := s.doRequest(ctx, "GET", "/plates/"+userID+"/weights", nil)
	require.Equal(s.T(), http.StatusOK, status)

	var rows []weights.PlateWeight
	require.NoError(s.T(), json.Unmarshal(body, &rows))
	return rows
}

func (s *IntegrationTestSuite) TestPlates_InventoryLifecycle() {
	ctx := context.Background()
	s.deleteAllWeights(ctx)

	assert.Empty(s.T(), s.listWeights(ctx, "lifter-1"))

	status, _ := s.doRequest(ctx, "POST", "/plates/lifter-1/weights/defaults", nil)
	require.Equal(s.T(), http.StatusCreated, status)
	status, _ = s.doRequest(ctx, "POST", "/plates/lifter-1/weights/defaults", nil)
	require.Equal(s.T(), http.StatusOK, status)

	rows := s.listWeights(ctx, "lifter-1")
	require.Len(s.T(), rows, 6)
	assert.Equal(s.T(), 45.0, rows[0].Weight)

	status, _ = s.doRequest(ctx, "PUT", "/plates/lifter-1/weights", map[string]any{"weight": 35, "quantity": 0})
	require.Equal(s.T(), http.StatusOK, status)
	rows = s.listWeights(ctx, "lifter-1")
	require.Len(s.T(), rows, 5)

	// someone else cannot remove lifter-1's plates
	status, _ = s.doRequest(ctx, "DELETE", fmt.Sprintf("/plates/lifter-2/weights/%d", rows[0].ID), nil)
	assert.Equal(s.T(), http.StatusForbidden, status)

	status, _ = s.doRequest(ctx, "DELETE", fmt.Sprintf("/plates/lifter-1/weights/%d", rows[0].ID), nil)
	assert.Equal(s.T(), http.StatusOK, status)
	status, _ = s.doRequest(ctx, "DELETE", fmt.Sprintf("/plates/lifter-1/weights/%d", rows[0].ID), nil)
	assert.Equal(s.T(), http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestPlates_Calculate() {
	ctx := context.Background()
	s.deleteAllWeights(ctx)

	status, _ := s.doRequest(ctx, "POST", "/plates/lifter-1/weights/defaults", nil)
	require.Equal(s.T(), http.StatusCreated, status)

	status, body := s.doRequest(ctx, "POST", "/plates/lifter-1/calculate", map[string]any{
		"exerciseName": "Bench Press",
		"totalWeight":  185,
	})
	require.Equal(s.T(), http.StatusOK, status)

	var loadout weights.Loadout
	require.NoError(s.T(), json.Unmarshal(body, &loadout))
	assert.Equal(s.T(), []float64{45, 25}, loadout.Plates)
	assert.Equal(s.T(), "45, 25", loadout.Display)
	assert.True(s.T(), loadout.Exact)

	// a cached inventory must not survive a write
	status, _ = s.doRequest(ctx, "PUT", "/plates/lifter-1/weights", map[string]any{"weight": 25, "quantity": 0})
	require.Equal(s.T(), http.StatusOK, status)

	status, body = s.doRequest(ctx, "POST", "/plates/lifter-1/calculate", map[string]any{
		"exerciseName": "Bench Press",
		"totalWeight":  185,
	})
	require.Equal(s.T(), http.StatusOK, status)
	require.NoError(s.T(), json.Unmarshal(body, &loadout))
	assert.Equal(s.T(), []float64{45, 10, 5, 2.5}, loadout.Plates)
	assert.False(s.T(), loadout.Exact)
	assert.InDelta(s.T(), 7.5, loadout.Residual, 1e-9)

	status, body = s.doRequest(ctx, "POST", "/plates/lifter-1/calculate", map[string]any{
		"exerciseName": "Deadlift",
		"totalWeight":  115,
	})
	require.Equal(s.T(), http.StatusOK, status)
	require.NoError(s.T(), json.Unmarshal(body, &loadout))
	assert.Equal(s.T(), weights.PolicyDeadlift, loadout.Policy)
	// the forced 10 wins over the exact [35] loadout
	assert.Equal(s.T(), []float64{10, 5, 2.5}, loadout.Plates)
	assert.InDelta(s.T(), 17.5, loadout.Residual, 1e-9)

	status, _ = s.doRequest(ctx, "POST", "/plates/lifter-1/calculate", map[string]any{
		"exerciseName": "Squat",
		"totalWeight":  -1,
	})
	assert.Equal(s.T(), http.StatusBadRequest, status)
}
