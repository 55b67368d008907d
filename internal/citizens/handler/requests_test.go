package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "welfare/pkg/domain-errors"
)

func TestCitizenRequest(t *testing.T) {
	t.Run("normalize trims every field", func(t *testing.T) {
		req := &CitizenRequest{LastName: " Ivanova ", BirthDate: " 1980-03-14", RegionID: " "}
		req.Normalize()
		assert.Equal(t, "Ivanova", req.LastName)
		assert.Equal(t, "1980-03-14", req.BirthDate)
		assert.Empty(t, req.RegionID)
	})

	t.Run("nil request", func(t *testing.T) {
		var req *CitizenRequest
		req.Normalize()
		assert.True(t, dErrors.HasCode(req.Validate(), dErrors.CodeBadRequest))
	})

	t.Run("region must be a uuid", func(t *testing.T) {
		req := &CitizenRequest{LastName: "A", FirstName: "B", BirthDate: "1980-03-14", Identifier: "1", RegionID: "north"}
		assert.True(t, dErrors.HasCode(req.Validate(), dErrors.CodeValidation))
	})

	t.Run("to command parses dates and region", func(t *testing.T) {
		req := &CitizenRequest{
			LastName:   "Ivanova",
			FirstName:  "Maria",
			BirthDate:  "1980-03-14",
			Identifier: "11223344595",
			RegionID:   "8b1f5c2e-6f0a-4b7e-9a51-0c6c1f1d2e3a",
		}
		require.NoError(t, req.Validate())
		cmd, err := req.ToCommand()
		require.NoError(t, err)
		assert.Equal(t, time.Date(1980, 3, 14, 0, 0, 0, 0, time.UTC), cmd.BirthDate)
		require.NotNil(t, cmd.RegionID)
		assert.Equal(t, req.RegionID, cmd.RegionID.String())
	})

	t.Run("no region leaves nil", func(t *testing.T) {
		req := &CitizenRequest{BirthDate: "1980-03-14"}
		cmd, err := req.ToCommand()
		require.NoError(t, err)
		assert.Nil(t, cmd.RegionID)
	})
}

func TestRegionRequest(t *testing.T) {
	req := &RegionRequest{Name: "  "}
	req.Normalize()
	assert.True(t, dErrors.HasCode(req.Validate(), dErrors.CodeValidation))

	req = &RegionRequest{Name: " North "}
	req.Normalize()
	assert.NoError(t, req.Validate())
	assert.Equal(t, "North", req.Name)
}
