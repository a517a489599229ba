package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAppointmentIDStrictlyIncreasing(t *testing.T) {
	previous := int64(0)
	for i := 0; i < 100; i++ {
		id, err := strconv.ParseInt(GenerateAppointmentID(), 10, 64)
		require.NoError(t, err)
		assert.Greater(t, id, previous)
		previous = id
	}
}

func TestGenerateFileNameKeepsExtension(t *testing.T) {
	name := GenerateFileName("material", "content-1", ".pdf")
	assert.Contains(t, name, "material_content-1_")
	assert.Regexp(t, `\.pdf$`, name)
}
