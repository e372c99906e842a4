package configdomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap_Merge_LastWriteWins(t *testing.T) {
	merged := Map{"KEY1": "value1", "OVERRIDE": "from_env"}
	merged.Merge(Map{"OVERRIDE": "from_json", "KEY2": "value2"})

	assert.Equal(t, Map{
		"KEY1":     "value1",
		"KEY2":     "value2",
		"OVERRIDE": "from_json",
	}, merged)
}

func TestMap_Merge_EmptyOther(t *testing.T) {
	merged := Map{"KEY": "value"}
	merged.Merge(Map{})

	assert.Equal(t, Map{"KEY": "value"}, merged)
}
