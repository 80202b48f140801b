package buildinfo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintBuildData(t *testing.T) {
	old := BuildVersion
	t.Cleanup(func() { BuildVersion = old })
	BuildVersion = "v1.2.0"

	var buf bytes.Buffer
	PrintBuildData(&buf)

	assert.Equal(t, "Build version: v1.2.0\nBuild date: N/A\nBuild commit: N/A\n", buf.String())
}
