package internal

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func testLogger(verbose, quiet bool) (Logger, *strings.Builder, *strings.Builder) {
	var out, errOut strings.Builder
	return Logger{
		Out:     &out,
		Err:     &errOut,
		Verbose: verbose,
		Quiet:   quiet,
	}, &out, &errOut
}

func TestLogger(t *testing.T) {
	color.NoColor = true
	log, out, errOut := testLogger(false, false)

	log.Printf("Success: %d", 1)
	log.Infof("info %s", "a")
	log.Debugf("hidden")
	log.Warnf("careful")
	log.Errorf("broken: %v", "x")

	assert.Equal(t, "Success: 1\n", out.String())
	assert.Equal(t, "[info] info a\n[warn] careful\n[error] broken: x\n", errOut.String())
}

func TestLogger_Verbose(t *testing.T) {
	color.NoColor = true
	log, _, errOut := testLogger(true, false)
	log.Debugf("shown %d", 2)
	assert.Equal(t, "[debug] shown 2\n", errOut.String())
}

func TestLogger_Quiet(t *testing.T) {
	color.NoColor = true
	log, out, errOut := testLogger(false, true)
	log.Printf("result")
	log.Infof("info")
	log.Errorf("still shown")
	assert.Empty(t, out.String())
	assert.Equal(t, "[error] still shown\n", errOut.String())
}
