package tracelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscardLoggerNeverPanics(t *testing.T) {
	log := Discard()
	assert.NotPanics(t, func() {
		log.Tracef(System, "noop %d", 1)
		log.Warn(Redo, "noop")
		log.Info(Commit, "noop")
	})
}

func TestNilLoggerIsSafeToCall(t *testing.T) {
	var log *Logger
	assert.NotPanics(t, func() {
		log.Tracef(System, "noop")
		log.Warn(System, "noop")
		log.Info(System, "noop")
	})
}

func TestSprintfWithAndWithoutArgs(t *testing.T) {
	assert.Equal(t, "plain", sprintf("plain"))
	assert.Equal(t, "value is 5", sprintf("value is %d", 5))
}
