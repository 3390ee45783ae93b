package runner

import (
	"testing"

	"freeproxy/common"
)

func TestProgressSuppressedInVerboseMode(t *testing.T) {
	if fn := progress(&common.Options{Verbose: true}); fn != nil {
		t.Error("verbose run must not get the spinner progress line")
	}

	if fn := progress(&common.Options{}); fn == nil {
		t.Error("default run must get the spinner progress line")
	}
}
