package notify

import (
	"bytes"
	"strings"
	"testing"
)

func TestInfoAndErrorRouting(t *testing.T) {
	var out, errBuf bytes.Buffer
	origOut, origErr := Out, Err
	defer func() { Out, Err = origOut, origErr }()
	Out, Err = &out, &errBuf

	Info("copied 3 log files")
	Error("no destination configured")

	if !strings.Contains(out.String(), "copied 3 log files") {
		t.Errorf("stdout missing info message: %q", out.String())
	}
	if strings.Contains(out.String(), "no destination configured") {
		t.Error("error message leaked to stdout")
	}
	if !strings.Contains(errBuf.String(), "no destination configured") {
		t.Errorf("stderr missing error message: %q", errBuf.String())
	}
}
