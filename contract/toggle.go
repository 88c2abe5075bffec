package contract

import (
	"os"
	"strings"
	"sync/atomic"
)

// EnabledEnvVar is the environment variable that seeds the verification
// toggle's default value at process start.
const EnabledEnvVar = "GOCONTRACT_ENABLED"

// verificationEnabled is the process-wide verification toggle. The original
// design leaves the flag unsynchronized; an atomic is a behavior-preserving
// strengthening that makes concurrent toggling and checking race-free.
var verificationEnabled atomic.Bool

func init() {
	verificationEnabled.Store(truthy(os.Getenv(EnabledEnvVar)))
}

// truthy reports whether s is a recognized truthy token (case-insensitive).
// Anything else, including the empty string, is false.
func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes":
		return true
	}
	return false
}

// Enable turns contract verification on for the whole process.
func Enable() {
	verificationEnabled.Store(true)
}

// Disable turns contract verification off for the whole process.
// While disabled every check is a full bypass: no violation can be observed
// regardless of predicate outcomes.
func Disable() {
	verificationEnabled.Store(false)
}

// Enabled reports whether contract verification is currently on.
// Wrappers consult it at invocation time, not decoration time, so toggling
// takes effect immediately for contracts created before or after the call.
func Enabled() bool {
	return verificationEnabled.Load()
}
