package htmlpanel

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	outputPolicyOnce sync.Once
	outputPolicy     *bluemonday.Policy
)

// sanitizeOutput cleans the opaque execution output before it is embedded in
// the results summary. The payload originates from arbitrary node logic, so
// only harmless inline markup survives; everything else is escaped text.
func sanitizeOutput(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(outputSanitizer().Sanitize(trimmed))
}

func outputSanitizer() *bluemonday.Policy {
	outputPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("b", "i", "em", "strong", "code", "br")
		outputPolicy = policy
	})
	return outputPolicy
}
