package reconcile

import (
	"encoding/json"
	"fmt"
)

func sprintf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

func dumpTree(v any) string {
	b, _ := json.Marshal(v)
	return string(b)
}
