package integration_tests

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

type reportedConfiguration struct {
	Configuration string           `json:"configuration"`
	Generation    string           `json:"generation"`
	Strategy      string           `json:"strategy"`
	Options       []map[string]any `json:"options"`
}

// decodeReport parses a JSON report and indexes option values by id.
func decodeReport(t *testing.T, out string) ([]reportedConfiguration, []map[string]any) {
	t.Helper()

	var cfgs []reportedConfiguration
	require.NoError(t, json.Unmarshal([]byte(out), &cfgs))

	values := make([]map[string]any, len(cfgs))
	for i, c := range cfgs {
		values[i] = make(map[string]any)
		for _, o := range c.Options {
			values[i][o["id"].(string)] = o["value"]
		}
	}
	return cfgs, values
}
