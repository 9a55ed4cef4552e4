package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateManifestAccepts(t *testing.T) {
	good := `{
  "source": "paper",
  "total_chunks": 1,
  "chunks": [
    {
      "id": "123e4567-e89b-12d3-a456-426614174000",
      "file": "paper_chunk00_P0.txt",
      "index": 0,
      "priority": "P0",
      "tokens": 42,
      "provenance": ["Abstract"]
    }
  ]
}`
	assert.NoError(t, ValidateManifest([]byte(good)))
}

func TestValidateManifestRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing source", `{"total_chunks": 0, "chunks": []}`},
		{"bad priority", `{
  "source": "paper",
  "total_chunks": 1,
  "chunks": [{"id": "123e4567-e89b-12d3-a456-426614174000", "file": "f.txt", "index": 0, "priority": "P9", "tokens": 1, "provenance": []}]
}`},
		{"short id", `{
  "source": "paper",
  "total_chunks": 1,
  "chunks": [{"id": "nope", "file": "f.txt", "index": 0, "priority": "P0", "tokens": 1, "provenance": []}]
}`},
		{"negative tokens", `{
  "source": "paper",
  "total_chunks": 1,
  "chunks": [{"id": "123e4567-e89b-12d3-a456-426614174000", "file": "f.txt", "index": 0, "priority": "P0", "tokens": -1, "provenance": []}]
}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, ValidateManifest([]byte(tc.body)))
		})
	}
}
