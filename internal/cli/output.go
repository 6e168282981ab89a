package cli

import (
	"encoding/json"
	"strings"
)

type jsonResultOut struct {
	Input    string `json:"input"`
	Bytes    uint64 `json:"bytes"`
	Rendered string `json:"rendered"`
}

func RenderText(results []Result) string {
	var builder strings.Builder
	for _, result := range results {
		builder.WriteString(result.Rendered)
		builder.WriteString("\n")
	}
	return builder.String()
}

func RenderJSON(results []Result) string {
	out := make([]jsonResultOut, 0, len(results))
	for _, result := range results {
		out = append(out, jsonResultOut{
			Input:    result.Input,
			Bytes:    result.ByteCount,
			Rendered: result.Rendered,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return ""
	}
	return string(data) + "\n"
}
