package diagfmt

import (
	"encoding/json"
	"io"

	"mlc/internal/diag"
	"mlc/internal/source"
)

// Минимальная схема SARIF v2.1.0: только то, что нужно внешним
// анализаторам для привязки результата к файлу и позиции.

type sarifLog struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations,omitempty"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           *sarifRegion          `json:"region,omitempty"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   uint32 `json:"startLine"`
	StartColumn uint32 `json:"startColumn"`
}

// Sarif сериализует диагностики в SARIF v2.1.0.
func Sarif(w io.Writer, bag *diag.Bag, m *source.Manager, meta SarifRunMeta) error {
	run := sarifRun{
		Tool: sarifTool{Driver: sarifDriver{
			Name:    meta.ToolName,
			Version: meta.ToolVersion,
		}},
		Results: make([]sarifResult, 0, bag.Len()),
	}

	for _, d := range bag.Items() {
		res := sarifResult{
			RuleID:  d.ID.String(),
			Level:   sarifLevel(d.Level()),
			Message: sarifMessage{Text: d.Message()},
		}
		if loc := sarifLocationFor(d.Loc, m); loc != nil {
			res.Locations = []sarifLocation{*loc}
		}
		run.Results = append(run.Results, res)
	}

	log := sarifLog{
		Version: "2.1.0",
		Schema:  "https://json.schemastore.org/sarif-2.1.0.json",
		Runs:    []sarifRun{run},
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(log)
}

func sarifLocationFor(loc source.Loc, m *source.Manager) *sarifLocation {
	if m == nil || !loc.IsValid() {
		return nil
	}
	id := m.FileIDFor(loc)
	if !id.IsValid() {
		return nil
	}
	f := m.File(id)

	out := sarifLocation{
		PhysicalLocation: sarifPhysicalLocation{
			ArtifactLocation: sarifArtifactLocation{URI: f.Path},
		},
	}
	if pos, ok := m.Position(loc); ok {
		out.PhysicalLocation.Region = &sarifRegion{
			StartLine:   pos.Line,
			StartColumn: pos.Col,
		}
	}
	return &out
}

// sarifLevel отображает уровни в словарь SARIF: fatal тоже "error".
func sarifLevel(l diag.Level) string {
	switch l {
	case diag.Note:
		return "note"
	case diag.Warning:
		return "warning"
	default:
		return "error"
	}
}
