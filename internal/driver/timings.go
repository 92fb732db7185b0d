package driver

import (
	"encoding/json"
	"fmt"

	"relaxfmt/internal/diag"
	"relaxfmt/internal/observ"
	"relaxfmt/internal/source"
)

type timingPayload struct {
	Kind    string               `json:"kind"`
	Path    string               `json:"path,omitempty"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

// appendTimingDiagnostic adds an ObsTimings info diagnostic whose note
// carries the JSON report.
func appendTimingDiagnostic(res *FormatResult, report observ.Report) {
	if res.Bag == nil {
		res.Bag = diag.NewBag(1)
	}
	if res.FileSet == nil {
		fs := source.NewFileSet()
		fs.AddVirtual(res.Path, nil)
		res.FileSet = fs
	}
	payload := timingPayload{Kind: "file", Path: res.Path, TotalMS: report.TotalMS, Phases: report.Phases}
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	msg := fmt.Sprintf("timings (%s): total %.2f ms", payload.Kind, payload.TotalMS)
	if res.Cached {
		msg += " (cached)"
	}
	entry := diag.Diagnostic{
		Severity: diag.SevInfo,
		Code:     diag.ObsTimings,
		Message:  msg,
		Notes:    []diag.Note{{Msg: string(data)}},
	}
	if res.Bag.Add(entry) {
		return
	}
	overflow := diag.NewBag(1)
	overflow.Add(entry)
	res.Bag.Merge(overflow)
}
