package planner

import (
	"bytes"
	"context"
	"fmt"
	"text/template"
	"time"

	"macrofit-backend/internal/llm"
	"macrofit-backend/internal/logger"
	"macrofit-backend/internal/metrics"
	"macrofit-backend/internal/shared"
)

// Planner drives the four-stage plan generation workflow: analysis ->
// structure -> detail -> final. Each stage's text output is embedded verbatim
// in the next stage's prompt.
type Planner struct {
	textGen llm.TextGenerator
	metrics *metrics.Store
	log     *logger.Logger
}

// NewPlanner creates a new Planner. metricsStore may be nil, in which case
// stage metrics are not recorded.
func NewPlanner(textGen llm.TextGenerator, metricsStore *metrics.Store, log *logger.Logger) *Planner {
	return &Planner{
		textGen: textGen,
		metrics: metricsStore,
		log:     log,
	}
}

// runStage performs one guarded model call. A failed call yields the stage's
// fixed placeholder text instead of aborting, so the pipeline always runs all
// four stages; the placeholder then flows into later prompts and may surface
// in the final document.
func (p *Planner) runStage(ctx context.Context, stage, system, prompt, placeholder string) string {
	start := time.Now()
	resp, err := p.textGen.GenerateContent(ctx, system, prompt)
	if err != nil {
		p.log.Error("stage call failed", "stage", stage, "error", err)
		return placeholder
	}

	p.recordStage(shared.StageMeta{
		Stage:   stage,
		Usage:   resp.Usage,
		Latency: time.Since(start),
	})
	return resp.Content
}

func (p *Planner) recordStage(meta shared.StageMeta) {
	if p.metrics == nil {
		return
	}
	if err := p.metrics.RecordMeta(meta); err != nil {
		p.log.Warn("failed to record stage metrics", "stage", meta.Stage, "error", err)
	}
}

// buildPrompt renders one of the embedded stage templates. A render failure
// here is a workflow-level error: no model call has been made for the stage
// yet, so the whole generation aborts.
func buildPrompt(name, tmplText string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Parse(tmplText)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s prompt template: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to build %s prompt: %w", name, err)
	}
	return buf.String(), nil
}
