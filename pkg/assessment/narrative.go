package assessment

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"go.uber.org/zap"

	"github.com/artem13815/recruit/pkg/llm"
	"github.com/artem13815/recruit/pkg/logger"
	"github.com/artem13815/recruit/pkg/taxonomy"
)

// Level is one step of the situational indicator scale.
type Level string

const (
	LevelLow      Level = "Baixo"
	LevelNormal   Level = "Normal"
	LevelHigh     Level = "Alto"
	LevelVeryHigh Level = "Muito Alto"
)

func (l Level) Valid() bool {
	switch l {
	case LevelLow, LevelNormal, LevelHigh, LevelVeryHigh:
		return true
	}
	return false
}

type Indicators struct {
	EnvironmentDemand Level `json:"exigencia_meio"`
	Utilization       Level `json:"aproveitamento"`
	SelfConfidence    Level `json:"autoconfianca"`
}

// Narrative — качественный отчёт, который возвращает модель.
type Narrative struct {
	Primary    string     `json:"perfil_principal"`
	Secondary  string     `json:"perfil_secundario"`
	Summary    string     `json:"resumo_comportamental"`
	SubTraits  []string   `json:"subcaracteristicas"`
	Strengths  []string   `json:"pontos_fortes_contextuais"`
	Attention  []string   `json:"pontos_de_atencao"`
	Indicators Indicators `json:"indicadores_situacionais"`
}

const (
	minSubTraits = 3
	maxSubTraits = 5
)

// ParseNarrative decodes and validates provider output. Markdown fences and
// text around the JSON object are tolerated. Dimension names are normalized.
func ParseNarrative(raw string) (Narrative, error) {
	var n Narrative
	body := extractJSON(raw)
	if body == "" {
		return n, fmt.Errorf("narrative: no json object in response")
	}
	if err := json.Unmarshal([]byte(body), &n); err != nil {
		return n, fmt.Errorf("narrative: %w", err)
	}

	d, ok := taxonomy.ParseName(n.Primary)
	if !ok {
		return n, fmt.Errorf("narrative: unknown primary profile %q", n.Primary)
	}
	n.Primary = d.Name()
	if d, ok := taxonomy.ParseName(n.Secondary); ok {
		n.Secondary = d.Name()
	} else if strings.TrimSpace(n.Secondary) == "" {
		return n, fmt.Errorf("narrative: secondary profile is empty")
	}
	if strings.TrimSpace(n.Summary) == "" {
		return n, fmt.Errorf("narrative: summary is empty")
	}
	if len(n.SubTraits) < minSubTraits || len(n.SubTraits) > maxSubTraits {
		return n, fmt.Errorf("narrative: expected %d..%d sub-traits, got %d", minSubTraits, maxSubTraits, len(n.SubTraits))
	}
	for name, l := range map[string]Level{
		"exigencia_meio": n.Indicators.EnvironmentDemand,
		"aproveitamento": n.Indicators.Utilization,
		"autoconfianca":  n.Indicators.SelfConfidence,
	} {
		if !l.Valid() {
			return n, fmt.Errorf("narrative: indicator %s has invalid level %q", name, l)
		}
	}
	if n.Strengths == nil {
		n.Strengths = []string{}
	}
	if n.Attention == nil {
		n.Attention = []string{}
	}
	return n, nil
}

func (n Narrative) Encode() (string, error) {
	b, err := json.Marshal(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func extractJSON(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
		s = strings.TrimSpace(s)
	}
	if json.Valid([]byte(s)) {
		return s
	}
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return ""
}

//go:embed prompt.tmpl
var promptText string

var promptTmpl = template.Must(template.New("narrative").Funcs(template.FuncMap{
	"pct": func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
}).Parse(promptText))

// BuildPrompt renders the analysis prompt for the given scores and adjectives.
func BuildPrompt(scores Scores, adjectives []string) (string, error) {
	if adjectives == nil {
		adjectives = []string{}
	}
	adj, err := json.Marshal(adjectives)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	err = promptTmpl.Execute(&buf, struct {
		Scores
		Adjectives string
	}{scores, string(adj)})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

const temperature = 0.1

// Analysis is the outcome of one narrative request. Raw is nil when no
// provider produced content; Narrative is nil when Raw did not validate.
type Analysis struct {
	Raw       *string
	Narrative *Narrative
	Provider  string
}

// Analyzer asks providers in order until one returns a valid narrative.
type Analyzer struct {
	providers []llm.Provider
	logger    *zap.Logger
}

func NewAnalyzer(logger *zap.Logger, providers ...llm.Provider) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{providers: providers, logger: logger}
}

// Analyze never fails. A provider error or empty content moves on to the next
// provider. Content that does not validate also moves on, but is kept: when
// every provider is exhausted the last such string is returned as-is.
func (a *Analyzer) Analyze(ctx context.Context, scores Scores, adjectives []string) Analysis {
	prompt, err := BuildPrompt(scores, adjectives)
	if err != nil {
		a.logger.Error("narrative prompt", zap.Error(err))
		return Analysis{}
	}
	req := llm.Request{Prompt: prompt, JSON: true, Temperature: temperature}

	var last Analysis
	for _, p := range a.providers {
		log := logger.WithProvider(a.logger, p.Name(), llm.ModelOf(p))
		if err := ctx.Err(); err != nil {
			log.Warn("narrative skipped", zap.Error(err))
			break
		}
		log.Debug("narrative request")

		out, err := p.Complete(ctx, req)
		if err != nil {
			log.Warn("narrative provider failed", zap.Error(err))
			continue
		}
		if strings.TrimSpace(out) == "" {
			log.Warn("narrative provider returned empty content")
			continue
		}

		n, err := ParseNarrative(out)
		if err != nil {
			log.Warn("narrative malformed",
				zap.Error(err),
				zap.String("response", logger.TruncateForLog(out, 300)),
			)
			raw := out
			last = Analysis{Raw: &raw, Provider: p.Name()}
			continue
		}
		canonical, err := n.Encode()
		if err != nil {
			log.Error("narrative encode", zap.Error(err))
			continue
		}
		log.Info("narrative ready", zap.String("perfil_principal", n.Primary))
		return Analysis{Raw: &canonical, Narrative: &n, Provider: p.Name()}
	}
	if last.Raw == nil {
		a.logger.Warn("narrative unavailable, storing scores only", zap.Int("providers", len(a.providers)))
	}
	return last
}
