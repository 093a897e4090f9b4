// Package intake turns the raw market-research payload into an AnalysisRequest.
// The payload is produced by a language model upstream, so it is repaired when it is
// not valid JSON and checked against the request schema before it is decoded.
package intake

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
	"github.com/sirupsen/logrus"
	"github.com/xeipuuv/gojsonschema"

	"github.com/irfndi/opportunity-scoring/internal/i18n"
	"github.com/irfndi/opportunity-scoring/internal/logging"
	"github.com/irfndi/opportunity-scoring/internal/models"
	"github.com/irfndi/opportunity-scoring/internal/utils"
)

//go:embed request_schema.json
var requestSchema []byte

var compiledSchema = compileSchema()

func compileSchema() *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(requestSchema))
	if err != nil {
		panic(fmt.Sprintf("intake: request schema: %v", err))
	}
	return schema
}

// Decoder parses request payloads. It is safe for concurrent use.
type Decoder struct {
	schema *gojsonschema.Schema
	logger *logrus.Entry
}

// NewDecoder creates a decoder logging through logger.
func NewDecoder(logger *logrus.Logger) *Decoder {
	return &Decoder{
		schema: compiledSchema,
		logger: logging.WithComponent(logger, "intake"),
	}
}

// Decode repairs, validates and decodes one payload. Schema violations come back as
// *utils.ValidationError naming the first offending field.
func (d *Decoder) Decode(raw []byte) (*models.AnalysisRequest, error) {
	payload, err := d.normalize(raw)
	if err != nil {
		return nil, err
	}

	result, err := d.schema.Validate(gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return nil, utils.NewValidationErrorf("", "malformed request: %v", err)
	}
	if !result.Valid() {
		errs := result.Errors()
		msgs := make([]string, len(errs))
		for i, desc := range errs {
			msgs[i] = desc.String()
		}
		d.logger.WithField("violations", msgs).Debug("Request failed schema validation")
		return nil, utils.NewValidationError(errs[0].Field(), errs[0].Description())
	}

	var req models.AnalysisRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, utils.NewValidationErrorf("", "malformed request: %v", err)
	}

	if req.Language != "" {
		lang, err := i18n.ParseLanguage(string(req.Language))
		if err != nil {
			d.logger.WithField("language", req.Language).Warn("Ignoring unsupported request language")
			lang = ""
		}
		req.Language = lang
	}

	return &req, nil
}

// normalize returns valid JSON for raw, stripping a markdown fence and repairing the
// text when needed.
func (d *Decoder) normalize(raw []byte) ([]byte, error) {
	text := stripFence(string(bytes.TrimSpace(raw)))
	if text == "" {
		return nil, utils.NewValidationError("", "empty request")
	}
	if json.Valid([]byte(text)) {
		return []byte(text), nil
	}

	repaired, err := jsonrepair.RepairJSON(text)
	if err == nil && json.Valid([]byte(repaired)) {
		d.logger.Debug("Repaired malformed request JSON")
		return []byte(repaired), nil
	}

	var relaxed map[string]any
	if herr := hjson.Unmarshal([]byte(text), &relaxed); herr != nil {
		return nil, utils.NewValidationErrorf("", "request is not repairable JSON: %v", herr)
	}
	out, err := json.Marshal(relaxed)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode relaxed request: %w", err)
	}
	d.logger.Debug("Parsed request as Hjson")
	return out, nil
}

func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
