package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/awardscan/award-scraper/internal/contract"
	"github.com/awardscan/award-scraper/internal/domain"
	"github.com/awardscan/award-scraper/internal/infrastructure/logger"
	"github.com/awardscan/award-scraper/internal/transform"
)

// SnapshotUploader mirrors snapshot files to remote storage. Uploads are
// best-effort; the pipeline logs failures and moves on.
type SnapshotUploader interface {
	Upload(ctx context.Context, path string) (string, error)
}

// RunResult summarizes one full pipeline run.
type RunResult struct {
	RawPath         string
	TransformedPath string
	Records         int
	Violations      []string
}

// Pipeline drives one full run: acquire, persist the raw snapshot, transform
// it into the contract-facing document, validate, and optionally mirror both
// files to remote storage.
type Pipeline struct {
	acquirer     *Acquirer
	outputDir    string
	contractPath string
	uploader     SnapshotUploader
	log          *logger.Logger
}

// NewPipeline wires a pipeline. uploader may be nil to disable mirroring;
// contractPath may be empty to skip validation.
func NewPipeline(acquirer *Acquirer, outputDir, contractPath string, uploader SnapshotUploader, log *logger.Logger) *Pipeline {
	return &Pipeline{
		acquirer:     acquirer,
		outputDir:    outputDir,
		contractPath: contractPath,
		uploader:     uploader,
		log:          log,
	}
}

// Run executes acquisition and the full persistence chain. The snapshot
// collected before a cancellation is still written out.
func (p *Pipeline) Run(ctx context.Context) (*RunResult, error) {
	out, runErr := p.acquirer.Run(ctx)
	if out == nil {
		return nil, runErr
	}

	rawPath, err := p.writeRawSnapshot(out)
	if err != nil {
		return nil, err
	}
	if runErr != nil {
		return &RunResult{RawPath: rawPath, Records: len(out.OriginDestPairs)}, runErr
	}

	transformedPath, violations, err := p.TransformSnapshot(ctx, rawPath, "")
	if err != nil {
		return &RunResult{RawPath: rawPath, Records: len(out.OriginDestPairs)}, err
	}

	p.mirror(ctx, rawPath, transformedPath)

	return &RunResult{
		RawPath:         rawPath,
		TransformedPath: transformedPath,
		Records:         len(out.OriginDestPairs),
		Violations:      violations,
	}, nil
}

// TransformSnapshot reads a raw snapshot, normalizes every record, validates
// the result against the data contract, and writes the transformed document.
// outputPath may be empty, in which case "_transformed" is appended to the
// input file name. Contract violations are advisory and never fail the call.
func (p *Pipeline) TransformSnapshot(ctx context.Context, inputPath, outputPath string) (string, []string, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return "", nil, fmt.Errorf("%w: read snapshot %s: %v", domain.ErrSetup, inputPath, err)
	}

	var raw domain.RunOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return "", nil, fmt.Errorf("%w: decode snapshot %s: %v", domain.ErrSetup, inputPath, err)
	}

	flights := make([]domain.FlightRecord, 0, len(raw.OriginDestPairs))
	for _, rec := range raw.OriginDestPairs {
		flights = append(flights, transform.Normalize(rec))
	}

	doc := domain.TransformedOutput{
		RunTimestampUTC: raw.RunTimestampUTC,
		Flights:         flights,
	}

	encoded, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", nil, fmt.Errorf("encode transformed document: %w", err)
	}

	violations := p.validate(encoded)

	if outputPath == "" {
		outputPath = strings.TrimSuffix(inputPath, ".json") + "_transformed.json"
	}
	if err := os.WriteFile(outputPath, encoded, 0o644); err != nil {
		return "", nil, fmt.Errorf("write transformed snapshot: %w", err)
	}

	p.log.Info().
		Str("path", outputPath).
		Int("flights", len(flights)).
		Int("violations", len(violations)).
		Msg("transformed snapshot written")

	return outputPath, violations, nil
}

// writeRawSnapshot persists the run output as run_<timestamp>.json with the
// timestamp's colons replaced so the name is filesystem-safe everywhere.
func (p *Pipeline) writeRawSnapshot(out *domain.RunOutput) (string, error) {
	if err := os.MkdirAll(p.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create output dir: %v", domain.ErrSetup, err)
	}

	name := "run_" + strings.ReplaceAll(out.RunTimestampUTC, ":", "-") + ".json"
	path := filepath.Join(p.outputDir, name)

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode raw snapshot: %w", err)
	}
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return "", fmt.Errorf("write raw snapshot: %w", err)
	}

	p.log.Info().Str("path", path).Int("records", len(out.OriginDestPairs)).Msg("raw snapshot written")
	return path, nil
}

// validate checks the encoded document against the data contract when one is
// configured. Violations are logged individually at warn level.
func (p *Pipeline) validate(encoded []byte) []string {
	if p.contractPath == "" {
		return nil
	}

	schema, err := contract.Load(p.contractPath)
	if err != nil {
		p.log.Warn().Err(err).Msg("data contract unavailable, skipping validation")
		return nil
	}

	var instance any
	if err := json.Unmarshal(encoded, &instance); err != nil {
		p.log.Warn().Err(err).Msg("transformed document not re-decodable, skipping validation")
		return nil
	}

	violations := contract.Validate(instance, schema)
	for _, v := range violations {
		p.log.Warn().Str("violation", v).Msg("data contract violation")
	}
	return violations
}

// mirror uploads both snapshot files when an uploader is configured.
func (p *Pipeline) mirror(ctx context.Context, paths ...string) {
	if p.uploader == nil {
		return
	}
	for _, path := range paths {
		if _, err := p.uploader.Upload(ctx, path); err != nil {
			p.log.Warn().Err(err).Str("path", path).Msg("snapshot upload failed")
		}
	}
}
