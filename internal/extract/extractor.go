// Package extract drives the per-page extraction pipeline: resolve the
// column geometry, ask the rendering collaborator for the region's raw
// text, normalize it, and append it to the per-column stream.
package extract

import (
	"fmt"

	"gazette-extractor/internal/geometry"
	"gazette-extractor/internal/logger"
	"gazette-extractor/internal/normalize"
	"gazette-extractor/internal/source"
	"gazette-extractor/internal/stream"
	"gazette-extractor/internal/types"
)

// DefaultProgressInterval is the page interval between progress reports
const DefaultProgressInterval = 50

// ProgressCallback receives progress updates during extraction
type ProgressCallback func(processed, total int)

// RunResult is the outcome of one extraction run
type RunResult struct {
	TotalPages     int
	ProcessedPages int
	Streams        map[types.ColumnSide]stream.Result
	SkippedPages   map[types.ColumnSide][]int
	Warnings       int
}

// ColumnExtractor extracts language columns from a source document.
// Processing is strictly sequential page by page; the per-column
// accumulators are owned by the running goroutine for the run's duration.
type ColumnExtractor struct {
	resolver         *geometry.Resolver
	progressInterval int
	progress         ProgressCallback
}

// Config holds the extractor configuration
type Config struct {
	Margins          types.LayoutMargins
	ProgressInterval int
	Progress         ProgressCallback
}

// NewColumnExtractor creates a ColumnExtractor. A zero or negative
// progress interval falls back to the default of 50 pages.
func NewColumnExtractor(cfg Config) *ColumnExtractor {
	interval := cfg.ProgressInterval
	if interval <= 0 {
		interval = DefaultProgressInterval
	}
	return &ColumnExtractor{
		resolver:         geometry.NewResolver(cfg.Margins),
		progressInterval: interval,
		progress:         cfg.Progress,
	}
}

// Run visits every page of doc in ascending order and extracts the
// requested column sides. Per-page failures (unloadable page, bad
// geometry, collaborator errors) are logged and treated as "no text for
// this page"; they never abort the run. The document itself must already
// be open, so the one fatal precondition (an unreadable source) has been
// ruled out before the first page is touched.
func (e *ColumnExtractor) Run(doc source.Document, sides []types.ColumnSide) (*RunResult, error) {
	if len(sides) == 0 {
		return nil, types.NewAppError(types.ErrInvalidInput, "no column sides requested", nil)
	}

	total := doc.PageCount()
	assemblers := make(map[types.ColumnSide]*stream.Assembler, len(sides))
	for _, side := range sides {
		assemblers[side] = stream.NewAssembler(side)
	}

	logger.Info("extraction started",
		logger.Int("totalPages", total),
		logger.Int("sides", len(sides)))
	if e.progress != nil {
		e.progress(0, total)
	}

	result := &RunResult{TotalPages: total}

	for pageNum := 1; pageNum <= total; pageNum++ {
		e.extractPage(doc, pageNum, sides, assemblers, result)

		result.ProcessedPages++
		if result.ProcessedPages%e.progressInterval == 0 {
			logger.Info("extraction progress",
				logger.Int("processed", result.ProcessedPages),
				logger.Int("total", total))
			if e.progress != nil {
				e.progress(result.ProcessedPages, total)
			}
		}
	}

	result.Streams = make(map[types.ColumnSide]stream.Result, len(sides))
	result.SkippedPages = make(map[types.ColumnSide][]int, len(sides))
	for side, asm := range assemblers {
		result.Streams[side] = asm.Finalize()
		result.SkippedPages[side] = asm.SkippedPages()
	}

	if e.progress != nil {
		e.progress(result.ProcessedPages, total)
	}
	for _, side := range sides {
		res := result.Streams[side]
		logger.Info("extraction complete",
			logger.String("side", side.String()),
			logger.Int("pagesContributed", res.PageCount),
			logger.Int("chars", res.CharCount),
			logger.Int("totalPages", total))
	}

	return result, nil
}

// extractPage processes one page for every requested side. Any failure is
// contained here: the affected side records an empty page and the loop
// moves on.
func (e *ColumnExtractor) extractPage(doc source.Document, pageNum int, sides []types.ColumnSide, assemblers map[types.ColumnSide]*stream.Assembler, result *RunResult) {
	page, err := doc.Page(pageNum)
	if err != nil {
		logger.Warn("cannot load page, skipping",
			logger.Int("page", pageNum),
			logger.Err(err))
		result.Warnings++
		for _, side := range sides {
			assemblers[side].Append(pageNum, "")
		}
		return
	}

	width, height := page.Width(), page.Height()

	for _, side := range sides {
		box, err := e.resolver.Resolve(width, height, side)
		if err != nil {
			switch types.CodeOf(err) {
			case types.ErrInvalidGeometry:
				logger.Warn("invalid page geometry, page skipped",
					logger.Int("page", pageNum),
					logger.Float64("width", width),
					logger.Float64("height", height))
			case types.ErrDegenerateRegion:
				logger.Warn("degenerate column region, side skipped",
					logger.Int("page", pageNum),
					logger.String("side", side.String()))
			default:
				logger.Error("unexpected geometry failure", err,
					logger.Int("page", pageNum))
			}
			result.Warnings++
			assemblers[side].Append(pageNum, "")
			continue
		}

		raw, err := page.ExtractRegion(box)
		if err != nil {
			// One malformed page must not sacrifice the rest of the document
			logger.Warn("extraction failed for page, treating as empty",
				logger.Int("page", pageNum),
				logger.String("side", side.String()),
				logger.Err(err))
			result.Warnings++
			raw = ""
		}

		assemblers[side].Append(pageNum, normalize.Normalize(raw))
	}
}

// Summary returns a human-readable one-line summary of the run
func (r *RunResult) Summary() string {
	s := fmt.Sprintf("%d/%d pages processed", r.ProcessedPages, r.TotalPages)
	for _, side := range []types.ColumnSide{types.ColumnPrimary, types.ColumnSecondary} {
		if res, ok := r.Streams[side]; ok {
			s += fmt.Sprintf(", %s: %d pages / %d chars", side, res.PageCount, res.CharCount)
		}
	}
	if r.Warnings > 0 {
		s += fmt.Sprintf(" (%d warnings)", r.Warnings)
	}
	return s
}
