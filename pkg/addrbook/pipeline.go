package addrbook

import (
	"go.uber.org/zap"

	"github.com/ukaji3/addrbook-go/pkg/addrbook/models"
	"github.com/ukaji3/addrbook-go/pkg/addrbook/parser"
)

// Pipeline turns the contact table of a document into contact records and
// anomaly warnings. A Pipeline may be reused; every run starts from empty
// accumulators. It is not safe for concurrent use.
type Pipeline struct {
	schema     Schema
	onWarnings func([]string)
	log        *zap.Logger
	assembler  *parser.Assembler
}

// NewPipeline validates opts.Schema and creates a Pipeline.
func NewPipeline(opts Options) (*Pipeline, error) {
	if err := opts.Schema.Validate(); err != nil {
		return nil, err
	}
	log := opts.logger()
	classifier := parser.NewClassifier(opts.Schema.Rules())
	assembler := parser.NewAssembler(classifier, parser.AssemblerOptions{
		LowercaseEmails: opts.LowercaseEmails,
		Logger:          log,
	})
	return &Pipeline{
		schema:     opts.Schema,
		onWarnings: opts.OnWarnings,
		log:        log,
		assembler:  assembler,
	}, nil
}

// RunDocument selects the schema's table from doc and runs it.
func (p *Pipeline) RunDocument(doc *models.Document) (*models.Result, error) {
	idx := p.schema.TableIndex
	if idx >= len(doc.Tables) {
		return nil, NewDocumentReadError(doc.Path, idx, ErrTableNotFound)
	}
	return p.Run(doc.Tables[idx])
}

// Run scans the secondary column for anomalies, then classifies the
// primary column into records. On a *NameParseError no records are
// returned.
func (p *Pipeline) Run(table models.Table) (*models.Result, error) {
	p.assembler.Reset()

	warnings := parser.ReportAnomalies(table.Column(p.schema.SecondaryColumn))
	if len(warnings) > 0 {
		p.log.Warn("secondary column holds misplaced contacts", zap.Int("count", len(warnings)))
	}
	if p.onWarnings != nil {
		p.onWarnings(warnings)
	}

	for _, row := range table.Rows {
		if err := p.assembler.Feed(row.At(p.schema.PrimaryColumn)); err != nil {
			p.assembler.Reset()
			return nil, err
		}
	}
	records := p.assembler.Finish()
	if records == nil {
		records = []models.ContactRecord{}
	}

	p.log.Info("finished analysing table",
		zap.Int("rows", len(table.Rows)),
		zap.Int("contacts", len(records)),
		zap.Int("warnings", len(warnings)),
		zap.Int("orphaned_fields", p.assembler.Orphaned()))

	return &models.Result{
		Records:  records,
		Warnings: warnings,
	}, nil
}
