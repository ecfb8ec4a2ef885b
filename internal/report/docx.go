package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/truth-weaver/internal/apperror"
)

const (
	fontName = "Times New Roman"
	fontSize = 12
)

// WriteDocx renders a human-readable version of r
func (w *implWriter) WriteDocx(ctx context.Context, path string, r *Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperror.New(apperror.KindPersistenceFailure, err).WithPath(path)
	}

	tmp := filepath.Join(filepath.Dir(path), ".tmp_"+filepath.Base(path))
	defer os.Remove(tmp)

	if err := renderDocx(r, tmp); err != nil {
		return apperror.New(apperror.KindPersistenceFailure, fmt.Errorf("render docx: %w", err)).WithPath(path)
	}
	if err := os.Rename(tmp, path); err != nil {
		return apperror.New(apperror.KindPersistenceFailure, fmt.Errorf("move docx: %w", err)).WithPath(path)
	}

	w.logger.Info(ctx, "Docx report saved to: %s", path)
	return nil
}

func renderDocx(r *Report, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), "Truth Weaver Analysis", true, 18)
	addLine(doc.AddParagraph(""), fmt.Sprintf("Generated: %s", r.Metadata.GeneratedAt))
	addLine(doc.AddParagraph(""), fmt.Sprintf("Source: %s", r.Metadata.SourceDirectory))
	addLine(doc.AddParagraph(""), fmt.Sprintf("Files processed: %d of %d, subjects analyzed: %d of %d",
		r.Metadata.TotalFilesProcessed, r.Metadata.TotalFilesFound, len(r.Analyses), r.Metadata.TotalSubjects))

	for _, a := range r.Analyses {
		truth := a.Analysis.RevealedTruth

		doc.AddParagraph("")
		addStyledRun(doc.AddParagraph(""), a.ShadowID, true, 15)
		if a.Status != "" {
			addLine(doc.AddParagraph(""), "Status: "+string(a.Status))
		}
		addField(doc.AddParagraph(""), "Experience", truth.ProgrammingExperience)
		addField(doc.AddParagraph(""), "Language", truth.ProgrammingLanguage)
		addField(doc.AddParagraph(""), "Skill mastery", string(truth.SkillMastery))
		addField(doc.AddParagraph(""), "Leadership claims", string(truth.LeadershipClaims))
		addField(doc.AddParagraph(""), "Team experience", truth.TeamExperience)
		if len(truth.SkillsAndOtherKeywords) > 0 {
			addField(doc.AddParagraph(""), "Keywords", strings.Join(truth.SkillsAndOtherKeywords, ", "))
		}

		for _, p := range a.Analysis.DeceptionPatterns {
			addLine(doc.AddParagraph(""), "• "+p.LieType)
			for _, claim := range p.ContradictoryClaims {
				addLine(doc.AddParagraph(""), "    – "+claim)
			}
		}
	}

	in := r.Insights
	doc.AddParagraph("")
	addStyledRun(doc.AddParagraph(""), "Consolidated insights", true, 15)
	addField(doc.AddParagraph(""), "Overall credibility", in.OverallCredibility)
	if len(in.Languages) > 0 {
		addField(doc.AddParagraph(""), "Languages", strings.Join(in.Languages, ", "))
	}
	for _, ind := range in.TopDeceptionIndicators {
		addLine(doc.AddParagraph(""), fmt.Sprintf("• %s: %d", ind.LieType, ind.Count))
	}

	return doc.SaveTo(outputPath)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

func addField(p *docx.Paragraph, name, value string) {
	p.AddText(name+": ").Font(fontName).Size(fontSize).Color("000000").Bold(true)
	p.AddText(value).Font(fontName).Size(fontSize).Color("000000")
}

func addLine(p *docx.Paragraph, text string) {
	p.AddText(text).Font(fontName).Size(fontSize).Color("000000")
}
