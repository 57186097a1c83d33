package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/serene/internal/error_values"
	"github.com/limbo/serene/internal/repository"
	"github.com/limbo/serene/internal/wellness"
	"github.com/limbo/serene/pkg/entity"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const (
	// Entries included in one export
	exportLimit = 10000
	timeLayout  = "15:04"
)

var csvHeader = []string{"date", "time", "mood", "score", "note"}

var reportPage = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="{{.Language}}">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; max-width: 820px; margin: 2rem auto; color: #1f2937; }
table { border-collapse: collapse; width: 100%; margin: 1rem 0; }
th, td { border: 1px solid #e5e7eb; padding: 6px 10px; text-align: left; }
th { background: #f3f4f6; }
@media print { body { margin: 0; } }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

type ExportService struct {
	moodsRepo    repository.MoodLogsRepositoryI
	usersRepo    repository.UsersRepositoryI
	activityRepo repository.ActivityRepositoryI
	defaultLoc   *time.Location
	md           goldmark.Markdown
	now          func() time.Time
}

func NewExportService(moodsRepo repository.MoodLogsRepositoryI, usersRepo repository.UsersRepositoryI,
	activityRepo repository.ActivityRepositoryI, defaultLoc *time.Location) *ExportService {
	if moodsRepo == nil || usersRepo == nil || activityRepo == nil {
		log.Fatal("on export service provided nil repos")
	}
	if defaultLoc == nil {
		defaultLoc = time.UTC
	}
	return &ExportService{
		moodsRepo:    moodsRepo,
		usersRepo:    usersRepo,
		activityRepo: activityRepo,
		defaultLoc:   defaultLoc,
		md:           goldmark.New(goldmark.WithExtensions(extension.Table)),
		now:          time.Now,
	}
}

func (es *ExportService) WithClock(now func() time.Time) *ExportService {
	es.now = now
	return es
}

func (es *ExportService) ExportCSV(ctx context.Context, ownerID uuid.UUID, timezone string, w io.Writer) error {
	loc, err := resolveLocation(timezone, es.defaultLoc)
	if err != nil {
		return err
	}
	entries, err := es.moodsRepo.GetByOwner(ctx, ownerID, exportLimit, 0)
	if err != nil {
		return errors.New("repository error: " + err.Error())
	}
	cw := csv.NewWriter(w)
	if err = cw.Write(csvHeader); err != nil {
		return errors.New("writing csv error: " + err.Error())
	}
	for _, e := range entries {
		at := e.CreatedAt.In(loc)
		err = cw.Write([]string{
			at.Format(wellness.DateLayout),
			at.Format(timeLayout),
			e.Mood,
			strconv.Itoa(wellness.ResolveScore(e.Mood)),
			e.Note,
		})
		if err != nil {
			return errors.New("writing csv error: " + err.Error())
		}
	}
	cw.Flush()
	if err = cw.Error(); err != nil {
		return errors.New("writing csv error: " + err.Error())
	}
	return nil
}

func (es *ExportService) ExportHTML(ctx context.Context, ownerID uuid.UUID, timezone string, w io.Writer) error {
	loc, err := resolveLocation(timezone, es.defaultLoc)
	if err != nil {
		return err
	}
	user, err := es.usersRepo.FindByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	flags, err := es.activityRepo.GetFlags(ctx, ownerID)
	if err != nil {
		return errors.New("activity repository error: " + err.Error())
	}
	entries, err := es.moodsRepo.GetByOwner(ctx, ownerID, exportLimit, 0)
	if err != nil {
		return errors.New("repository error: " + err.Error())
	}

	report := buildReportMarkdown(user, flags, entries, es.now().In(loc), loc)
	var body bytes.Buffer
	if err = es.md.Convert([]byte(report), &body); err != nil {
		return errors.New("rendering report error: " + err.Error())
	}
	err = reportPage.Execute(w, map[string]any{
		"Language": user.Language,
		"Title":    "Mood report of " + user.DisplayName,
		"Body":     template.HTML(body.String()),
	})
	if err != nil {
		return errors.New("writing report error: " + err.Error())
	}
	return nil
}

// buildReportMarkdown lays out stats, trend, badges and entries. entries come newest first.
func buildReportMarkdown(user *entity.User, flags entity.ActivityFlags, entries []entity.MoodEntry, now time.Time, loc *time.Location) string {
	var sb strings.Builder
	trend := wellness.AnalyzeTrend(entries)
	badges := wellness.EvaluateBadges(wellness.StatsFrom(user.Stats, flags))

	fmt.Fprintf(&sb, "# Mood report\n\n")
	fmt.Fprintf(&sb, "Prepared for **%s** on %s.\n\n", escapeMarkdown(user.DisplayName), now.Format(wellness.DateLayout))

	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Current streak | %d days |\n", user.Stats.Streak)
	fmt.Fprintf(&sb, "| Total logs | %d |\n", user.Stats.TotalLogs)
	fmt.Fprintf(&sb, "| Positive days | %d |\n", user.Stats.PositiveDays)
	fmt.Fprintf(&sb, "| Badges earned | %d / %d |\n\n", wellness.EarnedCount(badges), len(badges))

	sb.WriteString("## Trend\n\n")
	fmt.Fprintf(&sb, "**%s**", wellness.StatusLabel(trend.Status))
	if trend.Average != nil {
		fmt.Fprintf(&sb, " (average %.1f over the last %d entries)", *trend.Average, trend.Count)
	}
	fmt.Fprintf(&sb, "\n\n%s\n\n", trend.Message)

	sb.WriteString("## Badges\n\n")
	for _, b := range badges {
		mark := "⬜"
		if b.Earned {
			mark = "✅"
		}
		fmt.Fprintf(&sb, "- %s %s **%s**: %s\n", mark, b.Emoji, b.Title, b.Description)
	}
	sb.WriteString("\n## Entries\n\n")
	if len(entries) == 0 {
		sb.WriteString("No entries yet.\n")
		return sb.String()
	}
	sb.WriteString("| Date | Time | Mood | Score | Note |\n|---|---|---|---|---|\n")
	for _, e := range entries {
		at := e.CreatedAt.In(loc)
		label := e.Mood
		if info, ok := wellness.Lookup(e.Mood); ok {
			label = info.Emoji + " " + info.Label
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %d | %s |\n",
			at.Format(wellness.DateLayout), at.Format(timeLayout), escapeMarkdown(label),
			wellness.ResolveScore(e.Mood), escapeMarkdown(e.Note))
	}
	return sb.String()
}

var markdownEscaper = strings.NewReplacer(
	"|", `\|`,
	"\r\n", " ",
	"\n", " ",
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"#", `\#`,
	"[", `\[`,
	"]", `\]`,
	"<", "&lt;",
	">", "&gt;",
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
