package guideadmin

import (
	"context"
	"log/slog"
	"strings"

	"guidetrack-backend/lib/htmlutil"
	"guidetrack-backend/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
)

// the panel renders empty cells as an em-dash placeholder
const emptyCellPlaceholder = "—"

// OrderExtract is the raw field map scraped off a guide detail page plus
// the fields whose locators matched nothing. A missing field is data for
// the caller to log, not an error.
type OrderExtract struct {
	Fields  map[string]string
	Missing []string
}

func extractField(doc *goquery.Document, loc Locator) (string, bool) {
	switch loc.Kind {
	case LocatorDusk:
		row := doc.Find(`div[dusk="` + loc.Key + `"]`).First()
		if row.Length() == 0 {
			return "", false
		}
		container := row.Find("div").FilterFunction(func(_ int, sel *goquery.Selection) bool {
			class, _ := sel.Attr("class")
			return strings.Contains(class, "md:w-3/4")
		}).First()
		if container.Length() == 0 {
			return "", false
		}
		return htmlutil.CleanText(container), true
	case LocatorLabel:
		var value string
		found := false
		doc.Find("dt").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			if htmlutil.CleanText(sel) != loc.Key {
				return true
			}
			dd := sel.NextFiltered("dd")
			if dd.Length() == 0 {
				return true
			}
			value = htmlutil.CleanText(dd)
			found = true
			return false
		})
		return value, found
	}
	return "", false
}

// ExtractOrder resolves every logical order field through the tenant's
// locator table. Fields whose markup shape does not match come back in
// Missing instead of silently disappearing.
func ExtractOrder(ctx context.Context, doc *goquery.Document, tenant Tenant) OrderExtract {
	ctx, span := tracer.Start(ctx, "ExtractOrder")
	defer span.End()

	out := OrderExtract{
		Fields: make(map[string]string, len(tenant.Locators)),
	}
	for field, loc := range tenant.Locators {
		value, ok := extractField(doc, loc)
		if !ok {
			out.Missing = append(out.Missing, field)
			continue
		}
		out.Fields[field] = value
	}

	span.SetAttributes(
		attribute.Int("resolved", len(out.Fields)),
		attribute.Int("missing", len(out.Missing)),
	)
	return out
}

// ExtractStatusHistory reads the tenant's status-history table into one
// map per body row, keyed by normalized header names. The trailing header
// is the row-actions column and is dropped. A missing table yields an
// empty history with a diagnostic, the guide itself is still usable.
func ExtractStatusHistory(ctx context.Context, doc *goquery.Document, tenant Tenant) []map[string]string {
	ctx, span := tracer.Start(ctx, "ExtractStatusHistory")
	defer span.End()

	table := doc.Find(tenant.HistoryMarker).First()
	if table.Length() == 0 {
		slog.WarnContext(ctx, "status history table not found",
			"tenant", tenant.Name,
			"marker", tenant.HistoryMarker,
		)
		return nil
	}

	headers := table.Find("thead th")
	if headers.Length() == 0 {
		headers = table.Find("tr").First().Find("th")
	}

	var columns []string
	headers.Each(func(i int, sel *goquery.Selection) {
		if i == headers.Length()-1 {
			// actions column
			return
		}
		columns = append(columns, textutil.NormalizeColumn(htmlutil.CleanText(sel)))
	})

	var rows []map[string]string
	table.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		row := make(map[string]string, len(columns))
		tr.Find("td").Each(func(i int, td *goquery.Selection) {
			if i >= len(columns) {
				return
			}
			value := htmlutil.CleanText(td)
			if value == emptyCellPlaceholder {
				value = ""
			}
			row[columns[i]] = value
		})
		rows = append(rows, row)
	})

	span.SetAttributes(attribute.Int("rows", len(rows)))
	return rows
}
