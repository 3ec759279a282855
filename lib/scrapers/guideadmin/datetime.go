package guideadmin

import (
	"strings"
	"time"
)

// ParseGuideTime normalizes a raw tenant-rendered date string by trying
// the tenant's known layouts in order. The boolean is false when nothing
// parses, callers store the timestamp as absent rather than failing the
// guide.
func ParseGuideTime(tenant Tenant, raw string) (time.Time, bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return time.Time{}, false
	}

	if tenant.DatePrefix != "" {
		text = strings.TrimSpace(strings.TrimPrefix(text, tenant.DatePrefix))
	}
	for localized, english := range tenant.MonthNames {
		if strings.Contains(strings.ToLower(text), localized) {
			text = replaceFold(text, localized, english)
		}
	}

	loc := tenant.Location
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range tenant.DateLayouts {
		t, err := time.ParseInLocation(layout, text, loc)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// case-insensitive single replacement, month names show up capitalized
// or not depending on which panel screen rendered them
func replaceFold(s, old, new string) string {
	idx := strings.Index(strings.ToLower(s), strings.ToLower(old))
	if idx < 0 {
		return s
	}
	return s[:idx] + new + s[idx+len(old):]
}
