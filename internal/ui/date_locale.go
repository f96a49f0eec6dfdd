package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/todoflow/todoflow/internal/domain"
)

type userDateFormat struct {
	DisplayLayout string
	Hint          string
	DateLayouts   []string
}

func detectUserDateFormat() userDateFormat {
	tag := detectLocaleTag()
	if tag == language.Und {
		return dateFormatDMY()
	}

	region, _ := tag.Region()
	switch region.String() {
	case "US":
		return dateFormatMDY()
	case "CA", "CN", "JP", "KR", "HU", "LT":
		return dateFormatYMD()
	default:
		return dateFormatDMY()
	}
}

func detectLocaleTag() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			continue
		}
		raw = normalizeLocale(raw)
		if raw == "" {
			continue
		}
		if tag, err := language.Parse(raw); err == nil {
			return tag
		}
	}
	return language.Und
}

func normalizeLocale(raw string) string {
	locale := raw
	if idx := strings.Index(locale, "."); idx >= 0 {
		locale = locale[:idx]
	}
	if idx := strings.Index(locale, "@"); idx >= 0 {
		locale = locale[:idx]
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	return strings.TrimSpace(locale)
}

func dateFormatMDY() userDateFormat {
	return userDateFormat{
		DisplayLayout: "01/02/2006",
		Hint:          "MM/DD/YYYY",
		DateLayouts: []string{
			"1/2/2006",
			"01/02/2006",
			"1-2-2006",
			"01-02-2006",
			"1.2.2006",
			"01.02.2006",
		},
	}
}

func dateFormatDMY() userDateFormat {
	return userDateFormat{
		DisplayLayout: "02/01/2006",
		Hint:          "DD/MM/YYYY",
		DateLayouts: []string{
			"2/1/2006",
			"02/01/2006",
			"2-1-2006",
			"02-01-2006",
			"2.1.2006",
			"02.01.2006",
		},
	}
}

func dateFormatYMD() userDateFormat {
	return userDateFormat{
		DisplayLayout: "2006-01-02",
		Hint:          "YYYY-MM-DD",
		DateLayouts: []string{
			"2006-1-2",
			"2006-01-02",
			"2006/1/2",
			"2006/01/02",
			"2006.1.2",
			"2006.01.02",
		},
	}
}

// formatDueDate renders a stored YYYY-MM-DD value in the user's locale.
func (m Model) formatDueDate(dueDate string) string {
	if dueDate == "" {
		return "-"
	}
	t, err := time.Parse(domain.DueDateLayout, dueDate)
	if err != nil || m.dateFormat.DisplayLayout == "" {
		return dueDate
	}
	return t.Format(m.dateFormat.DisplayLayout)
}

func (m Model) dueDatePlaceholder() string {
	hint := m.dateFormat.Hint
	if hint == "" {
		hint = "YYYY-MM-DD"
	}
	return fmt.Sprintf("Due Date (%s)", hint)
}

// parseDueDateInput accepts the user's locale layout plus a few common
// fallbacks and normalizes to the stored YYYY-MM-DD form. Empty input
// clears the due date.
func (m Model) parseDueDateInput(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	layouts := make([]string, 0, len(m.dateFormat.DateLayouts)+6)
	layouts = append(layouts, m.dateFormat.DateLayouts...)
	layouts = append(layouts,
		"2006-01-02",
		"2006/01/02",
		"2 Jan 2006",
		"02 Jan 2006",
		"2 January 2006",
		"January 2 2006",
	)

	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(domain.DueDateLayout), nil
		}
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC().Format(domain.DueDateLayout), nil
	}

	return "", fmt.Errorf("due date must match %s (locale) or YYYY-MM-DD", m.dateFormat.Hint)
}
