package docgen

import (
	"strings"
	"time"

	"github.com/go-playground/locales/fr"
)

var french = fr.New()

// FormatDate renders t the way fr-FR dates print: dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return french.FmtDateShort(t)
}

// FileDate is FormatDate made filename-safe.
func FileDate(t time.Time) string {
	return strings.ReplaceAll(FormatDate(t), "/", "-")
}
