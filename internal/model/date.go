package model

import (
	"fmt"
	"time"
)

// Haitian Creole month names, indexed by time.Month-1.
var monthsHT = [...]string{
	"janvye", "fevriye", "mas", "avril", "me", "jen",
	"jiyè", "out", "septanm", "oktòb", "novanm", "desanm",
}

// FormatLongDate renders t as the long Creole form used on reservations,
// e.g. "12 janvye 2025".
func FormatLongDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), monthsHT[t.Month()-1], t.Year())
}

// FormatShortDate renders t as the short day/month/year form used on
// comments, e.g. "12/1/2025".
func FormatShortDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}
