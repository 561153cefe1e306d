package service

import (
	"fmt"

	"thesaurus/internal/domain"
	"thesaurus/internal/render"
)

// FormatStatistics renders the statistics line with percentages colored
// as known and unknown
func FormatStatistics(stats domain.Statistics, styler render.Styler) string {
	return fmt.Sprintf("%d Words: Known %d %s Unknown %d %s",
		stats.Total(),
		stats.Known,
		styler.Colorize(fmt.Sprintf("(%.2f%%)", stats.KnownPercent()), true),
		stats.Unknown,
		styler.Colorize(fmt.Sprintf("(%.2f%%)", stats.UnknownPercent()), false),
	)
}

// FormatStatisticsPlain renders the statistics line without markup
func FormatStatisticsPlain(stats domain.Statistics) string {
	return fmt.Sprintf("%d Words: Known %d (%.2f%%) Unknown %d (%.2f%%)",
		stats.Total(),
		stats.Known,
		stats.KnownPercent(),
		stats.Unknown,
		stats.UnknownPercent(),
	)
}
