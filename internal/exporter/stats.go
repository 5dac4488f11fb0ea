package exporter

import (
	"strconv"
	"strings"

	"attestcli/internal/methodology"
	"attestcli/pkg/contracts/domain"
)

// Column label tokens used to recognize the direction and attestation-group
// columns of the results table.
const (
	directionStatsToken = "напрям"
	groupStatsToken     = "груп"
)

// DirectionStats is the per-direction record breakdown of the results table.
type DirectionStats struct {
	Total  int            `json:"total"`
	Groups map[string]int `json:"groups"`
}

// BuildDirectionStats cross-tabulates the results table by science direction,
// with a sub-breakdown by attestation group when a group column exists.
// Direction cells holding a numeric code are resolved to their label through
// the registry. A results table without a recognizable direction column
// produces an empty map.
func BuildDirectionStats(results *domain.Table, reg *methodology.Registry) map[string]DirectionStats {
	stats := make(map[string]DirectionStats)
	if results == nil {
		return stats
	}

	dirCol := results.FindColumn(directionStatsToken)
	if dirCol < 0 {
		return stats
	}
	groupCol := results.FindColumn(groupStatsToken)

	for i := range results.Rows {
		label := directionLabel(results.Cell(i, dirCol), reg)
		if label == "" {
			continue
		}
		s, ok := stats[label]
		if !ok {
			s = DirectionStats{Groups: make(map[string]int)}
		}
		s.Total++
		if groupCol >= 0 {
			if group := strings.TrimSpace(results.Cell(i, groupCol)); group != "" {
				s.Groups[group]++
			}
		}
		stats[label] = s
	}
	return stats
}

func directionLabel(cell string, reg *methodology.Registry) string {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return ""
	}
	if code, err := strconv.Atoi(cell); err == nil {
		if label, ok := reg.DirectionLabel(code); ok {
			return label
		}
	}
	return cell
}
