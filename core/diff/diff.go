package diff

import (
	"traitscope/core/logger"
	"traitscope/core/models"
)

// Compare reports the differences between two signature tables. Names
// present in table1 but not table2 land in AddedOrMissing, names present
// in both with differing normalized signatures land in Modified, and
// names only in table2 land in Removed. Each section preserves the
// source declaration order of the table it was drawn from.
func Compare(table1, table2 *models.SignatureTable, file1, file2 string) *models.DiffReport {
	report := &models.DiffReport{
		File1:          file1,
		File2:          file2,
		AddedOrMissing: []string{},
		Modified:       []models.ModifiedMethod{},
		Removed:        []string{},
	}

	for _, name := range table1.Names() {
		sig1, _ := table1.Get(name)
		sig2, ok := table2.Get(name)
		if !ok {
			report.AddedOrMissing = append(report.AddedOrMissing, sig1.Normalized)
			continue
		}
		if sig1.Normalized != sig2.Normalized {
			report.Modified = append(report.Modified, models.ModifiedMethod{
				Name:   name,
				Before: sig2.Normalized,
				After:  sig1.Normalized,
			})
		}
	}

	for _, name := range table2.Names() {
		if _, ok := table1.Get(name); !ok {
			sig2, _ := table2.Get(name)
			report.Removed = append(report.Removed, sig2.Normalized)
		}
	}

	report.Stats = models.DiffStats{
		AddedOrMissing: len(report.AddedOrMissing),
		Modified:       len(report.Modified),
		Removed:        len(report.Removed),
	}

	logger.Debug("Diff %s vs %s: %d added or missing, %d modified, %d removed",
		file1, file2, report.Stats.AddedOrMissing, report.Stats.Modified, report.Stats.Removed)

	return report
}
