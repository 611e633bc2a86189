package models

// ModifiedMethod pairs the two normalized forms of a method whose name
// exists in both tables but whose signature text differs.
type ModifiedMethod struct {
	Name   string `json:"name" yaml:"name"`
	Before string `json:"before" yaml:"before"`
	After  string `json:"after" yaml:"after"`
}

type DiffStats struct {
	AddedOrMissing int `json:"added_or_missing" yaml:"added_or_missing"`
	Modified       int `json:"modified" yaml:"modified"`
	Removed        int `json:"removed" yaml:"removed"`
}

// DiffReport is the full outcome of comparing two signature tables.
// Section slices preserve the first-appearance order of the table they
// were drawn from.
type DiffReport struct {
	File1          string           `json:"file1" yaml:"file1"`
	File2          string           `json:"file2" yaml:"file2"`
	AddedOrMissing []string         `json:"added_or_missing" yaml:"added_or_missing"`
	Modified       []ModifiedMethod `json:"modified" yaml:"modified"`
	Removed        []string         `json:"removed" yaml:"removed"`
	Stats          DiffStats        `json:"stats" yaml:"stats"`
}

// Empty reports whether the comparison found no differences at all.
func (dr *DiffReport) Empty() bool {
	return len(dr.AddedOrMissing) == 0 && len(dr.Modified) == 0 && len(dr.Removed) == 0
}
