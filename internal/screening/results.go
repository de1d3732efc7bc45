package screening

import (
	"encoding/json"
	"os"
	"strconv"
)

// Results is a ranked batch for one job description.
type Results struct {
	Job        JobDescription `json:"job"`
	Candidates []Candidate    `json:"candidates"`
	Failures   []Failure      `json:"failures,omitempty"`
}

func (r *Results) Len() int {
	return len(r.Candidates)
}

func (r *Results) FindByID(id string) *Candidate {
	for i := range r.Candidates {
		if r.Candidates[i].ID == id {
			return &r.Candidates[i]
		}
	}
	return nil
}

// ReportByRole groups candidate summaries by recommended role.
func (r *Results) ReportByRole() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, c := range r.Candidates {
		report[c.RecommendedRole] = append(report[c.RecommendedRole], map[string]string{
			"name":      c.Name,
			"score":     strconv.FormatFloat(c.CurrentScore, 'f', 1, 64),
			"tier":      c.Tier().String(),
			"education": c.EducationSummary,
			"email":     c.Email,
		})
	}
	return report
}

// DumpToTmpFile writes the results as indented JSON into a new temp file and returns its name.
func (r *Results) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "screening_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := r.encode(file); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// ToFile writes the results as indented JSON to path, replacing its content.
func (r *Results) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	return r.encode(file)
}

func (r *Results) encode(file *os.File) error {
	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
