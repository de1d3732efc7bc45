package screening

import (
	"encoding/json"
	"os"
	"strings"
	"time"
)

// Reviewed is the on-disk list of candidates that were already looked at.
type Reviewed struct {
	Items []*ReviewedCandidate
}

type ReviewedCandidate struct {
	Name       string
	Email      string
	Score      float64
	ReviewedAt time.Time
}

// ToReviewed converts the batch into reviewed entries stamped with the current time.
func (r *Results) ToReviewed() *Reviewed {
	reviewed := &Reviewed{}
	for _, c := range r.Candidates {
		reviewed.Items = append(reviewed.Items, &ReviewedCandidate{
			Name:       c.Name,
			Email:      c.Email,
			Score:      c.CurrentScore,
			ReviewedAt: time.Now().UTC(),
		})
	}
	return reviewed
}

// ReviewedFromFile reads a reviewed list. A missing or empty file yields an empty list.
func ReviewedFromFile(path string) (*Reviewed, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Reviewed{}, nil
		}
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &Reviewed{}, nil
	}

	var reviewed Reviewed
	if err := json.NewDecoder(file).Decode(&reviewed); err != nil {
		return nil, err
	}
	return &reviewed, nil
}

func (v *Reviewed) Append(s *Reviewed) {
	v.Items = append(v.Items, s.Items...)
}

// Contains matches by email when both sides have one, otherwise by name. Comparison ignores case.
func (v *Reviewed) Contains(c Candidate) bool {
	for _, item := range v.Items {
		if hasEmail(item.Email) && hasEmail(c.Email) {
			if strings.EqualFold(item.Email, c.Email) {
				return true
			}
			continue
		}
		if strings.EqualFold(strings.TrimSpace(item.Name), c.Name) {
			return true
		}
	}
	return false
}

func (v *Reviewed) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func hasEmail(email string) bool {
	email = strings.TrimSpace(email)
	return email != "" && email != NotFound
}
