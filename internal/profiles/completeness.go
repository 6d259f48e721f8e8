package profiles

import (
	"math"
	"strings"

	"github.com/red-stick-digital/brga-backend/pkg/db/models"
)

const completenessFieldCount = 5

// Completeness scores how filled out a profile is, as a whole percent.
// The score counts first name, last name, email, clean date and home group.
func Completeness(p *models.MemberProfile) int {
	if p == nil {
		return 0
	}

	present := 0
	if strings.TrimSpace(p.FirstName) != "" {
		present++
	}
	if strings.TrimSpace(p.LastName) != "" {
		present++
	}
	if strings.TrimSpace(p.Email) != "" {
		present++
	}
	if p.CleanDate != nil {
		present++
	}
	if p.HomeGroupID != nil {
		present++
	}

	return int(math.Round(100 * float64(present) / completenessFieldCount))
}
