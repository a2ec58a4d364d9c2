package entity

import "strings"

const (
	RankCaptain    = "Captain"
	RankEngineer   = "Engineer"
	RankMilitary   = "Military"
	RankResearcher = "Researcher"
)

var Ranks = []string{RankCaptain, RankEngineer, RankMilitary, RankResearcher}

// rankSynonyms covers the mixed English/Ukrainian labels the legacy data
// carries. Lookup is case-insensitive.
var rankSynonyms = map[string]string{
	"captain":    RankCaptain,
	"капітан":    RankCaptain,
	"engineer":   RankEngineer,
	"інженер":    RankEngineer,
	"military":   RankMilitary,
	"soldier":    RankMilitary,
	"солдат":     RankMilitary,
	"researcher": RankResearcher,
	"дослідник":  RankResearcher,
}

// NormalizeRank maps any accepted spelling onto its canonical label.
func NormalizeRank(s string) (string, bool) {
	canonical, ok := rankSynonyms[strings.ToLower(strings.TrimSpace(s))]
	return canonical, ok
}

type Person struct {
	ID       int64  `gorm:"primaryKey"`
	FullName string `gorm:"not null"`
	Rank     string `gorm:"not null"` // canonical, see Ranks
	Active   bool   `gorm:"not null;default:true"`
}
