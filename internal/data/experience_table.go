package data

// Experience curve constants.
const (
	// BaseExperience is the experience needed to go from level 1 to 2.
	BaseExperience int64 = 100
	// ExperienceGrowthNum / ExperienceGrowthDen is the per-level threshold multiplier (1.2).
	ExperienceGrowthNum int64 = 6
	ExperienceGrowthDen int64 = 5
	// MaxPlayerLevel is the highest reachable level.
	MaxPlayerLevel = 99
)

// experienceTable[level] is the experience needed to advance from level to level+1.
var experienceTable [MaxPlayerLevel + 1]int64

func init() {
	experienceTable[1] = BaseExperience
	for lvl := 2; lvl <= MaxPlayerLevel; lvl++ {
		experienceTable[lvl] = NextThreshold(experienceTable[lvl-1])
	}
}

// NextThreshold grows a threshold by one level: floor(threshold * 1.2).
// Integer arithmetic keeps restored and organically leveled characters identical.
func NextThreshold(threshold int64) int64 {
	return threshold * ExperienceGrowthNum / ExperienceGrowthDen
}

// ExperienceToNextLevel returns the threshold for advancing past level.
// Levels below 1 are treated as 1, levels above the cap as the cap.
func ExperienceToNextLevel(level int) int64 {
	if level < 1 {
		level = 1
	}
	if level > MaxPlayerLevel {
		level = MaxPlayerLevel
	}
	return experienceTable[level]
}
