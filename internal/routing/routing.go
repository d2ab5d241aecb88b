package routing

import "github.com/draganm/zonewriter/internal/models"

// DualWriteCount is the only file count that writes to more than one file.
// It does not scale: 3 still means first_out.txt.
const DualWriteCount = 2

// Targets returns the files that receive the zone for the given file count, in write order.
func Targets(fileCount int) []string {
	if fileCount == DualWriteCount {
		return []string{models.ThirdOut, models.SecondOut}
	}
	return []string{models.FirstOut}
}
