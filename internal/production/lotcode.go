package production

import (
	"fmt"
	"time"

	"traceability-backend/internal/engine"
	"traceability-backend/internal/models"
)

// NextLotCode derives the code for the next lot finalized on now's date.
// The counter restarts every day; codes look like 20240110-001.
func NextLotCode(seq models.LotSequence, now time.Time, taken func(code string) bool) (string, models.LotSequence) {
	date := engine.FormatDate(now)
	if seq.Date != date {
		seq = models.LotSequence{Date: date}
	}

	for {
		seq.Last++
		code := fmt.Sprintf("%s-%03d", engine.Day(now).Format("20060102"), seq.Last)
		if taken == nil || !taken(code) {
			return code, seq
		}
	}
}
