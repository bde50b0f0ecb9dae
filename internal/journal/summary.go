package journal

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"llm-signal-bot/internal/types"
)

// DaySummary aggregates the journal's records for one UTC day.
type DaySummary struct {
	Date    string
	Runs    int
	Buy     int
	Sell    int
	Hold    int
	Unknown int
}

// SummarizeDay tallies parsed signals for the given day.
func (j *Journal) SummarizeDay(day time.Time) (DaySummary, error) {
	sum := DaySummary{Date: day.UTC().Format("2006-01-02")}

	recs, err := j.ReadAll()
	if err != nil {
		return sum, err
	}

	for _, rec := range recs {
		if !strings.HasPrefix(rec.Timestamp, sum.Date) {
			continue
		}
		sum.Runs++
		switch rec.Signal {
		case types.SignalBuy:
			sum.Buy++
		case types.SignalSell:
			sum.Sell++
		case types.SignalHold:
			sum.Hold++
		default:
			sum.Unknown++
		}
	}
	return sum, nil
}

// WriteDailyCSV writes today's summary next to the journal file and
// returns the path. An empty day writes nothing and returns "".
func (j *Journal) WriteDailyCSV() (string, error) {
	sum, err := j.SummarizeDay(time.Now())
	if err != nil {
		return "", err
	}
	if sum.Runs == 0 {
		return "", nil
	}

	p := filepath.Join(filepath.Dir(j.path), fmt.Sprintf("summary-%s.csv", sum.Date))
	f, err := os.Create(p)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	rows := [][]string{
		{"date", "runs", "buy", "sell", "hold", "unknown"},
		{sum.Date, strconv.Itoa(sum.Runs), strconv.Itoa(sum.Buy),
			strconv.Itoa(sum.Sell), strconv.Itoa(sum.Hold), strconv.Itoa(sum.Unknown)},
	}
	if err := w.WriteAll(rows); err != nil {
		return "", err
	}
	w.Flush()
	return p, w.Error()
}
