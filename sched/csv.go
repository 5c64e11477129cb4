package sched

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// Header is the first row written by WriteCSV.
var Header = []string{
	"Scheduler", "Task_ID", "PID", "Start_Time", "End_Time",
	"Wall_Clock", "Task_Output_Time", "Time_Source", "Exit_Code", "Error",
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Row renders r in Header order.
func (r Record) Row() []string {
	return []string{
		r.Policy,
		strconv.Itoa(r.TaskID),
		strconv.Itoa(r.PID),
		r.Start.Format(time.RFC3339Nano),
		r.End.Format(time.RFC3339Nano),
		formatSeconds(r.Wall.Seconds()),
		formatSeconds(r.TaskTime),
		r.Source,
		strconv.Itoa(r.ExitCode),
		r.Err,
	}
}

func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("sched: failed to write header: %w", err)
	}

	for _, r := range records {
		if err := cw.Write(r.Row()); err != nil {
			return fmt.Errorf("sched: failed to write record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("sched: failed to flush csv: %w", err)
	}

	return nil
}
