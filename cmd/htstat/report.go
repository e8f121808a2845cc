package main

import (
	"fmt"
	"github.com/gostonefire/hashtable"
	"github.com/olekukonko/tablewriter"
	"io"
	"strconv"
)

// renderStat - Writes stat as a table to w, followed by the probe distance distribution if present
func renderStat(w io.Writer, hashName string, stat hashtable.Stat) error {
	summary := tablewriter.NewWriter(w)
	summary.SetHeader([]string{"Metric", "Value"})
	summary.Append([]string{"Hash", hashName})
	summary.Append([]string{"Keys", strconv.FormatInt(stat.Length, 10)})
	summary.Append([]string{"Slots", strconv.FormatInt(stat.Capacity, 10)})
	summary.Append([]string{"Load factor", fmt.Sprintf("%.3f", stat.LoadFactor)})
	summary.Append([]string{"Max probe distance", strconv.FormatInt(stat.MaxProbeDistance, 10)})
	summary.Append([]string{"Average probe distance", fmt.Sprintf("%.3f", stat.AverageProbeDistance)})
	summary.Render()

	if stat.ProbeDistribution == nil {
		return nil
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	distribution := tablewriter.NewWriter(w)
	distribution.SetHeader([]string{"Distance", "Keys", "Share"})
	for distance, n := range stat.ProbeDistribution {
		if n == 0 {
			continue
		}
		share := float64(n) / float64(stat.Length) * 100
		distribution.Append([]string{strconv.Itoa(distance), strconv.FormatInt(n, 10), fmt.Sprintf("%.1f%%", share)})
	}
	distribution.Render()

	return nil
}
